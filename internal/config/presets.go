package config

import (
	"slices"
	"strconv"
	"strings"
)

// Presets are named datasets that load a fixed list and target.
var Presets = map[string]Dataset{
	"classic":    {List: "1, 3, 5, 7, 9, 11", Target: "7"},
	"miss":       {List: "2, 4, 6", Target: "5"},
	"single":     {List: "42", Target: "42"},
	"duplicates": {List: "1, 2, 2, 2, 2, 3, 4", Target: "2"},
	"negative":   {List: "-40, -25, -10, -3, 0, 8, 19, 33", Target: "-3"},
	"left-edge":  {List: "4, 8, 15, 16, 23, 42, 57, 61, 77, 90", Target: "4"},
	"right-edge": {List: "4, 8, 15, 16, 23, 42, 57, 61, 77, 90", Target: "90"},
	"squares":    {List: squares(20), Target: "144"},
}

func GetPreset(name string) (Dataset, bool) {
	d, ok := Presets[name]
	return d, ok
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ApplyPreset replaces the dataset of c with the named preset.
func (c *Config) ApplyPreset(name string) bool {
	d, ok := GetPreset(name)
	if !ok {
		return false
	}
	c.Dataset = d
	return true
}

func squares(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = strconv.Itoa((i + 1) * (i + 1))
	}
	return strings.Join(parts, ", ")
}
