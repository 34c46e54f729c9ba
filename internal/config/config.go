package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	DefaultSize     = 15
	MinSize         = 5
	MaxSize         = 40
	DefaultValueMin = 1
	DefaultValueMax = 150
	DefaultSpeed    = 0.5
	MinSpeed        = 0.05
	MaxSpeed        = 1.0
	SpeedStep       = 0.05
	DefaultTheme    = "vscode"
	DefaultLabels   = 30
)

type Config struct {
	Size           int     `yaml:"size" toml:"size"`
	ValueMin       int     `yaml:"value_min" toml:"value_min"`
	ValueMax       int     `yaml:"value_max" toml:"value_max"`
	Speed          float64 `yaml:"speed" toml:"speed"`
	Theme          string  `yaml:"theme" toml:"theme"`
	Sound          bool    `yaml:"sound" toml:"sound"`
	LabelThreshold int     `yaml:"label_threshold" toml:"label_threshold"`
	Seed           uint64  `yaml:"seed" toml:"seed"`
	LogFile        string  `yaml:"log_file" toml:"log_file"`
	LogLevel       string  `yaml:"log_level" toml:"log_level"`
	Dataset        Dataset `yaml:"dataset" toml:"dataset"`
}

// Dataset preloads a list and target instead of a random sample.
type Dataset struct {
	List   string `yaml:"list" toml:"list"`
	Target string `yaml:"target" toml:"target"`
}

func DefaultConfig() *Config {
	return &Config{
		Size:           DefaultSize,
		ValueMin:       DefaultValueMin,
		ValueMax:       DefaultValueMax,
		Speed:          DefaultSpeed,
		Theme:          DefaultTheme,
		Sound:          true,
		LabelThreshold: DefaultLabels,
		LogLevel:       "info",
	}
}

// Load reads a YAML or TOML file over the defaults. The format follows
// the file extension; anything other than .toml is read as YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if isTOML(path) {
		err = toml.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func Save(path string, cfg *Config) error {
	var (
		data []byte
		err  error
	)
	if isTOML(path) {
		data, err = toml.Marshal(cfg)
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// Validate rejects settings the visualizer cannot honour.
func (c *Config) Validate() error {
	if c.ValueMax <= c.ValueMin {
		return fmt.Errorf("config: value_max (%d) must exceed value_min (%d)", c.ValueMax, c.ValueMin)
	}
	if c.Size < 0 || c.Size > c.ValueMax-c.ValueMin {
		return fmt.Errorf("config: size %d does not fit the value range [%d,%d)", c.Size, c.ValueMin, c.ValueMax)
	}
	if c.Speed <= 0 {
		return fmt.Errorf("config: speed must be positive, got %g", c.Speed)
	}
	return nil
}

// ClampSize keeps n within the size slider's range.
func ClampSize(n int) int {
	return min(max(n, MinSize), MaxSize)
}

// ClampSpeed keeps s within the speed slider's range, snapped to SpeedStep.
func ClampSpeed(s float64) float64 {
	s = min(max(s, MinSpeed), MaxSpeed)
	steps := int(s/SpeedStep + 0.5)
	return float64(steps) * SpeedStep
}

// Interval converts the speed setting (seconds per step) to a duration.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.Speed * float64(time.Second))
}
