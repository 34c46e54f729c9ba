package search

import (
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"
)

// ParseSortedList parses a comma separated list of integers. Empty entries
// are skipped. Equal neighbours are allowed; a descending pair is not.
func ParseSortedList(text string) ([]int, error) {
	parts := strings.Split(text, ",")
	data := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, &InputError{Field: "list", Input: p, Wrapped: ErrNotNumeric}
		}
		data = append(data, v)
	}
	if !slices.IsSorted(data) {
		return nil, &InputError{Field: "list", Input: text, Wrapped: ErrUnsorted}
	}
	return data, nil
}

// RandomSorted draws n distinct values from [lo, hi) and returns them in
// ascending order.
func RandomSorted(rng *rand.Rand, n, lo, hi int) ([]int, error) {
	if n < 0 || hi-lo < n {
		return nil, &InputError{Field: "size", Input: strconv.Itoa(n), Wrapped: ErrSizeRange}
	}
	// partial Fisher-Yates over the value range
	pool := make([]int, hi-lo)
	for i := range pool {
		pool[i] = lo + i
	}
	for i := 0; i < n; i++ {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	data := pool[:n:n]
	slices.Sort(data)
	return data, nil
}

// ParseTarget parses the target field. A blank field picks a random value
// that exists in data.
func ParseTarget(text string, data []int, rng *rand.Rand) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		if len(data) == 0 {
			return 0, &InputError{Field: "target", Wrapped: ErrEmptyData}
		}
		return data[rng.IntN(len(data))], nil
	}
	v, err := strconv.Atoi(text)
	if err != nil {
		return 0, &InputError{Field: "target", Input: text, Wrapped: ErrNotNumeric}
	}
	return v, nil
}
