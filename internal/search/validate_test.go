package search

import (
	"errors"
	"math/rand/v2"
	"reflect"
	"slices"
	"testing"
)

func TestParseSortedList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []int
		err   error
	}{
		{"simple", "1,3,5", []int{1, 3, 5}, nil},
		{"spaces", " 2 , 4,6 ", []int{2, 4, 6}, nil},
		{"trailing comma", "1, 2, 3,", []int{1, 2, 3}, nil},
		{"negative", "-4, -1, 0, 7", []int{-4, -1, 0, 7}, nil},
		{"duplicates", "1, 1, 2", []int{1, 1, 2}, nil},
		{"empty", "", []int{}, nil},
		{"unsorted", "5,3,1", nil, ErrUnsorted},
		{"one inversion", "1, 2, 4, 3", nil, ErrUnsorted},
		{"letters", "1, two, 3", nil, ErrNotNumeric},
		{"float", "1.5, 2", nil, ErrNotNumeric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSortedList(tt.input)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("err = %v, want %v", err, tt.err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseSortedList_InputError(t *testing.T) {
	_, err := ParseSortedList("1, x")
	var ie *InputError
	if !errors.As(err, &ie) {
		t.Fatalf("expected *InputError, got %T", err)
	}
	if ie.Field != "list" || ie.Input != "x" {
		t.Errorf("unexpected field/input: %q %q", ie.Field, ie.Input)
	}
}

func TestRandomSorted(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	data, err := RandomSorted(rng, 15, 1, 150)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data) != 15 {
		t.Fatalf("expected 15 values, got %d", len(data))
	}
	if !slices.IsSorted(data) {
		t.Errorf("not sorted: %v", data)
	}
	for i := 1; i < len(data); i++ {
		if data[i] == data[i-1] {
			t.Errorf("duplicate value %d", data[i])
		}
	}
	for _, v := range data {
		if v < 1 || v >= 150 {
			t.Errorf("value %d outside [1,150)", v)
		}
	}
}

func TestRandomSorted_WholeRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	data, err := RandomSorted(rng, 5, 10, 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(data, []int{10, 11, 12, 13, 14}) {
		t.Errorf("got %v", data)
	}
}

func TestRandomSorted_SizeRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for _, n := range []int{-1, 6} {
		if _, err := RandomSorted(rng, n, 0, 5); !errors.Is(err, ErrSizeRange) {
			t.Errorf("n=%d: err = %v, want ErrSizeRange", n, err)
		}
	}
}

func TestParseTarget(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 9))
	data := []int{4, 8, 15, 16, 23, 42}

	v, err := ParseTarget(" 16 ", data, rng)
	if err != nil || v != 16 {
		t.Errorf("ParseTarget = %d, %v", v, err)
	}

	if _, err := ParseTarget("abc", data, rng); !errors.Is(err, ErrNotNumeric) {
		t.Errorf("err = %v, want ErrNotNumeric", err)
	}

	for i := 0; i < 20; i++ {
		v, err := ParseTarget("", data, rng)
		if err != nil {
			t.Fatalf("blank target: %v", err)
		}
		if !slices.Contains(data, v) {
			t.Fatalf("blank target picked %d, not in data", v)
		}
	}

	if _, err := ParseTarget("", nil, rng); !errors.Is(err, ErrEmptyData) {
		t.Errorf("err = %v, want ErrEmptyData", err)
	}
}

func TestUserMessage(t *testing.T) {
	_, listErr := ParseSortedList("a")
	_, targetErr := ParseTarget("a", []int{1}, rand.New(rand.NewPCG(1, 1)))

	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{ErrUnsorted, "Please enter a SORTED list! Binary search requires ascending order."},
		{ErrEmptyData, "Generate or load a list first."},
		{listErr, "Please enter valid numbers separated by commas."},
		{targetErr, "Invalid target: enter a whole number."},
	}
	for _, tt := range tests {
		if got := UserMessage(tt.err); got != tt.want {
			t.Errorf("UserMessage(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
