// Package crawl: element numbering rules.
// Maps atomic numbers to element page URLs and parses the number lists
// accepted on the command line.
package crawl

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gaurav-prasanna/periodicdata/core/output"
)

const (
	// DefaultBaseURL is the site element pages are fetched from.
	DefaultBaseURL = "http://periodictable.com"

	MinAtomicNumber = 1
	MaxAtomicNumber = 118
)

var (
	ErrInvalidNumber = errors.New("invalid atomic number")
	ErrInvalidRange  = errors.New("invalid atomic number range")
	ErrOutOfRange    = errors.New("atomic number out of range")
)

// ElementURL returns the data page URL for an element:
// ElementURL("http://periodictable.com", 29) →
// "http://periodictable.com/Elements/029/data.html".
func ElementURL(baseURL string, atomicNumber int) string {
	return fmt.Sprintf("%s/Elements/%s/data.html",
		strings.TrimSuffix(baseURL, "/"), output.PadNumber(atomicNumber))
}

// AllNumbers returns every atomic number from MinAtomicNumber to
// MaxAtomicNumber.
func AllNumbers() []int {
	nums := make([]int, 0, MaxAtomicNumber-MinAtomicNumber+1)
	for n := MinAtomicNumber; n <= MaxAtomicNumber; n++ {
		nums = append(nums, n)
	}
	return nums
}

// ParseNumbers parses arguments such as "1-5", "8" or "26,29" into a
// deduplicated list of atomic numbers in first-seen order. No arguments
// selects every element.
func ParseNumbers(args ...string) ([]int, error) {
	if len(args) == 0 {
		return AllNumbers(), nil
	}

	queue := NewQueue()
	for _, arg := range args {
		for _, part := range strings.Split(arg, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			lo, hi, err := parseRange(part)
			if err != nil {
				return nil, err
			}
			for n := lo; n <= hi; n++ {
				queue.Add(n)
			}
		}
	}
	return queue.All(), nil
}

func parseRange(part string) (int, int, error) {
	first, last, isRange := strings.Cut(part, "-")
	lo, err := parseNumber(first)
	if err != nil {
		return 0, 0, err
	}
	if !isRange {
		return lo, lo, nil
	}
	hi, err := parseNumber(last)
	if err != nil {
		return 0, 0, err
	}
	if hi < lo {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidRange, part)
	}
	return lo, hi, nil
}

func parseNumber(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	if n < MinAtomicNumber || n > MaxAtomicNumber {
		return 0, fmt.Errorf("%w: %d (want %d-%d)", ErrOutOfRange, n, MinAtomicNumber, MaxAtomicNumber)
	}
	return n, nil
}
