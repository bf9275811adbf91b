// Package pagination turns raw page/limit query values into an offset window.
package pagination

import (
	"math"
	"strconv"
)

const DefaultLimit = 10

type Window struct {
	Offset int
	Limit  int
	Page   int
}

type Service struct {
	DefaultLimit int
	// MaxLimit caps the requested limit. Zero leaves it unbounded.
	MaxLimit int
}

func New(defaultLimit, maxLimit int) Service {
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}
	if maxLimit < 0 {
		maxLimit = 0
	}
	return Service{DefaultLimit: defaultLimit, MaxLimit: maxLimit}
}

// Normalize reports ok == false when page is not a valid non-negative
// integer; callers then serve the whole collection unpaged. An invalid limit
// falls back to the default.
func (s Service) Normalize(page, limit string) (Window, bool) {
	p, ok := parse(page)
	if !ok {
		return Window{}, false
	}

	l, ok := parse(limit)
	if !ok {
		l = s.DefaultLimit
		if l <= 0 {
			l = DefaultLimit
		}
	}
	if s.MaxLimit > 0 && l > s.MaxLimit {
		l = s.MaxLimit
	}

	// A page far past the end saturates the offset so the window stays
	// empty instead of wrapping around.
	offset := math.MaxInt
	if l == 0 || p <= math.MaxInt/l {
		offset = p * l
	}

	return Window{Offset: offset, Limit: l, Page: p}, true
}

func parse(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
