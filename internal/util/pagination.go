package util

import (
	"errors"
	"strconv"
)

const (
	DefaultLimit = 20
	DefaultSkip  = 0
)

var (
	ErrNegativeWindow = errors.New("limit and skip must be non-negative")
	ErrBadID          = errors.New("id must be a non-negative integer")
)

// ParseIntDefault returns def when s is empty or not an integer.
func ParseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

// Window resolves the limit/skip query pair. Unparsable values fall back to
// the defaults, explicit negatives are rejected.
func Window(limitRaw, skipRaw string) (limit, skip int, err error) {
	limit = ParseIntDefault(limitRaw, DefaultLimit)
	skip = ParseIntDefault(skipRaw, DefaultSkip)
	if limit < 0 || skip < 0 {
		return 0, 0, ErrNegativeWindow
	}
	return limit, skip, nil
}

func ParseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id < 0 {
		return 0, ErrBadID
	}
	return id, nil
}
