// Package pathutil provides helpers for working with URL path segments.
package pathutil

import (
	"errors"
	"strconv"
)

// ErrInvalidID is returned when an ID path segment is not a positive integer.
var ErrInvalidID = errors.New("invalid id")

// ParseID parses an ID path segment, typically taken from
// http.Request.PathValue. IDs must be positive integers.
//
// Example:
//
//	id, err := pathutil.ParseID(r.PathValue("id"))
func ParseID(segment string) (int64, error) {
	id, err := strconv.ParseInt(segment, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
