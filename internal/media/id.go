package media

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidID is returned for an id that is not a positive catalog number.
var ErrInvalidID = errors.New("invalid id")

// ParseID parses a catalog id as it appears in a path segment.
func ParseID(id string) (int, error) {
	n, err := strconv.Atoi(id)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w %q", ErrInvalidID, id)
	}
	return n, nil
}
