package domain

import (
	"fmt"
	"strings"

	"github.com/oklog/ulid/v2"
)

const PrefixOrder = "ord"

// NewID returns "<prefix>_<ULID>". ULIDs from ulid.Make are monotonic within
// the process, so ids of one prefix sort by creation time.
func NewID(prefix string) string {
	return prefix + "_" + ulid.Make().String()
}

func NewOrderID() string {
	return NewID(PrefixOrder)
}

// ParseID checks that id has the given prefix followed by a well-formed ULID.
func ParseID(prefix, id string) (ulid.ULID, error) {
	token, ok := strings.CutPrefix(id, prefix+"_")
	if !ok {
		return ulid.ULID{}, fmt.Errorf("id %q: missing %q prefix", id, prefix)
	}
	parsed, err := ulid.ParseStrict(token)
	if err != nil {
		return ulid.ULID{}, fmt.Errorf("id %q: %w", id, err)
	}
	return parsed, nil
}
