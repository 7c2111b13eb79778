package store

import (
	"strings"
	"sync"

	"picren/internal/errors"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collation names.
const (
	CollationName    = "name"
	CollationNatural = "natural"
)

// CompareFunc orders two edit names.
type CompareFunc func(a, b string) int

// NewCompare returns the ordering for a collation name. Every ordering is
// total: names that collate equal fall back to codepoint order, so distinct
// files never share a sort key.
func NewCompare(collation string) (CompareFunc, error) {
	switch collation {
	case "", CollationName:
		return strings.Compare, nil
	case CollationNatural:
		return naturalCompare(), nil
	default:
		return nil, errors.NewConfigError("unknown collation", collation, errors.InvalidConfig, nil)
	}
}

// naturalCompare orders names the way file managers do: locale aware,
// with digit runs compared by numeric value ("img2" < "img10").
func naturalCompare() CompareFunc {
	var mu sync.Mutex
	c := collate.New(language.Und, collate.Numeric)

	return func(a, b string) int {
		mu.Lock()
		r := c.CompareString(a, b)
		mu.Unlock()
		if r != 0 {
			return r
		}
		return strings.Compare(a, b)
	}
}
