package clangast

import (
	"fmt"
	"strconv"
)

// ID is a node identifier. Clang prints the address of its in-memory node as
// a hex string; the decoder keeps the number so ids hash and compare cheaply.
//
// The zero ID is what nodes without an "id" field decode to. Clang never
// prints a null address, but nothing in the format forbids "0x0", so treat
// zero as "absent" only where that ambiguity is acceptable.
type ID uint64

// ParseID decodes hex text with an optional 0x prefix, in either case.
func ParseID(s string) (ID, error) {
	h := s
	if len(h) >= 2 && h[0] == '0' && (h[1] == 'x' || h[1] == 'X') {
		h = h[2:]
	}
	if h == "" {
		return 0, fmt.Errorf("%w: %q", ErrMalformedIdentifier, s)
	}
	v, err := strconv.ParseUint(h, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedIdentifier, s)
	}
	return ID(v), nil
}

// String renders the id the way Clang does.
func (id ID) String() string { return "0x" + strconv.FormatUint(uint64(id), 16) }

func (id ID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

func (id *ID) UnmarshalText(b []byte) error {
	v, err := ParseID(string(b))
	if err != nil {
		return err
	}
	*id = v
	return nil
}
