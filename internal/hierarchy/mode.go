package hierarchy

import (
	"fmt"
	"strings"
)

// Mode is the composition rule a group applies to its elements.
type Mode int

const (
	// ModeOR emits every non-empty subset of the elements.
	ModeOR Mode = iota
	// ModeXOR emits each element as an independent alternative.
	ModeXOR
	// ModeAND emits the elements together.
	ModeAND
)

// MaxOrWidth is the widest OR group that can be enumerated with a 64-bit mask.
const MaxOrWidth = 62

// Valid reports whether m is one of the three composition modes.
func (m Mode) Valid() bool {
	return m == ModeOR || m == ModeXOR || m == ModeAND
}

func (m Mode) String() string {
	switch m {
	case ModeOR:
		return "OR"
	case ModeXOR:
		return "XOR"
	case ModeAND:
		return "AND"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode accepts or, xor and and in any case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "OR":
		return ModeOR, nil
	case "XOR":
		return ModeXOR, nil
	case "AND":
		return ModeAND, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, int(m))
	}
	return []byte(strings.ToLower(m.String())), nil
}

func (m *Mode) UnmarshalText(b []byte) error {
	v, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
