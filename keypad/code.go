package keypad

import (
	"fmt"
	"strconv"
	"strings"
)

// Code is a door code: the numeric-keypad keys to type and the numeric part
// used for scoring ("029A" → keys 0 2 9 A, value 29).
type Code struct {
	Keys  []Key
	Value uint64
}

// ParseCode reads a door code of one or more digits followed by A.
func ParseCode(s string) (Code, error) {
	digits, ok := strings.CutSuffix(s, "A")
	if !ok || digits == "" {
		return Code{}, fmt.Errorf("%w: %q must be digits followed by A", ErrInvalidCode, s)
	}
	value, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return Code{}, fmt.Errorf("%w: %q: %v", ErrInvalidCode, s, err)
	}

	keys := make([]Key, len(s))
	for i := 0; i < len(s); i++ {
		keys[i] = Key(s[i])
	}

	return Code{Keys: keys, Value: value}, nil
}

// String returns the code as typed.
func (c Code) String() string {
	return string(keysToBytes(c.Keys))
}
