package recipe

import "strconv"

// ID is the value object identifying a recipe. The canonical form is the
// decimal string of a positive integer: no sign, no leading zero, no
// decimal point.
type ID struct {
	value string
}

// ParseID validates a raw identifier string and returns its canonical ID.
// Untrusted input (path parameters) must come through here.
func ParseID(s string) (ID, error) {
	if len(s) == 0 {
		return ID{}, ErrInvalidIdentifier
	}
	if s[0] < '1' || s[0] > '9' {
		return ID{}, ErrInvalidIdentifier
	}
	for i := 1; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return ID{}, ErrInvalidIdentifier
		}
	}
	if _, err := strconv.ParseInt(s, 10, 64); err != nil {
		// All digits but out of range
		return ID{}, ErrInvalidIdentifier
	}
	return ID{value: s}, nil
}

// IDFromInt64 converts a storage-layer numeric identifier. Values that
// cannot form a valid ID collapse to the zero ID instead of failing;
// repository rows are trusted and never carry user input.
func IDFromInt64(v int64) ID {
	if v <= 0 {
		return ID{}
	}
	return ID{value: strconv.FormatInt(v, 10)}
}

// String returns the canonical decimal form
func (id ID) String() string {
	return id.value
}

// Int64 returns the numeric form used by the storage layer
func (id ID) Int64() int64 {
	v, err := strconv.ParseInt(id.value, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// IsZero reports whether the ID is the zero value
func (id ID) IsZero() bool {
	return id.value == ""
}

// Equals compares two IDs by their canonical form
func (id ID) Equals(other ID) bool {
	return id.value == other.value
}
