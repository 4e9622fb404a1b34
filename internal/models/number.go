package models

import (
	"strconv"
	"strings"
)

// OptFloat is a float64 that may be absent. Admin forms submit numeric fields
// as either JSON numbers or strings; anything unparsable (empty string,
// garbage text, null) is mapped to the absent state instead of failing the
// whole request body, so required-field validation can report it as missing.
type OptFloat struct {
	Value float64
	Valid bool
}

func (f *OptFloat) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = OptFloat{}
		return nil
	}
	s = strings.TrimSpace(strings.Trim(s, `"`))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = OptFloat{}
		return nil
	}
	*f = OptFloat{Value: v, Valid: true}
	return nil
}

func (f OptFloat) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(f.Value, 'f', -1, 64)), nil
}

// Ptr returns the value as a nullable pointer, nil when absent.
func (f OptFloat) Ptr() *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Value
	return &v
}

// OptInt is an int that may be absent, with the same lenient decoding rules
// as OptFloat. Fractional input is truncated toward zero.
type OptInt struct {
	Value int
	Valid bool
}

func (i *OptInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*i = OptInt{}
		return nil
	}
	s = strings.TrimSpace(strings.Trim(s, `"`))
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		*i = OptInt{Value: int(v), Valid: true}
		return nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		*i = OptInt{Value: int(v), Valid: true}
		return nil
	}
	*i = OptInt{}
	return nil
}

func (i OptInt) MarshalJSON() ([]byte, error) {
	if !i.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(i.Value)), nil
}

// Ptr returns the value as a nullable pointer, nil when absent.
func (i OptInt) Ptr() *int {
	if !i.Valid {
		return nil
	}
	v := i.Value
	return &v
}
