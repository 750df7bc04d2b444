package dto

import (
	"bytes"
	"errors"
	"strconv"
)

// FlexibleInt decodes a JSON number or a numeric string ("10" and 10 are
// equivalent). Spreadsheet-fed clients send either; normalizing once here
// keeps every comparison downstream a plain int equality.
type FlexibleInt int

func (f *FlexibleInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return errors.New("value is required")
	}
	if b[0] == '"' {
		s, err := strconv.Unquote(string(b))
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return errors.New("value must be numeric")
		}
		*f = FlexibleInt(n)
		return nil
	}
	n, err := strconv.Atoi(string(b))
	if err != nil {
		return errors.New("value must be an integer")
	}
	*f = FlexibleInt(n)
	return nil
}

func (f FlexibleInt) Int() int { return int(f) }
