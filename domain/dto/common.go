package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// NumericID accepts a JSON number or numeric string. null, "" and 0 decode
// to zero, which `validate:"required"` treats as missing.
type NumericID uint

func (n *NumericID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}

	raw := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			*n = 0
			return nil
		}
	}

	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil || f < 0 || f != float64(uint64(f)) {
			return fmt.Errorf("invalid id %q", raw)
		}
		v = uint64(f)
	}
	*n = NumericID(v)
	return nil
}

func (n NumericID) Uint() uint {
	return uint(n)
}

type SuccessResponse struct {
	Success bool `json:"success"`
}
