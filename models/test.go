package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Test is a backend-owned catalog entry, scoped to a branch.
type Test struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Price Price  `json:"price"`
}

// Price is a decimal amount that the backend serializes either as a JSON
// number or as a quoted string. Both shapes are accepted on decode.
type Price float64

func (p *Price) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		*p = 0
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return fmt.Errorf("invalid price %q: %w", raw, err)
		}
		*p = Price(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = Price(v)
	return nil
}

func (p Price) Float64() float64 {
	return float64(p)
}
