package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// The backend is inconsistent about response envelopes: list endpoints return
// either a bare JSON array or a {"data": [...]} wrapper, and booking creation
// reports the identifier at one of two paths. Each shape is normalized here,
// once, with an explicit fallback order, so call sites never shape-sniff.

// listItems returns the JSON array from a list response body.
// Fallback order: bare top-level array, then the {"data": [...]} envelope.
func listItems(raw []byte) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.RawMessage(trimmed), nil
	}
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("unrecognized list response shape: %w", err)
	}
	if len(envelope.Data) == 0 {
		// An envelope with no data key means an empty result, not an error.
		return json.RawMessage("[]"), nil
	}
	return envelope.Data, nil
}

// objectItem returns the JSON object from a single-record response body.
// Fallback order: the {"data": {...}} envelope, then the bare object.
func objectItem(raw []byte) json.RawMessage {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.Data) > 0 {
		trimmed := bytes.TrimSpace(envelope.Data)
		if len(trimmed) > 0 && trimmed[0] == '{' {
			return envelope.Data
		}
	}
	return json.RawMessage(raw)
}

// bookingNumber extracts the created booking's identifier.
// Fallback order: booking.booking_number, then the top-level id.
func bookingNumber(raw []byte) (string, error) {
	var nested struct {
		Booking struct {
			BookingNumber string `json:"booking_number"`
		} `json:"booking"`
	}
	if err := json.Unmarshal(raw, &nested); err == nil && nested.Booking.BookingNumber != "" {
		return nested.Booking.BookingNumber, nil
	}

	var flat struct {
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(raw, &flat); err == nil && len(flat.ID) > 0 {
		var asString string
		if err := json.Unmarshal(flat.ID, &asString); err == nil && asString != "" {
			return asString, nil
		}
		var asNumber int64
		if err := json.Unmarshal(flat.ID, &asNumber); err == nil {
			return strconv.FormatInt(asNumber, 10), nil
		}
	}
	return "", fmt.Errorf("booking response carried no booking number")
}
