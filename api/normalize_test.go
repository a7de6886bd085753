package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListItems_BareArray(t *testing.T) {
	items, err := listItems([]byte(` [{"id":1},{"id":2}] `))
	assert.NoError(t, err)
	assert.JSONEq(t, `[{"id":1},{"id":2}]`, string(items))
}

func TestListItems_DataEnvelope(t *testing.T) {
	items, err := listItems([]byte(`{"data":[{"id":3}],"total":1}`))
	assert.NoError(t, err)
	assert.JSONEq(t, `[{"id":3}]`, string(items))
}

func TestListItems_EnvelopeWithoutData(t *testing.T) {
	items, err := listItems([]byte(`{"total":0}`))
	assert.NoError(t, err)
	assert.Equal(t, json.RawMessage("[]"), items)
}

func TestListItems_GarbageBody(t *testing.T) {
	_, err := listItems([]byte(`not json`))
	assert.Error(t, err)
}

func TestObjectItem_DataEnvelope(t *testing.T) {
	item := objectItem([]byte(`{"data":{"id":7,"name":"Asha Rao"}}`))
	assert.JSONEq(t, `{"id":7,"name":"Asha Rao"}`, string(item))
}

func TestObjectItem_BareObject(t *testing.T) {
	item := objectItem([]byte(`{"id":7,"name":"Asha Rao"}`))
	assert.JSONEq(t, `{"id":7,"name":"Asha Rao"}`, string(item))
}

func TestBookingNumber_NestedBooking(t *testing.T) {
	number, err := bookingNumber([]byte(`{"booking":{"booking_number":"BK-20240315-0042"}}`))
	assert.NoError(t, err)
	assert.Equal(t, "BK-20240315-0042", number)
}

func TestBookingNumber_TopLevelStringID(t *testing.T) {
	number, err := bookingNumber([]byte(`{"id":"BK-91"}`))
	assert.NoError(t, err)
	assert.Equal(t, "BK-91", number)
}

func TestBookingNumber_TopLevelNumericID(t *testing.T) {
	number, err := bookingNumber([]byte(`{"id":4312}`))
	assert.NoError(t, err)
	assert.Equal(t, "4312", number)
}

func TestBookingNumber_MissingEverywhere(t *testing.T) {
	_, err := bookingNumber([]byte(`{"status":"ok"}`))
	assert.Error(t, err)
}
