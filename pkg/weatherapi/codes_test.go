package weatherapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestLookup checks every documented provider error code.
func TestLookup(t *testing.T) {
	tests := []struct {
		code    int
		message string
		status  int
	}{
		{1002, "API key not provided.", 401},
		{1003, "Parameter 'q' not provided.", 400},
		{1005, "API request url is invalid", 400},
		{1006, "No location found matching parameter 'q'", 400},
		{2006, "API key provided is invalid", 401},
		{2007, "API key has exceeded calls per month quota.", 403},
		{2008, "API key has been disabled.", 403},
		{2009, "API key does not have access to the resource. / Please check pricing page for what is allowed in your API subscription plan.", 403},
		{9000, "Json body passed in bulk request is invalid. Please make sure it is valid json with utf-8 encoding.", 400},
		{9001, "Json body contains too many locations for bulk request. Please keep it below 50 in a single request.", 400},
		{9999, "Internal application error.", 400},
	}

	for _, tt := range tests {
		entry, ok := Lookup(tt.code)
		assert.True(t, ok, "code %d", tt.code)
		assert.Equal(t, tt.message, entry.Message, "code %d", tt.code)
		assert.Equal(t, tt.status, entry.HTTPStatus, "code %d", tt.code)
	}

	assert.Len(t, Codes(), len(tests), "table must hold exactly the documented codes")
}

func TestLookup_Unknown(t *testing.T) {
	_, ok := Lookup(4242)
	assert.False(t, ok)
}

func TestCodes_Sorted(t *testing.T) {
	codes := Codes()
	assert.IsIncreasing(t, codes)
	assert.Equal(t, 1002, codes[0])
	assert.Equal(t, 9999, codes[len(codes)-1])
}
