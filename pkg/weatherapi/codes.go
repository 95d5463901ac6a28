package weatherapi

import (
	"net/http"
	"sort"
)

// ErrorEntry is the documented meaning of a provider error code.
type ErrorEntry struct {
	Message    string
	HTTPStatus int
}

// errorTable maps provider error codes to their documented message and status.
var errorTable = map[int]ErrorEntry{
	1002: {"API key not provided.", http.StatusUnauthorized},
	1003: {"Parameter 'q' not provided.", http.StatusBadRequest},
	1005: {"API request url is invalid", http.StatusBadRequest},
	1006: {"No location found matching parameter 'q'", http.StatusBadRequest},
	2006: {"API key provided is invalid", http.StatusUnauthorized},
	2007: {"API key has exceeded calls per month quota.", http.StatusForbidden},
	2008: {"API key has been disabled.", http.StatusForbidden},
	2009: {"API key does not have access to the resource. / " +
		"Please check pricing page for what is allowed in your API subscription plan.", http.StatusForbidden},
	9000: {"Json body passed in bulk request is invalid. Please make sure it is valid json with utf-8 encoding.", http.StatusBadRequest},
	9001: {"Json body contains too many locations for bulk request. Please keep it below 50 in a single request.", http.StatusBadRequest},
	9999: {"Internal application error.", http.StatusBadRequest},
}

// Lookup returns the documented entry for a provider error code.
func Lookup(code int) (ErrorEntry, bool) {
	entry, ok := errorTable[code]
	return entry, ok
}

// Codes returns every documented error code in ascending order.
func Codes() []int {
	codes := make([]int, 0, len(errorTable))
	for code := range errorTable {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	return codes
}
