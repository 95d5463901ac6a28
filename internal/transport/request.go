package transport

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/agentstation/weather/pkg/errors"
	"github.com/agentstation/weather/pkg/logging"
)

// IsSuccess reports whether status is a 2xx code.
func IsSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

// ReadBody reads and closes the response body.
func ReadBody(resp *http.Response, endpoint string) ([]byte, error) {
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logging.Warn().Err(err).Msg("Failed to close response body")
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WrapTransport("read", endpoint, err)
	}
	return body, nil
}

// DecodeJSON unmarshals body into target.
func DecodeJSON(body []byte, endpoint string, target any) error {
	if err := json.Unmarshal(body, target); err != nil {
		return errors.WrapTransport("decode", endpoint, err)
	}
	return nil
}
