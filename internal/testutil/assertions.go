package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertStatusCode verifies the HTTP response status code
func AssertStatusCode(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	assert.Equal(t, expected, resp.StatusCode, "unexpected status code")
}

// DecodeEnvelope unmarshals a response body into a generic envelope map and
// requires success to be true.
func DecodeEnvelope(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")

	var result map[string]interface{}
	err = json.Unmarshal(body, &result)
	require.NoError(t, err, "failed to unmarshal response: %s", string(body))

	require.Equal(t, true, result["success"], "expected success envelope, got: %s", string(body))
	return result
}

// DecodeData unmarshals the data field of a success envelope into v.
func DecodeData(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")

	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	err = json.Unmarshal(body, &envelope)
	require.NoError(t, err, "failed to unmarshal envelope: %s", string(body))
	require.True(t, envelope.Success, "expected success envelope, got: %s", string(body))

	err = json.Unmarshal(envelope.Data, v)
	require.NoError(t, err, "failed to unmarshal data: %s", string(envelope.Data))
}

// AssertErrorResponse verifies the error envelope with expected status and message fragment.
func AssertErrorResponse(t *testing.T, resp *http.Response, expectedStatus int, expectedMessage string) {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode, "unexpected status code")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")

	var result struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	err = json.Unmarshal(body, &result)
	require.NoError(t, err, "failed to unmarshal error response: %s", string(body))

	assert.False(t, result.Success, "expected error envelope")
	assert.Contains(t, result.Message, expectedMessage, "error message mismatch")
}
