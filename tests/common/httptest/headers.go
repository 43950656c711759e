//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const RequestIDHeader = "X-Request-ID"

// AssertRequestID checks the response echoes a request id and returns it.
// A generated id must be a UUID.
func AssertRequestID(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	id := w.Header().Get(RequestIDHeader)
	require.NotEmpty(t, id, "missing %s header", RequestIDHeader)
	return id
}

func AssertGeneratedRequestID(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	_, err := uuid.Parse(AssertRequestID(t, w))
	assert.NoError(t, err, "generated request id is not a UUID")
}
