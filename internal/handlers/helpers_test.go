// helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teacher_training_api/internal/model"
)

// createRequest builds a test request. A string body is sent verbatim so
// malformed-JSON cases can be expressed; everything else is marshaled.
func createRequest(t *testing.T, method, url string, body interface{}) *http.Request {
	t.Helper()

	var reqBodyReader io.Reader
	if body != nil {
		if strPayload, ok := body.(string); ok {
			reqBodyReader = strings.NewReader(strPayload)
		} else {
			reqBodyBytes, err := json.Marshal(body)
			require.NoError(t, err, "Failed to marshal request body")
			reqBodyReader = bytes.NewBuffer(reqBodyBytes)
		}
	}

	req := httptest.NewRequest(method, url, reqBodyReader)
	if reqBodyReader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// serveRequest runs the request through the router and returns the recorder.
func serveRequest(router *chi.Mux, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// verifyErrorResponse checks the standard error body shape.
func verifyErrorResponse(t *testing.T, bodyBytes []byte) model.ErrorDetail {
	t.Helper()

	var errResp model.APIErrorResponse
	err := json.Unmarshal(bodyBytes, &errResp)
	assert.NoError(t, err, "Failed to unmarshal error response body")
	assert.NotEmpty(t, errResp.Error.Code, "Error code should not be empty")
	assert.NotEmpty(t, errResp.Error.Message, "Error message should not be empty")
	return errResp.Error
}
