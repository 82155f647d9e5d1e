package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Envelope mirrors the API response wrapper so tests can decode the
// data payload without committing to a concrete type up front.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *EnvelopeError  `json:"error"`
	Meta    *EnvelopeMeta   `json:"meta"`
}

// EnvelopeError is the error half of the envelope.
type EnvelopeError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}

// EnvelopeMeta is the pagination half of the envelope.
type EnvelopeMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// HTTPTestCase sends one request through a router and checks the
// status and envelope against expectations.
type HTTPTestCase struct {
	Name        string
	Method      string
	Path        string
	Body        interface{}
	Headers     map[string]string
	WantStatus  int
	WantErrCode string
	Check       func(t *testing.T, w *httptest.ResponseRecorder)
}

// NewRouter returns a quiet Gin engine with handlers registered on the
// /api/v1 group, the way the HTTP server mounts them.
func NewRouter(register func(rg *gin.RouterGroup)) *gin.Engine {
	engine := gin.New()
	register(engine.Group("/api/v1"))
	return engine
}

// RunHTTPTestCases runs each case as a subtest against the engine.
func RunHTTPTestCases(t *testing.T, engine *gin.Engine, cases []HTTPTestCase) {
	t.Helper()

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			RunHTTPTestCase(t, engine, tc)
		})
	}
}

// RunHTTPTestCase runs one case through the engine's real routing so
// path parameters and route patterns behave as in production.
func RunHTTPTestCase(t *testing.T, engine *gin.Engine, tc HTTPTestCase) {
	t.Helper()

	method := tc.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if tc.Body != nil {
		payload, err := json.Marshal(tc.Body)
		require.NoError(t, err, "Failed to marshal request body")
		body = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, tc.Path, body)
	if tc.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range tc.Headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if tc.WantStatus != 0 {
		assert.Equal(t, tc.WantStatus, w.Code, "Unexpected status code")
	}

	if tc.WantErrCode != "" {
		env := DecodeEnvelope(t, w)
		assert.False(t, env.Success, "Expected an error envelope")
		if assert.NotNil(t, env.Error, "Expected error details in envelope") {
			assert.Equal(t, tc.WantErrCode, env.Error.Code, "Unexpected error code")
		}
	}

	if tc.Check != nil {
		tc.Check(t, w)
	}
}

// DecodeEnvelope parses the recorded response body as the API envelope.
func DecodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) Envelope {
	t.Helper()

	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "Failed to parse response envelope")
	return env
}

// DecodeData decodes a success envelope's data payload into T.
func DecodeData[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	env := DecodeEnvelope(t, w)
	require.True(t, env.Success, "Expected a success envelope")

	var data T
	require.NoError(t, json.Unmarshal(env.Data, &data), "Failed to decode envelope data")
	return data
}
