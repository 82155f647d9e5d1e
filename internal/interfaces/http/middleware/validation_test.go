package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pim/backend/internal/interfaces/http/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
	SetupValidator()
}

type createRequest struct {
	Name string `json:"name" binding:"required,min=2"`
	Type string `json:"type" binding:"omitempty,oneof=simple variable"`
}

func TestHandleValidationError(t *testing.T) {
	t.Run("reports field details with json names", func(t *testing.T) {
		engine := gin.New()
		engine.POST("/items", func(c *gin.Context) {
			var req createRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				HandleValidationError(c, err)
				return
			}
			c.Status(http.StatusOK)
		})

		body := strings.NewReader(`{"name":"","type":"grouped"}`)
		req := httptest.NewRequest("POST", "/items", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
		require.Len(t, resp.Error.Details, 2)

		fields := map[string]string{}
		for _, d := range resp.Error.Details {
			fields[d.Field] = d.Message
		}
		assert.Equal(t, "This field is required", fields["name"])
		assert.Equal(t, "Must be one of: simple variable", fields["type"])
	})

	t.Run("includes the request id when set", func(t *testing.T) {
		engine := gin.New()
		engine.Use(RequestID())
		engine.POST("/items", func(c *gin.Context) {
			var req createRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				HandleValidationError(c, err)
				return
			}
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest("POST", "/items", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Error)
		assert.NotEmpty(t, resp.Error.RequestID)
	})
}
