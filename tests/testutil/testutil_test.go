package testutil

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMockDB(t *testing.T) {
	mockDB := NewMockDB(t)
	defer mockDB.Close()

	assert.NotNil(t, mockDB.DB)
	assert.NotNil(t, mockDB.Mock)
	assert.NotNil(t, mockDB.SqlDB)
}

func TestMockDB_ExpectationsWereMet(t *testing.T) {
	mockDB := NewMockDB(t)
	defer mockDB.Close()

	// No expectations set, should pass
	mockDB.ExpectationsWereMet(t)
}

func TestNewTestContext(t *testing.T) {
	tc := NewTestContext(t)

	assert.NotNil(t, tc.Context)
	assert.NotNil(t, tc.Recorder)
	assert.NotNil(t, tc.Engine)
	assert.Equal(t, http.MethodGet, tc.Context.Request.Method)
}

func TestTestContext_SetRequestID(t *testing.T) {
	tc := NewTestContext(t)

	tc.SetRequestID("req-123")

	val, exists := tc.Context.Get("X-Request-ID")
	assert.True(t, exists)
	assert.Equal(t, "req-123", val)
}

func TestTestContext_SetHeader(t *testing.T) {
	tc := NewTestContext(t)

	tc.SetHeader("Authorization", "Bearer token")

	assert.Equal(t, "Bearer token", tc.Context.Request.Header.Get("Authorization"))
}

func TestTestContext_ResponseCode(t *testing.T) {
	tc := NewTestContext(t)
	tc.Recorder.WriteHeader(http.StatusCreated)

	assert.Equal(t, http.StatusCreated, tc.ResponseCode())
}

func TestNewTestUUID(t *testing.T) {
	uuid1 := NewTestUUID("test-seed")
	uuid2 := NewTestUUID("test-seed")
	uuid3 := NewTestUUID("different-seed")

	// Same seed should produce same UUID
	assert.Equal(t, uuid1, uuid2)

	// Different seed should produce different UUID
	assert.NotEqual(t, uuid1, uuid3)
}

func TestNewRandomUUID(t *testing.T) {
	uuid1 := NewRandomUUID()
	uuid2 := NewRandomUUID()

	// Random UUIDs should be different
	assert.NotEqual(t, uuid1, uuid2)
}

func TestContextWithTimeout(t *testing.T) {
	ctx, cancel := ContextWithTimeout(t, 100*time.Millisecond)
	defer cancel()

	require.NotNil(t, ctx)

	// Context should have deadline
	deadline, ok := ctx.Deadline()
	assert.True(t, ok)
	assert.True(t, deadline.After(time.Now()))
}

func TestContextWithCancel(t *testing.T) {
	ctx, cancel := ContextWithCancel(t)

	select {
	case <-ctx.Done():
		t.Fatal("Context should not be cancelled yet")
	default:
		// Expected
	}

	cancel()

	select {
	case <-ctx.Done():
		// Expected
	default:
		t.Fatal("Context should be cancelled")
	}
}

func TestAssertEventually(t *testing.T) {
	counter := 0
	go func() {
		time.Sleep(50 * time.Millisecond)
		counter = 1
	}()

	AssertEventually(t, func() bool {
		return counter == 1
	}, 200*time.Millisecond, 10*time.Millisecond)
}

func TestAssertNever(t *testing.T) {
	value := false

	AssertNever(t, func() bool {
		return value
	}, 50*time.Millisecond, 10*time.Millisecond)
}

func TestRunHTTPTestCase(t *testing.T) {
	engine := NewRouter(func(rg *gin.RouterGroup) {
		rg.GET("/products/:id", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"data":    gin.H{"id": c.Param("id")},
			})
		})
	})

	RunHTTPTestCase(t, engine, HTTPTestCase{
		Name:       "fetch by id",
		Method:     http.MethodGet,
		Path:       "/api/v1/products/42",
		WantStatus: http.StatusOK,
		Check: func(t *testing.T, w *httptest.ResponseRecorder) {
			data := DecodeData[map[string]string](t, w)
			assert.Equal(t, "42", data["id"])
		},
	})
}

func TestRunHTTPTestCases(t *testing.T) {
	engine := NewRouter(func(rg *gin.RouterGroup) {
		rg.GET("/products", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"success": true, "data": []string{}})
		})
		rg.POST("/products", func(c *gin.Context) {
			var payload map[string]string
			if err := c.ShouldBindJSON(&payload); err != nil || payload["sku"] == "" {
				c.JSON(http.StatusBadRequest, gin.H{
					"success": false,
					"error":   gin.H{"code": "ERR_VALIDATION", "message": "sku is required"},
				})
				return
			}
			c.JSON(http.StatusCreated, gin.H{"success": true, "data": payload})
		})
	})

	RunHTTPTestCases(t, engine, []HTTPTestCase{
		{
			Name:       "list",
			Path:       "/api/v1/products",
			WantStatus: http.StatusOK,
		},
		{
			Name:       "create",
			Method:     http.MethodPost,
			Path:       "/api/v1/products",
			Body:       map[string]string{"sku": "DRL-100"},
			WantStatus: http.StatusCreated,
		},
		{
			Name:        "create without sku",
			Method:      http.MethodPost,
			Path:        "/api/v1/products",
			Body:        map[string]string{"name": "Drill"},
			WantStatus:  http.StatusBadRequest,
			WantErrCode: "ERR_VALIDATION",
		},
		{
			Name:       "unknown route",
			Path:       "/api/v1/warehouses",
			WantStatus: http.StatusNotFound,
		},
	})
}

func TestDecodeEnvelope(t *testing.T) {
	tc := NewTestContext(t)
	tc.Context.JSON(http.StatusConflict, gin.H{
		"success": false,
		"error":   gin.H{"code": "ERR_DUPLICATE_SKU", "message": "SKU already exists"},
	})

	env := DecodeEnvelope(t, tc.Recorder)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "ERR_DUPLICATE_SKU", env.Error.Code)
}

func TestDecodeData(t *testing.T) {
	type productView struct {
		SKU string `json:"sku"`
	}

	tc := NewTestContext(t)
	tc.Context.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"sku": "GLV-001"},
	})

	resp := DecodeData[productView](t, tc.Recorder)
	assert.Equal(t, "GLV-001", resp.SKU)
}
