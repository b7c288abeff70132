package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hockeystats-api/internal/config"
	"hockeystats-api/pkg/lambda"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h, _ := newTestHandler(t)
	router := gin.New()
	SetupRoutes(router, &RouterConfig{
		ItemHandler: h,
		RateLimit:   config.RateLimitConfig{},
		Logger:      quietLogger(),
	})
	return router
}

func serve(router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRoutes_AddThenFetch(t *testing.T) {
	router := newTestRouter(t)

	w := serve(router, http.MethodGet, "/add?id=42&name=Gretzky", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Item added"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(lambda.RequestIDHeader))

	w = serve(router, http.MethodGet, "/fetch?id=42", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"42","name":"Gretzky"}`, w.Body.String())
}

func TestRoutes_PostAdd(t *testing.T) {
	router := newTestRouter(t)

	w := serve(router, http.MethodPost, "/add", `{"id":"7","name":"Crosby"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = serve(router, http.MethodGet, "/?action=fetch&id=7", "")
	require.Equal(t, http.StatusOK, w.Code)

	var item map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.Equal(t, "Crosby", item["name"])
}

func TestRoutes_ValidationAndNotFound(t *testing.T) {
	router := newTestRouter(t)

	w := serve(router, http.MethodGet, "/add?id=42", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Missing id or name"}`, w.Body.String())

	w = serve(router, http.MethodGet, "/fetch?id=missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Item not found"}`, w.Body.String())

	w = serve(router, http.MethodGet, "/teams", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, w.Body.String())

	w = serve(router, http.MethodPut, "/add", `{"id":"1","name":"x"}`)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestRoutes_WelcomeAndHealth(t *testing.T) {
	router := newTestRouter(t)

	w := serve(router, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, WelcomeMessage, w.Body.String())

	w = serve(router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestGinHandler_HandlerError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/boom", GinHandler(func(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
		return nil, errors.New("boom")
	}))

	w := serve(router, http.MethodGet, "/boom", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"An unexpected error occurred"}`, w.Body.String())
}
