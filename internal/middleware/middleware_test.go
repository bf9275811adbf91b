package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/catalog-api/internal/auth"
	"github.com/BruksfildServices01/catalog-api/internal/infra/memstore"
	"github.com/BruksfildServices01/catalog-api/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func protectedRouter(t *testing.T) (*gin.Engine, *auth.TokenManager, *models.Client) {
	t.Helper()
	store := memstore.New()
	client := &models.Client{Name: "Martin", Email: "martin@email.com"}
	require.NoError(t, store.CreateClient(context.Background(), client))

	tm := auth.NewTokenManager("secret", time.Hour)

	r := gin.New()
	r.GET("/private", RequireClient(tm, store), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": Principal(c).ID})
	})
	return r, tm, client
}

func do(r http.Handler, req *http.Request) (*httptest.ResponseRecorder, map[string]any) {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestRequireClient_MissingHeader(t *testing.T) {
	r, _, _ := protectedRouter(t)

	w, body := do(r, httptest.NewRequest(http.MethodGet, "/private", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, float64(401), body["code"])
	assert.Equal(t, MessageMissingToken, body["message"])
}

func TestRequireClient_InvalidTokens(t *testing.T) {
	r, _, _ := protectedRouter(t)
	other, err := auth.NewTokenManager("other", time.Hour).Issue(&models.Client{ID: 1})
	require.NoError(t, err)
	unknown, err := auth.NewTokenManager("secret", time.Hour).Issue(&models.Client{ID: 42})
	require.NoError(t, err)

	for _, h := range []string{"Basic abc", "Bearer garbage", "Bearer " + other, "Bearer " + unknown} {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", h)

		w, body := do(r, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, h)
		assert.Equal(t, MessageInvalidToken, body["message"], h)
	}
}

func TestRequireClient_Valid(t *testing.T) {
	r, tm, client := protectedRouter(t)
	token, err := tm.Issue(client)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w, body := do(r, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(client.ID), body["id"])
}

func TestPrincipal_Absent(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, Principal(c))
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"http://allowed.test"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "http://allowed.test")
	w, _ := do(r, req)
	assert.Equal(t, "http://allowed.test", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "http://evil.test")
	w, _ = do(r, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "http://allowed.test")
	w, _ = do(r, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestCORSMiddleware_EmptyListAllowsAll(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware(nil))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "http://any.test")
	w, _ := do(r, req)
	assert.Equal(t, "http://any.test", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/x", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextRequestID))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	generated := w.Header().Get(HeaderRequestID)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
}
