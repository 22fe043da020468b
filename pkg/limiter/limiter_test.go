package limiter

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRouter(rps, burst int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Limit(rps, burst, time.Minute))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func doRequest(r http.Handler, remoteAddr string) int {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestLimit_BurstExceeded(t *testing.T) {
	r := newRouter(1, 2)

	assert.Equal(t, http.StatusOK, doRequest(r, "10.0.0.1:1000"))
	assert.Equal(t, http.StatusOK, doRequest(r, "10.0.0.1:1000"))
	assert.Equal(t, http.StatusTooManyRequests, doRequest(r, "10.0.0.1:1000"))
}

func TestLimit_PerClientIP(t *testing.T) {
	r := newRouter(1, 1)

	assert.Equal(t, http.StatusOK, doRequest(r, "10.0.0.1:1000"))
	assert.Equal(t, http.StatusTooManyRequests, doRequest(r, "10.0.0.1:1000"))
	assert.Equal(t, http.StatusOK, doRequest(r, "10.0.0.2:1000"))
}
