package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveCounters(t *testing.T) {
	before := testutil.ToFloat64(deliveriesTotal.WithLabelValues("ok"))
	ObserveDelivery("ok")
	ObserveDelivery("ok")
	assert.Equal(t, before+2, testutil.ToFloat64(deliveriesTotal.WithLabelValues("ok")))

	before = testutil.ToFloat64(storeCallsTotal.WithLabelValues("xlsx", "append", "invalid_range"))
	ObserveStoreCall("xlsx", "append", "invalid_range")
	assert.Equal(t, before+1, testutil.ToFloat64(storeCallsTotal.WithLabelValues("xlsx", "append", "invalid_range")))

	before = testutil.ToFloat64(flowsTotal.WithLabelValues("submission", "no_valid_recipients"))
	ObserveFlow("submission", "no_valid_recipients")
	assert.Equal(t, before+1, testutil.ToFloat64(flowsTotal.WithLabelValues("submission", "no_valid_recipients")))
}

func TestHTTPMiddlewareRecordsRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(HTTPMiddleware())
	r.GET("/health", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/metrics", gin.WrapH(Handler()))

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/health", "200"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/health", "200")))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "form_relay_http_requests_total")
}
