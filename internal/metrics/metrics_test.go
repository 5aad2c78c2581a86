package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareUsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	Init()

	r := gin.New()
	r.Use(Middleware())
	r.GET("/departments/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/departments/:id", "404"))

	for _, path := range []string{"/departments/1", "/departments/2"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusNotFound, rec.Code)
	}

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/departments/:id", "404"))
	assert.Equal(t, before+2, after)
}

func TestObserveExportCountsRows(t *testing.T) {
	Init()
	before := testutil.ToFloat64(exportRowsTotal.WithLabelValues("csv", "job"))

	ObserveExport("csv", "job", "success", 3)
	ObserveExport("csv", "job", "failed", 0)

	assert.Equal(t, before+3, testutil.ToFloat64(exportRowsTotal.WithLabelValues("csv", "job")))
	assert.GreaterOrEqual(t, testutil.ToFloat64(exportRunsTotal.WithLabelValues("csv", "job", "failed")), 1.0)
}
