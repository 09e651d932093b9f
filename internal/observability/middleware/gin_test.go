package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/KasumiMercury/primind-pill-timer/internal/observability/logging"
	"github.com/KasumiMercury/primind-pill-timer/internal/observability/metrics"
	"github.com/KasumiMercury/primind-pill-timer/internal/observability/middleware"
)

func setupRouter(t *testing.T) (*gin.Engine, *sdkmetric.ManualReader) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	reader := sdkmetric.NewManualReader()
	provider := metrics.NewProvider(context.Background(), metrics.Config{ServiceName: "test"}, sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	httpMetrics, err := metrics.NewHTTPMetrics(provider.Meter("test"))
	require.NoError(t, err)

	router := gin.New()
	router.Use(middleware.PanicRecoveryGin())
	router.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:   []string{"/ping"},
		Module:      logging.ModuleAPI,
		TracerName:  "test",
		HTTPMetrics: httpMetrics,
	}))

	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/events/:id", func(c *gin.Context) {
		ctx := c.Request.Context()
		c.JSON(http.StatusOK, gin.H{
			"request_id": logging.RequestIDFromContext(ctx),
			"module":     string(logging.ModuleFromContext(ctx)),
		})
	})
	router.GET("/boom", func(*gin.Context) { panic("boom") })

	return router, reader
}

func requestCount(t *testing.T, reader *sdkmetric.ManualReader) int64 {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var total int64

	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "http.server.request.count" {
				continue
			}

			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)

			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
		}
	}

	return total
}

func TestGinMiddlewareRequestIDSuccess(t *testing.T) {
	tests := []struct {
		name       string
		incoming   string
		expectSame bool
	}{
		{name: "incoming id is propagated", incoming: "client-req-42", expectSame: true},
		{name: "missing id is generated", incoming: "", expectSame: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, reader := setupRouter(t)

			req := httptest.NewRequest(http.MethodGet, "/events/1", nil)
			if tt.incoming != "" {
				req.Header.Set("x-request-id", tt.incoming)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)

			got := rec.Header().Get("x-request-id")
			if tt.expectSame {
				assert.Equal(t, tt.incoming, got)
			} else {
				assert.NotEmpty(t, got)
			}

			assert.Contains(t, rec.Body.String(), `"request_id":"`+got+`"`)
			assert.Contains(t, rec.Body.String(), `"module":"api"`)
			assert.Equal(t, int64(1), requestCount(t, reader))
		})
	}
}

func TestGinMiddlewareSkipPathSuccess(t *testing.T) {
	router, reader := setupRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("x-request-id"))
	assert.Equal(t, int64(0), requestCount(t, reader))
}

func TestPanicRecoveryGinError(t *testing.T) {
	router, _ := setupRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal_error")
}
