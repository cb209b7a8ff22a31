package http

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/skylinehq/landscapes/internal/store"
	"github.com/skylinehq/landscapes/pkg/apisdk"
	"github.com/skylinehq/landscapes/pkg/httpx"
)

// maxHeapBytes is the heap ceiling for the memory health check.
const maxHeapBytes = 300 * 1024 * 1024

// LivezHandler godoc
//
//	@Summary		Liveness Check Endpoint
//	@Description	Liveness probe returning basic service status, uptime, and version information
//	@Description	This endpoint always returns 200 OK if the service is running
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	apisdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := apisdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		}
		httpx.WriteJSON(w, http.StatusOK, response)
	}
}

// HealthHandler godoc
//
//	@Summary		Health Check Endpoint
//	@Description	Authenticated health report with per-dependency checks for the database and heap usage
//	@Description	Returns 503 when any check fails
//	@Tags			Health
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	apisdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		401	{object}	apisdk.APIError			"Invalid or missing access token"
//	@Failure		503	{object}	apisdk.HealthResponse	"status, uptime, version, checks - service not healthy"
//	@Router			/health [get].
func HealthHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &apisdk.HealthChecks{
			Database:   "ok",
			MemoryHeap: "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		// Check database connectivity
		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		// Check heap usage against the configured ceiling
		var mem runtime.MemStats
		runtime.ReadMemStats(&mem)
		if mem.HeapAlloc > maxHeapBytes {
			checks.MemoryHeap = fmt.Sprintf("error: heap %d bytes exceeds %d", mem.HeapAlloc, maxHeapBytes)
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		response := apisdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		}
		httpx.WriteJSON(w, statusCode, response)
	}
}
