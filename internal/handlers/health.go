package handlers

import "net/http"

// Healthz reports that the API is up.
func Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Message: "Job Portal API is running",
	})
}
