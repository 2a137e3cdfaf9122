package api

import (
	"database/sql"
	"net/http"

	"github.com/matejg/najdeno/internal/model"
	"github.com/matejg/najdeno/internal/store"
)

// ReportsHandler handles the read-only dashboard aggregations.
type ReportsHandler struct {
	DB *sql.DB
}

// Metrics handles GET /api/metrics.
func (h *ReportsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := store.StatusMetrics(r.Context(), h.DB)
	if err != nil {
		storeError(w, err, "failed to compute metrics")
		return
	}
	jsonResponse(w, http.StatusOK, metrics)
}

// Employees handles GET /api/employees.
func (h *ReportsHandler) Employees(w http.ResponseWriter, r *http.Request) {
	employees, err := store.ListEmployees(r.Context(), h.DB)
	if err != nil {
		storeError(w, err, "failed to list employees")
		return
	}
	if employees == nil {
		employees = []model.Employee{}
	}
	jsonResponse(w, http.StatusOK, employees)
}
