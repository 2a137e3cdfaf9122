package api

import (
	"database/sql"
	"net/http"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB) http.Handler {
	mux := http.NewServeMux()

	itemsHandler := &ItemsHandler{DB: db}
	claimsHandler := &ClaimsHandler{DB: db}
	reportsHandler := &ReportsHandler{DB: db}

	// Items.
	mux.HandleFunc("GET /api/items", itemsHandler.List)
	mux.HandleFunc("POST /api/items", itemsHandler.Register)
	mux.HandleFunc("GET /api/items/{id}/history", itemsHandler.History)
	mux.HandleFunc("PUT /api/items/{id}/photo", itemsHandler.UploadPhoto)
	mux.HandleFunc("GET /api/items/{id}/photo", itemsHandler.GetPhoto)

	// Claims.
	mux.HandleFunc("GET /api/claims", claimsHandler.List)
	mux.HandleFunc("POST /api/claims", claimsHandler.Create)
	mux.HandleFunc("POST /api/claims/{claimID}/approve", claimsHandler.Approve)
	mux.HandleFunc("POST /api/claims/{claimID}/reject", claimsHandler.Reject)

	// Reporting.
	mux.HandleFunc("GET /api/metrics", reportsHandler.Metrics)
	mux.HandleFunc("GET /api/employees", reportsHandler.Employees)

	// CORS wraps the whole API so preflight requests are answered before
	// method matching can 405 them.
	return CORS(mux)
}
