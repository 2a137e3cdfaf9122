package api

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/matejg/najdeno/internal/model"
	"github.com/matejg/najdeno/internal/store"
)

// ClaimsHandler handles ownership-claim endpoints.
type ClaimsHandler struct {
	DB *sql.DB
}

type fileClaimRequest struct {
	ItemID         int64  `json:"itemID"`
	OwnerFirstName string `json:"OwnerFirstName"`
	OwnerLastName  string `json:"OwnerLastName"`
}

// List handles GET /api/claims.
func (h *ClaimsHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, err := store.ListPendingClaims(r.Context(), h.DB)
	if err != nil {
		storeError(w, err, "failed to list claims")
		return
	}
	if claims == nil {
		claims = []model.Claim{}
	}
	jsonResponse(w, http.StatusOK, claims)
}

// Create handles POST /api/claims.
func (h *ClaimsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req fileClaimRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ItemID <= 0 {
		jsonError(w, http.StatusBadRequest, "itemID required")
		return
	}

	claim, err := store.CreateClaim(r.Context(), h.DB, req.ItemID, req.OwnerFirstName, req.OwnerLastName)
	if err != nil {
		storeError(w, err, "failed to file claim")
		return
	}

	jsonResponse(w, http.StatusCreated, claim)
}

// Approve handles POST /api/claims/{claimID}/approve.
func (h *ClaimsHandler) Approve(w http.ResponseWriter, r *http.Request) {
	claimID, err := strconv.ParseInt(r.PathValue("claimID"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid claim id")
		return
	}

	itemID, err := store.ApproveClaim(r.Context(), h.DB, claimID)
	if err != nil {
		storeError(w, err, "failed to approve claim")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"claimID": claimID,
		"itemID":  itemID,
	})
}

// Reject handles POST /api/claims/{claimID}/reject.
func (h *ClaimsHandler) Reject(w http.ResponseWriter, r *http.Request) {
	claimID, err := strconv.ParseInt(r.PathValue("claimID"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid claim id")
		return
	}

	if err := store.RejectClaim(r.Context(), h.DB, claimID); err != nil {
		storeError(w, err, "failed to reject claim")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"claimID": claimID,
	})
}
