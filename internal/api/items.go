package api

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/matejg/najdeno/internal/imaging"
	"github.com/matejg/najdeno/internal/model"
	"github.com/matejg/najdeno/internal/store"
)

// ItemsHandler handles found-item endpoints.
type ItemsHandler struct {
	DB *sql.DB
}

type registerItemRequest struct {
	Name        string `json:"itemName"`
	Category    string `json:"itemCategory"`
	Color       string `json:"color"`
	Description string `json:"itemDescription"`
	DateFound   string `json:"dateFound"`
	FoundAt     string `json:"FoundAt"`
}

// List handles GET /api/items.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := store.ListUnclaimedItems(r.Context(), h.DB)
	if err != nil {
		storeError(w, err, "failed to list items")
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, items)
}

// Register handles POST /api/items.
func (h *ItemsHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := store.RegisterItem(r.Context(), h.DB,
		req.Name, req.Category, req.Description, req.Color, req.DateFound, req.FoundAt)
	if err != nil {
		storeError(w, err, "failed to register item")
		return
	}

	jsonResponse(w, http.StatusCreated, item)
}

// History handles GET /api/items/{id}/history.
func (h *ItemsHandler) History(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	history, err := store.ItemHistory(r.Context(), h.DB, id)
	if err != nil {
		storeError(w, err, "failed to get item history")
		return
	}
	if history == nil {
		history = []model.ItemStatus{}
	}
	jsonResponse(w, http.StatusOK, history)
}

// UploadPhoto handles PUT /api/items/{id}/photo.
func (h *ItemsHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	// Limit uploads to 5 MB.
	r.Body = http.MaxBytesReader(w, r.Body, 5<<20)

	if err := r.ParseMultipartForm(5 << 20); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	file, _, err := r.FormFile("photo")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "photo file required")
		return
	}
	defer file.Close()

	data, mime, err := imaging.Prepare(file)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := store.SetItemPhoto(r.Context(), h.DB, id, data, mime); err != nil {
		storeError(w, err, "failed to save photo")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "photo uploaded"})
}

// GetPhoto handles GET /api/items/{id}/photo.
func (h *ItemsHandler) GetPhoto(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	data, mime, err := store.GetItemPhoto(r.Context(), h.DB, id)
	if err != nil {
		storeError(w, err, "failed to get photo")
		return
	}
	if data == nil {
		jsonError(w, http.StatusNotFound, "no photo")
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(data)
}
