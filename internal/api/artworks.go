package api

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/halcyonarts/gallery/internal/media"
	"github.com/halcyonarts/gallery/internal/model"
	"github.com/halcyonarts/gallery/internal/slug"
	"github.com/halcyonarts/gallery/internal/store"
)

// ArtworksHandler handles catalog endpoints.
type ArtworksHandler struct {
	DB       *sql.DB
	Uploader *media.Uploader
}

type artworkRequest struct {
	Title            string   `json:"title"`
	Slug             string   `json:"slug"`
	Description      string   `json:"description"`
	Images           []string `json:"images"`
	VideoURL         string   `json:"video_url"`
	Price            float64  `json:"price"`
	Status           string   `json:"status"`
	Size             string   `json:"size"`
	Tone             string   `json:"tone"`
	EditionCount     int64    `json:"edition_count"`
	Dimensions       string   `json:"dimensions"`
	Materials        string   `json:"materials"`
	PaymentURL       string   `json:"payment_url"`
	ShowInCollection *bool    `json:"show_in_collection"`
}

type artworkUpdateRequest struct {
	Title            *string   `json:"title"`
	Slug             *string   `json:"slug"`
	Description      *string   `json:"description"`
	Images           *[]string `json:"images"`
	VideoURL         *string   `json:"video_url"`
	Price            *float64  `json:"price"`
	Status           *string   `json:"status"`
	Size             *string   `json:"size"`
	Tone             *string   `json:"tone"`
	EditionCount     *int64    `json:"edition_count"`
	Dimensions       *string   `json:"dimensions"`
	Materials        *string   `json:"materials"`
	PaymentURL       *string   `json:"payment_url"`
	ShowInCollection *bool     `json:"show_in_collection"`
}

type uploadImageRequest struct {
	DataURL string `json:"dataUrl"`
}

// List handles GET /api/artworks.
func (h *ArtworksHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseArtworkFilter(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	artworks, err := store.ListArtworks(r.Context(), h.DB, *filter)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list artworks")
		return
	}
	if artworks == nil {
		artworks = []model.Artwork{}
	}
	jsonResponse(w, http.StatusOK, artworks)
}

// Get handles GET /api/artworks/{slugOrID}.
func (h *ArtworksHandler) Get(w http.ResponseWriter, r *http.Request) {
	artwork, err := store.GetArtworkBySlugOrID(r.Context(), h.DB, r.PathValue("slugOrID"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get artwork")
		return
	}
	if artwork == nil {
		jsonError(w, http.StatusNotFound, "artwork not found")
		return
	}
	jsonResponse(w, http.StatusOK, artwork)
}

// Create handles POST /api/artworks.
func (h *ArtworksHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req artworkRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Defaults mirror the catalog schema.
	if req.Status == "" {
		req.Status = model.ArtworkAvailable
	}
	if req.Size == "" {
		req.Size = model.SizeMedium
	}
	if req.Tone == "" {
		req.Tone = model.ToneBalanced
	}
	if req.EditionCount == 0 {
		req.EditionCount = 1
	}
	showInCollection := true
	if req.ShowInCollection != nil {
		showInCollection = *req.ShowInCollection
	}

	if msg := validateArtworkFields(&req); msg != "" {
		jsonError(w, http.StatusBadRequest, msg)
		return
	}

	s := req.Slug
	if s == "" {
		s = slug.Make(req.Title)
	}
	if s == "" {
		jsonError(w, http.StatusBadRequest, "title must contain letters or digits to derive a slug")
		return
	}

	artwork, err := store.CreateArtwork(r.Context(), h.DB, model.Artwork{
		Title:            req.Title,
		Slug:             s,
		Description:      req.Description,
		Images:           req.Images,
		VideoURL:         req.VideoURL,
		Price:            req.Price,
		Status:           req.Status,
		Size:             req.Size,
		Tone:             req.Tone,
		EditionCount:     req.EditionCount,
		Dimensions:       req.Dimensions,
		Materials:        req.Materials,
		PaymentURL:       req.PaymentURL,
		ShowInCollection: showInCollection,
	})
	if errors.Is(err, store.ErrDuplicate) {
		jsonError(w, http.StatusConflict, "an artwork with this slug already exists")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create artwork")
		return
	}

	jsonResponse(w, http.StatusCreated, artwork)
}

// Update handles PATCH /api/artworks/{id}.
func (h *ArtworksHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid artwork id")
		return
	}

	var req artworkUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if msg := validateArtworkUpdate(&req); msg != "" {
		jsonError(w, http.StatusBadRequest, msg)
		return
	}

	// A title change without an explicit slug re-derives the slug.
	if req.Title != nil && req.Slug == nil {
		derived := slug.Make(*req.Title)
		if derived == "" {
			jsonError(w, http.StatusBadRequest, "title must contain letters or digits to derive a slug")
			return
		}
		req.Slug = &derived
	}

	artwork, err := store.UpdateArtwork(r.Context(), h.DB, id, store.ArtworkUpdate{
		Title:            req.Title,
		Slug:             req.Slug,
		Description:      req.Description,
		Images:           req.Images,
		VideoURL:         req.VideoURL,
		Price:            req.Price,
		Status:           req.Status,
		Size:             req.Size,
		Tone:             req.Tone,
		EditionCount:     req.EditionCount,
		Dimensions:       req.Dimensions,
		Materials:        req.Materials,
		PaymentURL:       req.PaymentURL,
		ShowInCollection: req.ShowInCollection,
	})
	if errors.Is(err, store.ErrDuplicate) {
		jsonError(w, http.StatusConflict, "an artwork with this slug already exists")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update artwork")
		return
	}
	if artwork == nil {
		jsonError(w, http.StatusNotFound, "artwork not found")
		return
	}

	jsonResponse(w, http.StatusOK, artwork)
}

// Delete handles DELETE /api/artworks/{id}.
func (h *ArtworksHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid artwork id")
		return
	}

	deleted, err := store.DeleteArtwork(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete artwork")
		return
	}
	if !deleted {
		jsonError(w, http.StatusNotFound, "artwork not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UploadImage handles POST /api/artworks/upload-image.
func (h *ArtworksHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	var req uploadImageRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !strings.HasPrefix(req.DataURL, "data:image/") {
		jsonError(w, http.StatusBadRequest, "dataUrl must be an inline image")
		return
	}

	result, err := h.Uploader.UploadDataURL(r.Context(), req.DataURL)
	if errors.Is(err, media.ErrNotConfigured) {
		jsonError(w, http.StatusServiceUnavailable, "image hosting is not configured")
		return
	}
	var uploadErr *media.UploadError
	if errors.As(err, &uploadErr) {
		slog.Error("image upload failed", "error", uploadErr.Message)
		jsonError(w, http.StatusBadGateway, uploadErr.Message)
		return
	}
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	jsonResponse(w, http.StatusCreated, result)
}

func validateArtworkFields(req *artworkRequest) string {
	if len(req.Title) < 2 {
		return "title must be at least 2 characters"
	}
	if req.Price <= 0 {
		return "price must be positive"
	}
	if req.EditionCount <= 0 {
		return "edition_count must be a positive integer"
	}
	if !model.ValidArtworkStatus(req.Status) {
		return "invalid status"
	}
	if !model.ValidSize(req.Size) {
		return "invalid size"
	}
	if !model.ValidTone(req.Tone) {
		return "invalid tone"
	}
	for _, image := range req.Images {
		if !validURL(image) {
			return "images must be valid URLs"
		}
	}
	if req.VideoURL != "" && !validURL(req.VideoURL) {
		return "video_url must be a valid URL"
	}
	if req.PaymentURL != "" && !validURL(req.PaymentURL) {
		return "payment_url must be a valid URL"
	}
	return ""
}

func validateArtworkUpdate(req *artworkUpdateRequest) string {
	if req.Title != nil && len(*req.Title) < 2 {
		return "title must be at least 2 characters"
	}
	if req.Price != nil && *req.Price <= 0 {
		return "price must be positive"
	}
	if req.EditionCount != nil && *req.EditionCount <= 0 {
		return "edition_count must be a positive integer"
	}
	if req.Status != nil && !model.ValidArtworkStatus(*req.Status) {
		return "invalid status"
	}
	if req.Size != nil && !model.ValidSize(*req.Size) {
		return "invalid size"
	}
	if req.Tone != nil && !model.ValidTone(*req.Tone) {
		return "invalid tone"
	}
	if req.Images != nil {
		for _, image := range *req.Images {
			if !validURL(image) {
				return "images must be valid URLs"
			}
		}
	}
	if req.VideoURL != nil && *req.VideoURL != "" && !validURL(*req.VideoURL) {
		return "video_url must be a valid URL"
	}
	if req.PaymentURL != nil && *req.PaymentURL != "" && !validURL(*req.PaymentURL) {
		return "payment_url must be a valid URL"
	}
	return ""
}

func parseArtworkFilter(r *http.Request) (*store.ArtworkFilter, error) {
	q := r.URL.Query()
	filter := &store.ArtworkFilter{}

	if size := q.Get("size"); size != "" {
		if !model.ValidSize(size) {
			return nil, errors.New("invalid size filter")
		}
		filter.Size = size
	}
	if tone := q.Get("tone"); tone != "" {
		if !model.ValidTone(tone) {
			return nil, errors.New("invalid tone filter")
		}
		filter.Tone = tone
	}
	if availability := q.Get("availability"); availability != "" {
		if !model.ValidArtworkStatus(availability) {
			return nil, errors.New("invalid availability filter")
		}
		filter.Status = availability
	}
	if raw := q.Get("minPrice"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.New("invalid minPrice")
		}
		filter.MinPrice = &value
	}
	if raw := q.Get("maxPrice"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.New("invalid maxPrice")
		}
		filter.MaxPrice = &value
	}
	if raw := q.Get("includeHidden"); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, errors.New("invalid includeHidden")
		}
		filter.IncludeHidden = value
	}
	if raw := q.Get("showInCollection"); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, errors.New("invalid showInCollection")
		}
		filter.ShowInCollection = &value
	}
	if raw := q.Get("limit"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value <= 0 {
			return nil, errors.New("limit must be a positive integer")
		}
		filter.Limit = value
	}

	return filter, nil
}
