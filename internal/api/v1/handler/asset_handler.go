package handler

import (
	"encoding/json"
	"net/http"

	"github.com/AlfonsoCifuentes/ainews-platform-sub008/internal/api/v1/dto"
	"github.com/AlfonsoCifuentes/ainews-platform-sub008/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// AssetHandler handles storage upload endpoints
type AssetHandler struct {
	assetService service.AssetService
	validate     *validator.Validate
	logger       zerolog.Logger
}

// NewAssetHandler creates a new AssetHandler
func NewAssetHandler(assetService service.AssetService, validate *validator.Validate, logger zerolog.Logger) *AssetHandler {
	return &AssetHandler{assetService: assetService, validate: validate, logger: logger}
}

// RegisterRoutes mounts asset routes behind auth.
func (h *AssetHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("/assets/course-cover", authMw(http.HandlerFunc(h.coverUploadURL)))
}

// coverUploadURL godoc
// @Summary Presign a cover upload
// @Description Returns a presigned URL for uploading a course cover image.
// @Tags assets
// @Accept json
// @Produce json
// @Param request body dto.CoverUploadRequestDTO true "Upload request"
// @Success 200 {object} dto.CoverUploadResponseDTO
// @Failure 400 {string} string "Invalid JSON payload or validation failed"
// @Failure 401 {string} string "Unauthorized"
// @Failure 500 {string} string "Failed to generate upload URL"
// @Router /assets/course-cover [post]
func (h *AssetHandler) coverUploadURL(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req dto.CoverUploadRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	uploadURL, storagePath, err := h.assetService.CoverUploadURL(r.Context(), req.CourseID, req.Filename)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to generate cover upload URL")
		http.Error(w, "Failed to generate upload URL", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dto.CoverUploadResponseDTO{UploadURL: uploadURL, StoragePath: storagePath})
}
