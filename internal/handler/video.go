package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"wingman_admin/internal/apiclient"
	"wingman_admin/internal/httputil"
	"wingman_admin/internal/media"
	"wingman_admin/internal/model"
	"wingman_admin/internal/mutation"
)

// VideoHandler forwards video mutations through the coordinator.
type VideoHandler struct {
	coordinator *mutation.Coordinator
}

func NewVideoHandler(coordinator *mutation.Coordinator) *VideoHandler {
	return &VideoHandler{coordinator: coordinator}
}

// Add handles the multipart add-video form with an optional thumbnail
// POST /api/videos
func (h *VideoHandler) Add(w http.ResponseWriter, r *http.Request) {
	maxFormSize := int64(model.MaxThumbnailSizeBytes) + 1024*1024 // allow form overhead
	r.Body = http.MaxBytesReader(w, r.Body, maxFormSize)
	if err := r.ParseMultipartForm(maxFormSize); err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			httputil.WriteBadRequest(w, "Content-Type must be multipart/form-data")
			return
		}
		if strings.Contains(err.Error(), "request body too large") {
			httputil.WriteBadRequestWithCode(w, model.CodeFileTooLarge, "Thumbnail exceeds 5MB limit")
			return
		}
		httputil.WriteBadRequest(w, "Invalid form data")
		return
	}

	in := model.AddVideoInput{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Description: r.FormValue("description"),
		Category:    r.FormValue("category"),
		Tags:        r.FormValue("tags"),
		VideoURL:    strings.TrimSpace(r.FormValue("videoUrl")),
		Platform:    r.FormValue("platform"),
	}

	var thumbnail *apiclient.Upload
	file, header, err := r.FormFile("thumbnail")
	if err == nil {
		defer file.Close()
		upload, prepErr := media.PrepareThumbnail(file, header)
		if prepErr != nil {
			switch {
			case errors.Is(prepErr, model.ErrFileTooLarge):
				httputil.WriteBadRequestWithCode(w, model.CodeFileTooLarge, "Thumbnail exceeds 5MB limit")
			case errors.Is(prepErr, model.ErrInvalidImageType):
				httputil.WriteBadRequestWithCode(w, model.CodeInvalidImageType, "Unsupported image type. Allowed: jpeg, png, gif, webp")
			default:
				httputil.WriteInternalError(w, "Failed to process thumbnail")
			}
			return
		}
		thumbnail = upload
	} else if err != http.ErrMissingFile {
		httputil.WriteBadRequest(w, "Invalid thumbnail upload")
		return
	}

	msg, err := h.coordinator.AddVideo(r.Context(), actorFrom(r), in, thumbnail)
	if err != nil {
		writeMutationError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, map[string]string{"message": msg})
}

// Update forwards a partial video edit
// PUT /api/videos/{id}
func (h *VideoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var in model.UpdateVideoInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	msg, err := h.coordinator.UpdateVideo(r.Context(), actorFrom(r), id, in)
	if err != nil {
		writeMutationError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{"message": msg})
}
