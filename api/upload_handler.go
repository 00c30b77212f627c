package api

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/vortexlabs/portfolio-backend/errs"
	"github.com/vortexlabs/portfolio-backend/services"
)

// maxUploadBytes caps multipart uploads at 10 MiB.
const maxUploadBytes = 10 << 20

type uploadHandler struct {
	responder Responder
	logger    zerolog.Logger
	storage   services.ObjectStorage
}

func newUploadHandler(storage services.ObjectStorage) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder: NewResponder(logger),
		logger:    logger,
		storage:   storage,
	}
}

func (h uploadHandler) requireStorage(w http.ResponseWriter) bool {
	if h.storage == nil {
		h.responder.WriteError(w, errs.NewApiErr(http.StatusServiceUnavailable, "object storage is not configured"))
		return false
	}
	return true
}

// upload stores a multipart file under a fresh key and returns its
// public URL. The original filename only contributes the extension.
func (h uploadHandler) upload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !h.requireStorage(w) {
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("failed to parse multipart form"))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("file"))
			return
		}
		defer file.Close()

		ext := strings.ToLower(filepath.Ext(header.Filename))
		key := fmt.Sprintf("uploads/%s%s", uuid.New(), ext)
		contentType := header.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		url, err := h.storage.Upload(r.Context(), key, file, contentType)
		if err != nil {
			h.logger.Error().Err(err).Str("key", key).Msg("Failed to upload object")
			h.responder.WriteError(w, errs.NewInternalError("failed to store upload"))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]string{
			"url": url,
			"key": key,
		})
	}
}

func (h uploadHandler) deleteUpload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !h.requireStorage(w) {
			return
		}

		key := r.URL.Query().Get("key")
		if key == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("key"))
			return
		}
		if !strings.HasPrefix(key, "uploads/") {
			h.responder.WriteError(w, errs.NewBadRequestError("key is outside the uploads prefix"))
			return
		}

		if err := h.storage.Delete(r.Context(), key); err != nil {
			h.logger.Error().Err(err).Str("key", key).Msg("Failed to delete object")
			h.responder.WriteError(w, errs.NewInternalError("failed to delete upload"))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "upload deleted successfully",
		})
	}
}
