// Copyright (c) 2025 StyleMe.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/stylemehq/styleme-server/imagestore"
	"github.com/stylemehq/styleme-server/middleware"
)

type ImageHandler struct {
	images *imagestore.Store
}

func NewImageHandler(images *imagestore.Store) *ImageHandler {
	return &ImageHandler{images: images}
}

// Serve handles GET /images/{filename}
func (h *ImageHandler) Serve(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("filename")

	f, err := h.images.Open(name)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Image not found")
		return
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		slog.Error("failed to stat image", "error", err, "filename", name)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to read image")
		return
	}

	http.ServeContent(w, r, name, stat.ModTime(), f)
}
