// Copyright (c) 2025 StyleMe.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/stylemehq/styleme-server/imagestore"
	"github.com/stylemehq/styleme-server/middleware"
	"github.com/stylemehq/styleme-server/models"
)

type PostHandler struct {
	db     *sql.DB
	images *imagestore.Store
}

func NewPostHandler(db *sql.DB, images *imagestore.Store) *PostHandler {
	return &PostHandler{db: db, images: images}
}

// CreatePost handles POST /posts
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePostRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.UserEmail == "" || req.ImageData == "" || req.Question == "" ||
		req.OptionA == "" || req.OptionB == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "All fields required")
		return
	}

	raw, err := imagestore.DecodeDataURL(req.ImageData)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid image data")
		return
	}

	filename, err := h.images.Save(raw)
	if err != nil {
		slog.Error("failed to save image", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save image")
		return
	}

	_, err = h.db.Exec(`
		INSERT INTO posts (user_email, img_filename, question, option_a, option_b)
		VALUES (?, ?, ?, ?, ?)
	`, req.UserEmail, filename, req.Question, req.OptionA, req.OptionB)

	if err != nil {
		slog.Error("failed to insert post", "error", err)
		// Don't leave an orphaned image behind
		if derr := h.images.Delete(filename); derr != nil {
			slog.Warn("failed to remove orphaned image", "error", derr, "filename", filename)
		}
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create post")
		return
	}

	slog.Info("post created", "user", req.UserEmail, "image", filename)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Post created successfully",
	})
}

// ListPosts handles GET /posts
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT id, user_email, img_filename, question, option_a, option_b,
		       votes_a, votes_b, created_at
		FROM posts
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		slog.Error("failed to query posts", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	posts := []models.Post{}
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(
			&p.ID, &p.UserEmail, &p.ImgFilename, &p.Question,
			&p.OptionA, &p.OptionB, &p.VotesA, &p.VotesB, &p.CreatedAt,
		); err != nil {
			slog.Error("failed to scan post", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read posts", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, posts)
}

// DeletePost handles DELETE /posts/{id}
func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Post not found")
		return
	}

	var req models.DeletePostRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	var owner, filename string
	err = h.db.QueryRow(`
		SELECT user_email, img_filename FROM posts WHERE id = ?
	`, postID).Scan(&owner, &filename)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Post not found")
		return
	}
	if err != nil {
		slog.Error("failed to query post", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if owner != req.UserEmail {
		middleware.ErrorResponse(w, http.StatusForbidden, "Not authorized")
		return
	}

	// Votes and the post row go in one transaction so a crash cannot
	// leave votes referencing a deleted post.
	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM votes WHERE post_id = ?`, postID); err != nil {
		slog.Error("failed to delete votes", "error", err, "post_id", postID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete post")
		return
	}

	if _, err := tx.Exec(`DELETE FROM posts WHERE id = ?`, postID); err != nil {
		slog.Error("failed to delete post", "error", err, "post_id", postID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete post")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete post")
		return
	}

	// Image removal happens after commit; a missing file is fine, a
	// failed removal only orphans a file and is not worth failing the
	// request over.
	if err := h.images.Delete(filename); err != nil {
		slog.Warn("failed to delete image", "error", err, "filename", filename)
	}

	slog.Info("post deleted", "post_id", postID, "owner", owner)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Post deleted successfully",
	})
}
