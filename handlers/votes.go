// Copyright (c) 2025 StyleMe.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/stylemehq/styleme-server/middleware"
	"github.com/stylemehq/styleme-server/models"
)

type VoteHandler struct {
	db *sql.DB
}

func NewVoteHandler(db *sql.DB) *VoteHandler {
	return &VoteHandler{db: db}
}

// Vote handles POST /posts/{id}/vote
func (h *VoteHandler) Vote(w http.ResponseWriter, r *http.Request) {
	var req models.VoteRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.UserEmail == "" || req.Choice == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "User email and choice required")
		return
	}

	if req.Choice != models.ChoiceA && req.Choice != models.ChoiceB {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid choice")
		return
	}

	postID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid post id")
		return
	}

	// Fast-fail check. The UNIQUE(post_id, user_email) constraint is
	// the real guarantee: two near-simultaneous requests can both pass
	// this check, but only one insert below will commit.
	var voted bool
	err = h.db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM votes WHERE post_id = ? AND user_email = ?)
	`, postID, req.UserEmail).Scan(&voted)
	if err != nil {
		slog.Error("failed to query votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if voted {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Already voted")
		return
	}

	// Vote row and counter increment commit together.
	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO votes (post_id, user_email, vote_choice) VALUES (?, ?, ?)
	`, postID, req.UserEmail, req.Choice)

	if err != nil {
		if isUniqueViolation(err) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Already voted")
			return
		}
		slog.Error("failed to insert vote", "error", err, "post_id", postID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
		return
	}

	// Single atomic update expression; never read-modify-write.
	column := "votes_a"
	if req.Choice == models.ChoiceB {
		column = "votes_b"
	}
	_, err = tx.Exec(`UPDATE posts SET `+column+` = `+column+` + 1 WHERE id = ?`, postID)
	if err != nil {
		slog.Error("failed to increment vote count", "error", err, "post_id", postID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
		return
	}

	slog.Info("vote recorded", "post_id", postID, "user", req.UserEmail, "choice", req.Choice)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Vote recorded",
	})
}

// HasVoted handles GET /posts/{id}/vote/{userEmail}
// Always answers with a boolean; unknown posts simply report false.
func (h *VoteHandler) HasVoted(w http.ResponseWriter, r *http.Request) {
	userEmail := r.PathValue("userEmail")

	postID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.JSONResponse(w, http.StatusOK, models.HasVotedResponse{HasVoted: false})
		return
	}

	var vote models.Vote
	err = h.db.QueryRow(`
		SELECT id, post_id, user_email, vote_choice, created_at
		FROM votes
		WHERE post_id = ? AND user_email = ?
	`, postID, userEmail).Scan(&vote.ID, &vote.PostID, &vote.UserEmail, &vote.Choice, &vote.CreatedAt)

	if err == sql.ErrNoRows {
		middleware.JSONResponse(w, http.StatusOK, models.HasVotedResponse{HasVoted: false})
		return
	}
	if err != nil {
		slog.Error("failed to query vote", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.HasVotedResponse{
		HasVoted: true,
		Vote:     &vote,
	})
}
