// Copyright (c) 2025 StyleMe.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"

	"github.com/stylemehq/styleme-server/auth"
	"github.com/stylemehq/styleme-server/middleware"
	"github.com/stylemehq/styleme-server/models"
)

type AccountHandler struct {
	db *sql.DB
}

func NewAccountHandler(db *sql.DB) *AccountHandler {
	return &AccountHandler{db: db}
}

// Signup handles POST /signup
func (h *AccountHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Email == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Email and password required")
		return
	}

	// Fast-fail on an existing account; the UNIQUE constraint on email
	// still catches a racing signup below.
	var exists bool
	err := h.db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)
	`, req.Email).Scan(&exists)
	if err != nil {
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if exists {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Email already exists")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create account")
		return
	}

	_, err = h.db.Exec(`
		INSERT INTO users (email, password) VALUES (?, ?)
	`, req.Email, hash)

	if err != nil {
		if isUniqueViolation(err) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Email already exists")
			return
		}
		slog.Error("failed to insert user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create account")
		return
	}

	slog.Info("account created", "email", req.Email)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Account created successfully",
	})
}

// Login handles POST /login
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Email == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Email and password required")
		return
	}

	var storedHash string
	err := h.db.QueryRow(`
		SELECT password FROM users WHERE email = ?
	`, req.Email).Scan(&storedHash)

	// Unknown email and wrong password return the same response so the
	// API never leaks which emails are registered.
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if err := auth.CheckPassword(storedHash, req.Password); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	slog.Info("login successful", "email", req.Email)

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		Email:   req.Email,
		Message: "Login successful",
	})
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint
// failure.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
