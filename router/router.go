// Copyright (c) 2025 StyleMe.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/stylemehq/styleme-server/handlers"
	"github.com/stylemehq/styleme-server/imagestore"
	"github.com/stylemehq/styleme-server/middleware"
)

func NewRouter(db *sql.DB, images *imagestore.Store) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	accountHandler := handlers.NewAccountHandler(db)
	postHandler := handlers.NewPostHandler(db, images)
	voteHandler := handlers.NewVoteHandler(db)
	imageHandler := handlers.NewImageHandler(images)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Accounts
	mux.HandleFunc("POST /signup", middleware.WithLogging(accountHandler.Signup))
	mux.HandleFunc("POST /login", middleware.WithLogging(accountHandler.Login))

	// Posts
	mux.HandleFunc("POST /posts", middleware.WithLogging(postHandler.CreatePost))
	mux.HandleFunc("GET /posts", middleware.WithLogging(postHandler.ListPosts))
	mux.HandleFunc("DELETE /posts/{id}", middleware.WithLogging(postHandler.DeletePost))

	// Votes
	mux.HandleFunc("POST /posts/{id}/vote", middleware.WithLogging(voteHandler.Vote))
	mux.HandleFunc("GET /posts/{id}/vote/{userEmail}", middleware.WithLogging(voteHandler.HasVoted))

	// Uploaded images, read-only
	mux.HandleFunc("GET /images/{filename}", imageHandler.Serve)

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("styleme API v1"))
	})

	return mux
}
