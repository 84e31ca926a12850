// Copyright (c) 2025 StyleMe.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes for the StyleMe API.

Routes use Go 1.22+ method and path-value patterns on a plain
ServeMux:

	POST /signup                       → account creation
	POST /login                        → credential check
	POST /posts                        → create post with image
	GET  /posts                        → list posts, newest first
	DELETE /posts/{id}                 → owner-only deletion
	POST /posts/{id}/vote              → one-time vote
	GET  /posts/{id}/vote/{userEmail}  → has-voted lookup
	GET  /images/{filename}            → stored image bytes
	GET  /health                       → liveness

Handlers receive their *sql.DB and image store through NewRouter; the
CORS wrapper is applied around the whole mux by main.
*/
package router
