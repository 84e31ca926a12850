// Copyright (c) 2025 StyleMe.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the StyleMe API server.

StyleMe is a minimal social polling service: users register, upload an
image with a two-option "this vs that" question, and other users vote
exactly once per post.

# Starting the Server

	go run .

Or with explicit settings:

	go run . -p 3000 -d styleme.db -i images

# Configuration

All settings have defaults and may come from flags, the environment,
or a .env file:

  - PORT (-p): server port (default: 3000)
  - DATABASE_PATH (-d): SQLite database file (default: styleme.db)
  - IMAGES_DIR (-i): uploaded image directory (default: images)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (accounts, posts, votes, images)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Password hashing and generated image names
  - imagestore: Uploaded image persistence
  - db: SQLite connection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
