// Copyright (c) 2025 StyleMe.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP cross-cutting helpers.

# Logging

WithLogging wraps a handler with slog request/completion lines:

	mux.HandleFunc("POST /signup", middleware.WithLogging(h.Signup))

# JSON Helpers

JSONResponse and ErrorResponse write consistent JSON envelopes;
ParseJSONBody decodes a request body with a 50 MB cap (image uploads
travel inside JSON as base64 data URLs).

# CORS

CORS reflects the request origin and answers preflight OPTIONS
requests, matching the permissive policy the browser client expects.
*/
package middleware
