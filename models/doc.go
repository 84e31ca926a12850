// Copyright (c) 2025 StyleMe.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the
StyleMe API.

# Request Types

Each mutating endpoint has a dedicated request struct:

  - SignupRequest / LoginRequest: email + password credentials
  - CreatePostRequest: post fields plus a base64 data-URL image
  - DeletePostRequest: the requesting user's email
  - VoteRequest: voter email and choice ("A" or "B")

# Domain Types

Domain types mirror the database rows:

  - User: registered account; the stored password is a bcrypt hash and
    is never serialized to JSON
  - Post: a two-option question with an attached image and running
    vote counters
  - Vote: one user's single choice on one post

Timestamps are unix seconds, matching the wire format clients already
consume.

# Error Response

All error responses share the ErrorResponse envelope:

	{"error": "Bad Request", "message": "choice must be A or B"}
*/
package models
