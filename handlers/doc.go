// Copyright (c) 2025 StyleMe.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the StyleMe API.

# Handler Types

Each handler is a struct with its dependencies injected via a
constructor:

  - AccountHandler: signup and login
  - PostHandler: post creation, listing, and owner-only deletion
  - VoteHandler: one-time voting and vote lookup
  - ImageHandler: read-only serving of stored images

	accounts := handlers.NewAccountHandler(db)
	posts := handlers.NewPostHandler(db, store)

# Identity

There is no session layer: every mutating request carries the caller's
email in its body and the server trusts it. Passwords themselves are
stored hashed, but nothing stops a caller from asserting another
user's email. Deletion authorization compares the asserted email with
the post's stored owner.

# Vote Integrity

A user votes at most once per post. The handler performs a fast-fail
existence check, but the guarantee is the UNIQUE(post_id, user_email)
constraint: a racing duplicate insert fails at the database and is
reported as "Already voted". The vote row insert and the counter
increment (votes_a = votes_a + 1) commit in a single transaction.
*/
package handlers
