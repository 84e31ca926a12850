// Copyright (c) 2025 StyleMe.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the SQLite database and creates the schema.

# Opening

Open returns a *sql.DB limited to a single connection so that all
writes serialize:

	conn, err := db.Open("styleme.db")

The connection runs with WAL journaling, a 5s busy timeout, and
foreign keys enabled.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and
indexes.

# Tables

  - users: registered accounts (email unique, bcrypt password hash)
  - posts: two-option questions with image filename and vote counters
  - votes: one row per (post, user) pair

# Relationships

	users 1──* posts (by email, not FK-enforced)
	posts 1──* votes
	users 1──* votes (by email)

votes carries UNIQUE(post_id, user_email); this constraint, not the
application-level existence check, is what makes a duplicate vote
impossible under concurrent requests.
*/
package db
