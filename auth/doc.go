// Copyright (c) 2025 StyleMe.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides credential hashing and generated identifiers.

# Passwords

Passwords are stored only as bcrypt hashes:

	hash, err := auth.HashPassword(req.Password)
	...
	if err := auth.CheckPassword(stored, req.Password); err != nil {
		// ErrInvalidCredentials - same response as unknown email
	}

CheckPassword collapses every mismatch into ErrInvalidCredentials so a
login response never reveals whether an email is registered.

# Image Names

GenerateImageName returns a fresh "<unix-millis>-<uuid>.jpg" name for
each upload. Names are always generated server-side, never taken from
the client.
*/
package auth
