// Copyright (c) 2025 StyleMe.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment
variables.

# Precedence

CLI flags win over environment variables, which win over defaults:

	go run . -p 3000 -d styleme.db -i images

Environment equivalents:

  - PORT (-p): server port (default 3000)
  - DATABASE_PATH (-d): SQLite database file (default styleme.db)
  - IMAGES_DIR (-i): uploaded image directory (default images)

A .env file in the working directory is loaded via godotenv before the
environment is consulted; a missing .env is not an error.
*/
package cliparse
