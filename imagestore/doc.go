// Copyright (c) 2025 StyleMe.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package imagestore persists uploaded images in a flat content
directory.

# Lifecycle

	store, err := imagestore.New("images")
	name, err := store.Save(raw)   // generated name, e.g. 1756713600000-<uuid>.jpg
	f, err := store.Open(name)     // serving
	err = store.Delete(name)       // no-op when already absent

Filenames are always generated server-side; Open and Delete reject any
name carrying path separators, so the store cannot be walked out of.

# Data URLs

Clients upload images as base64 data URLs. DecodeDataURL strips the
"data:image/...;base64," prefix when present and decodes the payload.
*/
package imagestore
