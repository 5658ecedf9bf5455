// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides admin key and IP hashing utilities.

# Admin Keys

Admin keys use HMAC-SHA256 over a scope name to create deterministic,
verifiable keys:

	adminKey := auth.GenerateAdminKey(auth.ScopeResetVotes, salt)
	err := auth.ValidateAdminKey(auth.ScopeResetVotes, adminKey, salt)

The key is URL-safe base64 encoded without padding. Since it's deterministic,
the same scope and salt always produce the same key, so nothing is stored.
Run the server with -print-admin-key to get the reset key for a salt.

# IP Hashing

Votes carry a one-way fingerprint of the caller's address:

	hash := auth.HashIP(ipAddress, salt)

With an empty salt this is plain SHA-256 hex; otherwise HMAC-SHA256 hex.
No deduplication is enforced on it.
*/
package auth
