// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"
)

func TestGenerateAdminKey(t *testing.T) {
	tests := []struct {
		name  string
		scope string
		salt  string
	}{
		{"standard", ScopeResetVotes, "secret-salt"},
		{"empty scope", "", "salt"},
		{"empty salt", ScopeResetVotes, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := GenerateAdminKey(tt.scope, tt.salt)

			if key == "" {
				t.Error("GenerateAdminKey() returned empty string")
			}

			// Should be deterministic
			key2 := GenerateAdminKey(tt.scope, tt.salt)
			if key != key2 {
				t.Error("GenerateAdminKey() is not deterministic")
			}

			if tt.scope != "" && tt.salt != "" {
				differentKey := GenerateAdminKey(tt.scope+"x", tt.salt)
				if key == differentKey {
					t.Error("GenerateAdminKey() produced same key for different scopes")
				}
			}

			// Should be URL-safe (no padding)
			if strings.Contains(key, "=") {
				t.Error("GenerateAdminKey() contains padding characters")
			}
		})
	}
}

func TestValidateAdminKey(t *testing.T) {
	salt := "test-salt"
	validKey := GenerateAdminKey(ScopeResetVotes, salt)

	tests := []struct {
		name     string
		scope    string
		adminKey string
		salt     string
		wantErr  error
	}{
		{"valid key", ScopeResetVotes, validKey, salt, nil},
		{"wrong key", ScopeResetVotes, "wrong-key", salt, ErrInvalidAdminKey},
		{"wrong scope", "votes:other", validKey, salt, ErrInvalidAdminKey},
		{"wrong salt", ScopeResetVotes, validKey, "different-salt", ErrInvalidAdminKey},
		{"empty key", ScopeResetVotes, "", salt, ErrMissingAdminKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAdminKey(tt.scope, tt.adminKey, tt.salt)
			if err != tt.wantErr {
				t.Errorf("ValidateAdminKey() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestHashIP(t *testing.T) {
	tests := []struct {
		name string
		ip   string
		salt string
	}{
		{"IPv4", "192.168.1.1", "ip-salt"},
		{"IPv6", "2001:0db8:85a3::8a2e:0370:7334", "ip-salt"},
		{"unsalted", "127.0.0.1", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash := HashIP(tt.ip, tt.salt)

			// 32 bytes hex encoded
			if len(hash) != 64 {
				t.Errorf("HashIP() length = %d, want 64", len(hash))
			}

			for _, c := range hash {
				if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
					t.Errorf("HashIP() contains invalid hex char: %c", c)
				}
			}

			if hash != HashIP(tt.ip, tt.salt) {
				t.Error("HashIP() is not deterministic")
			}

			if strings.Contains(hash, tt.ip) {
				t.Error("HashIP() leaks the address")
			}
		})
	}

	// Unsalted is plain SHA-256
	sum := sha256.Sum256([]byte("10.0.0.1"))
	if got := HashIP("10.0.0.1", ""); got != hex.EncodeToString(sum[:]) {
		t.Errorf("HashIP() unsalted = %s, want sha256 hex", got)
	}

	if HashIP("192.168.1.1", "salt") == HashIP("192.168.1.2", "salt") {
		t.Error("HashIP() produced same hash for different IPs")
	}
	if HashIP("192.168.1.1", "salt1") == HashIP("192.168.1.1", "salt2") {
		t.Error("HashIP() produced same hash for different salts")
	}
	if HashIP("192.168.1.1", "") == HashIP("192.168.1.1", "salt") {
		t.Error("HashIP() salted and unsalted hashes should differ")
	}
}

func BenchmarkGenerateAdminKey(b *testing.B) {
	salt := "test-salt"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GenerateAdminKey(ScopeResetVotes, salt)
	}
}

func BenchmarkHashIP(b *testing.B) {
	for i := 0; i < b.N; i++ {
		HashIP("203.0.113.7", "salt")
	}
}
