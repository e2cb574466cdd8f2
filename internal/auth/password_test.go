package auth

import (
	"strings"
	"testing"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hashed, err := HashPassword("test123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if IsLegacyHash(hashed) {
		t.Fatalf("bcrypt hash mistaken for legacy digest: %s", hashed)
	}
	if !CheckPassword("test123", hashed) {
		t.Fatalf("expected password to match")
	}
	if CheckPassword("wrong", hashed) {
		t.Fatalf("expected wrong password to fail")
	}
}

func TestCheckPassword_Legacy(t *testing.T) {
	// sha256("test123")
	const digest = "ecd71870d1963316a97e3ac3408c9835ad8cf0f3c1bc703527c30265534f75ae"
	if got := LegacySHA256("test123"); got != digest {
		t.Fatalf("unexpected digest: %s", got)
	}

	tests := []struct {
		name     string
		password string
		hashed   string
		want     bool
	}{
		{name: "match", password: "test123", hashed: digest, want: true},
		{name: "uppercase digest", password: "test123", hashed: "ECD71870D1963316A97E3AC3408C9835AD8CF0F3C1BC703527C30265534F75AE", want: true},
		{name: "mismatch", password: "test124", hashed: digest, want: false},
		{name: "empty hash", password: "test123", hashed: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckPassword(tt.password, tt.hashed); got != tt.want {
				t.Fatalf("CheckPassword = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHashPassword_LongPassword(t *testing.T) {
	long := strings.Repeat("p", 73)
	hashed, err := HashPassword(long)
	if err != nil {
		t.Fatalf("hash 73-byte password: %v", err)
	}
	if !CheckPassword(long, hashed) {
		t.Fatalf("expected long password to match")
	}
	// Passwords sharing the first 72 bytes must still differ.
	if CheckPassword(strings.Repeat("p", 72)+"q", hashed) {
		t.Fatalf("expected differing long password to fail")
	}
}
