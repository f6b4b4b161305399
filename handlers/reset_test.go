package handlers

import (
	"strings"
	"testing"
	"time"

	"github.com/gauravmindaptix26/hot-Barcelona-sub000/models"
)

func TestGenerateResetToken(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		token, err := generateResetToken()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(token) != 64 {
			t.Fatalf("expected 64 hex chars for 32 random bytes, got %d", len(token))
		}
		if seen[token] {
			t.Fatal("tokens must not repeat")
		}
		seen[token] = true
	}
}

func TestHashResetToken(t *testing.T) {
	a := hashResetToken("some-token")
	b := hashResetToken("some-token")
	c := hashResetToken("other-token")

	if a != b {
		t.Error("hashing must be deterministic")
	}
	if a == c {
		t.Error("different tokens must hash differently")
	}
	if len(a) != 64 {
		t.Errorf("expected sha256 hex of length 64, got %d", len(a))
	}
	if a == "some-token" || strings.Contains(a, "some-token") {
		t.Error("hash must not contain the raw token")
	}
}

func TestTokenRedeemable(t *testing.T) {
	now := time.Now()
	used := now.Add(-time.Minute)

	testCases := []struct {
		name      string
		usedAt    *time.Time
		expiresAt time.Time
		want      bool
	}{
		{"fresh token", nil, now.Add(30 * time.Minute), true},
		{"already redeemed", &used, now.Add(30 * time.Minute), false},
		{"expired", nil, now.Add(-time.Second), false},
		{"expires exactly now", nil, now, false},
		{"redeemed and expired", &used, now.Add(-time.Second), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			record := models.PasswordResetToken{
				UsedAt:    tc.usedAt,
				ExpiresAt: tc.expiresAt,
			}
			if got := tokenRedeemable(&record, now); got != tc.want {
				t.Errorf("tokenRedeemable = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestTokenRedeemableExactlyOnce(t *testing.T) {
	now := time.Now()
	record := models.PasswordResetToken{ExpiresAt: now.Add(30 * time.Minute)}

	if !tokenRedeemable(&record, now) {
		t.Fatal("a fresh unexpired token must be redeemable")
	}

	// redemption sets usedAt; the same token presented again must fail
	usedAt := now
	record.UsedAt = &usedAt

	if tokenRedeemable(&record, now.Add(time.Second)) {
		t.Error("a redeemed token must never be redeemable a second time")
	}
}

func TestResetLinkFor(t *testing.T) {
	t.Setenv("APP_BASE_URL", "https://example.com/")
	link := resetLinkFor("abc123")
	if link != "https://example.com/reset-password?token=abc123" {
		t.Errorf("unexpected link %q", link)
	}

	t.Setenv("APP_BASE_URL", "")
	link = resetLinkFor("abc123")
	if !strings.HasPrefix(link, "http://localhost:8080/reset-password?token=") {
		t.Errorf("expected localhost fallback, got %q", link)
	}
}
