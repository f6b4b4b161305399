package middleware

import "testing"

func TestAdminEmailsParsing(t *testing.T) {
	t.Setenv("ADMIN_EMAILS", " Admin@Example.com, ops@example.com ,, ")

	emails := AdminEmails()
	if len(emails) != 2 {
		t.Fatalf("expected 2 emails, got %d: %v", len(emails), emails)
	}
	if emails[0] != "admin@example.com" || emails[1] != "ops@example.com" {
		t.Errorf("expected lowercased trimmed emails, got %v", emails)
	}
}

func TestAdminEmailsEmpty(t *testing.T) {
	t.Setenv("ADMIN_EMAILS", "")
	if emails := AdminEmails(); emails != nil {
		t.Errorf("expected nil for empty env, got %v", emails)
	}
}

func TestIsAdminEmail(t *testing.T) {
	allowList := []string{"admin@example.com", "ops@example.com"}

	testCases := []struct {
		email string
		want  bool
	}{
		{"admin@example.com", true},
		{"Admin@Example.COM", true},
		{"  ops@example.com  ", true},
		{"user@example.com", false},
		{"", false},
		{"admin@example.com.evil.com", false},
	}

	for _, tc := range testCases {
		t.Run(tc.email, func(t *testing.T) {
			if got := IsAdminEmail(tc.email, allowList); got != tc.want {
				t.Errorf("IsAdminEmail(%q) = %v, want %v", tc.email, got, tc.want)
			}
		})
	}
}

func TestIsAdminEmailEmptyList(t *testing.T) {
	if IsAdminEmail("admin@example.com", nil) {
		t.Error("no one is admin with an empty allow-list")
	}
}
