package emit

import "testing"

func TestExportedIdentifier(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"users", "Users"},
		{"user_accounts", "UserAccounts"},
		{"order-items", "OrderItems"},
		{"audit.log", "AuditLog"},
		{"APIKeys", "APIKeys"},
		{"2fa_tokens", "T2faTokens"},
		{"__users__", "Users"},
		{"", "T"},
	}

	for _, tt := range tests {
		if got := ExportedIdentifier(tt.in); got != tt.want {
			t.Errorf("ExportedIdentifier(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"users", "users.go"},
		{"OrderItems", "orderitems.go"},
		{"audit.log", "audit_log.go"},
	}

	for _, tt := range tests {
		if got := FileName(tt.in); got != tt.want {
			t.Errorf("FileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
