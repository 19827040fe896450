package ratelimit

import (
	"sort"
	"time"
)

// Class is a named rate limit policy: at most MaxRequests per Window, counted
// in its own key namespace.
type Class struct {
	Name        string
	MaxRequests int
	Window      time.Duration
}

var (
	DefaultClass       = Class{Name: "default", MaxRequests: 100, Window: 60 * time.Second}
	AuthClass          = Class{Name: "auth", MaxRequests: 5, Window: 300 * time.Second}
	LoginClass         = Class{Name: "login", MaxRequests: 3, Window: 300 * time.Second}
	PasswordResetClass = Class{Name: "password_reset", MaxRequests: 2, Window: 3600 * time.Second}
	FileUploadClass    = Class{Name: "file_upload", MaxRequests: 10, Window: 60 * time.Second}
	AdminClass         = Class{Name: "admin", MaxRequests: 50, Window: 60 * time.Second}
)

// PathRule maps a URL path prefix to a limit class.
type PathRule struct {
	Prefix string
	Class  Class
}

// DefaultPathRules returns the prefix table for the API surface, sorted so the
// most specific prefix is tried first.
func DefaultPathRules() []PathRule {
	rules := []PathRule{
		{Prefix: "/api/v1/auth/login", Class: LoginClass},
		{Prefix: "/api/v1/auth/password-reset", Class: PasswordResetClass},
		{Prefix: "/api/v1/auth", Class: AuthClass},
		{Prefix: "/api/v1/uploads", Class: FileUploadClass},
		{Prefix: "/api/v1/admin", Class: AdminClass},
	}

	sort.SliceStable(rules, func(i, j int) bool {
		return len(rules[i].Prefix) > len(rules[j].Prefix)
	})

	return rules
}
