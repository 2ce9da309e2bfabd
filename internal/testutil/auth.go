package testutil

import (
	"testing"
	"time"

	"laptopxplorer/internal/middleware"
	"laptopxplorer/pkg/log"
	"laptopxplorer/pkg/scope"
)

// NewMiddleware returns a middleware set with a real token manager and no
// rate limit or metrics.
func NewMiddleware(t *testing.T) (middleware.Middleware, scope.Manager) {
	t.Helper()
	sm, err := scope.New(scope.Config{SecretKey: "test-secret"})
	if err != nil {
		t.Fatalf("scope.New: %v", err)
	}
	return middleware.New(log.NewNop(), sm, middleware.Config{}, nil), sm
}

// Token issues a bearer header value for userID with the given role.
func Token(t *testing.T, sm scope.Manager, userID, role string) string {
	t.Helper()
	token, err := sm.Issue(scope.Payload{UserID: userID, Email: userID + "@example.com", Role: role}, time.Hour)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	return "Bearer " + token
}
