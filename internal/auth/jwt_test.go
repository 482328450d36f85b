package auth

import (
	"testing"
	"time"

	"github.com/minesight/rockfall-backend-go/internal/models"
)

func testIssuer() *TokenIssuer {
	return NewTokenIssuer("test-secret", time.Hour, 7*24*time.Hour)
}

func testUser() *models.User {
	return &models.User{
		ID:    7,
		Email: "manager@example.com",
		Role:  models.RoleManager,
	}
}

func TestIssuePairAndParse(t *testing.T) {
	issuer := testIssuer()

	pair, err := issuer.IssuePair(testUser())
	if err != nil {
		t.Fatalf("IssuePair failed: %v", err)
	}
	if pair.Access == "" || pair.Refresh == "" {
		t.Fatal("IssuePair returned empty tokens")
	}
	if pair.Access == pair.Refresh {
		t.Fatal("access and refresh tokens are identical")
	}

	claims, err := issuer.Parse(pair.Access, TokenTypeAccess)
	if err != nil {
		t.Fatalf("Parse(access) failed: %v", err)
	}
	if claims.UserID != 7 {
		t.Errorf("UserID = %d, want 7", claims.UserID)
	}
	if claims.Email != "manager@example.com" {
		t.Errorf("Email = %q, want manager@example.com", claims.Email)
	}
	if claims.Role != models.RoleManager {
		t.Errorf("Role = %q, want %q", claims.Role, models.RoleManager)
	}

	if _, err := issuer.Parse(pair.Refresh, TokenTypeRefresh); err != nil {
		t.Errorf("Parse(refresh) failed: %v", err)
	}
}

func TestParseRejectsWrongTokenType(t *testing.T) {
	issuer := testIssuer()

	pair, err := issuer.IssuePair(testUser())
	if err != nil {
		t.Fatalf("IssuePair failed: %v", err)
	}

	if _, err := issuer.Parse(pair.Refresh, TokenTypeAccess); err == nil {
		t.Error("Parse accepted a refresh token as an access token")
	}
	if _, err := issuer.Parse(pair.Access, TokenTypeRefresh); err == nil {
		t.Error("Parse accepted an access token as a refresh token")
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := testIssuer().IssueAccess(testUser())
	if err != nil {
		t.Fatalf("IssueAccess failed: %v", err)
	}

	other := NewTokenIssuer("different-secret", time.Hour, time.Hour)
	if _, err := other.Parse(token, TokenTypeAccess); err == nil {
		t.Error("Parse accepted a token signed with a different secret")
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	expired := NewTokenIssuer("test-secret", -time.Minute, -time.Minute)

	token, err := expired.IssueAccess(testUser())
	if err != nil {
		t.Fatalf("IssueAccess failed: %v", err)
	}

	if _, err := expired.Parse(token, TokenTypeAccess); err == nil {
		t.Error("Parse accepted an expired token")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := testIssuer().Parse("not.a.token", TokenTypeAccess); err == nil {
		t.Error("Parse accepted a malformed token string")
	}
}
