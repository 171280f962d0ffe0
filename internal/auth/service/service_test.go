package service

import (
	"strings"
	"testing"
	"time"

	"lead_intake_backend/internal/auth/password"
	"lead_intake_backend/platform/apperr"
	"lead_intake_backend/platform/logger"

	"github.com/golang-jwt/jwt/v5"
)

type testAuthConfig struct {
	secret    string
	algorithm string
	username  string
	hash      string
	ttl       time.Duration
}

func (c testAuthConfig) GetJWTSecret() string            { return c.secret }
func (c testAuthConfig) GetJWTAlgorithm() string         { return c.algorithm }
func (c testAuthConfig) GetInternalUsername() string     { return c.username }
func (c testAuthConfig) GetTokenTTL() time.Duration      { return c.ttl }
func (c testAuthConfig) GetInternalPasswordHash() string { return c.hash }

func newTestService(t *testing.T, mutate func(*testAuthConfig)) *Service {
	t.Helper()

	hash, err := password.Hash("s3cret")
	if err != nil {
		t.Fatalf("failed to hash test password: %v", err)
	}

	cfg := testAuthConfig{
		secret:    "test-signing-secret",
		algorithm: "HS256",
		username:  "admin",
		hash:      hash,
		ttl:       time.Hour,
	}
	if mutate != nil {
		mutate(&cfg)
	}

	return New(cfg, logger.New("development"))
}

func TestVerifyCredential(t *testing.T) {
	svc := newTestService(t, nil)

	tests := []struct {
		name     string
		username string
		pass     string
		want     bool
	}{
		{"valid credential", "admin", "s3cret", true},
		{"wrong password", "admin", "wrong", false},
		{"wrong username", "root", "s3cret", false},
		{"empty username", "", "s3cret", false},
		{"empty password", "admin", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.VerifyCredential(tt.username, tt.pass); got != tt.want {
				t.Fatalf("VerifyCredential(%q, %q) = %v, want %v", tt.username, tt.pass, got, tt.want)
			}
		})
	}
}

func TestVerifyCredentialUnconfiguredHash(t *testing.T) {
	svc := newTestService(t, func(c *testAuthConfig) { c.hash = "" })

	if svc.VerifyCredential("admin", "s3cret") {
		t.Fatal("login must fail when no password hash is configured")
	}
	if svc.VerifyCredential("admin", "") {
		t.Fatal("empty password must not match an empty hash")
	}
}

func TestLoginIssuesValidToken(t *testing.T) {
	svc := newTestService(t, nil)

	token, err := svc.Login("admin", "s3cret")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if token == "" {
		t.Fatal("expected a signed token")
	}

	subject, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if subject != "admin" {
		t.Fatalf("subject = %q, want admin", subject)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newTestService(t, nil)

	_, err := svc.Login("admin", "wrong")
	if err == nil {
		t.Fatal("expected login to fail")
	}
	if apperr.GetKind(err) != apperr.KindUnauthorized {
		t.Fatalf("expected unauthorized kind, got %v", apperr.GetKind(err))
	}
}

func TestValidateTokenRejections(t *testing.T) {
	svc := newTestService(t, nil)

	valid, err := svc.IssueToken("admin")
	if err != nil {
		t.Fatalf("IssueToken returned error: %v", err)
	}

	otherSecret := newTestService(t, func(c *testAuthConfig) { c.secret = "other-secret" })
	forged, err := otherSecret.IssueToken("admin")
	if err != nil {
		t.Fatalf("IssueToken returned error: %v", err)
	}

	expiredSvc := newTestService(t, func(c *testAuthConfig) { c.ttl = -time.Minute })
	expired, err := expiredSvc.IssueToken("admin")
	if err != nil {
		t.Fatalf("IssueToken returned error: %v", err)
	}

	wrongSubject, err := svc.IssueToken("intruder")
	if err != nil {
		t.Fatalf("IssueToken returned error: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"garbage token", "not.a.token"},
		{"empty token", ""},
		{"wrong secret", forged},
		{"expired token", expired},
		{"wrong subject", wrongSubject},
		{"tampered token", valid + "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.ValidateToken(tt.token); err == nil {
				t.Fatal("expected token to be rejected")
			} else if apperr.GetKind(err) != apperr.KindUnauthorized {
				t.Fatalf("expected unauthorized kind, got %v", apperr.GetKind(err))
			}
		})
	}
}

func TestValidateTokenRejectsNonAccessType(t *testing.T) {
	svc := newTestService(t, nil)

	claims := jwt.MapClaims{
		"sub":  "admin",
		"type": "refresh",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-signing-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	if _, err := svc.ValidateToken(raw); err == nil {
		t.Fatal("non-access tokens must be rejected")
	}
}

func TestIssueTokenAlgorithms(t *testing.T) {
	for _, alg := range []string{"HS256", "HS384", "HS512"} {
		svc := newTestService(t, func(c *testAuthConfig) { c.algorithm = alg })

		token, err := svc.IssueToken("admin")
		if err != nil {
			t.Fatalf("IssueToken with %s returned error: %v", alg, err)
		}
		if _, err := svc.ValidateToken(token); err != nil {
			t.Fatalf("ValidateToken with %s returned error: %v", alg, err)
		}
	}
}

func TestIssueTokenRejectsNonHMACAlgorithm(t *testing.T) {
	svc := newTestService(t, func(c *testAuthConfig) { c.algorithm = "RS256" })

	_, err := svc.IssueToken("admin")
	if err == nil {
		t.Fatal("expected error for non-HMAC algorithm")
	}
	if !strings.Contains(err.Error(), "unsupported") {
		t.Fatalf("unexpected error: %v", err)
	}
}
