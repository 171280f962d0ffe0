// Package service implements the credential and token service. There is a
// single configured internal identity; no user table exists anywhere.
package service

import (
	"errors"
	"time"

	"lead_intake_backend/internal/auth/password"
	"lead_intake_backend/platform/apperr"
	"lead_intake_backend/platform/config"
	"lead_intake_backend/platform/logger"

	"github.com/golang-jwt/jwt/v5"
)

const accessTokenType = "access"

var errUnsupportedAlgorithm = errors.New("unsupported signing algorithm")

// Service verifies the configured internal credential and issues and
// validates bearer tokens for it.
type Service struct {
	cfg config.AuthConfig
	log *logger.Logger
}

// New creates the credential service.
func New(cfg config.AuthConfig, log *logger.Logger) *Service {
	return &Service{cfg: cfg, log: log}
}

// VerifyCredential checks a username/password pair against the configured
// internal identity. It fails on a username mismatch, an unconfigured
// password hash, or a bcrypt mismatch; no other username ever succeeds.
func (s *Service) VerifyCredential(username, plainPassword string) bool {
	if username != s.cfg.GetInternalUsername() {
		return false
	}
	hash := s.cfg.GetInternalPasswordHash()
	if hash == "" {
		return false
	}
	return password.Compare(hash, plainPassword) == nil
}

// Login verifies the credential and issues an access token.
func (s *Service) Login(username, plainPassword string) (string, error) {
	if !s.VerifyCredential(username, plainPassword) {
		s.log.AuthEvent("login", username, false, "invalid credentials")
		return "", apperr.Unauthorized("invalid credentials")
	}

	token, err := s.IssueToken(username)
	if err != nil {
		s.log.AuthEvent("login", username, false, "token signing failed")
		return "", apperr.Wrap(apperr.KindInternal, "failed to issue token", err)
	}

	s.log.AuthEvent("login", username, true, "")
	return token, nil
}

// IssueToken signs an access token for the subject using the configured
// HMAC algorithm and expiry.
func (s *Service) IssueToken(subject string) (string, error) {
	method, err := signingMethod(s.cfg.GetJWTAlgorithm())
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  subject,
		"type": accessTokenType,
		"iat":  now.Unix(),
		"exp":  now.Add(s.cfg.GetTokenTTL()).Unix(),
	}

	return jwt.NewWithClaims(method, claims).SignedString([]byte(s.cfg.GetJWTSecret()))
}

// ValidateToken parses a raw token and returns its subject. Tokens signed
// with a non-HMAC method, expired tokens, non-access tokens, and tokens
// issued to anyone but the internal user are all rejected.
func (s *Service) ValidateToken(rawToken string) (string, error) {
	parsed, err := jwt.Parse(rawToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errUnsupportedAlgorithm
		}
		return []byte(s.cfg.GetJWTSecret()), nil
	})
	if err != nil || !parsed.Valid {
		return "", apperr.Unauthorized("invalid or expired token")
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", apperr.Unauthorized("invalid or expired token")
	}
	if tokenType, _ := claims["type"].(string); tokenType != accessTokenType {
		return "", apperr.Unauthorized("invalid or expired token")
	}

	subject, _ := claims["sub"].(string)
	if subject == "" || subject != s.cfg.GetInternalUsername() {
		return "", apperr.Unauthorized("invalid or expired token")
	}

	return subject, nil
}

// signingMethod restricts the configurable algorithm to the HMAC family.
func signingMethod(alg string) (jwt.SigningMethod, error) {
	switch alg {
	case "HS256", "":
		return jwt.SigningMethodHS256, nil
	case "HS384":
		return jwt.SigningMethodHS384, nil
	case "HS512":
		return jwt.SigningMethodHS512, nil
	default:
		return nil, errUnsupportedAlgorithm
	}
}
