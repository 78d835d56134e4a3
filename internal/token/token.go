package token

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"

	"github.com/yrwanda/practicelog/pkg/apperror"
)

// Service issues and validates the bearer tokens that bind a request to
// a user. Tokens carry only a subject claim and are valid indefinitely:
// expiry, audience, and issuer are intentionally never checked, only
// signature integrity and subject presence. Rotating JWT_SECRET is the
// only way to revoke outstanding tokens.
type Service struct {
	secret []byte
	parser *jwt.Parser
}

func NewService(secret string) *Service {
	return &Service{
		secret: []byte(secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{"HS256"}),
			jwt.WithoutClaimsValidation(),
		),
	}
}

// Issue signs a token for the given user. No expiry claim is set.
func (s *Service) Issue(userID int64) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject: strconv.FormatInt(userID, 10),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Validate returns the user ID a token was issued for. Malformed tokens,
// bad signatures, and missing or non-numeric subjects all map to
// ErrUnauthorized without detail.
func (s *Service) Validate(tokenString string) (int64, error) {
	claims := &jwt.RegisteredClaims{}
	tok, err := s.parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil || !tok.Valid {
		return 0, apperror.ErrUnauthorized
	}

	if claims.Subject == "" {
		return 0, apperror.ErrUnauthorized
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, apperror.ErrUnauthorized
	}

	return userID, nil
}
