package utils

import (
	"errors"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// LedgerClaims are the JWT claims accepted by the API. Workplaces lists the
// tenants the subject may act in.
type LedgerClaims struct {
	jwt.RegisteredClaims
	Workplaces []string `json:"workplaces"`
}

// CanAccess reports whether the token grants access to the workplace.
func (c *LedgerClaims) CanAccess(workplaceID string) bool {
	return workplaceID != "" && slices.Contains(c.Workplaces, workplaceID)
}

// GenerateJWT generates a new JWT token with the given parameters.
func GenerateJWT(userID string, workplaces []string, secret string, expiryDuration time.Duration, issuer string) (string, error) {
	now := time.Now()
	claims := LedgerClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
		Workplaces: workplaces,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAndValidateJWT parses a JWT token string, validates its signature and standard claims.
// An empty issuer skips the issuer check.
func ParseAndValidateJWT(tokenString string, secretKey string, issuer string) (*LedgerClaims, error) {
	claims := &LedgerClaims{}
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secretKey), nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}
	return claims, nil
}
