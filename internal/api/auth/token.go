package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verification tokens are signed, short-lived credentials proving control of
// an email address. They are never persisted: the signature plus the purpose
// claim is the whole credential.

const (
	purposeEmailVerify = "email-verify"

	// VerificationTokenTTL bounds how long a verification link stays valid.
	VerificationTokenTTL = time.Hour
)

// ErrInvalidToken covers every decode failure. Expired, tampered and
// wrong-purpose tokens are deliberately indistinguishable to the caller.
var ErrInvalidToken = errors.New("invalid or expired token")

// SignEmailToken issues a verification token for email, valid for ttl.
func SignEmailToken(email string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":     email,
		"purpose": purposeEmailVerify,
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	})
	return token.SignedString(secret)
}

// ParseEmailToken validates tokenString and returns the email it was issued
// for. Any failure normalizes to ErrInvalidToken.
func ParseEmailToken(tokenString string, secret []byte) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	if purpose, _ := claims["purpose"].(string); purpose != purposeEmailVerify {
		return "", ErrInvalidToken
	}
	email, _ := claims["sub"].(string)
	if email == "" {
		return "", ErrInvalidToken
	}
	return email, nil
}
