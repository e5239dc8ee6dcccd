package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/perillat/noteshare/errors"
)

// DefaultTTL is the token lifetime used when none is configured.
const DefaultTTL = 86400 * time.Second

var (
	// ErrExpired is returned by Decode when the token is past the
	// expiry embedded in its claims.
	ErrExpired = errors.New("token expired", errors.Unauthorized())

	// ErrInvalidSignature is returned by Decode when the signature
	// does not match the signing key.
	ErrInvalidSignature = errors.New("invalid token signature", errors.Unauthorized())
)

type Claims struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type EncodeDecoder struct {
	key []byte
	ttl time.Duration
}

func NewEncodeDecoder(key []byte, ttl time.Duration) *EncodeDecoder {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &EncodeDecoder{
		key: key,
		ttl: ttl,
	}
}

func (e *EncodeDecoder) Encode(userID int, username string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(e.ttl)),
			Issuer:    "noteshare",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(e.key)
}

func (e *EncodeDecoder) Decode(bearer string) (*Claims, error) {
	claims := Claims{}

	token, err := jwt.ParseWithClaims(bearer, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return e.key, nil
	})
	if err != nil {
		if ve, ok := err.(*jwt.ValidationError); ok {
			if ve.Errors&jwt.ValidationErrorExpired != 0 {
				return nil, ErrExpired
			}
			if ve.Errors&(jwt.ValidationErrorSignatureInvalid|jwt.ValidationErrorUnverifiable) != 0 {
				return nil, ErrInvalidSignature
			}
		}
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("could not get claims")
}
