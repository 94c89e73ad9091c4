package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const minSymmetricKeySize = 32

type JWTMaker struct {
	symmetricKey []byte
}

func NewJWTMaker(symmetricKey string) (*JWTMaker, error) {
	if len(symmetricKey) < minSymmetricKeySize {
		return nil, fmt.Errorf("symmetric key must be at least %d characters", minSymmetricKeySize)
	}
	return &JWTMaker{symmetricKey: []byte(symmetricKey)}, nil
}

func (m *JWTMaker) CreateToken(userID int, duration time.Duration) (string, *Payload, error) {
	now := time.Now()
	payload := &Payload{
		UserID:    userID,
		IssuedAt:  now,
		ExpiredAt: now.Add(duration),
	}

	claims := jwt.RegisteredClaims{
		Subject:   strconv.Itoa(userID),
		IssuedAt:  jwt.NewNumericDate(payload.IssuedAt),
		ExpiresAt: jwt.NewNumericDate(payload.ExpiredAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.symmetricKey)
	if err != nil {
		return "", nil, fmt.Errorf("signing token: %w", err)
	}

	return signed, payload, nil
}

func (m *JWTMaker) VerifyToken(tokenString string) (*Payload, error) {
	keyFunc := func(t *jwt.Token) (interface{}, error) {
		// Rejeita tokens assinados com outro método (ex.: "none").
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.symmetricKey, nil
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, keyFunc)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	userID, err := strconv.Atoi(claims.Subject)
	if err != nil || userID <= 0 {
		return nil, ErrInvalidToken
	}

	payload := &Payload{UserID: userID}
	if claims.IssuedAt != nil {
		payload.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		payload.ExpiredAt = claims.ExpiresAt.Time
	}

	return payload, nil
}
