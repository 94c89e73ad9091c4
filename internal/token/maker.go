package token

import (
	"errors"
	"time"
)

var (
	ErrInvalidToken = errors.New("token is invalid")
	ErrExpiredToken = errors.New("token has expired")
)

// Payload é o conteúdo assinado do token de acesso.
type Payload struct {
	UserID    int
	IssuedAt  time.Time
	ExpiredAt time.Time
}

type Maker interface {
	CreateToken(userID int, duration time.Duration) (string, *Payload, error)
	VerifyToken(token string) (*Payload, error)
}
