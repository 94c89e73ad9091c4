package auth

import (
	"context"
	"time"

	"pizzada/internal/domain"
)

type Service interface {
	Register(ctx context.Context, nomeCompleto, setor, senha string, isAdmin bool) (*domain.Usuario, error)
	Login(ctx context.Context, nomeCompleto, senha string) (string, time.Time, *domain.Usuario, error)
	GetUsuarioAtivo(ctx context.Context, id int) (*domain.Usuario, error)
}

type Repository interface {
	Insert(ctx context.Context, usuario domain.Usuario) (int, error)
	FindByNome(ctx context.Context, nomeCompleto string) (*domain.Usuario, error)
	FindByID(ctx context.Context, id int) (*domain.Usuario, error)
}
