package auth

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"pizzada/internal/domain"
	apperrors "pizzada/internal/errors"
	"pizzada/internal/token"
)

// Mensagem única para nome inexistente e senha errada: não revela qual
// dos dois falhou.
const msgCredenciaisInvalidas = "nome de usuário ou senha incorretos"

type authService struct {
	repo          Repository
	tokenMaker    token.Maker
	tokenDuration time.Duration
}

func NewService(repo Repository, tokenMaker token.Maker, tokenDuration time.Duration) Service {
	return &authService{
		repo:          repo,
		tokenMaker:    tokenMaker,
		tokenDuration: tokenDuration,
	}
}

func (s *authService) Register(ctx context.Context, nomeCompleto, setor, senha string, isAdmin bool) (*domain.Usuario, error) {
	if _, err := s.repo.FindByNome(ctx, nomeCompleto); err == nil {
		return nil, apperrors.NewConflictError(fmt.Sprintf("usuário %q já está cadastrado", nomeCompleto))
	} else if _, ok := apperrors.IsNotFoundError(err); !ok {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	usuario := domain.Usuario{
		NomeCompleto: nomeCompleto,
		Setor:        setor,
		SenhaHash:    string(hash),
		IsAdmin:      isAdmin,
		Ativo:        true,
	}

	// O índice único em nome_completo cobre a corrida entre o pré-check
	// e o insert; o repositório traduz 1062 em ConflictError.
	id, err := s.repo.Insert(ctx, usuario)
	if err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, id)
}

func (s *authService) Login(ctx context.Context, nomeCompleto, senha string) (string, time.Time, *domain.Usuario, error) {
	usuario, err := s.repo.FindByNome(ctx, nomeCompleto)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return "", time.Time{}, nil, apperrors.NewUnauthorizedError(msgCredenciaisInvalidas)
		}
		return "", time.Time{}, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.SenhaHash), []byte(senha)); err != nil {
		return "", time.Time{}, nil, apperrors.NewUnauthorizedError(msgCredenciaisInvalidas)
	}

	if !usuario.Ativo {
		return "", time.Time{}, nil, apperrors.NewUnauthorizedError("usuário desativado")
	}

	accessToken, payload, err := s.tokenMaker.CreateToken(usuario.ID, s.tokenDuration)
	if err != nil {
		return "", time.Time{}, nil, fmt.Errorf("creating access token: %w", err)
	}

	return accessToken, payload.ExpiredAt, usuario, nil
}

// GetUsuarioAtivo resolve o dono de um token já verificado. Usuários
// desconhecidos ou desativados não passam.
func (s *authService) GetUsuarioAtivo(ctx context.Context, id int) (*domain.Usuario, error) {
	usuario, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, apperrors.NewUnauthorizedError("credencial inválida")
		}
		return nil, err
	}

	if !usuario.Ativo {
		return nil, apperrors.NewUnauthorizedError("usuário desativado")
	}

	return usuario, nil
}
