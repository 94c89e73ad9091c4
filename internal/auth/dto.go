package auth

import (
	"time"

	"pizzada/internal/domain"
)

type RegisterRequest struct {
	NomeCompleto string `json:"nome_completo"`
	Setor        string `json:"setor"`
	Senha        string `json:"senha"`
	IsAdmin      bool   `json:"is_admin"`
}

type LoginRequest struct {
	NomeCompleto string `json:"nome_completo"`
	Senha        string `json:"senha"`
}

type LoginResponse struct {
	AccessToken string     `json:"access_token"`
	TokenType   string     `json:"token_type"`
	ExpiresAt   time.Time  `json:"expires_at"`
	Usuario     UsuarioDTO `json:"usuario"`
}

// UsuarioDTO nunca expõe o hash da senha.
type UsuarioDTO struct {
	ID           int       `json:"id"`
	NomeCompleto string    `json:"nome_completo"`
	Setor        string    `json:"setor"`
	IsAdmin      bool      `json:"is_admin"`
	Ativo        bool      `json:"ativo"`
	DataCadastro time.Time `json:"data_cadastro"`
}

func toUsuarioDTO(u *domain.Usuario) UsuarioDTO {
	return UsuarioDTO{
		ID:           u.ID,
		NomeCompleto: u.NomeCompleto,
		Setor:        u.Setor,
		IsAdmin:      u.IsAdmin,
		Ativo:        u.Ativo,
		DataCadastro: u.DataCadastro,
	}
}
