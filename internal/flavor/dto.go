package flavor

import (
	"time"

	"pizzada/internal/domain"
)

type CreateSaborRequest struct {
	Nome        string  `json:"nome"`
	PrecoPedaco float64 `json:"preco_pedaco"`
}

// Campos ausentes no JSON ficam nil e não são aplicados.
type UpdateSaborRequest struct {
	Nome        *string  `json:"nome"`
	PrecoPedaco *float64 `json:"preco_pedaco"`
	Ativo       *bool    `json:"ativo"`
}

type SaborDTO struct {
	ID           int       `json:"id"`
	Nome         string    `json:"nome"`
	PrecoPedaco  float64   `json:"preco_pedaco"`
	Ativo        bool      `json:"ativo"`
	DataCadastro time.Time `json:"data_cadastro"`
}

func toSaborDTO(s *domain.Sabor) SaborDTO {
	return SaborDTO{
		ID:           s.ID,
		Nome:         s.Nome,
		PrecoPedaco:  s.PrecoPedaco,
		Ativo:        s.Ativo,
		DataCadastro: s.DataCadastro,
	}
}
