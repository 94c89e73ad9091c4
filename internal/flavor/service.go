package flavor

import (
	"context"

	"pizzada/internal/domain"
	apperrors "pizzada/internal/errors"
)

type flavorService struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &flavorService{repo: repo}
}

func (s *flavorService) List(ctx context.Context, apenasAtivos bool) ([]domain.Sabor, error) {
	return s.repo.List(ctx, apenasAtivos)
}

func (s *flavorService) Get(ctx context.Context, id int) (*domain.Sabor, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *flavorService) Create(ctx context.Context, nome string, precoPedaco float64) (*domain.Sabor, error) {
	sabor := domain.Sabor{
		Nome:        nome,
		PrecoPedaco: precoPedaco,
		Ativo:       true,
	}

	id, err := s.repo.Insert(ctx, sabor)
	if err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, id)
}

func (s *flavorService) Update(ctx context.Context, id int, update domain.SaborUpdate) (*domain.Sabor, error) {
	if update.Empty() {
		return nil, apperrors.NewValidationError("nenhum campo para atualizar", apperrors.ValidationDetail{
			Field:   "body",
			Message: "informe ao menos um campo: nome, preco_pedaco ou ativo",
		})
	}

	if err := s.repo.Update(ctx, id, update); err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, id)
}

// Deactivate desliga o sabor em vez de apagar a linha: itens de pedidos
// antigos continuam referenciando o sabor.
func (s *flavorService) Deactivate(ctx context.Context, id int) error {
	ativo := false
	return s.repo.Update(ctx, id, domain.SaborUpdate{Ativo: &ativo})
}
