package flavor

import (
	"context"

	"pizzada/internal/domain"
)

type Service interface {
	List(ctx context.Context, apenasAtivos bool) ([]domain.Sabor, error)
	Get(ctx context.Context, id int) (*domain.Sabor, error)
	Create(ctx context.Context, nome string, precoPedaco float64) (*domain.Sabor, error)
	Update(ctx context.Context, id int, update domain.SaborUpdate) (*domain.Sabor, error)
	Deactivate(ctx context.Context, id int) error
}

type Repository interface {
	List(ctx context.Context, apenasAtivos bool) ([]domain.Sabor, error)
	FindByID(ctx context.Context, id int) (*domain.Sabor, error)
	Insert(ctx context.Context, sabor domain.Sabor) (int, error)
	Update(ctx context.Context, id int, update domain.SaborUpdate) error
}
