package event

import (
	"context"
	"time"

	"pizzada/internal/domain"
)

type Service interface {
	List(ctx context.Context) ([]domain.Evento, error)
	GetAtivo(ctx context.Context) (*domain.Evento, error)
	Get(ctx context.Context, id int) (*domain.Evento, error)
	Create(ctx context.Context, dataEvento, dataLimite time.Time, nome *string) (*domain.Evento, error)
	Update(ctx context.Context, id int, update domain.EventoUpdate) (*domain.Evento, error)
	Delete(ctx context.Context, id int) error
}

type Repository interface {
	List(ctx context.Context) ([]domain.Evento, error)
	FindAtivo(ctx context.Context, now time.Time) (*domain.Evento, error)
	FindByID(ctx context.Context, id int) (*domain.Evento, error)
	ExistsByData(ctx context.Context, dataEvento time.Time) (bool, error)
	Insert(ctx context.Context, evento domain.Evento) (int, error)
	Update(ctx context.Context, id int, update domain.EventoUpdate) error
	Delete(ctx context.Context, id int) error
	CountPedidos(ctx context.Context, eventoID int) (int, error)
}
