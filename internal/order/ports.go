package order

import (
	"context"

	"pizzada/internal/domain"
)

type Service interface {
	Create(ctx context.Context, usuario *domain.Usuario, eventoID int, itens []ItemRequest) (*domain.Pedido, error)
	Get(ctx context.Context, usuario *domain.Usuario, id int) (*domain.Pedido, error)
	List(ctx context.Context, eventoID *int) ([]domain.Pedido, error)
	ListByUsuario(ctx context.Context, usuarioID int, eventoID *int) ([]domain.Pedido, error)
	UpdateStatus(ctx context.Context, id int, status string) (*domain.Pedido, error)
	Delete(ctx context.Context, usuario *domain.Usuario, id int) error
}

type Repository interface {
	FindByID(ctx context.Context, id int) (*domain.Pedido, error)
	List(ctx context.Context, eventoID *int) ([]domain.Pedido, error)
	ListByUsuario(ctx context.Context, usuarioID int, eventoID *int) ([]domain.Pedido, error)
	ExistsByEventoAndUsuario(ctx context.Context, eventoID, usuarioID int) (bool, error)
	CreateWithItens(ctx context.Context, pedido domain.Pedido) (int, error)
	UpdateStatus(ctx context.Context, id int, status string) error
	Delete(ctx context.Context, id int) error
}

// Interfaces declaradas do lado consumidor; implementadas pelos
// repositórios dos módulos de evento e sabor.
type EventoRepository interface {
	FindByID(ctx context.Context, id int) (*domain.Evento, error)
}

type SaborRepository interface {
	FindByID(ctx context.Context, id int) (*domain.Sabor, error)
}
