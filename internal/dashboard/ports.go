package dashboard

import (
	"context"

	"pizzada/internal/domain"
)

type Service interface {
	Resumo(ctx context.Context, eventoID int) (*ResumoEvento, error)
	Estatisticas(ctx context.Context, eventoID int) (*EventoEstatisticas, error)
}

type Repository interface {
	Totais(ctx context.Context, eventoID int) (domain.EventoTotais, error)
	TotalPedacos(ctx context.Context, eventoID int) (int, error)
	EstatisticasPorSabor(ctx context.Context, eventoID int) ([]domain.SaborEstatistica, error)
}

type EventoRepository interface {
	FindByID(ctx context.Context, id int) (*domain.Evento, error)
}
