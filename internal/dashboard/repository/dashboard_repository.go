package repository

import (
	"context"
	"database/sql"
	"fmt"

	"pizzada/internal/domain"
)

type MySQLDashboardRepository struct {
	db *sql.DB
}

func NewMySQLDashboardRepository(db *sql.DB) *MySQLDashboardRepository {
	return &MySQLDashboardRepository{db: db}
}

// Totais agrega direto sobre pedidos, sem join com itens: um join
// multiplicaria as linhas e inflaria contagem e soma.
func (r *MySQLDashboardRepository) Totais(ctx context.Context, eventoID int) (domain.EventoTotais, error) {
	query := `
		SELECT COUNT(DISTINCT usuario_id),
		       COUNT(id),
		       COALESCE(SUM(valor_total + valor_frete), 0)
		FROM pedidos
		WHERE evento_id = ?
	`

	var t domain.EventoTotais
	err := r.db.QueryRowContext(ctx, query, eventoID).Scan(
		&t.TotalParticipantes, &t.TotalPedidos, &t.ValorTotal,
	)
	if err != nil {
		return domain.EventoTotais{}, fmt.Errorf("querying evento totals: %w", err)
	}

	return t, nil
}

func (r *MySQLDashboardRepository) TotalPedacos(ctx context.Context, eventoID int) (int, error) {
	query := `
		SELECT COALESCE(SUM(i.quantidade), 0)
		FROM itens_pedido i
		JOIN pedidos p ON p.id = i.pedido_id
		WHERE p.evento_id = ?
	`

	var total int
	if err := r.db.QueryRowContext(ctx, query, eventoID).Scan(&total); err != nil {
		return 0, fmt.Errorf("querying total pedacos: %w", err)
	}

	return total, nil
}

// EstatisticasPorSabor traz só os sabores com ao menos um pedaço no
// evento; os demais ficam de fora do dashboard.
func (r *MySQLDashboardRepository) EstatisticasPorSabor(ctx context.Context, eventoID int) ([]domain.SaborEstatistica, error) {
	query := `
		SELECT s.id, s.nome, SUM(i.quantidade), COALESCE(SUM(i.subtotal), 0)
		FROM itens_pedido i
		JOIN pedidos p ON p.id = i.pedido_id
		JOIN sabores s ON s.id = i.sabor_id
		WHERE p.evento_id = ?
		GROUP BY s.id, s.nome
		ORDER BY SUM(i.quantidade) DESC, s.nome
	`

	rows, err := r.db.QueryContext(ctx, query, eventoID)
	if err != nil {
		return nil, fmt.Errorf("querying estatisticas por sabor: %w", err)
	}
	defer rows.Close()

	var stats []domain.SaborEstatistica
	for rows.Next() {
		var s domain.SaborEstatistica
		if err := rows.Scan(&s.SaborID, &s.SaborNome, &s.TotalPedacos, &s.ValorTotal); err != nil {
			return nil, fmt.Errorf("scanning estatistica row: %w", err)
		}
		stats = append(stats, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating estatistica rows: %w", err)
	}

	return stats, nil
}
