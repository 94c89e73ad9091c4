package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzada/internal/testutil"
)

func setupDashboardTest(t *testing.T) (*sql.DB, *MySQLDashboardRepository) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})
	return db, NewMySQLDashboardRepository(db)
}

// Monta o evento de 2024-06-01 com dois pedidos: A (5 Calabresa +
// 3 Quatro Queijos) e B (4 Calabresa).
func seedWorkedExample(t *testing.T, db *sql.DB) int {
	mustExec := func(query string, args ...interface{}) int {
		res, err := db.Exec(query, args...)
		require.NoError(t, err)
		id, _ := res.LastInsertId()
		return int(id)
	}

	maria := mustExec(`INSERT INTO usuarios (nome_completo, setor, senha_hash) VALUES ('Maria Silva', 'TI', 'x')`)
	joao := mustExec(`INSERT INTO usuarios (nome_completo, setor, senha_hash) VALUES ('João Souza', 'RH', 'x')`)

	evento := mustExec(`INSERT INTO eventos (data_evento, data_limite, status) VALUES ('2024-06-01', ?, 'ABERTO')`,
		time.Date(2024, 6, 5, 23, 59, 0, 0, time.UTC))

	calabresa := mustExec(`INSERT INTO sabores (nome, preco_pedaco, ativo) VALUES ('Calabresa', 7.50, 1)`)
	queijos := mustExec(`INSERT INTO sabores (nome, preco_pedaco, ativo) VALUES ('Quatro Queijos', 9.00, 1)`)

	// A: 5×7.50 + 3×9.00 = 64.50; B: 4×7.50 = 30.00. Frete 5.00 cada.
	pedidoA := mustExec(`INSERT INTO pedidos (evento_id, usuario_id, valor_total, valor_frete) VALUES (?, ?, 64.50, 5.00)`,
		evento, maria)
	pedidoB := mustExec(`INSERT INTO pedidos (evento_id, usuario_id, valor_total, valor_frete) VALUES (?, ?, 30.00, 5.00)`,
		evento, joao)

	mustExec(`INSERT INTO itens_pedido (pedido_id, sabor_id, quantidade, preco_unitario, subtotal) VALUES (?, ?, 5, 7.50, 37.50)`,
		pedidoA, calabresa)
	mustExec(`INSERT INTO itens_pedido (pedido_id, sabor_id, quantidade, preco_unitario, subtotal) VALUES (?, ?, 3, 9.00, 27.00)`,
		pedidoA, queijos)
	mustExec(`INSERT INTO itens_pedido (pedido_id, sabor_id, quantidade, preco_unitario, subtotal) VALUES (?, ?, 4, 7.50, 30.00)`,
		pedidoB, calabresa)

	return evento
}

func TestDashboardRepository_Totais(t *testing.T) {
	db, repo := setupDashboardTest(t)
	evento := seedWorkedExample(t, db)

	totais, err := repo.Totais(context.Background(), evento)
	require.NoError(t, err)
	assert.Equal(t, 2, totais.TotalParticipantes)
	assert.Equal(t, 2, totais.TotalPedidos)
	// 64.50+5.00 + 30.00+5.00 = 104.50.
	assert.InDelta(t, 104.5, totais.ValorTotal, 0.001)
}

func TestDashboardRepository_Totais_EventoVazio(t *testing.T) {
	_, repo := setupDashboardTest(t)

	totais, err := repo.Totais(context.Background(), 9999)
	require.NoError(t, err)
	assert.Zero(t, totais.TotalParticipantes)
	assert.Zero(t, totais.TotalPedidos)
	assert.Zero(t, totais.ValorTotal)
}

func TestDashboardRepository_TotalPedacos(t *testing.T) {
	db, repo := setupDashboardTest(t)
	evento := seedWorkedExample(t, db)

	total, err := repo.TotalPedacos(context.Background(), evento)
	require.NoError(t, err)
	assert.Equal(t, 12, total)

	vazio, err := repo.TotalPedacos(context.Background(), 9999)
	require.NoError(t, err)
	assert.Zero(t, vazio)
}

func TestDashboardRepository_EstatisticasPorSabor(t *testing.T) {
	db, repo := setupDashboardTest(t)
	evento := seedWorkedExample(t, db)

	stats, err := repo.EstatisticasPorSabor(context.Background(), evento)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	// Ordenado por pedaços, decrescente.
	assert.Equal(t, "Calabresa", stats[0].SaborNome)
	assert.Equal(t, 9, stats[0].TotalPedacos)
	assert.InDelta(t, 67.5, stats[0].ValorTotal, 0.001)

	assert.Equal(t, "Quatro Queijos", stats[1].SaborNome)
	assert.Equal(t, 3, stats[1].TotalPedacos)
	assert.InDelta(t, 27.0, stats[1].ValorTotal, 0.001)
}

func TestDashboardRepository_EstatisticasPorSabor_EventoVazio(t *testing.T) {
	_, repo := setupDashboardTest(t)

	stats, err := repo.EstatisticasPorSabor(context.Background(), 9999)
	require.NoError(t, err)
	assert.Empty(t, stats)
}
