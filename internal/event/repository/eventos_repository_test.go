package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzada/internal/domain"
	apperrors "pizzada/internal/errors"
	"pizzada/internal/testutil"
)

func setupEventosTest(t *testing.T) (*sql.DB, *MySQLEventosRepository) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})
	return db, NewMySQLEventosRepository(db)
}

func insertEvento(t *testing.T, repo *MySQLEventosRepository, data string, limite time.Time, status string) int {
	dataEvento, err := time.Parse("2006-01-02", data)
	require.NoError(t, err)

	id, err := repo.Insert(context.Background(), domain.Evento{
		DataEvento: dataEvento,
		DataLimite: limite,
		Status:     domain.EventoStatusAberto,
	})
	require.NoError(t, err)

	if status != domain.EventoStatusAberto {
		err = repo.Update(context.Background(), id, domain.EventoUpdate{Status: &status})
		require.NoError(t, err)
	}

	return id
}

func TestEventosRepository_InsertAndFind(t *testing.T) {
	_, repo := setupEventosTest(t)

	limite := time.Now().Add(72 * time.Hour).Truncate(time.Second)
	id := insertEvento(t, repo, "2024-06-01", limite, domain.EventoStatusAberto)

	evento, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", evento.DataEvento.Format("2006-01-02"))
	assert.Equal(t, domain.EventoStatusAberto, evento.Status)
}

func TestEventosRepository_DuplicateData(t *testing.T) {
	_, repo := setupEventosTest(t)

	limite := time.Now().Add(72 * time.Hour)
	insertEvento(t, repo, "2024-06-01", limite, domain.EventoStatusAberto)

	dataEvento, _ := time.Parse("2006-01-02", "2024-06-01")
	_, err := repo.Insert(context.Background(), domain.Evento{
		DataEvento: dataEvento,
		DataLimite: limite,
		Status:     domain.EventoStatusAberto,
	})
	_, ok := apperrors.IsConflictError(err)
	assert.True(t, ok)

	exists, err := repo.ExistsByData(context.Background(), dataEvento)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestEventosRepository_FindAtivo(t *testing.T) {
	_, repo := setupEventosTest(t)

	now := time.Now()
	futuro := now.Add(72 * time.Hour)
	passado := now.Add(-time.Hour)

	// Fora: data limite no passado.
	insertEvento(t, repo, "2024-05-01", passado, domain.EventoStatusAberto)
	// Fora: fechado, mesmo com limite futuro.
	insertEvento(t, repo, "2024-05-15", futuro, domain.EventoStatusFechado)
	// Dois qualificados: o de data mais recente vence.
	insertEvento(t, repo, "2024-06-01", futuro, domain.EventoStatusAberto)
	esperado := insertEvento(t, repo, "2024-06-15", futuro, domain.EventoStatusAberto)

	evento, err := repo.FindAtivo(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, esperado, evento.ID)
}

func TestEventosRepository_FindAtivo_None(t *testing.T) {
	_, repo := setupEventosTest(t)

	insertEvento(t, repo, "2024-05-01", time.Now().Add(-time.Hour), domain.EventoStatusAberto)

	_, err := repo.FindAtivo(context.Background(), time.Now())
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestEventosRepository_List_OrderedByDataDesc(t *testing.T) {
	_, repo := setupEventosTest(t)

	limite := time.Now().Add(72 * time.Hour)
	insertEvento(t, repo, "2024-05-01", limite, domain.EventoStatusAberto)
	insertEvento(t, repo, "2024-07-01", limite, domain.EventoStatusAberto)
	insertEvento(t, repo, "2024-06-01", limite, domain.EventoStatusAberto)

	eventos, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, eventos, 3)
	assert.Equal(t, "2024-07-01", eventos[0].DataEvento.Format("2006-01-02"))
	assert.Equal(t, "2024-06-01", eventos[1].DataEvento.Format("2006-01-02"))
	assert.Equal(t, "2024-05-01", eventos[2].DataEvento.Format("2006-01-02"))
}

func TestEventosRepository_PartialUpdate(t *testing.T) {
	_, repo := setupEventosTest(t)

	limite := time.Now().Add(72 * time.Hour).Truncate(time.Second)
	id := insertEvento(t, repo, "2024-06-01", limite, domain.EventoStatusAberto)

	status := domain.EventoStatusFechado
	err := repo.Update(context.Background(), id, domain.EventoUpdate{Status: &status})
	require.NoError(t, err)

	evento, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.EventoStatusFechado, evento.Status)
	// Campos não informados não mudam.
	assert.Equal(t, "2024-06-01", evento.DataEvento.Format("2006-01-02"))
}

func TestEventosRepository_Delete(t *testing.T) {
	_, repo := setupEventosTest(t)

	limite := time.Now().Add(72 * time.Hour)
	id := insertEvento(t, repo, "2024-06-01", limite, domain.EventoStatusAberto)

	require.NoError(t, repo.Delete(context.Background(), id))

	_, err := repo.FindByID(context.Background(), id)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)

	err = repo.Delete(context.Background(), id)
	_, ok = apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestEventosRepository_CountPedidos(t *testing.T) {
	db, repo := setupEventosTest(t)

	limite := time.Now().Add(72 * time.Hour)
	eventoID := insertEvento(t, repo, "2024-06-01", limite, domain.EventoStatusAberto)

	count, err := repo.CountPedidos(context.Background(), eventoID)
	require.NoError(t, err)
	assert.Zero(t, count)

	res, err := db.Exec(
		`INSERT INTO usuarios (nome_completo, setor, senha_hash) VALUES ('Maria Silva', 'TI', 'x')`)
	require.NoError(t, err)
	usuarioID, _ := res.LastInsertId()

	_, err = db.Exec(
		`INSERT INTO pedidos (evento_id, usuario_id, valor_total, valor_frete) VALUES (?, ?, 10, 0)`,
		eventoID, usuarioID)
	require.NoError(t, err)

	count, err = repo.CountPedidos(context.Background(), eventoID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
