package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzada/internal/domain"
	apperrors "pizzada/internal/errors"
	"pizzada/internal/testutil"
)

func setupSaboresTest(t *testing.T) *MySQLSaboresRepository {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})
	return NewMySQLSaboresRepository(db)
}

func insertSabor(t *testing.T, repo *MySQLSaboresRepository, nome string, preco float64, ativo bool) int {
	id, err := repo.Insert(context.Background(), domain.Sabor{
		Nome:        nome,
		PrecoPedaco: preco,
		Ativo:       ativo,
	})
	require.NoError(t, err)
	return id
}

func TestSaboresRepository_InsertAndFind(t *testing.T) {
	repo := setupSaboresTest(t)

	id := insertSabor(t, repo, "Calabresa", 7.5, true)

	sabor, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Calabresa", sabor.Nome)
	assert.InDelta(t, 7.5, sabor.PrecoPedaco, 0.001)
	assert.True(t, sabor.Ativo)
	assert.False(t, sabor.DataCadastro.IsZero())
}

func TestSaboresRepository_FindByID_NotFound(t *testing.T) {
	repo := setupSaboresTest(t)

	_, err := repo.FindByID(context.Background(), 9999)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestSaboresRepository_List_ActiveFirstThenName(t *testing.T) {
	repo := setupSaboresTest(t)

	insertSabor(t, repo, "Portuguesa", 8.0, false)
	insertSabor(t, repo, "Quatro Queijos", 9.0, true)
	insertSabor(t, repo, "Calabresa", 7.5, true)

	sabores, err := repo.List(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, sabores, 3)
	assert.Equal(t, "Calabresa", sabores[0].Nome)
	assert.Equal(t, "Quatro Queijos", sabores[1].Nome)
	assert.Equal(t, "Portuguesa", sabores[2].Nome)

	ativos, err := repo.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, ativos, 2)
	for _, s := range ativos {
		assert.True(t, s.Ativo)
	}
}

func TestSaboresRepository_PartialUpdate(t *testing.T) {
	repo := setupSaboresTest(t)

	id := insertSabor(t, repo, "Calabresa", 7.5, true)

	preco := 8.25
	err := repo.Update(context.Background(), id, domain.SaborUpdate{PrecoPedaco: &preco})
	require.NoError(t, err)

	sabor, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.InDelta(t, 8.25, sabor.PrecoPedaco, 0.001)
	// Nome e ativo intactos.
	assert.Equal(t, "Calabresa", sabor.Nome)
	assert.True(t, sabor.Ativo)
}

func TestSaboresRepository_Update_NotFound(t *testing.T) {
	repo := setupSaboresTest(t)

	ativo := false
	err := repo.Update(context.Background(), 9999, domain.SaborUpdate{Ativo: &ativo})
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestSaboresRepository_Update_NoFields(t *testing.T) {
	repo := setupSaboresTest(t)

	id := insertSabor(t, repo, "Calabresa", 7.5, true)

	err := repo.Update(context.Background(), id, domain.SaborUpdate{})
	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
}
