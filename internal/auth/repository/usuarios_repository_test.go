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

func setupUsuariosTest(t *testing.T) *MySQLUsuariosRepository {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})
	return NewMySQLUsuariosRepository(db)
}

func TestUsuariosRepository_InsertAndFind(t *testing.T) {
	repo := setupUsuariosTest(t)

	id, err := repo.Insert(context.Background(), domain.Usuario{
		NomeCompleto: "Maria Silva",
		Setor:        "TI",
		SenhaHash:    "$2a$10$hash",
		IsAdmin:      true,
		Ativo:        true,
	})
	require.NoError(t, err)

	byID, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", byID.NomeCompleto)
	assert.True(t, byID.IsAdmin)
	assert.True(t, byID.Ativo)
	assert.False(t, byID.DataCadastro.IsZero())

	byNome, err := repo.FindByNome(context.Background(), "Maria Silva")
	require.NoError(t, err)
	assert.Equal(t, id, byNome.ID)
	assert.Equal(t, "$2a$10$hash", byNome.SenhaHash)
}

func TestUsuariosRepository_DuplicateNome(t *testing.T) {
	repo := setupUsuariosTest(t)

	usuario := domain.Usuario{
		NomeCompleto: "Maria Silva",
		Setor:        "TI",
		SenhaHash:    "x",
		Ativo:        true,
	}

	_, err := repo.Insert(context.Background(), usuario)
	require.NoError(t, err)

	_, err = repo.Insert(context.Background(), usuario)
	_, ok := apperrors.IsConflictError(err)
	assert.True(t, ok)
}

func TestUsuariosRepository_NotFound(t *testing.T) {
	repo := setupUsuariosTest(t)

	_, err := repo.FindByID(context.Background(), 9999)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)

	_, err = repo.FindByNome(context.Background(), "Ninguém")
	_, ok = apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}
