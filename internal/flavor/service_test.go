package flavor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzada/internal/domain"
	apperrors "pizzada/internal/errors"
)

type mockRepository struct {
	ListFunc     func(ctx context.Context, apenasAtivos bool) ([]domain.Sabor, error)
	FindByIDFunc func(ctx context.Context, id int) (*domain.Sabor, error)
	InsertFunc   func(ctx context.Context, sabor domain.Sabor) (int, error)
	UpdateFunc   func(ctx context.Context, id int, update domain.SaborUpdate) error
}

func (m *mockRepository) List(ctx context.Context, apenasAtivos bool) ([]domain.Sabor, error) {
	return m.ListFunc(ctx, apenasAtivos)
}

func (m *mockRepository) FindByID(ctx context.Context, id int) (*domain.Sabor, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockRepository) Insert(ctx context.Context, sabor domain.Sabor) (int, error) {
	return m.InsertFunc(ctx, sabor)
}

func (m *mockRepository) Update(ctx context.Context, id int, update domain.SaborUpdate) error {
	return m.UpdateFunc(ctx, id, update)
}

func TestCreate_StartsActive(t *testing.T) {
	var inserted domain.Sabor
	repo := &mockRepository{
		InsertFunc: func(ctx context.Context, sabor domain.Sabor) (int, error) {
			inserted = sabor
			inserted.ID = 3
			return 3, nil
		},
		FindByIDFunc: func(ctx context.Context, id int) (*domain.Sabor, error) {
			return &inserted, nil
		},
	}

	svc := NewService(repo)

	sabor, err := svc.Create(context.Background(), "Calabresa", 7.5)
	require.NoError(t, err)
	assert.Equal(t, 3, sabor.ID)
	assert.True(t, sabor.Ativo)
	assert.Equal(t, 7.5, sabor.PrecoPedaco)
}

func TestUpdate_NoFields(t *testing.T) {
	svc := NewService(&mockRepository{})

	sabor, err := svc.Update(context.Background(), 1, domain.SaborUpdate{})
	assert.Nil(t, sabor)
	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
}

func TestUpdate_OnlyProvidedFields(t *testing.T) {
	var applied domain.SaborUpdate
	repo := &mockRepository{
		UpdateFunc: func(ctx context.Context, id int, update domain.SaborUpdate) error {
			applied = update
			return nil
		},
		FindByIDFunc: func(ctx context.Context, id int) (*domain.Sabor, error) {
			return &domain.Sabor{ID: id, Nome: "Calabresa", PrecoPedaco: 9.0, Ativo: true}, nil
		},
	}

	svc := NewService(repo)

	preco := 9.0
	_, err := svc.Update(context.Background(), 1, domain.SaborUpdate{PrecoPedaco: &preco})
	require.NoError(t, err)
	assert.Nil(t, applied.Nome)
	assert.Nil(t, applied.Ativo)
	require.NotNil(t, applied.PrecoPedaco)
	assert.Equal(t, 9.0, *applied.PrecoPedaco)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := &mockRepository{
		UpdateFunc: func(ctx context.Context, id int, update domain.SaborUpdate) error {
			return apperrors.NewNotFoundError("sabor com id 99 não encontrado")
		},
	}

	svc := NewService(repo)

	ativo := false
	_, err := svc.Update(context.Background(), 99, domain.SaborUpdate{Ativo: &ativo})
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestDeactivate(t *testing.T) {
	var applied domain.SaborUpdate
	repo := &mockRepository{
		UpdateFunc: func(ctx context.Context, id int, update domain.SaborUpdate) error {
			applied = update
			return nil
		},
	}

	svc := NewService(repo)

	err := svc.Deactivate(context.Background(), 5)
	require.NoError(t, err)
	require.NotNil(t, applied.Ativo)
	assert.False(t, *applied.Ativo)
	assert.Nil(t, applied.Nome)
	assert.Nil(t, applied.PrecoPedaco)
}
