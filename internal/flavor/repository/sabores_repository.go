package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"pizzada/internal/domain"
	apperrors "pizzada/internal/errors"
)

type MySQLSaboresRepository struct {
	db *sql.DB
}

func NewMySQLSaboresRepository(db *sql.DB) *MySQLSaboresRepository {
	return &MySQLSaboresRepository{db: db}
}

func (r *MySQLSaboresRepository) List(ctx context.Context, apenasAtivos bool) ([]domain.Sabor, error) {
	query := `
		SELECT id, nome, preco_pedaco, ativo, data_cadastro
		FROM sabores
	`
	if apenasAtivos {
		query += " WHERE ativo = 1"
	}
	query += " ORDER BY ativo DESC, nome"

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying sabores: %w", err)
	}
	defer rows.Close()

	var sabores []domain.Sabor
	for rows.Next() {
		var s domain.Sabor
		if err := rows.Scan(&s.ID, &s.Nome, &s.PrecoPedaco, &s.Ativo, &s.DataCadastro); err != nil {
			return nil, fmt.Errorf("scanning sabor row: %w", err)
		}
		sabores = append(sabores, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sabor rows: %w", err)
	}

	return sabores, nil
}

func (r *MySQLSaboresRepository) FindByID(ctx context.Context, id int) (*domain.Sabor, error) {
	query := `
		SELECT id, nome, preco_pedaco, ativo, data_cadastro
		FROM sabores
		WHERE id = ?
	`

	var s domain.Sabor
	err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.Nome, &s.PrecoPedaco, &s.Ativo, &s.DataCadastro)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("sabor com id %d não encontrado", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying sabor by id: %w", err)
	}

	return &s, nil
}

func (r *MySQLSaboresRepository) Insert(ctx context.Context, sabor domain.Sabor) (int, error) {
	query := `INSERT INTO sabores (nome, preco_pedaco, ativo) VALUES (?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, sabor.Nome, sabor.PrecoPedaco, sabor.Ativo)
	if err != nil {
		return 0, fmt.Errorf("inserting sabor: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return int(lastInsertID), nil
}

// Update aplica só os campos presentes, montando o SET dinamicamente.
func (r *MySQLSaboresRepository) Update(ctx context.Context, id int, update domain.SaborUpdate) error {
	var sets []string
	var args []interface{}

	if update.Nome != nil {
		sets = append(sets, "nome = ?")
		args = append(args, *update.Nome)
	}
	if update.PrecoPedaco != nil {
		sets = append(sets, "preco_pedaco = ?")
		args = append(args, *update.PrecoPedaco)
	}
	if update.Ativo != nil {
		sets = append(sets, "ativo = ?")
		args = append(args, *update.Ativo)
	}

	if len(sets) == 0 {
		return apperrors.NewValidationError("nenhum campo para atualizar")
	}

	query := fmt.Sprintf("UPDATE sabores SET %s WHERE id = ?", strings.Join(sets, ", "))
	args = append(args, id)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating sabor: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		// Pode ser inexistente ou sem mudança; confirma a existência.
		if _, err := r.FindByID(ctx, id); err != nil {
			return err
		}
	}

	return nil
}
