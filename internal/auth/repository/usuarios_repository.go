package repository

import (
	"context"
	"database/sql"
	"fmt"

	"pizzada/internal/domain"
	apperrors "pizzada/internal/errors"
	"pizzada/internal/infrastructure/mysql"
)

type MySQLUsuariosRepository struct {
	db *sql.DB
}

func NewMySQLUsuariosRepository(db *sql.DB) *MySQLUsuariosRepository {
	return &MySQLUsuariosRepository{db: db}
}

func (r *MySQLUsuariosRepository) Insert(ctx context.Context, usuario domain.Usuario) (int, error) {
	query := `
		INSERT INTO usuarios (nome_completo, setor, senha_hash, is_admin, ativo)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		usuario.NomeCompleto, usuario.Setor, usuario.SenhaHash, usuario.IsAdmin, usuario.Ativo,
	)
	if err != nil {
		if mysql.IsDuplicateEntry(err) {
			return 0, apperrors.NewConflictError(fmt.Sprintf("usuário %q já está cadastrado", usuario.NomeCompleto))
		}
		return 0, fmt.Errorf("inserting usuario: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return int(lastInsertID), nil
}

func (r *MySQLUsuariosRepository) FindByNome(ctx context.Context, nomeCompleto string) (*domain.Usuario, error) {
	query := `
		SELECT id, nome_completo, setor, senha_hash, is_admin, ativo, data_cadastro
		FROM usuarios
		WHERE nome_completo = ?
	`

	var u domain.Usuario
	err := r.db.QueryRowContext(ctx, query, nomeCompleto).Scan(
		&u.ID, &u.NomeCompleto, &u.Setor, &u.SenhaHash, &u.IsAdmin, &u.Ativo, &u.DataCadastro,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("usuário %q não encontrado", nomeCompleto))
	}
	if err != nil {
		return nil, fmt.Errorf("querying usuario by nome: %w", err)
	}

	return &u, nil
}

func (r *MySQLUsuariosRepository) FindByID(ctx context.Context, id int) (*domain.Usuario, error) {
	query := `
		SELECT id, nome_completo, setor, senha_hash, is_admin, ativo, data_cadastro
		FROM usuarios
		WHERE id = ?
	`

	var u domain.Usuario
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&u.ID, &u.NomeCompleto, &u.Setor, &u.SenhaHash, &u.IsAdmin, &u.Ativo, &u.DataCadastro,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("usuário com id %d não encontrado", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying usuario by id: %w", err)
	}

	return &u, nil
}
