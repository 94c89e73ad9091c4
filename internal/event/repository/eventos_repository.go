package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"pizzada/internal/domain"
	apperrors "pizzada/internal/errors"
	"pizzada/internal/infrastructure/mysql"
)

type MySQLEventosRepository struct {
	db *sql.DB
}

func NewMySQLEventosRepository(db *sql.DB) *MySQLEventosRepository {
	return &MySQLEventosRepository{db: db}
}

func (r *MySQLEventosRepository) List(ctx context.Context) ([]domain.Evento, error) {
	query := `
		SELECT id, nome, data_evento, data_limite, status, data_criacao
		FROM eventos
		ORDER BY data_evento DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying eventos: %w", err)
	}
	defer rows.Close()

	var eventos []domain.Evento
	for rows.Next() {
		var e domain.Evento
		if err := rows.Scan(&e.ID, &e.Nome, &e.DataEvento, &e.DataLimite, &e.Status, &e.DataCriacao); err != nil {
			return nil, fmt.Errorf("scanning evento row: %w", err)
		}
		eventos = append(eventos, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating evento rows: %w", err)
	}

	return eventos, nil
}

// FindAtivo devolve no máximo um evento: ABERTO, com data limite
// estritamente no futuro, desempate pela data de evento mais recente.
func (r *MySQLEventosRepository) FindAtivo(ctx context.Context, now time.Time) (*domain.Evento, error) {
	query := `
		SELECT id, nome, data_evento, data_limite, status, data_criacao
		FROM eventos
		WHERE status = ? AND data_limite > ?
		ORDER BY data_evento DESC
		LIMIT 1
	`

	var e domain.Evento
	err := r.db.QueryRowContext(ctx, query, domain.EventoStatusAberto, now).Scan(
		&e.ID, &e.Nome, &e.DataEvento, &e.DataLimite, &e.Status, &e.DataCriacao,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError("nenhum evento ativo no momento")
	}
	if err != nil {
		return nil, fmt.Errorf("querying evento ativo: %w", err)
	}

	return &e, nil
}

func (r *MySQLEventosRepository) FindByID(ctx context.Context, id int) (*domain.Evento, error) {
	query := `
		SELECT id, nome, data_evento, data_limite, status, data_criacao
		FROM eventos
		WHERE id = ?
	`

	var e domain.Evento
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.Nome, &e.DataEvento, &e.DataLimite, &e.Status, &e.DataCriacao,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("evento com id %d não encontrado", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying evento by id: %w", err)
	}

	return &e, nil
}

func (r *MySQLEventosRepository) ExistsByData(ctx context.Context, dataEvento time.Time) (bool, error) {
	query := `SELECT COUNT(*) FROM eventos WHERE data_evento = ?`

	var count int
	if err := r.db.QueryRowContext(ctx, query, dataEvento.Format("2006-01-02")).Scan(&count); err != nil {
		return false, fmt.Errorf("checking evento date: %w", err)
	}

	return count > 0, nil
}

func (r *MySQLEventosRepository) Insert(ctx context.Context, evento domain.Evento) (int, error) {
	query := `
		INSERT INTO eventos (nome, data_evento, data_limite, status)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		evento.Nome, evento.DataEvento.Format("2006-01-02"), evento.DataLimite, evento.Status,
	)
	if err != nil {
		if mysql.IsDuplicateEntry(err) {
			return 0, apperrors.NewConflictError(
				fmt.Sprintf("já existe um evento na data %s", evento.DataEvento.Format("2006-01-02")))
		}
		return 0, fmt.Errorf("inserting evento: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return int(lastInsertID), nil
}

// Update aplica só os campos presentes, montando o SET dinamicamente.
func (r *MySQLEventosRepository) Update(ctx context.Context, id int, update domain.EventoUpdate) error {
	var sets []string
	var args []interface{}

	if update.Nome != nil {
		sets = append(sets, "nome = ?")
		args = append(args, *update.Nome)
	}
	if update.DataLimite != nil {
		sets = append(sets, "data_limite = ?")
		args = append(args, *update.DataLimite)
	}
	if update.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, *update.Status)
	}

	if len(sets) == 0 {
		return apperrors.NewValidationError("nenhum campo para atualizar")
	}

	query := fmt.Sprintf("UPDATE eventos SET %s WHERE id = ?", strings.Join(sets, ", "))
	args = append(args, id)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating evento: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		if _, err := r.FindByID(ctx, id); err != nil {
			return err
		}
	}

	return nil
}

func (r *MySQLEventosRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM eventos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting evento: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("evento com id %d não encontrado", id))
	}

	return nil
}

func (r *MySQLEventosRepository) CountPedidos(ctx context.Context, eventoID int) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pedidos WHERE evento_id = ?`, eventoID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting pedidos for evento: %w", err)
	}
	return count, nil
}
