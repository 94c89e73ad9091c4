package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"pizzada/internal/domain"
	apperrors "pizzada/internal/errors"
	"pizzada/internal/infrastructure/mysql"
)

const createTxTimeout = 5 * time.Second

type MySQLPedidosRepository struct {
	db *sql.DB
}

func NewMySQLPedidosRepository(db *sql.DB) *MySQLPedidosRepository {
	return &MySQLPedidosRepository{db: db}
}

func (r *MySQLPedidosRepository) FindByID(ctx context.Context, id int) (*domain.Pedido, error) {
	query := `
		SELECT p.id, p.evento_id, p.usuario_id, u.nome_completo, u.setor,
		       p.valor_total, p.valor_frete, p.status, p.data_pedido
		FROM pedidos p
		JOIN usuarios u ON u.id = p.usuario_id
		WHERE p.id = ?
	`

	var p domain.Pedido
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.EventoID, &p.UsuarioID, &p.UsuarioNome, &p.UsuarioSetor,
		&p.ValorTotal, &p.ValorFrete, &p.Status, &p.DataPedido,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("pedido com id %d não encontrado", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying pedido by id: %w", err)
	}

	itens, err := r.findItens(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.Itens = itens

	return &p, nil
}

func (r *MySQLPedidosRepository) List(ctx context.Context, eventoID *int) ([]domain.Pedido, error) {
	query := `
		SELECT p.id, p.evento_id, p.usuario_id, u.nome_completo, u.setor,
		       p.valor_total, p.valor_frete, p.status, p.data_pedido
		FROM pedidos p
		JOIN usuarios u ON u.id = p.usuario_id
	`
	var args []interface{}
	if eventoID != nil {
		query += " WHERE p.evento_id = ?"
		args = append(args, *eventoID)
	}
	query += " ORDER BY p.data_pedido DESC, p.id DESC"

	return r.queryPedidos(ctx, query, args...)
}

func (r *MySQLPedidosRepository) ListByUsuario(ctx context.Context, usuarioID int, eventoID *int) ([]domain.Pedido, error) {
	query := `
		SELECT p.id, p.evento_id, p.usuario_id, u.nome_completo, u.setor,
		       p.valor_total, p.valor_frete, p.status, p.data_pedido
		FROM pedidos p
		JOIN usuarios u ON u.id = p.usuario_id
		WHERE p.usuario_id = ?
	`
	args := []interface{}{usuarioID}
	if eventoID != nil {
		query += " AND p.evento_id = ?"
		args = append(args, *eventoID)
	}
	query += " ORDER BY p.data_pedido DESC, p.id DESC"

	return r.queryPedidos(ctx, query, args...)
}

func (r *MySQLPedidosRepository) ExistsByEventoAndUsuario(ctx context.Context, eventoID, usuarioID int) (bool, error) {
	query := `SELECT COUNT(*) FROM pedidos WHERE evento_id = ? AND usuario_id = ?`

	var count int
	if err := r.db.QueryRowContext(ctx, query, eventoID, usuarioID).Scan(&count); err != nil {
		return false, fmt.Errorf("checking existing pedido: %w", err)
	}

	return count > 0, nil
}

// CreateWithItens insere o pedido e todos os itens numa única
// transação: ou tudo entra, ou nada entra.
func (r *MySQLPedidosRepository) CreateWithItens(ctx context.Context, pedido domain.Pedido) (int, error) {
	txCtx, cancel := context.WithTimeout(ctx, createTxTimeout)
	defer cancel()

	tx, err := r.db.BeginTx(txCtx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	// MySQL ignora o rollback se a transação já foi commitada.
	defer tx.Rollback()

	result, err := tx.ExecContext(txCtx, `
		INSERT INTO pedidos (evento_id, usuario_id, valor_total, valor_frete, status)
		VALUES (?, ?, ?, ?, ?)`,
		pedido.EventoID, pedido.UsuarioID, pedido.ValorTotal, pedido.ValorFrete, pedido.Status,
	)
	if err != nil {
		if mysql.IsDuplicateEntry(err) {
			// Índice único (evento_id, usuario_id): pega a corrida que o
			// pré-check do serviço não pega.
			return 0, apperrors.NewConflictError("usuário já possui um pedido neste evento")
		}
		return 0, fmt.Errorf("inserting pedido: %w", err)
	}

	pedidoID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	for _, item := range pedido.Itens {
		_, err := tx.ExecContext(txCtx, `
			INSERT INTO itens_pedido (pedido_id, sabor_id, quantidade, preco_unitario, subtotal)
			VALUES (?, ?, ?, ?, ?)`,
			pedidoID, item.SaborID, item.Quantidade, item.PrecoUnitario, item.Subtotal,
		)
		if err != nil {
			return 0, fmt.Errorf("inserting item for sabor %d: %w", item.SaborID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing pedido transaction: %w", err)
	}

	return int(pedidoID), nil
}

func (r *MySQLPedidosRepository) UpdateStatus(ctx context.Context, id int, status string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE pedidos SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("updating pedido status: %w", err)
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

// Delete remove o pedido; os itens vão junto pelo ON DELETE CASCADE.
func (r *MySQLPedidosRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM pedidos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting pedido: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("pedido com id %d não encontrado", id))
	}

	return nil
}

func (r *MySQLPedidosRepository) queryPedidos(ctx context.Context, query string, args ...interface{}) ([]domain.Pedido, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying pedidos: %w", err)
	}
	defer rows.Close()

	var pedidos []domain.Pedido
	for rows.Next() {
		var p domain.Pedido
		err := rows.Scan(
			&p.ID, &p.EventoID, &p.UsuarioID, &p.UsuarioNome, &p.UsuarioSetor,
			&p.ValorTotal, &p.ValorFrete, &p.Status, &p.DataPedido,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning pedido row: %w", err)
		}
		pedidos = append(pedidos, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pedido rows: %w", err)
	}

	for i := range pedidos {
		itens, err := r.findItens(ctx, pedidos[i].ID)
		if err != nil {
			return nil, err
		}
		pedidos[i].Itens = itens
	}

	return pedidos, nil
}

func (r *MySQLPedidosRepository) findItens(ctx context.Context, pedidoID int) ([]domain.ItemPedido, error) {
	query := `
		SELECT i.id, i.pedido_id, i.sabor_id, s.nome, i.quantidade, i.preco_unitario, i.subtotal
		FROM itens_pedido i
		JOIN sabores s ON s.id = i.sabor_id
		WHERE i.pedido_id = ?
		ORDER BY i.id
	`

	rows, err := r.db.QueryContext(ctx, query, pedidoID)
	if err != nil {
		return nil, fmt.Errorf("querying itens do pedido: %w", err)
	}
	defer rows.Close()

	var itens []domain.ItemPedido
	for rows.Next() {
		var item domain.ItemPedido
		err := rows.Scan(
			&item.ID, &item.PedidoID, &item.SaborID, &item.SaborNome,
			&item.Quantidade, &item.PrecoUnitario, &item.Subtotal,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning item row: %w", err)
		}
		itens = append(itens, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating item rows: %w", err)
	}

	return itens, nil
}
