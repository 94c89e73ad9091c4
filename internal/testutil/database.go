package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB abre a base de testes local. Espera um MySQL em
// localhost:3306 com o schema 'pizzada_test'; sem ele os testes de
// integração são pulados.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/pizzada_test?parseTime=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// CleanupTestDB esvazia as tabelas na ordem das chaves estrangeiras.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{"itens_pedido", "pedidos", "eventos", "sabores", "usuarios"}
	for _, table := range tables {
		_, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SetupTestTables cria as tabelas usadas pelos testes de integração.
func SetupTestTables(t *testing.T, db *sql.DB) {
	createUsuariosTable := `
	CREATE TABLE IF NOT EXISTS usuarios (
		id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		nome_completo VARCHAR(200) NOT NULL,
		setor VARCHAR(100) NOT NULL,
		senha_hash VARCHAR(255) NOT NULL,
		is_admin TINYINT(1) NOT NULL DEFAULT 0,
		ativo TINYINT(1) NOT NULL DEFAULT 1,
		data_cadastro DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE INDEX uq_usuarios_nome (nome_completo)
	)`

	createSaboresTable := `
	CREATE TABLE IF NOT EXISTS sabores (
		id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		nome VARCHAR(100) NOT NULL,
		preco_pedaco DECIMAL(10,2) NOT NULL,
		ativo TINYINT(1) NOT NULL DEFAULT 1,
		data_cadastro DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`

	createEventosTable := `
	CREATE TABLE IF NOT EXISTS eventos (
		id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		nome VARCHAR(200) NULL,
		data_evento DATE NOT NULL,
		data_limite DATETIME NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'ABERTO',
		data_criacao DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE INDEX uq_eventos_data (data_evento)
	)`

	createPedidosTable := `
	CREATE TABLE IF NOT EXISTS pedidos (
		id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		evento_id INT NOT NULL,
		usuario_id INT NOT NULL,
		valor_total DECIMAL(10,2) NOT NULL DEFAULT 0.00,
		valor_frete DECIMAL(10,2) NOT NULL DEFAULT 0.00,
		status VARCHAR(20) NOT NULL DEFAULT 'PENDENTE',
		data_pedido DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE INDEX uq_pedidos_evento_usuario (evento_id, usuario_id),
		INDEX idx_pedidos_usuario (usuario_id),
		CONSTRAINT fk_pedidos_evento FOREIGN KEY (evento_id) REFERENCES eventos (id),
		CONSTRAINT fk_pedidos_usuario FOREIGN KEY (usuario_id) REFERENCES usuarios (id)
	)`

	createItensPedidoTable := `
	CREATE TABLE IF NOT EXISTS itens_pedido (
		id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		pedido_id INT NOT NULL,
		sabor_id INT NOT NULL,
		quantidade INT NOT NULL,
		preco_unitario DECIMAL(10,2) NOT NULL,
		subtotal DECIMAL(10,2) NOT NULL,
		INDEX idx_itens_pedido (pedido_id),
		INDEX idx_itens_sabor (sabor_id),
		CONSTRAINT fk_itens_pedido FOREIGN KEY (pedido_id) REFERENCES pedidos (id) ON DELETE CASCADE,
		CONSTRAINT fk_itens_sabor FOREIGN KEY (sabor_id) REFERENCES sabores (id)
	)`

	tables := []struct {
		name  string
		query string
	}{
		{"usuarios", createUsuariosTable},
		{"sabores", createSaboresTable},
		{"eventos", createEventosTable},
		{"pedidos", createPedidosTable},
		{"itens_pedido", createItensPedidoTable},
	}

	for _, tbl := range tables {
		_, err := db.Exec(tbl.query)
		if err != nil {
			t.Logf("failed to create table %s: %v", tbl.name, err)
		}
	}
}
