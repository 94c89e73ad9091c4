package mysql

import (
	"errors"

	gomysql "github.com/go-sql-driver/mysql"
)

// IsDuplicateEntry reporta violação de chave única (MySQL error 1062).
// As repositórios traduzem isso em ConflictError para corridas que o
// pré-check não pega.
func IsDuplicateEntry(err error) bool {
	var mysqlErr *gomysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	return false
}
