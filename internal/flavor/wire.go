package flavor

import (
	"database/sql"

	"go.uber.org/zap"

	"pizzada/internal/flavor/repository"
)

func NewModule(db *sql.DB, logger *zap.Logger) *Controller {
	repo := repository.NewMySQLSaboresRepository(db)
	svc := NewService(repo)
	return NewController(svc, logger)
}
