package event

import (
	"database/sql"

	"go.uber.org/zap"

	"pizzada/internal/event/repository"
)

func NewModule(db *sql.DB, logger *zap.Logger) *Controller {
	repo := repository.NewMySQLEventosRepository(db)
	svc := NewService(repo)
	return NewController(svc, logger)
}
