package dashboard

import (
	"database/sql"

	"go.uber.org/zap"

	"pizzada/internal/dashboard/repository"
	eventrepo "pizzada/internal/event/repository"
)

func NewModule(db *sql.DB, logger *zap.Logger) *Controller {
	repo := repository.NewMySQLDashboardRepository(db)
	eventoRepo := eventrepo.NewMySQLEventosRepository(db)

	svc := NewService(repo, eventoRepo)
	return NewController(svc, logger)
}
