package order

import (
	"database/sql"

	"go.uber.org/zap"

	"pizzada/internal/config"
	eventrepo "pizzada/internal/event/repository"
	flavorrepo "pizzada/internal/flavor/repository"
	orderrepo "pizzada/internal/order/repository"
)

func NewModule(db *sql.DB, cfg config.OrderConfig, logger *zap.Logger) *Controller {
	repo := orderrepo.NewMySQLPedidosRepository(db)
	eventoRepo := eventrepo.NewMySQLEventosRepository(db)
	saborRepo := flavorrepo.NewMySQLSaboresRepository(db)

	svc := NewService(repo, eventoRepo, saborRepo, cfg.ShippingValue, logger)
	return NewController(svc, logger)
}
