package auth

import (
	"database/sql"
	"time"

	"go.uber.org/zap"

	"pizzada/internal/auth/repository"
	"pizzada/internal/config"
	"pizzada/internal/token"
)

func NewModule(db *sql.DB, cfg config.TokenConfig, tokenMaker token.Maker, logger *zap.Logger) (*Controller, *Middleware) {
	repo := repository.NewMySQLUsuariosRepository(db)
	svc := NewService(repo, tokenMaker, time.Duration(cfg.ExpireMinutes)*time.Minute)
	return NewController(svc, logger), NewMiddleware(tokenMaker, svc, logger)
}
