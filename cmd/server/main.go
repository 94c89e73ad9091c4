package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"pizzada/internal/auth"
	"pizzada/internal/commons"
	"pizzada/internal/config"
	"pizzada/internal/dashboard"
	"pizzada/internal/event"
	"pizzada/internal/flavor"
	"pizzada/internal/infrastructure/logger"
	"pizzada/internal/infrastructure/mysql"
	"pizzada/internal/order"
	"pizzada/internal/server"
	"pizzada/internal/token"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	if err := mysql.Migrate(db, cfg.Database.Name); err != nil {
		zapLogger.Fatal("running migrations", zap.Error(err))
	}
	zapLogger.Info("migrations applied")

	tokenMaker, err := token.NewJWTMaker(cfg.Token.SymmetricKey)
	if err != nil {
		zapLogger.Fatal("creating token maker", zap.Error(err))
	}

	authCtrl, authMw := auth.NewModule(db, cfg.Token, tokenMaker, zapLogger)

	router := server.NewRouter(server.Controllers{
		Auth:      authCtrl,
		Flavor:    flavor.NewModule(db, zapLogger),
		Event:     event.NewModule(db, zapLogger),
		Order:     order.NewModule(db, cfg.Order, zapLogger),
		Dashboard: dashboard.NewModule(db, zapLogger),
	}, authMw, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}

// loadConfig lê o arquivo YAML quando CONFIG_FILE aponta para um, e as
// variáveis de ambiente caso contrário.
func loadConfig() (*config.Config, error) {
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		return commons.LoadConfig(path)
	}
	return config.Load()
}
