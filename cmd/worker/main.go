package main

import (
	"os"

	"github.com/hibiken/asynq"
	"github.com/tu-usuario/stock-ledger/internal/workers"
	"github.com/tu-usuario/stock-ledger/pkg/config"
	"github.com/tu-usuario/stock-ledger/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("error cargando configuración: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "debug"})
	log.Info().Str("env", cfg.App.Env).Msg("iniciando worker de notificaciones")

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	workers.NewNotificationProcessor(cfg, log).Register(mux)

	// Run bloquea hasta SIGINT/SIGTERM y drena las tareas en vuelo.
	if err := srv.Run(mux); err != nil {
		log.Fatal().Err(err).Msg("el worker terminó con error")
	}
}
