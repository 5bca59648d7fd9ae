package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/tu-usuario/stock-ledger/internal/application/catalog"
	"github.com/tu-usuario/stock-ledger/internal/application/inventory"
	"github.com/tu-usuario/stock-ledger/internal/application/orders"
	"github.com/tu-usuario/stock-ledger/internal/application/partners"
	"github.com/tu-usuario/stock-ledger/internal/infrastructure/notify"
	"github.com/tu-usuario/stock-ledger/internal/infrastructure/postgres"
	httpiface "github.com/tu-usuario/stock-ledger/internal/interfaces/http"
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
	log.Info().Str("env", cfg.App.Env).Msg("iniciando stock-ledger API")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	pool, err := postgres.NewPool(ctx, cfg.DB)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo conectar a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(cfg.DB.ConnectionString(), log); err != nil {
		log.Fatal().Err(err).Msg("no se pudieron aplicar las migraciones")
	}

	// Repos sobre el pool para lecturas; las escrituras transaccionales pasan
	// por el TxRunner, que arma repos atados a la tx.
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer asynqClient.Close()
	events := notify.NewEnqueuer(asynqClient)

	accessor := inventory.NewStockAccessor()
	commitUC := orders.NewCommitOrderUseCase(txRunner, productRepo, customerRepo, supplierRepo, accessor, events, log)
	queryUC := orders.NewQueryUseCase(orderRepo)
	productUC := catalog.NewProductUseCase(txRunner, productRepo, movementRepo, log)
	adjustmentUC := inventory.NewAdjustmentUseCase(txRunner, accessor, log)
	partnerUC := partners.NewUseCase(customerRepo, supplierRepo)

	app := httpiface.NewApp(httpiface.Handlers{
		Orders:    httpiface.NewOrderHandler(commitUC, queryUC),
		Products:  httpiface.NewProductHandler(productUC),
		Inventory: httpiface.NewInventoryHandler(adjustmentUC),
		Partners:  httpiface.NewPartnerHandler(partnerUC),
	}, log)

	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Fatal().Err(err).Msg("el servidor HTTP terminó con error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando servidor...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("apagado forzado")
	}
	log.Info().Msg("servidor detenido")
}
