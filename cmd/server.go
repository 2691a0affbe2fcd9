package cmd

import (
	"context"
	"finledger/internal/cache"
	"finledger/internal/chain"
	"finledger/internal/config"
	"finledger/internal/core"
	"finledger/internal/db"
	"finledger/internal/events"
	"finledger/internal/http/handler"
	"finledger/internal/http/handler/middleware"
	"finledger/internal/http/payload"
	"finledger/internal/http/server"
	"finledger/internal/ledger"
	"finledger/internal/repository"
	"finledger/pkg/jwt"
	"finledger/pkg/log"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("finledger", zapcore.InfoLevel)

	cfg, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(cfg.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(cfg.JWTSecret))

	// repository
	repo := repository.NewLedgerRepository(dbConn)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := repo.MigrateAndSeed(ctx); err != nil {
		logger.Errorw("failed to migrate and seed database", "error", err)
		return err
	}

	// event bus
	bus := events.NewBus(logger)

	// settlement anchor
	var settler ledger.Settler = chain.NoopAnchor{}
	if cfg.AnchoringEnabled {
		client, err := ethclient.Dial(cfg.NodeURL)
		if err != nil {
			logger.Errorw("eth node connection failed", "error", err, "network", cfg.NetworkName)
			return err
		}

		anchor, err := chain.NewAnchor(logger, client, cfg.TokenAddress, cfg.OperatorKey)
		if err != nil {
			logger.Errorw("failed to create settlement anchor", "error", err)
			return err
		}
		settler = anchor

		watcher := chain.NewWatcher(logger, client, cfg.TokenAddress, bus)
		go watcher.Run(ctx)
	} else {
		logger.Infow("settlement anchoring disabled", "network", cfg.NetworkName)
	}

	// ledger state machine
	ledgerService := ledger.NewLedger(logger, repo, bus, settler)

	// platform
	entityCache := cache.NewCache(logger)
	platform := core.NewPlatform(
		logger,
		ledgerService,
		repo,
		jwtService,
		entityCache,
		bus,
		cfg.ChainID)
	defer platform.Close()

	platform.StartRefresh(ctx)

	// handler
	platformHlr := handler.NewPlatformHandler(
		logger,
		payload.DecodeValidator{},
		platform)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.Authenticate, platformHlr.HandleAuthenticate)
	mux.HandleFunc(handler.RegisterUser, platformHlr.HandleRegisterUser)
	mux.HandleFunc(handler.GetUser, platformHlr.HandleGetUser)
	mux.HandleFunc(handler.UpdateUserRole, platformHlr.HandleUpdateUserRole)
	mux.HandleFunc(handler.CreateTransaction, platformHlr.HandleCreateTransaction)
	mux.HandleFunc(handler.GetTransaction, platformHlr.HandleGetTransaction)
	mux.HandleFunc(handler.GetAllTransactions, platformHlr.HandleGetAllTransactions)
	mux.HandleFunc(handler.GetMyTransactions, platformHlr.HandleGetMyTransactions)
	mux.HandleFunc(handler.CompleteTransaction, platformHlr.HandleCompleteTransaction)
	mux.HandleFunc(handler.RequestApproval, platformHlr.HandleRequestApproval)
	mux.HandleFunc(handler.GetApproval, platformHlr.HandleGetApproval)
	mux.HandleFunc(handler.ProcessApproval, platformHlr.HandleProcessApproval)
	mux.HandleFunc(handler.GetPendingApprovals, platformHlr.HandleGetPendingApprovals)
	mux.HandleFunc(handler.GetMetrics, platformHlr.HandleGetMetrics)

	srv := server.NewHTTP(logger, hdlr, cfg.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
