package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/emerice12-oss/Exit-Dapp/internal/config"
	"github.com/emerice12-oss/Exit-Dapp/internal/core"
	"github.com/emerice12-oss/Exit-Dapp/internal/ethereum"
	"github.com/emerice12-oss/Exit-Dapp/internal/http/handler"
	"github.com/emerice12-oss/Exit-Dapp/internal/http/handler/middleware"
	"github.com/emerice12-oss/Exit-Dapp/internal/http/payload"
	"github.com/emerice12-oss/Exit-Dapp/internal/http/server"
	"github.com/emerice12-oss/Exit-Dapp/internal/metrics"
	"github.com/emerice12-oss/Exit-Dapp/pkg/log"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("exit-dapp", zapcore.InfoLevel)

	if err := godotenv.Load(); err != nil {
		logger.Infow("no .env file found, relying on process environment")
	}

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	client, err := ethclient.Dial(config.NodeURL)
	if err != nil {
		logger.Errorw("ethereum node connection failed", "error", err)
		return err
	}

	wallet := ethereum.NewWallet(
		config.KeystoreDir,
		config.KeystorePassphrase,
		client,
		config.ChainPollInterval)
	defer wallet.Close()

	vaultClient, err := ethereum.NewVaultClient(
		client,
		client,
		wallet,
		ethcommon.HexToAddress(config.VaultAddress))
	if err != nil {
		logger.Errorw("failed to bind vault contract", "error", err)
		return err
	}

	registry := metrics.NewRegistry()

	// vault
	vault := core.NewVault(
		logger,
		wallet,
		vaultClient,
		registry)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go vault.Watch(ctx)

	// handler
	vaultHlr := handler.NewVaultHandler(
		logger,
		payload.Decoder{},
		vault)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.Dashboard, vaultHlr.HandleDashboard)
	mux.HandleFunc(handler.Connect, vaultHlr.HandleConnect)
	mux.HandleFunc(handler.Disconnect, vaultHlr.HandleDisconnect)
	mux.HandleFunc(handler.GetSession, vaultHlr.HandleGetSession)
	mux.HandleFunc(handler.GetBalance, vaultHlr.HandleGetBalance)
	mux.HandleFunc(handler.Invest, vaultHlr.HandleInvest)
	mux.HandleFunc(handler.Withdraw, vaultHlr.HandleWithdraw)
	mux.HandleFunc(handler.GetActivity, vaultHlr.HandleGetActivity)
	mux.HandleFunc(handler.GetStatus, vaultHlr.HandleGetStatus)
	mux.Handle("GET /metrics", registry.Handler())

	srv := server.NewHTTP(logger, hdlr, config.Port)
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
