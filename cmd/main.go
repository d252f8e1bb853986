/*
Package main is the entry point for roombot.

It loads configuration, initializes the global logger, resolves the chat service address,
optionally starts the read-only status API, and runs the bot's connect sequence. With
RECONNECT enabled, transport failures and server logouts rerun the whole sequence, spaced
out by a rate limiter. SIGINT and SIGTERM close the open socket and stop the process.
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roombot/internal/app/command"
	"roombot/internal/app/discovery"
	"roombot/internal/app/session"
	"roombot/internal/app/status"
	"roombot/internal/app/wire"
	"roombot/internal/configs"
	"roombot/internal/handler"
	"roombot/internal/pkg/errs"
	"roombot/internal/pkg/limiter"
	"roombot/internal/pkg/logx"
)

func main() {
	cfg, err := configs.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logx.InitGlobalLogger(cfg.Environment == "development")
	logx.Logger().Info().
		Str("environment", cfg.Environment).
		Str("reg_name", cfg.RegName).
		Str("room_id", cfg.RoomID).
		Int("status_port", cfg.StatusPort).
		Bool("reconnect", cfg.Reconnect).
		Msg("Configuration loaded successfully")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr, err := serviceAddr(ctx, cfg)
	if err != nil {
		logx.Fatal(err, "Failed to resolve chat service address")
	}

	board := status.NewBoard(cfg.RoomID)

	var server *http.Server
	if cfg.StatusPort != 0 {
		server = startStatusServer(ctx, cfg, board)
	}

	creds := session.NewCredentials(cfg.RegName, cfg.RegID, cfg.Password, cfg.DisplayName, cfg.Avatar, cfg.RoomID)
	bot := session.NewBot(creds, session.Options{
		Dialer: wire.NewDialer(addr),
		Dispatcher: command.NewDispatcher(command.Config{
			BannedPhrases: cfg.BannedPhrases,
			BallResponses: command.DefaultBallResponses,
		}),
		Observer: board,
	})

	run(ctx, cfg, bot)

	if server != nil {
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancelShutdown()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logx.Error(err, "Status server forced to shutdown")
		}
	}

	logx.Info("Bot stopped.")
}

// serviceAddr returns SERVICE_ADDR when set and asks the discovery endpoint otherwise.
func serviceAddr(ctx context.Context, cfg *configs.AppConfig) (string, error) {
	if cfg.ServiceAddr != "" {
		return cfg.ServiceAddr, nil
	}

	addr, err := discovery.NewResolver(cfg.DiscoveryURL, nil).Resolve(ctx)
	if err != nil {
		return "", err
	}
	return addr.String(), nil
}

func startStatusServer(ctx context.Context, cfg *configs.AppConfig, board *status.Board) *http.Server {
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.StatusPort),
		Handler:      handler.Router(ctx, &handler.AppDeps{Board: board, Config: cfg}),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logx.Info(fmt.Sprintf("Status API listening on http://localhost%s", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logx.Fatal(err, "Status server failed to start")
		}
	}()

	return server
}

// run calls Connect until it ends for good. Only transport failures and logouts are retried,
// and only with RECONNECT enabled.
func run(ctx context.Context, cfg *configs.AppConfig, bot *session.Bot) {
	throttle := limiter.NewReconnect(cfg.ReconnectInterval)

	for {
		if err := throttle.Wait(ctx); err != nil {
			return
		}

		err := bot.Connect(ctx)

		switch {
		case ctx.Err() != nil:
			logx.Info("Received shutdown signal. Session closed.")
			return
		case err == nil:
			logx.Info("Session ended by server logout.")
		case errs.HasCode(err, errs.ErrTransport):
			logx.Error(err, "Session ended by transport failure.")
		default:
			logx.Error(err, "Connect attempt aborted.")
			return
		}

		if !cfg.Reconnect {
			return
		}
		logx.Info("Reconnecting.", "min_interval", cfg.ReconnectInterval.String())
	}
}
