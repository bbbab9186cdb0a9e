package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/zx0938013408/teamb-server/config"
	"github.com/zx0938013408/teamb-server/internal/chat"
	"github.com/zx0938013408/teamb-server/internal/queue"
	activity_repo "github.com/zx0938013408/teamb-server/internal/repo/activity"
	"github.com/zx0938013408/teamb-server/internal/routers"
	notify_service "github.com/zx0938013408/teamb-server/internal/use-case/notify-case"
	"github.com/zx0938013408/teamb-server/internal/websocket"
	"github.com/zx0938013408/teamb-server/internal/worker"
	"github.com/zx0938013408/teamb-server/state"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// initialize the application
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appState, err := state.InitAppState(ctx, stop)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize application state")
	}
	defer appState.Close()

	wsHub := websocket.NewHub()
	log.Info().Msg("Websocket hub initialized")

	var authFunc websocket.AuthenticatorFunc
	if secret := config.Conf.WS.JWTSecret; secret != "" {
		authFunc = websocket.JWTWebSocketAuth(secret)
	}

	wsHandler := websocket.NewWebSocketHandler(wsHub, authFunc, chat.NewSupportResponder())
	if config.Conf.WS.MaxConnections > 0 {
		wsHandler.MaxConnections = config.Conf.WS.MaxConnections
	}
	if config.Conf.WS.ConnectionsPerIP > 0 {
		wsHandler.RateLimit.ConnectionsPerIP = config.Conf.WS.ConnectionsPerIP
	}
	log.Info().Msg("Websocket handler initialized")

	notify := notify_service.NewNotifyService(appState, wsHub)

	r := routers.NewRouter(appState, wsHub, wsHandler, notify)

	workerPool := worker.NewWorkerPool(appState.Redis, config.Conf.REMINDER.Workers, notify)
	workerPool.Start(ctx)
	workerPool.StartDLQWorker(ctx)

	scheduler := worker.NewReminderScheduler(
		appState.Redis,
		activity_repo.NewActivityRepo(appState),
		queue.NewProducer(appState.Redis),
		config.Conf.REMINDER.ScanInterval,
	)
	go scheduler.Run(ctx)

	server := &http.Server{
		Addr:         config.Conf.App.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	// serve the application
	go func() {
		log.Info().Msgf("Starting server on http://localhost%s", config.Conf.App.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(fmt.Sprintf("ListenAndServe failed: %v", err))
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutdown initiated...")
	// gracefully shutdown the application
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Printf("Graceful shutdown failed: %v\n", err)
	} else {
		fmt.Println("Server exited gracefully.")
	}
	wsHub.Close()
	workerPool.Wait()
}
