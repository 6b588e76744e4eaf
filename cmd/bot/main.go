package main

import (
	"context"
	"fmt"
	"hangman-bot/console"
	"hangman-bot/domain"
	grpc2 "hangman-bot/grpc"
	"hangman-bot/hangman"
	"hangman-bot/repositories"
	"hangman-bot/runtime"
	"hangman-bot/runtime/workers"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires every component and keeps deferred cleanup on all exit paths.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel)
	charReplacement, _ := CharacterRune(config.CharReplacement)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Moderation & Words
	moderator, err := runtime.BuildModerator(runtime.EmbeddedDictionaries(), charReplacement, log)
	if err != nil {
		return fmt.Errorf("moderator: %w", err)
	}
	words, err := runtime.BuildWordList(runtime.EmbeddedDictionaries(), config.Languages(), &moderator, log)
	if err != nil {
		return fmt.Errorf("word list: %w", err)
	}

	// 4. Setup Supervision & Orchestration
	sessions := repositories.NewSessionRepository()
	orchestrator := runtime.NewOrchestrator(
		log,
		workers.NewSupervisor(log, config.RestartInterval),
		runtime.NewRegistry(),
		sessions,
		runtime.Config{
			BufferSize:        config.BufferSize,
			SinkTimeout:       config.SinkTimeout,
			Prefixes:          config.CommandPrefixes,
			SessionTTL:        config.SessionTTL,
			JanitorInterval:   config.JanitorInterval,
			HeartbeatInterval: config.HeartbeatInterval,
		},
	)

	seed := config.RandomSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	plugin := hangman.NewPlugin(
		log,
		sessions,
		repositories.NewUserRepository(db, log),
		repositories.NewGameRepository(db, log),
		orchestrator.Messenger(),
		words,
		domain.NewRandom(seed),
		hangman.Config{MaxAttempts: config.MaxAttempts, ForfeitOnNoise: config.ForfeitOnNoise},
	)
	if err = orchestrator.Register(plugin); err != nil {
		return err
	}
	orchestrator.WithJanitor(plugin).AddSinks(console.NewMessenger(os.Stdout, config.Colours))

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 6. Start the Engine
	if err = orchestrator.Start(ctx); err != nil {
		return fmt.Errorf("orchestrator failed to start: %w", err)
	}
	defer orchestrator.Stop()

	// 7. gRPC health server
	healthServer := grpc2.NewHealthServer(log)
	errChan := make(chan error, 2)
	go func() {
		address := fmt.Sprintf("%s:%d", config.Host, config.Port)
		if err := healthServer.ListenAndServe(ctx, address); err != nil {
			errChan <- err
		}
	}()
	healthServer.SetServing(true)

	// 8. Console input; end of input drains the queued moves then stops the bot
	go func() {
		if err := console.NewSource(log, os.Stdin, orchestrator).WithCensor(&moderator).Run(ctx); err != nil && ctx.Err() == nil {
			errChan <- err
			return
		}
		log.Info("Console input closed")
		drainCtx, cancel := context.WithTimeout(ctx, config.DrainTimeout)
		defer cancel()
		if err := orchestrator.Drain(drainCtx); err != nil {
			log.Warn("Inbound messages not fully drained", "error", err)
		}
		stop()
	}()

	// 9. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}
	healthServer.SetServing(false)
	log.Info("Program stopped cleanly")
	return nil
}
