package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"museum-chat/cmd"
	"museum-chat/internal/data/repository"
	"museum-chat/internal/data/store"
	"museum-chat/internal/wire"
	"museum-chat/internal/worker"
	"museum-chat/pkg/database"
	"museum-chat/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.InitDB(ctx, config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		logger.Fatal("Failed to apply schema", zap.Error(err))
	}
	logger.Info("Database connected successfully")

	repos := repository.NewRepository(db, logger)

	infra := wire.Infra{HoursCache: store.NoopHoursCache{}}
	if config.Redis.Addr != "" {
		client, err := store.NewRedisClient(ctx, config.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to redis", zap.Error(err))
		}
		defer client.Close()

		infra.Conversations = store.NewRedisStore(client, config.Chat.SessionTTL)
		infra.HoursCache = store.NewRedisHoursCache(client, config.Redis.CacheTTL)
		logger.Info("Redis connected", zap.String("addr", config.Redis.Addr))
	} else {
		memory := store.NewMemoryStore()
		infra.Conversations = memory

		// redis expires keys on its own
		janitor := worker.NewConversationJanitor(memory, config.Chat.SessionTTL, time.Minute, logger)
		go janitor.Start(ctx)
	}

	app, err := wire.Wiring(ctx, repos, infra, config, logger)
	if err != nil {
		logger.Fatal("Failed to wire application", zap.Error(err))
	}
	defer app.Close()

	if err := app.Service.Hours.EnsureDefaults(ctx); err != nil {
		logger.Error("Failed to seed opening hours", zap.Error(err))
	}

	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	if err := cmd.APIServer(ctx, app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server error", zap.Error(err))
	}
}
