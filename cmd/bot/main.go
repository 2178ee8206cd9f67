package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/warbot/internal/common/clock"
	"github.com/KirkDiggler/warbot/internal/config"
	"github.com/KirkDiggler/warbot/internal/handlers/discord"
	"github.com/KirkDiggler/warbot/internal/repositories/confirmation"
	"github.com/KirkDiggler/warbot/internal/repositories/sheets"
	"github.com/KirkDiggler/warbot/internal/services/messaging"
	"github.com/KirkDiggler/warbot/internal/services/war"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Initialize repositories
	sheetsRepo, err := sheets.NewGoogle(ctx, &sheets.Config{
		SpreadsheetID:   cfg.SpreadsheetID,
		CredentialsFile: cfg.ServiceAccountFile,
		Logger:          logger.Named("sheets"),
	})
	if err != nil {
		logger.Fatal("failed to create sheets repository", zap.Error(err))
	}

	warClock := clock.New(cfg.Location)

	confirmationRepo, err := confirmation.NewRedis(&confirmation.Config{
		RedisClient: redisClient,
		Clock:       warClock,
	})
	if err != nil {
		logger.Fatal("failed to create confirmation repository", zap.Error(err))
	}

	// Initialize services
	warSvc, err := war.New(&war.Config{
		TemplateSheet:    cfg.TemplateSheet,
		SheetPrefix:      cfg.SheetPrefix,
		RecordPrefix:     cfg.RecordPrefix,
		RecordsDir:       cfg.RecordsDir,
		MemberSheet:      cfg.MemberSheet,
		HistorySheet:     cfg.HistorySheet,
		ConfirmTimeout:   cfg.ConfirmTimeout,
		SheetsRepo:       sheetsRepo,
		ConfirmationRepo: confirmationRepo,
		Clock:            warClock,
		Logger:           logger.Named("war"),
	})
	if err != nil {
		logger.Fatal("failed to create war service", zap.Error(err))
	}

	restored, err := warSvc.Restore(ctx, &war.RestoreInput{})
	if err != nil {
		logger.Fatal("failed to restore war session", zap.Error(err))
	}
	if restored.Restored {
		logger.Info("restored war session",
			zap.String("sheet", restored.SheetName),
			zap.Int("participants", restored.Count))
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		logger.Fatal("failed to create messaging service", zap.Error(err))
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:            cfg.DiscordToken,
		ApplicationID:    cfg.ApplicationID,
		GuildID:          cfg.GuildID,
		ResultsChannelID: cfg.ResultsChannelID,
		WarService:       warSvc,
		MessagingService: messagingSvc,
		Logger:           logger.Named("discord"),
	})
	if err != nil {
		logger.Fatal("failed to create Discord bot", zap.Error(err))
	}

	if err := bot.Start(); err != nil {
		logger.Fatal("failed to start Discord bot", zap.Error(err))
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := bot.Stop(); err != nil {
		logger.Warn("error stopping bot", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		logger.Warn("error closing redis client", zap.Error(err))
	}

	logger.Info("bot has been shut down")
}

// newLogger builds the process logger from LOG_LEVEL and LOG_DEVELOPMENT
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if cfg.LogDevelopment {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	return zapCfg.Build()
}
