package configuration

import (
	"context"
	"fmt"
	"time"

	"nova/internal/db"
	"nova/internal/handler"
	"nova/internal/repo"

	"go.uber.org/zap"
)

type Container struct {
	UserHandler    handler.UserHandler
	ChannelHandler handler.ChannelHandler
	MessageHandler handler.MessageHandler
	VideoHandler   handler.VideoHandler
	BotHandler     handler.BotHandler
	StatusHandler  handler.StatusHandler
	Config         Config
	Logger         *zap.Logger

	// private - for cleanup
	store *db.Store
}

func BuildContainer(configPath string) (*Container, error) {
	config, err := LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}

	// A missing or unreachable database is not fatal. The server still
	// answers; storage-backed endpoints report the unavailable state.
	store := db.NewStore(nil)
	if config.Mongo.Uri == "" {
		logger.Warn("no database configured, starting with unavailable storage")
	} else {
		con, err := db.OpenConnection(config.Mongo.Uri, config.Mongo.Database)
		if err != nil {
			logger.Warn("database connection failed, starting with unavailable storage",
				zap.Error(err),
			)
		} else {
			store = db.NewStore(con)
			logger.Info("database connected",
				zap.String("database", config.Mongo.Database),
			)
		}
	}

	documentRepo := repo.NewDocumentRepository(store, logger)

	return &Container{
		UserHandler:    handler.NewUserHandler(documentRepo),
		ChannelHandler: handler.NewChannelHandler(documentRepo),
		MessageHandler: handler.NewMessageHandler(documentRepo),
		VideoHandler:   handler.NewVideoHandler(documentRepo),
		BotHandler:     handler.NewBotHandler(),
		StatusHandler:  handler.NewStatusHandler(store, config.Mongo.Uri != ""),
		Config:         *config,
		Logger:         logger,
		store:          store,
	}, nil
}

// Close gracefully shuts down all connections
func (c *Container) Close() error {
	if c.Logger != nil {
		_ = c.Logger.Sync()
	}

	if c.store != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := c.store.Disconnect(ctx); err != nil {
			return fmt.Errorf("failed to close database connection: %w", err)
		}
	}

	return nil
}
