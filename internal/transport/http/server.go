package http

import (
	"fmt"
	stdhttp "net/http"

	"github.com/sirupsen/logrus"

	"minitwit/internal/config"
	"minitwit/internal/database"
	"minitwit/internal/handler"
	"minitwit/internal/logger"
	"minitwit/internal/repository"
	"minitwit/internal/service"
)

// Run wires the microblog service together and serves it until the listener
// fails. The database handle is constructed here and injected downward; it
// lives for the whole process and closes on return.
func Run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(cfg.LogLevel)

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := database.EnsureSchema(db); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	userRepo := repository.NewUserRepository(db)
	followRepo := repository.NewFollowRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	userService := service.NewUserService(userRepo)
	authService := service.NewAuthService(cfg)
	followService := service.NewFollowService(followRepo, userRepo)
	messageService := service.NewMessageService(messageRepo, followRepo, cfg.PerPage)

	router := NewRouter(RouterConfig{
		AuthHandler:    handler.NewAuthHandler(userService, authService, cfg),
		UserHandler:    handler.NewUserHandler(userService, messageService, followService),
		FollowHandler:  handler.NewFollowHandler(followService, userService),
		MessageHandler: handler.NewMessageHandler(messageService),
		JWTSecret:      cfg.JWTSecret,
	})

	addr := ":" + cfg.ServerPort
	logrus.WithField("addr", addr).Info("Starting minitwit server")
	return stdhttp.ListenAndServe(addr, router)
}
