package main

import (
	"log"
	"log/slog"

	"github.com/skanda-m/estatedesk/internal/auth"
	"github.com/skanda-m/estatedesk/internal/config"
	"github.com/skanda-m/estatedesk/internal/db"
	"github.com/skanda-m/estatedesk/internal/describe"
	claudedescribe "github.com/skanda-m/estatedesk/internal/describe/claude"
	"github.com/skanda-m/estatedesk/internal/logging"
	"github.com/skanda-m/estatedesk/internal/mail"
	"github.com/skanda-m/estatedesk/internal/service"
	"github.com/skanda-m/estatedesk/internal/store"
	"github.com/skanda-m/estatedesk/internal/web"
)

const mailWorkers = 2

func main() {
	cfg := config.Load()

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	userStore := store.NewUserStore(database)
	sessionStore := store.NewSessionStore(database)
	verificationStore := store.NewVerificationStore(database)
	propertyStore := store.NewPropertyStore(database)
	leadStore := store.NewLeadStore(database)

	dispatcher := mail.NewDispatcher(newMailer(cfg, logger), mailWorkers, logger)
	defer dispatcher.Stop()

	authService := auth.NewService(userStore, sessionStore, verificationStore, dispatcher,
		cfg.BaseURL, cfg.VerifyCallback, cfg.SessionTTL, logger)
	listingService := service.NewListingService(propertyStore, leadStore, logger)

	server := web.NewServer(listingService, authService, newDescriber(cfg, logger), logger)

	if err := server.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Error("server error", "error", err)
	}
}

func newMailer(cfg *config.Config, logger *slog.Logger) mail.Mailer {
	if cfg.EmailAPIKey == "" {
		logger.Warn("EMAIL_API_KEY not set, logging emails instead of sending")
		return mail.NewLogMailer(logger)
	}
	logger.Info("using email API", "url", cfg.EmailAPIURL)
	return mail.NewAPIMailer(cfg.EmailAPIURL, cfg.EmailAPIKey, cfg.EmailFrom)
}

func newDescriber(cfg *config.Config, logger *slog.Logger) describe.Generator {
	switch cfg.DescribeBackend {
	case "claude":
		if cfg.ClaudeAPIKey == "" {
			logger.Error("CLAUDE_API_KEY is required when DESCRIBE_BACKEND=claude")
			return describe.Disabled{}
		}
		logger.Info("using Claude description backend", "model", cfg.ClaudeModel)
		return claudedescribe.NewGenerator(cfg.ClaudeAPIKey, cfg.ClaudeModel)
	default:
		return describe.Disabled{}
	}
}
