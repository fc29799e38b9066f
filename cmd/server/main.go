package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/asionix/mailroom/internal/config"
	"github.com/asionix/mailroom/internal/logger"
	"github.com/asionix/mailroom/internal/mailer"
	"github.com/asionix/mailroom/internal/notify"
	"github.com/asionix/mailroom/internal/web"
	"github.com/asionix/mailroom/internal/web/handlers"
)

func main() {
	// .env is optional, real env vars win
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	if err := logger.Init(cfg.LogLevel, cfg.LogFile); err != nil {
		panic("failed to init logger: " + err.Error())
	}
	log := logger.Get()
	log.Info().Msg("starting form mailer service")

	// pick the delivery channel
	var sender mailer.Sender
	switch cfg.Provider {
	case config.ProviderSMTP:
		if cfg.SMTPHost == "" {
			log.Warn().Msg("SMTP_HOST not set, sends will fail")
		}
		sender = mailer.NewSMTPSender(mailer.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
		})
	default:
		if cfg.ResendAPIKey == "" {
			log.Warn().Msg("RESEND_API_KEY not set, sends will fail")
		}
		sender = mailer.NewResendSender(cfg.ResendAPIKey)
	}

	renderer := notify.NewRenderer(cfg.FromCareers, cfg.FromWebsite, cfg.HRInbox)

	srv := web.NewServer(
		&web.Config{
			Port:           cfg.HTTPPort,
			AllowedOrigins: cfg.AllowedOrigins,
		},
		handlers.NewCareerHandler(sender, renderer, cfg.MaxFileSizeBytes),
		handlers.NewContactHandler(sender, renderer),
	)

	// graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info().Msg("received shutdown signal")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Stop(ctx); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	log.Info().
		Int("port", cfg.HTTPPort).
		Str("provider", cfg.Provider).
		Str("inbox", cfg.HRInbox).
		Msg("listening")

	if err := srv.Start(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server failed")
	}
}
