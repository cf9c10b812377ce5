package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/vikrantwiz02/portfolio/internal"
	"github.com/vikrantwiz02/portfolio/internal/contact"
	"github.com/vikrantwiz02/portfolio/internal/email"
	"github.com/vikrantwiz02/portfolio/internal/handler"
	"github.com/vikrantwiz02/portfolio/internal/middleware"
	"github.com/vikrantwiz02/portfolio/internal/portfolio"
	"github.com/vikrantwiz02/portfolio/internal/routes"
)

func main() {
	checkEmail := flag.Bool("check-email", false, "verify the email configuration, send a test message, and exit")
	flag.Parse()

	cfg, err := internal.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	sender, err := newSender(cfg, logger)
	if err != nil {
		logger.Error("failed to build email sender", "error", err)
		os.Exit(1)
	}

	dispatcher := email.NewDispatcher(sender, email.DispatcherConfig{
		From:      cfg.Email.From,
		FromName:  cfg.Email.FromName,
		Recipient: cfg.Email.Recipient,
	}, logger)

	service := contact.NewService(dispatcher, logger)

	if *checkEmail {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		result := service.TestConfiguration(ctx)
		fmt.Println(result.Message)
		if !result.Success {
			os.Exit(1)
		}
		return
	}

	renderer, err := handler.NewRenderer(filepath.Join(cfg.WebDir, "templates"))
	if err != nil {
		logger.Error("failed to load templates", "error", err)
		os.Exit(1)
	}

	metrics := middleware.NewMetrics("portfolio")

	r := routes.New(routes.Deps{
		Config:   cfg,
		Logger:   logger,
		Renderer: renderer,
		Contact:  service,
		Metrics:  metrics,
		Content:  portfolio.Default(),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			"addr", srv.Addr,
			"env", cfg.Env,
			"email_provider", cfg.Email.Provider,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}

// newSender selects the outbound mail backend from configuration.
func newSender(cfg *internal.Config, logger *slog.Logger) (email.Sender, error) {
	switch cfg.Email.Provider {
	case "smtp":
		return email.NewSMTPSender(&email.SMTPConfig{
			Host:     cfg.Email.Host,
			Port:     int(cfg.Email.Port),
			Username: cfg.Email.Username,
			Password: cfg.Email.Password,
		}, logger), nil
	case "resend":
		return email.NewResendSender(cfg.Email.ResendAPIKey), nil
	case "log":
		logger.Warn("email provider is 'log', messages will not be delivered")
		return email.NewLogSender(logger), nil
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.Email.Provider)
	}
}
