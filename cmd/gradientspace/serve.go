package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"gradientspace.dev/internal/catalog"
	"gradientspace.dev/internal/config"
	"gradientspace.dev/internal/handlers"
	"gradientspace.dev/internal/metrics"
	"gradientspace.dev/internal/render"
	"gradientspace.dev/internal/services"
	"gradientspace.dev/internal/view"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg, logger)
	},
}

// buildInquiries wires the contact form sink: the log always, NATS when a URL
// is configured. The returned close func drains the NATS connection.
func buildInquiries(c config.InquiryConfig, m *metrics.Metrics, logger *zap.Logger) (*services.InquiryService, func(), error) {
	publishers := []services.Publisher{services.NewLogPublisher(logger)}
	closeFn := func() {}

	if c.NATSURL != "" {
		nats, err := services.NewNATSPublisher(c.NATSURL, c.Subject, logger)
		if err != nil {
			return nil, nil, err
		}
		publishers = append(publishers, nats)
		closeFn = func() {
			if err := nats.Close(); err != nil {
				logger.Warn("Failed to drain NATS connection", zap.Error(err))
			}
		}
	}

	return services.NewInquiryService(logger, m, publishers...), closeFn, nil
}

func serve(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	content := services.NewContentService(cat)

	renderer, err := render.New(content)
	if err != nil {
		return err
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	sessions := services.NewSessionService(view.NewRouter(), cat, cfg.Session.TTL, logger)
	m.RegisterSessions(sessions.Count)

	inquiries, closeInquiries, err := buildInquiries(cfg.Inquiry, m, logger)
	if err != nil {
		return err
	}
	defer closeInquiries()

	srv := &http.Server{
		Addr: cfg.Server.Addr,
		Handler: handlers.SetupRoutes(handlers.Dependencies{
			Content:   content,
			Sessions:  sessions,
			Inquiries: inquiries,
			Renderer:  renderer,
			Metrics:   m,
			Logger:    logger,
		}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Server starting",
			zap.String("addr", cfg.Server.Addr),
			zap.Int("packages", len(content.GetPackages())),
			zap.Bool("metrics", m != nil),
			zap.Bool("nats", cfg.Inquiry.NATSURL != ""))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return sessions.Run(gctx, cfg.Session.SweepInterval)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("Server stopped")
	return nil
}
