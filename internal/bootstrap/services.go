package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/localjobs/localjobs-web/config"
	"github.com/localjobs/localjobs-web/internal/data"
	httpx "github.com/localjobs/localjobs-web/internal/http"
	"github.com/localjobs/localjobs-web/internal/observability/statsd"
	"github.com/localjobs/localjobs-web/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Notifications *service.NotificationService
	Locales       *service.LocaleService
	Rotation      *service.TestimonialRotation
	Landing       *service.LandingService
	HealthChecks  map[string]httpx.HealthCheck
	MetricsSink   *statsd.Client
}

// Close releases resources owned by the services (the rotation timer and the metrics socket).
func (c ServiceContainer) Close() error {
	if c.Rotation != nil {
		c.Rotation.Close()
	}
	if c.MetricsSink != nil {
		return c.MetricsSink.Close()
	}
	return nil
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config *config.AppConfig
	Infra  *Infrastructure
	Logger *slog.Logger
}

// buildMetricsSink returns a statsd client when metrics are enabled; failures only disable metrics.
func buildMetricsSink(logger *slog.Logger, cfg config.ObservabilityConfig) *statsd.Client {
	if !cfg.Metrics.IsEnabled() {
		return nil
	}
	client, err := statsd.NewClient(statsd.Config{
		Enabled: true,
		Address: cfg.Metrics.StatsdAddress,
		Prefix:  cfg.Metrics.Prefix,
		Logger:  logger,
	})
	if err != nil {
		logger.Error("failed to initialise statsd client", "error", err)
		return nil
	}
	return client
}

// NewServices wires repositories into services. The carousel position is restored from the
// cache so every instance resumes where the last one stopped.
func NewServices(ctx context.Context, deps *ServiceDeps) (ServiceContainer, error) {
	if deps == nil || deps.Config == nil {
		return ServiceContainer{}, errors.New("service deps with config are required")
	}
	cfg := deps.Config
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	metricsSink := buildMetricsSink(logger, cfg.Observability)
	var sink statsd.Sink
	if metricsSink != nil {
		sink = metricsSink
	}

	repo, err := deps.Infra.NotificationRepository(ctx, cfg)
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("notification repository: %w", err)
	}
	notifications := service.NewNotificationService(service.NotificationServiceOptions{
		Repo:    repo,
		Logger:  logger,
		Metrics: sink,
		Config: service.NotificationServiceConfig{
			Timeout: cfg.Notifications.StoreTimeout,
			BaseURL: cfg.HTTP.BaseURL,
			Backend: string(cfg.Notifications.Backend),
		},
	})

	cache := deps.Infra.CacheRepository()
	locales := service.NewLocaleService(service.LocaleServiceOptions{
		Store:         data.NewLocalePrefRepo(cache, data.DefaultLocalePrefTTL),
		Logger:        logger,
		DefaultLocale: cfg.Landing.DefaultLocale,
	})

	rotation, err := service.NewTestimonialRotation(service.TestimonialRotationOptions{
		Testimonials: service.DefaultTestimonials(),
		Cache:        cache,
		Logger:       logger,
		Metrics:      sink,
		Config:       service.TestimonialRotationConfig{Interval: cfg.Landing.CarouselInterval},
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("testimonial rotation: %w", err)
	}
	if err := rotation.Restore(ctx); err != nil {
		logger.WarnContext(ctx, "carousel position not restored", "error", err)
	}

	landing := service.NewLandingService(service.LandingServiceOptions{
		Locales:       locales,
		Rotation:      rotation,
		Notifications: notifications,
		Logger:        logger,
	})

	return ServiceContainer{
		Notifications: notifications,
		Locales:       locales,
		Rotation:      rotation,
		Landing:       landing,
		HealthChecks:  deps.Infra.HealthChecks(),
		MetricsSink:   metricsSink,
	}, nil
}

// ServiceOrchestrationConfig contains configuration for service orchestration.
type ServiceOrchestrationConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	Logger   *slog.Logger
}

const (
	// shutdownWaitTimeout is the maximum time to wait for services to stop gracefully.
	shutdownWaitTimeout = 15 * time.Second
)

// backgroundService describes a startable background component.
type backgroundService struct {
	mode  config.ServiceMode
	name  string
	start func(context.Context) error
}

// backgroundServiceHandle tracks a running background service.
type backgroundServiceHandle struct {
	name string
	done <-chan struct{}
}

// serviceStartupDeps groups dependencies for service startup.
type serviceStartupDeps struct {
	ctx             context.Context
	cfg             *ServiceOrchestrationConfig
	logger          *slog.Logger
	enabledServices map[config.ServiceMode]bool
	errCh           chan error
}

func launchBackground(deps *serviceStartupDeps, descriptor backgroundService) <-chan struct{} {
	if !deps.enabledServices[descriptor.mode] {
		return nil
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := descriptor.start(deps.ctx); err != nil {
			errMsg := fmt.Errorf("%s failed: %w", descriptor.name, err)
			select {
			case deps.errCh <- errMsg:
			case <-deps.ctx.Done():
			default:
				deps.logger.WarnContext(deps.ctx, "dropping background service error", "service", descriptor.name, "error", errMsg)
			}
		}
	}()

	deps.logger.InfoContext(deps.ctx, "background service started", "service", descriptor.name, "mode", descriptor.mode)
	return done
}

func newCarouselBackgroundService(deps *serviceStartupDeps) backgroundService {
	return backgroundService{
		mode: config.ServiceModeCarousel,
		name: "testimonial rotation",
		start: func(ctx context.Context) error {
			if deps.cfg.Services.Rotation == nil {
				return errors.New("testimonial rotation is not configured")
			}
			return deps.cfg.Services.Rotation.Run(ctx)
		},
	}
}

func startBackgroundServices(deps *serviceStartupDeps) []backgroundServiceHandle {
	services := []backgroundService{newCarouselBackgroundService(deps)}
	handles := make([]backgroundServiceHandle, 0, len(services))
	for _, svc := range services {
		if done := launchBackground(deps, svc); done != nil {
			handles = append(handles, backgroundServiceHandle{name: svc.name, done: done})
		}
	}
	return handles
}

// RunServicesWithShutdown starts all enabled services and manages their lifecycle.
// This function blocks until a shutdown signal is received or a service fails.
func RunServicesWithShutdown(cfg *ServiceOrchestrationConfig) error {
	if cfg == nil {
		return errors.New("service orchestration config is required")
	}
	if cfg.Config == nil {
		return errors.New("service orchestration config missing AppConfig")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	serviceCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	enabledServices, err := cfg.Config.GetEnabledServices()
	if err != nil {
		return fmt.Errorf("determine enabled services: %w", err)
	}
	errCh := make(chan error, len(enabledServices)+1)

	deps := &serviceStartupDeps{
		ctx:             serviceCtx,
		cfg:             cfg,
		logger:          logger,
		enabledServices: enabledServices,
		errCh:           errCh,
	}

	var server *http.Server
	if enabledServices[config.ServiceModeHTTP] {
		server, err = StartHTTPServer(&HTTPServerConfig{
			Config:   cfg.Config,
			Services: cfg.Services,
			Logger:   logger,
			ErrCh:    errCh,
		})
		if err != nil {
			return err
		}
	}
	backgrounds := startBackgroundServices(deps)

	return waitForShutdown(shutdownConfig{
		cancel:      cancel,
		errCh:       errCh,
		httpServer:  server,
		logger:      logger,
		backgrounds: backgrounds,
	})
}

// shutdownConfig contains dependencies for graceful shutdown.
type shutdownConfig struct {
	cancel      context.CancelFunc
	errCh       <-chan error
	signals     <-chan os.Signal // Optional: defaults to SIGINT/SIGTERM
	httpServer  *http.Server
	logger      *slog.Logger
	backgrounds []backgroundServiceHandle
}

// waitForShutdown waits for shutdown signal or service error.
func waitForShutdown(cfg shutdownConfig) error {
	quit := cfg.signals
	if quit == nil {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(ch)
		quit = ch
	}

	select {
	case <-quit:
		cfg.logger.Info("shutting down services...")
		cfg.cancel()
		return gracefulStop(cfg)
	case err := <-cfg.errCh:
		cfg.logger.Error("service error", "error", err)
		cfg.cancel()
		if stopErr := gracefulStop(cfg); stopErr != nil {
			cfg.logger.Error("graceful stop failed", "error", stopErr)
		}
		return err
	}
}

// gracefulStop stops the HTTP server first, then waits for background services.
func gracefulStop(cfg shutdownConfig) error {
	if cfg.httpServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownWaitTimeout)
		defer cancel()

		if err := ShutdownHTTPServer(ShutdownConfig{
			Context: shutdownCtx,
			Server:  cfg.httpServer,
			Logger:  cfg.logger,
		}); err != nil {
			return err
		}
	}

	for _, svc := range cfg.backgrounds {
		waitForService(svc.done, svc.name, cfg.logger)
	}

	return nil
}

// waitForService waits for a service to finish with timeout.
func waitForService(done <-chan struct{}, name string, logger *slog.Logger) {
	if done == nil {
		return
	}
	select {
	case <-done:
		logger.Info(name + " stopped")
	case <-time.After(shutdownWaitTimeout):
		logger.Warn("timeout waiting for " + name + " to stop")
	}
}
