package bootstrap

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localjobs/localjobs-web/config"
	"github.com/localjobs/localjobs-web/internal/service"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func memoryConfig() *config.AppConfig {
	cfg := &config.AppConfig{
		Services:      "http,carousel",
		Notifications: config.NotificationsConfig{Backend: config.NotificationBackendMemory},
		Redis:         config.RedisConfig{Disabled: true},
		Landing:       config.LandingConfig{DefaultLocale: "bn", CarouselInterval: time.Second},
		HTTP:          config.HTTPConfig{BaseURL: "https://localjobs.example.com"},
	}
	cfg.Sanitize()
	return cfg
}

func TestGetEnabledServices(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		services string
		want     []string
	}{
		{name: "defaults", services: "http,carousel", want: []string{"carousel", "http"}},
		{name: "http only", services: " http ", want: []string{"http"}},
		{name: "invalid", services: "http,reaper", want: []string{}},
		{name: "empty", services: "", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := &config.AppConfig{Services: tt.services}
			assert.Equal(t, tt.want, GetEnabledServices(cfg))
		})
	}
	assert.Empty(t, GetEnabledServices(nil))
}

func TestValidateServiceConfig(t *testing.T) {
	t.Parallel()
	require.Error(t, ValidateServiceConfig(nil))
	require.Error(t, ValidateServiceConfig(&config.AppConfig{Services: "scheduler"}))
	require.NoError(t, ValidateServiceConfig(&config.AppConfig{Services: "carousel"}))
}

func TestOpenInfrastructure_MemoryOnly(t *testing.T) {
	t.Parallel()
	cfg := memoryConfig()

	infra, err := OpenInfrastructure(context.Background(), cfg, discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, infra.Close(context.Background())) })

	assert.Nil(t, infra.DB)
	assert.Nil(t, infra.Redis)
	assert.Nil(t, infra.Mongo)
	assert.Nil(t, infra.Cassandra)
	assert.Empty(t, infra.HealthChecks())
}

func TestNotificationRepository_MissingConnection(t *testing.T) {
	t.Parallel()

	for _, backend := range []config.NotificationBackend{
		config.NotificationBackendPostgres,
		config.NotificationBackendMongo,
		config.NotificationBackendCassandra,
	} {
		cfg := memoryConfig()
		cfg.Notifications.Backend = backend
		_, err := (&Infrastructure{}).NotificationRepository(context.Background(), cfg)
		assert.Error(t, err, backend)
	}
}

func TestNewServices_Memory(t *testing.T) {
	t.Parallel()
	cfg := memoryConfig()
	infra := &Infrastructure{}

	svc, err := NewServices(context.Background(), &ServiceDeps{Config: cfg, Infra: infra, Logger: discardLogger()})
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, svc.Close()) })

	require.NotNil(t, svc.Notifications)
	require.NotNil(t, svc.Landing)
	assert.Equal(t, time.Second, svc.Rotation.Interval())
	assert.Nil(t, svc.MetricsSink)

	page, err := svc.Landing.Page(context.Background(), service.PageRequest{VisitorID: "v1"})
	require.NoError(t, err)
	assert.Equal(t, "bn", page.Locale)
}

func TestBuildHTTPHandler(t *testing.T) {
	t.Parallel()
	if _, err := os.Stat("../../frontend/templates"); err != nil {
		t.Skip("templates not available")
	}
	cfg := memoryConfig()
	cfg.HTTP.CompressionEnabled = true

	svc, err := NewServices(context.Background(), &ServiceDeps{Config: cfg, Infra: &Infrastructure{}, Logger: discardLogger()})
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, svc.Close()) })

	rs := routerServices(cfg, svc, discardLogger())
	assert.True(t, rs.Visitor.Secure)
	assert.NotEmpty(t, rs.AssetVersion)
	rs.TemplateFS = os.DirFS("../../frontend/templates")
	rs.StaticFS = os.DirFS("../../frontend/static")

	h, err := buildHTTPHandler(httpHandlerConfig{Logger: discardLogger(), Services: rs, HTTP: cfg.HTTP})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestWaitForShutdown(t *testing.T) {
	t.Parallel()

	t.Run("signal stops background services", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			<-ctx.Done()
			close(done)
		}()

		sig := make(chan os.Signal, 1)
		sig <- os.Interrupt
		err := waitForShutdown(shutdownConfig{
			cancel:      cancel,
			errCh:       make(chan error),
			signals:     sig,
			logger:      discardLogger(),
			backgrounds: []backgroundServiceHandle{{name: "rotation", done: done}},
		})
		require.NoError(t, err)
		assert.ErrorIs(t, ctx.Err(), context.Canceled)
	})

	t.Run("service error is returned", func(t *testing.T) {
		t.Parallel()
		_, cancel := context.WithCancel(context.Background())
		errCh := make(chan error, 1)
		boom := errors.New("rotation failed")
		errCh <- boom

		err := waitForShutdown(shutdownConfig{
			cancel:  cancel,
			errCh:   errCh,
			signals: make(chan os.Signal),
			logger:  discardLogger(),
		})
		require.ErrorIs(t, err, boom)
	})
}

func TestLaunchBackground_DisabledMode(t *testing.T) {
	t.Parallel()
	deps := &serviceStartupDeps{
		ctx:             context.Background(),
		logger:          discardLogger(),
		enabledServices: map[config.ServiceMode]bool{config.ServiceModeHTTP: true},
		errCh:           make(chan error, 1),
	}
	started := false
	done := launchBackground(deps, backgroundService{
		mode:  config.ServiceModeCarousel,
		name:  "carousel",
		start: func(context.Context) error { started = true; return nil },
	})
	assert.Nil(t, done)
	assert.False(t, started)
}

func TestLaunchBackground_ReportsError(t *testing.T) {
	t.Parallel()
	deps := &serviceStartupDeps{
		ctx:             context.Background(),
		logger:          discardLogger(),
		enabledServices: map[config.ServiceMode]bool{config.ServiceModeCarousel: true},
		errCh:           make(chan error, 1),
	}
	done := launchBackground(deps, backgroundService{
		mode:  config.ServiceModeCarousel,
		name:  "carousel",
		start: func(context.Context) error { return errors.New("tick failed") },
	})
	require.NotNil(t, done)
	<-done
	err := <-deps.errCh
	assert.ErrorContains(t, err, "carousel failed: tick failed")
}
