// Package mocks provides mock implementations of the core ports for service and handler tests.
//
// The mocks are produced by go.uber.org/mock (mockgen). To regenerate after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	repo := mocks.NewMockNotificationRepository(ctrl)
//	repo.EXPECT().List(gomock.Any(), "user-1").Return(items, nil)
package mocks

// Generate mock for NotificationRepository interface from internal/core package.
// This creates MockNotificationRepository with methods for all NotificationRepository interface methods:
// List, Create, MarkRead, MarkUnread
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=notification_repository_mock.go github.com/localjobs/localjobs-web/internal/core NotificationRepository

// Generate mock for LocalePreferenceStore interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=locale_preference_store_mock.go github.com/localjobs/localjobs-web/internal/core LocalePreferenceStore

// Generate mock for CacheRepository interface from internal/core package.
// This creates MockCacheRepository with methods for all CacheRepository interface methods:
// Set, Get, Delete, Exists, Health
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=cache_repository_mock.go github.com/localjobs/localjobs-web/internal/core CacheRepository
