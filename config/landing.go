package config

import (
	"strings"
	"time"
)

const (
	defaultLandingLocale   = "en"
	minCarouselInterval    = time.Second
	defaultCarouselAdvance = 5 * time.Second
)

// LandingConfig contains landing page configuration.
type LandingConfig struct {
	// DefaultLocale is used when a visitor has no stored or negotiable language.
	DefaultLocale string `env:"DEFAULT_LOCALE" envDefault:"en"`

	// CarouselInterval is the testimonial auto-advance period.
	CarouselInterval time.Duration `env:"CAROUSEL_INTERVAL" envDefault:"5s"`
}

// Sanitize applies guardrails to landing configuration values.
func (l *LandingConfig) Sanitize() {
	l.DefaultLocale = strings.ToLower(strings.TrimSpace(l.DefaultLocale))
	switch l.DefaultLocale {
	case "en", "bn", "hi":
	default:
		l.DefaultLocale = defaultLandingLocale
	}
	if l.CarouselInterval <= 0 {
		l.CarouselInterval = defaultCarouselAdvance
	}
	if l.CarouselInterval < minCarouselInterval {
		l.CarouselInterval = minCarouselInterval
	}
}
