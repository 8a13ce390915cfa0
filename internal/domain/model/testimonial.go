//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const (
	MinTestimonialRating = 0
	MaxTestimonialRating = 5

	generatedAvatarBase = "https://ui-avatars.com/api/?name="
)

// Testimonial is a user quote shown in the landing page carousel.
type Testimonial struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
	Avatar  string `json:"avatar,omitempty"`
}

// Validate checks identity and rating bounds.
func (t Testimonial) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("testimonial id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return errors.New("testimonial name is required")
	}
	if t.Rating < MinTestimonialRating || t.Rating > MaxTestimonialRating {
		return fmt.Errorf("testimonial rating must be between %d and %d", MinTestimonialRating, MaxTestimonialRating)
	}
	return nil
}

// AvatarURL returns the configured avatar, or a generated one derived from the name.
func (t Testimonial) AvatarURL() string {
	if strings.TrimSpace(t.Avatar) != "" {
		return t.Avatar
	}
	return generatedAvatarBase + url.QueryEscape(t.Name)
}

// Stars returns one entry per rating point for template iteration.
func (t Testimonial) Stars() []struct{} {
	return make([]struct{}, t.Rating)
}

// ValidateTestimonials checks every item and rejects duplicate ids.
func ValidateTestimonials(items []Testimonial) error {
	seen := make(map[string]struct{}, len(items))
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("testimonial %d: %w", i, err)
		}
		if _, dup := seen[item.ID]; dup {
			return fmt.Errorf("testimonial %d: duplicate id %q", i, item.ID)
		}
		seen[item.ID] = struct{}{}
	}
	return nil
}
