package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTestimonial_Validate(t *testing.T) {
	assert.NoError(t, Testimonial{ID: "1", Name: "Ana", Rating: 0}.Validate())
	assert.NoError(t, Testimonial{ID: "1", Name: "Ana", Rating: 5}.Validate())
	assert.Error(t, Testimonial{ID: "1", Name: "Ana", Rating: 6}.Validate())
	assert.Error(t, Testimonial{ID: "1", Name: "Ana", Rating: -1}.Validate())
	assert.Error(t, Testimonial{Name: "Ana"}.Validate())
	assert.Error(t, Testimonial{ID: "1"}.Validate())
}

func TestTestimonial_AvatarURL(t *testing.T) {
	withAvatar := Testimonial{Name: "Sarah Johnson", Avatar: "/static/img/sarah.png"}
	assert.Equal(t, "/static/img/sarah.png", withAvatar.AvatarURL())

	generated := Testimonial{Name: "Sarah Johnson"}
	assert.Equal(t, "https://ui-avatars.com/api/?name=Sarah+Johnson", generated.AvatarURL())
}

func TestTestimonial_Stars(t *testing.T) {
	assert.Len(t, Testimonial{Rating: 4}.Stars(), 4)
	assert.Empty(t, Testimonial{}.Stars())
}

func TestValidateTestimonials(t *testing.T) {
	items := []Testimonial{
		{ID: "1", Name: "A", Rating: 5},
		{ID: "2", Name: "B", Rating: 4},
	}
	assert.NoError(t, ValidateTestimonials(items))

	items = append(items, Testimonial{ID: "1", Name: "C", Rating: 3})
	err := ValidateTestimonials(items)
	assert.ErrorContains(t, err, "duplicate id")
}
