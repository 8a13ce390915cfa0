package service

import "github.com/localjobs/localjobs-web/internal/domain/model"

// DefaultTestimonials returns the testimonials shown in the landing carousel.
func DefaultTestimonials() []model.Testimonial {
	return []model.Testimonial{
		{
			ID:      "1",
			Name:    "Sarah Johnson",
			Role:    "Freelance Designer",
			Content: "This platform completely changed how I find local clients. The interface is intuitive and I've been able to grow my business significantly in just a few months.",
			Rating:  5,
		},
		{
			ID:      "2",
			Name:    "Michael Chen",
			Role:    "Home Service Provider",
			Content: "As a plumber, finding consistent work used to be challenging. Now I have a steady stream of local jobs and my customer base has expanded tremendously.",
			Rating:  5,
		},
		{
			ID:      "3",
			Name:    "Priya Sharma",
			Role:    "Tutor",
			Content: "The platform made it easy to connect with students in my neighborhood. The verification process gives clients confidence, and the payment system is seamless.",
			Rating:  4,
		},
		{
			ID:      "4",
			Name:    "David Wilson",
			Role:    "Small Business Owner",
			Content: "I've hired multiple professionals through this platform for various projects. The quality of service has been consistently excellent, saving me time and money.",
			Rating:  5,
		},
		{
			ID:      "5",
			Name:    "Emma Rodriguez",
			Role:    "Freelance Writer",
			Content: "The platform's interface is so user-friendly! I've been able to find interesting writing projects in my community that I wouldn't have discovered otherwise.",
			Rating:  5,
		},
	}
}

// DefaultSteps returns the three "how it works" steps.
func DefaultSteps() []model.Step {
	return []model.Step{
		{Number: 1, TitleKey: "step1.title", DescriptionKey: "step1.description", Target: model.NavSignUp},
		{Number: 2, TitleKey: "step2.title", DescriptionKey: "step2.description", Target: model.NavFindJobs},
		{Number: 3, TitleKey: "step3.title", DescriptionKey: "step3.description", Target: model.NavMessages},
	}
}

// DefaultCategories returns the popular category tiles.
func DefaultCategories() []model.Category {
	return []model.Category{
		{
			Slug:           "homeServices",
			TitleKey:       "category.homeServices",
			DescriptionKey: "category.homeServices.description",
			Icon:           "home",
			Target:         model.NavHomeServices,
		},
		{
			Slug:           "professional",
			TitleKey:       "category.professional",
			DescriptionKey: "category.professional.description",
			Icon:           "briefcase",
			Target:         model.NavProfessional,
		},
		{
			Slug:           "creative",
			TitleKey:       "category.creative",
			DescriptionKey: "category.creative.description",
			Icon:           "star",
			Target:         model.NavCreative,
		},
		{
			Slug:           "education",
			TitleKey:       "category.education",
			DescriptionKey: "category.education.description",
			Icon:           "message",
			Target:         model.NavEducation,
		},
	}
}

// DefaultFeaturedJobs returns the highlighted listings.
func DefaultFeaturedJobs() []model.FeaturedJob {
	return []model.FeaturedJob{
		{
			Title:       "Web Developer",
			Employment:  "Full-time",
			PostedDays:  2,
			Rate:        "$40-60/hr",
			Description: "Looking for an experienced web developer to join our growing team. Remote work available.",
			ActionLabel: "Apply Now",
			Target:      model.NavFindJobs,
		},
		{
			Title:       "House Cleaning Service",
			Employment:  "Part-time",
			PostedDays:  1,
			Rate:        "$25-35/hr",
			Description: "Professional house cleaning service available for weekly or bi-weekly appointments.",
			ActionLabel: "Contact",
			Target:      model.NavMessages,
		},
		{
			Title:       "Math Tutor",
			Employment:  "Contract",
			PostedDays:  3,
			Rate:        "$30-45/hr",
			Description: "Experienced math tutor available for high school and college students. In-person or online.",
			ActionLabel: "Learn More",
			Target:      model.NavFindJobs,
		},
	}
}
