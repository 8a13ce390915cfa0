//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import "strings"

// NavTarget names a navigation destination on the landing page.
type NavTarget string

const (
	NavSignUp          NavTarget = "signup"
	NavFindJobs        NavTarget = "find-jobs"
	NavMessages        NavTarget = "messages"
	NavCategories      NavTarget = "categories"
	NavHowItWorks      NavTarget = "how-it-works"
	NavHomeServices    NavTarget = "home-services"
	NavProfessional    NavTarget = "professional"
	NavCreative        NavTarget = "creative"
	NavEducation       NavTarget = "education"
	NavNotificationBox NavTarget = "notifications"
)

var navPaths = map[NavTarget]string{
	NavSignUp:          "/auth/signup",
	NavFindJobs:        "/dashboard/find-jobs",
	NavMessages:        "/dashboard/messages",
	NavCategories:      "/categories",
	NavHowItWorks:      "/how-it-works",
	NavHomeServices:    "/categories/home-services",
	NavProfessional:    "/categories/professional",
	NavCreative:        "/categories/creative",
	NavEducation:       "/categories/education",
	NavNotificationBox: "/dashboard/notifications",
}

// Path returns the site path for the target.
func (t NavTarget) Path() (string, bool) {
	p, ok := navPaths[t]
	return p, ok
}

// ParseNavTarget resolves a target name such as "find-jobs".
func ParseNavTarget(name string) (NavTarget, bool) {
	t := NavTarget(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := navPaths[t]; !ok {
		return "", false
	}
	return t, true
}

// Step is one entry of the "how it works" section.
// TitleKey and DescriptionKey are translation keys.
type Step struct {
	Number         int       `json:"number"`
	TitleKey       string    `json:"titleKey"`
	DescriptionKey string    `json:"descriptionKey"`
	Target         NavTarget `json:"target"`
}

// Category is one tile of the category grid.
type Category struct {
	Slug           string    `json:"slug"`
	TitleKey       string    `json:"titleKey"`
	DescriptionKey string    `json:"descriptionKey"`
	Icon           string    `json:"icon"`
	Target         NavTarget `json:"target"`
}

// FeaturedJob is a highlighted listing card.
type FeaturedJob struct {
	Title       string    `json:"title"`
	Employment  string    `json:"employment"`
	PostedDays  int       `json:"postedDays"`
	Rate        string    `json:"rate"`
	Description string    `json:"description"`
	ActionLabel string    `json:"actionLabel"`
	Target      NavTarget `json:"target"`
}
