// Package core holds the template helpers shared by every page.
package core

import (
	"encoding/json"
	"fmt"
	"html/template"
	"time"

	"github.com/localjobs/localjobs-web/internal/domain/model"
)

// Funcs returns a template.FuncMap containing helpers that are broadly useful across templates.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"add":          func(a, b int) int { return a + b },
		"sub":          func(a, b int) int { return a - b },
		"seq":          Seq,
		"navHref":      NavHref,
		"postedAgo":    PostedAgo,
		"timeTag":      TimeTag,
		"truncateText": TruncateText,
		"toJSON": func(v any) (template.JS, error) {
			b, err := json.Marshal(v)
			if err != nil {
				return "", err
			}
			// #nosec G203 - json.Marshal escapes <, > and & so the output is safe inside <script>.
			return template.JS(b), nil
		},
	}
}

// Seq returns [0, n) for ranging a fixed number of times, e.g. rating stars.
func Seq(n int) []int {
	if n <= 0 {
		return nil
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// NavHref returns the redirect link for a navigation target, or "#" for an unknown one.
func NavHref(target model.NavTarget) string {
	if _, ok := target.Path(); !ok {
		return "#"
	}
	return "/go/" + string(target)
}

// PostedAgo renders a listing age in days.
func PostedAgo(days int) string {
	switch {
	case days <= 0:
		return "Posted today"
	case days == 1:
		return "Posted 1 day ago"
	default:
		return fmt.Sprintf("Posted %d days ago", days)
	}
}

// TimeTag renders a <time> element, or nothing for a zero or nil time.
func TimeTag(ts any) template.HTML {
	var t0 time.Time
	switch v := ts.(type) {
	case time.Time:
		t0 = v
	case *time.Time:
		if v != nil {
			t0 = *v
		}
	}
	if t0.IsZero() {
		return ""
	}
	// #nosec G203 - built from escaped, formatted timestamps only
	return template.HTML(fmt.Sprintf(
		"<time datetime=\"%s\">%s</time>",
		t0.UTC().Format(time.RFC3339),
		template.HTMLEscapeString(t0.Local().Format("Jan 2, 2006 3:04 PM")),
	))
}

// TruncateText truncates a string to a maximum number of runes, adding an ellipsis.
func TruncateText(s string, maxLen int) string {
	if maxLen <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen > 1 {
		return string(runes[:maxLen-1]) + "…"
	}
	return string(runes[:1])
}
