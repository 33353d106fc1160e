package api

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// safeReturnPaths are the only destinations a return_to candidate may resolve
// to: the index page of each entry kind, the timeline, and the day view root.
// Record-scoped pages (detail, edit, new) are never safe to return to after a
// write completes.
var safeReturnPaths = map[string]struct{}{
	"/":                {},
	"/food_entries":    {},
	"/bowel_movements": {},
	"/gi_symptoms":     {},
	"/accidents":       {},
	"/miralax_caps":    {},
	"/timeline":        {},
}

var trailingDigitsPattern = regexp.MustCompile(`\d+$`)

// sanitizeReturnTo validates a caller-supplied redirect candidate. It returns
// ok=false when the candidate is empty, cannot be parsed, carries a numeric
// id suffix, targets an edit or new form, or is not one of the allow-listed
// index paths. Full URLs are reduced to their path, which strips any foreign
// host. A bare path keeps its query string so filters like ?date= survive the
// redirect.
func sanitizeReturnTo(raw string) (string, bool) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return "", false
	}

	var path, query string
	isFullURL := strings.Contains(candidate, "://")
	if isFullURL {
		parsed, err := url.Parse(candidate)
		if err != nil {
			return "", false
		}
		path = parsed.Path
	} else {
		path, query, _ = strings.Cut(candidate, "?")
	}

	normalized := strings.TrimSuffix(path, "/")
	if normalized == "" {
		normalized = "/"
	}

	if trailingDigitsPattern.MatchString(normalized) ||
		strings.Contains(normalized, "/edit") ||
		strings.Contains(normalized, "/new") {
		return "", false
	}

	if _, ok := safeReturnPaths[normalized]; !ok {
		return "", false
	}

	if isFullURL {
		return normalized, true
	}
	if query != "" {
		return path + "?" + query, true
	}
	return normalized, true
}

// resolveReturnTo picks the post-action destination: the explicit return_to
// form or query value, the referrer as a fallback, and the resource default
// when neither survives sanitizing.
func (handler *Handler) resolveReturnTo(c *fiber.Ctx, fallback string) string {
	candidate := c.FormValue("return_to")
	if candidate == "" {
		candidate = c.Query("return_to")
	}
	if candidate == "" {
		candidate = c.Get(fiber.HeaderReferer)
	}
	if sanitized, ok := sanitizeReturnTo(candidate); ok {
		return sanitized
	}
	return fallback
}
