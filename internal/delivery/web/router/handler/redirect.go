package handler

import (
	"net/url"
	"strings"
)

const (
	dashboardPath = "/dashboard"
	settingsPath  = "/dashboard/settings"
	mfaPath       = "/signin/mfa"
)

// safeRedirect accepts same-origin relative paths only and falls back to the dashboard.
func safeRedirect(target string) string {
	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return dashboardPath
	}

	parsed, err := url.Parse(target)
	if err != nil || parsed.IsAbs() || parsed.Host != "" {
		return dashboardPath
	}

	return target
}

// withQuery appends the non-empty values to path.
func withQuery(path string, pairs ...string) string {
	values := url.Values{}
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] != "" {
			values.Set(pairs[i], pairs[i+1])
		}
	}

	if len(values) == 0 {
		return path
	}

	return path + "?" + values.Encode()
}

func isChecked(value string) bool {
	switch strings.ToLower(value) {
	case "on", "true", "1", "yes":
		return true
	default:
		return false
	}
}
