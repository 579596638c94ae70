package tui

import (
	"strings"
)

const uiDivider = "──────────────────────────────────────────────────────"

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}

// renderOptions lists keyboard options with the one tab selects next
// underlined.
func renderOptions(options []string, next int) string {
	if len(options) == 0 {
		return ""
	}

	parts := make([]string, len(options))
	for i, option := range options {
		if i == next {
			parts[i] = optionStyle.Render(option)
		} else {
			parts[i] = option
		}
	}
	return helpStyle.Render("options (tab): ") + strings.Join(parts, " | ")
}
