package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmy/realworld-tui/internal/api"
	"github.com/dmy/realworld-tui/models"
)

// formatDate renders a server timestamp in the viewer's time zone. A nil
// zone means the zone lookup has not completed yet; UTC is shown until it
// does.
func formatDate(t time.Time, zone *time.Location) string {
	if zone != nil {
		t = t.In(zone)
	}
	return t.Format("January 2, 2006")
}

// renderErrors renders the accumulated error banner. The list survives
// until the user dismisses it.
func renderErrors(errs api.Errors) string {
	if len(errs) == 0 {
		return ""
	}
	var b strings.Builder
	for _, e := range errs {
		b.WriteString(errorStyle.Render("! "+e) + "\n")
	}
	b.WriteString(helpStyle.Render("ctrl+x dismiss errors") + "\n")
	return b.String()
}

func renderPreview(a models.Article, zone *time.Location, selected bool) string {
	marker := "  "
	title := titleStyle.Render(a.Title)
	if selected {
		marker = selectedStyle.Render("> ")
		title = selectedStyle.Render(a.Title)
	}

	heart := "♡"
	if a.Favorited {
		heart = "♥"
	}
	meta := metaStyle.Render(fmt.Sprintf("%s · %s · %s %d",
		a.Author.Username, formatDate(a.CreatedAt, zone), heart, a.FavoritesCount))

	lines := marker + title + "\n  " + meta + "\n  " + a.Description
	if len(a.TagList) > 0 {
		lines += "\n  " + tagStyle.Render(strings.Join(a.TagList, " · "))
	}
	return lines + "\n"
}

// renderPagination renders a one-line pager like "page 2 of 7". A single
// page renders nothing.
func renderPagination(page, total int) string {
	if total <= 1 {
		return ""
	}
	return metaStyle.Render(fmt.Sprintf("page %d of %d  [ prev  ] next", page, total)) + "\n"
}

func renderTabs(labels []string, active int) string {
	parts := make([]string, len(labels))
	for i, label := range labels {
		if i == active {
			parts[i] = activeTab.Render(label)
		} else {
			parts[i] = tabStyle.Render(label)
		}
	}
	return strings.Join(parts, "   ")
}

func renderLoading(label string) string {
	return metaStyle.Render("loading " + label + "...")
}

func renderLoadFailure(label string) string {
	return errorStyle.Render("failed to load " + label)
}
