package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/cases"

	"github.com/gubarz/lessonmd/internal/catalog"
)

// maxResults caps the search list to keep rendering cheap
const maxResults = 200

// lessonItem wraps a lesson with its pre-folded search text
type lessonItem struct {
	lesson catalog.Lesson
	search string
}

func newLessonItem(l catalog.Lesson) lessonItem {
	text := strings.Join([]string{
		l.Topic.Title, l.Topic.ID,
		l.Module.Title, l.Module.ID,
		l.SubModule.Title, l.SubModule.ID,
	}, " ")
	return lessonItem{lesson: l, search: fold(text)}
}

// title renders "Topic › Module › Lesson"
func (item lessonItem) title() string {
	return item.lesson.Topic.Title + " › " + item.lesson.Module.Title + " › " + item.lesson.SubModule.Title
}

// matchesQuery checks that the item contains every folded query word
func (item lessonItem) matchesQuery(words []string) bool {
	for _, word := range words {
		if !strings.Contains(item.search, word) {
			return false
		}
	}
	return true
}

// fold case-folds s for caseless matching
func fold(s string) string {
	return cases.Fold().String(s)
}

// filterLessons returns the items matching every word of query
func filterLessons(items []lessonItem, query string) []lessonItem {
	words := strings.Fields(fold(strings.TrimSpace(query)))
	if len(words) == 0 {
		return items[:min(len(items), maxResults)]
	}
	out := make([]lessonItem, 0, min(len(items), maxResults))
	for _, item := range items {
		if item.matchesQuery(words) {
			out = append(out, item)
			if len(out) >= maxResults {
				break
			}
		}
	}
	return out
}

// ============================================================================
// Debounce
// ============================================================================

// filterMsg triggers filtering after debounce
type filterMsg struct{}

// debounceFilter returns a command that triggers filtering after a delay
func debounceFilter() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(time.Time) tea.Msg {
		return filterMsg{}
	})
}
