package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/gubarz/lessonmd/internal/config"
)

// Styles holds every lipgloss style used to draw lessons and the browser chrome
type Styles struct {
	// Lesson text
	H1   lipgloss.Style
	H2   lipgloss.Style
	H3   lipgloss.Style
	Body lipgloss.Style
	Bold lipgloss.Style
	Code lipgloss.Style

	ListMarker  lipgloss.Style
	TableHeader lipgloss.Style
	TableCell   lipgloss.Style
	TableRule   lipgloss.Style

	// Lesson chrome
	Title          lipgloss.Style
	SectionHeading lipgloss.Style
	CodeBox        lipgloss.Style
	CodeBoxFocused lipgloss.Style
	CodeLabel      lipgloss.Style
	Copy           lipgloss.Style
	Copied         lipgloss.Style
	CopyFailed     lipgloss.Style

	// Browser chrome
	Accent   lipgloss.Style
	Selected lipgloss.Style
	Cursor   lipgloss.Style
	Dim      lipgloss.Style
	Border   lipgloss.Style
	Divider  lipgloss.Style

	// Colors for direct access
	AccentColor lipgloss.Color
	BorderColor lipgloss.Color
}

// DefaultStyles returns styles with the built-in palette
func DefaultStyles() *Styles {
	s := &Styles{}
	s.apply(palette{
		accent:   lipgloss.Color("#F7DF1E"),
		heading:  lipgloss.Color("#61DAFB"),
		code:     lipgloss.Color("#E06C75"),
		dim:      lipgloss.Color("241"),
		border:   lipgloss.Color("238"),
		selected: lipgloss.Color("#F7DF1E"),
	})
	return s
}

// LoadFromConfig rebuilds the styles from the configured colors
func (s *Styles) LoadFromConfig() {
	s.apply(palette{
		accent:   parseColor(config.GetColorAccent()),
		heading:  parseColor(config.GetColorHeading()),
		code:     parseColor(config.GetColorCode()),
		dim:      parseColor(config.GetColorDim()),
		border:   parseColor(config.GetColorBorder()),
		selected: parseColor(config.GetColorSelected()),
	})
}

type palette struct {
	accent, heading, code, dim, border, selected lipgloss.Color
}

func (s *Styles) apply(p palette) {
	s.H1 = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(p.heading)
	s.H2 = lipgloss.NewStyle().Bold(true).Foreground(p.heading)
	s.H3 = lipgloss.NewStyle().Bold(true)
	s.Body = lipgloss.NewStyle()
	s.Bold = lipgloss.NewStyle().Bold(true)
	s.Code = lipgloss.NewStyle().Foreground(p.code)

	s.ListMarker = lipgloss.NewStyle().Foreground(p.accent)
	s.TableHeader = lipgloss.NewStyle().Bold(true)
	s.TableCell = lipgloss.NewStyle()
	s.TableRule = lipgloss.NewStyle().Foreground(p.border)

	s.Title = lipgloss.NewStyle().Bold(true).Foreground(p.accent)
	s.SectionHeading = lipgloss.NewStyle().Bold(true).Foreground(p.heading)
	s.CodeBox = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.border).Padding(0, 1)
	s.CodeBoxFocused = s.CodeBox.BorderForeground(p.accent)
	s.CodeLabel = lipgloss.NewStyle().Foreground(p.dim)
	s.Copy = lipgloss.NewStyle().Foreground(p.dim)
	s.Copied = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	s.CopyFailed = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))

	s.Accent = lipgloss.NewStyle().Foreground(p.accent)
	s.Selected = lipgloss.NewStyle().Bold(true).Foreground(p.selected)
	s.Cursor = lipgloss.NewStyle().Foreground(p.selected)
	s.Dim = lipgloss.NewStyle().Foreground(p.dim)
	s.Border = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.border)
	s.Divider = lipgloss.NewStyle().Foreground(p.border)

	s.AccentColor = p.accent
	s.BorderColor = p.border
}

// parseColor accepts lipgloss colors (hex or 0-255) and maps the classic
// ANSI SGR codes 30-37 and 90-97 to their palette index
func parseColor(code string) lipgloss.Color {
	ansiToLipgloss := map[string]string{
		"30": "0", "31": "1", "32": "2", "33": "3",
		"34": "4", "35": "5", "36": "6", "37": "7",
		"90": "8", "91": "9", "92": "10", "93": "11",
		"94": "12", "95": "13", "96": "14", "97": "15",
	}
	if mapped, ok := ansiToLipgloss[code]; ok {
		return lipgloss.Color(mapped)
	}
	return lipgloss.Color(code)
}
