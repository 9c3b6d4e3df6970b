package utils

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func inlineCodeStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color("236")).
		Padding(0, 1)
}

func boldStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true)
}

func italicStyle() lipgloss.Style {
	return lipgloss.NewStyle().Italic(true)
}

func listStyle() lipgloss.Style {
	return lipgloss.NewStyle().MarginLeft(2)
}

var (
	inlineCodeRe = regexp.MustCompile("`[^`]+`")
	boldRe       = regexp.MustCompile(`\*\*[^*]+\*\*`)
	italicRe     = regexp.MustCompile(`_[^_]+_`)
	orderedRe    = regexp.MustCompile(`^(\d+)\.\s+(.*)`)
)

// RenderInline styles the lightweight markup assistant replies may carry:
// inline code, bold, italics, and simple lists. Anything else passes
// through untouched.
func RenderInline(text string) string {
	lines := strings.Split(text, "\n")
	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		if item, found := strings.CutPrefix(line, "- "); found {
			b.WriteString(listStyle().Render("• " + styleInline(item)))
			continue
		}
		if m := orderedRe.FindStringSubmatch(line); len(m) == 3 {
			b.WriteString(listStyle().Render(m[1] + ". " + styleInline(m[2])))
			continue
		}
		b.WriteString(styleInline(line))
	}
	return b.String()
}

func styleInline(line string) string {
	line = inlineCodeRe.ReplaceAllStringFunc(line, func(match string) string {
		return inlineCodeStyle().Render(strings.Trim(match, "`"))
	})
	line = boldRe.ReplaceAllStringFunc(line, func(match string) string {
		return boldStyle().Render(strings.Trim(match, "*"))
	})
	line = italicRe.ReplaceAllStringFunc(line, func(match string) string {
		return italicStyle().Render(strings.Trim(match, "_"))
	})
	return line
}
