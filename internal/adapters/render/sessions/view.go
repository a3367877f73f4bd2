package sessions

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kintelligence/strawberry-cookie-tools/internal/domain"
)

type RenderOptions struct {
	// PathFor, when set, prints the backing file of each record.
	PathFor func(domain.SessionID) string
	// Unreadable counts session files that were skipped while listing.
	Unreadable int
}

// Render lays out session records for a terminal.
func Render(records []domain.SessionRecord, opts RenderOptions) string {
	return renderView(records, opts, newStyles())
}

func renderView(records []domain.SessionRecord, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Strawberry Cookie Tools sessions"),
		s.header.Render(fmt.Sprintf("sessions: %d", len(records))),
	}
	if opts.Unreadable > 0 {
		lines = append(lines, s.warning.Render(fmt.Sprintf("unreadable session files: %d", opts.Unreadable)))
	}

	if len(records) == 0 {
		lines = append(lines, s.empty.Render("No active sessions."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, record := range records {
		lines = append(lines, s.section.Render(renderRecord(record, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderRecord(record domain.SessionRecord, opts RenderOptions, s styles) string {
	parts := []string{
		s.character.Render(characterTitle(record)),
		s.detail.Render(detailLine(record)),
	}

	if opts.PathFor != nil {
		parts = append(parts, s.path.Render(opts.PathFor(record.ContentId)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func characterTitle(record domain.SessionRecord) string {
	name := valueOr(record.CharacterName, "unknown character")
	if record.WorldName != nil && *record.WorldName != "" {
		name += " @ " + *record.WorldName
	}

	return fmt.Sprintf("%s (%s)", name, record.ContentId)
}

func detailLine(record domain.SessionRecord) string {
	parts := make([]string, 0, 3)
	if job := valueOr(record.ClassJobAbbreviation, ""); job != "" {
		parts = append(parts, job)
	}
	if record.Level > 0 {
		parts = append(parts, fmt.Sprintf("lv%d", record.Level))
	}
	parts = append(parts, fmt.Sprintf("pid %d", record.Pid))

	return strings.Join(parts, " · ")
}

func valueOr(value *string, fallback string) string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return fallback
	}

	return *value
}
