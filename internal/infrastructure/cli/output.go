package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/Laman1911/AS-Calculation/pkg/domain"
	"github.com/Laman1911/AS-Calculation/pkg/domain/calendar"
)

const actor = "cli"

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// renderTable renders a static bubbles table.
func renderTable(columns []table.Column, rows []table.Row) string {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+2), // header plus its border line
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Bold(true)
	s.Selected = lipgloss.NewStyle() // static view
	t.SetStyles(s)
	return t.View()
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// parseID parses a positional id argument. Anything that is not a positive
// integer is rejected with the usual "<Kind> ID must be valid" message.
func parseID(kind, arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil {
		return 0, domain.InvalidArgument(kind + " ID must be valid")
	}
	if err := domain.ValidateID(kind, id); err != nil {
		return 0, err
	}
	return id, nil
}

func parseDateFlag(name, value string) (*time.Time, error) {
	t, err := calendar.ParseOptional(value)
	if err != nil {
		return nil, domain.InvalidArgument(fmt.Sprintf("Invalid --%s: %v", name, err))
	}
	return t, nil
}

func hours(h *int) string {
	if h == nil {
		return "-"
	}
	return strconv.Itoa(*h)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
