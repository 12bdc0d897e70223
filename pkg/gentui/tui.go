package gentui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/hashicorp/go-multierror"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	currentNameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("211"))
	doneStyle        = lipgloss.NewStyle().Margin(1, 2)
	errStyle         = lipgloss.NewStyle().Margin(1, 2)
	progressStyle    = lipgloss.NewStyle().Margin(1, 2)
	spinnerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	checkMark        = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).SetString("✓")
	errorMark        = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).SetString("✗")
)

type (
	// Sent to write a log message.
	teaMsgWriteLog string
)

func teaQuit() tea.Cmd {
	return tea.Sequence(
		tea.Tick(time.Millisecond*500, func(_ time.Time) tea.Msg {
			return nil
		}),
		tea.Quit,
	)
}

// finalPause allows previously sent messages to be rendered before quitting.
func finalPause() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(_ time.Time) tea.Msg {
		return nil
	})
}

func keyExits(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "ctrl+c", "esc", "q":
		return true
	}

	return false
}

func writeLog(msg teaMsgWriteLog, width int) tea.Cmd {
	logMsg := string(msg)
	logMsg = strings.Trim(logMsg, "\r\n")
	logMsg = lipgloss.NewStyle().Width(max(0, width-2)).Render(logMsg)

	return tea.Println(logMsg)
}

func getErrorMessage(err error, width int, totalArtifacts ...int) string {
	var merr *multierror.Error
	if !errors.As(err, &merr) || len(merr.Errors) <= 1 {
		errMsg := fmt.Sprintf("%v", err)
		errMsg = strings.Trim(errMsg, "\r\n")

		return errStyle.Width(max(0, width-2)).Render(errMsg + "\n")
	}

	maxWidth := max(0, width-2)
	lines := make([]string, 0, len(merr.Errors)+1)

	for _, e := range merr.Errors {
		line := fmt.Sprintf("%s %s", errorMark, e)
		line = lipgloss.NewStyle().MaxWidth(maxWidth).Render(line)
		lines = append(lines, line)
	}

	failedCount := len(merr.Errors)
	total := failedCount
	if len(totalArtifacts) > 0 && totalArtifacts[0] > 0 {
		total = totalArtifacts[0]
	}

	summary := fmt.Sprintf("%d of %d artifacts failed", failedCount, total)
	lines = append(lines, summary)

	return errStyle.Render(strings.Join(lines, "\n") + "\n")
}
