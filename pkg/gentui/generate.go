package gentui

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/graphite-design/themegen/pkg/gencmd"
)

// GenerateModel displays per-artifact progress for a generation run.
type GenerateModel struct {
	err                error
	verb               string
	startedArtifacts   []string
	completedArtifacts []string
	erroredArtifacts   []string
	spinner            spinner.Model
	progress           progress.Model
	totalArtifacts     int
	width              int
	height             int
	mu                 sync.RWMutex
	done               bool
}

func NewGenerateModel() *GenerateModel {
	p := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	s := spinner.New()
	s.Style = spinnerStyle

	caser := cases.Title(language.English)

	return &GenerateModel{
		verb:               caser.String("writing"),
		startedArtifacts:   []string{},
		completedArtifacts: []string{},
		erroredArtifacts:   []string{},
		spinner:            s,
		progress:           p,
		mu:                 sync.RWMutex{},
	}
}

func (m *GenerateModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.progress.SetPercent(0))
}

//nolint:ireturn // Third-party.
func (m *GenerateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case tea.KeyMsg:
		if keyExits(msg) {
			return m, tea.Quit
		}

	case teaMsgWriteLog:
		return m, writeLog(msg, m.width)

	case gencmd.EventSetArtifactTotal:
		m.mu.Lock()
		defer m.mu.Unlock()

		m.totalArtifacts = int(msg)

	case gencmd.EventWritingArtifact:
		m.mu.Lock()
		defer m.mu.Unlock()

		m.startedArtifacts = append(m.startedArtifacts, string(msg))

	case gencmd.EventWroteArtifact:
		m.mu.Lock()
		defer m.mu.Unlock()

		icon := checkMark
		if msg.Err != nil {
			m.erroredArtifacts = append(m.erroredArtifacts, msg.Artifact)
			icon = errorMark
		}

		m.completedArtifacts = append(m.completedArtifacts, msg.Artifact)
		completedCount := len(m.completedArtifacts)
		progressCmd := m.progress.SetPercent(float64(completedCount) / float64(m.totalArtifacts))

		return m, tea.Batch(
			progressCmd,
			tea.Printf("%s %s", icon, msg.Artifact),
		)

	case gencmd.EventDone:
		m.mu.Lock()
		defer m.mu.Unlock()

		m.err = msg.Err
		m.done = true

		return m, tea.Sequence(finalPause(), teaQuit())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case progress.FrameMsg:
		newModel, cmd := m.progress.Update(msg)
		if newModel, ok := newModel.(progress.Model); ok {
			m.progress = newModel
		}

		return m, cmd

	case error:
		m.mu.Lock()
		defer m.mu.Unlock()

		m.err = msg

		return m, tea.Sequence(finalPause(), tea.Quit)
	}

	return m, nil
}

func (m *GenerateModel) View() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.err != nil {
		return getErrorMessage(m.err, m.width, m.totalArtifacts)
	}

	completedCount := len(m.completedArtifacts)

	if m.done {
		return doneStyle.Render(fmt.Sprintf("Done! Wrote %d artifacts.\n", completedCount))
	}

	w := lipgloss.Width(strconv.Itoa(m.totalArtifacts))
	artifactCount := fmt.Sprintf(" %*d/%*d", w, completedCount, w, m.totalArtifacts)

	prog := m.progress.View()
	progRendered := progressStyle.Render(prog + artifactCount)
	progCellsRemaining := max(0, m.width-lipgloss.Width(progRendered))
	gap := strings.Repeat(" ", progCellsRemaining)
	progOut := progRendered + gap + "\n"

	inProgress := differenceStringSlices(m.startedArtifacts, m.completedArtifacts)

	spinners := []string{}
	for _, name := range inProgress {
		spin := m.spinner.View() + " "
		cellsAvail := max(0, m.width-lipgloss.Width(spin))

		artifactName := currentNameStyle.Render(name)
		info := lipgloss.NewStyle().MaxWidth(cellsAvail).Render(m.verb + " " + artifactName)

		cellsRemaining := max(0, m.width-lipgloss.Width(spin+info))
		gap := strings.Repeat(" ", cellsRemaining)

		spinners = append(spinners, spin+info+gap)
	}

	return strings.Join(spinners, "\n") + "\n" + progOut
}

func differenceStringSlices(a, b []string) []string {
	difference := []string{}

	for _, x := range a {
		if !slices.Contains(b, x) {
			difference = append(difference, x)
		}
	}

	return difference
}
