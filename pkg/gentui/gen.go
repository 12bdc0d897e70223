package gentui

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/graphite-design/themegen/pkg/gencmd"
	"github.com/graphite-design/themegen/pkg/log"
)

// Commander is the subset of [gencmd.Generator] driven by the TUI.
type Commander interface {
	Generate(ctx context.Context) error
	Subscribe(f func(any))
}

// GenTUI wraps a [Commander] and renders its events. While a program is
// running, log output is routed into the TUI via [GenTUI.Write] so slog lines
// appear above the progress display.
type GenTUI struct {
	gen Commander
	p   *tea.Program
	w   io.Writer
}

func New(w io.Writer, logLevel string, gen Commander) (*GenTUI, error) {
	c := &GenTUI{
		gen: gen,
		w:   w,
	}

	c.gen.Subscribe(c.broadcastEvent)

	h, err := log.CreateHandler(c, logLevel, log.FormatText)
	if err != nil {
		return nil, fmt.Errorf("failed to create log handler: %w", err)
	}

	slog.SetDefault(slog.New(h))

	return c, nil
}

func (c *GenTUI) broadcastEvent(evt any) {
	if c.p != nil {
		c.p.Send(evt)
	}
}

func (c *GenTUI) Write(p []byte) (int, error) {
	c.broadcastEvent(teaMsgWriteLog(string(p)))

	return len(p), nil
}

// Generate runs the wrapped generation with a progress display. Generation
// errors are rendered by the TUI; the returned error covers TUI launch
// failures.
func (c *GenTUI) Generate(ctx context.Context) error {
	c.p = tea.NewProgram(NewGenerateModel(), tea.WithOutput(c.w))

	go func() {
		err := c.gen.Generate(ctx)
		c.broadcastEvent(gencmd.EventDone{Err: err})
	}()

	if _, err := c.p.Run(); err != nil {
		return fmt.Errorf("failed to launch tui: %w", err)
	}

	return nil
}
