package gentui_test

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/require"

	"github.com/graphite-design/themegen/pkg/gencmd"
	"github.com/graphite-design/themegen/pkg/gentui"
)

func TestGenerateModel_OneSuccess(t *testing.T) {
	t.Parallel()

	m := gentui.NewGenerateModel()
	tm := teatest.NewTestModel(
		t, m,
		teatest.WithInitialTermSize(300, 100),
	)
	time.Sleep(100 * time.Millisecond)

	tm.Send(gencmd.EventSetArtifactTotal(1))
	tm.Send(gencmd.EventWritingArtifact("theme-maps"))
	teatest.WaitFor(
		t, tm.Output(),
		func(bts []byte) bool {
			return bytes.Contains(bts, []byte("theme-maps")) &&
				bytes.Contains(bts, []byte("░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░ 0/1"))
		},
	)

	tm.Send(gencmd.EventWroteArtifact{Artifact: "theme-maps"})
	teatest.WaitFor(
		t, tm.Output(),
		func(bts []byte) bool {
			return bytes.Contains(bts, []byte("✓ theme-maps"))
		},
	)

	tm.Send(gencmd.EventDone{})

	out, err := io.ReadAll(tm.FinalOutput(t, teatest.WithFinalTimeout(10*time.Second)))
	require.NoError(t, err)
	require.Contains(t, string(out), "Done! Wrote 1 artifacts.")
}

func TestGenerateModel_OneError(t *testing.T) {
	t.Parallel()

	m := gentui.NewGenerateModel()
	tm := teatest.NewTestModel(
		t, m,
		teatest.WithInitialTermSize(300, 100),
	)
	time.Sleep(100 * time.Millisecond)

	tm.Send(gencmd.EventSetArtifactTotal(1))
	tm.Send(gencmd.EventWritingArtifact("theme-tokens"))
	teatest.WaitFor(
		t, tm.Output(),
		func(bts []byte) bool {
			return bytes.Contains(bts, []byte("theme-tokens")) &&
				bytes.Contains(bts, []byte("░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░ 0/1"))
		},
	)

	tm.Send(gencmd.EventWroteArtifact{Artifact: "theme-tokens", Err: errors.New("test error")})
	teatest.WaitFor(
		t, tm.Output(),
		func(bts []byte) bool {
			return bytes.Contains(bts, []byte("✗ theme-tokens"))
		},
	)

	tm.Send(gencmd.EventDone{Err: errors.New("test error")})

	out, err := io.ReadAll(tm.FinalOutput(t, teatest.WithFinalTimeout(10*time.Second)))
	require.NoError(t, err)
	require.Contains(t, string(out), "test error")
}

func TestGenerateModel_MultipleSuccess(t *testing.T) {
	t.Parallel()

	m := gentui.NewGenerateModel()
	tm := teatest.NewTestModel(
		t, m,
		teatest.WithInitialTermSize(300, 100),
	)
	time.Sleep(100 * time.Millisecond)

	tm.Send(gencmd.EventSetArtifactTotal(3))

	tm.Send(gencmd.EventWritingArtifact("theme-maps"))
	teatest.WaitFor(
		t, tm.Output(),
		func(bts []byte) bool {
			return bytes.Contains(bts, []byte("theme-maps")) &&
				bytes.Contains(bts, []byte("░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░ 0/3"))
		},
	)

	tm.Send(gencmd.EventWritingArtifact("theme-tokens"))
	teatest.WaitFor(
		t, tm.Output(),
		func(bts []byte) bool {
			return bytes.Contains(bts, []byte("theme-tokens"))
		},
	)

	tm.Send(gencmd.EventWroteArtifact{Artifact: "theme-maps"})
	teatest.WaitFor(
		t, tm.Output(),
		func(bts []byte) bool {
			return bytes.Contains(bts, []byte("✓ theme-maps"))
		},
	)

	tm.Send(gencmd.EventWritingArtifact("theme-mixins"))
	tm.Send(gencmd.EventWroteArtifact{Artifact: "theme-tokens"})
	tm.Send(gencmd.EventWroteArtifact{Artifact: "theme-mixins"})
	teatest.WaitFor(
		t, tm.Output(),
		func(bts []byte) bool {
			return bytes.Contains(bts, []byte("✓ theme-mixins"))
		},
	)

	tm.Send(gencmd.EventDone{})

	out, err := io.ReadAll(tm.FinalOutput(t, teatest.WithFinalTimeout(10*time.Second)))
	require.NoError(t, err)
	require.Contains(t, string(out), "Done! Wrote 3 artifacts.")
}
