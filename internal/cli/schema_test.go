package cli_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphite-design/themegen/internal/cli"
)

func TestSchemaCmd(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		document string
		contains string
	}{
		"tokens": {
			document: "tokens",
			contains: "colors",
		},
		"themes": {
			document: "themes",
			contains: "themes",
		},
		"metadata": {
			document: "metadata",
			contains: "tokens",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cmd := cli.NewRootCmd("test_schema", "", "")
			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}

			cmd.SetArgs([]string{"schema", tc.document})
			cmd.SetOut(stdout)
			cmd.SetErr(stderr)

			err := cmd.Execute()
			require.NoError(t, err)
			assert.Empty(t, stderr.String())

			schema := map[string]any{}
			err = json.Unmarshal(stdout.Bytes(), &schema)
			require.NoError(t, err)

			props, ok := schema["properties"].(map[string]any)
			require.True(t, ok, "schema should have properties")
			assert.Contains(t, props, tc.contains)
		})
	}
}

func TestSchemaCmd_UnknownDocument(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCmd("test_schema", "", "")
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	cmd.SetArgs([]string{"schema", "nope"})
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	require.Error(t, err)
}
