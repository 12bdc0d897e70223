package cli

import (
	"fmt"
	"reflect"

	"github.com/spf13/cobra"

	"github.com/graphite-design/themegen/pkg/jsonschema"
	"github.com/graphite-design/themegen/pkg/tokens"
)

const schemaExample = `  themegen schema <document>
  # Print the JSON Schema for the token list document
  themegen schema tokens

  # Print the JSON Schema for the themes document
  themegen schema themes

  # Print the JSON Schema for the token metadata document
  themegen schema metadata
`

// NewSchemaCmd returns the schema command.
func NewSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "schema",
		Short:     "Print the JSON Schema for an input document",
		Example:   schemaExample,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"tokens", "themes", "metadata"},
		RunE: func(cc *cobra.Command, args []string) error {
			var t reflect.Type

			switch args[0] {
			case "tokens":
				t = reflect.TypeOf(tokens.List{})
			case "themes":
				t = reflect.TypeOf(tokens.ThemesDocument{})
			case "metadata":
				t = reflect.TypeOf(tokens.Metadata{})
			default:
				return fmt.Errorf("%w: unknown document %q", ErrInvalidArgument, args[0])
			}

			r := jsonschema.NewReflector()
			if err := jsonschema.WriteSchema(r.Reflect(t), cc.OutOrStdout()); err != nil {
				return fmt.Errorf("failed to write schema: %w", err)
			}

			return nil
		},
		SilenceUsage: true,
	}
}
