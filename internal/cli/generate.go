package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/graphite-design/themegen/pkg/gencmd"
	"github.com/graphite-design/themegen/pkg/gentui"
)

const (
	generateDesc = `This command generates the theme Sass artifacts
`
	generateExample = `  themegen generate [arguments]...
  # Generate artifacts from the default input files
  themegen generate

  # Generate artifacts into a custom directory
  themegen generate --output scss/vendor

  # Generate artifacts with the g100 theme as the default
  themegen generate --default_theme g100
`
)

var ErrInvalidArgument = errors.New("invalid argument")

// NewGenerateCmd returns the generate command.
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		Short:   "Generate theme Sass artifacts",
		Long:    generateDesc,
		Example: generateExample,
		RunE: func(cc *cobra.Command, _ []string) error {
			var merr error

			flags := cc.Flags()
			tokensPath, err := flags.GetString("tokens")
			if err != nil {
				merr = multierror.Append(merr, err)
			}
			themesPath, err := flags.GetString("themes")
			if err != nil {
				merr = multierror.Append(merr, err)
			}
			metadataPath, err := flags.GetString("metadata")
			if err != nil {
				merr = multierror.Append(merr, err)
			}
			outputPath, err := flags.GetString("output")
			if err != nil {
				merr = multierror.Append(merr, err)
			}
			defaultTheme, err := flags.GetString("default_theme")
			if err != nil {
				merr = multierror.Append(merr, err)
			}
			timeout, err := flags.GetDuration("timeout")
			if err != nil {
				merr = multierror.Append(merr, err)
			}
			logLevel, err := flags.GetString("log_level")
			if err != nil {
				merr = multierror.Append(merr, err)
			}
			quiet, err := flags.GetBool("quiet")
			if err != nil {
				merr = multierror.Append(merr, err)
			}

			if merr != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, merr)
			}

			c := gencmd.New(
				gencmd.WithInputPaths(tokensPath, themesPath, metadataPath),
				gencmd.WithOutputPath(outputPath),
				gencmd.WithDefaultTheme(defaultTheme),
				gencmd.WithTimeout(timeout),
			)

			if quiet || !isatty.IsTerminal(os.Stdout.Fd()) {
				if err := c.Generate(cc.Context()); err != nil {
					return fmt.Errorf("generate failed: %w", err)
				}

				return nil
			}

			ct, err := gentui.New(os.Stdout, logLevel, c)
			if err != nil {
				return fmt.Errorf("failed to create tui: %w", err)
			}

			return ct.Generate(cc.Context())
		},
		SilenceUsage: true,
	}

	cmd.Flags().String("tokens", "tokens.yaml", "Path to the token list file")
	cmd.Flags().String("themes", "themes.yaml", "Path to the themes file")
	cmd.Flags().String("metadata", "metadata.yaml", "Path to the token metadata file")
	cmd.Flags().StringP("output", "o", "scss/generated", "Output directory for generated artifacts")
	cmd.Flags().String("default_theme", "", "Override the default theme")
	cmd.Flags().Duration("timeout", 1*time.Minute, "Timeout for the command")
	cmd.Flags().BoolP("quiet", "q", false, "Run in quiet mode")

	if err := cmd.MarkFlagDirname("output"); err != nil {
		panic(err)
	}

	return cmd
}
