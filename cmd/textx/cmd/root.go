package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/pkg/core/logging"
)

// app carries the state shared by all subcommands of one invocation
type app struct {
	cfgFile string
	verbose bool

	settings  Settings
	logger    *mdwlog.Logger
	requestID string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "textx",
		Short: "textx - text normalization toolkit",
		Long: `textx rewrites the case of text line by line and formats numbers,
tokens and date stamps.

Text is taken from the arguments or, without arguments, from stdin.

Settings are read from --config, ./textx.toml or the user config
directory (textx/textx.toml, .yaml or .yml). Every key can be overridden
with an environment variable, e.g. TEXTX_FORMAT_PRECISION=3.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./textx.toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(
		newCaseCmd(a),
		newDecimalsCmd(a),
		newPadCmd(a),
		newTokenCmd(a),
		newStampCmd(a),
		newEncodeCmd(a),
		newDecodeCmd(a),
		newLengthCmd(a),
		newVersionCmd(a),
	)
	return root
}

// Execute runs the textx command tree
func Execute() error {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		printError(root.ErrOrStderr(), err)
		return err
	}
	return nil
}

// setup loads the configuration and creates the invocation logger
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(a.cfgFile)
	if err != nil {
		return err
	}

	base, problems := logging.NewLogger(logging.LoggerConfig{
		Name:    "textx",
		Level:   cfg.GetString(keyLogLevel),
		Format:  cfg.GetString(keyLogFormat),
		Verbose: a.verbose,
		Output:  cmd.ErrOrStderr(),
	})
	a.logger, a.requestID = logging.ForCommand(base, cmd.Name())
	for _, p := range problems {
		a.logger.Warn("log setting ignored", mdwlog.String("reason", p))
	}

	a.settings = resolveSettings(cfg, a.logger)
	a.logger.Debug("settings resolved", mdwlog.Fields{
		"config":      cfg.FilePath(),
		"precision":   a.settings.Precision,
		"pad_width":   a.settings.PadWidth,
		"granularity": a.settings.Granularity.String(),
		"case_policy": a.settings.CasePolicy.String(),
		"charset":     a.settings.Charset,
	})
	return nil
}

// run wraps a command body with a timer that logs its duration or failure
func (a *app) run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		timer := a.logger.StartTimer(cmd.Name())
		if err := fn(cmd, args); err != nil {
			timer.StopWithError(err)
			return err
		}
		timer.Stop()
		return nil
	}
}

func printError(w io.Writer, err error) {
	fmt.Fprintln(w, errorStyle.Render("Error: "+err.Error()))
}
