package commhealth

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/commhealth/internal/version"
	"github.com/arthur-debert/commhealth/pkg/config"
	"github.com/arthur-debert/commhealth/pkg/errors"
	"github.com/arthur-debert/commhealth/pkg/generate"
	"github.com/arthur-debert/commhealth/pkg/logging"
	"github.com/arthur-debert/commhealth/pkg/prompt"
	"github.com/arthur-debert/commhealth/pkg/ui"
	"github.com/arthur-debert/commhealth/pkg/ui/summary"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var (
		verbosity int
		dryRun    bool
		format    string
		root      string
	)

	rootCmd := &cobra.Command{
		Use:     "commhealth",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().StringVar(&format, "format", "auto", MsgFlagFormat)
	rootCmd.PersistentFlags().StringVar(&root, "root", "", MsgFlagRoot)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "init",
		Aliases: []string{"generate"},
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		Example: MsgInitExample,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runInit(cmd, cfg)
		},
	}
}

// loadConfig layers explicitly set flags over defaults and environment
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	overrides := map[string]interface{}{}
	flags := cmd.Flags()
	if flags.Changed("root") {
		root, _ := flags.GetString("root")
		overrides["root"] = root
	}
	if flags.Changed("format") {
		format, _ := flags.GetString("format")
		overrides["format"] = format
	}
	if flags.Changed("dry-run") {
		dryRun, _ := flags.GetBool("dry-run")
		overrides["dry_run"] = dryRun
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, MsgErrLoadCfg)
	}

	if cfg.Root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrRootNotFound, MsgErrWorkDir)
		}
		cfg.Root = wd
	}
	return cfg, nil
}

func runInit(cmd *cobra.Command, cfg *config.Config) error {
	logger := logging.GetLogger("cmd.init")

	format, err := ui.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	// JSON output must stay parseable, so the questions move to stderr
	promptOut := cmd.OutOrStdout()
	if format == ui.FormatJSON {
		promptOut = cmd.ErrOrStderr()
	}

	driver := newDriver(cfg.Prompt.Driver, cmd.InOrStdin(), promptOut, cmd.ErrOrStderr())
	logger.Debug().Str("driver", fmt.Sprintf("%T", driver)).Str("root", cfg.Root).Msg("Starting prompt sequence")

	answers, err := prompt.NewSequencer(driver, prompt.Questions()).Run()
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrAborted) || errors.IsErrorCode(err, errors.ErrInputClosed) {
			logger.Info().Msg("Prompt ended early, nothing was written")
		}
		return err
	}

	gen := generate.New(generate.Options{
		Fs:          afero.NewOsFs(),
		Permissions: cfg.FilePermissions,
		DryRun:      cfg.DryRun,
	})
	result, err := gen.Generate(generate.DefaultLayout(cfg.Root), answers)
	if err != nil {
		if result != nil && len(result.Files) > 0 {
			logger.Warn().Int("written", len(result.Files)).Msg("Some files were written before the failure")
		}
		return err
	}

	if err := renderer.RenderResult(result); err != nil {
		return err
	}
	// JSON results already carry dry_run
	if result.DryRun && format != ui.FormatJSON {
		return renderer.RenderMessage(summary.MsgDryRun)
	}
	return nil
}

// newDriver picks the prompt driver. The survey driver needs real
// terminals on both ends; anything else reads plain lines.
func newDriver(name string, in io.Reader, out, errOut io.Writer) prompt.Driver {
	inFile, inOK := in.(*os.File)
	outFile, outOK := out.(*os.File)
	terminals := inOK && outOK && isTerminal(inFile) && isTerminal(outFile)

	switch {
	case name == config.DriverSurvey && terminals,
		name == config.DriverAuto && terminals:
		return prompt.NewSurveyDriver(inFile, outFile, errOut)
	default:
		return prompt.NewLineDriver(in, out)
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
