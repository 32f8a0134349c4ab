package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/dwrenn/ctlkit/internal/tui"
	"github.com/dwrenn/ctlkit/logging"
)

var (
	// version is set via ldflags at build time.
	version = "dev"

	jsonFlag      bool
	logConfigFlag string

	// log is the shared CLI logger, built before any command runs;
	// logOpts keeps the options it was built from so commands that
	// construct their own logger start from the same configuration.
	log     *logging.Logger
	logOpts logging.Options
)

var rootCmd = &cobra.Command{
	Use:   "ctlkit",
	Short: "Range-mapped control playground",
	Long: `ctlkit is the companion tool for the ctlkit control library — convert
between raw slider positions and value ranges, exercise the colored logger,
and poke at a live control interactively.
Launch without subcommands for interactive TUI mode.`,
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		opts := logging.Options{Level: "info"}
		if logConfigFlag != "" {
			loaded, err := logging.LoadOptions(logConfigFlag)
			if err != nil {
				return err
			}
			opts = loaded
		}
		l, err := logging.New(opts)
		if err != nil {
			return err
		}
		log = l
		logOpts = opts
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if shell, _ := cmd.Flags().GetString("generate-completion"); shell != "" {
			switch shell {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			default:
				return fmt.Errorf("unsupported shell: %s (use bash, zsh, or fish)", shell)
			}
		}
		p := tea.NewProgram(tui.New(version), tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("ctlkit %s\n", version))
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.Flags().String("generate-completion", "", "Generate shell completion (bash, zsh, fish)")
	rootCmd.Flags().MarkHidden("generate-completion")
	rootCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&logConfigFlag, "log-config", "", "Path to a YAML logging config (file, level, scheme, hide_level)")
}
