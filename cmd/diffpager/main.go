// Command diffpager pages unified diff text with a sticky header that
// always names the commit, file, and hunk at the top of the viewport.
package main

import (
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/fwojciec/diffpager/bubbletea"
	"github.com/fwojciec/diffpager/config"
	"github.com/fwojciec/diffpager/fs"
	"github.com/fwojciec/diffpager/gitdiff"
)

var version = "dev"

var (
	filePath string
	cfgFile  string
	debug    bool
)

var rootCmd = &cobra.Command{
	Use:   "diffpager",
	Short: "Page unified diffs with a sticky context header",
	Long: `diffpager reads unified diff text (git diff, git log -p) from stdin or a
file and pages through it while a sticky top row shows which commit, file,
and hunk the visible text belongs to.`,
	Version:      version,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&filePath, "file", "f", "",
		"read the diff from a file instead of stdin")
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/diffpager/config.yaml)")
	rootCmd.Flags().BoolVar(&debug, "debug", false,
		"write debug logs to the state directory")
}

func run(cmd *cobra.Command, _ []string) error {
	if debug || os.Getenv("DIFFPAGER_DEBUG") != "" {
		path := fs.DefaultLogPath()
		_ = os.MkdirAll(filepath.Dir(path), 0o755)
		if f, err := tea.LogToFile(path, "diffpager"); err == nil {
			defer f.Close()
		}
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	viewer := &bubbletea.Viewer{
		Opts: []bubbletea.Option{
			bubbletea.WithKeyMap(bubbletea.KeyMapFromConfig(cfg.Keys)),
			bubbletea.WithStyles(bubbletea.StylesFromConfig(cfg.Theme, nil)),
		},
	}
	app := &App{
		FilePath: filePath,
		Parser:   gitdiff.NewParser(),
		Viewer:   viewer,
	}

	if filePath == "" {
		app.Input = os.Stdin
		// With the diff arriving on stdin, key events must come from the
		// terminal device.
		if tty, err := os.Open("/dev/tty"); err == nil {
			viewer.Input = tty
			defer tty.Close()
		}
	}

	return app.Run(cmd.Context())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
