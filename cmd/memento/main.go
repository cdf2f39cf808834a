package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/memento/internal/app"
)

var version = "dev"

// flags shared by every command.
type flags struct {
	configPath string
	prefsPath  string
	ephemeral  bool
}

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "memento: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:   "memento",
		Short: "A PIN-locked keepsake desktop for the terminal",
		Long: `memento shows a lock screen, then a small desktop of photos, a letter,
a sticky note, a music player and a calendar.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), app.Options{
				ConfigPath: f.configPath,
				PrefsPath:  f.prefsPath,
				Ephemeral:  f.ephemeral,
				Version:    version,
			})
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "config file (default ~/.config/memento/config.toml)")
	pf.StringVar(&f.prefsPath, "prefs", "", "preferences file (default ~/.config/memento/prefs.toml)")
	pf.BoolVar(&f.ephemeral, "ephemeral", false, "keep the note and layout in memory only")

	root.AddCommand(newVersionCmd(), newStateCmd(f), newResetCmd(f), newLogsCmd(f))
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of memento",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "memento %s\n", version)
		},
	}
}
