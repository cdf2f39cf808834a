package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/five82/memento/internal/app"
	"github.com/five82/memento/internal/config"
	"github.com/five82/memento/internal/storage"
)

const previewWidth = 60

func openStore(f *flags) (storage.Store, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return app.OpenStore(cfg, f.ephemeral)
}

func newStateCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "Show the stored sticky note and thumbnail layout",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStore(f)
			if err != nil {
				return err
			}
			return printState(color.Output, store)
		},
	}
}

func printState(w io.Writer, store storage.Store) error {
	bold := color.New(color.Bold)
	muted := color.New(color.FgHiBlack)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = previewWidth
	tbl.AddRow(bold.Sprint("Key"), bold.Sprint("Value"))

	keys := store.Keys()
	if len(keys) == 0 {
		tbl.AddRow(muted.Sprint("(empty)"), "")
	}
	for _, key := range keys {
		value, ok, err := store.Get(key)
		if err != nil {
			return fmt.Errorf("read %s: %w", key, err)
		}
		if !ok {
			continue
		}
		tbl.AddRow(color.CyanString(key), describe(key, value))
	}

	_, err := fmt.Fprintln(w, tbl)
	return err
}

// describe summarises a stored value for display.
func describe(key, value string) string {
	switch key {
	case storage.PositionsKey:
		var positions map[string]json.RawMessage
		if err := json.Unmarshal([]byte(value), &positions); err != nil {
			return color.RedString("malformed: %v", err)
		}
		return fmt.Sprintf("%d moved thumbnails", len(positions))
	case storage.NoteKey:
		if strings.TrimSpace(value) == "" {
			return color.HiBlackString("(blank)")
		}
		return strings.ReplaceAll(value, "\n", " ⏎ ")
	}
	return value
}

func newResetCmd(f *flags) *cobra.Command {
	var note, positions bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the stored sticky note and/or thumbnail layout",
		Long:  "Delete stored session data. With no flags both the note and the layout are removed.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStore(f)
			if err != nil {
				return err
			}
			if err := app.Reset(store, note, positions); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("reset done"))
			return nil
		},
	}
	cmd.Flags().BoolVar(&note, "note", false, "delete the sticky note")
	cmd.Flags().BoolVar(&positions, "positions", false, "delete saved thumbnail positions")
	return cmd
}
