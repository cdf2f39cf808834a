package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/five82/memento/internal/config"
	"github.com/five82/memento/internal/logtail"
)

func newLogsCmd(f *flags) *cobra.Command {
	var lines int
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print the end of the memento log",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(f.configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			out, err := logtail.Read(cfg.Log.File, lines)
			if err != nil {
				return err
			}
			return printLogs(color.Output, out)
		},
	}
	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "number of lines to show")
	return cmd
}

func printLogs(w io.Writer, lines []string) error {
	for _, line := range lines {
		rec := logtail.Parse(line)
		text := rec.Format()
		switch rec.Level {
		case "ERROR":
			text = color.RedString(text)
		case "WARN":
			text = color.YellowString(text)
		case "DEBUG":
			text = color.HiBlackString(text)
		}
		if _, err := fmt.Fprintln(w, text); err != nil {
			return err
		}
	}
	return nil
}
