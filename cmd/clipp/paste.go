package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/clipp"
)

func newPasteCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "paste",
		Short: "Print the system clipboard to stdout (like pbpaste)",
		Long: `Writes the current clipboard text to stdout, byte for byte —
no newline is appended.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runPaste(v) },
	}

	addCommonFlags(cmd)
	return cmd
}

func runPaste(v *viper.Viper) error {
	setupLogging(v)

	text, err := clipp.Paste()
	if err != nil {
		return err
	}
	_, err = os.Stdout.WriteString(text)
	return err
}
