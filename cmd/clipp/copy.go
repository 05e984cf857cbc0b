package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/clipp"
)

func newCopyCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "copy [text...]",
		Short: "Copy text to the system clipboard (like pbcopy)",
		Long: `Copies its arguments, joined with single spaces, to the system
clipboard. With no arguments, reads stdin to end-of-file instead and
copies that (like pbcopy).`,
		Args:    cobra.ArbitraryArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, args []string) error { return runCopy(v, args) },
	}

	addCommonFlags(cmd)
	return cmd
}

func runCopy(v *viper.Viper, args []string) error {
	setupLogging(v)

	text := strings.Join(args, " ")
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = string(data)
	}

	return clipp.Copy(text)
}
