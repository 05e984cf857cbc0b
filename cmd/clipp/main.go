// clipp: copy and paste the system clipboard from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags "-X main.Version=x.y.z".
var Version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "clipp",
		Short: "Copy and paste the system clipboard",
		Long: `clipp reads and writes the system clipboard through whichever
mechanism the host provides: the clipboard API on Windows,
pbcopy/pbpaste on macOS, the Windows bridge inside WSL, wl-clipboard
on Wayland, or xsel/xclip/klipper on X11.

The backend is picked once per process, in that priority order. Run
"clipp status" to see which backend this host binds.

Config file search order (first found wins):
  /etc/clipp/clipp.toml
  $HOME/.config/clipp/clipp.toml
  path supplied via --config

All flags can be set via CLIPP_<FLAG> env vars or config-file keys.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newCopyCmd(),
		newPasteCmd(),
		newStatusCmd(),
		newVersionCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("clipp %s\n", Version)
		},
	}
}
