package main

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/clipp"
)

func newStatusCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show which clipboard backend this host binds",
		Long: `Resolves the clipboard backend exactly as a copy or paste
would — platform, WSL detection, display variables, installed tools —
and reports the outcome without touching the clipboard.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runStatus(v) },
	}

	cmd.Flags().Bool("json", false, "output raw JSON")
	addCommonFlags(cmd)
	return cmd
}

func runStatus(v *viper.Viper) error {
	setupLogging(v)

	backend, err := clipp.Backend()
	if err != nil {
		return err
	}

	if v.GetBool("json") {
		enc, _ := json.MarshalIndent(struct {
			Backend  string `json:"backend"`
			Platform string `json:"platform"`
		}{backend, runtime.GOOS}, "", "  ")
		fmt.Println(string(enc))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 1, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Backend:\t%s\n", backend)
	fmt.Fprintf(w, "Platform:\t%s\n", runtime.GOOS)
	return w.Flush()
}
