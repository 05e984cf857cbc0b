//go:build darwin

package clip

import "os/exec"

// nativeBoard returns the macOS backend. pbcopy and pbpaste ship with
// the OS, so the resolver binds it without probing.
func nativeBoard() (Board, bool) {
	return Board{
		Name: "pbcopy",
		Copy: func(text string) error {
			return feed(exec.Command("pbcopy"), []byte(text))
		},
		Paste: func() (string, error) {
			return slurp(exec.Command("pbpaste"))
		},
	}, true
}
