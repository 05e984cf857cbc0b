//go:build windows

package clip

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"
)

// clipboard.Init is idempotent in effect but logs and probes on every
// call; run it once and reuse the verdict.
var initErr = sync.OnceValue(clipboard.Init)

// nativeBoard returns the Windows backend, which talks to the
// clipboard API directly instead of shelling out.
func nativeBoard() (Board, bool) {
	return Board{
		Name: "windows",
		Copy: func(text string) error {
			if err := initErr(); err != nil {
				return fmt.Errorf("clipboard init: %w", err)
			}
			clipboard.Write(clipboard.FmtText, []byte(text))
			return nil
		},
		Paste: func() (string, error) {
			if err := initErr(); err != nil {
				return "", fmt.Errorf("clipboard init: %w", err)
			}
			return string(clipboard.Read(clipboard.FmtText)), nil
		},
	}, true
}
