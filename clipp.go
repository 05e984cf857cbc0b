// Package clipp is a small cross-platform clipboard library.
//
//	clipp.Copy("wow such clipboard")
//	s, _ := clipp.Paste() // "wow such clipboard"
//
// The backend — a native platform API, the WSL bridge, wl-clipboard,
// xsel, xclip, or klipper — is resolved once, on first use, and stays
// bound for the lifetime of the process.
package clipp

import (
	"fmt"

	"go.klb.dev/clipp/internal/clip"
)

// ErrNoClipboard reports that no clipboard mechanism is available on
// this host.
var ErrNoClipboard = clip.ErrNoClipboard

// Copy formats v with fmt.Sprint and places the result on the system
// clipboard.
func Copy(v any) error {
	return clip.Copy(fmt.Sprint(v))
}

// Paste returns the current system clipboard contents.
func Paste() (string, error) {
	return clip.Paste()
}

// Backend resolves the clipboard binding, if that hasn't happened yet,
// and returns the bound backend's name.
func Backend() (string, error) {
	b, err := clip.Bound()
	if err != nil {
		return "", err
	}
	return b.Name, nil
}
