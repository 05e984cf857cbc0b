// Package clip resolves and drives a system clipboard backend.
//
// The first Copy or Paste call anywhere in the process probes the host
// (platform, WSL, display variables, installed tools), binds exactly one
// backend, and routes every later call through that binding. Backends
// shell out to the platform clipboard tool (xsel, xclip, wl-clipboard,
// klipper, clip.exe) except on Windows, where the clipboard API is used
// directly.
package clip

import "sync"

// Board is a bound pair of clipboard entry points. Immutable once
// created; owned by the package-level binding cell.
type Board struct {
	// Name identifies the backend in logs and "clipp status" output.
	Name string

	// Copy replaces the clipboard contents with text. The empty string
	// is a meaningful input: backends whose mechanism distinguishes
	// "set to empty" from "clear ownership" must clear.
	Copy func(text string) error

	// Paste returns the clipboard contents exactly as copied, with any
	// tool-appended trailing terminator already stripped.
	Paste func() (string, error)
}

// cell is a write-once slot. The first Get commits the resolver's
// result; every caller, including concurrent first callers, observes
// the same Board and error thereafter.
type cell struct {
	once  sync.Once
	board Board
	err   error
}

func (c *cell) Get(resolve func() (Board, error)) (Board, error) {
	c.once.Do(func() {
		c.board, c.err = resolve()
	})
	return c.board, c.err
}

var binding cell

// Bound returns the process-wide clipboard binding, resolving it on
// first use. Resolution runs at most once per process; a failure is
// sticky for the remainder of the process.
func Bound() (Board, error) {
	return binding.Get(func() (Board, error) { return resolve(hostSys()) })
}

// Copy replaces the system clipboard contents with text.
func Copy(text string) error {
	b, err := Bound()
	if err != nil {
		return err
	}
	return b.Copy(text)
}

// Paste returns the current system clipboard contents.
func Paste() (string, error) {
	b, err := Bound()
	if err != nil {
		return "", err
	}
	return b.Paste()
}
