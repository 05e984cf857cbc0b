package clip

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrNoClipboard is returned when the host has no display environment
// and no compatible clipboard mechanism.
var ErrNoClipboard = errors.New("no clipboard available")

// sys is the environment the resolver consults. Function fields so
// tests can fabricate hosts that don't exist.
type sys struct {
	native  func() (Board, bool)
	wsl     func() bool
	display func(name string) bool
	onPath  func(name string) bool
}

func hostSys() sys {
	return sys{
		native:  nativeBoard,
		wsl:     isWSL,
		display: displaySet,
		onPath:  onPath,
	}
}

// resolve picks exactly one backend for this host. The order is a
// strict priority list: native platform API, then the WSL bridge,
// then Wayland, xsel, xclip, klipper. Several tools may be installed
// at once; the first match wins, deterministically.
func resolve(s sys) (Board, error) {
	if b, ok := s.native(); ok {
		return bound(b), nil
	}
	if s.wsl() {
		return bound(wslBoard()), nil
	}
	if !s.display("WAYLAND_DISPLAY") && !s.display("DISPLAY") {
		return Board{}, fmt.Errorf("%w: no display environment", ErrNoClipboard)
	}
	switch {
	case s.display("WAYLAND_DISPLAY") && s.onPath("wl-copy"):
		return bound(waylandBoard()), nil
	case s.onPath("xsel"):
		return bound(xselBoard()), nil
	case s.onPath("xclip"):
		return bound(xclipBoard()), nil
	case s.onPath("klipper") && s.onPath("qdbus"):
		return bound(klipperBoard()), nil
	}
	return Board{}, fmt.Errorf("%w: no supported clipboard tool on PATH", ErrNoClipboard)
}

func bound(b Board) Board {
	slog.Debug("clipboard backend bound", "backend", b.Name)
	return b
}
