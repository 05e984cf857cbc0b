package clip

import (
	"fmt"
	"os/exec"
	"strings"
)

// The process-based backends. Each board drives one external tool
// against the CLIPBOARD selection (never PRIMARY) and compiles on
// every platform; the resolver decides which, if any, gets bound.

// xselBoard drives xsel.
func xselBoard() Board {
	return Board{
		Name: "xsel",
		Copy: func(text string) error {
			return feed(exec.Command("xsel", "-b", "-i"), []byte(text))
		},
		Paste: func() (string, error) {
			return slurp(exec.Command("xsel", "-b", "-o"))
		},
	}
}

// xclipBoard drives xclip. xclip is chatty on stderr during paste;
// slurp keeps stderr out of the stdout capture, so the chatter never
// reaches or corrupts the returned text.
func xclipBoard() Board {
	return Board{
		Name: "xclip",
		Copy: func(text string) error {
			return feed(exec.Command("xclip", "-selection", "c"), []byte(text))
		},
		Paste: func() (string, error) {
			return slurp(exec.Command("xclip", "-selection", "c", "-o"))
		},
	}
}

// waylandBoard drives wl-copy/wl-paste. Copying the empty string maps
// to "wl-copy --clear": piping an empty buffer would hand the
// selection to a new owner with empty contents instead of clearing
// ownership, and the clear call's exit status must be checked.
func waylandBoard() Board {
	return waylandBoardWith(runOK, feed)
}

// waylandBoardWith takes the run and feed operations as parameters so
// the empty-input dispatch is testable without a Wayland session.
func waylandBoardWith(run func(*exec.Cmd) error, put func(*exec.Cmd, []byte) error) Board {
	return Board{
		Name: "wl-copy",
		Copy: func(text string) error {
			if text == "" {
				return run(exec.Command("wl-copy", "-p", "--clear"))
			}
			return put(exec.Command("wl-copy", "-p"), []byte(text))
		},
		Paste: func() (string, error) {
			return slurp(exec.Command("wl-paste", "-n", "-p"))
		},
	}
}

// klipperBoard talks to the KDE klipper daemon over qdbus. Copy is a
// one-way method call carrying the text as an argument; nothing is
// piped. Paste output always carries a single trailing newline, which
// is stripped.
func klipperBoard() Board {
	return Board{
		Name: "klipper",
		Copy: func(text string) error {
			return runOK(exec.Command("qdbus",
				"org.kde.klipper", "/klipper", "setClipboardContents", text))
		},
		Paste: func() (string, error) {
			out, err := slurp(exec.Command("qdbus",
				"org.kde.klipper", "/klipper", "getClipboardContents"))
			if err != nil {
				return "", err
			}
			return chopSuffix(out, "\n", "qdbus")
		},
	}
}

// wslBoard bridges to the Windows host clipboard from inside WSL.
// Get-Clipboard terminates its output with CRLF, which is stripped.
func wslBoard() Board {
	return Board{
		Name: "wsl",
		Copy: func(text string) error {
			return feed(exec.Command("clip.exe"), []byte(text))
		},
		Paste: func() (string, error) {
			out, err := slurp(exec.Command("powershell.exe",
				"-noprofile", "-command", "Get-Clipboard"))
			if err != nil {
				return "", err
			}
			return chopSuffix(out, "\r\n", "powershell.exe")
		},
	}
}

// chopSuffix strips the terminator a tool is documented to always
// append to its output. A missing terminator means the tool did not
// behave as documented, which is an error, not something to paper
// over.
func chopSuffix(s, suffix, tool string) (string, error) {
	if !strings.HasSuffix(s, suffix) {
		return "", fmt.Errorf("%s: output missing trailing %q", tool, suffix)
	}
	return strings.TrimSuffix(s, suffix), nil
}
