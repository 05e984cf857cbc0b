package clip

import (
	"errors"
	"os/exec"
	"slices"
	"testing"
)

func TestChopSuffix(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		suffix  string
		want    string
		wantErr bool
	}{
		{name: "klipper_newline", in: "hello\n", suffix: "\n", want: "hello"},
		{name: "klipper_keeps_inner_newlines", in: "a\nb\n", suffix: "\n", want: "a\nb"},
		{name: "klipper_only_one_newline_stripped", in: "x\n\n", suffix: "\n", want: "x\n"},
		{name: "klipper_missing_newline", in: "hello", suffix: "\n", wantErr: true},
		{name: "wsl_crlf", in: "hello\r\n", suffix: "\r\n", want: "hello"},
		{name: "wsl_bare_lf_is_violation", in: "hello\n", suffix: "\r\n", wantErr: true},
		{name: "empty_output_is_violation", in: "", suffix: "\n", wantErr: true},
		{name: "suffix_alone", in: "\n", suffix: "\n", want: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := chopSuffix(tc.in, tc.suffix, "tool")
			if tc.wantErr {
				if err == nil {
					t.Fatalf("chopSuffix(%q) = %q, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("chopSuffix(%q) error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("chopSuffix(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

// Copying the empty string must run wl-copy's explicit clear mode,
// never pipe an empty buffer.
func TestWaylandCopyEmptyClears(t *testing.T) {
	var cleared *exec.Cmd
	b := waylandBoardWith(
		func(cmd *exec.Cmd) error { cleared = cmd; return nil },
		func(cmd *exec.Cmd, data []byte) error {
			t.Fatalf("empty copy piped %q to %v instead of clearing", data, cmd.Args)
			return nil
		},
	)

	if err := b.Copy(""); err != nil {
		t.Fatalf("Copy(\"\") error: %v", err)
	}
	if cleared == nil {
		t.Fatal("Copy(\"\") ran nothing")
	}
	if !slices.Contains(cleared.Args, "--clear") {
		t.Fatalf("Copy(\"\") ran %v, want a --clear invocation", cleared.Args)
	}
}

// A non-success exit from the clear call is an error, not something
// to swallow.
func TestWaylandCopyEmptyClearFailurePropagates(t *testing.T) {
	fail := errors.New("wl-copy exited 1")
	b := waylandBoardWith(
		func(*exec.Cmd) error { return fail },
		func(*exec.Cmd, []byte) error { return nil },
	)

	if err := b.Copy(""); !errors.Is(err, fail) {
		t.Fatalf("Copy(\"\") error = %v, want %v", err, fail)
	}
}

func TestWaylandCopyNonEmptyPipes(t *testing.T) {
	var fed []byte
	b := waylandBoardWith(
		func(cmd *exec.Cmd) error {
			t.Fatalf("non-empty copy ran %v instead of piping", cmd.Args)
			return nil
		},
		func(cmd *exec.Cmd, data []byte) error {
			if slices.Contains(cmd.Args, "--clear") {
				t.Fatalf("non-empty copy ran %v", cmd.Args)
			}
			fed = data
			return nil
		},
	)

	if err := b.Copy("keep me"); err != nil {
		t.Fatalf("Copy() error: %v", err)
	}
	if string(fed) != "keep me" {
		t.Fatalf("Copy() piped %q, want %q", fed, "keep me")
	}
}

func TestBoardNamesAreDistinct(t *testing.T) {
	boards := []Board{
		xselBoard(), xclipBoard(), waylandBoard(), klipperBoard(), wslBoard(),
	}
	seen := map[string]bool{}
	for _, b := range boards {
		if b.Name == "" {
			t.Fatal("backend with empty name")
		}
		if seen[b.Name] {
			t.Fatalf("duplicate backend name %q", b.Name)
		}
		seen[b.Name] = true
		if b.Copy == nil || b.Paste == nil {
			t.Fatalf("backend %q is missing an entry point", b.Name)
		}
	}
}
