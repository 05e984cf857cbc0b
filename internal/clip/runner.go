package clip

import (
	"fmt"
	"os/exec"
)

// The three invocation shapes every backend is built from. None of
// them retries or times out: a hung clipboard tool blocks the calling
// goroutine, and any launch, pipe, write, read, or wait failure is
// returned to the caller as-is.

// feed pipes data to cmd's stdin, closes it, and waits for cmd to
// exit. It does not return before the child has exited.
func feed(cmd *exec.Cmd, data []byte) error {
	in, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("%s: stdin pipe: %w", cmd.Args[0], err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%s: start: %w", cmd.Args[0], err)
	}
	_, werr := in.Write(data)
	cerr := in.Close()
	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("%s: wait: %w", cmd.Args[0], err)
	}
	if werr != nil {
		return fmt.Errorf("%s: write stdin: %w", cmd.Args[0], werr)
	}
	if cerr != nil {
		return fmt.Errorf("%s: close stdin: %w", cmd.Args[0], cerr)
	}
	return nil
}

// slurp runs cmd and returns everything it wrote to stdout, after the
// stream has reached end-of-file and the child has exited cleanly.
// stderr is collected separately (into the ExitError on failure), so
// tool chatter never reaches the returned text.
func slurp(cmd *exec.Cmd) (string, error) {
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("%s: %w", cmd.Args[0], err)
	}
	return string(out), nil
}

// runOK runs cmd to completion, discarding its output, and reports a
// launch failure or non-success exit as an error.
func runOK(cmd *exec.Cmd) error {
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", cmd.Args[0], err)
	}
	return nil
}
