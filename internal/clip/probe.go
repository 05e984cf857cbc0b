package clip

import (
	"os"
	"os/exec"
	"strings"
)

// Environment probes consulted by the resolver. All are read-only and
// recomputed only during resolution; nothing here is cached.

const procVersion = "/proc/version"

// onPath reports whether name resolves to an executable via the
// standard search path.
func onPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// isWSL reports whether this process is running inside the Windows
// Subsystem for Linux.
func isWSL() bool { return wslKernel(procVersion) }

// wslKernel reports whether the kernel version file at path mentions
// Microsoft, which identifies a WSL kernel. A read failure is absence
// of evidence, not an error: the answer is simply false.
func wslKernel(path string) bool {
	b, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return strings.Contains(strings.ToLower(string(b)), "microsoft")
}

// displaySet reports whether the named environment variable is set at
// all, regardless of its value.
func displaySet(name string) bool {
	_, ok := os.LookupEnv(name)
	return ok
}
