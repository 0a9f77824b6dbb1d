package ptycap

import (
	"os/exec"
	"path/filepath"
	"strings"
)

// resolveBinaryPath mirrors the original implementation's
// resolve_binary_path: a command that looks like a path (absolute,
// contains a separator, or starts with "./") is canonicalized if it
// exists on disk; anything else is left for exec.Command to resolve
// against $PATH via exec.LookPath.
func resolveBinaryPath(command string) string {
	looksLikePath := filepath.IsAbs(command) ||
		strings.ContainsRune(command, filepath.Separator) ||
		strings.HasPrefix(command, "./")

	if !looksLikePath {
		if resolved, err := exec.LookPath(command); err == nil {
			return resolved
		}
		return command
	}

	if abs, err := filepath.Abs(command); err == nil {
		if resolved, err := filepath.EvalSymlinks(abs); err == nil {
			return resolved
		}
		return abs
	}
	return command
}
