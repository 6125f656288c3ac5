package sweep

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/lejos-tools/classsweep/internal/utils"
)

// ExecutableDir returns the directory that holds the running binary.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// ResolveRoot turns a user supplied root into an absolute, clean path.
// An empty root resolves to ExecutableDir. A root that is a symlink is
// resolved so the walk descends into its target.
func ResolveRoot(root string) (string, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return ExecutableDir()
	}

	expanded, err := utils.ExpandPath(root)
	if err != nil {
		return "", fmt.Errorf("error expanding root %q: %w", root, err)
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("error resolving root %q: %w", root, err)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	switch {
	case err == nil:
		return resolved, nil
	case errors.Is(err, fs.ErrNotExist):
		// A missing root sweeps nothing.
		return abs, nil
	default:
		return "", fmt.Errorf("error resolving root %q: %w", root, err)
	}
}
