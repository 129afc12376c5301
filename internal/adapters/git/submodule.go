package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// AddSubmodule registers url as a submodule of the repository at parentDir,
// checked out at relPath, and runs the initial update. go-git does not
// implement submodule add, so this shells out to the git binary.
func AddSubmodule(ctx context.Context, parentDir, url, relPath, branch string) error {
	add := exec.CommandContext(ctx, "git", "submodule", "add", "-b", branch, url, relPath)
	add.Dir = parentDir
	if out, err := add.CombinedOutput(); err != nil {
		return fmt.Errorf("git submodule add failed: %w: %s", err, strings.TrimSpace(string(out)))
	}

	update := exec.CommandContext(ctx, "git", "submodule", "update", "--init", relPath)
	update.Dir = parentDir
	if out, err := update.CombinedOutput(); err != nil {
		return fmt.Errorf("git submodule update failed: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}
