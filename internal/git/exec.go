package git

import (
	"context"

	"github.com/raphi011/hookman/internal/cmd"
)

// outputGit runs git -C dir with args and returns stdout.
func outputGit(ctx context.Context, dir string, args ...string) ([]byte, error) {
	return cmd.OutputContext(ctx, "", "git", append([]string{"-C", dir}, args...)...)
}
