package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/raphi011/hookman/internal/hook"
)

func TestParseHookTypes(t *testing.T) {
	t.Parallel()

	types, err := parseHookTypes([]string{"pre-push", "commit-msg"})
	require.NoError(t, err)
	require.Equal(t, []hook.Type{hook.PrePush, hook.CommitMsg}, types)

	types, err = parseHookTypes(nil)
	require.NoError(t, err)
	require.Empty(t, types)

	_, err = parseHookTypes([]string{"pre-push", "pre-psh"})
	require.True(t, errors.Is(err, hook.ErrUnknownType))
}

func TestWriteStructured(t *testing.T) {
	t.Parallel()

	h := hook.New(hook.PreCommit)
	require.NoError(t, h.Add(hook.Command{ID: "vet", Command: "go vet ./..."}))

	tests := []struct {
		format string
		want   string
	}{
		{"json", "{\n    \"hook\": \"pre-commit\",\n    \"commands\": [\n      {\n        \"id\": \"vet\",\n        \"command\": \"go vet ./...\"\n      }\n    ]\n  }"},
		{"yaml", "- hook: pre-commit\n  commands:\n"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			require.NoError(t, writeStructured(&buf, tt.format, []*hook.Hook{h}))
			require.Contains(t, buf.String(), tt.want)
		})
	}

	require.Error(t, writeStructured(&bytes.Buffer{}, "xml", h))
}

func TestIDPlaceholder(t *testing.T) {
	t.Parallel()

	require.Equal(t, "cargo", idPlaceholder("cargo fmt -- --check"))
	require.Equal(t, "", idPlaceholder("   "))
}

func TestMatchPrefix(t *testing.T) {
	t.Parallel()

	got := matchPrefix(hook.TypeNames(), "post-", []string{"post-merge"})
	require.Equal(t, []string{"post-commit", "post-checkout", "post-receive", "post-update", "post-applypatch", "post-rewrite"}, got)
}

func TestCompleteHookTypeFirstArg(t *testing.T) {
	t.Parallel()

	got, directive := completeHookTypeFirstArg(&cobra.Command{}, nil, "pre-p")
	require.Equal(t, []string{"pre-push"}, got)
	require.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)

	got, _ = completeHookTypeFirstArg(&cobra.Command{}, []string{"pre-push"}, "")
	require.Empty(t, got)
}

func TestRootCommandTree(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"init", "add", "remove", "list", "show", "apply", "status", "uninstall", "doctor", "completion"} {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		require.Equal(t, name, cmd.Name())
		require.NotEmpty(t, cmd.GroupID, name)
	}

	cmd, _, err := rootCmd.Find([]string{"rm"})
	require.NoError(t, err)
	require.Equal(t, "remove", cmd.Name())
}

func TestValidateNewID(t *testing.T) {
	t.Parallel()

	h := hook.New(hook.PrePush)
	require.NoError(t, h.Add(hook.Command{ID: "test", Command: "go test ./..."}))

	require.NoError(t, validateNewID(h, "race"))
	require.ErrorContains(t, validateNewID(h, ""), "empty")
	require.ErrorContains(t, validateNewID(h, "test"), `"test" is already used in pre-push`)
}

func TestApplyHelpDescribesKeptBackup(t *testing.T) {
	t.Parallel()

	long := newApplyCmd().Long
	require.Contains(t, long, "<hook-type>.backup")
	require.Contains(t, long, "the backup is kept as is")
}
