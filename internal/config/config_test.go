package config

import (
	"context"
	"testing"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default("1.2.3")
	if cfg.Version != "1.2.3" {
		t.Errorf("Version = %q, want 1.2.3", cfg.Version)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestValidate_MissingVersion(t *testing.T) {
	t.Parallel()

	if err := (Config{}).Validate(); err == nil {
		t.Error("expected error for empty version")
	}
}

func TestWorkDirFromContext(t *testing.T) {
	t.Parallel()

	ctx := WithWorkDir(context.Background(), "/tmp/repo")
	if got := WorkDirFromContext(ctx); got != "/tmp/repo" {
		t.Errorf("WorkDirFromContext() = %q, want /tmp/repo", got)
	}

	if got := WorkDirFromContext(context.Background()); got == "" {
		t.Error("fallback working directory should not be empty")
	}
}

func TestValidateOutputFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format  string
		wantErr bool
	}{
		{"", false},
		{"table", false},
		{"json", false},
		{"yaml", false},
		{"xml", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()
			err := ValidateOutputFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputFormat(%q) = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}

func TestFormatOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		opts []string
		want string
	}{
		{[]string{"a"}, `"a"`},
		{[]string{"a", "b"}, `"a" or "b"`},
		{[]string{"a", "b", "c"}, `"a", "b", or "c"`},
	}

	for _, tt := range tests {
		if got := formatOptions(tt.opts); got != tt.want {
			t.Errorf("formatOptions(%v) = %s, want %s", tt.opts, got, tt.want)
		}
	}
}
