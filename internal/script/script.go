package script

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/raphi011/hookman/internal/hook"
)

// Marker is the provenance line identifying scripts written by hookman.
const Marker = "# Generated by hookman. Do not edit by hand."

// ErrRender indicates a hook whose commands can't be rendered into a script.
var ErrRender = errors.New("render script")

const scriptTmplText = `#!/bin/sh
set -e

` + Marker + `
# Hook: {{.Type}}
{{range .Commands}}
# [{{.ID}}]{{with .Description}} {{.}}{{end}}
{{.Command}}
{{end}}`

// scriptTmpl is parsed once at package load. A parse error panics at startup.
var scriptTmpl = template.Must(template.New("hook-script").Parse(scriptTmplText))

// Generate renders h into an executable shell script.
func Generate(h *hook.Hook) (string, error) {
	if h == nil {
		return "", fmt.Errorf("%w: nil hook", ErrRender)
	}
	if !h.Type.Valid() {
		return "", fmt.Errorf("%w: %v", ErrRender, h.Type)
	}
	// IDs and descriptions end up in comment lines; a line break would leak
	// the rest of the text into the script as code.
	if err := h.Validate(); err != nil {
		return "", fmt.Errorf("%w for hook %q: %w", ErrRender, h.Type, err)
	}

	var buf bytes.Buffer
	if err := scriptTmpl.Execute(&buf, h); err != nil {
		return "", fmt.Errorf("%w for hook %q: %w", ErrRender, h.Type, err)
	}
	return buf.String(), nil
}

// IsManaged reports whether content is a script written by hookman.
func IsManaged(content []byte) bool {
	for line := range strings.Lines(string(content)) {
		if strings.TrimRight(line, "\r\n") == Marker {
			return true
		}
	}
	return false
}
