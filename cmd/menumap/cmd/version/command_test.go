package version

import (
	"bytes"
	"strings"
	"testing"

	"github.com/agentstation/menumap/internal/cmd/application"
)

func TestVersionCommand(t *testing.T) {
	mock := &application.Mock{
		VersionFunc: func() string { return "1.2.3" },
		CommitFunc:  func() string { return "abc123" },
	}

	cmd := NewCommand(mock)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(nil)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}

	got := out.String()
	for _, want := range []string{"menumap 1.2.3", "commit:     abc123", "built by:   test"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}
