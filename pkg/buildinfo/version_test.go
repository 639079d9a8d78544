package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	oldV, oldC := Version, Commit
	Version, Commit = "v1.2.3", "abc123"
	defer func() { Version, Commit = oldV, oldC }()

	tmpl := Template()
	if !strings.HasPrefix(tmpl, "{{.Name}} version v1.2.3\n") {
		t.Errorf("Template() = %q", tmpl)
	}
	if !strings.Contains(String(), "commit: abc123") {
		t.Errorf("String() = %q", String())
	}
	if got := Get(); got.Version != "v1.2.3" || got.GoVersion == "" {
		t.Errorf("Get() = %+v", got)
	}
}
