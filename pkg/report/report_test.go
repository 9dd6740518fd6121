package report

import (
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestSaveEmptyResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.txt")

	written, err := Save(path, nil)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if written != path {
		t.Fatalf("Save() path = %s, want %s", written, path)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("results file missing: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("file permissions = %o, want 600", perm)
	}

	lines := readLines(t, path)
	if len(lines) != 2 {
		t.Fatalf("line count = %d, want 2 (header + timestamp)", len(lines))
	}
	if lines[0] != Header {
		t.Errorf("header line = %q, want %q", lines[0], Header)
	}
	assertTimestampLine(t, lines[1])
}

func TestSaveHosts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.txt")
	hosts := []net.IP{
		net.ParseIP("192.168.1.1"),
		net.ParseIP("192.168.1.7"),
		net.ParseIP("192.168.1.23"),
	}

	if _, err := Save(path, hosts); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	lines := readLines(t, path)
	if len(lines) != 2+len(hosts) {
		t.Fatalf("line count = %d, want %d", len(lines), 2+len(hosts))
	}
	for i, host := range hosts {
		if lines[2+i] != host.String() {
			t.Errorf("line %d = %q, want %q", 2+i, lines[2+i], host.String())
		}
	}
}

func TestSaveFailureLeavesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "sub", "results.txt")

	if _, err := Save(path, nil); err == nil {
		t.Fatal("Save() error = nil for an unwritable path")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected no file left behind, stat error = %v", err)
	}
}

func TestDefaultPath(t *testing.T) {
	now := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
	got := DefaultPath(now)
	want := filepath.Join(os.TempDir(), "sweep_20260102T150405Z.txt")
	if got != want {
		t.Errorf("DefaultPath() = %s, want %s", got, want)
	}
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading results file: %v", err)
	}
	content := strings.TrimSuffix(string(data), "\n")
	if content == "" {
		return nil
	}
	return strings.Split(content, "\n")
}

func assertTimestampLine(t *testing.T, line string) {
	t.Helper()
	const prefix = "timestamp (utc): "
	if !strings.HasPrefix(line, prefix) {
		t.Fatalf("timestamp line = %q, want prefix %q", line, prefix)
	}
	if _, err := time.Parse(time.RFC3339, strings.TrimPrefix(line, prefix)); err != nil {
		t.Errorf("timestamp does not parse as RFC3339: %v", err)
	}
}
