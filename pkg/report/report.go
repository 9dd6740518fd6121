// Package report consumes scan output: it persists the reachable addresses
// of a finished sweep to a plain-text file readable only by the owner.
package report

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Header is the first line of every saved results file.
const Header = "sweepx host discovery results"

// fileMode restricts saved results to the owning user.
const fileMode = 0o600

// DefaultPath returns a timestamp-derived results path in the system
// temporary directory.
func DefaultPath(now time.Time) string {
	return filepath.Join(os.TempDir(), fmt.Sprintf("sweep_%s.txt", now.UTC().Format("20060102T150405Z")))
}

// Save writes the reachable hosts to path with owner-only permissions and
// returns the path written. An empty path selects DefaultPath. The file
// contains the header line, a UTC timestamp line, then one address per line.
// If writing fails the partial file is removed so no corrupt results are left
// behind.
func Save(path string, hosts []net.IP) (string, error) {
	now := time.Now().UTC()
	if path == "" {
		path = DefaultPath(now)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fileMode)
	if err != nil {
		return "", fmt.Errorf("failed to create results file %s: %w", path, err)
	}

	var sb strings.Builder
	sb.WriteString(Header + "\n")
	sb.WriteString(fmt.Sprintf("timestamp (utc): %s\n", now.Format(time.RFC3339)))
	for _, host := range hosts {
		sb.WriteString(host.String() + "\n")
	}

	if _, err := f.WriteString(sb.String()); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to write results file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to finalize results file %s: %w", path, err)
	}
	return path, nil
}
