package collector

import (
	"os/exec"
	"strconv"
	"strings"

	"github.com/tenantops/dugrow/pkg/errors"
	"github.com/tenantops/dugrow/pkg/logging"
	"github.com/tenantops/dugrow/pkg/types"
)

// Command collects child sizes by shelling out to an external du-style
// client, typically a distributed filesystem CLI (for example
// "hdfs dfs -du" or "du -sb --"). The configured argv is executed with
// the tenant root appended as the final argument.
type Command struct {
	argv []string
}

// NewCommand validates that the configured binary exists on PATH and
// returns the collector. A missing binary is a fatal configuration
// error: no tenant can be collected without it.
func NewCommand(argv []string) (*Command, error) {
	if len(argv) == 0 {
		return nil, errors.New(errors.ErrBackendNotFound, "collector command is empty")
	}
	if _, err := exec.LookPath(argv[0]); err != nil {
		return nil, errors.Wrapf(err, errors.ErrBackendNotFound, "collection command %q not found", argv[0])
	}
	return &Command{argv: argv}, nil
}

// ListChildren implements types.Collector.
func (c *Command) ListChildren(root string) (types.Snapshot, error) {
	logger := logging.GetLogger("collector.command")

	args := append(append([]string(nil), c.argv[1:]...), root)
	cmd := exec.Command(c.argv[0], args...)
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return types.Snapshot{}, errors.Wrapf(err, errors.ErrCollectFailed,
				"%s failed for %s: %s", c.argv[0], root, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return types.Snapshot{}, errors.Wrapf(err, errors.ErrCollectFailed, "%s failed for %s", c.argv[0], root)
	}

	snap, err := parseSizeListing(string(out))
	if err != nil {
		return types.Snapshot{}, err
	}
	logger.Debug().Str("root", root).Int("children", len(snap)).Msg("parsed command output")
	return snap, nil
}

// parseSizeListing parses du-style output: one child per line, a byte
// count first, an optional second numeric column (HDFS prints the
// replicated size there), and the path last. Anything else fails
// closed rather than being silently misparsed.
func parseSizeListing(out string) (types.Snapshot, error) {
	snap := types.Snapshot{}
	for i, line := range strings.Split(out, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		size, rest, err := takeSize(trimmed)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrCollectFailed, "unrecognized size listing at line %d: %q", i+1, line)
		}

		// Second numeric column, if present and followed by a path.
		// HDFS prints the replicated size there; it is not the value
		// we track.
		if _, more, err := takeSize(rest); err == nil && more != "" {
			rest = more
		}

		if rest == "" {
			return nil, errors.Newf(errors.ErrCollectFailed, "missing path in size listing at line %d: %q", i+1, line)
		}
		snap[rest] = size
	}
	return snap, nil
}

// takeSize splits a leading non-negative integer token off s and
// returns it with the remainder, whitespace-trimmed.
func takeSize(s string) (int64, string, error) {
	token := s
	rest := ""
	if idx := strings.IndexAny(s, " \t"); idx >= 0 {
		token = s[:idx]
		rest = strings.TrimLeft(s[idx:], " \t")
	}
	size, err := strconv.ParseInt(token, 10, 64)
	if err != nil || size < 0 {
		return 0, "", errors.Newf(errors.ErrCollectFailed, "not a byte count: %q", token)
	}
	return size, rest, nil
}
