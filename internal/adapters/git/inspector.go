package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/wolverin0/crystal-fork-sub001/internal/domain"
	"github.com/wolverin0/crystal-fork-sub001/internal/logging"
	"github.com/wolverin0/crystal-fork-sub001/internal/ports"
)

// CLIInspector implements ports.RepositoryInspector by running git
type CLIInspector struct {
	gitBinary string
}

// Verify interface compliance at compile time
var (
	_ ports.RepositoryInspector = (*CLIInspector)(nil)
	_ ports.MainBranchDetector  = (*CLIInspector)(nil)
)

// NewCLIInspector creates a new CLIInspector
func NewCLIInspector() *CLIInspector {
	return &CLIInspector{gitBinary: "git"}
}

// run executes git in dir and returns trimmed stdout. Optional locks are
// disabled so read-only queries never contend for the index lock.
func (i *CLIInspector) run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, i.gitBinary, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "GIT_OPTIONAL_LOCKS=0", "LC_ALL=C")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("git %s: %w", args[0], ctxErr)
		}
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return "", fmt.Errorf("git %s: %w: %s", args[0], err, detail)
		}
		return "", fmt.Errorf("git %s: %w", args[0], err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// ProbeWorkingDirectory implements WorkingDirectoryProber.ProbeWorkingDirectory
func (i *CLIInspector) ProbeWorkingDirectory(ctx context.Context, path string) (domain.WorkingDirectoryProbe, error) {
	out, err := i.run(ctx, path, "status", "--porcelain=v2", "--untracked-files=normal")
	if err != nil {
		return domain.WorkingDirectoryProbe{}, err
	}
	return parsePorcelainV2(out), nil
}

// IsRebaseInProgress implements WorkingDirectoryProber.IsRebaseInProgress
func (i *CLIInspector) IsRebaseInProgress(ctx context.Context, path string) (bool, error) {
	out, err := i.run(ctx, path, "rev-parse", "--git-path", "rebase-merge", "--git-path", "rebase-apply")
	if err != nil {
		return false, err
	}
	for _, p := range strings.Split(out, "\n") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !filepath.IsAbs(p) {
			p = filepath.Join(path, p)
		}
		if _, err := os.Stat(p); err == nil {
			return true, nil
		}
	}
	return false, nil
}

// AheadBehind implements DivergenceReader.AheadBehind
func (i *CLIInspector) AheadBehind(ctx context.Context, path, branch string) (domain.AheadBehind, error) {
	out, err := i.run(ctx, path, "rev-list", "--left-right", "--count", "HEAD..."+branch)
	if err != nil {
		return domain.AheadBehind{}, err
	}
	return parseLeftRight(out)
}

// CommitShortstat implements DivergenceReader.CommitShortstat
func (i *CLIInspector) CommitShortstat(ctx context.Context, path, branch string) (domain.DiffStats, error) {
	out, err := i.run(ctx, path, "diff", "--shortstat", branch+"...HEAD")
	if err != nil {
		return domain.DiffStats{}, err
	}
	return parseShortstat(out), nil
}

// CommitCount implements DivergenceReader.CommitCount
func (i *CLIInspector) CommitCount(ctx context.Context, path, branch string) (int, error) {
	out, err := i.run(ctx, path, "rev-list", "--count", branch+"..HEAD")
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(out)
	if err != nil {
		return 0, fmt.Errorf("unexpected rev-list output %q: %w", out, err)
	}
	return n, nil
}

// DiffStats implements DiffReader.DiffStats
func (i *CLIInspector) DiffStats(ctx context.Context, path string) (domain.DiffStats, error) {
	out, err := i.run(ctx, path, "diff", "--shortstat", "HEAD")
	if err != nil {
		return domain.DiffStats{}, err
	}
	return parseShortstat(out), nil
}

// DetectMainBranch implements ports.MainBranchDetector. It prefers the
// remote's default branch, then a local main or master.
func (i *CLIInspector) DetectMainBranch(ctx context.Context, repoPath string) (string, error) {
	if _, err := i.run(ctx, repoPath, "rev-parse", "--git-dir"); err != nil {
		return "", fmt.Errorf("not a git repository: %w", err)
	}

	if out, err := i.run(ctx, repoPath, "symbolic-ref", "--short", "refs/remotes/origin/HEAD"); err == nil && out != "" {
		branch := strings.TrimPrefix(out, "origin/")
		logging.Logger.Debug("Main branch from origin HEAD", "repo", repoPath, "branch", branch)
		return branch, nil
	}

	for _, candidate := range []string{"main", "master"} {
		if _, err := i.run(ctx, repoPath, "show-ref", "--verify", "--quiet", "refs/heads/"+candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.New("no main branch found")
}

// parsePorcelainV2 reads `git status --porcelain=v2` entries. XY holds the
// index then worktree state; '.' means unchanged.
func parsePorcelainV2(out string) domain.WorkingDirectoryProbe {
	var probe domain.WorkingDirectoryProbe
	for _, line := range strings.Split(out, "\n") {
		switch {
		case strings.HasPrefix(line, "? "):
			probe.HasUntracked = true
		case strings.HasPrefix(line, "u "):
			probe.HasConflicts = true
		case strings.HasPrefix(line, "1 "), strings.HasPrefix(line, "2 "):
			parts := strings.Fields(line)
			if len(parts) < 2 || len(parts[1]) < 2 {
				continue
			}
			xy := parts[1]
			if xy[0] != '.' {
				probe.HasStaged = true
			}
			if xy[1] != '.' {
				probe.HasModified = true
			}
		}
	}
	return probe
}

// parseLeftRight reads `git rev-list --left-right --count` output: "AHEAD\tBEHIND"
func parseLeftRight(out string) (domain.AheadBehind, error) {
	parts := strings.Fields(out)
	if len(parts) != 2 {
		return domain.AheadBehind{}, fmt.Errorf("unexpected rev-list output: %q", out)
	}
	ahead, err := strconv.Atoi(parts[0])
	if err != nil {
		return domain.AheadBehind{}, fmt.Errorf("failed to parse ahead count: %w", err)
	}
	behind, err := strconv.Atoi(parts[1])
	if err != nil {
		return domain.AheadBehind{}, fmt.Errorf("failed to parse behind count: %w", err)
	}
	return domain.AheadBehind{Ahead: ahead, Behind: behind}, nil
}

var shortstatPattern = regexp.MustCompile(`(\d+) (files? changed|insertions?\(\+\)|deletions?\(-\))`)

// parseShortstat reads `git diff --shortstat` output, e.g.
// " 3 files changed, 10 insertions(+), 2 deletions(-)". Empty means no changes.
func parseShortstat(out string) domain.DiffStats {
	var stats domain.DiffStats
	for _, m := range shortstatPattern.FindAllStringSubmatch(out, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		switch {
		case strings.HasPrefix(m[2], "file"):
			stats.FilesChanged = n
		case strings.HasPrefix(m[2], "insertion"):
			stats.Additions = n
		case strings.HasPrefix(m[2], "deletion"):
			stats.Deletions = n
		}
	}
	return stats
}
