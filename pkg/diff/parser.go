// Package diff parses unified diffs and aggregates per-subtask diffs
// into a single deterministic diff, detecting and resolving hunk
// conflicts per a closed policy set.
package diff

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedDiff indicates a diff that cannot be parsed at all, as
// opposed to one that parses but conflicts.
var ErrMalformedDiff = errors.New("diff: malformed unified diff")

// Hunk is one @@-block of a unified diff. Lines keep their leading
// marker (' ', '+', '-').
type Hunk struct {
	OldStart int
	OldLines int
	NewStart int
	NewLines int
	Lines    []string

	// Subtask is the contributing subtask ID, set during aggregation.
	Subtask string
}

// PureAddition reports whether the hunk inserts lines without touching
// any existing ones.
func (h *Hunk) PureAddition() bool {
	for _, line := range h.Lines {
		if strings.HasPrefix(line, "-") {
			return false
		}
	}
	return h.OldLines == 0
}

// oldRange returns the closed interval of old-file lines the hunk
// touches. Insertions (OldLines == 0) occupy their anchor point so two
// insertions at the same position still conflict.
func (h *Hunk) oldRange() (start, end int) {
	start = h.OldStart
	span := h.OldLines
	if span < 1 {
		span = 1
	}
	return start, start + span - 1
}

// overlaps reports whether two hunks touch overlapping old-line ranges.
func (h *Hunk) overlaps(other *Hunk) bool {
	aStart, aEnd := h.oldRange()
	bStart, bEnd := other.oldRange()
	return aStart <= bEnd && bStart <= aEnd
}

// counts returns the number of old-file and new-file lines the hunk
// body actually carries.
func (h *Hunk) counts() (oldLines, newLines int) {
	for _, line := range h.Lines {
		switch {
		case strings.HasPrefix(line, "+"):
			newLines++
		case strings.HasPrefix(line, "-"):
			oldLines++
		default:
			oldLines++
			newLines++
		}
	}
	return oldLines, newLines
}

// FileDiff is all hunks of one file in a diff.
type FileDiff struct {
	Path     string
	IsNew    bool
	IsDelete bool
	Hunks    []*Hunk
}

// Parse splits a unified diff into per-file hunk lists. Git-style
// "diff --git" and "index" lines are tolerated and skipped.
func Parse(text string) ([]*FileDiff, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty diff", ErrMalformedDiff)
	}

	var (
		files   []*FileDiff
		current *FileDiff
		hunk    *Hunk
		oldPath string
	)
	flushHunk := func() error {
		if hunk == nil {
			return nil
		}
		oldCount, newCount := hunk.counts()
		if oldCount != hunk.OldLines || newCount != hunk.NewLines {
			return fmt.Errorf("%w: hunk at -%d,%d: header counts do not match body",
				ErrMalformedDiff, hunk.OldStart, hunk.OldLines)
		}
		current.Hunks = append(current.Hunks, hunk)
		hunk = nil
		return nil
	}

	hunkComplete := func() bool {
		oldCount, newCount := hunk.counts()
		return oldCount >= hunk.OldLines && newCount >= hunk.NewLines
	}

	for _, line := range strings.Split(text, "\n") {
		// While a hunk's header counts are unmet, every line belongs to
		// its body. This keeps removed lines that start with "---" or
		// "+++" from being misread as file headers.
		if hunk != nil && !hunkComplete() {
			if strings.HasPrefix(line, `\`) {
				continue
			}
			if line == "" {
				line = " "
			}
			hunk.Lines = append(hunk.Lines, line)
			continue
		}

		switch {
		case strings.HasPrefix(line, "--- "):
			if err := flushHunk(); err != nil {
				return nil, err
			}
			oldPath = stripPathPrefix(strings.TrimPrefix(line, "--- "))
			current = nil

		case strings.HasPrefix(line, "+++ "):
			if oldPath == "" && current == nil && len(files) == 0 && hunk == nil {
				return nil, fmt.Errorf("%w: +++ without ---", ErrMalformedDiff)
			}
			newPath := stripPathPrefix(strings.TrimPrefix(line, "+++ "))
			fd := &FileDiff{
				IsNew:    oldPath == "/dev/null",
				IsDelete: newPath == "/dev/null",
			}
			switch {
			case fd.IsNew && fd.IsDelete:
				return nil, fmt.Errorf("%w: both sides are /dev/null", ErrMalformedDiff)
			case fd.IsDelete:
				fd.Path = oldPath
			default:
				fd.Path = newPath
			}
			files = append(files, fd)
			current = fd
			oldPath = ""

		case strings.HasPrefix(line, "@@ "):
			if current == nil {
				return nil, fmt.Errorf("%w: hunk header before file header", ErrMalformedDiff)
			}
			if err := flushHunk(); err != nil {
				return nil, err
			}
			h, err := parseHunkHeader(line)
			if err != nil {
				return nil, err
			}
			hunk = h

		case strings.HasPrefix(line, `\`):
			// "\ No newline at end of file"
			continue
		}
	}
	if err := flushHunk(); err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no file headers found", ErrMalformedDiff)
	}
	for _, fd := range files {
		if len(fd.Hunks) == 0 {
			return nil, fmt.Errorf("%w: file %s has no hunks", ErrMalformedDiff, fd.Path)
		}
	}
	return files, nil
}

// parseHunkHeader parses "@@ -oldStart[,oldLines] +newStart[,newLines] @@".
func parseHunkHeader(line string) (*Hunk, error) {
	rest := strings.TrimPrefix(line, "@@ ")
	endIdx := strings.Index(rest, " @@")
	if endIdx < 0 {
		return nil, fmt.Errorf("%w: bad hunk header %q", ErrMalformedDiff, line)
	}
	parts := strings.Fields(rest[:endIdx])
	if len(parts) != 2 || !strings.HasPrefix(parts[0], "-") || !strings.HasPrefix(parts[1], "+") {
		return nil, fmt.Errorf("%w: bad hunk header %q", ErrMalformedDiff, line)
	}

	oldStart, oldLines, err := parseRange(strings.TrimPrefix(parts[0], "-"))
	if err != nil {
		return nil, fmt.Errorf("%w: bad hunk header %q", ErrMalformedDiff, line)
	}
	newStart, newLines, err := parseRange(strings.TrimPrefix(parts[1], "+"))
	if err != nil {
		return nil, fmt.Errorf("%w: bad hunk header %q", ErrMalformedDiff, line)
	}
	return &Hunk{
		OldStart: oldStart,
		OldLines: oldLines,
		NewStart: newStart,
		NewLines: newLines,
	}, nil
}

// parseRange parses "start[,lines]"; a missing count means 1.
func parseRange(s string) (start, lines int, err error) {
	if idx := strings.IndexByte(s, ','); idx >= 0 {
		start, err = strconv.Atoi(s[:idx])
		if err != nil {
			return 0, 0, err
		}
		lines, err = strconv.Atoi(s[idx+1:])
		return start, lines, err
	}
	start, err = strconv.Atoi(s)
	return start, 1, err
}

// stripPathPrefix removes git's a/ and b/ prefixes and any trailing
// timestamp column.
func stripPathPrefix(p string) string {
	if idx := strings.IndexByte(p, '\t'); idx >= 0 {
		p = p[:idx]
	}
	p = strings.TrimSpace(p)
	if p == "/dev/null" {
		return p
	}
	if strings.HasPrefix(p, "a/") || strings.HasPrefix(p, "b/") {
		return p[2:]
	}
	return p
}
