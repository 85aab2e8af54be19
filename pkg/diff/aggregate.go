package diff

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Policy is the closed conflict-resolution policy set.
type Policy string

// Recognized policies.
const (
	PolicyLastWins      Policy = "last_wins"
	PolicyFirstWins     Policy = "first_wins"
	PolicyMergeAdditive Policy = "merge_additive"
	PolicyManual        Policy = "manual"
)

// ValidPolicy reports whether p is a recognized policy.
func ValidPolicy(p Policy) bool {
	switch p {
	case PolicyLastWins, PolicyFirstWins, PolicyMergeAdditive, PolicyManual:
		return true
	}
	return false
}

// ErrInconsistentInput indicates structurally incompatible subtask
// diffs, such as one subtask creating a file another one modifies.
var ErrInconsistentInput = errors.New("diff: inconsistent subtask diffs")

// SubtaskDiff is one child task's contribution to an aggregation.
type SubtaskDiff struct {
	SubtaskID   string   `json:"subtaskId"`
	Diff        string   `json:"diff"`
	TargetFiles []string `json:"targetFiles"`
}

// FileChangeSummary describes the aggregate effect on one file.
type FileChangeSummary struct {
	Path       string   `json:"path"`
	Insertions int      `json:"insertions"`
	Deletions  int      `json:"deletions"`
	IsNewFile  bool     `json:"isNewFile"`
	IsDeleted  bool     `json:"isDeleted"`
	Subtasks   []string `json:"subtasks"`
}

// Conflict is one unresolved hunk overlap.
type Conflict struct {
	Path       string `json:"path"`
	SubtaskA   string `json:"subtaskA"`
	SubtaskB   string `json:"subtaskB"`
	OldStartA  int    `json:"oldStartA"`
	OldEndA    int    `json:"oldEndA"`
	OldStartB  int    `json:"oldStartB"`
	OldEndB    int    `json:"oldEndB"`
	Reason     string `json:"reason"`
	HunkDiff   string `json:"hunkDiff,omitempty"`
}

// ConflictReport is emitted when aggregation cannot produce a diff.
type ConflictReport struct {
	Policy    Policy     `json:"policy"`
	Conflicts []Conflict `json:"conflicts"`
}

// Result is the outcome of one aggregation. Exactly one of Diff or
// Conflicts is set.
type Result struct {
	Diff      string              `json:"diff,omitempty"`
	Summary   []FileChangeSummary `json:"summary,omitempty"`
	Conflicts *ConflictReport     `json:"conflicts,omitempty"`
}

// ManualRequired reports whether the aggregation needs an operator.
func (r *Result) ManualRequired() bool {
	return r.Conflicts != nil
}

// Aggregator merges ordered subtask diffs under one policy. Output is
// deterministic: files in lexicographic order, hunks ascending by
// oldStart, ties broken by input order.
type Aggregator struct {
	policy    Policy
	threshold int
	dmp       *diffmatchpatch.DiffMatchPatch
}

// NewAggregator creates an aggregator. threshold is the maximum
// combined hunk size merge_additive may auto-resolve.
func NewAggregator(policy Policy, threshold int) (*Aggregator, error) {
	if !ValidPolicy(policy) {
		return nil, fmt.Errorf("diff: unrecognized conflict policy %q", policy)
	}
	return &Aggregator{
		policy:    policy,
		threshold: threshold,
		dmp:       diffmatchpatch.New(),
	}, nil
}

// taggedHunk carries aggregation bookkeeping alongside a hunk.
type taggedHunk struct {
	*Hunk
	order int // input position of the contributing subtask
}

// fileState accumulates per-file hunks across subtasks.
type fileState struct {
	path      string
	isNew     bool
	isDelete  bool
	createdBy []string
	touchedBy []string
	hunks     []taggedHunk
}

// Aggregate merges the ordered subtask diffs. A nil error with a
// non-nil Result.Conflicts means manual resolution is required; an
// error means the input itself is structurally invalid.
func (a *Aggregator) Aggregate(inputs []SubtaskDiff) (*Result, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: no subtask diffs", ErrInconsistentInput)
	}

	states := make(map[string]*fileState)
	for order, input := range inputs {
		files, err := Parse(input.Diff)
		if err != nil {
			return nil, fmt.Errorf("subtask %s: %w", input.SubtaskID, err)
		}
		for _, fd := range files {
			st, ok := states[fd.Path]
			if !ok {
				st = &fileState{path: fd.Path, isNew: fd.IsNew, isDelete: fd.IsDelete}
				states[fd.Path] = st
			}
			if fd.IsNew {
				st.isNew = true
				st.createdBy = append(st.createdBy, input.SubtaskID)
			} else {
				st.touchedBy = append(st.touchedBy, input.SubtaskID)
			}
			if fd.IsDelete {
				st.isDelete = true
			}
			for _, h := range fd.Hunks {
				h.Subtask = input.SubtaskID
				st.hunks = append(st.hunks, taggedHunk{Hunk: h, order: order})
			}
		}
	}

	// A file created from nothing by one subtask and modified as
	// pre-existing by another cannot be reconciled mechanically.
	for _, st := range states {
		if len(st.createdBy) > 0 && len(st.touchedBy) > 0 {
			return nil, fmt.Errorf("%w: file %s is created by %s but modified by %s",
				ErrInconsistentInput, st.path,
				strings.Join(st.createdBy, ","), strings.Join(st.touchedBy, ","))
		}
		if len(st.createdBy) > 1 {
			return nil, fmt.Errorf("%w: file %s is created by multiple subtasks %s",
				ErrInconsistentInput, st.path, strings.Join(st.createdBy, ","))
		}
	}

	paths := make([]string, 0, len(states))
	for path := range states {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var (
		out       strings.Builder
		summaries []FileChangeSummary
		conflicts []Conflict
	)
	for _, path := range paths {
		st := states[path]
		resolved, fileConflicts := a.resolveFile(st)
		if len(fileConflicts) > 0 {
			conflicts = append(conflicts, fileConflicts...)
			continue
		}
		emitFile(&out, st, resolved)
		summaries = append(summaries, summarizeFile(st, resolved))
	}

	if len(conflicts) > 0 {
		return &Result{Conflicts: &ConflictReport{Policy: a.policy, Conflicts: conflicts}}, nil
	}
	return &Result{Diff: out.String(), Summary: summaries}, nil
}

// resolveFile orders a file's hunks and applies the conflict policy to
// overlapping pairs from different subtasks.
func (a *Aggregator) resolveFile(st *fileState) ([]taggedHunk, []Conflict) {
	hunks := make([]taggedHunk, len(st.hunks))
	copy(hunks, st.hunks)
	sort.SliceStable(hunks, func(i, j int) bool {
		if hunks[i].OldStart != hunks[j].OldStart {
			return hunks[i].OldStart < hunks[j].OldStart
		}
		return hunks[i].order < hunks[j].order
	})

	var (
		kept      []taggedHunk
		conflicts []Conflict
	)
	for _, h := range hunks {
		placed := false
		for i := len(kept) - 1; i >= 0; i-- {
			prev := kept[i]
			if !h.overlaps(prev.Hunk) {
				continue
			}
			if prev.Subtask == h.Subtask {
				// Overlap within one subtask's own diff is malformed
				// and never auto-resolvable.
				conflicts = append(conflicts, a.conflict(st.path, prev, h, "overlapping hunks within one subtask"))
				placed = true
				break
			}

			switch a.policy {
			case PolicyLastWins:
				if h.order >= prev.order {
					kept[i] = h
				}
				placed = true
			case PolicyFirstWins:
				if h.order < prev.order {
					kept[i] = h
				}
				placed = true
			case PolicyMergeAdditive:
				merged, ok := a.mergeAdditive(prev, h)
				if !ok {
					conflicts = append(conflicts, a.conflict(st.path, prev, h, "not auto-resolvable by merge_additive"))
				} else {
					kept[i] = merged
				}
				placed = true
			default: // PolicyManual
				conflicts = append(conflicts, a.conflict(st.path, prev, h, "manual policy forbids auto-resolution"))
				placed = true
			}
			break
		}
		if !placed {
			kept = append(kept, h)
		}
	}
	return kept, conflicts
}

// mergeAdditive combines two pure-addition hunks anchored in the same
// region, earlier subtask's lines first. Fails when either hunk removes
// lines or the combination exceeds the auto-resolve threshold.
func (a *Aggregator) mergeAdditive(x, y taggedHunk) (taggedHunk, bool) {
	if !x.PureAddition() || !y.PureAddition() {
		return taggedHunk{}, false
	}
	if len(x.Lines)+len(y.Lines) > a.threshold {
		return taggedHunk{}, false
	}

	first, second := x, y
	if second.order < first.order {
		first, second = second, first
	}
	merged := &Hunk{
		OldStart: minInt(x.OldStart, y.OldStart),
		OldLines: 0,
		Lines:    append(append([]string{}, first.Lines...), second.Lines...),
		Subtask:  first.Subtask,
	}
	merged.NewLines = len(merged.Lines)
	return taggedHunk{Hunk: merged, order: first.order}, true
}

// conflict builds a Conflict record with a readable rendering of the
// two hunks' divergence.
func (a *Aggregator) conflict(path string, x, y taggedHunk, reason string) Conflict {
	xStart, xEnd := x.oldRange()
	yStart, yEnd := y.oldRange()
	diffs := a.dmp.DiffMain(strings.Join(x.Lines, "\n"), strings.Join(y.Lines, "\n"), false)
	return Conflict{
		Path:      path,
		SubtaskA:  x.Subtask,
		SubtaskB:  y.Subtask,
		OldStartA: xStart,
		OldEndA:   xEnd,
		OldStartB: yStart,
		OldEndB:   yEnd,
		Reason:    reason,
		HunkDiff:  a.dmp.DiffPrettyText(diffs),
	}
}

// emitFile writes one file's headers and hunks, recomputing hunk
// headers so cumulative offsets stay consistent.
func emitFile(out *strings.Builder, st *fileState, hunks []taggedHunk) {
	switch {
	case st.isNew:
		out.WriteString("--- /dev/null\n")
		fmt.Fprintf(out, "+++ b/%s\n", st.path)
	case st.isDelete:
		fmt.Fprintf(out, "--- a/%s\n", st.path)
		out.WriteString("+++ /dev/null\n")
	default:
		fmt.Fprintf(out, "--- a/%s\n", st.path)
		fmt.Fprintf(out, "+++ b/%s\n", st.path)
	}

	delta := 0
	for _, h := range hunks {
		oldLines, newLines := h.counts()
		newStart := h.OldStart + delta
		if oldLines == 0 {
			// Insertions anchor after their old line.
			newStart = h.OldStart + delta + 1
		}
		if h.OldStart == 0 {
			// New files start at +1.
			newStart = 1
		}
		fmt.Fprintf(out, "@@ -%d,%d +%d,%d @@\n", h.OldStart, oldLines, newStart, newLines)
		for _, line := range h.Lines {
			out.WriteString(line)
			out.WriteByte('\n')
		}
		delta += newLines - oldLines
	}
}

// summarizeFile rolls one file's kept hunks into a FileChangeSummary.
func summarizeFile(st *fileState, hunks []taggedHunk) FileChangeSummary {
	summary := FileChangeSummary{
		Path:      st.path,
		IsNewFile: st.isNew,
		IsDeleted: st.isDelete,
	}
	seen := make(map[string]bool)
	for _, h := range hunks {
		for _, line := range h.Lines {
			switch {
			case strings.HasPrefix(line, "+"):
				summary.Insertions++
			case strings.HasPrefix(line, "-"):
				summary.Deletions++
			}
		}
		if !seen[h.Subtask] {
			seen[h.Subtask] = true
			summary.Subtasks = append(summary.Subtasks, h.Subtask)
		}
	}
	sort.Strings(summary.Subtasks)
	return summary
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
