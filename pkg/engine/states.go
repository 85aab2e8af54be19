package engine

import (
	"github.com/coderelay-ai/coderelay/ent/task"
	"github.com/coderelay-ai/coderelay/pkg/models"
)

// allowedTransitions is the closed transition table. FAILED is reachable
// from every non-terminal state and is not listed per-row.
var allowedTransitions = map[task.Status][]task.Status{
	task.StatusNew:            {task.StatusPlanning},
	task.StatusPlanning:       {task.StatusPlanningDone},
	task.StatusPlanningDone:   {task.StatusCoding, task.StatusCodingDone, task.StatusWaitingHuman},
	task.StatusCoding:         {task.StatusCodingDone},
	task.StatusCodingDone:     {task.StatusTesting, task.StatusTestsFailed, task.StatusCompleted},
	task.StatusTesting:        {task.StatusTestsPassed, task.StatusTestsFailed},
	task.StatusTestsPassed:    {task.StatusReviewing},
	task.StatusTestsFailed:    {task.StatusFixing},
	task.StatusFixing:         {task.StatusCodingDone},
	task.StatusReviewing:      {task.StatusReviewApproved, task.StatusReviewRejected, task.StatusWaitingHuman},
	task.StatusReviewApproved: {task.StatusPrCreated},
	task.StatusReviewRejected: {task.StatusFixing},
	task.StatusPrCreated:      {task.StatusWaitingHuman},
	task.StatusWaitingHuman:   {task.StatusCompleted, task.StatusCodingDone},
}

// CanTransition reports whether from → to is a legal edge.
func CanTransition(from, to task.Status) bool {
	if to == task.StatusFailed {
		return !Terminal(from)
	}
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Terminal reports whether a status ends the pipeline.
func Terminal(st task.Status) bool {
	return st == task.StatusCompleted || st == task.StatusFailed
}

// EffectiveReviewVerdict applies the downgrade rule: REQUEST_CHANGES
// becomes APPROVE iff tests passed and no comment is critical. Every
// other verdict passes through unchanged.
func EffectiveReviewVerdict(out *models.ReviewerOutput, testsPassed bool) (models.ReviewVerdict, bool) {
	if out.Verdict == models.ReviewRequestChanges && testsPassed && !out.HasCriticalComment() {
		return models.ReviewApprove, true
	}
	return out.Verdict, false
}
