// Code generated by ent, DO NOT EDIT.

package sessionmemory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/coderelay-ai/coderelay/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldTaskID, v))
}

// Phase applies equality check predicate on the "phase" field. It's identical to PhaseEQ.
func Phase(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldPhase, v))
}

// SubtaskID applies equality check predicate on the "subtask_id" field. It's identical to SubtaskIDEQ.
func SubtaskID(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldSubtaskID, v))
}

// ParentSessionID applies equality check predicate on the "parent_session_id" field. It's identical to ParentSessionIDEQ.
func ParentSessionID(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldParentSessionID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldUpdatedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldContainsFold(FieldTaskID, v))
}

// PhaseEQ applies the EQ predicate on the "phase" field.
func PhaseEQ(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldPhase, v))
}

// PhaseNEQ applies the NEQ predicate on the "phase" field.
func PhaseNEQ(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNEQ(FieldPhase, v))
}

// PhaseIn applies the In predicate on the "phase" field.
func PhaseIn(vs ...string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldIn(FieldPhase, vs...))
}

// PhaseNotIn applies the NotIn predicate on the "phase" field.
func PhaseNotIn(vs ...string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNotIn(FieldPhase, vs...))
}

// PhaseGT applies the GT predicate on the "phase" field.
func PhaseGT(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldGT(FieldPhase, v))
}

// PhaseGTE applies the GTE predicate on the "phase" field.
func PhaseGTE(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldGTE(FieldPhase, v))
}

// PhaseLT applies the LT predicate on the "phase" field.
func PhaseLT(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldLT(FieldPhase, v))
}

// PhaseLTE applies the LTE predicate on the "phase" field.
func PhaseLTE(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldLTE(FieldPhase, v))
}

// PhaseContains applies the Contains predicate on the "phase" field.
func PhaseContains(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldContains(FieldPhase, v))
}

// PhaseHasPrefix applies the HasPrefix predicate on the "phase" field.
func PhaseHasPrefix(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldHasPrefix(FieldPhase, v))
}

// PhaseHasSuffix applies the HasSuffix predicate on the "phase" field.
func PhaseHasSuffix(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldHasSuffix(FieldPhase, v))
}

// PhaseEqualFold applies the EqualFold predicate on the "phase" field.
func PhaseEqualFold(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEqualFold(FieldPhase, v))
}

// PhaseContainsFold applies the ContainsFold predicate on the "phase" field.
func PhaseContainsFold(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldContainsFold(FieldPhase, v))
}

// ContextIsNil applies the IsNil predicate on the "context" field.
func ContextIsNil() predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldIsNull(FieldContext))
}

// ContextNotNil applies the NotNil predicate on the "context" field.
func ContextNotNil() predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNotNull(FieldContext))
}

// AttemptsIsNil applies the IsNil predicate on the "attempts" field.
func AttemptsIsNil() predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldIsNull(FieldAttempts))
}

// AttemptsNotNil applies the NotNil predicate on the "attempts" field.
func AttemptsNotNil() predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNotNull(FieldAttempts))
}

// OutputsIsNil applies the IsNil predicate on the "outputs" field.
func OutputsIsNil() predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldIsNull(FieldOutputs))
}

// OutputsNotNil applies the NotNil predicate on the "outputs" field.
func OutputsNotNil() predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNotNull(FieldOutputs))
}

// OrchestrationIsNil applies the IsNil predicate on the "orchestration" field.
func OrchestrationIsNil() predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldIsNull(FieldOrchestration))
}

// OrchestrationNotNil applies the NotNil predicate on the "orchestration" field.
func OrchestrationNotNil() predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNotNull(FieldOrchestration))
}

// SubtaskIDEQ applies the EQ predicate on the "subtask_id" field.
func SubtaskIDEQ(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldSubtaskID, v))
}

// SubtaskIDNEQ applies the NEQ predicate on the "subtask_id" field.
func SubtaskIDNEQ(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNEQ(FieldSubtaskID, v))
}

// SubtaskIDIn applies the In predicate on the "subtask_id" field.
func SubtaskIDIn(vs ...string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldIn(FieldSubtaskID, vs...))
}

// SubtaskIDNotIn applies the NotIn predicate on the "subtask_id" field.
func SubtaskIDNotIn(vs ...string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNotIn(FieldSubtaskID, vs...))
}

// SubtaskIDGT applies the GT predicate on the "subtask_id" field.
func SubtaskIDGT(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldGT(FieldSubtaskID, v))
}

// SubtaskIDGTE applies the GTE predicate on the "subtask_id" field.
func SubtaskIDGTE(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldGTE(FieldSubtaskID, v))
}

// SubtaskIDLT applies the LT predicate on the "subtask_id" field.
func SubtaskIDLT(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldLT(FieldSubtaskID, v))
}

// SubtaskIDLTE applies the LTE predicate on the "subtask_id" field.
func SubtaskIDLTE(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldLTE(FieldSubtaskID, v))
}

// SubtaskIDContains applies the Contains predicate on the "subtask_id" field.
func SubtaskIDContains(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldContains(FieldSubtaskID, v))
}

// SubtaskIDHasPrefix applies the HasPrefix predicate on the "subtask_id" field.
func SubtaskIDHasPrefix(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldHasPrefix(FieldSubtaskID, v))
}

// SubtaskIDHasSuffix applies the HasSuffix predicate on the "subtask_id" field.
func SubtaskIDHasSuffix(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldHasSuffix(FieldSubtaskID, v))
}

// SubtaskIDIsNil applies the IsNil predicate on the "subtask_id" field.
func SubtaskIDIsNil() predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldIsNull(FieldSubtaskID))
}

// SubtaskIDNotNil applies the NotNil predicate on the "subtask_id" field.
func SubtaskIDNotNil() predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNotNull(FieldSubtaskID))
}

// SubtaskIDEqualFold applies the EqualFold predicate on the "subtask_id" field.
func SubtaskIDEqualFold(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEqualFold(FieldSubtaskID, v))
}

// SubtaskIDContainsFold applies the ContainsFold predicate on the "subtask_id" field.
func SubtaskIDContainsFold(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldContainsFold(FieldSubtaskID, v))
}

// ParentSessionIDEQ applies the EQ predicate on the "parent_session_id" field.
func ParentSessionIDEQ(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldParentSessionID, v))
}

// ParentSessionIDNEQ applies the NEQ predicate on the "parent_session_id" field.
func ParentSessionIDNEQ(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNEQ(FieldParentSessionID, v))
}

// ParentSessionIDIn applies the In predicate on the "parent_session_id" field.
func ParentSessionIDIn(vs ...string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldIn(FieldParentSessionID, vs...))
}

// ParentSessionIDNotIn applies the NotIn predicate on the "parent_session_id" field.
func ParentSessionIDNotIn(vs ...string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNotIn(FieldParentSessionID, vs...))
}

// ParentSessionIDGT applies the GT predicate on the "parent_session_id" field.
func ParentSessionIDGT(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldGT(FieldParentSessionID, v))
}

// ParentSessionIDGTE applies the GTE predicate on the "parent_session_id" field.
func ParentSessionIDGTE(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldGTE(FieldParentSessionID, v))
}

// ParentSessionIDLT applies the LT predicate on the "parent_session_id" field.
func ParentSessionIDLT(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldLT(FieldParentSessionID, v))
}

// ParentSessionIDLTE applies the LTE predicate on the "parent_session_id" field.
func ParentSessionIDLTE(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldLTE(FieldParentSessionID, v))
}

// ParentSessionIDContains applies the Contains predicate on the "parent_session_id" field.
func ParentSessionIDContains(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldContains(FieldParentSessionID, v))
}

// ParentSessionIDHasPrefix applies the HasPrefix predicate on the "parent_session_id" field.
func ParentSessionIDHasPrefix(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldHasPrefix(FieldParentSessionID, v))
}

// ParentSessionIDHasSuffix applies the HasSuffix predicate on the "parent_session_id" field.
func ParentSessionIDHasSuffix(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldHasSuffix(FieldParentSessionID, v))
}

// ParentSessionIDIsNil applies the IsNil predicate on the "parent_session_id" field.
func ParentSessionIDIsNil() predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldIsNull(FieldParentSessionID))
}

// ParentSessionIDNotNil applies the NotNil predicate on the "parent_session_id" field.
func ParentSessionIDNotNil() predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNotNull(FieldParentSessionID))
}

// ParentSessionIDEqualFold applies the EqualFold predicate on the "parent_session_id" field.
func ParentSessionIDEqualFold(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEqualFold(FieldParentSessionID, v))
}

// ParentSessionIDContainsFold applies the ContainsFold predicate on the "parent_session_id" field.
func ParentSessionIDContainsFold(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldContainsFold(FieldParentSessionID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.SessionMemory {
	return predicate.SessionMemory(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.SessionMemory {
	return predicate.SessionMemory(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SessionMemory) predicate.SessionMemory {
	return predicate.SessionMemory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SessionMemory) predicate.SessionMemory {
	return predicate.SessionMemory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SessionMemory) predicate.SessionMemory {
	return predicate.SessionMemory(sql.NotPredicates(p))
}
