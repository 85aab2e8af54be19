// Code generated by ent, DO NOT EDIT.

package staticmemory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/coderelay-ai/coderelay/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldContainsFold(FieldID, id))
}

// AgentInstructions applies equality check predicate on the "agent_instructions" field. It's identical to AgentInstructionsEQ.
func AgentInstructions(v string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldEQ(FieldAgentInstructions, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldEQ(FieldUpdatedAt, v))
}

// AgentInstructionsEQ applies the EQ predicate on the "agent_instructions" field.
func AgentInstructionsEQ(v string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldEQ(FieldAgentInstructions, v))
}

// AgentInstructionsNEQ applies the NEQ predicate on the "agent_instructions" field.
func AgentInstructionsNEQ(v string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldNEQ(FieldAgentInstructions, v))
}

// AgentInstructionsIn applies the In predicate on the "agent_instructions" field.
func AgentInstructionsIn(vs ...string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldIn(FieldAgentInstructions, vs...))
}

// AgentInstructionsNotIn applies the NotIn predicate on the "agent_instructions" field.
func AgentInstructionsNotIn(vs ...string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldNotIn(FieldAgentInstructions, vs...))
}

// AgentInstructionsGT applies the GT predicate on the "agent_instructions" field.
func AgentInstructionsGT(v string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldGT(FieldAgentInstructions, v))
}

// AgentInstructionsGTE applies the GTE predicate on the "agent_instructions" field.
func AgentInstructionsGTE(v string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldGTE(FieldAgentInstructions, v))
}

// AgentInstructionsLT applies the LT predicate on the "agent_instructions" field.
func AgentInstructionsLT(v string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldLT(FieldAgentInstructions, v))
}

// AgentInstructionsLTE applies the LTE predicate on the "agent_instructions" field.
func AgentInstructionsLTE(v string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldLTE(FieldAgentInstructions, v))
}

// AgentInstructionsContains applies the Contains predicate on the "agent_instructions" field.
func AgentInstructionsContains(v string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldContains(FieldAgentInstructions, v))
}

// AgentInstructionsHasPrefix applies the HasPrefix predicate on the "agent_instructions" field.
func AgentInstructionsHasPrefix(v string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldHasPrefix(FieldAgentInstructions, v))
}

// AgentInstructionsHasSuffix applies the HasSuffix predicate on the "agent_instructions" field.
func AgentInstructionsHasSuffix(v string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldHasSuffix(FieldAgentInstructions, v))
}

// AgentInstructionsIsNil applies the IsNil predicate on the "agent_instructions" field.
func AgentInstructionsIsNil() predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldIsNull(FieldAgentInstructions))
}

// AgentInstructionsNotNil applies the NotNil predicate on the "agent_instructions" field.
func AgentInstructionsNotNil() predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldNotNull(FieldAgentInstructions))
}

// AgentInstructionsEqualFold applies the EqualFold predicate on the "agent_instructions" field.
func AgentInstructionsEqualFold(v string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldEqualFold(FieldAgentInstructions, v))
}

// AgentInstructionsContainsFold applies the ContainsFold predicate on the "agent_instructions" field.
func AgentInstructionsContainsFold(v string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldContainsFold(FieldAgentInstructions, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StaticMemory) predicate.StaticMemory {
	return predicate.StaticMemory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StaticMemory) predicate.StaticMemory {
	return predicate.StaticMemory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StaticMemory) predicate.StaticMemory {
	return predicate.StaticMemory(sql.NotPredicates(p))
}
