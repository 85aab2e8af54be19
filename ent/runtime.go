// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/coderelay-ai/coderelay/ent/event"
	"github.com/coderelay-ai/coderelay/ent/job"
	"github.com/coderelay-ai/coderelay/ent/schema"
	"github.com/coderelay-ai/coderelay/ent/sessionmemory"
	"github.com/coderelay-ai/coderelay/ent/staticmemory"
	"github.com/coderelay-ai/coderelay/ent/task"
	"github.com/coderelay-ai/coderelay/ent/taskevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[3].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[4].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	// jobDescUpdatedAt is the schema descriptor for updated_at field.
	jobDescUpdatedAt := jobFields[5].Descriptor()
	// job.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	job.DefaultUpdatedAt = jobDescUpdatedAt.Default.(func() time.Time)
	// job.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	job.UpdateDefaultUpdatedAt = jobDescUpdatedAt.UpdateDefault.(func() time.Time)
	sessionmemoryFields := schema.SessionMemory{}.Fields()
	_ = sessionmemoryFields
	// sessionmemoryDescPhase is the schema descriptor for phase field.
	sessionmemoryDescPhase := sessionmemoryFields[2].Descriptor()
	// sessionmemory.DefaultPhase holds the default value on creation for the phase field.
	sessionmemory.DefaultPhase = sessionmemoryDescPhase.Default.(string)
	// sessionmemoryDescCreatedAt is the schema descriptor for created_at field.
	sessionmemoryDescCreatedAt := sessionmemoryFields[9].Descriptor()
	// sessionmemory.DefaultCreatedAt holds the default value on creation for the created_at field.
	sessionmemory.DefaultCreatedAt = sessionmemoryDescCreatedAt.Default.(func() time.Time)
	// sessionmemoryDescUpdatedAt is the schema descriptor for updated_at field.
	sessionmemoryDescUpdatedAt := sessionmemoryFields[10].Descriptor()
	// sessionmemory.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sessionmemory.DefaultUpdatedAt = sessionmemoryDescUpdatedAt.Default.(func() time.Time)
	// sessionmemory.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sessionmemory.UpdateDefaultUpdatedAt = sessionmemoryDescUpdatedAt.UpdateDefault.(func() time.Time)
	staticmemoryFields := schema.StaticMemory{}.Fields()
	_ = staticmemoryFields
	// staticmemoryDescCreatedAt is the schema descriptor for created_at field.
	staticmemoryDescCreatedAt := staticmemoryFields[4].Descriptor()
	// staticmemory.DefaultCreatedAt holds the default value on creation for the created_at field.
	staticmemory.DefaultCreatedAt = staticmemoryDescCreatedAt.Default.(func() time.Time)
	// staticmemoryDescUpdatedAt is the schema descriptor for updated_at field.
	staticmemoryDescUpdatedAt := staticmemoryFields[5].Descriptor()
	// staticmemory.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	staticmemory.DefaultUpdatedAt = staticmemoryDescUpdatedAt.Default.(func() time.Time)
	// staticmemory.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	staticmemory.UpdateDefaultUpdatedAt = staticmemoryDescUpdatedAt.UpdateDefault.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescAttemptCount is the schema descriptor for attempt_count field.
	taskDescAttemptCount := taskFields[8].Descriptor()
	// task.DefaultAttemptCount holds the default value on creation for the attempt_count field.
	task.DefaultAttemptCount = taskDescAttemptCount.Default.(int)
	// taskDescMaxAttempts is the schema descriptor for max_attempts field.
	taskDescMaxAttempts := taskFields[9].Descriptor()
	// task.DefaultMaxAttempts holds the default value on creation for the max_attempts field.
	task.DefaultMaxAttempts = taskDescMaxAttempts.Default.(int)
	// taskDescIsOrchestrated is the schema descriptor for is_orchestrated field.
	taskDescIsOrchestrated := taskFields[12].Descriptor()
	// task.DefaultIsOrchestrated holds the default value on creation for the is_orchestrated field.
	task.DefaultIsOrchestrated = taskDescIsOrchestrated.Default.(bool)
	// taskDescVersion is the schema descriptor for version field.
	taskDescVersion := taskFields[26].Descriptor()
	// task.DefaultVersion holds the default value on creation for the version field.
	task.DefaultVersion = taskDescVersion.Default.(int)
	// taskDescCancelRequested is the schema descriptor for cancel_requested field.
	taskDescCancelRequested := taskFields[29].Descriptor()
	// task.DefaultCancelRequested holds the default value on creation for the cancel_requested field.
	task.DefaultCancelRequested = taskDescCancelRequested.Default.(bool)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[31].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[32].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
	taskeventFields := schema.TaskEvent{}.Fields()
	_ = taskeventFields
	// taskeventDescCreatedAt is the schema descriptor for created_at field.
	taskeventDescCreatedAt := taskeventFields[8].Descriptor()
	// taskevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	taskevent.DefaultCreatedAt = taskeventDescCreatedAt.Default.(func() time.Time)
}
