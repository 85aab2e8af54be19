package config

import "time"

// RetentionConfig bounds how long finished work stays visible. The task
// event log is permanent; retention only soft-deletes terminal tasks
// and purges the transient NOTIFY mirror.
type RetentionConfig struct {
	// TaskRetentionDays is how long terminal tasks stay listable before
	// being soft-deleted along with their fully-terminal jobs.
	TaskRetentionDays int `yaml:"task_retention_days"`

	// EventTTL bounds the catchup window of the events NOTIFY mirror.
	// Rows older than this are purged; reconnecting clients further
	// behind must refetch state over REST.
	EventTTL time.Duration `yaml:"event_ttl"`

	// CleanupInterval is how often the retention sweep runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention policy.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		TaskRetentionDays: 30,
		EventTTL:          24 * time.Hour,
		CleanupInterval:   time.Hour,
	}
}
