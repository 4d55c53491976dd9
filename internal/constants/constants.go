package constants

// Context keys
const (
	ContextKeyActorEmail = "actor_email"
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PeriodFormat is the time layout for a project's calendar period ("YYYY-MM").
const PeriodFormat = "2006-01"

// VideoStageCount is the fixed number of stages in a video pipeline.
const VideoStageCount = 5
