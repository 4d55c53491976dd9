package models

type WorkStatus string

const (
	StatusNotStarted WorkStatus = "not-started"
	StatusInProgress WorkStatus = "in-progress"
	StatusComplete   WorkStatus = "complete"
)

// Valid reports whether the status is one of the three known values.
func (s WorkStatus) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusComplete:
		return true
	}
	return false
}

type TaskCategory string

const (
	CategoryPost        TaskCategory = "post"
	CategoryVideo       TaskCategory = "video"
	CategoryInfographic TaskCategory = "infographic"
	CategoryNewsletter  TaskCategory = "newsletter"
	CategoryPodcast     TaskCategory = "podcast"
)

// TaskCategories is the fixed generation order for deliverables.
var TaskCategories = []TaskCategory{
	CategoryPost,
	CategoryVideo,
	CategoryInfographic,
	CategoryNewsletter,
	CategoryPodcast,
}

// Label returns the human title prefix for generated tasks ("Post #1").
func (c TaskCategory) Label() string {
	switch c {
	case CategoryPost:
		return "Post"
	case CategoryVideo:
		return "Video"
	case CategoryInfographic:
		return "Infographic"
	case CategoryNewsletter:
		return "Newsletter"
	case CategoryPodcast:
		return "Podcast"
	default:
		return string(c)
	}
}

// Role returns the staff role qualified to work a non-video deliverable.
// Video tasks are staffed per stage, not per task.
func (c TaskCategory) Role() StaffRole {
	switch c {
	case CategoryPost, CategoryInfographic:
		return RoleDesigner
	case CategoryNewsletter:
		return RoleScriptWriter
	case CategoryPodcast:
		return RoleVoiceSpecialist
	default:
		return ""
	}
}
