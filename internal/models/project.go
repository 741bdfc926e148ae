package models

// ProjectStatus values accepted by the backend.
type ProjectStatus string

const (
	ProjectNotStarted ProjectStatus = "NOT_STARTED"
	ProjectInProgress ProjectStatus = "IN_PROGRESS"
	ProjectCompleted  ProjectStatus = "COMPLETED"
)

// Valid reports whether s is a status the backend accepts.
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectNotStarted, ProjectInProgress, ProjectCompleted:
		return true
	}
	return false
}

// Project is a transient copy of a backend project. The client never caches
// these across fetches; every list render is a full replace.
type Project struct {
	ID          int64         `json:"id,omitempty"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Status      ProjectStatus `json:"status"`
	EndDate     string        `json:"endDate"` // yyyy-mm-dd, as the backend serializes LocalDate
}
