package task

import "time"

type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusBlocked    Status = "blocked"
	StatusDone       Status = "done"
)

func ValidStatus(s Status) bool {
	return s == StatusTodo || s == StatusInProgress || s == StatusBlocked || s == StatusDone
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func ValidPriority(p Priority) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// AssigneeKind tags which collection an assignee reference points into.
// Legacy rows created before tagging carry KindUnknown and must be resolved
// through the dual-comparison fallback.
type AssigneeKind string

const (
	KindUnknown  AssigneeKind = ""
	KindEmployee AssigneeKind = "employee"
	KindUser     AssigneeKind = "user"
)

func ValidAssigneeKind(k AssigneeKind) bool {
	return k == KindUnknown || k == KindEmployee || k == KindUser
}

// SubmissionFile describes one uploaded artifact attached to a completion
// submission.
type SubmissionFile struct {
	URL          string `json:"url"`
	StorageKey   string `json:"storage_key,omitempty"`
	OriginalName string `json:"original_name"`
	FileType     string `json:"file_type"`
}

// Submission records a task completion. It is written once when the task is
// submitted; whether a second submission may overwrite it is configurable.
type Submission struct {
	Comment     string           `json:"comment"`
	Remarks     string           `json:"remarks"`
	Files       []SubmissionFile `json:"files"`
	SubmittedAt time.Time        `json:"submitted_at"`
	SubmittedBy string           `json:"submitted_by"`
}

type Task struct {
	ID          string
	Title       string
	Description string
	// AssigneeID references either an Employee or a User record; AssigneeKind
	// disambiguates for rows created after tagging was introduced.
	AssigneeID     string
	AssigneeKind   AssigneeKind
	DueDate        time.Time
	Status         Status
	Priority       Priority
	Tags           []string
	Progress       int
	CreatedBy      *string
	EstimatedHours *float64
	ActualHours    *float64
	Attachments    []string
	Submission     *Submission
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsDone reports whether the task has been completed.
func (t *Task) IsDone() bool {
	return t.Status == StatusDone
}
