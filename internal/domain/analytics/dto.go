package analytics

// PriorityBreakdown counts tasks per priority.
type PriorityBreakdown struct {
	Low    int64 `json:"low"`
	Medium int64 `json:"medium"`
	High   int64 `json:"high"`
}

// Summary is the dashboard roll-up over employees and tasks.
type Summary struct {
	TotalEmployees    int64             `json:"total_employees"`
	ActiveEmployees   int64             `json:"active_employees"`
	TotalTasks        int64             `json:"total_tasks"`
	CompletedTasks    int64             `json:"completed_tasks"`
	OverdueTasks      int64             `json:"overdue_tasks"`
	PriorityBreakdown PriorityBreakdown `json:"priority_breakdown"`
}
