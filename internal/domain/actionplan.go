package domain

import "time"

type Milestone struct {
	ID                 string
	Title              string
	Description        string
	Category           MilestoneCategory
	Status             Status
	Progress           float64
	DueDate            string
	TaskCount          int
	CompletedTaskCount int
	CreatedAt          string
	UpdatedAt          string
	View
}

// IsCompleted reports whether the milestone is done.
func (m *Milestone) IsCompleted() bool {
	return m.Status == StatusCompleted
}

// IsLate reports whether the milestone is past due and not completed.
func (m *Milestone) IsLate(now time.Time) bool {
	return IsLate(m.DueDate, m.Status, now)
}

// Validate fills ValidationErrors for user-editable fields and reports
// whether the milestone is valid.
func (m *Milestone) Validate() bool {
	m.ValidationErrors = map[string]string{}
	if m.Title == "" {
		m.ValidationErrors["title"] = "title is required"
	}
	if m.DueDate != "" {
		if _, ok := ParseDate(m.DueDate); !ok {
			m.ValidationErrors["dueDate"] = "due date must be an ISO-8601 date"
		}
	}
	if m.Progress < 0 || m.Progress > 100 {
		m.ValidationErrors["progress"] = "progress must be between 0 and 100"
	}
	return !m.HasErrors()
}

type Comment struct {
	ID        string
	Author    string
	Content   string
	CreatedAt string
}

type SubTask struct {
	ID        string
	Title     string
	Status    Status
	Assignee  string
	DueDate   string
	CreatedAt string
	UpdatedAt string
}

type Task struct {
	ID             string
	Title          string
	Description    string
	Priority       Priority
	Status         Status
	Assignee       string
	MilestoneID    string
	DueDate        string
	EstimatedHours float64
	ActualHours    float64
	Dependencies   []string
	Tags           []string
	Comments       []Comment
	SubTasks       []SubTask
	CreatedAt      string
	UpdatedAt      string
	CompletedAt    string
	View
}

// IsCompleted reports whether the task is done.
func (t *Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// IsLate reports whether the task is past due and not completed.
func (t *Task) IsLate(now time.Time) bool {
	return IsLate(t.DueDate, t.Status, now)
}

// SubTaskProgress returns completed and total subtask counts.
func (t *Task) SubTaskProgress() (done, total int) {
	for _, s := range t.SubTasks {
		if s.Status == StatusCompleted {
			done++
		}
	}
	return done, len(t.SubTasks)
}

// SetStatus moves the task to s, stamping or clearing CompletedAt.
func (t *Task) SetStatus(s Status, now time.Time) {
	if t.Status == s {
		return
	}
	t.Status = s
	if s == StatusCompleted {
		t.CompletedAt = FormatTimestamp(now)
	} else {
		t.CompletedAt = ""
	}
}

// Validate fills ValidationErrors for user-editable fields and reports
// whether the task is valid.
func (t *Task) Validate() bool {
	t.ValidationErrors = map[string]string{}
	if t.Title == "" {
		t.ValidationErrors["title"] = "title is required"
	}
	if t.DueDate != "" {
		if _, ok := ParseDate(t.DueDate); !ok {
			t.ValidationErrors["dueDate"] = "due date must be an ISO-8601 date"
		}
	}
	if t.EstimatedHours < 0 {
		t.ValidationErrors["estimatedHours"] = "estimated hours cannot be negative"
	}
	for _, dep := range t.Dependencies {
		if dep == t.ID {
			t.ValidationErrors["dependencies"] = "task cannot depend on itself"
			break
		}
	}
	return !t.HasErrors()
}
