// Package record defines the storage-facing shapes of every tracked entity.
//
// Fields are optional: a record may come from an older client, a hand-edited
// import file, or a partial save. Legacy aliases are listed next to the field
// they stand in for and are only ever read, never written.
package record

// Keyed is implemented by every record that lives in an identity-keyed
// collection.
type Keyed interface {
	Key() string
}

type Milestone struct {
	ID                 string   `json:"id,omitempty"`
	Title              *string  `json:"title,omitempty"`
	Name               *string  `json:"name,omitempty"` // legacy title
	Description        *string  `json:"description,omitempty"`
	Category           *string  `json:"category,omitempty"`
	Type               *string  `json:"type,omitempty"` // legacy category
	Status             *string  `json:"status,omitempty"`
	IsCompleted        *bool    `json:"isCompleted,omitempty"`
	Completed          *bool    `json:"completed,omitempty"` // legacy isCompleted
	Progress           *float64 `json:"progress,omitempty"`
	DueDate            *string  `json:"dueDate,omitempty"`
	TargetDate         *string  `json:"targetDate,omitempty"` // legacy dueDate
	Deadline           *string  `json:"deadline,omitempty"`   // legacy dueDate
	TaskCount          *int     `json:"taskCount,omitempty"`
	CompletedTaskCount *int     `json:"completedTaskCount,omitempty"`
	CreatedAt          *string  `json:"createdAt,omitempty"`
	UpdatedAt          *string  `json:"updatedAt,omitempty"`
}

func (m Milestone) Key() string { return m.ID }

type Comment struct {
	ID        string  `json:"id,omitempty"`
	Author    *string `json:"author,omitempty"`
	User      *string `json:"user,omitempty"` // legacy author
	Content   *string `json:"content,omitempty"`
	Text      *string `json:"text,omitempty"` // legacy content
	CreatedAt *string `json:"createdAt,omitempty"`
	Timestamp *string `json:"timestamp,omitempty"` // legacy createdAt
}

type SubTask struct {
	ID        string  `json:"id,omitempty"`
	Title     *string `json:"title,omitempty"`
	Name      *string `json:"name,omitempty"` // legacy title
	Status    *string `json:"status,omitempty"`
	Completed *bool   `json:"completed,omitempty"` // legacy status
	Assignee  *string `json:"assignee,omitempty"`
	DueDate   *string `json:"dueDate,omitempty"`
	CreatedAt *string `json:"createdAt,omitempty"`
	UpdatedAt *string `json:"updatedAt,omitempty"`
}

type Task struct {
	ID                string    `json:"id,omitempty"`
	Title             *string   `json:"title,omitempty"`
	Name              *string   `json:"name,omitempty"` // legacy title
	Description       *string   `json:"description,omitempty"`
	Priority          *string   `json:"priority,omitempty"`
	Status            *string   `json:"status,omitempty"`
	Completed         *bool     `json:"completed,omitempty"` // legacy status
	Assignee          *string   `json:"assignee,omitempty"`
	AssignedTo        *string   `json:"assignedTo,omitempty"` // legacy assignee
	MilestoneID       *string   `json:"milestoneId,omitempty"`
	LegacyMilestoneID *string   `json:"milestone_id,omitempty"` // legacy milestoneId
	DueDate           *string   `json:"dueDate,omitempty"`
	Deadline          *string   `json:"deadline,omitempty"` // legacy dueDate
	EstimatedHours    *float64  `json:"estimatedHours,omitempty"`
	EstimatedTime     *float64  `json:"estimatedTime,omitempty"` // legacy estimatedHours
	ActualHours       *float64  `json:"actualHours,omitempty"`
	Dependencies      []string  `json:"dependencies,omitempty"`
	DependsOn         []string  `json:"dependsOn,omitempty"` // legacy dependencies
	Tags              []string  `json:"tags,omitempty"`
	Labels            []string  `json:"labels,omitempty"` // legacy tags
	Comments          []Comment `json:"comments,omitempty"`
	SubTasks          []SubTask `json:"subTasks,omitempty"`
	LegacySubTasks    []SubTask `json:"subtasks,omitempty"` // legacy subTasks
	CreatedAt         *string   `json:"createdAt,omitempty"`
	UpdatedAt         *string   `json:"updatedAt,omitempty"`
	CompletedAt       *string   `json:"completedAt,omitempty"`
}

func (t Task) Key() string { return t.ID }

// ParentKey returns the referenced milestone id, preferring milestoneId.
func (t Task) ParentKey() string {
	if t.MilestoneID != nil && *t.MilestoneID != "" {
		return *t.MilestoneID
	}
	if t.LegacyMilestoneID != nil {
		return *t.LegacyMilestoneID
	}
	return ""
}

type CanvasItem struct {
	ID          string  `json:"id,omitempty"`
	Bucket      *string `json:"bucket,omitempty"`
	Section     *string `json:"section,omitempty"` // legacy bucket
	Name        *string `json:"name,omitempty"`
	Title       *string `json:"title,omitempty"` // legacy name
	Description *string `json:"description,omitempty"`
	Content     *string `json:"content,omitempty"` // legacy description
	Priority    *string `json:"priority,omitempty"`
	CreatedAt   *string `json:"createdAt,omitempty"`
	UpdatedAt   *string `json:"updatedAt,omitempty"`
}

func (c CanvasItem) Key() string { return c.ID }

type PricingEntry struct {
	ID            string   `json:"id,omitempty"`
	Kind          *string  `json:"kind,omitempty"`
	Type          *string  `json:"type,omitempty"` // legacy kind
	Name          *string  `json:"name,omitempty"`
	Title         *string  `json:"title,omitempty"` // legacy name
	Description   *string  `json:"description,omitempty"`
	Currency      *string  `json:"currency,omitempty"`
	HourlyRate    *float64 `json:"hourlyRate,omitempty"`
	Rate          *float64 `json:"rate,omitempty"` // legacy hourlyRate
	Price         *float64 `json:"price,omitempty"`
	Amount        *float64 `json:"amount,omitempty"` // legacy price
	Hours         *float64 `json:"hours,omitempty"`
	BillingPeriod *string  `json:"billingPeriod,omitempty"`
	Period        *string  `json:"period,omitempty"` // legacy billingPeriod
	MinPrice      *float64 `json:"minPrice,omitempty"`
	MaxPrice      *float64 `json:"maxPrice,omitempty"`
	Deliverables  []string `json:"deliverables,omitempty"`
	Includes      []string `json:"includes,omitempty"` // legacy deliverables
	CreatedAt     *string  `json:"createdAt,omitempty"`
	UpdatedAt     *string  `json:"updatedAt,omitempty"`
}

func (p PricingEntry) Key() string { return p.ID }

type CustomerSegment struct {
	ID             string   `json:"id,omitempty"`
	Name           *string  `json:"name,omitempty"`
	Title          *string  `json:"title,omitempty"` // legacy name
	Description    *string  `json:"description,omitempty"`
	Size           *string  `json:"size,omitempty"`
	MarketSize     *string  `json:"marketSize,omitempty"` // legacy size
	Needs          []string `json:"needs,omitempty"`
	Problems       []string `json:"problems,omitempty"` // legacy needs
	Potential      *string  `json:"potential,omitempty"`
	PotentialLevel *string  `json:"potentialLevel,omitempty"` // legacy potential
	CreatedAt      *string  `json:"createdAt,omitempty"`
	UpdatedAt      *string  `json:"updatedAt,omitempty"`
}

func (s CustomerSegment) Key() string { return s.ID }

type Competitor struct {
	ID          string   `json:"id,omitempty"`
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Website     *string  `json:"website,omitempty"`
	URL         *string  `json:"url,omitempty"` // legacy website
	Strengths   []string `json:"strengths,omitempty"`
	Weaknesses  []string `json:"weaknesses,omitempty"`
	ThreatLevel *string  `json:"threatLevel,omitempty"`
	Threat      *string  `json:"threat,omitempty"` // legacy threatLevel
	Evaluation  *string  `json:"evaluation,omitempty"`
	Rating      *string  `json:"rating,omitempty"` // legacy evaluation
	CreatedAt   *string  `json:"createdAt,omitempty"`
	UpdatedAt   *string  `json:"updatedAt,omitempty"`
}

func (c Competitor) Key() string { return c.ID }

type Opportunity struct {
	ID             string  `json:"id,omitempty"`
	Title          *string `json:"title,omitempty"`
	Name           *string `json:"name,omitempty"` // legacy title
	Description    *string `json:"description,omitempty"`
	Potential      *string `json:"potential,omitempty"`
	PotentialLevel *string `json:"potentialLevel,omitempty"` // legacy potential
	RiskLevel      *string `json:"riskLevel,omitempty"`
	Risk           *string `json:"risk,omitempty"` // legacy riskLevel
	CreatedAt      *string `json:"createdAt,omitempty"`
	UpdatedAt      *string `json:"updatedAt,omitempty"`
}

func (o Opportunity) Key() string { return o.ID }

type Trend struct {
	ID          string  `json:"id,omitempty"`
	Title       *string `json:"title,omitempty"`
	Name        *string `json:"name,omitempty"` // legacy title
	Description *string `json:"description,omitempty"`
	Impact      *string `json:"impact,omitempty"`
	ImpactLevel *string `json:"impactLevel,omitempty"` // legacy impact
	Source      *string `json:"source,omitempty"`
	CreatedAt   *string `json:"createdAt,omitempty"`
	UpdatedAt   *string `json:"updatedAt,omitempty"`
}

func (t Trend) Key() string { return t.ID }

type Incident struct {
	ID           string   `json:"id,omitempty"`
	Type         *string  `json:"type,omitempty"`
	IncidentType *string  `json:"incidentType,omitempty"` // legacy type
	Description  *string  `json:"description,omitempty"`
	Date         *string  `json:"date,omitempty"`
	OccurredAt   *string  `json:"occurredAt,omitempty"` // legacy date
	DueDate      *string  `json:"dueDate,omitempty"`
	Amount       *float64 `json:"amount,omitempty"`
	Resolved     *bool    `json:"resolved,omitempty"`
	Status       *string  `json:"status,omitempty"` // legacy resolved ("resolved"/"open")
	ResolvedAt   *string  `json:"resolvedAt,omitempty"`
}

type RiskClient struct {
	ID         string     `json:"id,omitempty"`
	Name       *string    `json:"name,omitempty"`
	ClientName *string    `json:"clientName,omitempty"` // legacy name
	Company    *string    `json:"company,omitempty"`
	Email      *string    `json:"email,omitempty"`
	Phone      *string    `json:"phone,omitempty"`
	RiskLevel  *string    `json:"riskLevel,omitempty"`
	Risk       *string    `json:"risk,omitempty"` // legacy riskLevel
	Notes      *string    `json:"notes,omitempty"`
	Incidents  []Incident `json:"incidents,omitempty"`
	CreatedAt  *string    `json:"createdAt,omitempty"`
	UpdatedAt  *string    `json:"updatedAt,omitempty"`
}

func (c RiskClient) Key() string { return c.ID }
