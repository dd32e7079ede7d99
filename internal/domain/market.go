package domain

type CustomerSegment struct {
	ID          string
	Name        string
	Description string
	Size        string
	Needs       []string
	Potential   Level
	CreatedAt   string
	UpdatedAt   string
	View
}

type Competitor struct {
	ID          string
	Name        string
	Description string
	Website     string
	Strengths   []string
	Weaknesses  []string
	Threat      Level
	Evaluation  Evaluation
	CreatedAt   string
	UpdatedAt   string
	View
}

type Opportunity struct {
	ID          string
	Title       string
	Description string
	Potential   Level
	Risk        Level
	CreatedAt   string
	UpdatedAt   string
	View
}

type Trend struct {
	ID          string
	Title       string
	Description string
	Impact      Level
	Source      string
	CreatedAt   string
	UpdatedAt   string
	View
}
