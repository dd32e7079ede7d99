package domain

type SwotItem struct {
	ID         string
	Content    string
	Tag        string
	Importance int
	Category   SwotCategory
}

// SwotAnalysis is derived on demand and never persisted.
type SwotAnalysis struct {
	Strengths     []SwotItem
	Weaknesses    []SwotItem
	Opportunities []SwotItem
	Threats       []SwotItem
}

// Len returns the total number of items across all four lists.
func (a SwotAnalysis) Len() int {
	return len(a.Strengths) + len(a.Weaknesses) + len(a.Opportunities) + len(a.Threats)
}
