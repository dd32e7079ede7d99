package formatter

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/atelier/internal/domain"
	"github.com/stretchr/testify/assert"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape codes so assertions are terminal-independent.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func TestRelativeDateFrom(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"today", now, "Today"},
		{"tomorrow", now.Add(24 * time.Hour), "Tomorrow"},
		{"yesterday", now.Add(-24 * time.Hour), "Yesterday"},
		{"3 days future", now.Add(3 * 24 * time.Hour), "In 3d"},
		{"3 days past", now.Add(-3 * 24 * time.Hour), "3d ago"},
		{"3 weeks future", now.Add(21 * 24 * time.Hour), "In 3w"},
		{"3 months future", now.Add(90 * 24 * time.Hour), "In 3mo"},
		{"2 weeks past", now.Add(-14 * 24 * time.Hour), "2w ago"},
		{"3 months past", now.Add(-90 * 24 * time.Hour), "3mo ago"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeDateFrom(tt.input, now))
		})
	}
}

func TestDueLabel(t *testing.T) {
	tests := []struct {
		name   string
		due    string
		status domain.Status
		want   string
	}{
		{"no date", "", domain.StatusPending, "--"},
		{"unparseable", "next spring", domain.StatusPending, "next spring"},
		{"overdue", "2025-06-01", domain.StatusPending, "2w ago"},
		{"upcoming", "2025-06-20", domain.StatusInProgress, "In 5d"},
		{"closed", "2025-06-01", domain.StatusCompleted, "2w ago"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripANSI(DueLabel(tt.due, tt.status, testNow)))
		})
	}
}

func TestStatusPill(t *testing.T) {
	tests := []struct {
		status   domain.Status
		contains string
	}{
		{domain.StatusPending, "Todo"},
		{domain.StatusInProgress, "In progress"},
		{domain.StatusBlocked, "Blocked"},
		{domain.StatusCompleted, "Done"},
		{domain.StatusCancelled, "Cancelled"},
		{domain.Status("ODD"), "ODD"},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Contains(t, StatusPill(tt.status), tt.contains)
		})
	}
}

func TestBucketLabel(t *testing.T) {
	assert.Equal(t, "Key partners", BucketLabel(domain.BucketKeyPartners))
	assert.Equal(t, "Customer relationships", BucketLabel(domain.BucketCustomerRelationship))
	assert.Equal(t, "", BucketLabel(""))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "1200 EUR", FormatMoney(1200, "EUR"))
	assert.Equal(t, "87.50 CHF", FormatMoney(87.5, "CHF"))
	assert.Equal(t, "90", FormatMoney(90, ""))
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "0h", FormatHours(0))
	assert.Equal(t, "6h", FormatHours(6))
	assert.Equal(t, "2.5h", FormatHours(2.5))
}

func TestLevelIndicator(t *testing.T) {
	assert.Contains(t, LevelIndicator(domain.LevelVeryHigh), "VERY HIGH")
	assert.Contains(t, LevelIndicator(domain.LevelLow), "LOW")
	assert.Equal(t, "--", stripANSI(LevelIndicator("")))
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := stripANSI(Table{
		Headers:    []string{"NAME", "AMOUNT"},
		Rows:       [][]string{{"Audit", "900"}, {"Support retainer", "75"}},
		RightAlign: []bool{false, true},
	}.Render())

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, "NAME              AMOUNT", lines[0])
	assert.Equal(t, "Audit                900", lines[2])
	assert.Equal(t, "Support retainer      75", lines[3])
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}

func TestRenderTree(t *testing.T) {
	out := stripANSI(RenderTree([]TreeItem{
		{Title: "Launch", Detail: "1/2"},
		{Title: "Write copy", Level: 1, Status: domain.StatusCompleted},
		{Title: "Publish", Level: 1, IsLast: true, Status: domain.StatusInProgress},
	}))

	assert.Contains(t, out, "├─ ✔ Write copy")
	assert.Contains(t, out, "└─ ▶ Publish")
	assert.Contains(t, out, "[ 1/2 ]")
	assert.Empty(t, RenderTree(nil))
}
