package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/atelier/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// RelativeDateFrom returns a short relative date such as "In 3d" or "2w ago".
func RelativeDateFrom(t time.Time, now time.Time) string {
	days := int(math.Round(t.Sub(now).Hours() / 24))

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0 && days < 14:
		return fmt.Sprintf("In %dd", days)
	case days > 0 && days < 60:
		return fmt.Sprintf("In %dw", days/7)
	case days > 0:
		return fmt.Sprintf("In %dmo", days/30)
	case days > -14:
		return fmt.Sprintf("%dd ago", -days)
	case days > -60:
		return fmt.Sprintf("%dw ago", -days/7)
	default:
		return fmt.Sprintf("%dmo ago", -days/30)
	}
}

// DueLabel renders a stored due date relative to now. Late work is red,
// work due within a week is yellow. Unparseable dates are shown verbatim.
func DueLabel(due string, status domain.Status, now time.Time) string {
	if due == "" {
		return Dim("--")
	}
	t, ok := domain.ParseDate(due)
	if !ok {
		return StyleFg.Render(due)
	}
	text := RelativeDateFrom(t, now)
	if status.IsClosed() {
		return Dim(text)
	}
	days := t.Sub(now).Hours() / 24
	switch {
	case days < 0:
		return StyleRed.Render(text)
	case days <= 7:
		return StyleYellow.Render(text)
	}
	return StyleFg.Render(text)
}

// StatusPill returns a colored indicator for a milestone or task status.
func StatusPill(status domain.Status) string {
	switch status {
	case domain.StatusPending:
		return StyleBlue.Render("○ Todo")
	case domain.StatusInProgress:
		return StyleGreen.Render("● In progress")
	case domain.StatusBlocked:
		return StyleRed.Render("■ Blocked")
	case domain.StatusCompleted:
		return StyleDim.Render("✔ Done")
	case domain.StatusCancelled:
		return StyleDim.Render("✖ Cancelled")
	default:
		return StyleDim.Render(string(status))
	}
}

// PriorityBadge returns a short priority label; MEDIUM is left quiet.
func PriorityBadge(p domain.Priority) string {
	switch p {
	case domain.PriorityUrgent:
		return StyleRed.Render("!! urgent")
	case domain.PriorityHigh:
		return StyleYellow.Render("! high")
	case domain.PriorityLow:
		return Dim("low")
	}
	return Dim("medium")
}

// BucketLabel turns a canvas bucket code into a title, e.g. "Key partners".
func BucketLabel(b domain.CanvasBucket) string {
	s := strings.ToLower(strings.ReplaceAll(string(b), "_", " "))
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatMoney renders an amount with two decimals and its currency code.
// Whole amounts drop the decimals.
func FormatMoney(amount float64, currency string) string {
	s := fmt.Sprintf("%.2f", amount)
	if amount == math.Trunc(amount) {
		s = fmt.Sprintf("%.0f", amount)
	}
	if currency == "" {
		return s
	}
	return s + " " + currency
}

// FormatHours renders an hour count, e.g. "6h" or "2.5h".
func FormatHours(h float64) string {
	if h <= 0 {
		return "0h"
	}
	if h == math.Trunc(h) {
		return fmt.Sprintf("%.0fh", h)
	}
	return fmt.Sprintf("%.1fh", h)
}
