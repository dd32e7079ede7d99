package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/alexanderramin/atelier/internal/codes"
	"github.com/alexanderramin/atelier/internal/domain"
	"github.com/spf13/cobra"
)

const planFlag = "plan"

// planRef returns the --plan value, which defaults to the configured plan.
// An empty ref is reported by the service layer.
func planRef(cmd *cobra.Command) string {
	ref, _ := cmd.Flags().GetString(planFlag)
	return strings.TrimSpace(ref)
}

// parseStatus accepts any recognized status code or synonym, e.g. "done",
// "en cours" or "in-progress". Unknown input is rejected rather than
// silently mapped to the default.
func parseStatus(s string) (domain.Status, error) {
	if !codes.Known(codes.FamilyStatus, s) {
		valid := codes.Canonical(codes.FamilyStatus)
		slices.Sort(valid)
		return "", fmt.Errorf("unknown status %q (use one of: %s)", s, strings.Join(valid, ", "))
	}
	return codes.ParseStatus(s), nil
}
