// Package scenario plays the park's demo day: two rides, one visitor, one
// manager with one staff member.
package scenario

import (
	"context"
	"fmt"
	"strings"
	"themepark/internal/config"
	"themepark/internal/park"
	"themepark/pkg/domain"
)

// Cast is the set of entities a scenario acts on.
type Cast struct {
	Thrill  *domain.Attraction
	Family  *domain.Attraction
	Visitor *domain.Visitor
	Manager *domain.Manager
	Staff   domain.Staff
}

// NewCast builds fresh entities from the demo configuration.
func NewCast(d config.Demo) Cast {
	return Cast{
		Thrill:  domain.NewThrillRide(d.Thrill.Name, d.Thrill.Capacity, d.Thrill.MinHeight),
		Family:  domain.NewFamilyRide(d.Family.Name, d.Family.Capacity, d.Family.MinAge),
		Visitor: domain.NewVisitor(d.Visitor.Name, d.Visitor.Height, d.Visitor.Age),
		Manager: domain.NewManager(d.Manager.Name),
		Staff:   domain.NewStaff(d.Staff.Name, d.Staff.Role),
	}
}

// Run opens the thrill ride only, has the visitor try both rides, hires the
// staff member and prints the team summary, then announces the visitor's
// ride history. The family ride stays closed throughout.
func Run(ctx context.Context, op park.Operator, c Cast, out domain.Announcer) error {
	op.Open(ctx, c.Thrill)

	for _, a := range []*domain.Attraction{c.Thrill, c.Family} {
		if _, err := op.Ride(ctx, c.Visitor, a); err != nil {
			return fmt.Errorf("could not run scenario: %w", err)
		}
	}

	op.Hire(ctx, c.Manager, c.Staff)
	op.TeamSummary(ctx, c.Manager)

	out.Announce(FormatHistory(op.History(ctx, c.Visitor)))

	return nil
}

// Roster describes both rides and has the manager and the staff member
// report for work.
func Roster(ctx context.Context, op park.Operator, c Cast) {
	op.Describe(ctx, c.Thrill)
	op.Describe(ctx, c.Family)
	op.Work(ctx, c.Manager.Staff)
	op.Work(ctx, c.Staff)
}

// FormatHistory renders a ride history as "Ride History: [a, b]".
func FormatHistory(history []string) string {
	return "Ride History: [" + strings.Join(history, ", ") + "]"
}
