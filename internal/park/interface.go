package park

import (
	"context"
	"themepark/pkg/domain"
)

// Operator runs park operations on behalf of a caller. Every operation is
// logged, traced and counted; announcements go to the Announcer the
// Operator was built with.
type Operator interface {
	Describe(ctx context.Context, a *domain.Attraction)
	Open(ctx context.Context, a *domain.Attraction)
	Close(ctx context.Context, a *domain.Attraction)
	Start(ctx context.Context, a *domain.Attraction)
	// Ride fails only when a has no eligibility rule.
	Ride(ctx context.Context, v *domain.Visitor, a *domain.Attraction) (bool, error)
	Work(ctx context.Context, s domain.Staff)
	Hire(ctx context.Context, m *domain.Manager, s domain.Staff)
	TeamSummary(ctx context.Context, m *domain.Manager)
	History(ctx context.Context, v *domain.Visitor) []string
}
