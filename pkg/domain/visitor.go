package domain

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// VisitorID uniquely identifies a visitor.
type VisitorID uuid.UUID

func (id VisitorID) String() string { return uuid.UUID(id).String() }

// Visitor is a park guest. The ride history only grows.
type Visitor struct {
	id      VisitorID
	name    string
	height  float64
	age     int
	history []string
}

// NewVisitor returns a visitor with a fresh ID and an empty ride history.
func NewVisitor(name string, height float64, age int) *Visitor {
	return &Visitor{id: VisitorID(uuid.New()), name: name, height: height, age: age}
}

// ID returns the visitor's identifier.
func (v *Visitor) ID() VisitorID { return v.id }

// Name returns the visitor's name.
func (v *Visitor) Name() string { return v.name }

// Height returns the visitor's height in centimetres. It satisfies Rider.
func (v *Visitor) Height() float64 { return v.height }

// Age returns the visitor's age in years. It satisfies Rider.
func (v *Visitor) Age() int { return v.age }

// Ride boards a if the visitor is eligible. An eligible ride is recorded
// in the history before the attraction is started, whatever its status,
// and reports true. An ineligible ride only announces the refusal.
// Attractions without an eligibility rule return an error and nothing is
// announced or recorded.
func (v *Visitor) Ride(a *Attraction, out Announcer) (bool, error) {
	eligible, err := a.IsEligible(v)
	if err != nil {
		return false, err
	}

	if !eligible {
		out.Announce(fmt.Sprintf("The Visitor %s cannot ride on %s", v.name, a.Name()))

		return false, nil
	}

	out.Announce(fmt.Sprintf("The Visitor %s is now riding on %s", v.name, a.Name()))
	v.history = append(v.history, a.Name())
	a.Start(out)

	return true, nil
}

// History returns a copy of the attraction names ridden, oldest first.
func (v *Visitor) History() []string {
	return slices.Clone(v.history)
}
