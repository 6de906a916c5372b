package domain

import (
	"fmt"
	"themepark/pkg/serrors"

	"github.com/google/uuid"
)

// AttractionID uniquely identifies an attraction.
type AttractionID uuid.UUID

func (id AttractionID) String() string { return uuid.UUID(id).String() }

// AttractionStatus is either Open or Closed.
type AttractionStatus string

const (
	// AttractionOpen means the attraction starts when asked to.
	AttractionOpen AttractionStatus = "Open"
	// AttractionClosed is the status of every new attraction.
	AttractionClosed AttractionStatus = "Closed"
)

// AttractionKind tells the ride variants apart.
type AttractionKind string

const (
	// KindGeneric is a plain attraction. It has no eligibility rule.
	KindGeneric AttractionKind = "attraction"
	// KindThrill is a ride gated on the rider's height.
	KindThrill AttractionKind = "thrill"
	// KindFamily is a ride gated on the rider's age.
	KindFamily AttractionKind = "family"
)

// Rider is what an eligibility rule may inspect about a visitor.
type Rider interface {
	Height() float64
	Age() int
}

// EligibilityRule decides whether a rider may board.
type EligibilityRule func(r Rider) bool

// Attraction is a park installation. The ride variants are attractions
// built by NewThrillRide and NewFamilyRide, which set the kind and the
// eligibility rule. Capacity is informational only.
type Attraction struct {
	id       AttractionID
	name     string
	capacity int
	status   AttractionStatus
	kind     AttractionKind
	rule     EligibilityRule
}

// NewAttraction returns a closed generic attraction.
func NewAttraction(name string, capacity int) *Attraction {
	return newAttraction(name, capacity, KindGeneric, nil)
}

// NewThrillRide returns a closed ride that admits riders at least
// minHeight tall.
func NewThrillRide(name string, capacity int, minHeight float64) *Attraction {
	return newAttraction(name, capacity, KindThrill, func(r Rider) bool {
		return r.Height() >= minHeight
	})
}

// NewFamilyRide returns a closed ride that admits riders at least minAge
// years old.
func NewFamilyRide(name string, capacity int, minAge int) *Attraction {
	return newAttraction(name, capacity, KindFamily, func(r Rider) bool {
		return r.Age() >= minAge
	})
}

func newAttraction(name string, capacity int, kind AttractionKind, rule EligibilityRule) *Attraction {
	return &Attraction{
		id:       AttractionID(uuid.New()),
		name:     name,
		capacity: capacity,
		status:   AttractionClosed,
		kind:     kind,
		rule:     rule,
	}
}

// ID returns the attraction's identifier.
func (a *Attraction) ID() AttractionID { return a.id }

// Name returns the attraction's name.
func (a *Attraction) Name() string { return a.name }

// Capacity returns the stored capacity. Nothing enforces it.
func (a *Attraction) Capacity() int { return a.capacity }

// Status returns Open or Closed.
func (a *Attraction) Status() AttractionStatus { return a.status }

// Kind returns the ride variant.
func (a *Attraction) Kind() AttractionKind { return a.kind }

// IsOpen reports whether the status is Open.
func (a *Attraction) IsOpen() bool { return a.status == AttractionOpen }

// Open sets the status to Open.
func (a *Attraction) Open() { a.status = AttractionOpen }

// Close sets the status to Closed.
func (a *Attraction) Close() { a.status = AttractionClosed }

// Details is the one-line description announced by Describe.
func (a *Attraction) Details() string {
	return fmt.Sprintf("Attraction: %s, Capacity: %d, Status: %s", a.name, a.capacity, a.status)
}

// Describe announces Details.
func (a *Attraction) Describe(out Announcer) {
	out.Announce(a.Details())
}

// StartMessage is what Start announces for the current status. A closed
// attraction reports that it is closed; that is not an error.
func (a *Attraction) StartMessage() string {
	open := a.IsOpen()

	switch a.kind {
	case KindThrill:
		if open {
			return fmt.Sprintf("Thrill Ride %s is now starting. Hold on Tight!", a.name)
		}

		return fmt.Sprintf("Thrill Ride %s is closed.", a.name)
	case KindFamily:
		if open {
			return fmt.Sprintf("Family Ride %s is now starting. Enjoy the Fun!", a.name)
		}

		return fmt.Sprintf("Family Ride %s is closed.", a.name)
	default:
		if open {
			return "The attraction is Starting"
		}

		return "The attraction is closed and cannot start."
	}
}

// Start announces StartMessage.
func (a *Attraction) Start(out Announcer) {
	out.Announce(a.StartMessage())
}

// IsEligible applies the attraction's rule to r. A generic attraction has
// no rule and returns an error of kind serrors.ErrFailedPrecondition.
func (a *Attraction) IsEligible(r Rider) (bool, error) {
	if a.rule == nil {
		return false, serrors.With(serrors.ErrFailedPrecondition,
			"attraction %q of kind %s has no eligibility rule", a.name, a.kind)
	}

	return a.rule(r), nil
}
