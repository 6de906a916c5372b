package domain

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// StaffID uniquely identifies a staff member.
type StaffID uuid.UUID

func (id StaffID) String() string { return uuid.UUID(id).String() }

// ManagerRole is the role every Manager carries.
const ManagerRole = "Manager"

// Staff is a park worker.
type Staff struct {
	id   StaffID
	name string
	role string
}

// NewStaff returns a staff member with a fresh ID.
func NewStaff(name, role string) Staff {
	return Staff{id: StaffID(uuid.New()), name: name, role: role}
}

// ID returns the member's identifier.
func (s Staff) ID() StaffID { return s.id }

// Name returns the member's name.
func (s Staff) Name() string { return s.name }

// Role returns the member's job title.
func (s Staff) Role() string { return s.role }

// Work announces the member performing their role.
func (s Staff) Work(out Announcer) {
	out.Announce(fmt.Sprintf("Staff %s is performing their role: %s", s.name, s.role))
}

// Manager is a staff member who leads a team. Members are kept in the
// order they were added and are never removed.
type Manager struct {
	Staff

	team []Staff
}

// NewManager returns a manager with an empty team.
func NewManager(name string) *Manager {
	return &Manager{Staff: NewStaff(name, ManagerRole)}
}

// AddStaff appends s to the team. Duplicates are kept.
func (m *Manager) AddStaff(s Staff) {
	m.team = append(m.team, s)
}

// Team returns a copy of the team in insertion order.
func (m *Manager) Team() []Staff {
	return slices.Clone(m.team)
}

// TeamSummary announces one line per member in insertion order.
func (m *Manager) TeamSummary(out Announcer) {
	for _, member := range m.team {
		out.Announce(fmt.Sprintf("Name: %s, Role: %s", member.name, member.role))
	}
}
