package domain

// Announcer receives the human-readable lines produced by park entities.
//
//go:generate mockgen -package mockdomain -source=announcer.go -destination=mock/mockdomain.go *
type Announcer interface {
	Announce(msg string)
}
