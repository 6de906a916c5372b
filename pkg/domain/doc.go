// Package domain holds the park's entities: attractions and their ride
// variants, staff and managers, and visitors with their ride history.
// Entities report what they do through an Announcer and never touch the
// process output themselves.
package domain
