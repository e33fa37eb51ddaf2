// Package domain contains core concepts of the talk system.
// This file defines Participant entities and related invariants.
// No runtime, network, or UI logic should be added here.
package domain

import "github.com/samber/lo"

// ParticipantID is the opaque identity of one connection.
type ParticipantID string

// Participant is referenced by value everywhere: the registry owns the
// connection, turn state only keeps copies of the record.
type Participant struct {
	ID   ParticipantID `json:"id"`
	Name string        `json:"username"`
}

func IDs(participants []Participant) []ParticipantID {
	return lo.Map(participants, func(p Participant, _ int) ParticipantID {
		return p.ID
	})
}

func indexOf(participants []Participant, id ParticipantID) int {
	_, index, ok := lo.FindIndexOf(participants, func(p Participant) bool {
		return p.ID == id
	})
	if !ok {
		return -1
	}
	return index
}
