// ABOUTME: Shared record plumbing for entity types
// ABOUTME: Identifiable is the contract the generic service helpers rely on

package model

// Identifiable is implemented by every list entity (pointer receiver).
// The mock collection helpers use it to find and assign record ids.
type Identifiable interface {
	RecordID() string
	AssignID(id string)
}
