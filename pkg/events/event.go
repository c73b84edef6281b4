package events

import "time"

// Event codes published on the workshop bus.
const (
	TypeDocumentEvolved      = "DOCUMENT_EVOLVED"
	TypeProvocationGenerated = "PROVOCATION_GENERATED"
	TypeAnalysisCompleted    = "ANALYSIS_COMPLETED"
	TypeReferenceUploaded    = "REFERENCE_UPLOADED"
)

// Event is the contract every published system event satisfies.
type Event interface {
	// EventType returns the unique code for this event (e.g. "DOCUMENT_EVOLVED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the common concrete implementation. Named constructors
// below are preferred over building it by hand.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewDocumentEvolved reports one completed evolution of a document.
func NewDocumentEvolved(userID, documentID, instruction, summary string, versionNumber int) Event {
	return BaseEvent{
		Type: TypeDocumentEvolved,
		Data: map[string]interface{}{
			"user_id":        userID,
			"document_id":    documentID,
			"instruction":    instruction,
			"summary":        summary,
			"version_number": versionNumber,
		},
		OccurredAt: time.Now(),
	}
}

// NewProvocationGenerated reports provocations minted during analysis.
func NewProvocationGenerated(userID, documentID string, count int) Event {
	return BaseEvent{
		Type: TypeProvocationGenerated,
		Data: map[string]interface{}{
			"user_id":     userID,
			"document_id": documentID,
			"count":       count,
		},
		OccurredAt: time.Now(),
	}
}

// NewAnalysisCompleted reports a finished lens+provocation analysis pass.
func NewAnalysisCompleted(userID, documentID string, lensCount int) Event {
	return BaseEvent{
		Type: TypeAnalysisCompleted,
		Data: map[string]interface{}{
			"user_id":     userID,
			"document_id": documentID,
			"lens_count":  lensCount,
		},
		OccurredAt: time.Now(),
	}
}

// NewReferenceUploaded reports a newly stored reference document.
func NewReferenceUploaded(userID, referenceID, name, refType string) Event {
	return BaseEvent{
		Type: TypeReferenceUploaded,
		Data: map[string]interface{}{
			"user_id":      userID,
			"reference_id": referenceID,
			"name":         name,
			"type":         refType,
		},
		OccurredAt: time.Now(),
	}
}
