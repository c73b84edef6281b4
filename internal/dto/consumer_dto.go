package dto

import "github.com/google/uuid"

// PublishEmbedReferenceMessage is the watermill payload that queues a
// reference document for embedding.
type PublishEmbedReferenceMessage struct {
	ReferenceId uuid.UUID `json:"reference_id"`
}
