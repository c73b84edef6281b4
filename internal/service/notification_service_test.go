package service

import (
	"testing"

	"github.com/dellis317/provocations/pkg/events"

	"github.com/stretchr/testify/assert"
)

func TestRenderNotificationKnownEvents(t *testing.T) {
	userID := "6f1f6f1c-0000-0000-0000-000000000001"
	docID := "6f1f6f1c-0000-0000-0000-000000000002"

	title, message := renderNotification(events.NewDocumentEvolved(userID, docID, "tighten intro", "Condensed the introduction", 4))
	assert.Equal(t, "Document evolved", title)
	assert.Equal(t, "Condensed the introduction", message)

	title, _ = renderNotification(events.NewAnalysisCompleted(userID, docID, 6))
	assert.Equal(t, "Analysis complete", title)

	title, message = renderNotification(events.NewReferenceUploaded(userID, docID, "Brand voice", "style"))
	assert.Equal(t, "Reference uploaded", title)
	assert.Contains(t, message, "Brand voice")
}

func TestRenderNotificationUnknownEventIsSilent(t *testing.T) {
	ev := events.BaseEvent{Type: "SOMETHING_ELSE"}
	title, message := renderNotification(ev)
	assert.Empty(t, title)
	assert.Empty(t, message)
}
