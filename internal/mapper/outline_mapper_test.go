package mapper

import (
	"testing"
	"time"

	"github.com/dellis317/provocations/internal/entity"
	"github.com/dellis317/provocations/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestOutlineMapperRoundTrip(t *testing.T) {
	m := NewOutlineMapper()
	updated := time.Now()

	e := &entity.OutlineItem{
		Id:         uuid.New(),
		DocumentId: uuid.New(),
		UserId:     uuid.New(),
		Title:      "Background",
		Content:    "Drafted prose",
		SortOrder:  2,
		IsExpanded: true,
		CreatedAt:  time.Now().Add(-time.Hour),
		UpdatedAt:  &updated,
	}

	got := m.ToEntity(m.ToModel(e))

	assert.Equal(t, e.Id, got.Id)
	assert.Equal(t, e.Title, got.Title)
	assert.Equal(t, e.SortOrder, got.SortOrder)
	assert.True(t, got.IsExpanded, "expansion state must survive the round trip")
	assert.NotNil(t, got.UpdatedAt)
	assert.WithinDuration(t, updated, *got.UpdatedAt, time.Second)
}

func TestOutlineMapperZeroUpdatedAtStaysNil(t *testing.T) {
	m := NewOutlineMapper()

	e := m.ToEntity(&model.OutlineItem{
		Id:         uuid.New(),
		DocumentId: uuid.New(),
		UserId:     uuid.New(),
		Title:      "Introduction",
		SortOrder:  0,
	})

	assert.Nil(t, e.UpdatedAt)
	assert.False(t, e.IsExpanded)
}

func TestOutlineMapperNilSafe(t *testing.T) {
	m := NewOutlineMapper()
	assert.Nil(t, m.ToEntity(nil))
	assert.Nil(t, m.ToModel(nil))
}
