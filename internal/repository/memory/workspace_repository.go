package memory

import (
	"time"

	"github.com/dellis317/provocations/pkg/store"

	"github.com/patrickmn/go-cache"
)

// WorkspaceRepository keeps per-document workspace sessions in memory so
// a user's active lens and tone stick between evolve requests.
type WorkspaceRepository struct {
	cache *cache.Cache
}

func NewWorkspaceRepository() *WorkspaceRepository {
	// 1h TTL, purge sweep every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &WorkspaceRepository{
		cache: c,
	}
}

func (r *WorkspaceRepository) Save(session *store.WorkspaceSession) {
	r.cache.Set(session.DocumentID, session, cache.DefaultExpiration)
}

func (r *WorkspaceRepository) Get(documentID string) (*store.WorkspaceSession, bool) {
	if x, found := r.cache.Get(documentID); found {
		return x.(*store.WorkspaceSession), true
	}
	return nil, false
}

func (r *WorkspaceRepository) Delete(documentID string) {
	r.cache.Delete(documentID)
}
