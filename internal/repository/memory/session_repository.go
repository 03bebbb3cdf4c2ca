package memory

import (
	"time"

	"github.com/kuldeepak/Kellerfensteronline/pkg/configurator"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps in-progress configurator sessions in memory.
// A session is ephemeral and client-resumable through its permalink, so
// losing the cache only costs the shopper a reload from the URL.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	c := cache.New(ttl, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session configurator.Session) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (configurator.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(configurator.Session), true
	}
	return configurator.Session{}, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
