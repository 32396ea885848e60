// Package history keeps the per-template log of completed generations:
// most-recent-first, capped, persisted best-effort. The in-memory state is
// the source of truth for the session; persistence failures are logged and
// never surfaced.
package history

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sahayakai/sahayak/internal/observe"
	"github.com/sahayakai/sahayak/internal/store"
	"github.com/sahayakai/sahayak/internal/video"
)

// MaxEntriesPerTemplate caps each template's list; the oldest entry is
// evicted on overflow.
const MaxEntriesPerTemplate = 50

// Entry is a snapshot of one completed generation plus the inputs that
// produced it.
type Entry struct {
	ID                 string             `json:"id"`
	UserInput          string             `json:"userInput"`
	SecondaryUserInput string             `json:"secondaryUserInput,omitempty"`
	Response           string             `json:"response"`
	ImageURI           string             `json:"imageUrl,omitempty"`
	ImageError         string             `json:"imageError,omitempty"`
	Videos             []video.Suggestion `json:"youtubeSuggestions,omitempty"`
	Timestamp          int64              `json:"timestamp"`
}

// Store owns the per-template history lists. It is constructed per session;
// there is no package-level state.
type Store struct {
	mu      sync.Mutex
	lists   map[int][]Entry
	storage store.Storage
	obs     *observe.Observer
}

// NewStore builds a Store, loading persisted lists from storage. A storage
// read failure starts the session with empty lists.
func NewStore(storage store.Storage, obs *observe.Observer) *Store {
	s := &Store{
		lists:   make(map[int][]Entry),
		storage: storage,
		obs:     obs,
	}

	if storage == nil {
		return s
	}

	all, err := storage.LoadAllHistory()
	if err != nil {
		obs.Log().Warn().Err(err).Msg("could not load history, starting empty")
		return s
	}
	for id, payload := range all {
		var entries []Entry
		if err := json.Unmarshal(payload, &entries); err != nil {
			obs.Log().Warn().Err(err).Int("template", id).Msg("discarding unreadable history payload")
			continue
		}
		if len(entries) > MaxEntriesPerTemplate {
			entries = entries[:MaxEntriesPerTemplate]
		}
		s.lists[id] = entries
	}
	return s
}

// Append prepends the entry to the template's list, evicting beyond the cap,
// and persists the list best-effort. Missing ID and timestamp are filled in.
func (s *Store) Append(templateID int, e Entry) Entry {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Timestamp == 0 {
		e.Timestamp = time.Now().UnixMilli()
	}

	s.mu.Lock()
	list := append([]Entry{e}, s.lists[templateID]...)
	if len(list) > MaxEntriesPerTemplate {
		list = list[:MaxEntriesPerTemplate]
	}
	s.lists[templateID] = list
	snapshot := make([]Entry, len(list))
	copy(snapshot, list)
	s.mu.Unlock()

	s.persist(templateID, snapshot)
	return e
}

// List returns the template's entries, most recent first.
func (s *Store) List(templateID int) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.lists[templateID]
	out := make([]Entry, len(list))
	copy(out, list)
	return out
}

// Clear removes the template's entire list.
func (s *Store) Clear(templateID int) {
	s.mu.Lock()
	delete(s.lists, templateID)
	s.mu.Unlock()

	if s.storage == nil {
		return
	}
	if err := s.storage.DeleteHistory(templateID); err != nil {
		s.obs.Log().Warn().Err(err).Int("template", templateID).Msg("could not clear persisted history")
	}
}

func (s *Store) persist(templateID int, entries []Entry) {
	if s.storage == nil {
		return
	}

	payload, err := json.Marshal(entries)
	if err != nil {
		s.obs.Log().Warn().Err(err).Int("template", templateID).Msg("could not serialize history")
		return
	}
	if err := s.storage.SaveHistory(templateID, payload); err != nil {
		s.obs.Log().Warn().Err(err).Int("template", templateID).Msg("could not persist history")
	}
}
