package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/sahayakai/sahayak/internal/observe"
	"github.com/sahayakai/sahayak/internal/video"
)

type memStorage struct {
	history map[int][]byte
	failSet bool
}

func newMemStorage() *memStorage {
	return &memStorage{history: make(map[int][]byte)}
}

func (m *memStorage) SetConfig(key, value string) error    { return nil }
func (m *memStorage) GetConfig(key string) (string, error) { return "", nil }

func (m *memStorage) SaveHistory(templateID int, payload []byte) error {
	if m.failSet {
		return errors.New("disk full")
	}
	m.history[templateID] = payload
	return nil
}

func (m *memStorage) LoadHistory(templateID int) ([]byte, error) {
	return m.history[templateID], nil
}

func (m *memStorage) LoadAllHistory() (map[int][]byte, error) {
	return m.history, nil
}

func (m *memStorage) DeleteHistory(templateID int) error {
	delete(m.history, templateID)
	return nil
}

func (m *memStorage) SaveFieldState(templateID int, payload []byte) error { return nil }
func (m *memStorage) LoadFieldState(templateID int) ([]byte, error)       { return nil, nil }
func (m *memStorage) Close() error                                        { return nil }

func testObserver() *observe.Observer {
	return observe.New(io.Discard, observe.Console, false)
}

func TestAppendPrependsNewest(t *testing.T) {
	s := NewStore(newMemStorage(), testObserver())

	s.Append(1, Entry{UserInput: "first", Response: "a"})
	s.Append(1, Entry{UserInput: "second", Response: "b"})

	list := s.List(1)
	if len(list) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(list))
	}
	if list[0].UserInput != "second" || list[1].UserInput != "first" {
		t.Errorf("expected newest first, got %q then %q", list[0].UserInput, list[1].UserInput)
	}
	if list[0].ID == "" || list[0].Timestamp == 0 {
		t.Error("expected generated ID and timestamp")
	}
}

func TestAppendEvictsOldestAtCap(t *testing.T) {
	s := NewStore(newMemStorage(), testObserver())

	for i := 0; i < MaxEntriesPerTemplate; i++ {
		s.Append(1, Entry{UserInput: fmt.Sprintf("input-%d", i)})
	}
	if got := len(s.List(1)); got != MaxEntriesPerTemplate {
		t.Fatalf("expected %d entries, got %d", MaxEntriesPerTemplate, got)
	}

	s.Append(1, Entry{UserInput: "overflow"})

	list := s.List(1)
	if len(list) != MaxEntriesPerTemplate {
		t.Fatalf("expected cap at %d entries, got %d", MaxEntriesPerTemplate, len(list))
	}
	if list[0].UserInput != "overflow" {
		t.Errorf("expected newest entry first, got %q", list[0].UserInput)
	}
	if list[len(list)-1].UserInput != "input-1" {
		t.Errorf("expected oldest entry evicted, tail is %q", list[len(list)-1].UserInput)
	}
}

func TestListsAreIndependentPerTemplate(t *testing.T) {
	s := NewStore(newMemStorage(), testObserver())

	s.Append(1, Entry{UserInput: "math"})
	s.Append(2, Entry{UserInput: "science"})

	if got := len(s.List(1)); got != 1 {
		t.Errorf("template 1: expected 1 entry, got %d", got)
	}
	if got := len(s.List(2)); got != 1 {
		t.Errorf("template 2: expected 1 entry, got %d", got)
	}
	if got := s.List(2)[0].UserInput; got != "science" {
		t.Errorf("template 2: expected %q, got %q", "science", got)
	}
}

func TestClearRemovesList(t *testing.T) {
	storage := newMemStorage()
	s := NewStore(storage, testObserver())

	s.Append(1, Entry{UserInput: "x"})
	s.Clear(1)

	if got := len(s.List(1)); got != 0 {
		t.Errorf("expected empty list after clear, got %d entries", got)
	}
	if _, ok := storage.history[1]; ok {
		t.Error("expected persisted payload removed")
	}
}

func TestPersistAndReload(t *testing.T) {
	storage := newMemStorage()
	s := NewStore(storage, testObserver())
	s.Append(3, Entry{
		UserInput: "water cycle",
		Response:  "Sun heats water.",
		ImageURI:  "data:image/jpeg;base64,abc",
		Videos:    []video.Suggestion{{Title: "Water Cycle", URL: "https://www.youtube.com/watch?v=v1"}},
	})

	reloaded := NewStore(storage, testObserver())
	list := reloaded.List(3)
	if len(list) != 1 {
		t.Fatalf("expected 1 entry after reload, got %d", len(list))
	}
	if list[0].Response != "Sun heats water." {
		t.Errorf("unexpected response: %q", list[0].Response)
	}
	if len(list[0].Videos) != 1 || list[0].Videos[0].Title != "Water Cycle" {
		t.Errorf("unexpected videos: %+v", list[0].Videos)
	}
}

func TestWriteFailureDoesNotLoseInMemoryState(t *testing.T) {
	storage := newMemStorage()
	storage.failSet = true
	s := NewStore(storage, testObserver())

	s.Append(1, Entry{UserInput: "kept anyway"})

	if got := len(s.List(1)); got != 1 {
		t.Fatalf("expected in-memory entry despite write failure, got %d", got)
	}
}

func TestUnreadablePayloadIsDiscarded(t *testing.T) {
	storage := newMemStorage()
	storage.history[1] = []byte("{not json")
	good, _ := json.Marshal([]Entry{{ID: "e1", UserInput: "ok"}})
	storage.history[2] = good

	s := NewStore(storage, testObserver())

	if got := len(s.List(1)); got != 0 {
		t.Errorf("expected corrupt payload dropped, got %d entries", got)
	}
	if got := len(s.List(2)); got != 1 {
		t.Errorf("expected valid payload loaded, got %d entries", got)
	}
}

func TestNilStorageIsInMemoryOnly(t *testing.T) {
	s := NewStore(nil, testObserver())
	s.Append(1, Entry{UserInput: "ephemeral"})
	s.Clear(1)
	if got := len(s.List(1)); got != 0 {
		t.Errorf("expected empty list, got %d", got)
	}
}
