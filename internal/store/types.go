package store

// Storage defines the interface for local persistence. Two logical areas are
// covered: a configuration key/value table (API keys, identity token, model
// overrides) and per-template JSON payloads for history lists and transient
// field state.
type Storage interface {
	// Configuration Management
	SetConfig(key, value string) error
	GetConfig(key string) (string, error)

	// History payloads, one JSON blob per template
	SaveHistory(templateID int, payload []byte) error
	LoadHistory(templateID int) ([]byte, error)
	LoadAllHistory() (map[int][]byte, error)
	DeleteHistory(templateID int) error

	// Transient UI field state, one JSON blob per template
	SaveFieldState(templateID int, payload []byte) error
	LoadFieldState(templateID int) ([]byte, error)

	Close() error
}
