package session

// Storage keys. The token is stored as a raw string, the user as JSON,
// so a restored session is byte-for-byte what was saved.
const (
	keyToken = "authToken"
	keyUser  = "currentUser"
)

// Storage persists the two session keys across restarts. Get returns
// "" for a key that was never written.
type Storage interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}
