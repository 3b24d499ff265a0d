// Package storage defines the durable key-value storage used by the client
// to keep the bearer token and the current-user record across restarts.
package storage

const (
	// TokenKey holds the raw bearer token issued by the backend at login.
	TokenKey = "token"

	// UserKey holds the serialized current-user record (JSON).
	UserKey = "currentUser"
)

// Repo defines the interface for durable key-value storage operations.
// The token and the user record live under independent keys; writes are not
// transactional across keys, so a crash between two writes can leave one
// persisted without the other.
type Repo interface {
	// Get retrieves the value stored under key. The boolean reports whether
	// the key was present.
	Get(key string) (string, bool, error)

	// Set stores value under key, overwriting any previous value.
	Set(key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}
