// Package store defines the session-state collaborator the engine writes
// through, plus the Redis-backed adapter every deployment ends up using
// and an in-process map for tests.
package store

import "context"

// SessionStore is a KV hash namespaced by "{msisdn}:{session_id}". Every
// call may block; the engine imposes no timeout — callers thread a
// context.Context for that.
type SessionStore interface {
	// GetField reads one field of the session hash at key. ok is false
	// when the key or field does not exist.
	GetField(ctx context.Context, key, field string) (value string, ok bool, err error)

	// GetAll reads every field of the session hash at key.
	GetAll(ctx context.Context, key string) (map[string]string, error)

	// SetField writes a single field.
	SetField(ctx context.Context, key, field, value string) error

	// DelField removes a single field.
	DelField(ctx context.Context, key, field string) error

	// ApplyPatch writes/deletes every field of patch atomically: a nil
	// value deletes, everything else is written verbatim (already
	// stringified by the caller).
	ApplyPatch(ctx context.Context, key string, patch map[string]*string) error

	// Expire refreshes the session's external TTL. Implementations that
	// do not expire sessions may no-op.
	Expire(ctx context.Context, key string, seconds int) error
}

// Key builds the "{msisdn}:{session_id}" SessionStore key for a session.
func Key(msisdn, sessionID string) string {
	return msisdn + ":" + sessionID
}
