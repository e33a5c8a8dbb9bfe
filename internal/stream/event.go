// Package stream fans change events out to live subscribers so clients keep
// consistent views without polling. Events are ephemeral: they exist only for
// the duration of fan-out and are never persisted.
package stream

// Action tags a change event with the kind of completed mutation.
type Action string

const (
	ActionAdded       Action = "added"
	ActionUpdated     Action = "updated"
	ActionDeleted     Action = "deleted"
	ActionBulkDeleted Action = "bulk-deleted"
	ActionSold        Action = "sold"
	ActionCloned      Action = "cloned"

	// ActionConnected is the synthetic acknowledgment a subscriber receives
	// once, before any broadcast traffic. It never crosses the bridge.
	ActionConnected Action = "connected"
)

// Event describes one completed mutation. ID is the affected entity where the
// operation has a single target; bulk operations carry none.
type Event struct {
	Action Action `json:"action"`
	ID     *int64 `json:"id"`
}
