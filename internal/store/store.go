// Package store provides the durable slot the progress document lives in.
// A Store owns exactly one document; reads and writes replace the whole
// thing atomically. No error crosses this boundary: absence, corruption,
// and write failure all collapse to boolean results, because every one of
// them means the same thing to callers — start from (or stay on) the
// in-memory state.
package store

// Store is the gateway to a single durable document slot.
type Store interface {
	// Available probes the medium with a trial write and delete. It never
	// panics or returns an error; any failure reads as false.
	Available() bool

	// Read returns the raw serialized document. ok is false when the slot
	// is empty or its content is not valid JSON — both mean "use defaults".
	Read() (data []byte, ok bool)

	// Write replaces the slot's content atomically. Returns success.
	Write(data []byte) bool

	// Close releases any underlying resources.
	Close() error
}
