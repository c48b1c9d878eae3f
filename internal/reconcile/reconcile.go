// Package reconcile keeps an in-memory ordered list of entities consistent
// with the server after a single successful create, update or delete,
// without refetching the whole list.
//
// Apply is pure: it never mutates its input and always returns a fresh
// slice, so a view can keep the previous list when a remote call fails.
package reconcile

// Entity is any record with a stable unique identifier.
type Entity interface {
	EntityID() int
}

// OpKind enumerates the reconcilable mutations.
type OpKind int

const (
	OpCreate OpKind = iota
	OpUpdate
	OpRemove
)

// Op describes one successful remote mutation to replay onto a local list.
type Op[T Entity] struct {
	Kind   OpKind
	Record T   // server-assigned record for OpCreate / OpUpdate
	ID     int // target identifier for OpRemove
}

// Created builds an Op appending the server-assigned record.
func Created[T Entity](record T) Op[T] {
	return Op[T]{Kind: OpCreate, Record: record}
}

// Updated builds an Op replacing the record with the same identifier.
func Updated[T Entity](record T) Op[T] {
	return Op[T]{Kind: OpUpdate, Record: record, ID: record.EntityID()}
}

// Removed builds an Op filtering out the record with the given identifier.
func Removed[T Entity](id int) Op[T] {
	return Op[T]{Kind: OpRemove, ID: id}
}

// Apply replays op onto list and returns the resulting list. Unaffected
// records keep their relative order. An update or remove whose identifier
// matches nothing returns the list contents unchanged; that is an accepted
// edge case, not an error.
func Apply[T Entity](list []T, op Op[T]) []T {
	switch op.Kind {
	case OpCreate:
		out := make([]T, 0, len(list)+1)
		out = append(out, list...)
		return append(out, op.Record)

	case OpUpdate:
		out := make([]T, len(list))
		for i, record := range list {
			if record.EntityID() == op.ID {
				out[i] = op.Record
			} else {
				out[i] = record
			}
		}
		return out

	case OpRemove:
		out := make([]T, 0, len(list))
		for _, record := range list {
			if record.EntityID() != op.ID {
				out = append(out, record)
			}
		}
		return out

	default:
		out := make([]T, len(list))
		copy(out, list)
		return out
	}
}
