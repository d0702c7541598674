package component

import "fmt"

// Operation names one instrumentable lifecycle operation. Every operation maps
// to an ordered begin/end hook pair via HookPair.
type Operation string

const (
	OperationActivate Operation = "activate"
	OperationCreate   Operation = "create"
	OperationUnmount  Operation = "unmount"
	OperationMount    Operation = "mount"
	OperationUpdate   Operation = "update"
)

// hookPairs maps each operation to its (begin, end) hook names.
var hookPairs = map[Operation][2]string{
	OperationActivate: {"activated", "deactivated"},
	OperationCreate:   {"beforeCreate", "created"},
	OperationUnmount:  {"beforeUnmount", "unmounted"},
	OperationMount:    {"beforeMount", "mounted"},
	OperationUpdate:   {"beforeUpdate", "updated"},
}

// HookPair returns the begin and end hook names for the operation.
// ok is false for operations outside the known set.
func (o Operation) HookPair() (before, after string, ok bool) {
	pair, ok := hookPairs[o]
	if !ok {
		return "", "", false
	}
	return pair[0], pair[1], true
}

// ParseOperation validates a configured operation name.
func ParseOperation(name string) (Operation, error) {
	op := Operation(name)
	if _, ok := hookPairs[op]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownOperation, name)
	}
	return op, nil
}

// Operations returns all known operations in a stable order.
func Operations() []Operation {
	return []Operation{
		OperationActivate,
		OperationCreate,
		OperationUnmount,
		OperationMount,
		OperationUpdate,
	}
}
