package measures

import "fmt"

// SetAdd is a range operation that either assigns a value to every slot of a
// span or adds a delta to every slot.
//
// Composition keeps the order of arrival. A later Set discards whatever came
// before it, a later Add folds its delta into the earlier operation:
// Set(5) followed by Add(2) equals Set(7), while Add(2) followed by Set(5)
// equals Set(5).
type SetAdd struct {
	arg int64
	set bool
}

// Set creates an operation assigning value to every slot of a span.
func Set(value int64) SetAdd {
	return SetAdd{arg: value, set: true}
}

// Add creates an operation adding delta to every slot of a span.
func Add(delta int64) SetAdd {
	return SetAdd{arg: delta}
}

// IsSet reports whether the operation is an absolute assignment.
func (op SetAdd) IsSet() bool { return op.set }

// Arg returns the assignment value or the delta.
func (op SetAdd) Arg() int64 { return op.arg }

// andThen merges op with an operation arriving later for the same span.
func (op SetAdd) andThen(later SetAdd) SetAdd {
	if later.set {
		return later
	}
	return SetAdd{arg: op.arg + later.arg, set: op.set}
}

func (op SetAdd) String() string {
	if op.set {
		return fmt.Sprintf("set(%d)", op.arg)
	}
	return fmt.Sprintf("add(%d)", op.arg)
}
