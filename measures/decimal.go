package measures

import (
	"github.com/npillmayer/segtree"
	"github.com/shopspring/decimal"
)

// DecimalSum aggregates exact decimal totals over a span, for slot values
// where float rounding is unacceptable, e.g. monetary amounts. The zero
// value of decimal.Decimal counts as 0, so the neutral aggregate needs no
// initialization.
type DecimalSum struct {
	Total decimal.Decimal
}

// DecimalSumOf folds decimal values into exact running totals.
type DecimalSumOf struct{}

// Zero returns the neutral aggregate.
func (DecimalSumOf) Zero() DecimalSum { return DecimalSum{} }

// FromValue creates the aggregate for a single slot.
func (DecimalSumOf) FromValue(at int, value decimal.Decimal) DecimalSum {
	return DecimalSum{Total: value}
}

// Join combines two adjacent aggregates.
func (DecimalSumOf) Join(left, right DecimalSum) DecimalSum {
	return DecimalSum{Total: left.Total.Add(right.Total)}
}

// DecimalSetAdd is the decimal flavor of SetAdd: assign a value to every
// slot of a span or add a delta to every slot. Composition follows the same
// order-of-arrival rules.
type DecimalSetAdd struct {
	arg decimal.Decimal
	set bool
}

// SetDecimal creates an operation assigning value to every slot of a span.
func SetDecimal(value decimal.Decimal) DecimalSetAdd {
	return DecimalSetAdd{arg: value, set: true}
}

// AddDecimal creates an operation adding delta to every slot of a span.
func AddDecimal(delta decimal.Decimal) DecimalSetAdd {
	return DecimalSetAdd{arg: delta}
}

// IsSet reports whether the operation is an absolute assignment.
func (op DecimalSetAdd) IsSet() bool { return op.set }

// Arg returns the assignment value or the delta.
func (op DecimalSetAdd) Arg() decimal.Decimal { return op.arg }

// andThen merges op with an operation arriving later for the same span.
func (op DecimalSetAdd) andThen(later DecimalSetAdd) DecimalSetAdd {
	if later.set {
		return later
	}
	return DecimalSetAdd{arg: op.arg.Add(later.arg), set: op.set}
}

func (op DecimalSetAdd) String() string {
	if op.set {
		return "set(" + op.arg.String() + ")"
	}
	return "add(" + op.arg.String() + ")"
}

// DecimalSumOps applies DecimalSetAdd operations to DecimalSum aggregates.
// Apply is span-size aware, like SumOps.
type DecimalSumOps struct{}

// Apply transforms the aggregate of a whole span.
func (DecimalSumOps) Apply(agg DecimalSum, op DecimalSetAdd, span segtree.Span) DecimalSum {
	slots := decimal.NewFromInt(int64(span.Len()))
	if op.set {
		return DecimalSum{Total: op.arg.Mul(slots)}
	}
	return DecimalSum{Total: agg.Total.Add(op.arg.Mul(slots))}
}

// Compose merges two operations targeting the same span, earlier first.
func (DecimalSumOps) Compose(earlier, later DecimalSetAdd, span segtree.Span) DecimalSetAdd {
	return earlier.andThen(later)
}
