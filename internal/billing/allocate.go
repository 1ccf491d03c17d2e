package billing

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Summary is the settled bill. All slices are index-aligned with
// Bill.Participants; every amount is in whole currency units.
type Summary struct {
	Base         []int64
	Service      []int64
	Total        []int64
	BaseTotal    int64
	ServiceTotal int64
	GrandTotal   int64
}

// Allocate folds every dish into an exact per-participant accumulator and
// rounds each participant once at the end, half-up to whole units.
//
// Per dish: each participant owes assigned[i] * unit price; quantity nobody
// claimed is diffused in equal shares across the whole bill, not only
// across the people who touched the dish. There is no intermediate
// rounding, which keeps the total within one unit per dish of the summed
// line totals.
func Allocate(b *Bill) []int64 {
	n := len(b.Participants)
	acc := make([]decimal.Decimal, n)
	for di := range b.Dishes {
		d := &b.Dishes[di]
		unit := d.UnitPrice()
		for i := 0; i < n; i++ {
			if q := assignedAt(d, i); q.IsPositive() {
				acc[i] = acc[i].Add(q.Mul(unit))
			}
		}
		left := d.QtyTotal.Sub(d.AssignedTotal())
		if left.IsPositive() {
			for i, share := range SplitEven(left, n, int32(decimal.DivisionPrecision)) {
				acc[i] = acc[i].Add(share.Mul(unit))
			}
		}
	}
	out := make([]int64, n)
	for i := range acc {
		out[i] = acc[i].Round(0).IntPart()
	}
	return out
}

// assignedAt reads the assignment matrix without forcing a resize, keeping
// Allocate read-only on the bill.
func assignedAt(d *Dish, i int) decimal.Decimal {
	if i < len(d.Assigned) {
		return d.Assigned[i]
	}
	return decimal.Zero
}

// ServiceCharges applies pct on top of each base amount. Every
// participant's charge is rounded independently, half-up to whole units.
func ServiceCharges(base []int64, pct decimal.Decimal) []int64 {
	out := make([]int64, len(base))
	if pct.IsZero() {
		return out
	}
	for i, amount := range base {
		out[i] = decimal.NewFromInt(amount).Mul(pct).DivRound(hundred, 0).IntPart()
	}
	return out
}

// Settle computes the full breakdown for the bill snapshot. ServiceTotal
// sums the already-rounded per-participant charges; it is not derived from
// BaseTotal in a single rounding step, and the two can disagree.
func Settle(b *Bill) *Summary {
	base := Allocate(b)
	service := ServiceCharges(base, b.ServicePct)
	s := &Summary{Base: base, Service: service, Total: make([]int64, len(base))}
	for i := range base {
		s.Total[i] = base[i] + service[i]
		s.BaseTotal += base[i]
		s.ServiceTotal += service[i]
	}
	s.GrandTotal = s.BaseTotal + s.ServiceTotal
	return s
}
