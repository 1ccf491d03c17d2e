package billing

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrCapacityExceeded  = errors.New("Все порции этого блюда уже распределены")
	ErrNoSuchDish        = errors.New("Блюдо не найдено")
	ErrNoSuchParticipant = errors.New("Участник не найден")
	ErrNoSuchGroup       = errors.New("Группа не найдена")
	ErrGroupTooSmall     = errors.New("В группе должно быть не меньше двух участников")
)

var one = decimal.NewFromInt(1)

// AssignUnit credits amount units of dish di to participant pi. The bill
// stays untouched when the dish's remaining quantity cannot cover amount;
// quantities compare exactly, never with a float tolerance.
func (b *Bill) AssignUnit(di, pi int, amount decimal.Decimal) error {
	b.EnsureAssignMatrix()
	if di < 0 || di >= len(b.Dishes) {
		return ErrNoSuchDish
	}
	if pi < 0 || pi >= len(b.Participants) {
		return ErrNoSuchParticipant
	}
	d := &b.Dishes[di]
	if d.AssignedTotal().Add(amount).GreaterThan(d.QtyTotal) {
		return ErrCapacityExceeded
	}
	d.Assigned[pi] = d.Assigned[pi].Add(amount)
	return nil
}

// AssignGroupUnit credits exactly one unit of dish di to group gi. The unit
// is split via SplitEven at 3 digits, so the sum credited across the group
// is exactly 1, never 1 plus or minus a rounding epsilon.
func (b *Bill) AssignGroupUnit(di, gi int) error {
	b.EnsureAssignMatrix()
	if di < 0 || di >= len(b.Dishes) {
		return ErrNoSuchDish
	}
	if gi < 0 || gi >= len(b.Groups) {
		return ErrNoSuchGroup
	}
	d := &b.Dishes[di]
	if d.AssignedTotal().Add(one).GreaterThan(d.QtyTotal) {
		return ErrCapacityExceeded
	}
	g := b.Groups[gi]
	for i, share := range SplitEven(one, len(g.Members), 3) {
		pi := g.Members[i]
		d.Assigned[pi] = d.Assigned[pi].Add(share)
	}
	return nil
}

// ClearParticipant zeroes participant pi's assignment on every dish.
func (b *Bill) ClearParticipant(pi int) {
	if pi < 0 || pi >= len(b.Participants) {
		return
	}
	for i := range b.Dishes {
		if pi < len(b.Dishes[i].Assigned) {
			b.Dishes[i].Assigned[pi] = decimal.Zero
		}
	}
}
