package billing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Currency code shown after every rendered amount.
const Currency = "UZS"

// Participant is one person on the bill. Its position in Bill.Participants
// is load-bearing: every dish's Assigned vector is indexed by it.
type Participant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Group is a named, fixed snapshot of participant indices captured at
// creation time. Membership never changes; create a new group instead.
type Group struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Members []int  `json:"members"`
}

// Dish is one priced line item. Assigned[i] is the quantity charged to
// participant i; sum(Assigned) never exceeds QtyTotal.
type Dish struct {
	Name      string            `json:"name"`
	QtyTotal  decimal.Decimal   `json:"qty_total"`
	LineTotal decimal.Decimal   `json:"line_total"`
	Assigned  []decimal.Decimal `json:"assigned"`
}

// Bill owns the participants, dishes and groups of one session. A new bill
// discards the whole aggregate; there is no partial reset.
type Bill struct {
	Participants []Participant   `json:"participants"`
	Groups       []Group         `json:"groups,omitempty"`
	Dishes       []Dish          `json:"dishes"`
	ServicePct   decimal.Decimal `json:"service_pct"`
}

func NewBill() *Bill {
	return &Bill{}
}

// AddParticipant appends a participant and widens every assignment vector.
// Returns the new participant's index.
func (b *Bill) AddParticipant(name string) int {
	b.Participants = append(b.Participants, Participant{ID: uuid.NewString(), Name: name})
	b.EnsureAssignMatrix()
	return len(b.Participants) - 1
}

// AddGroup snapshots the given participant indices under a name. The
// snapshot is copied, so later mutation of members does not leak in.
func (b *Bill) AddGroup(name string, members []int) (int, error) {
	if len(members) < 2 {
		return 0, ErrGroupTooSmall
	}
	for _, m := range members {
		if m < 0 || m >= len(b.Participants) {
			return 0, ErrNoSuchParticipant
		}
	}
	snap := make([]int, len(members))
	copy(snap, members)
	b.Groups = append(b.Groups, Group{ID: uuid.NewString(), Name: name, Members: snap})
	return len(b.Groups) - 1, nil
}

// AddDish appends a dish with a zeroed assignment vector and returns its
// index.
func (b *Bill) AddDish(name string, qty, lineTotal decimal.Decimal) int {
	b.Dishes = append(b.Dishes, Dish{
		Name:      name,
		QtyTotal:  qty,
		LineTotal: lineTotal,
		Assigned:  make([]decimal.Decimal, len(b.Participants)),
	})
	return len(b.Dishes) - 1
}

// EnsureAssignMatrix pads every dish's Assigned vector with zeros up to the
// participant count. Required before any index-based write once a
// participant joined after dishes already existed.
func (b *Bill) EnsureAssignMatrix() {
	n := len(b.Participants)
	for i := range b.Dishes {
		for len(b.Dishes[i].Assigned) < n {
			b.Dishes[i].Assigned = append(b.Dishes[i].Assigned, decimal.Zero)
		}
	}
}

// Clone returns a deep copy of the bill. Decimal values are immutable, so
// copying them by value is safe.
func (b *Bill) Clone() *Bill {
	c := &Bill{ServicePct: b.ServicePct}
	c.Participants = append([]Participant(nil), b.Participants...)
	c.Groups = make([]Group, len(b.Groups))
	for i, g := range b.Groups {
		g.Members = append([]int(nil), g.Members...)
		c.Groups[i] = g
	}
	c.Dishes = make([]Dish, len(b.Dishes))
	for i, d := range b.Dishes {
		d.Assigned = append([]decimal.Decimal(nil), d.Assigned...)
		c.Dishes[i] = d
	}
	return c
}

// UnitPrice is LineTotal/QtyTotal quantized to 3 decimal digits, half-up.
// A zero-quantity dish prices at zero.
func (d *Dish) UnitPrice() decimal.Decimal {
	if d.QtyTotal.IsZero() {
		return decimal.Zero
	}
	return d.LineTotal.DivRound(d.QtyTotal, 3)
}

// AssignedTotal is the quantity already credited to participants.
func (d *Dish) AssignedTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, q := range d.Assigned {
		sum = sum.Add(q)
	}
	return sum
}

// QtyLeft is the unassigned remainder, quantized to 3 decimals.
func (d *Dish) QtyLeft() decimal.Decimal {
	return d.QtyTotal.Sub(d.AssignedTotal()).Round(3)
}
