package payload

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/muzaffarov/splitbill/internal/billing"
)

var one = decimal.NewFromInt(1)

// Builder is the raw bill shape sent by the webapp's split builder.
type Builder struct {
	Type           string               `json:"type"`
	ServicePercent decimal.Decimal      `json:"servicePercent"`
	Participants   []BuilderParticipant `json:"participants"`
	Groups         []BuilderGroup       `json:"groups"`
	Dishes         []BuilderDish        `json:"dishes"`
}

type BuilderParticipant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type BuilderGroup struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	MemberIDs []string `json:"memberIds"`
}

// BuilderDish carries one line item. FlatAssignments holds one entry per
// unit: a participant id, a group id, or null for an unassigned unit. The
// older nested Assignments matrix is accepted as a fallback source when
// FlatAssignments is absent.
type BuilderDish struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Qty             decimal.Decimal `json:"qty"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	FlatAssignments []*string       `json:"flatAssignments"`
	Assignments     [][]Assignee    `json:"assignments"`
}

type Assignee struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// Normalize converts the builder payload into a bill ready for settlement.
// Ids that resolve to nothing leave their unit unassigned, so it enters
// diffusion and the total stays conserved even with malformed references.
func (p *Builder) Normalize() (*billing.Bill, error) {
	if len(p.Participants) == 0 {
		return nil, ErrMalformedPayload
	}
	b := billing.NewBill()
	b.ServicePct = p.ServicePercent

	pidx := make(map[string]int, len(p.Participants))
	for i, bp := range p.Participants {
		name := bp.Name
		if name == "" {
			name = fmt.Sprintf("Участник %d", i+1)
		}
		b.Participants = append(b.Participants, billing.Participant{ID: bp.ID, Name: name})
		if bp.ID != "" {
			pidx[bp.ID] = i
		}
	}

	gidx := make(map[string]int, len(p.Groups))
	for _, bg := range p.Groups {
		if bg.ID == "" {
			continue
		}
		members := make([]int, 0, len(bg.MemberIDs))
		for _, id := range bg.MemberIDs {
			if pi, ok := pidx[id]; ok {
				members = append(members, pi)
			}
		}
		if len(members) == 0 {
			// Nothing resolved; units aimed at this group will diffuse.
			continue
		}
		gidx[bg.ID] = len(b.Groups)
		b.Groups = append(b.Groups, billing.Group{ID: bg.ID, Name: bg.Name, Members: members})
	}

	for _, bd := range p.Dishes {
		di := b.AddDish(bd.Name, bd.Qty, bd.TotalPrice)
		for _, ref := range bd.flat(pidx, gidx) {
			assignRef(b, pidx, gidx, di, ref)
		}
	}
	return b, nil
}

// flat returns at most one assignment reference per whole unit of the dish,
// truncating surplus entries. The slice is sized by the assignment source,
// never by the client-supplied quantity; units past the end of the source
// stay unassigned and diffuse. A fractional remainder of the quantity has
// no unit slot and always diffuses.
func (d *BuilderDish) flat(pidx, gidx map[string]int) []string {
	units := int(d.Qty.IntPart())
	if units <= 0 {
		return nil
	}
	switch {
	case d.FlatAssignments != nil:
		n := units
		if n > len(d.FlatAssignments) {
			n = len(d.FlatAssignments)
		}
		flat := make([]string, n)
		for i := 0; i < n; i++ {
			if s := d.FlatAssignments[i]; s != nil {
				flat[i] = *s
			}
		}
		return flat
	case len(d.Assignments) > 0:
		n := units
		if n > len(d.Assignments) {
			n = len(d.Assignments)
		}
		flat := make([]string, n)
		for i := 0; i < n; i++ {
			flat[i] = firstResolvable(d.Assignments[i], pidx, gidx)
		}
		return flat
	}
	return nil
}

// firstResolvable picks the first assignee of a matrix slot that maps to a
// known participant or group.
func firstResolvable(entries []Assignee, pidx, gidx map[string]int) string {
	for _, a := range entries {
		if a.ID == "" {
			continue
		}
		if _, ok := pidx[a.ID]; ok {
			return a.ID
		}
		if _, ok := gidx[a.ID]; ok {
			return a.ID
		}
	}
	return ""
}

// assignRef credits one unit to whatever ref resolves to. Unknown ids are
// skipped on purpose: their units stay unassigned and diffuse. The capacity
// check cannot trip here because flat never emits more references than the
// dish has whole units.
func assignRef(b *billing.Bill, pidx, gidx map[string]int, di int, ref string) {
	if ref == "" {
		return
	}
	if pi, ok := pidx[ref]; ok {
		_ = b.AssignUnit(di, pi, one)
		return
	}
	if gi, ok := gidx[ref]; ok {
		_ = b.AssignGroupUnit(di, gi)
	}
}
