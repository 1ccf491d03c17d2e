// Package payload adapts the two historically grown webapp JSON encodings
// of a bill to one internal computation path.
package payload

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/muzaffarov/splitbill/internal/billing"
)

var (
	ErrDecode           = errors.New("Не удалось прочитать итог из WebApp.")
	ErrMalformedPayload = errors.New("В данных WebApp не хватает обязательных полей.")
)

// Kind discriminates the two accepted payload shapes.
type Kind int

const (
	// KindBuilder carries raw bill state that still needs allocation.
	KindBuilder Kind = iota
	// KindLegacy carries a summary settled upstream, rendered verbatim.
	KindLegacy
)

// Payload is the decoded tagged union of the two shapes.
type Payload struct {
	Kind    Kind
	Builder *Builder
	Legacy  *Legacy
}

// Decode unmarshals raw webapp JSON and classifies it exactly once: the
// builder shape announces itself with type=="calculation" or by carrying
// dishes, the legacy shape by carrying people. Anything else is rejected.
func Decode(raw []byte) (*Payload, error) {
	var probe struct {
		Type   string          `json:"type"`
		Dishes json.RawMessage `json:"dishes"`
		People json.RawMessage `json:"people"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("%w (%v)", ErrDecode, err)
	}

	switch {
	case probe.Type == "calculation" || present(probe.Dishes):
		var b Builder
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, fmt.Errorf("%w (%v)", ErrDecode, err)
		}
		return &Payload{Kind: KindBuilder, Builder: &b}, nil
	case present(probe.People):
		var l Legacy
		if err := json.Unmarshal(raw, &l); err != nil {
			return nil, fmt.Errorf("%w (%v)", ErrDecode, err)
		}
		return &Payload{Kind: KindLegacy, Legacy: &l}, nil
	}
	return nil, ErrMalformedPayload
}

func present(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}

// Render produces the final chat text for either shape. Builder payloads
// run through the allocation engine; legacy payloads were settled by the
// sender and are reproduced without recomputation.
func (p *Payload) Render() (string, error) {
	switch p.Kind {
	case KindBuilder:
		b, err := p.Builder.Normalize()
		if err != nil {
			return "", err
		}
		return billing.RenderSummary(b, billing.Settle(b)), nil
	case KindLegacy:
		return p.Legacy.Render(), nil
	}
	return "", ErrMalformedPayload
}
