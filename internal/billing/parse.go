package billing

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrParse rejects free-text dish lines that match neither accepted form.
var ErrParse = errors.New("Не удалось распознать блюдо. Формат: (название) (количество) шт (цена) — либо (название) (цена).")

// Accepted forms, tried in order. The quantity takes a dot or a comma as
// the decimal separator; the price may carry grouping spaces («56 000»).
//
//	«название 2 шт 56000»  (explicit quantity, «шт» or «штук»)
//	«название 45000»       (quantity = 1)
var (
	dishQtyRe    = regexp.MustCompile(`(?i)^(.+?)\s+(\d+(?:[.,]\d+)?)\s*шт(?:ук)?\s+(\d[\d\s]*)$`)
	dishSimpleRe = regexp.MustCompile(`^(.+?)\s+(\d[\d\s]*)$`)
)

// ParseDish parses one free-text line into a dish with no assignments yet.
func ParseDish(text string) (Dish, error) {
	t := strings.TrimSpace(text)

	if m := dishQtyRe.FindStringSubmatch(t); m != nil {
		qty, err := decimal.NewFromString(strings.ReplaceAll(m[2], ",", "."))
		if err != nil {
			return Dish{}, ErrParse
		}
		price, err := decimal.NewFromString(strings.ReplaceAll(m[3], " ", ""))
		if err != nil {
			return Dish{}, ErrParse
		}
		if !qty.IsPositive() || price.IsNegative() {
			return Dish{}, ErrParse
		}
		return Dish{Name: strings.TrimSpace(m[1]), QtyTotal: qty, LineTotal: price}, nil
	}

	if m := dishSimpleRe.FindStringSubmatch(t); m != nil {
		price, err := decimal.NewFromString(strings.ReplaceAll(m[2], " ", ""))
		if err != nil {
			return Dish{}, ErrParse
		}
		if price.IsNegative() {
			return Dish{}, ErrParse
		}
		return Dish{Name: strings.TrimSpace(m[1]), QtyTotal: one, LineTotal: price}, nil
	}

	return Dish{}, ErrParse
}
