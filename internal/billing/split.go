package billing

import "github.com/shopspring/decimal"

// SplitEven divides total into n shares that sum back to total exactly.
// The first n-1 shares are total/n rounded half-up to places decimal
// digits; the last share is the exact residual and absorbs the rounding
// difference. Group units are split at 3 digits, diffusion shares at
// decimal.DivisionPrecision.
func SplitEven(total decimal.Decimal, n int, places int32) []decimal.Decimal {
	if n <= 0 {
		return nil
	}
	shares := make([]decimal.Decimal, n)
	if n == 1 {
		shares[0] = total
		return shares
	}
	each := total.DivRound(decimal.NewFromInt(int64(n)), places)
	rest := total
	for i := 0; i < n-1; i++ {
		shares[i] = each
		rest = rest.Sub(each)
	}
	shares[n-1] = rest
	return shares
}
