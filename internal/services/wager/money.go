package wager

import "github.com/shopspring/decimal"

var (
	winFeeRate     = decimal.RequireFromString("0.01")
	disputeFeeRate = decimal.RequireFromString("0.10")
)

// round2 rounds to 2 decimal places, half away from zero. Amounts are only
// rounded at the point they are actually credited or debited.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// splitPot computes the platform fee and the per-winner payout shares for a
// unanimous win. The fee is 1% of the pot rounded to cents; the remainder is
// split evenly with the last share absorbing any rounding dust, so that
// fee + sum(shares) == total exactly. The even share is rounded down so the
// dust is always non-negative, shares never exceed the pot.
func splitPot(total decimal.Decimal, winners int) (fee decimal.Decimal, shares []decimal.Decimal) {
	fee = round2(total.Mul(winFeeRate))
	pot := total.Sub(fee)

	shares = make([]decimal.Decimal, winners)

	n := decimal.NewFromInt(int64(winners))
	even := pot.Div(n).RoundDown(2)

	rest := pot
	for i := 0; i < winners-1; i++ {
		shares[i] = even
		rest = rest.Sub(even)
	}

	shares[winners-1] = rest

	return fee, shares
}

// disputeRefund computes the refund and retained fee for one participant's
// stake when a repeat dispute force-closes the wager: 90% back, 10% kept.
func disputeRefund(stake decimal.Decimal) (refund, fee decimal.Decimal) {
	refund = round2(stake.Mul(decimal.NewFromInt(1).Sub(disputeFeeRate)))
	fee = stake.Sub(refund)

	return refund, fee
}
