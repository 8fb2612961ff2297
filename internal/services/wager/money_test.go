package wager

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestSplitPot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		total      string
		winners    int
		wantFee    string
		wantShares []string
	}{
		{
			name:       "pot 100 single winner",
			total:      "100.00",
			winners:    1,
			wantFee:    "1.00",
			wantShares: []string{"99.00"},
		},
		{
			name:       "pot 40 single winner",
			total:      "40.00",
			winners:    1,
			wantFee:    "0.40",
			wantShares: []string{"39.60"},
		},
		{
			name:       "pot 100 two winners",
			total:      "100.00",
			winners:    2,
			wantFee:    "1.00",
			wantShares: []string{"49.50", "49.50"},
		},
		{
			name:    "uneven split leaves no dust",
			total:   "100.00",
			winners: 3,
			wantFee: "1.00",
			// 99 / 3 = 33 exactly here, but the general rule is the last
			// share absorbs the remainder so fee + shares == total.
			wantShares: []string{"33.00", "33.00", "33.00"},
		},
		{
			name:       "remainder goes to last winner",
			total:      "10.00",
			winners:    3,
			wantFee:    "0.10",
			wantShares: []string{"3.30", "3.30", "3.30"},
		},
		{
			name:    "even share rounds down",
			total:   "1.00",
			winners: 6,
			wantFee: "0.01",
			// 0.99 / 6 = 0.165; rounding the even share up would hand out
			// more than the pot, so it rounds down and the dust stays positive.
			wantShares: []string{"0.16", "0.16", "0.16", "0.16", "0.16", "0.19"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fee, shares := splitPot(dec(tt.total), tt.winners)

			if fee.StringFixed(2) != tt.wantFee {
				t.Fatalf("fee: want %s, got %s", tt.wantFee, fee.StringFixed(2))
			}

			sum := fee
			for i, share := range shares {
				if share.StringFixed(2) != tt.wantShares[i] {
					t.Fatalf("share %d: want %s, got %s", i, tt.wantShares[i], share.StringFixed(2))
				}
				sum = sum.Add(share)
			}

			if !sum.Equal(dec(tt.total)) {
				t.Fatalf("money not conserved: fee + shares = %s, total = %s", sum, tt.total)
			}
		})
	}
}

// A tiny pot split across many winners must never allocate a negative share:
// 1.48 / 150 rounds to 0.01 half-up, and 149 of those exceed the pot.
func TestSplitPot_ManyMinimumStakes(t *testing.T) {
	t.Parallel()

	total := dec("1.50")
	fee, shares := splitPot(total, 150)

	sum := fee
	for i, share := range shares {
		if share.IsNegative() {
			t.Fatalf("share %d is negative: %s", i, share)
		}
		sum = sum.Add(share)
	}

	if !sum.Equal(total) {
		t.Fatalf("money not conserved: fee + shares = %s, total = %s", sum, total)
	}
}

func TestDisputeRefund(t *testing.T) {
	t.Parallel()

	tests := []struct {
		stake      string
		wantRefund string
		wantFee    string
	}{
		{stake: "50.00", wantRefund: "45.00", wantFee: "5.00"},
		{stake: "20.00", wantRefund: "18.00", wantFee: "2.00"},
		{stake: "0.05", wantRefund: "0.05", wantFee: "0.00"}, // rounds at the credited amount
		{stake: "33.33", wantRefund: "30.00", wantFee: "3.33"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.stake, func(t *testing.T) {
			t.Parallel()

			refund, fee := disputeRefund(dec(tt.stake))

			if refund.StringFixed(2) != tt.wantRefund {
				t.Fatalf("refund: want %s, got %s", tt.wantRefund, refund.StringFixed(2))
			}
			if fee.StringFixed(2) != tt.wantFee {
				t.Fatalf("fee: want %s, got %s", tt.wantFee, fee.StringFixed(2))
			}
			if !refund.Add(fee).Equal(dec(tt.stake)) {
				t.Fatalf("money not conserved: %s + %s != %s", refund, fee, tt.stake)
			}
		})
	}
}
