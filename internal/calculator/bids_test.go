package calculator

import (
	"errors"
	"testing"
)

func TestLookupBid_Ranges(t *testing.T) {
	tests := []struct {
		kind     BidKind
		min, max int
		class    PayoutClass
	}{
		{BidSingle, 1, 1, ClassFormula},
		{BidDouble, 2, 2, ClassFormula},
		{BidTreble, 2, 2, ClassFormula},
		{BidAbundance, 1, 1, ClassFixed},
		{BidSoloSlam, 1, 1, ClassFixed},
		{BidSmallMisery, 1, 3, ClassMisery},
		{BidLargeMisery, 1, 3, ClassMisery},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			b, err := LookupBid(tt.kind)
			if err != nil {
				t.Fatalf("LookupBid() error = %v", err)
			}
			if b.MinWinners != tt.min || b.MaxWinners != tt.max {
				t.Errorf("range = [%d,%d], want [%d,%d]", b.MinWinners, b.MaxWinners, tt.min, tt.max)
			}
			if b.Class != tt.class {
				t.Errorf("class = %s, want %s", b.Class, tt.class)
			}
		})
	}
}

func TestLookupBid_Unknown(t *testing.T) {
	if _, err := LookupBid("PICCOLO"); !errors.Is(err, ErrUnknownBid) {
		t.Errorf("LookupBid(PICCOLO) error = %v, want ErrUnknownBid", err)
	}
}

func TestParseBidKind(t *testing.T) {
	tests := []struct {
		in      string
		want    BidKind
		wantErr bool
	}{
		{in: "SINGLE", want: BidSingle},
		{in: "double", want: BidDouble},
		{in: "Troel", want: BidTreble},
		{in: " kleine misère ", wantErr: true},
		{in: "kleine_misere", want: BidSmallMisery},
		{in: "Grote misere", want: BidLargeMisery},
		{in: "solo-slim", want: BidSoloSlam},
		{in: "abondance", want: BidAbundance},
		{in: "", wantErr: true},
		{in: "piccolo", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseBidKind(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseBidKind(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseBidKind(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeOvertricks(t *testing.T) {
	if got := NormalizeOvertricks(BidDouble, -2); got != -2 {
		t.Errorf("DOUBLE keeps overtricks: got %d", got)
	}
	if got := NormalizeOvertricks(BidAbundance, 3); got != 0 {
		t.Errorf("ABUNDANCE forces 0: got %d", got)
	}
	if got := NormalizeOvertricks(BidSmallMisery, 1); got != 0 {
		t.Errorf("SMALL_MISERY forces 0: got %d", got)
	}
}

func TestBids_Order(t *testing.T) {
	kinds := BidKinds()
	want := []BidKind{BidSingle, BidDouble, BidTreble, BidAbundance, BidSmallMisery, BidLargeMisery, BidSoloSlam}
	if len(kinds) != len(want) {
		t.Fatalf("BidKinds() has %d entries, want %d", len(kinds), len(want))
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("BidKinds()[%d] = %s, want %s", i, kinds[i], want[i])
		}
	}
}
