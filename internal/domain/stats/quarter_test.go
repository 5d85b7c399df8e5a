package stats

import "testing"

func TestTargets_SumNeverExceedsEffectiveDays(t *testing.T) {
	for effective := 0; effective <= 400; effective++ {
		office := OfficeTarget(effective)
		home := HomeTarget(effective)
		if office+home > effective {
			t.Errorf("effective=%d: officeTarget(%d) + homeTarget(%d) > effective",
				effective, office, home)
		}
	}
}

func TestTargets_RoundingAsymmetry(t *testing.T) {
	cases := []struct {
		effective int
		office    int
		home      int
	}{
		{0, 0, 0},
		{1, 1, 0}, // office rounds up, home rounds down
		{5, 3, 2},
		{10, 6, 4}, // exact split
		{61, 37, 24},
		{62, 38, 24},
	}
	for _, c := range cases {
		if got := OfficeTarget(c.effective); got != c.office {
			t.Errorf("OfficeTarget(%d) = %d, want %d", c.effective, got, c.office)
		}
		if got := HomeTarget(c.effective); got != c.home {
			t.Errorf("HomeTarget(%d) = %d, want %d", c.effective, got, c.home)
		}
	}
}

func TestQuarterName(t *testing.T) {
	cases := []struct {
		quarter int
		want    string
	}{
		{1, "Q1 (January - March)"},
		{2, "Q2 (April - June)"},
		{3, "Q3 (July - September)"},
		{4, "Q4 (October - December)"},
		{0, "Unknown"},
		{5, "Unknown"},
	}
	for _, c := range cases {
		if got := QuarterName(c.quarter); got != c.want {
			t.Errorf("QuarterName(%d) = %q, want %q", c.quarter, got, c.want)
		}
	}
}

func TestCurrentQuarter_InRange(t *testing.T) {
	q := CurrentQuarter()
	if q < 1 || q > 4 {
		t.Errorf("CurrentQuarter() = %d, want 1..4", q)
	}
}
