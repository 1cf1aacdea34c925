package goal

import "testing"

func TestInputNormalize(t *testing.T) {
	in := Input{
		TargetAmount:        "1500000",
		Years:               "5",
		CurrentSavings:      "50000",
		MonthlyContribution: "10000",
		AnnualReturnRate:    "12",
		InflationRate:       "5",
		Priority:            "9",
		StreakMonths:        "14",
	}

	n := in.Normalize()
	if n.TargetAmount != 1500000 || n.Years != 5 || n.CurrentSavings != 50000 {
		t.Errorf("unexpected normalized amounts: %+v", n)
	}
	if n.Priority != 5 {
		t.Errorf("Priority = %d, expected clamp to 5", n.Priority)
	}
	if n.StreakMonths != 14 {
		t.Errorf("StreakMonths = %d, expected 14", n.StreakMonths)
	}
}

func TestInputNormalizeMalformed(t *testing.T) {
	in := Input{
		TargetAmount:        "one million",
		Years:               "",
		MonthlyContribution: "10k",
	}

	n := in.Normalize()
	if n.TargetAmount != 0 || n.Years != 0 || n.MonthlyContribution != 0 {
		t.Errorf("malformed fields must normalize to zero: %+v", n)
	}
	if n.Priority != 1 {
		t.Errorf("Priority = %d, expected clamp to 1 from empty", n.Priority)
	}
}

func TestParseRiskProfile(t *testing.T) {
	tests := []struct {
		raw      string
		expected RiskProfile
	}{
		{"conservative", RiskConservative},
		{"moderate", RiskModerate},
		{"aggressive", RiskAggressive},
		{"", RiskModerate},
		{"reckless", RiskModerate},
	}
	for _, tt := range tests {
		if got := ParseRiskProfile(tt.raw); got != tt.expected {
			t.Errorf("ParseRiskProfile(%q) = %q, expected %q", tt.raw, got, tt.expected)
		}
	}
}

func TestGoalTransitions(t *testing.T) {
	g := Goal{ID: 3, Input: Input{Name: "House"}}

	computed := g.WithResults(Results{FVTotal: 1000, Coverage: 0.5})
	if computed.Results == nil || computed.Results.FVTotal != 1000 {
		t.Fatalf("WithResults did not attach results: %+v", computed)
	}
	if g.Results != nil {
		t.Errorf("WithResults mutated the prior goal")
	}

	// New input holds the last computed snapshot until an explicit recompute.
	updated := computed.WithInput(Input{Name: "Bigger House"})
	if updated.Input.Name != "Bigger House" {
		t.Errorf("input not replaced: %+v", updated.Input)
	}
	if updated.Results == nil || updated.Results.FVTotal != 1000 {
		t.Errorf("last snapshot dropped on input update")
	}

	// Recompute replaces the snapshot wholesale.
	recomputed := updated.WithResults(Results{FVTotal: 2000, Coverage: 0.9})
	if recomputed.Results.FVTotal != 2000 || recomputed.Results.Coverage != 0.9 {
		t.Errorf("recompute did not replace wholesale: %+v", recomputed.Results)
	}
}

func TestPortfolioNextID(t *testing.T) {
	p := Portfolio{}
	if p.NextID() != 1 {
		t.Errorf("NextID() on empty portfolio = %d, expected 1", p.NextID())
	}

	p = Portfolio{Goals: []Goal{{ID: 2}, {ID: 7}, {ID: 4}}}
	if p.NextID() != 8 {
		t.Errorf("NextID() = %d, expected max-existing+1 = 8", p.NextID())
	}
}

func TestPortfolioTransitionsAreCopies(t *testing.T) {
	p := DefaultPortfolio()

	added := p.AddGoal(Input{Name: "Travel"})
	if len(p.Goals) != 1 {
		t.Errorf("AddGoal mutated the prior snapshot")
	}
	if len(added.Goals) != 2 || added.Goals[1].ID != 2 {
		t.Errorf("AddGoal result unexpected: %+v", added.Goals)
	}

	updated, found := added.UpdateGoal(2, Input{Name: "World Tour"})
	if !found {
		t.Fatalf("UpdateGoal did not find goal 2")
	}
	if added.Goals[1].Input.Name != "Travel" {
		t.Errorf("UpdateGoal mutated the prior snapshot")
	}
	if name := updated.Goals[1].Input.Name; name != "World Tour" {
		t.Errorf("updated name = %q", name)
	}

	removed, found := updated.RemoveGoal(1)
	if !found || len(removed.Goals) != 1 {
		t.Errorf("RemoveGoal failed: %+v", removed.Goals)
	}
	if len(updated.Goals) != 2 {
		t.Errorf("RemoveGoal mutated the prior snapshot")
	}

	if _, found := removed.RemoveGoal(99); found {
		t.Errorf("RemoveGoal reported success for an unknown goal")
	}
}

func TestPortfolioReplaceResults(t *testing.T) {
	p := DefaultPortfolio()

	next, found := p.ReplaceResults(1, Results{FVTotal: 42})
	if !found {
		t.Fatalf("ReplaceResults did not find goal 1")
	}
	if p.Goals[0].Results != nil {
		t.Errorf("ReplaceResults mutated the prior snapshot")
	}
	if next.Goals[0].Results == nil || next.Goals[0].Results.FVTotal != 42 {
		t.Errorf("results not attached: %+v", next.Goals[0].Results)
	}

	if _, found := p.ReplaceResults(99, Results{}); found {
		t.Errorf("ReplaceResults reported success for an unknown goal")
	}
}
