package goal

// Portfolio is an ordered set of goals plus the portfolio-level inputs used
// by cross-goal analysis. Insertion order is meaningful for display only.
// All transitions return a new Portfolio; callers pass snapshots explicitly.
type Portfolio struct {
	Goals         []Goal      `json:"goals"`
	RiskProfile   RiskProfile `json:"riskProfile"`
	MonthlyIncome float64     `json:"monthlyIncome"`
}

// DefaultPortfolio is the portfolio used when no prior state exists, seeded
// with a single starter goal.
func DefaultPortfolio() Portfolio {
	return Portfolio{
		Goals: []Goal{
			{
				ID: 1,
				Input: Input{
					Name:                "Emergency Fund",
					Category:            "Safety",
					TargetAmount:        "600000",
					Years:               "3",
					CurrentSavings:      "50000",
					MonthlyContribution: "5000",
					AnnualReturnRate:    "8",
					InflationRate:       "5",
					Priority:            "5",
				},
			},
		},
		RiskProfile: RiskModerate,
	}
}

// NextID returns the identifier for the next goal, max-existing+1.
func (p Portfolio) NextID() int {
	max := 0
	for _, g := range p.Goals {
		if g.ID > max {
			max = g.ID
		}
	}
	return max + 1
}

// clone copies the goal slice so transitions never alias the prior snapshot.
func (p Portfolio) clone() Portfolio {
	goals := make([]Goal, len(p.Goals))
	copy(goals, p.Goals)
	return Portfolio{Goals: goals, RiskProfile: p.RiskProfile, MonthlyIncome: p.MonthlyIncome}
}

// Goal looks up a goal by identifier.
func (p Portfolio) Goal(id int) (Goal, bool) {
	for _, g := range p.Goals {
		if g.ID == id {
			return g, true
		}
	}
	return Goal{}, false
}

// AddGoal appends a goal built from the input and returns the new snapshot.
func (p Portfolio) AddGoal(in Input) Portfolio {
	next := p.clone()
	next.Goals = append(next.Goals, Goal{ID: p.NextID(), Input: in})
	return next
}

// UpdateGoal replaces a goal's input, holding its last computed snapshot.
// The second return reports whether the goal existed.
func (p Portfolio) UpdateGoal(id int, in Input) (Portfolio, bool) {
	next := p.clone()
	for i, g := range next.Goals {
		if g.ID == id {
			next.Goals[i] = g.WithInput(in)
			return next, true
		}
	}
	return p, false
}

// RemoveGoal deletes a goal by identifier.
func (p Portfolio) RemoveGoal(id int) (Portfolio, bool) {
	next := p.clone()
	for i, g := range next.Goals {
		if g.ID == id {
			next.Goals = append(next.Goals[:i:i], next.Goals[i+1:]...)
			return next, true
		}
	}
	return p, false
}

// ReplaceResults swaps in a freshly computed Results for one goal.
func (p Portfolio) ReplaceResults(id int, r Results) (Portfolio, bool) {
	next := p.clone()
	for i, g := range next.Goals {
		if g.ID == id {
			next.Goals[i] = g.WithResults(r)
			return next, true
		}
	}
	return p, false
}
