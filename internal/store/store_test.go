package store

import (
	"errors"
	"testing"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/fincast/goalplanner/internal/goal"
	"github.com/fincast/goalplanner/internal/projection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *BadgerStore {
	t.Helper()
	s, err := Open(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})
	return s
}

func TestBadgerStore_SaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)

	calc := projection.NewCalculator(nil)
	p := goal.DefaultPortfolio()
	p.MonthlyIncome = 120000
	p.RiskProfile = goal.RiskAggressive
	p, ok := p.ReplaceResults(1, calc.Project(p.Goals[0].Input.Normalize()))
	require.True(t, ok)

	require.NoError(t, s.Save(p))

	loaded, err := s.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, p.RiskProfile, loaded.RiskProfile)
	assert.Equal(t, p.MonthlyIncome, loaded.MonthlyIncome)
	require.Len(t, loaded.Goals, 1)
	assert.Equal(t, p.Goals[0].Input, loaded.Goals[0].Input)
	require.NotNil(t, loaded.Goals[0].Results)
	assert.InDelta(t, p.Goals[0].Results.FVTotal, loaded.Goals[0].Results.FVTotal, 0.01)
}

func TestBadgerStore_LoadMissing(t *testing.T) {
	s := openTestStore(t)

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestBadgerStore_LoadCorrupt(t *testing.T) {
	s := openTestStore(t)

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(PortfolioKey), []byte("{not json"))
	})
	require.NoError(t, err)

	loaded, err := s.Load()
	require.NoError(t, err, "corrupt state must degrade, not fail")
	assert.Nil(t, loaded)
}

func TestBadgerStore_SaveReplacesWholesale(t *testing.T) {
	s := openTestStore(t)

	first := goal.DefaultPortfolio()
	require.NoError(t, s.Save(first))

	second := first.AddGoal(goal.Input{Name: "Travel", TargetAmount: "300000", Years: "2", Priority: "2"})
	require.NoError(t, s.Save(second))

	loaded, err := s.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Len(t, loaded.Goals, 2)
}

type failingStore struct{}

func (failingStore) Load() (*goal.Portfolio, error) { return nil, errors.New("disk gone") }
func (failingStore) Save(goal.Portfolio) error      { return errors.New("disk gone") }
func (failingStore) Close() error                   { return nil }

func TestLoadOrDefault(t *testing.T) {
	assert.Equal(t, goal.DefaultPortfolio(), LoadOrDefault(nil, nil), "nil store falls back to default")
	assert.Equal(t, goal.DefaultPortfolio(), LoadOrDefault(failingStore{}, nil), "failing store falls back to default")

	s := openTestStore(t)
	assert.Equal(t, goal.DefaultPortfolio(), LoadOrDefault(s, nil), "empty store falls back to default")

	saved := goal.DefaultPortfolio()
	saved.MonthlyIncome = 75000
	require.NoError(t, s.Save(saved))
	assert.Equal(t, saved, LoadOrDefault(s, nil))
}
