// Package store persists the portfolio snapshot in an embedded Badger
// key-value database. The whole portfolio lives as a single serialized
// record under a fixed key; absent or corrupt state degrades to "no prior
// state" and is never fatal.
package store

import (
	"encoding/json"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/fincast/goalplanner/internal/goal"
	"go.uber.org/zap"
)

// PortfolioKey is the fixed key the serialized portfolio record lives under.
const PortfolioKey = "portfolio/current"

// Store is the two-operation persistence port for portfolio snapshots.
// Load returns (nil, nil) when no usable prior state exists.
type Store interface {
	Load() (*goal.Portfolio, error)
	Save(p goal.Portfolio) error
	Close() error
}

// BadgerStore implements Store on an embedded Badger database.
type BadgerStore struct {
	db     *badger.DB
	logger *zap.Logger
}

// Open opens or creates the Badger database at path.
func Open(path string, logger *zap.Logger) (*BadgerStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open portfolio store at %s: %w", path, err)
	}
	return &BadgerStore{db: db, logger: logger}, nil
}

// Load reads the portfolio record. A missing key or an undecodable record
// both return (nil, nil): the caller falls back to a default portfolio.
func (s *BadgerStore) Load() (*goal.Portfolio, error) {
	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(PortfolioKey))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read portfolio record: %w", err)
	}

	var p goal.Portfolio
	if err := json.Unmarshal(raw, &p); err != nil {
		s.logger.Warn("portfolio record is corrupt, treating as no prior state",
			zap.String("op", "store.Load"),
			zap.Error(err),
		)
		return nil, nil
	}
	return &p, nil
}

// Save serializes the portfolio snapshot and replaces the stored record.
func (s *BadgerStore) Save(p goal.Portfolio) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to serialize portfolio: %w", err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(PortfolioKey), raw)
	})
	if err != nil {
		return fmt.Errorf("failed to write portfolio record: %w", err)
	}
	s.logger.Debug("saved portfolio",
		zap.String("op", "store.Save"),
		zap.Int("goals", len(p.Goals)),
	)
	return nil
}

// Close releases the underlying database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

// LoadOrDefault loads the stored portfolio, falling back to the default
// single-goal portfolio when the store is nil, errors, or holds nothing.
func LoadOrDefault(s Store, logger *zap.Logger) goal.Portfolio {
	if logger == nil {
		logger = zap.NewNop()
	}
	if s == nil {
		return goal.DefaultPortfolio()
	}
	p, err := s.Load()
	if err != nil {
		logger.Warn("failed to load portfolio, falling back to default",
			zap.String("op", "store.LoadOrDefault"),
			zap.Error(err),
		)
		return goal.DefaultPortfolio()
	}
	if p == nil {
		return goal.DefaultPortfolio()
	}
	return *p
}
