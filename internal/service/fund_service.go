package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/apperrors"
	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/model"
	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/repository"
	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/store"
	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/validation"
)

// FundService handles fund-level operations on a ledger store: enumerating
// selectable funds, initializing new stores, and the multi-fund overview.
type FundService struct{}

// NewFundService creates a new FundService.
func NewFundService() *FundService {
	return &FundService{}
}

// SelectableFunds returns the funds of the store at storePath that a user
// may select: Funds rows whose code matches an existing ledger table.
//
// A non-empty Funds table where no code matches a table is a broken store
// and fails with ErrNoSelectableFunds. An empty Funds table returns an empty
// slice.
func (s *FundService) SelectableFunds(storePath string) ([]model.Fund, error) {
	st, err := store.Open(storePath)
	if err != nil {
		return nil, err
	}
	defer st.Close()

	fundRepo := repository.NewFundRepository(st)
	all, err := fundRepo.GetFunds()
	if err != nil {
		return nil, err
	}

	selectable, err := fundRepo.GetSelectableFunds()
	if err != nil {
		return nil, err
	}

	if len(all) > 0 && len(selectable) == 0 {
		return nil, apperrors.ErrNoSelectableFunds
	}

	return selectable, nil
}

// Overview produces a point-in-time snapshot of every selectable fund in the
// store: latest close and cumulative return. Funds are computed concurrently,
// each on its own independent store connection; results keep the Funds table
// order.
func (s *FundService) Overview(ctx context.Context, storePath string) ([]model.FundSnapshot, error) {
	funds, err := s.SelectableFunds(storePath)
	if err != nil {
		return nil, err
	}

	snapshots := make([]model.FundSnapshot, len(funds))
	positions := NewPositionService()

	g, _ := errgroup.WithContext(ctx)
	for i, fund := range funds {
		g.Go(func() error {
			series, err := positions.ComputeSeries(storePath, fund.Code)
			if err != nil {
				return fmt.Errorf("fund %s: %w", fund.Code, err)
			}

			snapshot := model.FundSnapshot{Fund: fund.Code, Status: fund.Status}
			if len(series) > 0 {
				last := series[len(series)-1]
				snapshot.LatestDate = last.Date.Format("2006-01-02")
				closeValue := round(last.Close)
				snapshot.Close = &closeValue
				snapshot.Percentage = roundPtr(last.Percentage)
			}
			snapshots[i] = snapshot
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return snapshots, nil
}

// InitializeStore bootstraps a brand-new ledger store at storePath: the
// Funds table via the embedded migrations, one Active row and one empty
// ledger table per fund code.
func (s *FundService) InitializeStore(storePath string, funds []string) error {
	for _, code := range funds {
		if err := validation.ValidateFundCode(code); err != nil {
			return err
		}
	}

	if err := store.Bootstrap(storePath); err != nil {
		return err
	}

	st, err := store.Open(storePath)
	if err != nil {
		return err
	}
	defer st.Close()

	fundRepo := repository.NewFundRepository(st)
	ledgerRepo := repository.NewLedgerRepository(st)
	for _, code := range funds {
		if err := fundRepo.InsertFund(code, model.FundStatusActive); err != nil {
			return err
		}
		if err := ledgerRepo.CreateLedgerTable(code); err != nil {
			return err
		}
	}

	return nil
}
