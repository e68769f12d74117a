package franchise

import (
	"context"
	"time"

	domain "github.com/franq/backend/internal/domain/franchise"
	"github.com/franq/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockFranchiseRepository is a testify mock of domain.FranchiseRepository
type MockFranchiseRepository struct {
	mock.Mock
}

func (m *MockFranchiseRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Franchise, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Franchise), args.Error(1)
}

func (m *MockFranchiseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*domain.Franchise, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Franchise), args.Error(1)
}

func (m *MockFranchiseRepository) Save(ctx context.Context, f *domain.Franchise) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFranchiseRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockTransactionRepository is a testify mock of domain.TransactionRepository
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindByFranchise(ctx context.Context, franchiseID uuid.UUID, from, to time.Time) ([]*domain.Transaction, error) {
	args := m.Called(ctx, franchiseID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) Save(ctx context.Context, tx *domain.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// MockRoyaltyInvoiceRepository is a testify mock of domain.RoyaltyInvoiceRepository
type MockRoyaltyInvoiceRepository struct {
	mock.Mock
}

func (m *MockRoyaltyInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.RoyaltyInvoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoyaltyInvoice), args.Error(1)
}

func (m *MockRoyaltyInvoiceRepository) FindByFranchise(ctx context.Context, franchiseID uuid.UUID) ([]*domain.RoyaltyInvoice, error) {
	args := m.Called(ctx, franchiseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.RoyaltyInvoice), args.Error(1)
}

func (m *MockRoyaltyInvoiceRepository) ExistsForMonth(ctx context.Context, franchiseID uuid.UUID, month time.Time) (bool, error) {
	args := m.Called(ctx, franchiseID, month)
	return args.Bool(0), args.Error(1)
}

func (m *MockRoyaltyInvoiceRepository) Save(ctx context.Context, invoice *domain.RoyaltyInvoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}
