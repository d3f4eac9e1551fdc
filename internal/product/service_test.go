package product

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetProducts(ctx context.Context, opts QueryOptions) ([]*Product, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Product), args.Error(1)
}

func (m *MockRepository) GetProductByID(ctx context.Context, id string, onlyActive bool) (*Product, error) {
	args := m.Called(ctx, id, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) GetProductsByIDs(ctx context.Context, ids []string) ([]*Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Product), args.Error(1)
}

func (m *MockRepository) GetCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRepository) CountProducts(ctx context.Context, filters Filters) (int64, error) {
	args := m.Called(ctx, filters)
	return args.Get(0).(int64), args.Error(1)
}

func TestService_GetProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults the page size", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetProducts", ctx, QueryOptions{Limit: 20}).
			Return([]*Product{{ID: "prod-1"}}, nil)

		products, err := svc.GetProducts(ctx, QueryOptions{})

		assert.NoError(t, err)
		assert.Len(t, products, 1)
		repo.AssertExpectations(t)
	})

	t.Run("caps the page size at 100", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetProducts", ctx, QueryOptions{Limit: 100}).
			Return([]*Product{}, nil)

		_, err := svc.GetProducts(ctx, QueryOptions{Limit: 500})

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("clamps a negative offset", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetProducts", ctx, QueryOptions{Limit: 20, Offset: 0}).
			Return([]*Product{}, nil)

		_, err := svc.GetProducts(ctx, QueryOptions{Limit: 20, Offset: -5})

		assert.NoError(t, err)
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetProducts", ctx, mock.Anything).
			Return(nil, errors.New("db error"))

		_, err := svc.GetProducts(ctx, QueryOptions{})

		assert.Error(t, err)
	})
}

func TestService_GetProductByID(t *testing.T) {
	ctx := context.Background()

	t.Run("returns an active product", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetProductByID", ctx, "prod-1", true).
			Return(&Product{ID: "prod-1", IsActive: true}, nil)

		p, err := svc.GetProductByID(ctx, "prod-1")

		assert.NoError(t, err)
		assert.Equal(t, "prod-1", p.ID)
	})

	t.Run("hides missing and inactive products alike", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetProductByID", ctx, "prod-x", true).Return(nil, nil)

		_, err := svc.GetProductByID(ctx, "prod-x")

		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestService_CountProducts(t *testing.T) {
	ctx := context.Background()

	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("CountProducts", ctx, Filters{}).Return(int64(42), nil)

	count, err := svc.CountProducts(ctx, Filters{})

	assert.NoError(t, err)
	assert.Equal(t, int64(42), count)
}
