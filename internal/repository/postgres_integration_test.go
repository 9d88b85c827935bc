//go:build integration

package repository_test

import (
	"context"
	"sync"
	"testing"

	"razorpay-checkout/internal/client"
	"razorpay-checkout/internal/config"
	"razorpay-checkout/internal/model"
	"razorpay-checkout/internal/repository"
	"razorpay-checkout/internal/testutil"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type postgresOrderSuite struct {
	suite.Suite

	db        *gorm.DB
	repo      repository.OrderRepository
	container testcontainers.Container
}

func TestPostgresOrderSuite(t *testing.T) {
	suite.Run(t, new(postgresOrderSuite))
}

// before all tests in the suite
func (suite *postgresOrderSuite) SetupSuite() {
	ctx := suite.T().Context()

	var (
		connStr string
		err     error
	)

	suite.container, connStr, err = startPostgres(ctx)
	suite.Require().NoError(err)

	suite.db, err = client.InitDBClient(config.Database{Driver: "postgres", URL: connStr}, false)
	suite.Require().NoError(err)

	suite.repo = repository.NewOrderRepository(suite.db)
}

// after all tests in the suite
func (suite *postgresOrderSuite) TearDownSuite() {
	ctx := context.Background()

	if suite.db != nil {
		if sqlDB, err := suite.db.DB(); err == nil {
			suite.NoError(sqlDB.Close())
		}
	}
	if suite.container != nil {
		suite.NoError(suite.container.Terminate(ctx))
	}
}

func (suite *postgresOrderSuite) TestDuplicateGatewayOrderID() {
	ctx := suite.T().Context()

	order := testutil.RandomPendingOrder()
	suite.Require().NoError(suite.repo.Create(ctx, order))

	dup := testutil.RandomPendingOrder()
	dup.GatewayOrderID = order.GatewayOrderID
	suite.ErrorIs(suite.repo.Create(ctx, dup), repository.ErrDuplicateGatewayOrder)
}

func (suite *postgresOrderSuite) TestUpdateIfPending_ConcurrentDeliveries() {
	ctx := suite.T().Context()
	order := testutil.RandomPendingOrder()
	suite.Require().NoError(suite.repo.Create(ctx, order))

	const deliveries = 16
	results := make(chan *model.Order, deliveries)

	var wg sync.WaitGroup
	for i := 0; i < deliveries; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			updated, err := suite.repo.UpdateIfPending(ctx, order.GatewayOrderID,
				model.OrderTransition{Status: model.OrderStatusCompleted, GatewayPaymentID: "pay_1"})
			suite.NoError(err)
			results <- updated
		}()
	}
	wg.Wait()
	close(results)

	winners := 0
	for updated := range results {
		if updated != nil {
			winners++
		}
	}
	suite.Equal(1, winners)

	stored, err := suite.repo.FindByID(ctx, order.ID)
	require.NoError(suite.T(), err)
	suite.Equal(model.OrderStatusCompleted, stored.Status)
	suite.Equal("pay_1", stored.GatewayPaymentID)
	suite.NotNil(stored.CompletedAt)
}

func startPostgres(ctx context.Context) (testcontainers.Container, string, error) {
	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("checkout"),
		postgres.WithUsername("checkout"),
		postgres.WithPassword("checkout"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		return nil, "", err
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return container, "", err
	}

	return container, connStr, nil
}
