package service_test

import (
	"testing"

	"razorpay-checkout/internal/repository"
	"razorpay-checkout/internal/service"
	"razorpay-checkout/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderNotifier(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	ctx := t.Context()

	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	require.NoError(t, productRepo.Seed(ctx))

	buyer := testutil.RandomUser()
	require.NoError(t, userRepo.Create(ctx, buyer))

	t.Run("sends completion mail", func(t *testing.T) {
		mailer := &fakeMailer{}
		order := testutil.RandomPendingOrder()
		order.UserID = buyer.ID
		order.ProductID = "monsoon-kerala"

		require.NoError(t, service.NewOrderNotifier(mailer, userRepo, productRepo).OrderCompleted(ctx, order))
		assert.Equal(t, []sentMail{{
			To:      buyer.Email,
			Subject: "Order Completed",
			Body:    "Your order Monsoon in Kerala has been successfully placed",
		}}, mailer.Sent())
	})

	t.Run("unknown buyer", func(t *testing.T) {
		mailer := &fakeMailer{}
		order := testutil.RandomPendingOrder()
		order.ProductID = "monsoon-kerala"

		err := service.NewOrderNotifier(mailer, userRepo, productRepo).OrderCompleted(ctx, order)
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
		assert.Empty(t, mailer.Sent())
	})

	t.Run("unknown product", func(t *testing.T) {
		mailer := &fakeMailer{}
		order := testutil.RandomPendingOrder()
		order.UserID = buyer.ID

		err := service.NewOrderNotifier(mailer, userRepo, productRepo).OrderCompleted(ctx, order)
		assert.ErrorIs(t, err, repository.ErrProductNotFound)
	})

	t.Run("mailer failure", func(t *testing.T) {
		order := testutil.RandomPendingOrder()
		order.UserID = buyer.ID
		order.ProductID = "monsoon-kerala"

		err := service.NewOrderNotifier(&fakeMailer{err: errSMTPDown}, userRepo, productRepo).OrderCompleted(ctx, order)
		assert.ErrorIs(t, err, errSMTPDown)
	})
}
