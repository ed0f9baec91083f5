package queries_test

import (
	"testing"

	"canteen/internal/core/application/usecases/queries"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetKitchenOrdersQuery_Construction(t *testing.T) {
	query := queries.NewGetKitchenOrdersQuery()
	require.NoError(t, query.Validate())

	var zero queries.GetKitchenOrdersQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrGetKitchenOrdersQueryIsNotConstructed)
}

func TestGetOrderStatsQuery_Construction(t *testing.T) {
	query := queries.NewGetOrderStatsQuery()
	require.NoError(t, query.Validate())

	var zero queries.GetOrderStatsQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrGetOrderStatsQueryIsNotConstructed)
}

func TestNewGetUserOrdersQuery(t *testing.T) {
	t.Run("accepts a valid user id", func(t *testing.T) {
		userID := kernel.NewUUID()

		query, err := queries.NewGetUserOrdersQuery(userID)
		require.NoError(t, err)
		assert.True(t, query.UserID().IsEqual(userID))
	})

	t.Run("rejects a zero user id", func(t *testing.T) {
		_, err := queries.NewGetUserOrdersQuery(kernel.UUID{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var zero queries.GetUserOrdersQuery
		require.ErrorIs(t, zero.Validate(), queries.ErrGetUserOrdersQueryIsNotConstructed)
	})
}

func TestNewGetAllOrdersQuery(t *testing.T) {
	t.Run("accepts empty filters and applies paging defaults", func(t *testing.T) {
		query, err := queries.NewGetAllOrdersQuery("", "", "", 0, 0)
		require.NoError(t, err)
		assert.Empty(t, query.StatusFilter())
		assert.Empty(t, query.PaymentFilter())
		assert.Empty(t, query.UserFilter())
		assert.Equal(t, 1, query.Page())
		assert.Equal(t, 50, query.PageSize())
	})

	t.Run("accepts valid filters", func(t *testing.T) {
		userID := kernel.NewUUID()

		query, err := queries.NewGetAllOrdersQuery("preparing", "paid", userID.String(), 3, 25)
		require.NoError(t, err)
		assert.Equal(t, "preparing", query.StatusFilter())
		assert.Equal(t, "paid", query.PaymentFilter())
		assert.Equal(t, userID.String(), query.UserFilter())
		assert.Equal(t, 3, query.Page())
		assert.Equal(t, 25, query.PageSize())
	})

	t.Run("rejects an unknown status filter", func(t *testing.T) {
		_, err := queries.NewGetAllOrdersQuery("delivered", "", "", 0, 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects an unknown payment filter", func(t *testing.T) {
		_, err := queries.NewGetAllOrdersQuery("", "declined", "", 0, 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects a malformed user filter", func(t *testing.T) {
		_, err := queries.NewGetAllOrdersQuery("", "", "not-a-uuid", 0, 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects a negative page", func(t *testing.T) {
		_, err := queries.NewGetAllOrdersQuery("", "", "", -1, 0)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects an oversized page size", func(t *testing.T) {
		_, err := queries.NewGetAllOrdersQuery("", "", "", 1, 500)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var zero queries.GetAllOrdersQuery
		require.ErrorIs(t, zero.Validate(), queries.ErrGetAllOrdersQueryIsNotConstructed)
	})
}
