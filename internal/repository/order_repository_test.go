package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/db"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/nikolayk812/storefront/internal/repository"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"go.uber.org/goleak"
	"golang.org/x/text/currency"
)

type orderRepositorySuite struct {
	suite.Suite

	pool      *pgxpool.Pool
	repo      port.OrderRepository
	container testcontainers.Container
}

// entry point to run the tests in the suite
func TestOrderRepositorySuite(t *testing.T) {
	// Verifies no leaks after all tests in the suite run.
	defer goleak.VerifyNone(t)

	suite.Run(t, new(orderRepositorySuite))
}

// before all tests in the suite
func (suite *orderRepositorySuite) SetupSuite() {
	ctx := suite.T().Context()

	var err error

	suite.container, suite.pool, err = startPostgres(ctx)
	suite.Require().NoError(err)

	suite.repo, err = repository.NewOrder(suite.pool, currency.EUR)
	suite.Require().NoError(err)
}

// after all tests in the suite
func (suite *orderRepositorySuite) TearDownSuite() {
	ctx := context.Background()

	if suite.pool != nil {
		suite.pool.Close()
	}
	if suite.container != nil {
		suite.NoError(suite.container.Terminate(ctx))
	}
}

// checkout is a user with an address and one product: stock 5, price 10.00
type checkout struct {
	user    fakeUser
	address fakeAddress
	product fakeProduct
}

func (suite *orderRepositorySuite) newCheckout() checkout {
	t := suite.T()

	user := insertUser(t, suite.pool)

	return checkout{
		user:    user,
		address: insertAddress(t, suite.pool, user.id),
		product: insertProduct(t, suite.pool, "10.00", 5),
	}
}

func (c checkout) request(lines ...domain.OrderLine) domain.PlaceOrderRequest {
	return domain.PlaceOrderRequest{
		UserID:        c.user.uuid,
		AddressID:     c.address.uuid,
		Items:         lines,
		PaymentMethod: "Credit Card",
	}
}

func line(productID uuid.UUID, quantity int32) domain.OrderLine {
	return domain.OrderLine{ProductID: productID, Quantity: quantity}
}

func (suite *orderRepositorySuite) TestPlaceOrder() {
	defer truncateAll(suite.T(), suite.pool)

	t := suite.T()
	ctx := t.Context()

	c := suite.newCheckout()
	other := insertProduct(t, suite.pool, "2.50", 10)

	identity, err := suite.repo.PlaceOrder(ctx, c.request(line(c.product.uuid, 3), line(other.uuid, 2)))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, identity.UUID)
	assert.Equal(t, c.user.id, identity.UserID)
	assert.Equal(t, "35.00 EUR", identity.Total.String())

	assert.Equal(t, int32(2), productStock(t, suite.pool, c.product.uuid))
	assert.Equal(t, int32(8), productStock(t, suite.pool, other.uuid))

	actual, err := suite.repo.GetOrder(ctx, identity.UUID)
	require.NoError(t, err)

	expected := domain.Order{
		ID:            identity.ID,
		UUID:          identity.UUID,
		UserID:        c.user.uuid,
		CustomerName:  c.user.name,
		Status:        domain.OrderStatusInitial,
		Total:         domain.NewMoney(decimal.RequireFromString("35.00"), currency.EUR),
		PaymentMethod: "Credit Card",
		ShippingAddress: domain.AddressSnapshot{
			Name:       c.address.name,
			Line1:      c.address.line1,
			City:       c.address.city,
			PostalCode: c.address.postalCode,
			Country:    c.address.country,
		},
		Items: []domain.OrderItem{
			{
				ProductID:   c.product.id,
				ProductUUID: c.product.uuid,
				ProductName: c.product.name,
				Quantity:    3,
				UnitPrice:   c.product.price,
			},
			{
				ProductID:   other.id,
				ProductUUID: other.uuid,
				ProductName: other.name,
				Quantity:    2,
				UnitPrice:   other.price,
			},
		},
	}

	assertOrder(t, expected, actual)
	itemsTotal := lo.Reduce(actual.Items, func(sum decimal.Decimal, item domain.OrderItem, _ int) decimal.Decimal {
		return sum.Add(item.LineTotal())
	}, decimal.Zero)
	assert.True(t, actual.Total.Amount.Equal(itemsTotal), "total equals the sum of the items")

	entries, err := db.New(suite.pool).ListTransactionsByOrder(ctx, lo.ToPtr(identity.ID))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, string(domain.LedgerEntryIncome), entries[0].Type)
	assert.True(t, decimal.RequireFromString("35.00").Equal(entries[0].Amount))
	assert.Equal(t, "Order "+identity.UUID.String(), entries[0].Description)
}

func (suite *orderRepositorySuite) TestPlaceOrder_Failures() {
	defer truncateAll(suite.T(), suite.pool)

	c := suite.newCheckout()
	stranger := insertUser(suite.T(), suite.pool)
	strangerAddress := insertAddress(suite.T(), suite.pool, stranger.id)
	second := insertProduct(suite.T(), suite.pool, "1.00", 1)

	tests := []struct {
		name      string
		req       domain.PlaceOrderRequest
		wantError error
		check     func(t *testing.T, err error)
	}{
		{
			name:      "more than in stock: insufficient stock",
			req:       c.request(line(c.product.uuid, 10)),
			wantError: domain.ErrInsufficientStock,
			check: func(t *testing.T, err error) {
				var stockErr *domain.InsufficientStockError
				require.ErrorAs(t, err, &stockErr)
				assert.Equal(t, c.product.uuid, stockErr.ProductID)
				assert.Equal(t, c.product.name, stockErr.ProductName)
				assert.Equal(t, int32(5), stockErr.Available)
				assert.Equal(t, int32(10), stockErr.Requested)
			},
		},
		{
			name:      "second line short of stock: insufficient stock, first line not kept",
			req:       c.request(line(c.product.uuid, 2), line(second.uuid, 2)),
			wantError: domain.ErrInsufficientStock,
		},
		{
			name:      "same product twice over stock: insufficient stock",
			req:       c.request(line(c.product.uuid, 3), line(c.product.uuid, 3)),
			wantError: domain.ErrInsufficientStock,
			check: func(t *testing.T, err error) {
				var stockErr *domain.InsufficientStockError
				require.ErrorAs(t, err, &stockErr)
				assert.Equal(t, int32(2), stockErr.Available)
				assert.Equal(t, int32(3), stockErr.Requested)
			},
		},
		{
			name:      "unknown product after a valid one: product not found",
			req:       c.request(line(c.product.uuid, 1), line(uuid.New(), 1)),
			wantError: domain.ErrProductNotFound,
		},
		{
			name: "unknown user: user not found",
			req: domain.PlaceOrderRequest{
				UserID:    uuid.New(),
				AddressID: c.address.uuid,
				Items:     []domain.OrderLine{line(c.product.uuid, 1)},
			},
			wantError: domain.ErrUserNotFound,
		},
		{
			name: "unknown address: address not found",
			req: domain.PlaceOrderRequest{
				UserID:    c.user.uuid,
				AddressID: uuid.New(),
				Items:     []domain.OrderLine{line(c.product.uuid, 1)},
			},
			wantError: domain.ErrAddressNotFound,
		},
		{
			name: "address of another user: address not found",
			req: domain.PlaceOrderRequest{
				UserID:    c.user.uuid,
				AddressID: strangerAddress.uuid,
				Items:     []domain.OrderLine{line(c.product.uuid, 1)},
			},
			wantError: domain.ErrAddressNotFound,
		},
		{
			name:      "zero quantity: invalid quantity",
			req:       c.request(line(c.product.uuid, 0)),
			wantError: domain.ErrInvalidQuantity,
		},
		{
			name:      "no items: empty item list",
			req:       c.request(),
			wantError: domain.ErrEmptyItemList,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			before := captureState(t, suite.pool)

			_, err := suite.repo.PlaceOrder(ctx, tt.req)
			require.ErrorIs(t, err, tt.wantError)
			if tt.check != nil {
				tt.check(t, err)
			}

			after := captureState(t, suite.pool)
			if diff := cmp.Diff(before, after); diff != "" {
				t.Errorf("state changed after a failed order (-before +after):\n%s", diff)
			}
		})
	}
}

func (suite *orderRepositorySuite) TestPlaceOrder_EmptyItemsDoesNotTouchDatabase() {
	t := suite.T()

	closed, err := pgxpool.New(t.Context(), suite.pool.Config().ConnString())
	require.NoError(t, err)
	closed.Close()

	repo, err := repository.NewOrder(closed, currency.EUR)
	require.NoError(t, err)

	_, err = repo.PlaceOrder(t.Context(), domain.PlaceOrderRequest{
		UserID:    uuid.New(),
		AddressID: uuid.New(),
	})
	require.ErrorIs(t, err, domain.ErrEmptyItemList)
}

// An unknown address fails before any product row is locked, so a
// placement does not wait for a product someone else holds.
func (suite *orderRepositorySuite) TestPlaceOrder_AddressResolvedBeforeLocking() {
	defer truncateAll(suite.T(), suite.pool)

	t := suite.T()
	ctx := t.Context()

	c := suite.newCheckout()

	holder, err := suite.pool.Begin(ctx)
	require.NoError(t, err)
	defer func() {
		_ = holder.Rollback(context.Background())
	}()

	_, err = holder.Exec(ctx, `SELECT id FROM products WHERE uuid = $1 FOR UPDATE`, c.product.uuid)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err = suite.repo.PlaceOrder(ctx, domain.PlaceOrderRequest{
		UserID:    c.user.uuid,
		AddressID: uuid.New(),
		Items:     []domain.OrderLine{line(c.product.uuid, 1)},
	})
	require.ErrorIs(t, err, domain.ErrAddressNotFound)
}

func (suite *orderRepositorySuite) TestPlaceOrder_Concurrent() {
	defer truncateAll(suite.T(), suite.pool)

	t := suite.T()
	ctx := t.Context()

	c := suite.newCheckout()

	// hold the product row so both placements queue on the same lock
	holder, err := suite.pool.Begin(ctx)
	require.NoError(t, err)

	_, err = holder.Exec(ctx, `SELECT id FROM products WHERE uuid = $1 FOR UPDATE`, c.product.uuid)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 2)

	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = suite.repo.PlaceOrder(ctx, c.request(line(c.product.uuid, 3)))
		}()
	}

	require.Eventually(t, func() bool {
		var waiting int
		err := suite.pool.QueryRow(ctx,
			`SELECT COUNT(*) FROM pg_stat_activity WHERE wait_event_type = 'Lock'`).Scan(&waiting)
		return err == nil && waiting == 2
	}, 10*time.Second, 50*time.Millisecond)

	require.NoError(t, holder.Commit(ctx))
	wg.Wait()

	succeeded := lo.Filter(errs, func(err error, _ int) bool { return err == nil })
	require.Len(t, succeeded, 1, "exactly one placement wins: %v", errs)

	failed, _ := lo.Find(errs, func(err error) bool { return err != nil })
	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, failed, &stockErr)
	assert.Equal(t, int32(2), stockErr.Available)
	assert.Equal(t, int32(3), stockErr.Requested)

	assert.Equal(t, int32(2), productStock(t, suite.pool, c.product.uuid))
}

// Two orders locking the same products in opposite order deadlock;
// Postgres aborts one side and the repository reports it as retryable.
func (suite *orderRepositorySuite) TestPlaceOrder_DeadlockIsRetryable() {
	defer truncateAll(suite.T(), suite.pool)

	t := suite.T()
	ctx := t.Context()

	c := suite.newCheckout()
	second := insertProduct(t, suite.pool, "1.00", 5)

	holder, err := suite.pool.Begin(ctx)
	require.NoError(t, err)
	defer func() {
		_ = holder.Rollback(context.Background())
	}()

	_, err = holder.Exec(ctx, `SELECT id FROM products WHERE uuid = $1 FOR UPDATE`, c.product.uuid)
	require.NoError(t, err)

	placeErr := make(chan error, 1)
	go func() {
		_, err := suite.repo.PlaceOrder(ctx, c.request(line(second.uuid, 1), line(c.product.uuid, 1)))
		placeErr <- err
	}()

	require.Eventually(t, func() bool {
		var waiting int
		err := suite.pool.QueryRow(ctx,
			`SELECT COUNT(*) FROM pg_stat_activity WHERE wait_event_type = 'Lock'`).Scan(&waiting)
		return err == nil && waiting == 1
	}, 10*time.Second, 50*time.Millisecond)

	_, holderErr := holder.Exec(ctx, `SELECT id FROM products WHERE uuid = $1 FOR UPDATE`, second.uuid)
	if holderErr != nil {
		// the holder was chosen as the victim, the placement goes through
		_ = holder.Rollback(ctx)
		require.NoError(t, <-placeErr)
		return
	}

	err = <-placeErr
	require.ErrorIs(t, err, domain.ErrConcurrentUpdate)
}

func (suite *orderRepositorySuite) TestPlaceOrder_WithTxJoinsCallerTransaction() {
	defer truncateAll(suite.T(), suite.pool)

	t := suite.T()
	ctx := t.Context()

	c := suite.newCheckout()
	before := captureState(t, suite.pool)

	tx, err := suite.pool.Begin(ctx)
	require.NoError(t, err)

	repo, err := repository.NewOrderWithTx(tx, currency.EUR)
	require.NoError(t, err)

	identity, err := repo.PlaceOrder(ctx, c.request(line(c.product.uuid, 1)))
	require.NoError(t, err)

	_, err = repo.GetOrder(ctx, identity.UUID)
	require.NoError(t, err)

	require.NoError(t, tx.Rollback(ctx))

	_, err = suite.repo.GetOrder(ctx, identity.UUID)
	require.ErrorIs(t, err, domain.ErrOrderNotFound)

	if diff := cmp.Diff(before, captureState(t, suite.pool)); diff != "" {
		t.Errorf("rolled back placement left changes (-before +after):\n%s", diff)
	}
}

func (suite *orderRepositorySuite) TestPlaceOrder_PricesAreFrozen() {
	defer truncateAll(suite.T(), suite.pool)

	t := suite.T()
	ctx := t.Context()

	c := suite.newCheckout()

	identity, err := suite.repo.PlaceOrder(ctx, c.request(line(c.product.uuid, 2)))
	require.NoError(t, err)

	_, err = suite.pool.Exec(ctx, `UPDATE products SET price = 99.99 WHERE uuid = $1`, c.product.uuid)
	require.NoError(t, err)
	_, err = suite.pool.Exec(ctx, `UPDATE addresses SET city = 'Elsewhere' WHERE uuid = $1`, c.address.uuid)
	require.NoError(t, err)

	order, err := suite.repo.GetOrder(ctx, identity.UUID)
	require.NoError(t, err)

	require.Len(t, order.Items, 1)
	assert.True(t, decimal.RequireFromString("10.00").Equal(order.Items[0].UnitPrice))
	assert.True(t, decimal.RequireFromString("20.00").Equal(order.Total.Amount))
	assert.Equal(t, c.address.city, order.ShippingAddress.City)
}

func (suite *orderRepositorySuite) TestGetOrder_NotFound() {
	t := suite.T()

	_, err := suite.repo.GetOrder(t.Context(), uuid.New())
	require.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func (suite *orderRepositorySuite) TestListOrdersByUser() {
	defer truncateAll(suite.T(), suite.pool)

	t := suite.T()
	ctx := t.Context()

	c := suite.newCheckout()
	other := suite.newCheckout()

	first := suite.placeOrder(c.request(line(c.product.uuid, 1)))
	second := suite.placeOrder(c.request(line(c.product.uuid, 2)))
	suite.placeOrder(other.request(line(other.product.uuid, 1)))

	tests := []struct {
		name      string
		limit     *int32
		wantIDs   []uuid.UUID
		wantError string
	}{
		{
			name:    "no limit, newest first: ok",
			wantIDs: []uuid.UUID{second.UUID, first.UUID},
		},
		{
			name:    "limit 1: ok",
			limit:   lo.ToPtr[int32](1),
			wantIDs: []uuid.UUID{second.UUID},
		},
		{
			name:      "limit 0: fail",
			limit:     lo.ToPtr[int32](0),
			wantError: "limit must be positive: 0",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()

			orders, err := suite.repo.ListOrdersByUser(ctx, c.user.uuid, tt.limit)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.wantIDs, lo.Map(orders, func(o domain.Order, _ int) uuid.UUID { return o.UUID }))
			for _, o := range orders {
				assert.Equal(t, c.user.uuid, o.UserID)
				assert.NotEmpty(t, o.Items)
			}
		})
	}

	orders, err := suite.repo.ListOrdersByUser(ctx, uuid.New(), nil)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func (suite *orderRepositorySuite) TestSearchOrders() {
	defer truncateAll(suite.T(), suite.pool)

	ctx := suite.T().Context()

	c := suite.newCheckout()
	other := suite.newCheckout()

	o1 := suite.placeOrder(c.request(line(c.product.uuid, 1)))
	o2 := suite.placeOrder(c.request(line(c.product.uuid, 1)))
	o3 := suite.placeOrder(other.request(line(other.product.uuid, 1)))

	suite.Require().NoError(suite.repo.UpdateOrderStatus(ctx, o2.UUID, domain.OrderStatusShipped))

	now := time.Now()
	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	tests := []struct {
		name      string
		filter    domain.OrderFilter
		wantIDs   []uuid.UUID
		wantError string
	}{
		{
			name:    "empty filter: all orders",
			wantIDs: []uuid.UUID{o3.UUID, o2.UUID, o1.UUID},
		},
		{
			name:    "by user: ok",
			filter:  domain.OrderFilter{UserIDs: []uuid.UUID{c.user.uuid}},
			wantIDs: []uuid.UUID{o2.UUID, o1.UUID},
		},
		{
			name:    "by status: ok",
			filter:  domain.OrderFilter{Statuses: []domain.OrderStatus{domain.OrderStatusShipped}},
			wantIDs: []uuid.UUID{o2.UUID},
		},
		{
			name: "by user and status: ok",
			filter: domain.OrderFilter{
				UserIDs:  []uuid.UUID{other.user.uuid},
				Statuses: []domain.OrderStatus{domain.OrderStatusProcessing},
			},
			wantIDs: []uuid.UUID{o3.UUID},
		},
		{
			name:    "by uuid: ok",
			filter:  domain.OrderFilter{UUIDs: []uuid.UUID{o1.UUID, o3.UUID}},
			wantIDs: []uuid.UUID{o3.UUID, o1.UUID},
		},
		{
			name:    "created in the last hour: ok",
			filter:  domain.OrderFilter{CreatedAt: &domain.TimeRange{After: &past, Before: &future}},
			wantIDs: []uuid.UUID{o3.UUID, o2.UUID, o1.UUID},
		},
		{
			name:    "created in the future: none",
			filter:  domain.OrderFilter{CreatedAt: &domain.TimeRange{After: &future}},
			wantIDs: []uuid.UUID{},
		},
		{
			name:    "limit 2: ok",
			filter:  domain.OrderFilter{Limit: lo.ToPtr[uint64](2)},
			wantIDs: []uuid.UUID{o3.UUID, o2.UUID},
		},
		{
			name:      "unknown status: fail",
			filter:    domain.OrderFilter{Statuses: []domain.OrderStatus{"lost"}},
			wantError: `filter.Validate: statuses: invalid order status: "lost"`,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()

			orders, err := suite.repo.SearchOrders(ctx, tt.filter)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.wantIDs, lo.Map(orders, func(o domain.Order, _ int) uuid.UUID { return o.UUID }))
			for _, o := range orders {
				require.Len(t, o.Items, 1)
				assert.NotEmpty(t, o.CustomerEmail)
			}
		})
	}
}

func (suite *orderRepositorySuite) TestCancelOrder() {
	defer truncateAll(suite.T(), suite.pool)

	ctx := suite.T().Context()

	c := suite.newCheckout()
	stranger := insertUser(suite.T(), suite.pool)

	tests := []struct {
		name        string
		status      domain.OrderStatus // set before cancelling, initial status if empty
		userIDFunc  func() uuid.UUID
		orderIDFunc func(placed uuid.UUID) uuid.UUID
		wantError   error
	}{
		{
			name: "processing order by owner: ok",
		},
		{
			name:   "pending order by owner: ok",
			status: domain.OrderStatusPending,
		},
		{
			name:      "shipped order: not cancellable",
			status:    domain.OrderStatusShipped,
			wantError: domain.ErrOrderNotCancellable,
		},
		{
			name:      "cancelled order: not cancellable",
			status:    domain.OrderStatusCancelled,
			wantError: domain.ErrOrderNotCancellable,
		},
		{
			name:       "order of another user: not found",
			userIDFunc: func() uuid.UUID { return stranger.uuid },
			wantError:  domain.ErrOrderNotFound,
		},
		{
			name:        "unknown order: not found",
			orderIDFunc: func(uuid.UUID) uuid.UUID { return uuid.New() },
			wantError:   domain.ErrOrderNotFound,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()

			placed := suite.placeOrder(c.request(line(c.product.uuid, 1)))
			if tt.status != "" {
				require.NoError(t, suite.repo.UpdateOrderStatus(ctx, placed.UUID, tt.status))
			}
			stockBefore := productStock(t, suite.pool, c.product.uuid)

			userID := c.user.uuid
			if tt.userIDFunc != nil {
				userID = tt.userIDFunc()
			}
			orderID := placed.UUID
			if tt.orderIDFunc != nil {
				orderID = tt.orderIDFunc(placed.UUID)
			}

			err := suite.repo.CancelOrder(ctx, orderID, userID)
			if tt.wantError != nil {
				require.ErrorIs(t, err, tt.wantError)
			} else {
				require.NoError(t, err)

				order, err := suite.repo.GetOrder(ctx, placed.UUID)
				require.NoError(t, err)
				assert.Equal(t, domain.OrderStatusCancelled, order.Status)
			}

			// cancelling never puts stock back
			assert.Equal(t, stockBefore, productStock(t, suite.pool, c.product.uuid))

			// keep enough stock for the next case
			_, err = suite.pool.Exec(ctx, `UPDATE products SET stock_quantity = 5 WHERE uuid = $1`, c.product.uuid)
			require.NoError(t, err)
		})
	}
}

func (suite *orderRepositorySuite) TestUpdateOrderStatus() {
	defer truncateAll(suite.T(), suite.pool)

	ctx := suite.T().Context()

	c := suite.newCheckout()
	placed := suite.placeOrder(c.request(line(c.product.uuid, 1)))

	tests := []struct {
		name       string
		orderID    uuid.UUID
		status     domain.OrderStatus
		wantStatus domain.OrderStatus
		wantError  string
	}{
		{
			name:       "to shipped: ok",
			orderID:    placed.UUID,
			status:     domain.OrderStatusShipped,
			wantStatus: domain.OrderStatusShipped,
		},
		{
			name:       "back to pending: ok",
			orderID:    placed.UUID,
			status:     domain.OrderStatusPending,
			wantStatus: domain.OrderStatusPending,
		},
		{
			name:       "legacy label: ok",
			orderID:    placed.UUID,
			status:     "Storniert",
			wantStatus: domain.OrderStatusCancelled,
		},
		{
			name:      "unknown status: fail",
			orderID:   placed.UUID,
			status:    "lost",
			wantError: `domain.ToOrderStatus: invalid order status: "lost"`,
		},
		{
			name:      "empty status: fail",
			orderID:   placed.UUID,
			wantError: "status is empty",
		},
		{
			name:      "unknown order: not found",
			orderID:   uuid.New(),
			status:    domain.OrderStatusShipped,
			wantError: "q.UpdateOrderStatus: order not found",
		},
		{
			name:      "nil order: fail",
			status:    domain.OrderStatusShipped,
			wantError: "orderID is empty",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()

			err := suite.repo.UpdateOrderStatus(ctx, tt.orderID, tt.status)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			order, err := suite.repo.GetOrder(ctx, tt.orderID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, order.Status)
		})
	}
}

func (suite *orderRepositorySuite) TestGetReorderItems() {
	defer truncateAll(suite.T(), suite.pool)

	t := suite.T()
	ctx := t.Context()

	c := suite.newCheckout()
	other := insertProduct(t, suite.pool, "3.00", 10)

	placed := suite.placeOrder(c.request(line(c.product.uuid, 2), line(other.uuid, 4)))

	lines, err := suite.repo.GetReorderItems(ctx, placed.UUID, c.user.uuid)
	require.NoError(t, err)
	assert.Equal(t, []domain.OrderLine{line(c.product.uuid, 2), line(other.uuid, 4)}, lines)

	_, err = suite.repo.GetReorderItems(ctx, placed.UUID, uuid.New())
	require.ErrorIs(t, err, domain.ErrOrderNotFound)

	_, err = suite.repo.GetReorderItems(ctx, uuid.New(), c.user.uuid)
	require.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func (suite *orderRepositorySuite) placeOrder(req domain.PlaceOrderRequest) domain.OrderIdentity {
	identity, err := suite.repo.PlaceOrder(suite.T().Context(), req)
	suite.Require().NoError(err)
	return identity
}

func assertOrder(t *testing.T, expected, actual domain.Order) {
	t.Helper()

	currencyComparer := cmp.Comparer(func(x, y currency.Unit) bool {
		return x.String() == y.String()
	})

	decimalComparer := cmp.Comparer(func(x, y decimal.Decimal) bool {
		return x.Equal(y)
	})

	opts := []cmp.Option{
		cmpopts.IgnoreFields(domain.Order{}, "CreatedAt", "CustomerEmail"),
		currencyComparer,
		decimalComparer,
	}

	diff := cmp.Diff(expected, actual, opts...)
	assert.Empty(t, diff)

	assert.False(t, actual.CreatedAt.IsZero())
	assert.NotEmpty(t, actual.CustomerEmail)
}
