package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/db"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type orderRepository struct {
	dbtx     db.DBTX
	q        *db.Queries
	currency currency.Unit
	builder  sq.StatementBuilderType
}

func NewOrder(pool *pgxpool.Pool, unit currency.Unit) (port.OrderRepository, error) {
	if pool == nil {
		return nil, errors.New("pool is nil")
	}

	return newOrderRepository(pool, unit)
}

func NewOrderWithTx(tx pgx.Tx, unit currency.Unit) (port.OrderRepository, error) {
	if tx == nil {
		return nil, errors.New("tx is nil")
	}

	return newOrderRepository(tx, unit)
}

func newOrderRepository(dbtx db.DBTX, unit currency.Unit) (*orderRepository, error) {
	if unit == (currency.Unit{}) {
		return nil, errors.New("currency is empty")
	}

	return &orderRepository{
		dbtx:     dbtx,
		q:        db.New(dbtx),
		currency: unit,
		builder:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}, nil
}

// lockedLine is a requested item whose product row is locked, with the
// price read under that lock.
type lockedLine struct {
	productID int64
	quantity  int32
	unitPrice decimal.Decimal
}

func (r *orderRepository) PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest) (domain.OrderIdentity, error) {
	var identity domain.OrderIdentity

	if err := req.Validate(); err != nil {
		return identity, fmt.Errorf("req.Validate: %w", err)
	}

	identity, err := withTx(ctx, r.dbtx, func(q *db.Queries) (domain.OrderIdentity, error) {
		return r.placeOrder(ctx, q, req)
	})
	if err != nil {
		return identity, fmt.Errorf("withTx: %w", mapPgError(err))
	}

	return identity, nil
}

func (r *orderRepository) placeOrder(ctx context.Context, q *db.Queries, req domain.PlaceOrderRequest) (domain.OrderIdentity, error) {
	var identity domain.OrderIdentity

	userID, err := q.GetUserIDByUUID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return identity, fmt.Errorf("q.GetUserIDByUUID: %w", domain.ErrUserNotFound)
		}
		return identity, fmt.Errorf("q.GetUserIDByUUID: %w", err)
	}

	dbAddress, err := q.GetAddress(ctx, req.AddressID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return identity, fmt.Errorf("q.GetAddress: %w", domain.ErrAddressNotFound)
		}
		return identity, fmt.Errorf("q.GetAddress: %w", err)
	}

	// someone else's address is reported as missing
	if dbAddress.UserID != userID {
		return identity, fmt.Errorf("q.GetAddress: %w", domain.ErrAddressNotFound)
	}

	snapshot, err := mapGetAddressRowToDomain(dbAddress).Snapshot().Marshal()
	if err != nil {
		return identity, fmt.Errorf("snapshot.Marshal: %w", err)
	}

	lines, total, err := lockLines(ctx, q, req.Items)
	if err != nil {
		return identity, fmt.Errorf("lockLines: %w", err)
	}

	dbOrder, err := q.InsertOrder(ctx, db.InsertOrderParams{
		UserID:              userID,
		Status:              string(domain.OrderStatusInitial),
		TotalAmount:         total,
		Currency:            r.currency.String(),
		ShippingAddressJson: snapshot,
		PaymentMethodName:   req.PaymentMethod,
	})
	if err != nil {
		return identity, fmt.Errorf("q.InsertOrder: %w", err)
	}

	for _, line := range lines {
		arg := db.InsertOrderItemParams{
			OrderID:   dbOrder.ID,
			ProductID: line.productID,
			Quantity:  line.quantity,
			UnitPrice: line.unitPrice,
		}
		if err := q.InsertOrderItem(ctx, arg); err != nil {
			return identity, fmt.Errorf("q.InsertOrderItem: %w", err)
		}
	}

	for _, line := range lines {
		cmdTag, err := q.DecrementProductStock(ctx, db.DecrementProductStockParams{
			ID:       line.productID,
			Quantity: line.quantity,
		})
		if err != nil {
			return identity, fmt.Errorf("q.DecrementProductStock: %w", err)
		}

		// the row is locked, the stock check above still holds
		if cmdTag.RowsAffected() == 0 {
			return identity, fmt.Errorf("q.DecrementProductStock[%d]: no row updated", line.productID)
		}
	}

	if _, err := q.InsertTransaction(ctx, db.InsertTransactionParams{
		OrderID:     lo.ToPtr(dbOrder.ID),
		Type:        string(domain.LedgerEntryIncome),
		Description: fmt.Sprintf("Order %s", dbOrder.Uuid),
		Amount:      total,
	}); err != nil {
		return identity, fmt.Errorf("q.InsertTransaction: %w", err)
	}

	return domain.OrderIdentity{
		ID:     dbOrder.ID,
		UUID:   dbOrder.Uuid,
		UserID: userID,
		Total:  domain.NewMoney(total, r.currency),
	}, nil
}

// lockLines locks each product row in request order and checks stock.
// A product listed more than once is checked against what the earlier
// lines already reserved.
func lockLines(ctx context.Context, q *db.Queries, items []domain.OrderLine) ([]lockedLine, decimal.Decimal, error) {
	total := decimal.Zero
	lines := make([]lockedLine, 0, len(items))
	reserved := make(map[int64]int32, len(items))

	for _, item := range items {
		product, err := q.GetProductForUpdate(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, total, fmt.Errorf("q.GetProductForUpdate: %w", domain.NewProductNotFoundError(item.ProductID))
			}
			return nil, total, fmt.Errorf("q.GetProductForUpdate: %w", err)
		}

		available := product.StockQuantity - reserved[product.ID]
		if available < item.Quantity {
			return nil, total, &domain.InsufficientStockError{
				ProductID:   product.Uuid,
				ProductName: product.Name,
				Available:   available,
				Requested:   item.Quantity,
			}
		}
		reserved[product.ID] += item.Quantity

		lines = append(lines, lockedLine{
			productID: product.ID,
			quantity:  item.Quantity,
			unitPrice: product.Price,
		})
		total = total.Add(product.Price.Mul(decimal.NewFromInt32(item.Quantity)))
	}

	return lines, total, nil
}

func (r *orderRepository) GetOrder(ctx context.Context, orderID uuid.UUID) (domain.Order, error) {
	var o domain.Order

	order, err := withTx(ctx, r.dbtx, func(q *db.Queries) (domain.Order, error) {
		dbOrder, err := q.GetOrder(ctx, orderID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return o, fmt.Errorf("q.GetOrder: %w", domain.ErrOrderNotFound)
			}
			return o, fmt.Errorf("q.GetOrder: %w", err)
		}

		dbOrderItems, err := q.GetOrderItems(ctx, []int64{dbOrder.ID})
		if err != nil {
			return o, fmt.Errorf("q.GetOrderItems: %w", err)
		}

		domainOrder, err := mapGetOrderRowToDomain(dbOrder, dbOrderItems)
		if err != nil {
			return o, fmt.Errorf("mapGetOrderRowToDomain: %w", err)
		}

		return domainOrder, nil
	})
	if err != nil {
		return o, fmt.Errorf("withTx: %w", err)
	}

	return order, nil
}

func (r *orderRepository) ListOrdersByUser(ctx context.Context, userID uuid.UUID, limit *int32) ([]domain.Order, error) {
	if limit != nil && *limit <= 0 {
		return nil, fmt.Errorf("limit must be positive: %d", *limit)
	}

	orders, err := withTx(ctx, r.dbtx, func(q *db.Queries) ([]domain.Order, error) {
		dbOrders, err := q.ListOrdersByUser(ctx, db.ListOrdersByUserParams{
			UserUuid: userID,
			Limit:    limit,
		})
		if err != nil {
			return nil, fmt.Errorf("q.ListOrdersByUser: %w", err)
		}

		orderIDs := lo.Map(dbOrders, func(row db.ListOrdersByUserRow, _ int) int64 {
			return row.ID
		})

		itemsByOrder, err := getItemsByOrder(ctx, q, orderIDs)
		if err != nil {
			return nil, fmt.Errorf("getItemsByOrder: %w", err)
		}

		result := make([]domain.Order, 0, len(dbOrders))
		for _, row := range dbOrders {
			order, err := mapListOrdersByUserRowToDomain(row, itemsByOrder[row.ID])
			if err != nil {
				return nil, fmt.Errorf("mapListOrdersByUserRowToDomain: %w", err)
			}
			order.UserID = userID
			result = append(result, order)
		}

		return result, nil
	})
	if err != nil {
		return nil, fmt.Errorf("withTx: %w", err)
	}

	return orders, nil
}

func (r *orderRepository) SearchOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	if err := filter.Validate(); err != nil {
		return nil, fmt.Errorf("filter.Validate: %w", err)
	}

	query, args, err := r.buildSearchOrders(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ToSql: %w", err)
	}

	rows, err := r.dbtx.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("dbtx.Query: %w", err)
	}

	dbOrders, err := pgx.CollectRows(rows, pgx.RowToStructByPos[db.GetOrderRow])
	if err != nil {
		return nil, fmt.Errorf("pgx.CollectRows: %w", err)
	}

	orderIDs := lo.Map(dbOrders, func(row db.GetOrderRow, _ int) int64 {
		return row.ID
	})

	itemsByOrder, err := getItemsByOrder(ctx, r.q, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("getItemsByOrder: %w", err)
	}

	orders := make([]domain.Order, 0, len(dbOrders))
	for _, row := range dbOrders {
		order, err := mapGetOrderRowToDomain(row, itemsByOrder[row.ID])
		if err != nil {
			return nil, fmt.Errorf("mapGetOrderRowToDomain: %w", err)
		}
		orders = append(orders, order)
	}

	return orders, nil
}

// buildSearchOrders selects the same columns as db.GetOrder so rows scan
// into db.GetOrderRow.
func (r *orderRepository) buildSearchOrders(filter domain.OrderFilter) sq.SelectBuilder {
	builder := r.builder.
		Select(
			"o.id",
			"o.uuid",
			"o.status::text",
			"o.total_amount",
			"o.currency",
			"o.shipping_address_json",
			"o.payment_method_name",
			"o.created_at",
			"u.uuid",
			"u.first_name || ' ' || u.last_name",
			"u.email",
		).
		From("orders o").
		Join("users u ON o.user_id = u.id").
		OrderBy("o.created_at DESC", "o.id DESC")

	if len(filter.UUIDs) > 0 {
		builder = builder.Where(sq.Eq{"o.uuid": filter.UUIDs})
	}

	if len(filter.UserIDs) > 0 {
		builder = builder.Where(sq.Eq{"u.uuid": filter.UserIDs})
	}

	if len(filter.Statuses) > 0 {
		statuses := lo.Map(filter.Statuses, func(s domain.OrderStatus, _ int) string {
			return string(s)
		})
		builder = builder.Where(sq.Eq{"o.status::text": statuses})
	}

	if filter.CreatedAt != nil {
		if filter.CreatedAt.After != nil {
			builder = builder.Where(sq.GtOrEq{"o.created_at": *filter.CreatedAt.After})
		}
		if filter.CreatedAt.Before != nil {
			builder = builder.Where(sq.LtOrEq{"o.created_at": *filter.CreatedAt.Before})
		}
	}

	if filter.Limit != nil {
		builder = builder.Limit(*filter.Limit)
	}

	return builder
}

func (r *orderRepository) CancelOrder(ctx context.Context, orderID, userID uuid.UUID) error {
	if orderID == uuid.Nil {
		return fmt.Errorf("orderID is empty")
	}

	if err := r.withTx(ctx, func(q *db.Queries) error {
		fromStatuses := lo.Map(domain.CancellableStatuses(), func(s domain.OrderStatus, _ int) string {
			return string(s)
		})

		cmdTag, err := q.CancelOrder(ctx, db.CancelOrderParams{
			OrderUuid:    orderID,
			UserUuid:     userID,
			FromStatuses: fromStatuses,
		})
		if err != nil {
			return fmt.Errorf("q.CancelOrder: %w", err)
		}

		if cmdTag.RowsAffected() > 0 {
			return nil
		}

		// nothing updated: either not the owner's order or already final
		dbOrder, err := q.GetOrder(ctx, orderID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("q.CancelOrder: %w", domain.ErrOrderNotFound)
			}
			return fmt.Errorf("q.GetOrder: %w", err)
		}

		if dbOrder.UserUuid != userID {
			return fmt.Errorf("q.CancelOrder: %w", domain.ErrOrderNotFound)
		}

		return fmt.Errorf("q.CancelOrder[%s]: %w", dbOrder.Status, domain.ErrOrderNotCancellable)
	}); err != nil {
		return fmt.Errorf("r.withTx: %w", mapPgError(err))
	}

	return nil
}

func (r *orderRepository) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status domain.OrderStatus) error {
	if orderID == uuid.Nil {
		return fmt.Errorf("orderID is empty")
	}

	if status == "" {
		return fmt.Errorf("status is empty")
	}

	status, err := domain.ToOrderStatus(string(status))
	if err != nil {
		return fmt.Errorf("domain.ToOrderStatus: %w", err)
	}

	cmdTag, err := r.q.UpdateOrderStatus(ctx, db.UpdateOrderStatusParams{
		Uuid:   orderID,
		Status: string(status),
	})
	if err != nil {
		return fmt.Errorf("q.UpdateOrderStatus: %w", mapPgError(err))
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("q.UpdateOrderStatus: %w", domain.ErrOrderNotFound)
	}

	return nil
}

func (r *orderRepository) GetReorderItems(ctx context.Context, orderID, userID uuid.UUID) ([]domain.OrderLine, error) {
	rows, err := r.q.GetReorderItems(ctx, db.GetReorderItemsParams{
		OrderUuid: orderID,
		UserUuid:  userID,
	})
	if err != nil {
		return nil, fmt.Errorf("q.GetReorderItems: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("q.GetReorderItems: %w", domain.ErrOrderNotFound)
	}

	return lo.Map(rows, func(row db.GetReorderItemsRow, _ int) domain.OrderLine {
		return domain.OrderLine{
			ProductID: row.ProductUuid,
			Quantity:  row.Quantity,
		}
	}), nil
}

func (r *orderRepository) withTx(ctx context.Context, fn func(q *db.Queries) error) error {
	_, err := withTx(ctx, r.dbtx, func(q *db.Queries) (struct{}, error) {
		err := fn(q)
		return struct{}{}, err
	})
	return err
}

func getItemsByOrder(ctx context.Context, q *db.Queries, orderIDs []int64) (map[int64][]db.GetOrderItemsRow, error) {
	if len(orderIDs) == 0 {
		return nil, nil
	}

	rows, err := q.GetOrderItems(ctx, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("q.GetOrderItems: %w", err)
	}

	return lo.GroupBy(rows, func(row db.GetOrderItemsRow) int64 {
		return row.OrderID
	}), nil
}

func mapGetAddressRowToDomain(row db.GetAddressRow) domain.Address {
	return domain.Address{
		ID:         row.Uuid,
		UserID:     row.UserID,
		Name:       row.Name,
		Line1:      row.Line1,
		City:       row.City,
		PostalCode: row.PostalCode,
		Country:    row.Country,
	}
}

func mapGetOrderItemRowToDomain(row db.GetOrderItemsRow) domain.OrderItem {
	return domain.OrderItem{
		ProductID:   row.ProductID,
		ProductUUID: row.ProductUuid,
		ProductName: row.ProductName,
		Quantity:    row.Quantity,
		UnitPrice:   row.UnitPrice,
	}
}

func mapGetOrderItemRowsToDomain(rows []db.GetOrderItemsRow) []domain.OrderItem {
	if len(rows) == 0 {
		return nil
	}

	return lo.Map(rows, func(row db.GetOrderItemsRow, _ int) domain.OrderItem {
		return mapGetOrderItemRowToDomain(row)
	})
}

func mapGetOrderRowToDomain(row db.GetOrderRow, items []db.GetOrderItemsRow) (domain.Order, error) {
	order, err := mapOrderColumnsToDomain(orderColumns{
		id:                  row.ID,
		uuid:                row.Uuid,
		status:              row.Status,
		totalAmount:         row.TotalAmount,
		currency:            row.Currency,
		shippingAddressJSON: row.ShippingAddressJson,
		paymentMethodName:   row.PaymentMethodName,
	}, items)
	if err != nil {
		return order, err
	}

	order.UserID = row.UserUuid
	order.CustomerName = row.CustomerName
	order.CustomerEmail = row.CustomerEmail
	order.CreatedAt = row.CreatedAt

	return order, nil
}

func mapListOrdersByUserRowToDomain(row db.ListOrdersByUserRow, items []db.GetOrderItemsRow) (domain.Order, error) {
	order, err := mapOrderColumnsToDomain(orderColumns{
		id:                  row.ID,
		uuid:                row.Uuid,
		status:              row.Status,
		totalAmount:         row.TotalAmount,
		currency:            row.Currency,
		shippingAddressJSON: row.ShippingAddressJson,
		paymentMethodName:   row.PaymentMethodName,
	}, items)
	if err != nil {
		return order, err
	}

	order.CreatedAt = row.CreatedAt

	return order, nil
}

// orderColumns are the orders table columns shared by all order queries.
type orderColumns struct {
	id                  int64
	uuid                uuid.UUID
	status              string
	totalAmount         decimal.Decimal
	currency            string
	shippingAddressJSON []byte
	paymentMethodName   string
}

func mapOrderColumnsToDomain(cols orderColumns, items []db.GetOrderItemsRow) (domain.Order, error) {
	var o domain.Order

	parsedCurrency, err := currency.ParseISO(cols.currency)
	if err != nil {
		return o, fmt.Errorf("currency[%s] is not valid: %w", cols.currency, err)
	}

	status, err := domain.ToOrderStatus(cols.status)
	if err != nil {
		return o, fmt.Errorf("domain.ToOrderStatus[%s]: %w", cols.status, err)
	}

	address, err := domain.UnmarshalAddressSnapshot(cols.shippingAddressJSON)
	if err != nil {
		return o, fmt.Errorf("domain.UnmarshalAddressSnapshot: %w", err)
	}

	return domain.Order{
		ID:              cols.id,
		UUID:            cols.uuid,
		Status:          status,
		Total:           domain.Money{Amount: cols.totalAmount, Currency: parsedCurrency},
		ShippingAddress: address,
		PaymentMethod:   cols.paymentMethodName,
		Items:           mapGetOrderItemRowsToDomain(items),
	}, nil
}
