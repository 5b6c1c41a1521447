package repository_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/config"
	"github.com/nikolayk812/storefront/internal/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

// startPostgres runs a disposable Postgres with the schema migrated and
// returns a pool with the decimal codec registered.
func startPostgres(ctx context.Context) (testcontainers.Container, *pgxpool.Pool, error) {
	container, err := postgres.Run(ctx, "postgres:17-alpine",
		postgres.WithDatabase("storefront"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("postgres.Run: %w", err)
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return container, nil, fmt.Errorf("container.ConnectionString: %w", err)
	}

	if err := storage.RunMigrations(connStr); err != nil {
		return container, nil, fmt.Errorf("storage.RunMigrations: %w", err)
	}

	pool, err := storage.NewPool(ctx, &config.Database{DSN: connStr})
	if err != nil {
		return container, nil, fmt.Errorf("storage.NewPool: %w", err)
	}

	return container, pool, nil
}

func truncateAll(t *testing.T, pool *pgxpool.Pool) {
	_, err := pool.Exec(t.Context(), `TRUNCATE TABLE
		cart_items, carts, transactions, order_items, orders,
		payment_methods, products, addresses, users
		RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
}

type fakeUser struct {
	id   int64
	uuid uuid.UUID
	name string
}

func insertUser(t *testing.T, pool *pgxpool.Pool) fakeUser {
	first, last := gofakeit.FirstName(), gofakeit.LastName()

	var u fakeUser
	err := pool.QueryRow(t.Context(),
		`INSERT INTO users (first_name, last_name, email) VALUES ($1, $2, $3) RETURNING id, uuid`,
		first, last, gofakeit.UUID()+"@example.com").Scan(&u.id, &u.uuid)
	require.NoError(t, err)

	u.name = first + " " + last
	return u
}

type fakeAddress struct {
	uuid       uuid.UUID
	name       string
	line1      string
	city       string
	postalCode string
	country    string
}

func insertAddress(t *testing.T, pool *pgxpool.Pool, userID int64) fakeAddress {
	a := fakeAddress{
		name:       gofakeit.Name(),
		line1:      gofakeit.Street(),
		city:       gofakeit.City(),
		postalCode: gofakeit.Zip(),
		country:    gofakeit.Country(),
	}

	err := pool.QueryRow(t.Context(),
		`INSERT INTO addresses (user_id, name, line1, city, postal_code, country)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING uuid`,
		userID, a.name, a.line1, a.city, a.postalCode, a.country).Scan(&a.uuid)
	require.NoError(t, err)

	return a
}

type fakeProduct struct {
	id    int64
	uuid  uuid.UUID
	name  string
	price decimal.Decimal
}

func insertProduct(t *testing.T, pool *pgxpool.Pool, price string, stock int32) fakeProduct {
	p := fakeProduct{
		name:  gofakeit.ProductName(),
		price: decimal.RequireFromString(price),
	}

	err := pool.QueryRow(t.Context(),
		`INSERT INTO products (name, price, stock_quantity) VALUES ($1, $2, $3) RETURNING id, uuid`,
		p.name, p.price, stock).Scan(&p.id, &p.uuid)
	require.NoError(t, err)

	return p
}

func insertPaymentMethod(t *testing.T, pool *pgxpool.Pool, name string, enabled bool) {
	_, err := pool.Exec(t.Context(),
		`INSERT INTO payment_methods (name, is_enabled) VALUES ($1, $2)`, name, enabled)
	require.NoError(t, err)
}

func productStock(t *testing.T, pool *pgxpool.Pool, productID uuid.UUID) int32 {
	var stock int32
	err := pool.QueryRow(t.Context(),
		`SELECT stock_quantity FROM products WHERE uuid = $1`, productID).Scan(&stock)
	require.NoError(t, err)
	return stock
}

// dbState is what a failed placement must leave untouched.
type dbState struct {
	Orders       int64
	OrderItems   int64
	Transactions int64
	Stock        map[uuid.UUID]int32
}

func captureState(t *testing.T, pool *pgxpool.Pool) dbState {
	ctx := t.Context()

	state := dbState{Stock: map[uuid.UUID]int32{}}

	err := pool.QueryRow(ctx, `SELECT
		(SELECT COUNT(*) FROM orders),
		(SELECT COUNT(*) FROM order_items),
		(SELECT COUNT(*) FROM transactions)`).Scan(&state.Orders, &state.OrderItems, &state.Transactions)
	require.NoError(t, err)

	rows, err := pool.Query(ctx, `SELECT uuid, stock_quantity FROM products`)
	require.NoError(t, err)
	defer rows.Close()

	for rows.Next() {
		var (
			id    uuid.UUID
			stock int32
		)
		require.NoError(t, rows.Scan(&id, &stock))
		state.Stock[id] = stock
	}
	require.NoError(t, rows.Err())

	return state
}
