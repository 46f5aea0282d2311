package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// schemaStatements drops and recreates the three tables. Drop order is the
// reverse of the foreign-key dependencies.
var schemaStatements = []string{
	`DROP TABLE IF EXISTS offers`,
	`DROP TABLE IF EXISTS orders`,
	`DROP TABLE IF EXISTS users`,
	`CREATE TABLE users (
        id INT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
        first_name VARCHAR(200) NOT NULL,
        last_name VARCHAR(200),
        age INT,
        email VARCHAR(100),
        role VARCHAR(30),
        phone VARCHAR(20)
    )`,
	`CREATE TABLE orders (
        id INT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
        name VARCHAR(255) NOT NULL,
        description VARCHAR(255),
        start_date VARCHAR(10) NOT NULL,
        end_date VARCHAR(10) NOT NULL,
        email VARCHAR(100),
        address VARCHAR(255),
        price INT,
        customer_id INT REFERENCES users (id) ON UPDATE CASCADE,
        executor_id INT REFERENCES users (id) ON UPDATE CASCADE
    )`,
	`CREATE TABLE offers (
        id INT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
        order_id INT REFERENCES orders (id),
        executor_id INT REFERENCES users (id)
    )`,
}

// Reset rebuilds the schema from scratch and loads the seed dataset in a
// single transaction. Users go in before orders and orders before offers,
// since the later tables reference the earlier ones by id. Storage is
// process-lifetime only: every restart of the service lands back on the
// seed dataset.
func Reset(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin schema transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, stmt := range schemaStatements {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}

	for _, u := range SeedUsers {
		_, err := tx.Exec(ctx,
			`INSERT INTO users (id, first_name, last_name, age, email, role, phone)
             VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			u.ID, u.FirstName, u.LastName, u.Age, u.Email, u.Role, u.Phone,
		)
		if err != nil {
			return fmt.Errorf("failed to seed users: %w", err)
		}
	}

	for _, o := range SeedOrders {
		_, err := tx.Exec(ctx,
			`INSERT INTO orders (id, name, description, start_date, end_date, email, address, price, customer_id, executor_id)
             VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			o.ID, o.Name, o.Description, o.StartDate, o.EndDate, o.Email, o.Address, o.Price, o.CustomerID, o.ExecutorID,
		)
		if err != nil {
			return fmt.Errorf("failed to seed orders: %w", err)
		}
	}

	for _, o := range SeedOffers {
		_, err := tx.Exec(ctx,
			`INSERT INTO offers (id, order_id, executor_id) VALUES ($1, $2, $3)`,
			o.ID, o.OrderID, o.ExecutorID,
		)
		if err != nil {
			return fmt.Errorf("failed to seed offers: %w", err)
		}
	}

	// The seed rows carry explicit ids, so the identity sequences have to be
	// moved past them or the first POST would collide with a seeded row.
	for _, table := range []string{"users", "orders", "offers"} {
		stmt := fmt.Sprintf(
			`SELECT setval(pg_get_serial_sequence('%s', 'id'), (SELECT MAX(id) FROM %s))`,
			table, table,
		)
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to advance %s id sequence: %w", table, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	logger.Info("Schema reset and seeded",
		zap.Int("users", len(SeedUsers)),
		zap.Int("orders", len(SeedOrders)),
		zap.Int("offers", len(SeedOffers)),
	)
	return nil
}
