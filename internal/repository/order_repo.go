package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"workboard/internal/apperr"
	"workboard/internal/model"
)

type OrderRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewOrderRepository(db *pgxpool.Pool, logger *zap.Logger) *OrderRepository {
	return &OrderRepository{db: db, logger: logger}
}

func (r *OrderRepository) List(ctx context.Context) ([]*model.Order, error) {
	query := `
        SELECT id, name, description, start_date, end_date, email, address, price, customer_id, executor_id
        FROM orders
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	orders := []*model.Order{}
	for rows.Next() {
		var o model.Order
		err := rows.Scan(&o.ID, &o.Name, &o.Description, &o.StartDate, &o.EndDate, &o.Email, &o.Address, &o.Price, &o.CustomerID, &o.ExecutorID)
		if err != nil {
			return nil, mapError(err)
		}
		orders = append(orders, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return orders, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id int) (*model.Order, error) {
	query := `
        SELECT id, name, description, start_date, end_date, email, address, price, customer_id, executor_id
        FROM orders
        WHERE id = $1
    `
	var o model.Order
	err := r.db.QueryRow(ctx, query, id).Scan(&o.ID, &o.Name, &o.Description, &o.StartDate, &o.EndDate, &o.Email, &o.Address, &o.Price, &o.CustomerID, &o.ExecutorID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("order not found")
	}
	if err != nil {
		return nil, mapError(err)
	}
	return &o, nil
}

func (r *OrderRepository) Create(ctx context.Context, o *model.Order) (*model.Order, error) {
	if o.ID != 0 {
		query := `
            INSERT INTO orders (id, name, description, start_date, end_date, email, address, price, customer_id, executor_id)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        `
		if _, err := r.db.Exec(ctx, query, o.ID, o.Name, o.Description, o.StartDate, o.EndDate, o.Email, o.Address, o.Price, o.CustomerID, o.ExecutorID); err != nil {
			r.logger.Error("Failed to insert order", zap.Error(err))
			return nil, mapError(err)
		}
	} else {
		query := `
            INSERT INTO orders (name, description, start_date, end_date, email, address, price, customer_id, executor_id)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
            RETURNING id
        `
		err := r.db.QueryRow(ctx, query, o.Name, o.Description, o.StartDate, o.EndDate, o.Email, o.Address, o.Price, o.CustomerID, o.ExecutorID).Scan(&o.ID)
		if err != nil {
			r.logger.Error("Failed to insert order", zap.Error(err))
			return nil, mapError(err)
		}
	}

	r.logger.Info("Order created", zap.Int("id", o.ID))
	return o, nil
}

func (r *OrderRepository) Update(ctx context.Context, o *model.Order) (*model.Order, error) {
	query := `
        UPDATE orders
        SET name = $1, description = $2, start_date = $3, end_date = $4, email = $5, address = $6, price = $7, customer_id = $8, executor_id = $9
        WHERE id = $10
    `
	tag, err := r.db.Exec(ctx, query, o.Name, o.Description, o.StartDate, o.EndDate, o.Email, o.Address, o.Price, o.CustomerID, o.ExecutorID, o.ID)
	if err != nil {
		r.logger.Error("Failed to update order", zap.Int("id", o.ID), zap.Error(err))
		return nil, mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperr.NotFound("order not found")
	}

	r.logger.Info("Order updated", zap.Int("id", o.ID))
	return o, nil
}

func (r *OrderRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete order", zap.Int("id", id), zap.Error(err))
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("order not found")
	}

	r.logger.Info("Order deleted", zap.Int("id", id))
	return nil
}
