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

type OfferRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewOfferRepository(db *pgxpool.Pool, logger *zap.Logger) *OfferRepository {
	return &OfferRepository{db: db, logger: logger}
}

func (r *OfferRepository) List(ctx context.Context) ([]*model.Offer, error) {
	query := `
        SELECT id, order_id, executor_id
        FROM offers
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	offers := []*model.Offer{}
	for rows.Next() {
		var o model.Offer
		if err := rows.Scan(&o.ID, &o.OrderID, &o.ExecutorID); err != nil {
			return nil, mapError(err)
		}
		offers = append(offers, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return offers, nil
}

func (r *OfferRepository) GetByID(ctx context.Context, id int) (*model.Offer, error) {
	query := `
        SELECT id, order_id, executor_id
        FROM offers
        WHERE id = $1
    `
	var o model.Offer
	err := r.db.QueryRow(ctx, query, id).Scan(&o.ID, &o.OrderID, &o.ExecutorID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("offer not found")
	}
	if err != nil {
		return nil, mapError(err)
	}
	return &o, nil
}

func (r *OfferRepository) Create(ctx context.Context, o *model.Offer) (*model.Offer, error) {
	if o.ID != 0 {
		query := `INSERT INTO offers (id, order_id, executor_id) VALUES ($1, $2, $3)`
		if _, err := r.db.Exec(ctx, query, o.ID, o.OrderID, o.ExecutorID); err != nil {
			r.logger.Error("Failed to insert offer", zap.Error(err))
			return nil, mapError(err)
		}
	} else {
		query := `INSERT INTO offers (order_id, executor_id) VALUES ($1, $2) RETURNING id`
		if err := r.db.QueryRow(ctx, query, o.OrderID, o.ExecutorID).Scan(&o.ID); err != nil {
			r.logger.Error("Failed to insert offer", zap.Error(err))
			return nil, mapError(err)
		}
	}

	r.logger.Info("Offer created", zap.Int("id", o.ID))
	return o, nil
}

func (r *OfferRepository) Update(ctx context.Context, o *model.Offer) (*model.Offer, error) {
	query := `
        UPDATE offers
        SET order_id = $1, executor_id = $2
        WHERE id = $3
    `
	tag, err := r.db.Exec(ctx, query, o.OrderID, o.ExecutorID, o.ID)
	if err != nil {
		r.logger.Error("Failed to update offer", zap.Int("id", o.ID), zap.Error(err))
		return nil, mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperr.NotFound("offer not found")
	}

	r.logger.Info("Offer updated", zap.Int("id", o.ID))
	return o, nil
}

func (r *OfferRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM offers WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete offer", zap.Int("id", id), zap.Error(err))
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("offer not found")
	}

	r.logger.Info("Offer deleted", zap.Int("id", id))
	return nil
}
