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

type UserRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewUserRepository(db *pgxpool.Pool, logger *zap.Logger) *UserRepository {
	return &UserRepository{db: db, logger: logger}
}

func (r *UserRepository) List(ctx context.Context) ([]*model.User, error) {
	query := `
        SELECT id, first_name, last_name, age, email, role, phone
        FROM users
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	users := []*model.User{}
	for rows.Next() {
		var u model.User
		err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Age, &u.Email, &u.Role, &u.Phone)
		if err != nil {
			return nil, mapError(err)
		}
		users = append(users, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return users, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int) (*model.User, error) {
	query := `
        SELECT id, first_name, last_name, age, email, role, phone
        FROM users
        WHERE id = $1
    `
	var u model.User
	err := r.db.QueryRow(ctx, query, id).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Age, &u.Email, &u.Role, &u.Phone)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("user not found")
	}
	if err != nil {
		return nil, mapError(err)
	}
	return &u, nil
}

// Create inserts the user. A caller-supplied id is honored, otherwise the
// identity column assigns one.
func (r *UserRepository) Create(ctx context.Context, u *model.User) (*model.User, error) {
	if u.ID != 0 {
		query := `
            INSERT INTO users (id, first_name, last_name, age, email, role, phone)
            VALUES ($1, $2, $3, $4, $5, $6, $7)
        `
		if _, err := r.db.Exec(ctx, query, u.ID, u.FirstName, u.LastName, u.Age, u.Email, u.Role, u.Phone); err != nil {
			r.logger.Error("Failed to insert user", zap.Error(err))
			return nil, mapError(err)
		}
	} else {
		query := `
            INSERT INTO users (first_name, last_name, age, email, role, phone)
            VALUES ($1, $2, $3, $4, $5, $6)
            RETURNING id
        `
		err := r.db.QueryRow(ctx, query, u.FirstName, u.LastName, u.Age, u.Email, u.Role, u.Phone).Scan(&u.ID)
		if err != nil {
			r.logger.Error("Failed to insert user", zap.Error(err))
			return nil, mapError(err)
		}
	}

	r.logger.Info("User created", zap.Int("id", u.ID))
	return u, nil
}

func (r *UserRepository) Update(ctx context.Context, u *model.User) (*model.User, error) {
	query := `
        UPDATE users
        SET first_name = $1, last_name = $2, age = $3, email = $4, role = $5, phone = $6
        WHERE id = $7
    `
	tag, err := r.db.Exec(ctx, query, u.FirstName, u.LastName, u.Age, u.Email, u.Role, u.Phone, u.ID)
	if err != nil {
		r.logger.Error("Failed to update user", zap.Int("id", u.ID), zap.Error(err))
		return nil, mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperr.NotFound("user not found")
	}

	r.logger.Info("User updated", zap.Int("id", u.ID))
	return u, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete user", zap.Int("id", id), zap.Error(err))
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("user not found")
	}

	r.logger.Info("User deleted", zap.Int("id", id))
	return nil
}
