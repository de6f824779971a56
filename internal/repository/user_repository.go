package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/krishnasharma7/restaurant-management-system/internal/model"
)

// UserRepo manages account rows. The schema deliberately carries no
// UNIQUE constraint on username: the admin and registration paths
// enforce uniqueness with an explicit lookup, while the plain
// pass-through user endpoint inserts as given.
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo returns a new UserRepo bound to the given database.
func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

// Create inserts a user and returns its generated id. The password
// must already be hashed.
func (r *UserRepo) Create(ctx context.Context, username, passwordHash, role string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (username, password_hash, role) VALUES (?, ?, ?)`,
		username, passwordHash, role)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetByID fetches a user by id, returning ErrUserNotFound when absent.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (model.User, error) {
	var u model.User
	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, role FROM users WHERE id = ?`,
		id).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role)
	if err == sql.ErrNoRows {
		return model.User{}, ErrUserNotFound
	}
	return u, err
}

// GetByUsername fetches a user by trimmed username, returning
// ErrUserNotFound when absent. Used by login and by the uniqueness
// pre-check on the strict creation paths.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (model.User, error) {
	var u model.User
	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, role FROM users WHERE username = ? LIMIT 1`,
		strings.TrimSpace(username)).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role)
	if err == sql.ErrNoRows {
		return model.User{}, ErrUserNotFound
	}
	return u, err
}

// List returns every user in id order.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, username, password_hash, role FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.User, 0)
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update overwrites the stored fields of an existing user. Callers
// resolve the final values first so omitted request fields retain
// their prior value.
func (r *UserRepo) Update(ctx context.Context, u model.User) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET username = ?, password_hash = ?, role = ? WHERE id = ?`,
		u.Username, u.PasswordHash, u.Role, u.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		if _, getErr := r.GetByID(ctx, u.ID); getErr == ErrUserNotFound {
			return ErrUserNotFound
		}
	}
	return nil
}

// Delete removes a user row, returning ErrUserNotFound when the id
// had no row.
func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrUserNotFound
	}
	return nil
}
