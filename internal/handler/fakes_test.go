package handler

import (
	"context"
	"strings"
	"time"

	"github.com/krishnasharma7/restaurant-management-system/internal/model"
	"github.com/krishnasharma7/restaurant-management-system/internal/repository"
)

// In-memory fakes standing in for the SQL-backed repositories. They
// mirror the repos' contracts: sentinel errors on missing rows, rows
// returned in insertion (id) order.

type fakeReservationStore struct {
	nextID int64
	rows   []model.Reservation
}

func (f *fakeReservationStore) Create(_ context.Context, userID int64, date time.Time, status string) (int64, error) {
	f.nextID++
	f.rows = append(f.rows, model.Reservation{ID: f.nextID, UserID: userID, Date: date, Status: status})
	return f.nextID, nil
}

func (f *fakeReservationStore) GetByID(_ context.Context, id int64) (model.Reservation, error) {
	for _, r := range f.rows {
		if r.ID == id {
			return r, nil
		}
	}
	return model.Reservation{}, repository.ErrReservationNotFound
}

func (f *fakeReservationStore) Update(_ context.Context, id int64, date time.Time, status string) error {
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows[i].Date = date
			f.rows[i].Status = status
			return nil
		}
	}
	return repository.ErrReservationNotFound
}

func (f *fakeReservationStore) Delete(_ context.Context, id int64) error {
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return repository.ErrReservationNotFound
}

func (f *fakeReservationStore) ListAll(_ context.Context) ([]model.Reservation, error) {
	out := make([]model.Reservation, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

func (f *fakeReservationStore) ListByUser(_ context.Context, userID int64) ([]model.Reservation, error) {
	out := make([]model.Reservation, 0)
	for _, r := range f.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeOrderStore struct {
	nextID int64
	rows   []model.Order
}

func (f *fakeOrderStore) Create(_ context.Context, o *model.Order) error {
	f.nextID++
	o.ID = f.nextID
	f.rows = append(f.rows, *o)
	return nil
}

func (f *fakeOrderStore) ListAll(_ context.Context) ([]model.Order, error) {
	out := make([]model.Order, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

type fakeMenuStore struct {
	nextID int64
	rows   []model.MenuItem
}

func (f *fakeMenuStore) List(_ context.Context) ([]model.MenuItem, error) {
	out := make([]model.MenuItem, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

func (f *fakeMenuStore) GetByID(_ context.Context, id int64) (model.MenuItem, error) {
	for _, m := range f.rows {
		if m.ID == id {
			return m, nil
		}
	}
	return model.MenuItem{}, repository.ErrMenuItemNotFound
}

func (f *fakeMenuStore) Create(_ context.Context, name string, price float64) (int64, error) {
	f.nextID++
	f.rows = append(f.rows, model.MenuItem{ID: f.nextID, Name: name, Price: price})
	return f.nextID, nil
}

func (f *fakeMenuStore) Update(_ context.Context, id int64, name string, price float64) error {
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows[i].Name = name
			f.rows[i].Price = price
			return nil
		}
	}
	return repository.ErrMenuItemNotFound
}

func (f *fakeMenuStore) Delete(_ context.Context, id int64) error {
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return repository.ErrMenuItemNotFound
}

type fakeUserStore struct {
	nextID int64
	rows   []model.User
}

func (f *fakeUserStore) Create(_ context.Context, username, passwordHash, role string) (int64, error) {
	f.nextID++
	f.rows = append(f.rows, model.User{ID: f.nextID, Username: username, PasswordHash: passwordHash, Role: role})
	return f.nextID, nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (model.User, error) {
	for _, u := range f.rows {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, repository.ErrUserNotFound
}

func (f *fakeUserStore) GetByUsername(_ context.Context, username string) (model.User, error) {
	for _, u := range f.rows {
		if u.Username == strings.TrimSpace(username) {
			return u, nil
		}
	}
	return model.User{}, repository.ErrUserNotFound
}

func (f *fakeUserStore) List(_ context.Context) ([]model.User, error) {
	out := make([]model.User, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

func (f *fakeUserStore) Update(_ context.Context, u model.User) error {
	for i := range f.rows {
		if f.rows[i].ID == u.ID {
			f.rows[i] = u
			return nil
		}
	}
	return repository.ErrUserNotFound
}

func (f *fakeUserStore) Delete(_ context.Context, id int64) error {
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return repository.ErrUserNotFound
}
