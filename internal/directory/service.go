// Package directory is the staff/admin view of the user directory: a
// pass-through to the remote admin endpoints, never cached, because
// the remote service owns the user truth outright.
package directory

import (
	"context"
	"errors"
	"strconv"

	"thegriller/internal/remote"
)

// ErrNotAuthorized is returned before any request is attempted when no
// session token is available.
var ErrNotAuthorized = errors.New("you are not authorized to manage users")

// User is the directory entry the management view renders.
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Phone      string `json:"phone,omitempty"`
	JoinedDate string `json:"joinedDate,omitempty"`
}

func fromRow(row remote.UserRow) User {
	u := User{
		ID:         strconv.Itoa(row.ID),
		Name:       row.Name,
		Email:      row.Email,
		Role:       row.Role,
		JoinedDate: row.CreatedAt,
	}
	if row.Phone != nil {
		u.Phone = *row.Phone
	}
	return u
}

// Directory is the slice of the remote client the service depends on.
type Directory interface {
	ListUsers(ctx context.Context, token string) ([]remote.UserRow, error)
	UpdateUser(ctx context.Context, token, id string, in remote.UserUpdate) (*remote.UserRow, error)
	DeleteUser(ctx context.Context, token, id string) error
}

type Service struct {
	dir Directory
}

func NewService(dir Directory) *Service {
	return &Service{dir: dir}
}

func (s *Service) List(ctx context.Context, token string) ([]User, error) {
	if token == "" {
		return nil, ErrNotAuthorized
	}
	rows, err := s.dir.ListUsers(ctx, token)
	if err != nil {
		return nil, err
	}
	users := make([]User, 0, len(rows))
	for _, row := range rows {
		users = append(users, fromRow(row))
	}
	return users, nil
}

// UserUpdate is the edit form shape.
type UserUpdate struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

func (s *Service) Update(ctx context.Context, token, id string, in UserUpdate) (User, error) {
	if token == "" {
		return User{}, ErrNotAuthorized
	}

	// Phone is nullable server-side: an empty form field clears it.
	update := remote.UserUpdate{
		Name:  in.Name,
		Email: in.Email,
		Role:  in.Role,
	}
	if in.Phone != "" {
		update.Phone = &in.Phone
	}

	row, err := s.dir.UpdateUser(ctx, token, id, update)
	if err != nil {
		return User{}, err
	}
	return fromRow(*row), nil
}

func (s *Service) Delete(ctx context.Context, token, id string) error {
	if token == "" {
		return ErrNotAuthorized
	}
	return s.dir.DeleteUser(ctx, token, id)
}
