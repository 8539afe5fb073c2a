package remote

import "context"

// UserRow is one record of the admin user directory.
type UserRow struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	Phone     *string `json:"phone"`
	CreatedAt string  `json:"created_at"`
}

// UserUpdate is the PATCH body for the directory. Phone is nullable on
// the server, so an empty string is sent as null.
type UserUpdate struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone"`
	Role  string  `json:"role"`
}

func (c *Client) ListUsers(ctx context.Context, token string) ([]UserRow, error) {
	var rows []UserRow
	if err := c.do(ctx, "GET", "/api/admin/users", token, nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdateUser returns the updated record as the service re-reads it.
func (c *Client) UpdateUser(ctx context.Context, token, id string, in UserUpdate) (*UserRow, error) {
	var row UserRow
	if err := c.do(ctx, "PATCH", "/api/admin/users/"+id, token, in, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

func (c *Client) DeleteUser(ctx context.Context, token, id string) error {
	return c.do(ctx, "DELETE", "/api/admin/users/"+id, token, nil, nil)
}
