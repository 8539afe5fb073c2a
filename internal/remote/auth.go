package remote

import "context"

// AuthUser is the user object the auth endpoints return.
type AuthUser struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Role  string  `json:"role"`
	Phone *string `json:"phone"`
}

// AuthResponse is the shared answer shape of login and register.
type AuthResponse struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}

func (c *Client) Login(ctx context.Context, email, password, role string) (*AuthResponse, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
		"role":     role,
	}
	var out AuthResponse
	if err := c.do(ctx, "POST", "/api/auth/login", "", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register also establishes a session: the service answers with the
// same token+user shape as login.
func (c *Client) Register(ctx context.Context, name, email, password, phone string) (*AuthResponse, error) {
	body := map[string]any{
		"name":     name,
		"email":    email,
		"password": password,
	}
	if phone != "" {
		body["phone"] = phone
	}
	var out AuthResponse
	if err := c.do(ctx, "POST", "/api/auth/register", "", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
