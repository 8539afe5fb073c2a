package remote

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Decimal accepts the two price encodings the service emits: a JSON
// number, or a decimal string such as "12.50".
type Decimal float64

func (d *Decimal) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*d = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid price %q: %w", s, err)
	}
	*d = Decimal(f)
	return nil
}

// MenuRow mirrors one record of GET /api/menu exactly as the service
// stores it: snake_case names, 0/1 flags, nullable nutrition columns.
type MenuRow struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	Price        Decimal `json:"price"`
	Category     string  `json:"category"`
	ImageURL     string  `json:"image_url"`
	IsVegetarian int     `json:"is_vegetarian"`
	IsVegan      int     `json:"is_vegan"`
	IsSpicy      int     `json:"is_spicy"`
	Allergens    *string `json:"allergens"`
	Calories     *int    `json:"calories"`
	Protein      *string `json:"protein"`
	Carbs        *string `json:"carbs"`
	Fat          *string `json:"fat"`
}

// MenuItemInput is the write shape for the admin menu CRUD routes.
type MenuItemInput struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Category     string  `json:"category"`
	ImageURL     string  `json:"image_url"`
	IsVegetarian int     `json:"is_vegetarian"`
	IsVegan      int     `json:"is_vegan"`
	IsSpicy      int     `json:"is_spicy"`
}

func (c *Client) FetchMenu(ctx context.Context) ([]MenuRow, error) {
	var rows []MenuRow
	if err := c.do(ctx, "GET", "/api/menu", "", nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// CreateMenuItem returns the created row (the service assigns the id).
func (c *Client) CreateMenuItem(ctx context.Context, token string, in MenuItemInput) (*MenuRow, error) {
	var row MenuRow
	if err := c.do(ctx, "POST", "/api/menu", token, in, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

func (c *Client) UpdateMenuItem(ctx context.Context, token, id string, in MenuItemInput) error {
	return c.do(ctx, "PUT", "/api/menu/"+id, token, in, nil)
}

func (c *Client) DeleteMenuItem(ctx context.Context, token, id string) error {
	return c.do(ctx, "DELETE", "/api/menu/"+id, token, nil, nil)
}
