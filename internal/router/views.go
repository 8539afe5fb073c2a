package router

import "strings"

// View names the screen a location fragment maps to, plus the role the
// shell should require before rendering it.
type View struct {
	Name        string `json:"name"`
	Param       string `json:"param,omitempty"`
	RequireRole string `json:"requireRole,omitempty"`
}

// ViewNotFound is returned for fragments with no mapping.
const ViewNotFound = "not-found"

var staticViews = map[string]View{
	"/":                   {Name: "home"},
	"/menu":               {Name: "menu"},
	"/cart":               {Name: "cart"},
	"/checkout":           {Name: "checkout"},
	"/reservation":        {Name: "reservation"},
	"/orders":             {Name: "orders"},
	"/about":              {Name: "about"},
	"/login":              {Name: "login"},
	"/register":           {Name: "register"},
	"/staff/orders":       {Name: "staff-orders", RequireRole: "staff"},
	"/staff/reservations": {Name: "staff-reservations", RequireRole: "staff"},
	"/admin/dashboard":    {Name: "admin-dashboard", RequireRole: "admin"},
	"/admin/menu":         {Name: "admin-menu", RequireRole: "admin"},
	"/admin/users":        {Name: "admin-users", RequireRole: "admin"},
}

// Resolve maps a location fragment to its view. "/menu/{id}" is the
// one parameterized route; everything unrecognized is the not-found
// view.
func Resolve(fragment string) View {
	if fragment == "" {
		fragment = "/"
	}
	if v, ok := staticViews[fragment]; ok {
		return v
	}
	if id := strings.TrimPrefix(fragment, "/menu/"); id != fragment && id != "" && !strings.Contains(id, "/") {
		return View{Name: "menu-item", Param: id}
	}
	return View{Name: ViewNotFound}
}
