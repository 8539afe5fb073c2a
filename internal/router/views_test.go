package router

import "testing"

func TestResolveStaticViews(t *testing.T) {
	cases := map[string]string{
		"":                    "home",
		"/":                   "home",
		"/menu":               "menu",
		"/cart":               "cart",
		"/checkout":           "checkout",
		"/reservation":        "reservation",
		"/orders":             "orders",
		"/about":              "about",
		"/login":              "login",
		"/register":           "register",
		"/staff/orders":       "staff-orders",
		"/staff/reservations": "staff-reservations",
		"/admin/dashboard":    "admin-dashboard",
		"/admin/menu":         "admin-menu",
		"/admin/users":        "admin-users",
	}

	for fragment, want := range cases {
		if got := Resolve(fragment).Name; got != want {
			t.Errorf("Resolve(%q) = %q, want %q", fragment, got, want)
		}
	}
}

func TestResolveMenuItem(t *testing.T) {
	v := Resolve("/menu/42")
	if v.Name != "menu-item" {
		t.Fatalf("expected menu-item, got %q", v.Name)
	}
	if v.Param != "42" {
		t.Fatalf("expected param 42, got %q", v.Param)
	}
}

func TestResolveUnknownFragment(t *testing.T) {
	for _, fragment := range []string{"/bogus", "/menu/", "/menu/1/reviews", "/staff", "/admin"} {
		if got := Resolve(fragment).Name; got != ViewNotFound {
			t.Errorf("Resolve(%q) = %q, want %q", fragment, got, ViewNotFound)
		}
	}
}

func TestResolveRoleGates(t *testing.T) {
	if Resolve("/admin/users").RequireRole != "admin" {
		t.Error("admin views must require the admin role")
	}
	if Resolve("/staff/orders").RequireRole != "staff" {
		t.Error("staff views must require the staff role")
	}
	if Resolve("/menu").RequireRole != "" {
		t.Error("storefront views must not require a role")
	}
}
