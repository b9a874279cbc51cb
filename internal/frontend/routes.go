// Package frontend holds the single-page app's route table, its navigation
// guard and the history-mode file server that backs it.
package frontend

import "strings"

type Route struct {
	Path         string
	Name         string
	Page         string
	RequiresAuth bool
}

var routes = []Route{
	{Path: "/", Name: "home", Page: "HomePage"},
	{Path: "/login", Name: "login", Page: "LoginPage"},
	{Path: "/about", Name: "about", Page: "AboutPage"},
	{Path: "/booking", Name: "booking", Page: "BookingPage"},
	{Path: "/contact", Name: "contact", Page: "ContactPage"},
	{Path: "/memberships", Name: "memberships", Page: "MembershipOverview"},
	{Path: "/memberships/individual", Name: "individual-memberships", Page: "IndividualMemberships"},
	{Path: "/memberships/corporate", Name: "corporate-memberships", Page: "CorporateMemberships"},
	{Path: "/memberships/seasonal", Name: "seasonal-memberships", Page: "SeasonalMemberships"},
	{Path: "/payment/non-member-payment", Name: "non-member-payment", Page: "NonMemberPayment", RequiresAuth: true},
	{Path: "/payment-success", Name: "payment-success", Page: "PaymentSuccess"},
	{Path: "/signup", Name: "signup", Page: "SignupPage"},
	{Path: "/manage-bookings", Name: "manage-bookings", Page: "ManageBookings", RequiresAuth: true},
	{Path: "/account-settings", Name: "account-settings", Page: "AccountSettings", RequiresAuth: true},
	{Path: "/payment-confirmation", Name: "payment-confirmation", Page: "PaymentConfirmation", RequiresAuth: true},
	{Path: "/payment/member-payment", Name: "member-payment", Page: "MemberPayment", RequiresAuth: true},
}

var byPath = func() map[string]Route {
	m := make(map[string]Route, len(routes))
	for _, r := range routes {
		m[r.Path] = r
	}
	return m
}()

// Routes returns a copy of the table in declaration order.
func Routes() []Route {
	out := make([]Route, len(routes))
	copy(out, routes)
	return out
}

// Lookup matches a path against the table. A trailing slash is ignored.
func Lookup(path string) (Route, bool) {
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	r, ok := byPath[path]
	return r, ok
}
