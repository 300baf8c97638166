// Package view models the dashboard tab selector. The active view
// lives in the `tab` query parameter; the URL is the single source of
// truth so back/forward navigation and in-app switching cannot drift
// apart.
package view

type View string

const (
	Overview View = "overview"
	Users    View = "users"
	Services View = "services"
	Batches  View = "batches"
)

// All lists the views in display order.
func All() []View {
	return []View{Overview, Users, Services, Batches}
}

// Parse maps a raw tab parameter onto a View. Unknown or empty values
// fall back to the overview so every URL renders something.
func Parse(raw string) View {
	switch View(raw) {
	case Users:
		return Users
	case Services:
		return Services
	case Batches:
		return Batches
	default:
		return Overview
	}
}

func (v View) Title() string {
	switch v {
	case Users:
		return "Users"
	case Services:
		return "Services"
	case Batches:
		return "Batches"
	default:
		return "Overview"
	}
}

// URL returns the dashboard address selecting this view.
func (v View) URL() string {
	if v == Overview {
		return "/dashboard"
	}
	return "/dashboard?tab=" + string(v)
}
