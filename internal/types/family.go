// Copyright 2026 Wanderstack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

// Family describes one content family. Every family stores the same
// versioned-entity columns; the descriptor carries whatever varies between
// them so the repository and handlers stay generic.
type Family struct {
	// Name is the wire name, used as the path segment "<name>-api".
	Name string
	// Table is the backing table.
	Table string
	// WriteScope is the token scope required for mutations.
	WriteScope string
	// Ordered families carry a sort_order column and list in that order.
	Ordered bool
	// Layout families respond with empty defaults from the published
	// endpoint instead of a 404 when nothing is published yet.
	Layout bool
}

var (
	FamilyPages        = Family{Name: "pages", Table: "pages", WriteScope: "pages:write"}
	FamilyHeaders      = Family{Name: "headers", Table: "headers", WriteScope: "layouts:write", Layout: true}
	FamilyFooters      = Family{Name: "footers", Table: "footers", WriteScope: "layouts:write", Layout: true}
	FamilyMenus        = Family{Name: "menus", Table: "menus", WriteScope: "menus:write", Ordered: true, Layout: true}
	FamilyNews         = Family{Name: "news", Table: "news_items", WriteScope: "news:write"}
	FamilyDestinations = Family{Name: "destinations", Table: "destinations", WriteScope: "items:write"}
	FamilyTrips        = Family{Name: "trips", Table: "trips", WriteScope: "items:write"}
)

// Families lists every content family served by the API, in mount order.
var Families = []Family{
	FamilyPages,
	FamilyHeaders,
	FamilyFooters,
	FamilyMenus,
	FamilyNews,
	FamilyDestinations,
	FamilyTrips,
}

// FamilyByName resolves a wire name to its descriptor.
func FamilyByName(name string) (Family, bool) {
	for _, f := range Families {
		if f.Name == name {
			return f, true
		}
	}
	return Family{}, false
}

// BuilderScopes is the default scope set minted for a builder session.
var BuilderScopes = []string{"pages:write", "layouts:write", "menus:write", "news:write", "items:write"}
