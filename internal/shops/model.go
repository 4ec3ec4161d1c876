package shops

import "github.com/buurtmarkt/backend/internal/store"

// Database is the full persisted state of the shops service.
type Database struct {
	Meta   store.Meta `json:"meta"`
	Shops  []*Shop    `json:"shops"`
	NextID int        `json:"nextId"`
}

func DefaultDatabase() Database {
	return Database{
		Meta:   store.Meta{Title: "List of shops", Date: "November 2024"},
		Shops:  []*Shop{},
		NextID: 1,
	}
}

type Location struct {
	City    string `json:"city"`
	Address string `json:"address"`
}

// OpeningHours holds one entry per weekday; days without hours read "closed".
type OpeningHours struct {
	Monday    string `json:"monday"`
	Tuesday   string `json:"tuesday"`
	Wednesday string `json:"wednesday"`
	Thursday  string `json:"thursday"`
	Friday    string `json:"friday"`
	Saturday  string `json:"saturday"`
	Sunday    string `json:"sunday"`
}

// DefaultOpeningHours marks every day closed.
func DefaultOpeningHours() OpeningHours {
	return OpeningHours{
		Monday: "closed", Tuesday: "closed", Wednesday: "closed",
		Thursday: "closed", Friday: "closed", Saturday: "closed", Sunday: "closed",
	}
}

type Promotions struct {
	Description *string `json:"description"`
	EndDate     *string `json:"endDate"`
}

type Shop struct {
	ID            int          `json:"id"`
	Name          string       `json:"name"`
	Location      Location     `json:"location"`
	PhoneNumber   string       `json:"phoneNumber"`
	OpeningHours  OpeningHours `json:"openingHours"`
	PayingMethods []string     `json:"payingMethods"`
	UserID        string       `json:"userID"`
	Promotions    Promotions   `json:"promotions"`
	// Lat and Lng come from the geocoder; null when geocoding failed.
	Lat *string `json:"lat"`
	Lng *string `json:"lng"`
	// Products holds ids of linked products owned by the products service.
	Products []string `json:"products"`
}

// Match reports whether the path parameter denotes this shop by id or by
// exact name.
func (s *Shop) Match(param string) bool {
	return store.MatchesID(s.ID, param) || s.Name == param
}
