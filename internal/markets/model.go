package markets

import "github.com/buurtmarkt/backend/internal/store"

// Database is the full persisted state of the markets service.
type Database struct {
	Meta    store.Meta `json:"meta"`
	Markets []*Market  `json:"markets"`
	NextID  int        `json:"nextId"`
}

func DefaultDatabase() Database {
	return Database{
		Meta:    store.Meta{Title: "List of markets", Date: "December 2024"},
		Markets: []*Market{},
		NextID:  1,
	}
}

type Location struct {
	City    string `json:"city"`
	Address string `json:"address"`
}

type Market struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	DayOfWeek   string   `json:"dayOfWeek"`
	StartTime   string   `json:"startTime"`
	EndTime     string   `json:"endTime"`
	Description string   `json:"description"`
	Location    Location `json:"location"`
	Verified    bool     `json:"verified"`
	// Comments is part of the document shape; the service does not write to
	// it yet.
	Comments []any `json:"comments"`
}

// Match reports whether the path parameter denotes this market by id or by
// exact name.
func (m *Market) Match(param string) bool {
	return store.MatchesID(m.ID, param) || m.Name == param
}
