package products

import "github.com/buurtmarkt/backend/internal/store"

// Database is the full persisted state of the products service. Product ids
// are UUIDs, so no counter is kept.
type Database struct {
	Meta     store.Meta `json:"meta"`
	Products []*Product `json:"products"`
}

func DefaultDatabase() Database {
	return Database{
		Meta:     store.Meta{Title: "List of products", Date: "November 2024"},
		Products: []*Product{},
	}
}

type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	InSeason      bool    `json:"inSeason"`
	CarbonDioxide float64 `json:"carbonDioxide"`
}

// Match reports whether the path parameter denotes this product by id or by
// exact name.
func (p *Product) Match(param string) bool {
	return p.ID == param || p.Name == param
}
