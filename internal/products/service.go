package products

import (
	"github.com/buurtmarkt/backend/internal/fault"
	"github.com/buurtmarkt/backend/internal/store"
	"github.com/buurtmarkt/backend/internal/validate"
	"github.com/google/uuid"
)

// Service owns the product collection.
type Service struct {
	store *store.Store[Database]
}

func NewService(st *store.Store[Database]) *Service {
	return &Service{store: st}
}

func (s *Service) Store() *store.Store[Database] {
	return s.store
}

// CreateProductRequest uses pointer fields so that absent booleans and
// numbers are distinguishable from zero values.
type CreateProductRequest struct {
	Name          string   `json:"name"`
	InSeason      *bool    `json:"inSeason"`
	CarbonDioxide *float64 `json:"carbonDioxide"`
}

// Create validates the payload and appends the product under a fresh UUID.
func (s *Service) Create(req CreateProductRequest) (*Product, error) {
	err := validate.First(
		validate.Rule{OK: func() bool {
			return req.Name != "" && req.InSeason != nil && req.CarbonDioxide != nil
		}, Message: "Missing required fields: 'name', 'inSeason', 'carbonDioxide'."},
	)
	if err != nil {
		return nil, err
	}

	p := &Product{
		ID:            uuid.NewString(),
		Name:          req.Name,
		InSeason:      *req.InSeason,
		CarbonDioxide: *req.CarbonDioxide,
	}
	err = s.store.Update(func(db *Database) error {
		db.Products = append(db.Products, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) List() []*Product {
	var out []*Product
	s.store.View(func(db *Database) {
		out = make([]*Product, len(db.Products))
		copy(out, db.Products)
	})
	return out
}

func (s *Service) Get(param string) (*Product, error) {
	var p *Product
	s.store.View(func(db *Database) {
		p, _ = store.Find(db.Products, func(pr *Product) bool { return pr.Match(param) })
	})
	if p == nil {
		return nil, fault.NotFoundf("Product not found for parameter: %s", param)
	}
	return p, nil
}

type UpdateProductRequest struct {
	Name          *string  `json:"name"`
	InSeason      *bool    `json:"inSeason"`
	CarbonDioxide *float64 `json:"carbonDioxide"`
}

// Update overwrites exactly the supplied fields; the product is addressed by
// id or name.
func (s *Service) Update(param string, req UpdateProductRequest) (*Product, error) {
	var p *Product
	err := s.store.Update(func(db *Database) error {
		var ok bool
		p, ok = store.Find(db.Products, func(pr *Product) bool { return pr.Match(param) })
		if !ok {
			return fault.NotFoundf("Product with ID: %s not found.", param)
		}
		if req.Name != nil {
			p.Name = *req.Name
		}
		if req.InSeason != nil {
			p.InSeason = *req.InSeason
		}
		if req.CarbonDioxide != nil {
			p.CarbonDioxide = *req.CarbonDioxide
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Delete splices the product out and returns it for the confirmation body.
func (s *Service) Delete(param string) (*Product, error) {
	var p *Product
	err := s.store.Update(func(db *Database) error {
		var ok bool
		p, ok = store.Find(db.Products, func(pr *Product) bool { return pr.Match(param) })
		if !ok {
			return fault.NotFoundf("Product with identifier: %s not found.", param)
		}
		db.Products, _ = store.Remove(db.Products, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}
