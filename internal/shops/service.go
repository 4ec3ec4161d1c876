package shops

import (
	"context"

	"github.com/buurtmarkt/backend/internal/fault"
	"github.com/buurtmarkt/backend/internal/store"
	"github.com/buurtmarkt/backend/internal/validate"
)

// Service owns the shop collection and its collaborators: the geocoder and
// the products sibling service.
type Service struct {
	store    *store.Store[Database]
	geocoder Geocoder
	products ProductsClient
}

func NewService(st *store.Store[Database], geocoder Geocoder, products ProductsClient) *Service {
	return &Service{store: st, geocoder: geocoder, products: products}
}

func (s *Service) Store() *store.Store[Database] {
	return s.store
}

type LocationRequest struct {
	City    string `json:"city"`
	Address string `json:"address"`
}

type OpeningHoursRequest struct {
	Monday    string `json:"monday"`
	Tuesday   string `json:"tuesday"`
	Wednesday string `json:"wednesday"`
	Thursday  string `json:"thursday"`
	Friday    string `json:"friday"`
	Saturday  string `json:"saturday"`
	Sunday    string `json:"sunday"`
}

type PromotionsRequest struct {
	Description *string `json:"description"`
	EndDate     *string `json:"endDate"`
}

type CreateShopRequest struct {
	Name          string               `json:"name"`
	Location      *LocationRequest     `json:"location"`
	PhoneNumber   string               `json:"phoneNumber"`
	OpeningHours  *OpeningHoursRequest `json:"openingHours"`
	PayingMethods []string             `json:"payingMethods"`
	UserID        string               `json:"userID"`
	Promotions    *PromotionsRequest   `json:"promotions"`
}

// Create validates the payload, geocodes the address and appends the shop.
// Geocoding failure is not fatal: the shop is stored without coordinates.
func (s *Service) Create(ctx context.Context, req CreateShopRequest) (*Shop, error) {
	err := validate.First(
		validate.Rule{OK: func() bool {
			return req.Name != "" && req.Location != nil && req.Location.City != "" &&
				req.Location.Address != "" && req.UserID != ""
		}, Message: "Missing required fields"},
	)
	if err != nil {
		return nil, err
	}

	lat, lng := s.geocoder.Geocode(ctx, req.Location.Address, req.Location.City)

	hours := DefaultOpeningHours()
	if req.OpeningHours != nil {
		mergeHours(&hours, *req.OpeningHours)
	}
	promotions := Promotions{}
	if req.Promotions != nil {
		promotions.Description = req.Promotions.Description
		promotions.EndDate = req.Promotions.EndDate
	}
	payingMethods := req.PayingMethods
	if payingMethods == nil {
		payingMethods = []string{}
	}

	var shop *Shop
	err = s.store.Update(func(db *Database) error {
		shop = &Shop{
			ID:            db.NextID,
			Name:          req.Name,
			Location:      Location{City: req.Location.City, Address: req.Location.Address},
			PhoneNumber:   req.PhoneNumber,
			OpeningHours:  hours,
			PayingMethods: payingMethods,
			UserID:        req.UserID,
			Promotions:    promotions,
			Lat:           lat,
			Lng:           lng,
			Products:      []string{},
		}
		db.NextID++
		db.Shops = append(db.Shops, shop)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return shop, nil
}

// mergeHours overwrites only the days the request actually supplies.
func mergeHours(dst *OpeningHours, src OpeningHoursRequest) {
	if src.Monday != "" {
		dst.Monday = src.Monday
	}
	if src.Tuesday != "" {
		dst.Tuesday = src.Tuesday
	}
	if src.Wednesday != "" {
		dst.Wednesday = src.Wednesday
	}
	if src.Thursday != "" {
		dst.Thursday = src.Thursday
	}
	if src.Friday != "" {
		dst.Friday = src.Friday
	}
	if src.Saturday != "" {
		dst.Saturday = src.Saturday
	}
	if src.Sunday != "" {
		dst.Sunday = src.Sunday
	}
}

func (s *Service) List() []*Shop {
	var out []*Shop
	s.store.View(func(db *Database) {
		out = make([]*Shop, len(db.Shops))
		copy(out, db.Shops)
	})
	return out
}

func (s *Service) Get(param string) (*Shop, error) {
	var shop *Shop
	s.store.View(func(db *Database) {
		shop, _ = store.Find(db.Shops, func(sh *Shop) bool { return sh.Match(param) })
	})
	if shop == nil {
		return nil, fault.NotFound("Shop not found")
	}
	return shop, nil
}

type LocationPatch struct {
	City    *string `json:"city"`
	Address *string `json:"address"`
}

type UpdateShopRequest struct {
	Name          *string              `json:"name"`
	Location      *LocationPatch       `json:"location"`
	PhoneNumber   *string              `json:"phoneNumber"`
	OpeningHours  *OpeningHoursRequest `json:"openingHours"`
	PayingMethods []string             `json:"payingMethods"`
	UserID        *string              `json:"userID"`
	Promotions    *PromotionsRequest   `json:"promotions"`
}

// Update overwrites only the supplied fields; a location change triggers a
// fresh geocoder lookup.
func (s *Service) Update(ctx context.Context, id string, req UpdateShopRequest) error {
	// Geocode before taking the store lock: an outbound call must not stall
	// other requests. The merged location is derived from the current shop.
	var lat, lng *string
	regeocode := req.Location != nil
	if regeocode {
		merged, err := s.mergedLocation(id, req.Location)
		if err != nil {
			return err
		}
		lat, lng = s.geocoder.Geocode(ctx, merged.Address, merged.City)
	}

	return s.store.Update(func(db *Database) error {
		shop, ok := store.Find(db.Shops, func(sh *Shop) bool { return store.MatchesID(sh.ID, id) })
		if !ok {
			return fault.NotFoundf("Shop with ID: %s not found", id)
		}
		if req.Name != nil && *req.Name != "" {
			shop.Name = *req.Name
		}
		if req.Location != nil {
			if req.Location.City != nil && *req.Location.City != "" {
				shop.Location.City = *req.Location.City
			}
			if req.Location.Address != nil && *req.Location.Address != "" {
				shop.Location.Address = *req.Location.Address
			}
		}
		if regeocode {
			shop.Lat = lat
			shop.Lng = lng
		}
		if req.PhoneNumber != nil && *req.PhoneNumber != "" {
			shop.PhoneNumber = *req.PhoneNumber
		}
		if req.OpeningHours != nil {
			mergeHours(&shop.OpeningHours, *req.OpeningHours)
		}
		if req.PayingMethods != nil {
			shop.PayingMethods = req.PayingMethods
		}
		if req.UserID != nil && *req.UserID != "" {
			shop.UserID = *req.UserID
		}
		if req.Promotions != nil {
			if req.Promotions.Description != nil {
				shop.Promotions.Description = req.Promotions.Description
			}
			if req.Promotions.EndDate != nil {
				shop.Promotions.EndDate = req.Promotions.EndDate
			}
		}
		return nil
	})
}

// mergedLocation returns the shop's location with the patch applied, without
// mutating the stored shop.
func (s *Service) mergedLocation(id string, patch *LocationPatch) (Location, error) {
	var loc Location
	var found bool
	s.store.View(func(db *Database) {
		shop, ok := store.Find(db.Shops, func(sh *Shop) bool { return store.MatchesID(sh.ID, id) })
		if !ok {
			return
		}
		found = true
		loc = shop.Location
	})
	if !found {
		return Location{}, fault.NotFoundf("Shop with ID: %s not found", id)
	}
	if patch.City != nil && *patch.City != "" {
		loc.City = *patch.City
	}
	if patch.Address != nil && *patch.Address != "" {
		loc.Address = *patch.Address
	}
	return loc, nil
}

func (s *Service) Delete(id string) error {
	return s.store.Update(func(db *Database) error {
		shop, ok := store.Find(db.Shops, func(sh *Shop) bool { return store.MatchesID(sh.ID, id) })
		if !ok {
			return fault.NotFound("Shop not found")
		}
		db.Shops, _ = store.Remove(db.Shops, shop)
		return nil
	})
}

// LinkProduct attaches a product id to the shop after verifying the product
// exists in the products service. Linking an already linked product is a
// no-op.
func (s *Service) LinkProduct(ctx context.Context, shopID, productID string) (*Shop, error) {
	list, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	found := false
	for _, p := range list {
		if p.ID == productID {
			found = true
			break
		}
	}

	var shop *Shop
	err = s.store.Update(func(db *Database) error {
		var ok bool
		shop, ok = store.Find(db.Shops, func(sh *Shop) bool { return store.MatchesID(sh.ID, shopID) })
		if !ok {
			return fault.NotFoundf("Shop with ID: %s not found.", shopID)
		}
		if !found {
			return fault.NotFoundf("Product with ID: %s not found.", productID)
		}
		for _, id := range shop.Products {
			if id == productID {
				return nil
			}
		}
		shop.Products = append(shop.Products, productID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return shop, nil
}

// UnlinkProduct removes a linked product id from the shop.
func (s *Service) UnlinkProduct(shopID, productID string) (*Shop, error) {
	var shop *Shop
	err := s.store.Update(func(db *Database) error {
		var ok bool
		shop, ok = store.Find(db.Shops, func(sh *Shop) bool { return store.MatchesID(sh.ID, shopID) })
		if !ok {
			return fault.NotFoundf("Shop with ID: %s not found.", shopID)
		}
		for i, id := range shop.Products {
			if id == productID {
				shop.Products = append(shop.Products[:i], shop.Products[i+1:]...)
				return nil
			}
		}
		return fault.NotFoundf("Product with ID: %s is not linked to Shop with ID: %s.", productID, shopID)
	})
	if err != nil {
		return nil, err
	}
	return shop, nil
}

// ShopProducts resolves the shop's linked product ids against the products
// service; ids that no longer resolve are filtered out.
func (s *Service) ShopProducts(ctx context.Context, shopID string) ([]ProductRef, error) {
	shop, err := s.Get(shopID)
	if err != nil {
		return nil, fault.NotFoundf("Shop with ID: %s not found.", shopID)
	}
	list, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]ProductRef, len(list))
	for _, p := range list {
		byID[p.ID] = p
	}
	out := []ProductRef{}
	for _, id := range shop.Products {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}
