package markets

import (
	"github.com/buurtmarkt/backend/internal/fault"
	"github.com/buurtmarkt/backend/internal/store"
	"github.com/buurtmarkt/backend/internal/validate"
)

// Service owns the market collection.
type Service struct {
	store *store.Store[Database]
}

func NewService(st *store.Store[Database]) *Service {
	return &Service{store: st}
}

func (s *Service) Store() *store.Store[Database] {
	return s.store
}

type LocationRequest struct {
	City    string `json:"city"`
	Address string `json:"address"`
}

type CreateMarketRequest struct {
	Name        string           `json:"name"`
	DayOfWeek   string           `json:"dayOfWeek"`
	StartTime   string           `json:"startTime"`
	EndTime     string           `json:"endTime"`
	Description string           `json:"description"`
	Location    *LocationRequest `json:"location"`
}

// Create validates the payload, assigns the next id and appends the market.
// New markets start unverified.
func (s *Service) Create(req CreateMarketRequest) (*Market, error) {
	err := validate.First(
		validate.Rule{OK: func() bool {
			return req.Location != nil && req.Location.City != "" && req.Location.Address != ""
		}, Message: "Missing location fields"},
		validate.Rule{OK: func() bool {
			return req.Name != "" && req.DayOfWeek != "" && req.StartTime != "" && req.EndTime != "" && req.Description != ""
		}, Message: "Missing required fields"},
		validate.Rule{OK: func() bool { return validate.IsWeekday(req.DayOfWeek) }, Message: "Invalid day of week"},
		validate.Rule{OK: func() bool { return validate.IsHHMM(req.StartTime) }, Message: "Invalid start time format, must be HH:mm"},
		validate.Rule{OK: func() bool { return validate.IsHHMM(req.EndTime) }, Message: "Invalid end time format, must be HH:mm"},
		// zero-padded HH:mm orders correctly as strings
		validate.Rule{OK: func() bool { return req.StartTime < req.EndTime }, Message: "End time must be after start time"},
	)
	if err != nil {
		return nil, err
	}

	var m *Market
	err = s.store.Update(func(db *Database) error {
		m = &Market{
			ID:          db.NextID,
			Name:        req.Name,
			DayOfWeek:   req.DayOfWeek,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			Description: req.Description,
			Location:    Location{City: req.Location.City, Address: req.Location.Address},
			Verified:    false,
			Comments:    []any{},
		}
		db.NextID++
		db.Markets = append(db.Markets, m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) List() []*Market {
	var out []*Market
	s.store.View(func(db *Database) {
		out = make([]*Market, len(db.Markets))
		copy(out, db.Markets)
	})
	return out
}

func (s *Service) Get(param string) (*Market, error) {
	var m *Market
	s.store.View(func(db *Database) {
		m, _ = store.Find(db.Markets, func(mk *Market) bool { return mk.Match(param) })
	})
	if m == nil {
		return nil, fault.NotFound("Market not found")
	}
	return m, nil
}

type LocationPatch struct {
	City    *string `json:"city"`
	Address *string `json:"address"`
}

type UpdateMarketRequest struct {
	Name        *string        `json:"name"`
	DayOfWeek   *string        `json:"dayOfWeek"`
	StartTime   *string        `json:"startTime"`
	EndTime     *string        `json:"endTime"`
	Description *string        `json:"description"`
	Verified    *bool          `json:"verified"`
	Location    *LocationPatch `json:"location"`
}

// Update validates the supplied fields, then overwrites exactly those.
func (s *Service) Update(id string, req UpdateMarketRequest) error {
	err := validate.First(
		validate.Rule{OK: func() bool {
			return req.DayOfWeek == nil || *req.DayOfWeek == "" || validate.IsWeekday(*req.DayOfWeek)
		}, Message: "Invalid day of week"},
		validate.Rule{OK: func() bool {
			return req.StartTime == nil || *req.StartTime == "" || validate.IsHHMM(*req.StartTime)
		}, Message: "Invalid start time format, must be HH:mm"},
		validate.Rule{OK: func() bool {
			return req.EndTime == nil || *req.EndTime == "" || validate.IsHHMM(*req.EndTime)
		}, Message: "Invalid end time format, must be HH:mm"},
		validate.Rule{OK: func() bool {
			if req.StartTime == nil || *req.StartTime == "" || req.EndTime == nil || *req.EndTime == "" {
				return true
			}
			return *req.StartTime < *req.EndTime
		}, Message: "End time must be after start time"},
		validate.Rule{OK: func() bool {
			return req.Location == nil || (req.Location.City != nil && req.Location.Address != nil)
		}, Message: "Location must include both city and address"},
	)
	if err != nil {
		return err
	}

	return s.store.Update(func(db *Database) error {
		m, ok := store.Find(db.Markets, func(mk *Market) bool { return store.MatchesID(mk.ID, id) })
		if !ok {
			return fault.NotFound("Market not found")
		}
		applyString(&m.Name, req.Name)
		applyString(&m.DayOfWeek, req.DayOfWeek)
		applyString(&m.StartTime, req.StartTime)
		applyString(&m.EndTime, req.EndTime)
		applyString(&m.Description, req.Description)
		if req.Verified != nil {
			m.Verified = *req.Verified
		}
		if req.Location != nil {
			applyString(&m.Location.City, req.Location.City)
			applyString(&m.Location.Address, req.Location.Address)
		}
		return nil
	})
}

func applyString(dst *string, src *string) {
	if src != nil && *src != "" {
		*dst = *src
	}
}

func (s *Service) Delete(id string) error {
	return s.store.Update(func(db *Database) error {
		m, ok := store.Find(db.Markets, func(mk *Market) bool { return store.MatchesID(mk.ID, id) })
		if !ok {
			return fault.NotFound("Market not found")
		}
		db.Markets, _ = store.Remove(db.Markets, m)
		return nil
	})
}
