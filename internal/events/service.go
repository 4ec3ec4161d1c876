package events

import (
	"time"

	"github.com/buurtmarkt/backend/internal/fault"
	"github.com/buurtmarkt/backend/internal/store"
	"github.com/buurtmarkt/backend/internal/validate"
)

// Service owns the event collection and implements the business operations
// behind the HTTP handlers.
type Service struct {
	store *store.Store[Database]
}

func NewService(st *store.Store[Database]) *Service {
	return &Service{store: st}
}

// Store exposes the underlying document store for test isolation.
func (s *Service) Store() *store.Store[Database] {
	return s.store
}

type LocationRequest struct {
	City    string `json:"city"`
	Address string `json:"address"`
}

type CreateEventRequest struct {
	Name        string           `json:"name"`
	Type        string           `json:"type"`
	StartDate   string           `json:"startDate"`
	EndDate     string           `json:"endDate"`
	Description string           `json:"description"`
	Location    *LocationRequest `json:"location"`
}

// Create validates the payload, assigns the next id and appends the event.
func (s *Service) Create(req CreateEventRequest) (*Event, error) {
	start, startErr := validate.ParseDate(req.StartDate)
	end, endErr := validate.ParseDate(req.EndDate)

	err := validate.First(
		validate.Rule{OK: func() bool {
			return req.Name != "" && req.Type != "" && req.StartDate != "" && req.EndDate != "" &&
				req.Description != "" && req.Location != nil && req.Location.City != "" && req.Location.Address != ""
		}, Message: "Missing required fields"},
		validate.Rule{OK: func() bool { return startErr == nil }, Message: "Invalid start date"},
		validate.Rule{OK: func() bool { return endErr == nil }, Message: "Invalid end date"},
		validate.Rule{OK: func() bool { return validate.InFuture(start) }, Message: "Start date must be in the future"},
		validate.Rule{OK: func() bool { return validate.InFuture(end) }, Message: "End date must be in the future"},
		validate.Rule{OK: func() bool { return end.After(start) }, Message: "End date must be after start date"},
	)
	if err != nil {
		return nil, err
	}

	var ev *Event
	err = s.store.Update(func(db *Database) error {
		ev = &Event{
			ID:            db.NextID,
			Name:          req.Name,
			Type:          req.Type,
			StartDate:     req.StartDate,
			EndDate:       req.EndDate,
			Description:   req.Description,
			Location:      Location{City: req.Location.City, Address: req.Location.Address},
			AppliedUsers:  []int{},
			Comments:      []*Comment{},
			NextCommentID: 1,
		}
		db.NextID++
		db.Events = append(db.Events, ev)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ev, nil
}

// List returns all events.
func (s *Service) List() []*Event {
	var out []*Event
	s.store.View(func(db *Database) {
		out = make([]*Event, len(db.Events))
		copy(out, db.Events)
	})
	return out
}

// Get looks an event up by id or exact name; first match in array order wins.
func (s *Service) Get(param string) (*Event, error) {
	var ev *Event
	s.store.View(func(db *Database) {
		ev, _ = store.Find(db.Events, func(e *Event) bool { return e.Match(param) })
	})
	if ev == nil {
		return nil, fault.NotFound("Event not found")
	}
	return ev, nil
}

type LocationPatch struct {
	City    *string `json:"city"`
	Address *string `json:"address"`
}

type UpdateEventRequest struct {
	Name        *string        `json:"name"`
	Type        *string        `json:"type"`
	StartDate   *string        `json:"startDate"`
	EndDate     *string        `json:"endDate"`
	Description *string        `json:"description"`
	Location    *LocationPatch `json:"location"`
}

// Update overwrites only the fields supplied in the patch. Supplied dates are
// re-validated against "now"; the other stored date is not re-checked.
func (s *Service) Update(id string, req UpdateEventRequest) error {
	if req.StartDate != nil && *req.StartDate != "" {
		t, err := validate.ParseDate(*req.StartDate)
		if err != nil {
			return fault.Validation("Invalid start date")
		}
		if !validate.InFuture(t) {
			return fault.Validation("Start date must be in the future")
		}
	}
	if req.EndDate != nil && *req.EndDate != "" {
		t, err := validate.ParseDate(*req.EndDate)
		if err != nil {
			return fault.Validation("Invalid end date")
		}
		if !validate.InFuture(t) {
			return fault.Validation("End date must be in the future")
		}
	}

	return s.store.Update(func(db *Database) error {
		ev, ok := store.Find(db.Events, func(e *Event) bool { return store.MatchesID(e.ID, id) })
		if !ok {
			return fault.NotFound("Event not found")
		}
		applyString(&ev.Name, req.Name)
		applyString(&ev.Type, req.Type)
		applyString(&ev.StartDate, req.StartDate)
		applyString(&ev.EndDate, req.EndDate)
		applyString(&ev.Description, req.Description)
		if req.Location != nil {
			applyString(&ev.Location.City, req.Location.City)
			applyString(&ev.Location.Address, req.Location.Address)
		}
		return nil
	})
}

// applyString overwrites dst for supplied, non-empty patch values.
func applyString(dst *string, src *string) {
	if src != nil && *src != "" {
		*dst = *src
	}
}

// Delete removes the event by identity.
func (s *Service) Delete(id string) error {
	return s.store.Update(func(db *Database) error {
		ev, ok := store.Find(db.Events, func(e *Event) bool { return store.MatchesID(e.ID, id) })
		if !ok {
			return fault.NotFound("Event not found")
		}
		db.Events, _ = store.Remove(db.Events, ev)
		return nil
	})
}

type CommentRequest struct {
	Username string `json:"username"`
	Content  string `json:"content"`
}

// AddComment appends a comment to the event, assigning the event's next
// comment id.
func (s *Service) AddComment(eventID string, req CommentRequest) (*Comment, error) {
	var cm *Comment
	err := s.store.Update(func(db *Database) error {
		ev, ok := store.Find(db.Events, func(e *Event) bool { return store.MatchesID(e.ID, eventID) })
		if !ok {
			return fault.NotFound("Event not found")
		}
		if req.Username == "" || req.Content == "" {
			return fault.Validation("Missing required fields")
		}
		cm = &Comment{
			ID:          ev.NextCommentID,
			Username:    req.Username,
			Content:     req.Content,
			Replies:     []*Reply{},
			NextReplyID: 1,
		}
		ev.NextCommentID++
		ev.Comments = append(ev.Comments, cm)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cm, nil
}

// Comments lists the comments of one event.
func (s *Service) Comments(eventID string) ([]*Comment, error) {
	var out []*Comment
	var found bool
	s.store.View(func(db *Database) {
		ev, ok := store.Find(db.Events, func(e *Event) bool { return store.MatchesID(e.ID, eventID) })
		if !ok {
			return
		}
		found = true
		out = ev.Comments
	})
	if !found {
		return nil, fault.NotFound("Event not found")
	}
	return out, nil
}

// EditComment replaces the comment content.
func (s *Service) EditComment(eventID, commentID string, req CommentRequest) error {
	return s.store.Update(func(db *Database) error {
		cm, err := findComment(db, eventID, commentID)
		if err != nil {
			return err
		}
		if req.Content == "" || req.Username == "" {
			return fault.Validation("Missing required fields for editing the comment")
		}
		cm.Content = req.Content
		return nil
	})
}

// DeleteComment splices the comment out of the event.
func (s *Service) DeleteComment(eventID, commentID string) error {
	return s.store.Update(func(db *Database) error {
		ev, ok := store.Find(db.Events, func(e *Event) bool { return store.MatchesID(e.ID, eventID) })
		if !ok {
			return fault.NotFound("Event not found")
		}
		cm, ok := store.Find(ev.Comments, func(c *Comment) bool { return store.MatchesID(c.ID, commentID) })
		if !ok {
			return fault.NotFound("Comment not found")
		}
		ev.Comments, _ = store.Remove(ev.Comments, cm)
		return nil
	})
}

// AddReply appends a reply to the comment, assigning the comment's next reply
// id. It returns the id of the parent comment for the confirmation message.
func (s *Service) AddReply(eventID, commentID string, req CommentRequest) (int, error) {
	var parentID int
	err := s.store.Update(func(db *Database) error {
		cm, err := findComment(db, eventID, commentID)
		if err != nil {
			return err
		}
		if req.Username == "" || req.Content == "" {
			return fault.Validation("Missing required fields")
		}
		cm.Replies = append(cm.Replies, &Reply{
			ID:       cm.NextReplyID,
			Username: req.Username,
			Content:  req.Content,
		})
		cm.NextReplyID++
		parentID = cm.ID
		return nil
	})
	return parentID, err
}

// Replies lists the replies of one comment.
func (s *Service) Replies(eventID, commentID string) ([]*Reply, error) {
	var out []*Reply
	var ferr error
	s.store.View(func(db *Database) {
		cm, err := findComment(db, eventID, commentID)
		if err != nil {
			ferr = err
			return
		}
		out = cm.Replies
	})
	if ferr != nil {
		return nil, ferr
	}
	return out, nil
}

// EditReply replaces the reply content.
func (s *Service) EditReply(eventID, commentID, replyID string, req CommentRequest) error {
	return s.store.Update(func(db *Database) error {
		cm, err := findComment(db, eventID, commentID)
		if err != nil {
			return err
		}
		rp, ok := store.Find(cm.Replies, func(r *Reply) bool { return store.MatchesID(r.ID, replyID) })
		if !ok {
			return fault.NotFound("Reply not found")
		}
		if req.Content == "" || req.Username == "" {
			return fault.Validation("Missing required fields for editing the reply")
		}
		rp.Content = req.Content
		return nil
	})
}

// DeleteReply splices the reply out of the comment.
func (s *Service) DeleteReply(eventID, commentID, replyID string) error {
	return s.store.Update(func(db *Database) error {
		cm, err := findComment(db, eventID, commentID)
		if err != nil {
			return err
		}
		rp, ok := store.Find(cm.Replies, func(r *Reply) bool { return store.MatchesID(r.ID, replyID) })
		if !ok {
			return fault.NotFound("Reply not found")
		}
		cm.Replies, _ = store.Remove(cm.Replies, rp)
		return nil
	})
}

func findComment(db *Database, eventID, commentID string) (*Comment, error) {
	ev, ok := store.Find(db.Events, func(e *Event) bool { return store.MatchesID(e.ID, eventID) })
	if !ok {
		return nil, fault.NotFound("Event not found")
	}
	cm, ok := store.Find(ev.Comments, func(c *Comment) bool { return store.MatchesID(c.ID, commentID) })
	if !ok {
		return nil, fault.NotFound("Comment not found")
	}
	return cm, nil
}

// IsApplied reports whether the user applied for the event.
func (s *Service) IsApplied(eventID string, user int) (bool, error) {
	var applied bool
	var found bool
	s.store.View(func(db *Database) {
		ev, ok := store.Find(db.Events, func(e *Event) bool { return store.MatchesID(e.ID, eventID) })
		if !ok {
			return
		}
		found = true
		for _, u := range ev.AppliedUsers {
			if u == user {
				applied = true
				return
			}
		}
	})
	if !found {
		return false, fault.NotFound("Event not found")
	}
	return applied, nil
}

// Apply registers the user for the event. Events that already started or
// ended no longer accept applications.
func (s *Service) Apply(eventID string, user int) error {
	return s.store.Update(func(db *Database) error {
		ev, ok := store.Find(db.Events, func(e *Event) bool { return store.MatchesID(e.ID, eventID) })
		if !ok {
			return fault.NotFound("Event not found")
		}
		for _, u := range ev.AppliedUsers {
			if u == user {
				return fault.Validation("User already applied")
			}
		}
		now := time.Now()
		if start, err := validate.ParseDate(ev.StartDate); err == nil && start.Before(now) {
			return fault.Validation("Event already started")
		}
		if end, err := validate.ParseDate(ev.EndDate); err == nil && end.Before(now) {
			return fault.Validation("Event already ended")
		}
		ev.AppliedUsers = append(ev.AppliedUsers, user)
		return nil
	})
}

// DeApply withdraws the user's application.
func (s *Service) DeApply(eventID string, user int) error {
	return s.store.Update(func(db *Database) error {
		ev, ok := store.Find(db.Events, func(e *Event) bool { return store.MatchesID(e.ID, eventID) })
		if !ok {
			return fault.NotFound("Event not found")
		}
		for i, u := range ev.AppliedUsers {
			if u == user {
				ev.AppliedUsers = append(ev.AppliedUsers[:i], ev.AppliedUsers[i+1:]...)
				return nil
			}
		}
		return fault.Validation("User not applied")
	})
}
