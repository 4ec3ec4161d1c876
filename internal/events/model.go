package events

import "github.com/buurtmarkt/backend/internal/store"

// Database is the full persisted state of the events service.
type Database struct {
	Meta   store.Meta `json:"meta"`
	Events []*Event   `json:"events"`
	NextID int        `json:"nextId"`
}

// DefaultDatabase is the document created when no file exists yet.
func DefaultDatabase() Database {
	return Database{
		Meta:   store.Meta{Title: "List of events", Date: "December 2024"},
		Events: []*Event{},
		NextID: 1,
	}
}

type Location struct {
	City    string `json:"city"`
	Address string `json:"address"`
}

type Event struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Type         string     `json:"type"`
	StartDate    string     `json:"startDate"`
	EndDate      string     `json:"endDate"`
	Description  string     `json:"description"`
	Location     Location   `json:"location"`
	AppliedUsers []int      `json:"appliedUsers"`
	Comments     []*Comment `json:"comments"`
	// NextCommentID is the per-event comment counter; it only increments, so
	// comment ids are never reused within an event.
	NextCommentID int `json:"nextCommentId"`
}

// Match reports whether the path parameter denotes this event by id or by
// exact name.
func (e *Event) Match(param string) bool {
	return store.MatchesID(e.ID, param) || e.Name == param
}

type Comment struct {
	ID       int      `json:"id"`
	Username string   `json:"username"`
	Content  string   `json:"content"`
	Replies  []*Reply `json:"replies"`
	// NextReplyID is the per-comment reply counter.
	NextReplyID int `json:"nextReplyId"`
}

type Reply struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Content  string `json:"content"`
}
