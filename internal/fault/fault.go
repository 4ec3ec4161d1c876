package fault

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/buurtmarkt/backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

// ValidationError is a client-caused error; its message names the specific
// missing or invalid field and is returned verbatim with status 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validation returns a ValidationError with the given message.
func Validation(message string) error {
	return &ValidationError{Message: message}
}

// NotFoundError names the entity or sub-entity a lookup failed on; returned
// verbatim with status 404.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// NotFound returns a NotFoundError with the given message.
func NotFound(message string) error {
	return &NotFoundError{Message: message}
}

// NotFoundf is NotFound with formatting.
func NotFoundf(format string, v ...interface{}) error {
	return &NotFoundError{Message: fmt.Sprintf(format, v...)}
}

// StorageError wraps a failure to load or persist the document store. Fatal
// for the current request only; the detail is logged, never sent to clients.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("storage: %s: %v", e.Op, e.Err) }
func (e *StorageError) Unwrap() error { return e.Err }

// UpstreamError wraps a failed call to an external collaborator.
type UpstreamError struct {
	// Message is the client-facing body; the wrapped error stays server-side.
	Message string
	Err     error
}

func (e *UpstreamError) Error() string { return fmt.Sprintf("upstream: %s: %v", e.Message, e.Err) }
func (e *UpstreamError) Unwrap() error { return e.Err }

// Upstream returns an UpstreamError carrying a client-facing message.
func Upstream(message string, err error) error {
	return &UpstreamError{Message: message, Err: err}
}

// Text writes err as a plain-text response (events, markets, shops style).
func Text(c *gin.Context, err error) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		c.String(http.StatusBadRequest, ve.Message)
		return
	}
	var nf *NotFoundError
	if errors.As(err, &nf) {
		c.String(http.StatusNotFound, nf.Message)
		return
	}
	logger.Errorf("request failed: %v", err)
	c.String(http.StatusInternalServerError, "Internal server error")
}

// JSON writes err as an {"error": ...} response (products, recipes style).
func JSON(c *gin.Context, err error) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message})
		return
	}
	var nf *NotFoundError
	if errors.As(err, &nf) {
		c.JSON(http.StatusNotFound, gin.H{"error": nf.Message})
		return
	}
	var ue *UpstreamError
	if errors.As(err, &ue) {
		logger.Errorf("upstream call failed: %v", ue.Err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": ue.Message})
		return
	}
	logger.Errorf("request failed: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
}
