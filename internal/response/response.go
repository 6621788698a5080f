package response

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"

	"github.com/classora/classora-backend/internal/apperr"
)

// Envelope is the uniform response body. Data is omitted on failures.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success sends a successful JSON response with the given status and payload.
func Success(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Fail sends a failure envelope with an explicit status and message.
func Fail(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Envelope{Success: false, Message: message})
}

// AbortFail aborts the middleware chain and sends a failure envelope.
func AbortFail(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, Envelope{Success: false, Message: message})
}

// Error is the terminal boundary for service failures. It translates storage
// errors into the taxonomy, logs internal detail, and never echoes it.
func Error(c *gin.Context, err error) {
	err = translateStorage(err)

	if apperr.StatusOf(err) >= 500 {
		log.Error().
			Err(err).
			Str("request_id", RequestID(c)).
			Str("path", c.FullPath()).
			Str("method", c.Request.Method).
			Msg("request failed")
	}

	Fail(c, apperr.StatusOf(err), apperr.MessageOf(err))
}

// translateStorage maps pgx structural errors into the taxonomy so handlers
// never leak storage-specific shapes.
func translateStorage(err error) error {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound("Not found")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return apperr.Conflict("Duplicate value for a unique field")
		case "23503": // foreign_key_violation
			return apperr.Conflict("Record is referenced by other data")
		case "22P02": // invalid_text_representation
			return apperr.BadRequest("Invalid identifier")
		}
	}

	return err
}
