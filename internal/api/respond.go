package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/studio-admin-api/internal/models"
)

// respondError maps a classified service error onto the wire contract.
// Anything outside the taxonomy is logged and reported as an opaque 500.
func respondError(c *gin.Context, log zerolog.Logger, err error) {
	var vErr *models.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message, "details": vErr.Field})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": models.ErrNotFound.Error()})
	case errors.Is(err, models.ErrDuplicateAccount):
		c.JSON(http.StatusConflict, gin.H{"error": models.ErrDuplicateAccount.Error()})
	case errors.Is(err, models.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": models.ErrInvalidCredentials.Error()})
	case errors.Is(err, models.ErrStoreUnavailable):
		log.Error().Err(err).Msg("Record store unavailable")
		c.JSON(http.StatusInternalServerError, gin.H{"error": models.ErrStoreUnavailable.Error()})
	default:
		log.Error().Err(err).Msg("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// pathID parses the numeric identity from the route. A non-numeric id can
// never name a record, so it is reported as NotFound.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": models.ErrNotFound.Error()})
		return 0, false
	}
	return id, true
}
