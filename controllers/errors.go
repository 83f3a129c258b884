package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	log "github.com/sirupsen/logrus"

	"github.com/programmingwithjerry/AirBnB-clone-v4/database"
	"github.com/programmingwithjerry/AirBnB-clone-v4/dto"
	"github.com/programmingwithjerry/AirBnB-clone-v4/models"
)

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps service errors onto status codes.
func respondError(c *gin.Context, err error) {
	var missing *dto.MissingFieldError
	var invalid *dto.InvalidFieldError

	switch {
	case errors.Is(err, dto.ErrNotJSON):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: dto.ErrNotJSON.Error()})
	case errors.As(err, &missing):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: missing.Error()})
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: invalid.Error()})
	case errors.Is(err, database.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
	default:
		log.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

// bindPayload decodes a JSON object body. It returns nil when the body is
// absent or not an object; services turn that into "Not a JSON".
func bindPayload(c *gin.Context) dto.Payload {
	var payload dto.Payload
	if err := c.ShouldBindBodyWith(&payload, binding.JSON); err != nil {
		return nil
	}
	return payload
}

func records[T models.Model](objs []T) []map[string]any {
	out := make([]map[string]any, 0, len(objs))
	for _, obj := range objs {
		out = append(out, models.ToMap(obj))
	}
	return out
}

// NotFound answers unknown routes.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
}
