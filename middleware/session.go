package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/programmingwithjerry/AirBnB-clone-v4/database"
)

const sessionKey = "storage_session"

// StorageSession opens a storage session for the request and always closes
// it once the handler chain returns.
func StorageSession(store database.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := store.Open(c.Request.Context())
		if err != nil {
			log.WithError(err).Error("failed to open storage session")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		defer func() {
			if err := sess.Close(); err != nil {
				log.WithError(err).Warn("failed to close storage session")
			}
		}()

		c.Set(sessionKey, sess)
		c.Next()
	}
}

// Session returns the storage session opened by StorageSession.
func Session(c *gin.Context) database.Session {
	return c.MustGet(sessionKey).(database.Session)
}

// Invalidator is notified after every successful write request.
type Invalidator interface {
	Invalidate(ctx context.Context)
}

// InvalidateOnWrite calls inv after a POST, PUT or DELETE that succeeded.
func InvalidateOnWrite(inv Invalidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodDelete:
		default:
			return
		}
		if c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		// places_search is a read served over POST.
		if strings.HasSuffix(strings.TrimSuffix(c.FullPath(), "/"), "/places_search") {
			return
		}
		inv.Invalidate(c.Request.Context())
	}
}
