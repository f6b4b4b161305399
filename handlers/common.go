package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

const dbTimeout = 10 * time.Second

func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}

// internalError logs the detail server-side and returns a generic 500 body.
func internalError(c *gin.Context, tag string, err error) {
	log.Printf("[%s] %v", tag, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
}

// staleIdentity reports whether loading the authenticated user failed because
// the account no longer exists. A valid token for a deleted account is
// unauthorized, not a server error.
func staleIdentity(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}
