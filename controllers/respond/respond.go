// Package respond holds the response helpers shared by every controller.
package respond

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/cornerstore-api/middleware"
	"github.com/junaidrashid-git/cornerstore-api/repository"
)

// StoreError writes the status for a repository error: 404 with an empty
// body, 400 with the validation message, or 500.
func StoreError(c *gin.Context, err error) {
	var verr *repository.ValidationError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.Status(http.StatusNotFound)
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "field": verr.Field})
	case errors.Is(err, repository.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("❌ %s %s [%s]: %v", c.Request.Method, c.Request.URL.Path, middleware.GetRequestID(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// BadRequest writes a 400 with the given message.
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

// ID parses the named path parameter as a positive integer id. It writes a
// 400 and returns false when the parameter is malformed.
func ID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// Created writes a 201 with a Location header pointing at the new resource.
func Created(c *gin.Context, location string, body interface{}) {
	c.Header("Location", location)
	c.JSON(http.StatusCreated, body)
}
