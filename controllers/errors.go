package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/yummy-app/analytics"
	"github.com/yeremiapane/yummy-app/database"
	"github.com/yeremiapane/yummy-app/utils"
)

// ErrNoPermission adalah error untuk akses yang ditolak
var ErrNoPermission = &CustomError{"You do not have permission"}

type CustomError struct {
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}

// statusFromError maps domain errors onto HTTP status codes.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, database.ErrBadParams), errors.Is(err, analytics.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, database.ErrNotExists):
		return http.StatusNotFound
	case errors.Is(err, database.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, ErrNoPermission):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func respondDomainError(c *gin.Context, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		utils.ErrorLogger.WithError(err).WithField("path", c.FullPath()).Error("Request failed")
		c.Error(err)
	}
	utils.RespondError(c, status, err)
}

// paramID reads a positive integer path parameter, answering 400 otherwise.
func paramID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid %s", name))
		return 0, false
	}
	return id, true
}

// queryInt reads a required integer query parameter, answering 400 otherwise.
func queryInt(c *gin.Context, name string) (int, bool) {
	value, err := strconv.Atoi(c.Query(name))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid or missing %s", name))
		return 0, false
	}
	return value, true
}
