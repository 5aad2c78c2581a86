package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/workforce-api/internal/export"
	"github.com/stemsi/workforce-api/internal/repository"
	"github.com/stemsi/workforce-api/internal/response"
	"github.com/stemsi/workforce-api/internal/validator"
)

// failFromError is the single decision table turning service errors into
// HTTP responses for every resource.
func failFromError(c *gin.Context, resource string, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		response.FailWithMessage(c, http.StatusNotFound, response.ErrNotFound, fmt.Sprintf("%s not found.", resource))
	case errors.Is(err, repository.ErrDuplicateKey):
		response.FailWithMessage(c, http.StatusInternalServerError, response.ErrConflict, fmt.Sprintf("A %s with this id already exists.", resource))
	case errors.Is(err, repository.ErrInvalidReference):
		response.Fail(c, http.StatusInternalServerError, response.ErrInvalidReference)
	case errors.Is(err, repository.ErrUnknownTable):
		response.FailWithMessage(c, http.StatusUnprocessableEntity, response.ErrUnknownTable,
			fmt.Sprintf("%s Allowed tables: %s.", response.GetMessage(response.ErrUnknownTable), strings.Join(repository.TableNames(), ", ")))
	case errors.Is(err, export.ErrInProgress):
		response.Fail(c, http.StatusConflict, response.ErrExportInProgress)
	default:
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}

// bindOrFail binds the JSON body into dst and writes a 422 on failure.
func bindOrFail(c *gin.Context, dst interface{}) bool {
	if fields := validator.Bind(c, dst); fields != nil {
		response.FailWithFields(c, http.StatusUnprocessableEntity, response.ErrValidation, fields)
		return false
	}
	return true
}

// paramID parses the :id path segment and writes a 400 when it is not an
// integer that fits the 32-bit key columns.
func paramID(c *gin.Context) (int, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return 0, false
	}
	return int(id), true
}
