package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tradelog/internal/auth"
	apperrors "tradelog/internal/errors"
	"tradelog/internal/middleware"
	"tradelog/internal/pagination"
	"tradelog/internal/services"
)

// getIdentity extracts the authenticated caller from the Gin context.
// Returns ErrUnauthorized if not present.
func getIdentity(c *gin.Context) (*auth.Identity, error) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return nil, apperrors.ErrUnauthorized
	}
	return identity, nil
}

// parsePathID reads the :id path parameter, which must be a UUID.
func parsePathID(c *gin.Context) (string, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid id")
	}
	return id.String(), nil
}

// bindPage parses the optional page/pageSize query parameters.
func bindPage(c *gin.Context) (pagination.PageRequest, error) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		return page, invalidInput(err)
	}
	return page, nil
}

// respondWithList writes the rows as a JSON array and the unpaginated count
// as X-Total-Count.
func respondWithList[T any](c *gin.Context, page *pagination.Page[T]) {
	c.Header(pagination.TotalCountHeader, strconv.FormatInt(page.Total, 10))
	c.JSON(http.StatusOK, page.Items)
}

// respondWithError writes a consistent JSON error response.
func respondWithError(c *gin.Context, err error) {
	middleware.WriteError(c, err)
}

// bindJSON binds and validates the request body.
func bindJSON(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return invalidInput(err)
	}
	return nil
}

func invalidInput(err error) error {
	return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
}

// deleteRecord runs the shared DELETE /:id flow: parse, delete, audit, 204.
func deleteRecord(c *gin.Context, audit services.AuditServicer, resourceType string, del func(ctx context.Context, id string) error) {
	identity, err := getIdentity(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	id, err := parsePathID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := del(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	audit.Log(identity.ID, services.AuditActionDelete, resourceType, id, c.ClientIP(), nil)
	c.Status(http.StatusNoContent)
}
