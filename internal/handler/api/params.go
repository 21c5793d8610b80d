package api

import (
	"marketplace-core/internal/handler/httperr"
	"marketplace-core/internal/handler/middleware"
	"marketplace-core/internal/pkg/errs"
	"marketplace-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errInvalidID      = errs.NewKind("invalid id format", errs.ErrValidation)
	errInvalidRequest = errs.NewKind("invalid request format", errs.ErrValidation)
	errMissingCaller  = errs.New("authenticated caller missing from context")
)

// pathID parses the named path parameter and aborts with 400 when it is not a UUID.
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.Abort(c, errs.Mark(err, errInvalidID))
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON aborts with 400 when the body does not decode or fails its binding tags.
func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		httperr.Abort(c, errs.Mark(err, errInvalidRequest))
		return false
	}
	return true
}

// viewer reads the caller set by the auth middleware.
func viewer(c *gin.Context) (queries.Viewer, bool) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		httperr.Abort(c, errMissingCaller)
		return queries.Viewer{}, false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		httperr.Abort(c, errMissingCaller)
		return queries.Viewer{}, false
	}
	return queries.Viewer{ID: id, Role: role}, true
}
