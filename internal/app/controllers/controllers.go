package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yigit/university/internal/middleware"
	"github.com/yigit/university/internal/pkg/apperrors"
)

// pathID reads a positive integer path parameter. Anything else is answered
// with 404, since no resource can live under such a path.
func pathID(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		middleware.HandleAPIError(ctx, apperrors.ErrResourceNotFound)
		return 0, false
	}
	return id, true
}
