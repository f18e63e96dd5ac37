package v1

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fsnd-projects/fsnd-api/internal/api/handler/v1/response"
)

func parseIDParam(ctx *gin.Context, name string) (uint, *response.Err) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, response.ErrBadRequest(fmt.Errorf("invalid %s: %q", name, ctx.Param(name)))
	}

	return uint(id), nil
}

// parsePage reads ?page, defaulting to 1.
func parsePage(ctx *gin.Context) (int, *response.Err) {
	raw := ctx.DefaultQuery("page", "1")
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, response.ErrBadRequest(fmt.Errorf("invalid page: %q", raw))
	}

	return page, nil
}
