package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandleCapstoneIndex godoc
// @Summary      Capstone greeting
// @Tags         capstone
// @Produce      plain
// @Success      200      {string}   string
// @Router       /capstone/ [get]
func HandleCapstoneIndex(ctx *gin.Context) {
	ctx.String(http.StatusOK, "Hello")
}

// HandleCapstoneHi godoc
// @Summary      Capstone hi
// @Tags         capstone
// @Produce      plain
// @Success      200      {string}   string
// @Router       /capstone/hi [get]
func HandleCapstoneHi(ctx *gin.Context) {
	ctx.String(http.StatusOK, "hi")
}
