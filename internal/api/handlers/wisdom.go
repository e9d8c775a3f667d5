package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/denisAlshanov/rustyreel/internal/models"
	"github.com/denisAlshanov/rustyreel/internal/services/wisdom"
)

type WisdomHandler struct {
	dispenser *wisdom.Dispenser
}

func NewWisdomHandler(dispenser *wisdom.Dispenser) *WisdomHandler {
	return &WisdomHandler{dispenser: dispenser}
}

// GetWisdom godoc
// @Summary Dispense fox wisdom
// @Tags wisdom
// @Produce json
// @Success 200 {object} models.WisdomResponse
// @Router /api/v1/wisdom [get]
// @Security ApiKeyAuth
func (h *WisdomHandler) GetWisdom(c *gin.Context) {
	c.JSON(http.StatusOK, models.WisdomResponse{Wisdom: h.dispenser.Dispense()})
}
