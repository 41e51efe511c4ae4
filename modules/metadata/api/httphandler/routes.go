package httphandler

import (
	"github.com/gofiber/fiber/v2"
)

func (h *HttpHandler) Mount(router fiber.Router) error {
	r := router.Group("/api")

	r.Get("/coin/:tokenId", h.GetCoin)
	r.Get("/coin/:tokenId/image.png", h.GetCoinImage)
	r.Get("/coins", h.GetCoins)
	r.Get("/factory/:tokenId", h.GetFactory)
	return nil
}
