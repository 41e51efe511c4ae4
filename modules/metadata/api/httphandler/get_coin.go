package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
)

type getCoinRequest struct {
	TokenID string `params:"tokenId"`
}

// GetCoin serves the ERC-721 metadata document of a coin as a bare JSON object, as marketplaces expect.
func (h *HttpHandler) GetCoin(ctx *fiber.Ctx) (err error) {
	var req getCoinRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	id, err := parseTokenID(req.TokenID)
	if err != nil {
		return errors.WithStack(err)
	}

	coin, err := h.usecase.GetCoin(ctx.UserContext(), id)
	if err != nil {
		return errors.Wrap(err, "error during GetCoin")
	}
	return errors.WithStack(ctx.JSON(coin))
}
