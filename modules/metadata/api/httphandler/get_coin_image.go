package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
)

func (h *HttpHandler) GetCoinImage(ctx *fiber.Ctx) (err error) {
	var req getCoinRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	id, err := parseTokenID(req.TokenID)
	if err != nil {
		return errors.WithStack(err)
	}

	data, err := h.usecase.RenderCoinImage(id)
	if err != nil {
		return errors.Wrap(err, "error during RenderCoinImage")
	}
	ctx.Set(fiber.HeaderContentType, "image/png")
	ctx.Set(fiber.HeaderCacheControl, "public, max-age=86400")
	return errors.WithStack(ctx.Send(data))
}
