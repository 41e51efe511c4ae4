package httphandler

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/rainbow-minter/common/errs"
	"github.com/gofiber/fiber/v2"
)

type getFactoryRequest struct {
	OptionID string `params:"tokenId"`
}

func (h *HttpHandler) GetFactory(ctx *fiber.Ctx) (err error) {
	var req getFactoryRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	optionID, err := strconv.ParseUint(req.OptionID, 10, 64)
	if err != nil {
		return errs.NewPublicError("invalid option id")
	}
	return errors.WithStack(ctx.JSON(h.usecase.GetFactory(optionID)))
}
