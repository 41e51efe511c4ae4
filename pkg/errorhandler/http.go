package errorhandler

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/rainbow-minter/common"
	"github.com/gaze-network/rainbow-minter/common/errs"
	"github.com/gaze-network/rainbow-minter/pkg/logger"
	"github.com/gaze-network/rainbow-minter/pkg/logger/slogx"
	"github.com/gofiber/fiber/v2"
)

type errorResponse = common.HttpResponse[struct{}]

// NewHTTPErrorHandler maps public errors to 400 (404 for errs.NotFound), fiber errors to their own status
// and everything else to 500.
func NewHTTPErrorHandler() func(ctx *fiber.Ctx, err error) error {
	return func(ctx *fiber.Ctx, err error) error {
		if e := new(errs.PublicError); errors.As(err, &e) {
			status := http.StatusBadRequest
			if errors.Is(err, errs.NotFound) {
				status = http.StatusNotFound
			}
			return respond(ctx, status, e.Message(), e.Code())
		}
		if e := new(fiber.Error); errors.As(err, &e) {
			return respond(ctx, e.Code, e.Message, "")
		}

		logger.ErrorContext(ctx.UserContext(), "Something went wrong, unhandled api error", err,
			slogx.String("event", "api_unhandled_error"),
			slogx.String("path", ctx.Path()),
		)
		return respond(ctx, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

func respond(ctx *fiber.Ctx, status int, message string, code string) error {
	resp := errorResponse{Error: &message}
	if code != "" {
		resp.Code = &code
	}
	return errors.WithStack(ctx.Status(status).JSON(resp))
}
