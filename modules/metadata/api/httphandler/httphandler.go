package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/rainbow-minter/common/errs"
	"github.com/gaze-network/rainbow-minter/modules/metadata/usecase"
	"github.com/gaze-network/rainbow-minter/modules/minter"
)

// Machine readable codes of validation errors.
const (
	codeInvalidTokenID = "invalid_token_id"
	codeInvalidIDs     = "invalid_ids"
)

type HttpHandler struct {
	usecase *usecase.Usecase
}

func New(usecase *usecase.Usecase) *HttpHandler {
	return &HttpHandler{
		usecase: usecase,
	}
}

func parseTokenID(raw string) (minter.TokenID, error) {
	id, err := minter.ParseTokenID(raw)
	if err != nil {
		return 0, errs.WithPublicMessageCode(errors.WithStack(err), "validation error", codeInvalidTokenID)
	}
	return id, nil
}
