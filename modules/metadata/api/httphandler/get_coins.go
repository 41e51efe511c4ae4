package httphandler

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/rainbow-minter/common"
	"github.com/gaze-network/rainbow-minter/common/errs"
	"github.com/gaze-network/rainbow-minter/modules/metadata"
	"github.com/gaze-network/rainbow-minter/modules/minter"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type getCoinsRequest struct {
	Ids string `query:"ids"`
}

const getCoinsMaxQueries = 100

// Validate parses the comma separated ids.
func (r *getCoinsRequest) Validate() ([]minter.TokenID, error) {
	var errList []error
	var tokenIDs []minter.TokenID

	rawIDs := lo.Filter(strings.Split(r.Ids, ","), func(s string, _ int) bool {
		return strings.TrimSpace(s) != ""
	})
	if len(rawIDs) == 0 {
		errList = append(errList, errors.New("ids cannot be empty"))
	}
	if len(rawIDs) > getCoinsMaxQueries {
		errList = append(errList, errors.Errorf("cannot query more than %d ids", getCoinsMaxQueries))
	}
	for i, raw := range rawIDs {
		id, err := minter.ParseTokenID(raw)
		if err != nil {
			errList = append(errList, errors.Wrapf(err, "ids[%d]", i))
			continue
		}
		tokenIDs = append(tokenIDs, id)
	}
	return tokenIDs, errs.WithPublicMessageCode(errors.Join(errList...), "validation error", codeInvalidIDs)
}

type getCoinsResponse = common.HttpResponse[[]*metadata.Coin]

func (h *HttpHandler) GetCoins(ctx *fiber.Ctx) (err error) {
	var req getCoinsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return errors.WithStack(err)
	}
	tokenIDs, err := req.Validate()
	if err != nil {
		return errors.WithStack(err)
	}

	coins, err := h.usecase.GetCoins(ctx.UserContext(), tokenIDs)
	if err != nil {
		return errors.Wrap(err, "error during GetCoins")
	}
	return errors.WithStack(ctx.JSON(getCoinsResponse{
		Result: &coins,
	}))
}
