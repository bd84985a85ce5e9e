package queries

import (
	"errors"
	"strings"

	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/core/domain/services"
	"lunchbox/internal/pkg/errs"
	"lunchbox/internal/pkg/guard"
)

var (
	ErrGetQuoteQueryIsNotConstructed = errors.New(
		"GetQuoteQuery must be created via NewGetQuoteQuery constructor",
	)
)

// GetQuoteQuery prices a prospective order without storing anything.
//
// Example:
//
//	query, err := NewGetQuoteQuery([]services.RequestedLine{{ItemID: riceID, Quantity: 1}}, "M", &date)
//	breakdown, err := handler.Handle(ctx, query)
type GetQuoteQuery struct {
	lines    []services.RequestedLine
	sizeName string
	date     *kernel.Date

	guard guard.ConstructorGuard
}

// NewGetQuoteQuery rejects malformed item ids and dates. Everything else,
// including an empty request, is reported by the handler.
func NewGetQuoteQuery(lines []services.RequestedLine, sizeName string, date *kernel.Date) (GetQuoteQuery, error) {
	var lineErrs []error
	for _, l := range lines {
		if err := l.ItemID.Validate(); err != nil {
			lineErrs = append(lineErrs, errs.NewValueIsInvalidErrorWithCause("item id", err))
		}
	}
	var dateErr error
	if date != nil {
		dateErr = date.Validate()
	}
	if err := errors.Join(append(lineErrs, dateErr)...); err != nil {
		return GetQuoteQuery{}, err
	}

	return GetQuoteQuery{
		lines:    append([]services.RequestedLine(nil), lines...),
		sizeName: strings.TrimSpace(sizeName),
		date:     date,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetQuoteQuery) Validate() error {
	return q.guard.Validate(ErrGetQuoteQueryIsNotConstructed)
}

func (q GetQuoteQuery) Request() services.OrderRequest {
	return services.OrderRequest{
		Lines:    append([]services.RequestedLine(nil), q.lines...),
		SizeName: q.sizeName,
		Date:     q.date,
	}
}
