package queries

import (
	"context"
)

// CountOpenOrdersQueryHandler counts open orders with the repository's grouped
// count, so no order aggregate is loaded.
type CountOpenOrdersQueryHandler struct {
	readerFactory OrderReaderFactory
}

func NewCountOpenOrdersQueryHandler(readerFactory OrderReaderFactory) CountOpenOrdersQueryHandler {
	return CountOpenOrdersQueryHandler{readerFactory: readerFactory}
}

func (h CountOpenOrdersQueryHandler) Handle(
	ctx context.Context,
	query CountOpenOrdersQuery,
) (CountOpenOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CountOpenOrdersQueryResponse{}, err
	}

	counts, err := h.readerFactory.Create().OrderRepository().CountOpenOrdersBySymbol(ctx)
	if err != nil {
		return CountOpenOrdersQueryResponse{}, err
	}

	response := CountOpenOrdersQueryResponse{
		BySymbol: make(map[string]int, len(counts)),
	}
	for symbol, n := range counts {
		response.BySymbol[symbol] = n
		response.Total += n
	}

	return response, nil
}
