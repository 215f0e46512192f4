package api

import (
	"context"
	"net/http"

	"github.com/kod2ulz/fintava-go/client"
)

var (
	transactionByID        = client.Endpoint{Method: http.MethodGet, Uri: "transaction/id/%s"}
	transactionByReference = client.Endpoint{Method: http.MethodGet, Uri: "transaction/reference/%s"}
	transactionCardHistory = client.Endpoint{Method: http.MethodGet, Uri: "transaction/card"}
)

type TransactionService struct {
	client *client.Fintava
}

func (s *TransactionService) GetByID(ctx context.Context, transactionId string) (client.ApiResponse[Transaction], error) {
	return client.Request[client.ApiResponse[Transaction]](s.client, ctx, transactionByID.Format(transactionId), nil, nil)
}

func (s *TransactionService) GetByReference(ctx context.Context, reference string) (client.ApiResponse[Transaction], error) {
	return client.Request[client.ApiResponse[Transaction]](s.client, ctx, transactionByReference.Format(reference), nil, nil)
}

func (s *TransactionService) VirtualCardTransactions(ctx context.Context, customerId string, options TransactionQuery) (out client.PaginatedResponse[Transaction], err error) {
	if err = check(options); err != nil {
		return
	}
	q := options.query()
	q.Set("customerId", customerId)
	return client.Request[client.PaginatedResponse[Transaction]](s.client, ctx, transactionCardHistory, nil, q)
}
