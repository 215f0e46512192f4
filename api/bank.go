package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/kod2ulz/fintava-go/client"
)

var (
	bankList = client.Endpoint{Method: http.MethodGet, Uri: "banks"}
	bankGet  = client.Endpoint{Method: http.MethodGet, Uri: "banks/%s"}
)

type Bank struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Slug     string `json:"slug,omitempty"`
	Country  string `json:"country"`
	Currency string `json:"currency"`
	Type     string `json:"type,omitempty"`
}

type BankService struct {
	client *client.Fintava
}

func (s *BankService) List(ctx context.Context, country string) (client.ApiResponse[[]Bank], error) {
	q := url.Values{"country": {countryOrDefault(country)}}
	return client.Request[client.ApiResponse[[]Bank]](s.client, ctx, bankList, nil, q)
}

func (s *BankService) GetByCode(ctx context.Context, bankCode string) (client.ApiResponse[Bank], error) {
	return client.Request[client.ApiResponse[Bank]](s.client, ctx, bankGet.Format(bankCode), nil, nil)
}
