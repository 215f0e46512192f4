package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/kod2ulz/fintava-go/client"
)

var (
	cardCreate          = client.Endpoint{Method: http.MethodPost, Uri: "cards"}
	cardGet             = client.Endpoint{Method: http.MethodGet, Uri: "cards/%s"}
	cardsByCustomer     = client.Endpoint{Method: http.MethodGet, Uri: "customers/%s/cards"}
	cardsByWallet       = client.Endpoint{Method: http.MethodGet, Uri: "wallets/%s/cards"}
	cardList            = client.Endpoint{Method: http.MethodGet, Uri: "cards"}
	cardDetails         = client.Endpoint{Method: http.MethodGet, Uri: "cards/%s/details"}
	cardActivate        = client.Endpoint{Method: http.MethodPost, Uri: "cards/%s/activate"}
	cardDeactivate      = client.Endpoint{Method: http.MethodPost, Uri: "cards/%s/deactivate"}
	cardBlock           = client.Endpoint{Method: http.MethodPost, Uri: "cards/%s/block"}
	cardUnblock         = client.Endpoint{Method: http.MethodPost, Uri: "cards/%s/unblock"}
	cardSpendingLimit   = client.Endpoint{Method: http.MethodPut, Uri: "cards/%s/spending-limit"}
	cardChangePin       = client.Endpoint{Method: http.MethodPost, Uri: "cards/%s/change-pin"}
	cardResetPin        = client.Endpoint{Method: http.MethodPost, Uri: "cards/%s/reset-pin"}
	cardTransactions    = client.Endpoint{Method: http.MethodGet, Uri: "cards/%s/transactions"}
	cardControls        = client.Endpoint{Method: http.MethodPut, Uri: "cards/%s/controls"}
	cardControlsGet     = client.Endpoint{Method: http.MethodGet, Uri: "cards/%s/controls"}
	cardRequestDelivery = client.Endpoint{Method: http.MethodPost, Uri: "cards/%s/request-delivery"}
	cardTrackDelivery   = client.Endpoint{Method: http.MethodGet, Uri: "cards/delivery/%s/track"}
)

type Card struct {
	ID               string `json:"id"`
	CustomerID       string `json:"customerId"`
	WalletID         string `json:"walletId"`
	MaskedCardNumber string `json:"maskedCardNumber"`
	ExpiryMonth      string `json:"expiryMonth"`
	ExpiryYear       string `json:"expiryYear"`
	CardType         string `json:"cardType"`
	Brand            string `json:"brand"`
	Status           string `json:"status"`
	SpendingLimit    int64  `json:"spendingLimit"`
	Currency         string `json:"currency"`
	CreatedAt        string `json:"createdAt"`
	UpdatedAt        string `json:"updatedAt"`
}

// CardDetails carries the sensitive PAN data and is only returned by the
// dedicated details endpoint.
type CardDetails struct {
	CardNumber  string `json:"cardNumber"`
	ExpiryMonth string `json:"expiryMonth"`
	ExpiryYear  string `json:"expiryYear"`
	Cvv         string `json:"cvv"`
}

type CreateCardParams struct {
	CustomerID    string `json:"customer_id" validate:"required"`
	WalletID      string `json:"wallet_id" validate:"required"`
	CardType      string `json:"card_type" validate:"required,oneof=virtual physical"`
	SpendingLimit int64  `json:"spending_limit,omitempty" validate:"omitempty,gt=0"`
	Currency      string `json:"currency,omitempty"`
}

type createCardWire struct {
	CustomerID    string `json:"customerId"`
	WalletID      string `json:"walletId"`
	CardType      string `json:"cardType"`
	SpendingLimit int64  `json:"spendingLimit,omitempty"`
	Currency      string `json:"currency,omitempty"`
}

type CardListOptions struct {
	ListOptions
	CustomerID string `json:"customerId,omitempty"`
	WalletID   string `json:"walletId,omitempty"`
	CardType   string `json:"cardType,omitempty" validate:"omitempty,oneof=virtual physical"`
	Status     string `json:"status,omitempty" validate:"omitempty,oneof=active inactive blocked expired"`
	Brand      string `json:"brand,omitempty" validate:"omitempty,oneof=visa mastercard"`
}

func (o CardListOptions) query() url.Values {
	q := o.ListOptions.query(defaultLimit)
	setIf(q, "customerId", o.CustomerID)
	setIf(q, "walletId", o.WalletID)
	setIf(q, "cardType", o.CardType)
	setIf(q, "status", o.Status)
	setIf(q, "brand", o.Brand)
	return q
}

type SpendingLimitParams struct {
	SpendingLimit int64  `json:"spending_limit" validate:"required,gt=0"`
	Period        string `json:"period,omitempty" validate:"omitempty,oneof=daily weekly monthly"`
}

type spendingLimitWire struct {
	SpendingLimit int64  `json:"spendingLimit"`
	Period        string `json:"period,omitempty"`
}

type ChangePinParams struct {
	CurrentPin string `json:"current_pin" validate:"required,len=4,number"`
	NewPin     string `json:"new_pin" validate:"required,len=4,number"`
}

type changePinWire struct {
	CurrentPin string `json:"currentPin"`
	NewPin     string `json:"newPin"`
}

// CardControls restricts where and how a card can transact. Boolean knobs
// are pointers so an unset value is omitted rather than sent as false.
type CardControls struct {
	AllowedMerchantCategories []string `json:"allowedMerchantCategories,omitempty"`
	BlockedMerchantCategories []string `json:"blockedMerchantCategories,omitempty"`
	AllowedCountries          []string `json:"allowedCountries,omitempty"`
	BlockedCountries          []string `json:"blockedCountries,omitempty"`
	AllowOnlineTransactions   *bool    `json:"allowOnlineTransactions,omitempty"`
	AllowAtmWithdrawals       *bool    `json:"allowAtmWithdrawals,omitempty"`
	AllowContactlessPayments  *bool    `json:"allowContactlessPayments,omitempty"`
}

type DeliveryAddress struct {
	Street         string `json:"street" validate:"required"`
	City           string `json:"city" validate:"required"`
	State          string `json:"state" validate:"required"`
	Country        string `json:"country" validate:"required"`
	PostalCode     string `json:"postalCode" validate:"required"`
	RecipientName  string `json:"recipientName" validate:"required"`
	RecipientPhone string `json:"recipientPhone" validate:"required"`
}

type deliveryRequestWire struct {
	DeliveryAddress DeliveryAddress `json:"deliveryAddress"`
}

type CardDelivery struct {
	DeliveryID            string `json:"deliveryId"`
	EstimatedDeliveryDate string `json:"estimatedDeliveryDate"`
	TrackingNumber        string `json:"trackingNumber,omitempty"`
}

type DeliveryUpdate struct {
	Status      string `json:"status"`
	Location    string `json:"location"`
	Timestamp   string `json:"timestamp"`
	Description string `json:"description"`
}

type DeliveryTracking struct {
	Status                string           `json:"status"`
	TrackingNumber        string           `json:"trackingNumber"`
	EstimatedDeliveryDate string           `json:"estimatedDeliveryDate"`
	DeliveryUpdates       []DeliveryUpdate `json:"deliveryUpdates"`
}

type PinReset struct {
	NewPin string `json:"newPin"`
}

type CardService struct {
	client *client.Fintava
}

func (s *CardService) Create(ctx context.Context, params CreateCardParams) (out client.ApiResponse[Card], err error) {
	if err = check(params); err != nil {
		return
	}
	body := createCardWire{
		CustomerID:    params.CustomerID,
		WalletID:      params.WalletID,
		CardType:      params.CardType,
		SpendingLimit: params.SpendingLimit,
		Currency:      params.Currency,
	}
	return client.Request[client.ApiResponse[Card]](s.client, ctx, cardCreate, body, nil)
}

func (s *CardService) GetByID(ctx context.Context, cardId string) (client.ApiResponse[Card], error) {
	return client.Request[client.ApiResponse[Card]](s.client, ctx, cardGet.Format(cardId), nil, nil)
}

func (s *CardService) GetByCustomerID(ctx context.Context, customerId string) (client.ApiResponse[[]Card], error) {
	return client.Request[client.ApiResponse[[]Card]](s.client, ctx, cardsByCustomer.Format(customerId), nil, nil)
}

func (s *CardService) GetByWalletID(ctx context.Context, walletId string) (client.ApiResponse[[]Card], error) {
	return client.Request[client.ApiResponse[[]Card]](s.client, ctx, cardsByWallet.Format(walletId), nil, nil)
}

func (s *CardService) List(ctx context.Context, options CardListOptions) (out client.PaginatedResponse[Card], err error) {
	if err = check(options); err != nil {
		return
	}
	return client.Request[client.PaginatedResponse[Card]](s.client, ctx, cardList, nil, options.query())
}

func (s *CardService) GetCardDetails(ctx context.Context, cardId string) (client.ApiResponse[CardDetails], error) {
	return client.Request[client.ApiResponse[CardDetails]](s.client, ctx, cardDetails.Format(cardId), nil, nil)
}

// Activate turns on a newly issued card; a PIN is only needed for physical cards.
func (s *CardService) Activate(ctx context.Context, cardId, pin string) (out client.ApiResponse[Card], err error) {
	var body any
	if pin != "" {
		if err = check(pinBody{Pin: pin}); err != nil {
			return
		}
		body = pinBody{Pin: pin}
	}
	return client.Request[client.ApiResponse[Card]](s.client, ctx, cardActivate.Format(cardId), body, nil)
}

type pinBody struct {
	Pin string `json:"pin" validate:"required,len=4,number"`
}

func (s *CardService) Deactivate(ctx context.Context, cardId, reason string) (client.ApiResponse[Card], error) {
	return client.Request[client.ApiResponse[Card]](s.client, ctx, cardDeactivate.Format(cardId), reasonBody(reason), nil)
}

func (s *CardService) Block(ctx context.Context, cardId, reason string) (client.ApiResponse[Card], error) {
	return client.Request[client.ApiResponse[Card]](s.client, ctx, cardBlock.Format(cardId), reasonBody(reason), nil)
}

func (s *CardService) Unblock(ctx context.Context, cardId string) (client.ApiResponse[Card], error) {
	return client.Request[client.ApiResponse[Card]](s.client, ctx, cardUnblock.Format(cardId), nil, nil)
}

func (s *CardService) UpdateSpendingLimit(ctx context.Context, cardId string, params SpendingLimitParams) (out client.ApiResponse[Card], err error) {
	if err = check(params); err != nil {
		return
	}
	body := spendingLimitWire{SpendingLimit: params.SpendingLimit, Period: params.Period}
	return client.Request[client.ApiResponse[Card]](s.client, ctx, cardSpendingLimit.Format(cardId), body, nil)
}

func (s *CardService) ChangePin(ctx context.Context, cardId string, params ChangePinParams) (out client.ApiResponse[struct{}], err error) {
	if err = check(params); err != nil {
		return
	}
	body := changePinWire{CurrentPin: params.CurrentPin, NewPin: params.NewPin}
	return client.Request[client.ApiResponse[struct{}]](s.client, ctx, cardChangePin.Format(cardId), body, nil)
}

func (s *CardService) ResetPin(ctx context.Context, cardId string) (client.ApiResponse[PinReset], error) {
	return client.Request[client.ApiResponse[PinReset]](s.client, ctx, cardResetPin.Format(cardId), nil, nil)
}

func (s *CardService) GetTransactions(ctx context.Context, cardId string, filters TransactionFilters) (out client.PaginatedResponse[Transaction], err error) {
	if err = check(filters); err != nil {
		return
	}
	return client.Request[client.PaginatedResponse[Transaction]](s.client, ctx, cardTransactions.Format(cardId), nil, filters.query())
}

func (s *CardService) SetControls(ctx context.Context, cardId string, controls CardControls) (client.ApiResponse[Card], error) {
	return client.Request[client.ApiResponse[Card]](s.client, ctx, cardControls.Format(cardId), controls, nil)
}

func (s *CardService) GetControls(ctx context.Context, cardId string) (client.ApiResponse[CardControls], error) {
	return client.Request[client.ApiResponse[CardControls]](s.client, ctx, cardControlsGet.Format(cardId), nil, nil)
}

func (s *CardService) RequestPhysicalDelivery(ctx context.Context, cardId string, address DeliveryAddress) (out client.ApiResponse[CardDelivery], err error) {
	if err = check(address); err != nil {
		return
	}
	return client.Request[client.ApiResponse[CardDelivery]](s.client, ctx, cardRequestDelivery.Format(cardId), deliveryRequestWire{DeliveryAddress: address}, nil)
}

func (s *CardService) TrackDelivery(ctx context.Context, deliveryId string) (client.ApiResponse[DeliveryTracking], error) {
	return client.Request[client.ApiResponse[DeliveryTracking]](s.client, ctx, cardTrackDelivery.Format(deliveryId), nil, nil)
}
