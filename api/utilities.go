package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/kod2ulz/fintava-go/client"
)

var (
	utilityCategories     = client.Endpoint{Method: http.MethodGet, Uri: "utilities/categories"}
	utilityProviders      = client.Endpoint{Method: http.MethodGet, Uri: "utilities/providers"}
	utilityProvider       = client.Endpoint{Method: http.MethodGet, Uri: "utilities/providers/%s"}
	utilityValidate       = client.Endpoint{Method: http.MethodPost, Uri: "utilities/validate-customer"}
	utilityPayBill        = client.Endpoint{Method: http.MethodPost, Uri: "utilities/pay-bill"}
	utilityPayment        = client.Endpoint{Method: http.MethodGet, Uri: "utilities/payments/%s"}
	utilityPaymentByRef   = client.Endpoint{Method: http.MethodGet, Uri: "utilities/payments/reference/%s"}
	utilityPayments       = client.Endpoint{Method: http.MethodGet, Uri: "utilities/payments"}
	airtimeProviders      = client.Endpoint{Method: http.MethodGet, Uri: "utilities/airtime/providers"}
	airtimePurchase       = client.Endpoint{Method: http.MethodPost, Uri: "utilities/airtime/purchase"}
	dataProviders         = client.Endpoint{Method: http.MethodGet, Uri: "utilities/data/providers"}
	dataPlans             = client.Endpoint{Method: http.MethodGet, Uri: "utilities/data/providers/%s/plans"}
	dataPurchase          = client.Endpoint{Method: http.MethodPost, Uri: "utilities/data/purchase"}
	electricityProviders  = client.Endpoint{Method: http.MethodGet, Uri: "utilities/electricity/providers"}
	electricityMeterCheck = client.Endpoint{Method: http.MethodPost, Uri: "utilities/electricity/validate-meter"}
	electricityPurchase   = client.Endpoint{Method: http.MethodPost, Uri: "utilities/electricity/purchase"}
	cableProviders        = client.Endpoint{Method: http.MethodGet, Uri: "utilities/cable/providers"}
	cablePlans            = client.Endpoint{Method: http.MethodGet, Uri: "utilities/cable/providers/%s/plans"}
	cableSmartCardCheck   = client.Endpoint{Method: http.MethodPost, Uri: "utilities/cable/validate-smartcard"}
	cableSubscribe        = client.Endpoint{Method: http.MethodPost, Uri: "utilities/cable/subscribe"}
	internetProviders     = client.Endpoint{Method: http.MethodGet, Uri: "utilities/internet/providers"}
	internetPlans         = client.Endpoint{Method: http.MethodGet, Uri: "utilities/internet/providers/%s/plans"}
	internetSubscribe     = client.Endpoint{Method: http.MethodPost, Uri: "utilities/internet/subscribe"}
)

type BillPayment struct {
	ID                 string   `json:"id"`
	Reference          string   `json:"reference"`
	Amount             int64    `json:"amount"`
	Fee                int64    `json:"fee"`
	Status             string   `json:"status"`
	Provider           string   `json:"provider"`
	Category           string   `json:"category"`
	CustomerIdentifier string   `json:"customerIdentifier"`
	Token              string   `json:"token,omitempty"`
	Units              float64  `json:"units,omitempty"`
	Metadata           Metadata `json:"metadata,omitempty"`
	CreatedAt          string   `json:"createdAt"`
	UpdatedAt          string   `json:"updatedAt"`
}

type BillProvider struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	Code          string `json:"code"`
	IsActive      bool   `json:"isActive"`
	Fee           int64  `json:"fee"`
	MinimumAmount int64  `json:"minimumAmount,omitempty"`
	MaximumAmount int64  `json:"maximumAmount,omitempty"`
}

type BillCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}

type BillPlan struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	Amount   int64  `json:"amount"`
	Validity string `json:"validity,omitempty"`
	Provider string `json:"provider"`
}

type CustomerValidation struct {
	IsValid            bool     `json:"isValid"`
	CustomerName       string   `json:"customerName,omitempty"`
	CustomerAddress    string   `json:"customerAddress,omitempty"`
	OutstandingBalance int64    `json:"outstandingBalance,omitempty"`
	AdditionalInfo     Metadata `json:"additionalInfo,omitempty"`
}

type ValidateCustomerParams struct {
	ProviderID         string `json:"provider_id" validate:"required"`
	CustomerIdentifier string `json:"customer_identifier" validate:"required"`
}

type validateCustomerWire struct {
	ProviderID         string `json:"providerId"`
	CustomerIdentifier string `json:"customerIdentifier"`
}

type PayBillParams struct {
	WalletID           string   `json:"wallet_id" validate:"required"`
	ProviderID         string   `json:"provider_id" validate:"required"`
	CustomerIdentifier string   `json:"customer_identifier" validate:"required"`
	Amount             int64    `json:"amount" validate:"required,gt=0"`
	Reference          string   `json:"reference,omitempty"`
	Metadata           Metadata `json:"metadata,omitempty"`
}

type payBillWire struct {
	WalletID           string   `json:"walletId"`
	ProviderID         string   `json:"providerId"`
	CustomerIdentifier string   `json:"customerIdentifier"`
	Amount             int64    `json:"amount"`
	Reference          string   `json:"reference"`
	Metadata           Metadata `json:"metadata,omitempty"`
}

type BillPaymentListOptions struct {
	ListOptions
	DateRange
	WalletID   string `json:"walletId,omitempty"`
	CustomerID string `json:"customerId,omitempty"`
	Category   string `json:"category,omitempty"`
	ProviderID string `json:"providerId,omitempty"`
	Status     string `json:"status,omitempty" validate:"omitempty,oneof=pending successful failed"`
}

func (o BillPaymentListOptions) query() url.Values {
	q := o.ListOptions.query(defaultLimit)
	o.DateRange.apply(q)
	setIf(q, "walletId", o.WalletID)
	setIf(q, "customerId", o.CustomerID)
	setIf(q, "category", o.Category)
	setIf(q, "providerId", o.ProviderID)
	setIf(q, "status", o.Status)
	return q
}

// UtilityService covers bill payments, with one sub-service per vertical.
type UtilityService struct {
	client *client.Fintava

	Airtime     *AirtimeService
	Data        *DataService
	Electricity *ElectricityService
	Cable       *CableService
	Internet    *InternetService
}

func newUtilityService(cl *client.Fintava) *UtilityService {
	return &UtilityService{
		client:      cl,
		Airtime:     &AirtimeService{client: cl},
		Data:        &DataService{client: cl},
		Electricity: &ElectricityService{client: cl},
		Cable:       &CableService{client: cl},
		Internet:    &InternetService{client: cl},
	}
}

func (s *UtilityService) GetCategories(ctx context.Context) (client.ApiResponse[[]BillCategory], error) {
	return client.Request[client.ApiResponse[[]BillCategory]](s.client, ctx, utilityCategories, nil, nil)
}

func (s *UtilityService) GetProviders(ctx context.Context, category, country string) (client.ApiResponse[[]BillProvider], error) {
	q := url.Values{"category": {category}}
	q.Set("country", countryOrDefault(country))
	return client.Request[client.ApiResponse[[]BillProvider]](s.client, ctx, utilityProviders, nil, q)
}

func (s *UtilityService) GetProvider(ctx context.Context, providerId string) (client.ApiResponse[BillProvider], error) {
	return client.Request[client.ApiResponse[BillProvider]](s.client, ctx, utilityProvider.Format(providerId), nil, nil)
}

func (s *UtilityService) ValidateCustomer(ctx context.Context, params ValidateCustomerParams) (out client.ApiResponse[CustomerValidation], err error) {
	if err = check(params); err != nil {
		return
	}
	body := validateCustomerWire{ProviderID: params.ProviderID, CustomerIdentifier: params.CustomerIdentifier}
	return client.Request[client.ApiResponse[CustomerValidation]](s.client, ctx, utilityValidate, body, nil)
}

func (s *UtilityService) PayBill(ctx context.Context, params PayBillParams) (out client.ApiResponse[BillPayment], err error) {
	if err = check(params); err != nil {
		return
	}
	if params.Reference == "" {
		params.Reference = uuid.New().String()
	}
	body := payBillWire{
		WalletID:           params.WalletID,
		ProviderID:         params.ProviderID,
		CustomerIdentifier: params.CustomerIdentifier,
		Amount:             params.Amount,
		Reference:          params.Reference,
		Metadata:           params.Metadata,
	}
	return client.Request[client.ApiResponse[BillPayment]](s.client, ctx, utilityPayBill, body, nil)
}

func (s *UtilityService) GetPayment(ctx context.Context, paymentId string) (client.ApiResponse[BillPayment], error) {
	return client.Request[client.ApiResponse[BillPayment]](s.client, ctx, utilityPayment.Format(paymentId), nil, nil)
}

func (s *UtilityService) GetPaymentByReference(ctx context.Context, reference string) (client.ApiResponse[BillPayment], error) {
	return client.Request[client.ApiResponse[BillPayment]](s.client, ctx, utilityPaymentByRef.Format(reference), nil, nil)
}

func (s *UtilityService) ListPayments(ctx context.Context, options BillPaymentListOptions) (out client.PaginatedResponse[BillPayment], err error) {
	if err = check(options); err != nil {
		return
	}
	return client.Request[client.PaginatedResponse[BillPayment]](s.client, ctx, utilityPayments, nil, options.query())
}

func countryOrDefault(country string) string {
	if country == "" {
		return "NG"
	}
	return country
}

func countryQuery(country string) url.Values {
	return url.Values{"country": {countryOrDefault(country)}}
}

type AirtimeService struct {
	client *client.Fintava
}

type AirtimePurchaseParams struct {
	WalletID    string `json:"wallet_id" validate:"required"`
	ProviderID  string `json:"provider_id" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	Amount      int64  `json:"amount" validate:"required,gt=0"`
	Reference   string `json:"reference,omitempty"`
}

type airtimePurchaseWire struct {
	WalletID    string `json:"walletId"`
	ProviderID  string `json:"providerId"`
	PhoneNumber string `json:"phoneNumber"`
	Amount      int64  `json:"amount"`
	Reference   string `json:"reference"`
}

func (s *AirtimeService) GetProviders(ctx context.Context, country string) (client.ApiResponse[[]BillProvider], error) {
	return client.Request[client.ApiResponse[[]BillProvider]](s.client, ctx, airtimeProviders, nil, countryQuery(country))
}

func (s *AirtimeService) Purchase(ctx context.Context, params AirtimePurchaseParams) (out client.ApiResponse[BillPayment], err error) {
	if err = check(params); err != nil {
		return
	}
	if params.Reference == "" {
		params.Reference = uuid.New().String()
	}
	body := airtimePurchaseWire{
		WalletID:    params.WalletID,
		ProviderID:  params.ProviderID,
		PhoneNumber: params.PhoneNumber,
		Amount:      params.Amount,
		Reference:   params.Reference,
	}
	return client.Request[client.ApiResponse[BillPayment]](s.client, ctx, airtimePurchase, body, nil)
}

type DataService struct {
	client *client.Fintava
}

type DataPurchaseParams struct {
	WalletID    string `json:"wallet_id" validate:"required"`
	ProviderID  string `json:"provider_id" validate:"required"`
	PlanID      string `json:"plan_id" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	Reference   string `json:"reference,omitempty"`
}

type dataPurchaseWire struct {
	WalletID    string `json:"walletId"`
	ProviderID  string `json:"providerId"`
	PlanID      string `json:"planId"`
	PhoneNumber string `json:"phoneNumber"`
	Reference   string `json:"reference"`
}

func (s *DataService) GetProviders(ctx context.Context, country string) (client.ApiResponse[[]BillProvider], error) {
	return client.Request[client.ApiResponse[[]BillProvider]](s.client, ctx, dataProviders, nil, countryQuery(country))
}

func (s *DataService) GetPlans(ctx context.Context, providerId string) (client.ApiResponse[[]BillPlan], error) {
	return client.Request[client.ApiResponse[[]BillPlan]](s.client, ctx, dataPlans.Format(providerId), nil, nil)
}

func (s *DataService) Purchase(ctx context.Context, params DataPurchaseParams) (out client.ApiResponse[BillPayment], err error) {
	if err = check(params); err != nil {
		return
	}
	if params.Reference == "" {
		params.Reference = uuid.New().String()
	}
	body := dataPurchaseWire{
		WalletID:    params.WalletID,
		ProviderID:  params.ProviderID,
		PlanID:      params.PlanID,
		PhoneNumber: params.PhoneNumber,
		Reference:   params.Reference,
	}
	return client.Request[client.ApiResponse[BillPayment]](s.client, ctx, dataPurchase, body, nil)
}

type ElectricityService struct {
	client *client.Fintava
}

type MeterValidation struct {
	IsValid            bool   `json:"isValid"`
	CustomerName       string `json:"customerName,omitempty"`
	CustomerAddress    string `json:"customerAddress,omitempty"`
	OutstandingBalance int64  `json:"outstandingBalance,omitempty"`
}

type ValidateMeterParams struct {
	ProviderID  string `json:"provider_id" validate:"required"`
	MeterNumber string `json:"meter_number" validate:"required"`
	MeterType   string `json:"meter_type" validate:"required,oneof=prepaid postpaid"`
}

type validateMeterWire struct {
	ProviderID  string `json:"providerId"`
	MeterNumber string `json:"meterNumber"`
	MeterType   string `json:"meterType"`
}

type ElectricityPurchaseParams struct {
	WalletID    string `json:"wallet_id" validate:"required"`
	ProviderID  string `json:"provider_id" validate:"required"`
	MeterNumber string `json:"meter_number" validate:"required"`
	MeterType   string `json:"meter_type" validate:"required,oneof=prepaid postpaid"`
	Amount      int64  `json:"amount" validate:"required,gt=0"`
	Reference   string `json:"reference,omitempty"`
}

type electricityPurchaseWire struct {
	WalletID    string `json:"walletId"`
	ProviderID  string `json:"providerId"`
	MeterNumber string `json:"meterNumber"`
	MeterType   string `json:"meterType"`
	Amount      int64  `json:"amount"`
	Reference   string `json:"reference"`
}

func (s *ElectricityService) GetProviders(ctx context.Context, country string) (client.ApiResponse[[]BillProvider], error) {
	return client.Request[client.ApiResponse[[]BillProvider]](s.client, ctx, electricityProviders, nil, countryQuery(country))
}

func (s *ElectricityService) ValidateMeter(ctx context.Context, params ValidateMeterParams) (out client.ApiResponse[MeterValidation], err error) {
	if err = check(params); err != nil {
		return
	}
	body := validateMeterWire{ProviderID: params.ProviderID, MeterNumber: params.MeterNumber, MeterType: params.MeterType}
	return client.Request[client.ApiResponse[MeterValidation]](s.client, ctx, electricityMeterCheck, body, nil)
}

// Purchase buys electricity units; prepaid purchases return a token on the
// BillPayment record.
func (s *ElectricityService) Purchase(ctx context.Context, params ElectricityPurchaseParams) (out client.ApiResponse[BillPayment], err error) {
	if err = check(params); err != nil {
		return
	}
	if params.Reference == "" {
		params.Reference = uuid.New().String()
	}
	body := electricityPurchaseWire{
		WalletID:    params.WalletID,
		ProviderID:  params.ProviderID,
		MeterNumber: params.MeterNumber,
		MeterType:   params.MeterType,
		Amount:      params.Amount,
		Reference:   params.Reference,
	}
	return client.Request[client.ApiResponse[BillPayment]](s.client, ctx, electricityPurchase, body, nil)
}

type CableService struct {
	client *client.Fintava
}

type SmartCardValidation struct {
	IsValid      bool   `json:"isValid"`
	CustomerName string `json:"customerName,omitempty"`
	CurrentPlan  string `json:"currentPlan,omitempty"`
	ExpiryDate   string `json:"expiryDate,omitempty"`
}

type ValidateSmartCardParams struct {
	ProviderID      string `json:"provider_id" validate:"required"`
	SmartCardNumber string `json:"smart_card_number" validate:"required"`
}

type validateSmartCardWire struct {
	ProviderID      string `json:"providerId"`
	SmartCardNumber string `json:"smartCardNumber"`
}

type CableSubscribeParams struct {
	WalletID        string `json:"wallet_id" validate:"required"`
	ProviderID      string `json:"provider_id" validate:"required"`
	PlanID          string `json:"plan_id" validate:"required"`
	SmartCardNumber string `json:"smart_card_number" validate:"required"`
	Reference       string `json:"reference,omitempty"`
}

type cableSubscribeWire struct {
	WalletID        string `json:"walletId"`
	ProviderID      string `json:"providerId"`
	PlanID          string `json:"planId"`
	SmartCardNumber string `json:"smartCardNumber"`
	Reference       string `json:"reference"`
}

func (s *CableService) GetProviders(ctx context.Context, country string) (client.ApiResponse[[]BillProvider], error) {
	return client.Request[client.ApiResponse[[]BillProvider]](s.client, ctx, cableProviders, nil, countryQuery(country))
}

func (s *CableService) GetPlans(ctx context.Context, providerId string) (client.ApiResponse[[]BillPlan], error) {
	return client.Request[client.ApiResponse[[]BillPlan]](s.client, ctx, cablePlans.Format(providerId), nil, nil)
}

func (s *CableService) ValidateSmartCard(ctx context.Context, params ValidateSmartCardParams) (out client.ApiResponse[SmartCardValidation], err error) {
	if err = check(params); err != nil {
		return
	}
	body := validateSmartCardWire{ProviderID: params.ProviderID, SmartCardNumber: params.SmartCardNumber}
	return client.Request[client.ApiResponse[SmartCardValidation]](s.client, ctx, cableSmartCardCheck, body, nil)
}

func (s *CableService) Subscribe(ctx context.Context, params CableSubscribeParams) (out client.ApiResponse[BillPayment], err error) {
	if err = check(params); err != nil {
		return
	}
	if params.Reference == "" {
		params.Reference = uuid.New().String()
	}
	body := cableSubscribeWire{
		WalletID:        params.WalletID,
		ProviderID:      params.ProviderID,
		PlanID:          params.PlanID,
		SmartCardNumber: params.SmartCardNumber,
		Reference:       params.Reference,
	}
	return client.Request[client.ApiResponse[BillPayment]](s.client, ctx, cableSubscribe, body, nil)
}

type InternetService struct {
	client *client.Fintava
}

type InternetSubscribeParams struct {
	WalletID           string `json:"wallet_id" validate:"required"`
	ProviderID         string `json:"provider_id" validate:"required"`
	PlanID             string `json:"plan_id" validate:"required"`
	CustomerIdentifier string `json:"customer_identifier" validate:"required"`
	Reference          string `json:"reference,omitempty"`
}

type internetSubscribeWire struct {
	WalletID           string `json:"walletId"`
	ProviderID         string `json:"providerId"`
	PlanID             string `json:"planId"`
	CustomerIdentifier string `json:"customerIdentifier"`
	Reference          string `json:"reference"`
}

func (s *InternetService) GetProviders(ctx context.Context, country string) (client.ApiResponse[[]BillProvider], error) {
	return client.Request[client.ApiResponse[[]BillProvider]](s.client, ctx, internetProviders, nil, countryQuery(country))
}

func (s *InternetService) GetPlans(ctx context.Context, providerId string) (client.ApiResponse[[]BillPlan], error) {
	return client.Request[client.ApiResponse[[]BillPlan]](s.client, ctx, internetPlans.Format(providerId), nil, nil)
}

func (s *InternetService) Subscribe(ctx context.Context, params InternetSubscribeParams) (out client.ApiResponse[BillPayment], err error) {
	if err = check(params); err != nil {
		return
	}
	if params.Reference == "" {
		params.Reference = uuid.New().String()
	}
	body := internetSubscribeWire{
		WalletID:           params.WalletID,
		ProviderID:         params.ProviderID,
		PlanID:             params.PlanID,
		CustomerIdentifier: params.CustomerIdentifier,
		Reference:          params.Reference,
	}
	return client.Request[client.ApiResponse[BillPayment]](s.client, ctx, internetSubscribe, body, nil)
}
