package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/kod2ulz/fintava-go/client"
)

var (
	virtualAccountCreate       = client.Endpoint{Method: http.MethodPost, Uri: "virtual-accounts"}
	virtualAccountGet          = client.Endpoint{Method: http.MethodGet, Uri: "virtual-accounts/%s"}
	virtualAccountsByCustomer  = client.Endpoint{Method: http.MethodGet, Uri: "customers/%s/virtual-accounts"}
	virtualAccountByNumber     = client.Endpoint{Method: http.MethodGet, Uri: "virtual-accounts/account/%s"}
	virtualAccountList         = client.Endpoint{Method: http.MethodGet, Uri: "virtual-accounts"}
	virtualAccountUpdate       = client.Endpoint{Method: http.MethodPut, Uri: "virtual-accounts/%s"}
	virtualAccountDeactivate   = client.Endpoint{Method: http.MethodPost, Uri: "virtual-accounts/%s/deactivate"}
	virtualAccountReactivate   = client.Endpoint{Method: http.MethodPost, Uri: "virtual-accounts/%s/reactivate"}
	virtualAccountTransactions = client.Endpoint{Method: http.MethodGet, Uri: "virtual-accounts/%s/transactions"}
	virtualAccountBalance      = client.Endpoint{Method: http.MethodGet, Uri: "virtual-accounts/%s/balance"}
	virtualAccountAutoSweep    = client.Endpoint{Method: http.MethodPost, Uri: "virtual-accounts/%s/auto-sweep"}
	virtualAccountAutoSweepGet = client.Endpoint{Method: http.MethodGet, Uri: "virtual-accounts/%s/auto-sweep"}
	virtualAccountAutoSweepDel = client.Endpoint{Method: http.MethodDelete, Uri: "virtual-accounts/%s/auto-sweep"}
	virtualAccountQRCode       = client.Endpoint{Method: http.MethodPost, Uri: "virtual-accounts/%s/qr-code"}
	virtualAccountStatement    = client.Endpoint{Method: http.MethodGet, Uri: "virtual-accounts/%s/statement"}
	virtualAccountWebhookSet   = client.Endpoint{Method: http.MethodPost, Uri: "virtual-accounts/%s/webhook"}
	virtualAccountWebhookDel   = client.Endpoint{Method: http.MethodDelete, Uri: "virtual-accounts/%s/webhook"}
)

// VirtualAccount is a dedicated NUBAN bound to one customer.
type VirtualAccount struct {
	ID            string `json:"id"`
	CustomerID    string `json:"customerId"`
	AccountNumber string `json:"accountNumber"`
	AccountName   string `json:"accountName"`
	BankName      string `json:"bankName"`
	BankCode      string `json:"bankCode"`
	Currency      string `json:"currency"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

type CreateVirtualAccountParams struct {
	CustomerID  string `json:"customer_id" validate:"required"`
	Currency    string `json:"currency,omitempty"`
	AccountName string `json:"account_name,omitempty"`
}

type createVirtualAccountWire struct {
	CustomerID  string `json:"customerId"`
	Currency    string `json:"currency,omitempty"`
	AccountName string `json:"accountName,omitempty"`
}

type VirtualAccountListOptions struct {
	ListOptions
	CustomerID string `json:"customerId,omitempty"`
	Status     string `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
	Currency   string `json:"currency,omitempty"`
	BankCode   string `json:"bankCode,omitempty"`
}

func (o VirtualAccountListOptions) query() url.Values {
	q := o.ListOptions.query(defaultLimit)
	setIf(q, "customerId", o.CustomerID)
	setIf(q, "status", o.Status)
	setIf(q, "currency", o.Currency)
	setIf(q, "bankCode", o.BankCode)
	return q
}

type UpdateVirtualAccountParams struct {
	AccountName string `json:"account_name,omitempty"`
	Status      string `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

type updateVirtualAccountWire struct {
	AccountName string `json:"accountName,omitempty"`
	Status      string `json:"status,omitempty"`
}

type VirtualAccountBalance struct {
	Balance          int64  `json:"balance"`
	Currency         string `json:"currency"`
	AvailableBalance int64  `json:"availableBalance"`
	PendingBalance   int64  `json:"pendingBalance"`
}

// AutoSweepParams forward incoming funds to a destination wallet once they
// clear the minimum. SweepPercentage of zero means sweep everything.
type AutoSweepParams struct {
	Enabled             bool   `json:"enabled"`
	DestinationWalletID string `json:"destination_wallet_id" validate:"required"`
	MinimumAmount       int64  `json:"minimum_amount,omitempty" validate:"omitempty,gt=0"`
	SweepPercentage     int    `json:"sweep_percentage,omitempty" validate:"omitempty,gt=0,lte=100"`
	SweepDelayMinutes   int    `json:"sweep_delay,omitempty" validate:"omitempty,gt=0"`
}

type autoSweepWire struct {
	Enabled             bool   `json:"enabled"`
	DestinationWalletID string `json:"destinationWalletId"`
	MinimumAmount       int64  `json:"minimumAmount,omitempty"`
	SweepPercentage     int    `json:"sweepPercentage,omitempty"`
	SweepDelay          int    `json:"sweepDelay,omitempty"`
}

type AutoSweepConfig struct {
	AutoSweepID         string `json:"autoSweepId,omitempty"`
	Enabled             bool   `json:"enabled"`
	DestinationWalletID string `json:"destinationWalletId"`
	MinimumAmount       int64  `json:"minimumAmount"`
	SweepPercentage     int    `json:"sweepPercentage"`
	SweepDelay          int    `json:"sweepDelay"`
	LastSweepAt         string `json:"lastSweepAt,omitempty"`
}

type QRCodeParams struct {
	Amount      int64  `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Description string `json:"description,omitempty"`
	Format      string `json:"format,omitempty" validate:"omitempty,oneof=png svg"`
	Size        int    `json:"size,omitempty" validate:"omitempty,gt=0"`
}

type QRCode struct {
	QRCodeData string `json:"qrCodeData"`
	QRCodeUrl  string `json:"qrCodeUrl"`
}

type AccountWebhookParams struct {
	Url    string   `json:"url" validate:"required,url"`
	Events []string `json:"events,omitempty"`
}

type AccountWebhook struct {
	WebhookID string   `json:"webhookId"`
	Url       string   `json:"url"`
	Events    []string `json:"events"`
}

type Removed struct {
	Removed bool `json:"removed"`
}

type Disabled struct {
	Disabled bool `json:"disabled"`
}

type VirtualAccountService struct {
	client *client.Fintava
}

func (s *VirtualAccountService) Create(ctx context.Context, params CreateVirtualAccountParams) (out client.ApiResponse[VirtualAccount], err error) {
	if err = check(params); err != nil {
		return
	}
	body := createVirtualAccountWire{CustomerID: params.CustomerID, Currency: params.Currency, AccountName: params.AccountName}
	return client.Request[client.ApiResponse[VirtualAccount]](s.client, ctx, virtualAccountCreate, body, nil)
}

func (s *VirtualAccountService) GetByID(ctx context.Context, virtualAccountId string) (client.ApiResponse[VirtualAccount], error) {
	return client.Request[client.ApiResponse[VirtualAccount]](s.client, ctx, virtualAccountGet.Format(virtualAccountId), nil, nil)
}

func (s *VirtualAccountService) GetByCustomerID(ctx context.Context, customerId string) (client.ApiResponse[[]VirtualAccount], error) {
	return client.Request[client.ApiResponse[[]VirtualAccount]](s.client, ctx, virtualAccountsByCustomer.Format(customerId), nil, nil)
}

func (s *VirtualAccountService) GetByAccountNumber(ctx context.Context, accountNumber string) (client.ApiResponse[VirtualAccount], error) {
	return client.Request[client.ApiResponse[VirtualAccount]](s.client, ctx, virtualAccountByNumber.Format(accountNumber), nil, nil)
}

func (s *VirtualAccountService) List(ctx context.Context, options VirtualAccountListOptions) (out client.PaginatedResponse[VirtualAccount], err error) {
	if err = check(options); err != nil {
		return
	}
	return client.Request[client.PaginatedResponse[VirtualAccount]](s.client, ctx, virtualAccountList, nil, options.query())
}

func (s *VirtualAccountService) Update(ctx context.Context, virtualAccountId string, params UpdateVirtualAccountParams) (out client.ApiResponse[VirtualAccount], err error) {
	if err = check(params); err != nil {
		return
	}
	body := updateVirtualAccountWire{AccountName: params.AccountName, Status: params.Status}
	return client.Request[client.ApiResponse[VirtualAccount]](s.client, ctx, virtualAccountUpdate.Format(virtualAccountId), body, nil)
}

func (s *VirtualAccountService) Deactivate(ctx context.Context, virtualAccountId, reason string) (client.ApiResponse[VirtualAccount], error) {
	return client.Request[client.ApiResponse[VirtualAccount]](s.client, ctx, virtualAccountDeactivate.Format(virtualAccountId), reasonBody(reason), nil)
}

func (s *VirtualAccountService) Reactivate(ctx context.Context, virtualAccountId string) (client.ApiResponse[VirtualAccount], error) {
	return client.Request[client.ApiResponse[VirtualAccount]](s.client, ctx, virtualAccountReactivate.Format(virtualAccountId), nil, nil)
}

func (s *VirtualAccountService) GetTransactions(ctx context.Context, virtualAccountId string, filters TransactionFilters) (out client.PaginatedResponse[Transaction], err error) {
	if err = check(filters); err != nil {
		return
	}
	return client.Request[client.PaginatedResponse[Transaction]](s.client, ctx, virtualAccountTransactions.Format(virtualAccountId), nil, filters.query())
}

func (s *VirtualAccountService) GetBalance(ctx context.Context, virtualAccountId string) (client.ApiResponse[VirtualAccountBalance], error) {
	return client.Request[client.ApiResponse[VirtualAccountBalance]](s.client, ctx, virtualAccountBalance.Format(virtualAccountId), nil, nil)
}

func (s *VirtualAccountService) SetupAutoSweep(ctx context.Context, virtualAccountId string, params AutoSweepParams) (out client.ApiResponse[AutoSweepConfig], err error) {
	if err = check(params); err != nil {
		return
	}
	body := autoSweepWire{
		Enabled:             params.Enabled,
		DestinationWalletID: params.DestinationWalletID,
		MinimumAmount:       params.MinimumAmount,
		SweepPercentage:     params.SweepPercentage,
		SweepDelay:          params.SweepDelayMinutes,
	}
	return client.Request[client.ApiResponse[AutoSweepConfig]](s.client, ctx, virtualAccountAutoSweep.Format(virtualAccountId), body, nil)
}

func (s *VirtualAccountService) GetAutoSweepConfig(ctx context.Context, virtualAccountId string) (client.ApiResponse[AutoSweepConfig], error) {
	return client.Request[client.ApiResponse[AutoSweepConfig]](s.client, ctx, virtualAccountAutoSweepGet.Format(virtualAccountId), nil, nil)
}

func (s *VirtualAccountService) DisableAutoSweep(ctx context.Context, virtualAccountId string) (client.ApiResponse[Disabled], error) {
	return client.Request[client.ApiResponse[Disabled]](s.client, ctx, virtualAccountAutoSweepDel.Format(virtualAccountId), nil, nil)
}

func (s *VirtualAccountService) GenerateQRCode(ctx context.Context, virtualAccountId string, params QRCodeParams) (out client.ApiResponse[QRCode], err error) {
	if err = check(params); err != nil {
		return
	}
	return client.Request[client.ApiResponse[QRCode]](s.client, ctx, virtualAccountQRCode.Format(virtualAccountId), params, nil)
}

func (s *VirtualAccountService) GetStatement(ctx context.Context, virtualAccountId string, options StatementOptions) (out client.ApiResponse[[]Transaction], err error) {
	if err = check(options); err != nil {
		return
	}
	return client.Request[client.ApiResponse[[]Transaction]](s.client, ctx, virtualAccountStatement.Format(virtualAccountId), nil, options.query("json"))
}

// SetWebhook subscribes a URL to this account's credit/debit events.
func (s *VirtualAccountService) SetWebhook(ctx context.Context, virtualAccountId string, params AccountWebhookParams) (out client.ApiResponse[AccountWebhook], err error) {
	if err = check(params); err != nil {
		return
	}
	if len(params.Events) == 0 {
		params.Events = []string{"credit", "debit"}
	}
	return client.Request[client.ApiResponse[AccountWebhook]](s.client, ctx, virtualAccountWebhookSet.Format(virtualAccountId), params, nil)
}

func (s *VirtualAccountService) RemoveWebhook(ctx context.Context, virtualAccountId string) (client.ApiResponse[Removed], error) {
	return client.Request[client.ApiResponse[Removed]](s.client, ctx, virtualAccountWebhookDel.Format(virtualAccountId), nil, nil)
}
