package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/kod2ulz/fintava-go/client"
)

var (
	walletCreate       = client.Endpoint{Method: http.MethodPost, Uri: "wallets"}
	walletGet          = client.Endpoint{Method: http.MethodGet, Uri: "wallets/%s"}
	walletsByCustomer  = client.Endpoint{Method: http.MethodGet, Uri: "customers/%s/wallets"}
	walletBalance      = client.Endpoint{Method: http.MethodGet, Uri: "wallets/%s/balance"}
	walletCredit       = client.Endpoint{Method: http.MethodPost, Uri: "wallets/%s/credit"}
	walletDebit        = client.Endpoint{Method: http.MethodPost, Uri: "wallets/%s/debit"}
	walletTransactions = client.Endpoint{Method: http.MethodGet, Uri: "wallets/%s/transactions"}
	walletFreeze       = client.Endpoint{Method: http.MethodPost, Uri: "wallets/%s/freeze"}
	walletUnfreeze     = client.Endpoint{Method: http.MethodPost, Uri: "wallets/%s/unfreeze"}
	walletClose        = client.Endpoint{Method: http.MethodPost, Uri: "wallets/%s/close"}
	walletList         = client.Endpoint{Method: http.MethodGet, Uri: "wallets"}
	walletStatement    = client.Endpoint{Method: http.MethodGet, Uri: "wallets/%s/statement"}

	virtualWalletGenerate = client.Endpoint{Method: http.MethodPost, Uri: "virtual-wallet/generate"}
	virtualWalletGet      = client.Endpoint{Method: http.MethodGet, Uri: "virtual-wallet/%s"}
	walletToWallet        = client.Endpoint{Method: http.MethodPost, Uri: "transaction/wallet-to-wallet"}
)

type Wallet struct {
	ID            string `json:"id"`
	CustomerID    string `json:"customerId"`
	AccountNumber string `json:"accountNumber"`
	AccountName   string `json:"accountName"`
	BankName      string `json:"bankName"`
	BankCode      string `json:"bankCode"`
	Balance       int64  `json:"balance"`
	Currency      string `json:"currency"`
	Status        string `json:"status"`
	Type          string `json:"type"`
	IsFrozen      bool   `json:"isFrozen"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

type WalletBalance struct {
	Balance  int64  `json:"balance"`
	Currency string `json:"currency"`
}

type CreateWalletParams struct {
	CustomerID string `json:"customer_id" validate:"required"`
	Currency   string `json:"currency,omitempty"`
	Type       string `json:"type,omitempty" validate:"omitempty,oneof=savings current"`
}

type createWalletWire struct {
	CustomerID string `json:"customerId"`
	Currency   string `json:"currency,omitempty"`
	Type       string `json:"type,omitempty"`
}

// MovementParams credit or debit a wallet. Amount is in minor units; a
// missing reference is filled with a generated one before the call.
type MovementParams struct {
	Amount      int64    `json:"amount" validate:"required,gt=0"`
	Reference   string   `json:"reference,omitempty"`
	Description string   `json:"description,omitempty"`
	Metadata    Metadata `json:"metadata,omitempty"`
}

func (p *MovementParams) loadDefaults() {
	if p.Reference == "" {
		p.Reference = uuid.New().String()
	}
}

type WalletListOptions struct {
	ListOptions
	CustomerID string `json:"customerId,omitempty"`
	Status     string `json:"status,omitempty" validate:"omitempty,oneof=active inactive frozen"`
	Currency   string `json:"currency,omitempty"`
}

func (o WalletListOptions) query() url.Values {
	q := o.ListOptions.query(defaultLimit)
	setIf(q, "customerId", o.CustomerID)
	setIf(q, "status", o.Status)
	setIf(q, "currency", o.Currency)
	return q
}

// StatementOptions bound a statement to a closed date range.
type StatementOptions struct {
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"required,datetime=2006-01-02"`
}

func (o StatementOptions) query(format string) url.Values {
	q := url.Values{}
	q.Set("startDate", o.StartDate)
	q.Set("endDate", o.EndDate)
	q.Set("format", format)
	return q
}

type WalletService struct {
	client *client.Fintava
}

func (s *WalletService) Create(ctx context.Context, params CreateWalletParams) (out client.ApiResponse[Wallet], err error) {
	if err = check(params); err != nil {
		return
	}
	body := createWalletWire{CustomerID: params.CustomerID, Currency: params.Currency, Type: params.Type}
	return client.Request[client.ApiResponse[Wallet]](s.client, ctx, walletCreate, body, nil)
}

func (s *WalletService) GetByID(ctx context.Context, walletId string) (client.ApiResponse[Wallet], error) {
	return client.Request[client.ApiResponse[Wallet]](s.client, ctx, walletGet.Format(walletId), nil, nil)
}

func (s *WalletService) GetByCustomerID(ctx context.Context, customerId string) (client.ApiResponse[[]Wallet], error) {
	return client.Request[client.ApiResponse[[]Wallet]](s.client, ctx, walletsByCustomer.Format(customerId), nil, nil)
}

func (s *WalletService) GetBalance(ctx context.Context, walletId string) (client.ApiResponse[WalletBalance], error) {
	return client.Request[client.ApiResponse[WalletBalance]](s.client, ctx, walletBalance.Format(walletId), nil, nil)
}

func (s *WalletService) Credit(ctx context.Context, walletId string, params MovementParams) (out client.ApiResponse[Transaction], err error) {
	if err = check(params); err != nil {
		return
	}
	params.loadDefaults()
	return client.Request[client.ApiResponse[Transaction]](s.client, ctx, walletCredit.Format(walletId), params, nil)
}

func (s *WalletService) Debit(ctx context.Context, walletId string, params MovementParams) (out client.ApiResponse[Transaction], err error) {
	if err = check(params); err != nil {
		return
	}
	params.loadDefaults()
	return client.Request[client.ApiResponse[Transaction]](s.client, ctx, walletDebit.Format(walletId), params, nil)
}

func (s *WalletService) GetTransactions(ctx context.Context, walletId string, filters TransactionFilters) (out client.PaginatedResponse[Transaction], err error) {
	if err = check(filters); err != nil {
		return
	}
	return client.Request[client.PaginatedResponse[Transaction]](s.client, ctx, walletTransactions.Format(walletId), nil, filters.query())
}

func (s *WalletService) Freeze(ctx context.Context, walletId, reason string) (client.ApiResponse[Wallet], error) {
	return client.Request[client.ApiResponse[Wallet]](s.client, ctx, walletFreeze.Format(walletId), reasonBody(reason), nil)
}

func (s *WalletService) Unfreeze(ctx context.Context, walletId string) (client.ApiResponse[Wallet], error) {
	return client.Request[client.ApiResponse[Wallet]](s.client, ctx, walletUnfreeze.Format(walletId), nil, nil)
}

func (s *WalletService) Close(ctx context.Context, walletId string) (client.ApiResponse[Closed], error) {
	return client.Request[client.ApiResponse[Closed]](s.client, ctx, walletClose.Format(walletId), nil, nil)
}

func (s *WalletService) List(ctx context.Context, options WalletListOptions) (out client.PaginatedResponse[Wallet], err error) {
	if err = check(options); err != nil {
		return
	}
	return client.Request[client.PaginatedResponse[Wallet]](s.client, ctx, walletList, nil, options.query())
}

// GetStatement returns the statement rows for a date range.
func (s *WalletService) GetStatement(ctx context.Context, walletId string, options StatementOptions) (out client.ApiResponse[[]Transaction], err error) {
	if err = check(options); err != nil {
		return
	}
	return client.Request[client.ApiResponse[[]Transaction]](s.client, ctx, walletStatement.Format(walletId), nil, options.query("json"))
}

// DownloadStatement fetches the statement rendered by the API as pdf or csv,
// returning the raw document bytes.
func (s *WalletService) DownloadStatement(ctx context.Context, walletId string, options StatementOptions, format string) (out *client.RawResult, err error) {
	if err = check(options); err != nil {
		return
	}
	if err = check(statementFormat{Format: format}); err != nil {
		return
	}
	return s.client.Get(ctx, walletStatement.Format(walletId).Uri, options.query(format))
}

type statementFormat struct {
	Format string `json:"format" validate:"required,oneof=pdf csv"`
}

// GenerateVirtualParams create an expiring collection wallet. Unlike the
// other endpoints, amount here is a decimal major-unit value on the wire.
type GenerateVirtualParams struct {
	CustomerName      string   `json:"customer_name" validate:"required,min=10"`
	ExpireTimeInMin   int      `json:"expire_time_in_min" validate:"required,gt=0"`
	MerchantReference string   `json:"merchant_reference" validate:"required"`
	Amount            float64  `json:"amount" validate:"required,gt=0"`
	Phone             string   `json:"phone" validate:"required"`
	Email             string   `json:"email" validate:"required,email"`
	Description       string   `json:"description,omitempty"`
	Metadata          Metadata `json:"metadata,omitempty"`
}

type generateVirtualWire struct {
	CustomerName      string   `json:"customerName"`
	ExpireTimeInMin   int      `json:"expireTimeInMin"`
	MerchantReference string   `json:"merchantReference"`
	Amount            float64  `json:"amount"`
	Phone             string   `json:"phone"`
	Email             string   `json:"email"`
	Description       string   `json:"description,omitempty"`
	Metadata          Metadata `json:"metadata,omitempty"`
}

type VirtualWallet struct {
	ID                string `json:"id"`
	AccountNumber     string `json:"accountNumber"`
	AccountName       string `json:"accountName"`
	BankName          string `json:"bankName"`
	Amount            int64  `json:"amount"`
	MerchantReference string `json:"merchantReference"`
	PaymentStatus     string `json:"paymentStatus"`
	Status            string `json:"status"`
	ExpiresAt         string `json:"expiresAt"`
	CreatedAt         string `json:"createdAt"`
}

func (s *WalletService) GenerateVirtual(ctx context.Context, params GenerateVirtualParams) (out client.ApiResponse[VirtualWallet], err error) {
	if err = check(params); err != nil {
		return
	}
	body := generateVirtualWire{
		CustomerName:      params.CustomerName,
		ExpireTimeInMin:   params.ExpireTimeInMin,
		MerchantReference: params.MerchantReference,
		Amount:            params.Amount,
		Phone:             params.Phone,
		Email:             params.Email,
		Description:       params.Description,
		Metadata:          params.Metadata,
	}
	return client.Request[client.ApiResponse[VirtualWallet]](s.client, ctx, virtualWalletGenerate, body, nil)
}

func (s *WalletService) GetVirtual(ctx context.Context, walletId string) (client.ApiResponse[VirtualWallet], error) {
	return client.Request[client.ApiResponse[VirtualWallet]](s.client, ctx, virtualWalletGet.Format(walletId), nil, nil)
}

// WalletToWalletParams move funds between two wallets on the platform.
type WalletToWalletParams struct {
	SenderAccount     string   `json:"sender_account" validate:"required"`
	Receiver          string   `json:"receiver" validate:"required"`
	Amount            int64    `json:"amount" validate:"required,gt=0"`
	CustomerReference string   `json:"customer_reference,omitempty"`
	Narration         string   `json:"narration,omitempty"`
	Metadata          Metadata `json:"metadata,omitempty"`
}

type walletToWalletWire struct {
	SenderAccount     string   `json:"senderAccount"`
	Receiver          string   `json:"receiver"`
	Amount            int64    `json:"amount"`
	CustomerReference string   `json:"customerReference"`
	Narration         string   `json:"narration,omitempty"`
	Metadata          Metadata `json:"metadata,omitempty"`
}

func (s *WalletService) WalletToWallet(ctx context.Context, params WalletToWalletParams) (out client.ApiResponse[Transaction], err error) {
	if err = check(params); err != nil {
		return
	}
	if params.CustomerReference == "" {
		params.CustomerReference = uuid.New().String()
	}
	body := walletToWalletWire{
		SenderAccount:     params.SenderAccount,
		Receiver:          params.Receiver,
		Amount:            params.Amount,
		CustomerReference: params.CustomerReference,
		Narration:         params.Narration,
		Metadata:          params.Metadata,
	}
	return client.Request[client.ApiResponse[Transaction]](s.client, ctx, walletToWallet, body, nil)
}
