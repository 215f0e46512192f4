package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/kod2ulz/fintava-go/client"
)

var (
	transferCreate        = client.Endpoint{Method: http.MethodPost, Uri: "transfers"}
	transferGet           = client.Endpoint{Method: http.MethodGet, Uri: "transfers/%s"}
	transferGetByRef      = client.Endpoint{Method: http.MethodGet, Uri: "transfers/reference/%s"}
	transferList          = client.Endpoint{Method: http.MethodGet, Uri: "transfers"}
	transferVerifyAccount = client.Endpoint{Method: http.MethodPost, Uri: "transfers/verify-account"}
	transferBanks         = client.Endpoint{Method: http.MethodGet, Uri: "transfers/banks"}
	transferBankByCode    = client.Endpoint{Method: http.MethodGet, Uri: "transfers/banks/%s"}
	transferCancel        = client.Endpoint{Method: http.MethodPost, Uri: "transfers/%s/cancel"}
	transferRetry         = client.Endpoint{Method: http.MethodPost, Uri: "transfers/%s/retry"}
	transferFees          = client.Endpoint{Method: http.MethodPost, Uri: "transfers/fees"}
	transferBulk          = client.Endpoint{Method: http.MethodPost, Uri: "transfers/bulk"}
	transferBulkStatus    = client.Endpoint{Method: http.MethodGet, Uri: "transfers/bulk/%s"}
	transferInternal      = client.Endpoint{Method: http.MethodPost, Uri: "transfers/internal"}
)

type Transfer struct {
	ID                       string   `json:"id"`
	Reference                string   `json:"reference"`
	Amount                   int64    `json:"amount"`
	Currency                 string   `json:"currency"`
	SourceWalletID           string   `json:"sourceWalletId"`
	DestinationAccountNumber string   `json:"destinationAccountNumber"`
	DestinationBankCode      string   `json:"destinationBankCode"`
	DestinationAccountName   string   `json:"destinationAccountName"`
	Narration                string   `json:"narration"`
	Status                   string   `json:"status"`
	Fee                      int64    `json:"fee"`
	Metadata                 Metadata `json:"metadata,omitempty"`
	CreatedAt                string   `json:"createdAt"`
	UpdatedAt                string   `json:"updatedAt"`
}

type AccountVerification struct {
	AccountNumber string `json:"accountNumber"`
	AccountName   string `json:"accountName"`
	BankCode      string `json:"bankCode"`
	BankName      string `json:"bankName"`
}

type CreateTransferParams struct {
	Amount                   int64    `json:"amount" validate:"required,gt=0"`
	SourceWalletID           string   `json:"source_wallet_id" validate:"required"`
	DestinationAccountNumber string   `json:"destination_account_number" validate:"required"`
	DestinationBankCode      string   `json:"destination_bank_code" validate:"required"`
	Narration                string   `json:"narration" validate:"required"`
	Reference                string   `json:"reference,omitempty"`
	Metadata                 Metadata `json:"metadata,omitempty"`
}

type createTransferWire struct {
	Amount                   int64    `json:"amount"`
	SourceWalletID           string   `json:"sourceWalletId"`
	DestinationAccountNumber string   `json:"destinationAccountNumber"`
	DestinationBankCode      string   `json:"destinationBankCode"`
	Narration                string   `json:"narration"`
	Reference                string   `json:"reference"`
	Metadata                 Metadata `json:"metadata,omitempty"`
}

type TransferListOptions struct {
	ListOptions
	DateRange
	WalletID   string `json:"walletId,omitempty"`
	CustomerID string `json:"customerId,omitempty"`
	Status     string `json:"status,omitempty" validate:"omitempty,oneof=pending successful failed"`
	MinAmount  int64  `json:"minAmount,omitempty"`
	MaxAmount  int64  `json:"maxAmount,omitempty"`
}

func (o TransferListOptions) query() url.Values {
	q := o.ListOptions.query(defaultLimit)
	o.DateRange.apply(q)
	setIf(q, "walletId", o.WalletID)
	setIf(q, "customerId", o.CustomerID)
	setIf(q, "status", o.Status)
	setIfInt(q, "minAmount", o.MinAmount)
	setIfInt(q, "maxAmount", o.MaxAmount)
	return q
}

type VerifyAccountParams struct {
	AccountNumber string `json:"account_number" validate:"required"`
	BankCode      string `json:"bank_code" validate:"required"`
}

type verifyAccountWire struct {
	AccountNumber string `json:"accountNumber"`
	BankCode      string `json:"bankCode"`
}

type TransferFeeParams struct {
	Amount              int64  `json:"amount" validate:"required,gt=0"`
	Currency            string `json:"currency" validate:"required"`
	DestinationBankCode string `json:"destination_bank_code" validate:"required"`
	TransferType        string `json:"transfer_type,omitempty" validate:"omitempty,oneof=instant standard"`
}

type transferFeeWire struct {
	Amount              int64  `json:"amount"`
	Currency            string `json:"currency"`
	DestinationBankCode string `json:"destinationBankCode"`
	TransferType        string `json:"transferType,omitempty"`
}

type TransferFees struct {
	Fee          int64  `json:"fee"`
	TotalAmount  int64  `json:"totalAmount"`
	Currency     string `json:"currency"`
	TransferType string `json:"transferType"`
}

type BulkTransferItem struct {
	Amount                   int64    `json:"amount" validate:"required,gt=0"`
	DestinationAccountNumber string   `json:"destination_account_number" validate:"required"`
	DestinationBankCode      string   `json:"destination_bank_code" validate:"required"`
	Narration                string   `json:"narration" validate:"required"`
	Reference                string   `json:"reference,omitempty"`
	Metadata                 Metadata `json:"metadata,omitempty"`
}

type BulkTransferParams struct {
	SourceWalletID string             `json:"source_wallet_id" validate:"required"`
	Transfers      []BulkTransferItem `json:"transfers" validate:"required,min=1,dive"`
	BatchReference string             `json:"batch_reference,omitempty"`
}

type bulkTransferItemWire struct {
	Amount                   int64    `json:"amount"`
	DestinationAccountNumber string   `json:"destinationAccountNumber"`
	DestinationBankCode      string   `json:"destinationBankCode"`
	Narration                string   `json:"narration"`
	Reference                string   `json:"reference,omitempty"`
	Metadata                 Metadata `json:"metadata,omitempty"`
}

type bulkTransferWire struct {
	SourceWalletID string                 `json:"sourceWalletId"`
	Transfers      []bulkTransferItemWire `json:"transfers"`
	BatchReference string                 `json:"batchReference"`
}

type BulkTransferResult struct {
	BatchID     string     `json:"batchId"`
	TotalAmount int64      `json:"totalAmount"`
	TotalFees   int64      `json:"totalFees"`
	Transfers   []Transfer `json:"transfers"`
}

type BulkTransferStatus struct {
	BatchID             string     `json:"batchId"`
	Status              string     `json:"status"`
	TotalTransfers      int        `json:"totalTransfers"`
	SuccessfulTransfers int        `json:"successfulTransfers"`
	FailedTransfers     int        `json:"failedTransfers"`
	Transfers           []Transfer `json:"transfers"`
}

type InternalTransferParams struct {
	SourceWalletID      string   `json:"source_wallet_id" validate:"required"`
	DestinationWalletID string   `json:"destination_wallet_id" validate:"required"`
	Amount              int64    `json:"amount" validate:"required,gt=0"`
	Narration           string   `json:"narration" validate:"required"`
	Reference           string   `json:"reference,omitempty"`
	Metadata            Metadata `json:"metadata,omitempty"`
}

type internalTransferWire struct {
	SourceWalletID      string   `json:"sourceWalletId"`
	DestinationWalletID string   `json:"destinationWalletId"`
	Amount              int64    `json:"amount"`
	Narration           string   `json:"narration"`
	Reference           string   `json:"reference"`
	Metadata            Metadata `json:"metadata,omitempty"`
}

type InternalTransferResult struct {
	SourceTransaction      Transaction `json:"sourceTransaction"`
	DestinationTransaction Transaction `json:"destinationTransaction"`
	Reference              string      `json:"reference"`
}

type TransferService struct {
	client *client.Fintava
}

func (s *TransferService) Create(ctx context.Context, params CreateTransferParams) (out client.ApiResponse[Transfer], err error) {
	if err = check(params); err != nil {
		return
	}
	if params.Reference == "" {
		params.Reference = uuid.New().String()
	}
	body := createTransferWire{
		Amount:                   params.Amount,
		SourceWalletID:           params.SourceWalletID,
		DestinationAccountNumber: params.DestinationAccountNumber,
		DestinationBankCode:      params.DestinationBankCode,
		Narration:                params.Narration,
		Reference:                params.Reference,
		Metadata:                 params.Metadata,
	}
	return client.Request[client.ApiResponse[Transfer]](s.client, ctx, transferCreate, body, nil)
}

func (s *TransferService) GetByID(ctx context.Context, transferId string) (client.ApiResponse[Transfer], error) {
	return client.Request[client.ApiResponse[Transfer]](s.client, ctx, transferGet.Format(transferId), nil, nil)
}

func (s *TransferService) GetByReference(ctx context.Context, reference string) (client.ApiResponse[Transfer], error) {
	return client.Request[client.ApiResponse[Transfer]](s.client, ctx, transferGetByRef.Format(reference), nil, nil)
}

func (s *TransferService) List(ctx context.Context, options TransferListOptions) (out client.PaginatedResponse[Transfer], err error) {
	if err = check(options); err != nil {
		return
	}
	return client.Request[client.PaginatedResponse[Transfer]](s.client, ctx, transferList, nil, options.query())
}

func (s *TransferService) VerifyAccount(ctx context.Context, params VerifyAccountParams) (out client.ApiResponse[AccountVerification], err error) {
	if err = check(params); err != nil {
		return
	}
	body := verifyAccountWire{AccountNumber: params.AccountNumber, BankCode: params.BankCode}
	return client.Request[client.ApiResponse[AccountVerification]](s.client, ctx, transferVerifyAccount, body, nil)
}

func (s *TransferService) GetBanks(ctx context.Context, country string) (client.ApiResponse[[]Bank], error) {
	if country == "" {
		country = "NG"
	}
	return client.Request[client.ApiResponse[[]Bank]](s.client, ctx, transferBanks, nil, url.Values{"country": {country}})
}

func (s *TransferService) GetBankByCode(ctx context.Context, bankCode string) (client.ApiResponse[Bank], error) {
	return client.Request[client.ApiResponse[Bank]](s.client, ctx, transferBankByCode.Format(bankCode), nil, nil)
}

func (s *TransferService) Cancel(ctx context.Context, transferId, reason string) (client.ApiResponse[Transfer], error) {
	return client.Request[client.ApiResponse[Transfer]](s.client, ctx, transferCancel.Format(transferId), reasonBody(reason), nil)
}

func (s *TransferService) Retry(ctx context.Context, transferId string) (client.ApiResponse[Transfer], error) {
	return client.Request[client.ApiResponse[Transfer]](s.client, ctx, transferRetry.Format(transferId), nil, nil)
}

func (s *TransferService) GetFees(ctx context.Context, params TransferFeeParams) (out client.ApiResponse[TransferFees], err error) {
	if err = check(params); err != nil {
		return
	}
	body := transferFeeWire{
		Amount:              params.Amount,
		Currency:            params.Currency,
		DestinationBankCode: params.DestinationBankCode,
		TransferType:        params.TransferType,
	}
	return client.Request[client.ApiResponse[TransferFees]](s.client, ctx, transferFees, body, nil)
}

func (s *TransferService) Bulk(ctx context.Context, params BulkTransferParams) (out client.ApiResponse[BulkTransferResult], err error) {
	if err = check(params); err != nil {
		return
	}
	if params.BatchReference == "" {
		params.BatchReference = uuid.New().String()
	}
	body := bulkTransferWire{
		SourceWalletID: params.SourceWalletID,
		BatchReference: params.BatchReference,
		Transfers:      make([]bulkTransferItemWire, 0, len(params.Transfers)),
	}
	for _, item := range params.Transfers {
		body.Transfers = append(body.Transfers, bulkTransferItemWire{
			Amount:                   item.Amount,
			DestinationAccountNumber: item.DestinationAccountNumber,
			DestinationBankCode:      item.DestinationBankCode,
			Narration:                item.Narration,
			Reference:                item.Reference,
			Metadata:                 item.Metadata,
		})
	}
	return client.Request[client.ApiResponse[BulkTransferResult]](s.client, ctx, transferBulk, body, nil)
}

func (s *TransferService) BulkStatus(ctx context.Context, batchId string) (client.ApiResponse[BulkTransferStatus], error) {
	return client.Request[client.ApiResponse[BulkTransferStatus]](s.client, ctx, transferBulkStatus.Format(batchId), nil, nil)
}

func (s *TransferService) Internal(ctx context.Context, params InternalTransferParams) (out client.ApiResponse[InternalTransferResult], err error) {
	if err = check(params); err != nil {
		return
	}
	if params.Reference == "" {
		params.Reference = uuid.New().String()
	}
	body := internalTransferWire{
		SourceWalletID:      params.SourceWalletID,
		DestinationWalletID: params.DestinationWalletID,
		Amount:              params.Amount,
		Narration:           params.Narration,
		Reference:           params.Reference,
		Metadata:            params.Metadata,
	}
	return client.Request[client.ApiResponse[InternalTransferResult]](s.client, ctx, transferInternal, body, nil)
}
