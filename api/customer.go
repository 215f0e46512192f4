package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/kod2ulz/fintava-go/client"
)

var (
	customerCreate       = client.Endpoint{Method: http.MethodPost, Uri: "customers"}
	customerGet          = client.Endpoint{Method: http.MethodGet, Uri: "customers/%s"}
	customerGetByPhone   = client.Endpoint{Method: http.MethodGet, Uri: "customers/phone/%s"}
	customerGetByEmail   = client.Endpoint{Method: http.MethodGet, Uri: "customers/email/%s"}
	customerUpdate       = client.Endpoint{Method: http.MethodPut, Uri: "customers/%s"}
	customerList         = client.Endpoint{Method: http.MethodGet, Uri: "customers"}
	customerUpgradeTier  = client.Endpoint{Method: http.MethodPost, Uri: "customers/%s/upgrade-tier"}
	customerSuspend      = client.Endpoint{Method: http.MethodPost, Uri: "customers/%s/suspend"}
	customerReactivate   = client.Endpoint{Method: http.MethodPost, Uri: "customers/%s/reactivate"}
	customerDelete       = client.Endpoint{Method: http.MethodDelete, Uri: "customers/%s"}
	customerTransactions = client.Endpoint{Method: http.MethodGet, Uri: "customers/%s/transactions"}
)

type Customer struct {
	ID          string   `json:"id"`
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Email       string   `json:"email"`
	PhoneNumber string   `json:"phoneNumber"`
	DateOfBirth string   `json:"dateOfBirth,omitempty"`
	Address     string   `json:"address,omitempty"`
	Bvn         string   `json:"bvn,omitempty"`
	Nin         string   `json:"nin,omitempty"`
	Status      string   `json:"status"`
	Tier        int      `json:"tier"`
	Metadata    Metadata `json:"metadata,omitempty"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

// CreateCustomerParams carries the domain field names; the wire body uses
// the API's camelCase names, one wire field per domain field.
type CreateCustomerParams struct {
	FirstName     string   `json:"first_name" validate:"required"`
	LastName      string   `json:"last_name" validate:"required"`
	PhoneNumber   string   `json:"phone_number" validate:"required"`
	Email         string   `json:"email" validate:"required,email"`
	FundingMethod string   `json:"funding_method" validate:"required,oneof=STATIC_FUND DYNAMIC_FUND"`
	Address       string   `json:"address" validate:"required"`
	DateOfBirth   string   `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Bvn           string   `json:"bvn" validate:"required,len=11"`
	Nin           string   `json:"nin" validate:"required,len=11"`
	Metadata      Metadata `json:"metadata,omitempty"`
}

type customerWire struct {
	FirstName     string   `json:"firstName,omitempty"`
	LastName      string   `json:"lastName,omitempty"`
	PhoneNumber   string   `json:"phoneNumber,omitempty"`
	Email         string   `json:"email,omitempty"`
	FundingMethod string   `json:"fundingMethod,omitempty"`
	Address       string   `json:"address,omitempty"`
	DateOfBirth   string   `json:"dateOfBirth,omitempty"`
	Bvn           string   `json:"bvn,omitempty"`
	Nin           string   `json:"nin,omitempty"`
	Metadata      Metadata `json:"metadata,omitempty"`
}

func (p CreateCustomerParams) wire() customerWire {
	return customerWire{
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		PhoneNumber:   p.PhoneNumber,
		Email:         p.Email,
		FundingMethod: p.FundingMethod,
		Address:       p.Address,
		DateOfBirth:   p.DateOfBirth,
		Bvn:           p.Bvn,
		Nin:           p.Nin,
		Metadata:      p.Metadata,
	}
}

// UpdateCustomerParams is a partial update; empty fields are left untouched.
type UpdateCustomerParams struct {
	FirstName   string   `json:"first_name,omitempty"`
	LastName    string   `json:"last_name,omitempty"`
	PhoneNumber string   `json:"phone_number,omitempty"`
	Email       string   `json:"email,omitempty" validate:"omitempty,email"`
	Address     string   `json:"address,omitempty"`
	DateOfBirth string   `json:"date_of_birth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Metadata    Metadata `json:"metadata,omitempty"`
}

func (p UpdateCustomerParams) wire() customerWire {
	return customerWire{
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		PhoneNumber: p.PhoneNumber,
		Email:       p.Email,
		Address:     p.Address,
		DateOfBirth: p.DateOfBirth,
		Metadata:    p.Metadata,
	}
}

// CustomerListOptions paginate with the take parameter, default 10.
type CustomerListOptions struct {
	DateRange
	Page       int    `json:"page,omitempty"`
	Take       int    `json:"take,omitempty"`
	Order      string `json:"order,omitempty" validate:"omitempty,oneof=ASC DESC"`
	SearchTerm string `json:"searchTerm,omitempty"`
}

func (o CustomerListOptions) query() url.Values {
	q := url.Values{}
	page, take := o.Page, o.Take
	if page <= 0 {
		page = defaultPage
	}
	if take <= 0 {
		take = defaultCustomerTake
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("take", strconv.Itoa(take))
	setIf(q, "order", o.Order)
	setIf(q, "searchTerm", o.SearchTerm)
	o.DateRange.apply(q)
	return q
}

// UpgradeTierParams moves a customer to KYC tier 2 or 3 with the supporting
// documents the target tier requires.
type UpgradeTierParams struct {
	Tier           int    `json:"tier" validate:"required,oneof=2 3"`
	Bvn            string `json:"bvn,omitempty" validate:"omitempty,len=11"`
	Nin            string `json:"nin,omitempty" validate:"omitempty,len=11"`
	IdDocument     string `json:"id_document,omitempty"`
	ProofOfAddress string `json:"proof_of_address,omitempty"`
}

type upgradeTierWire struct {
	Tier           int    `json:"tier"`
	Bvn            string `json:"bvn,omitempty"`
	Nin            string `json:"nin,omitempty"`
	IdDocument     string `json:"idDocument,omitempty"`
	ProofOfAddress string `json:"proofOfAddress,omitempty"`
}

type CustomerService struct {
	client *client.Fintava
}

func (s *CustomerService) Create(ctx context.Context, params CreateCustomerParams) (out client.ApiResponse[Customer], err error) {
	if err = check(params); err != nil {
		return
	}
	return client.Request[client.ApiResponse[Customer]](s.client, ctx, customerCreate, params.wire(), nil)
}

func (s *CustomerService) GetByID(ctx context.Context, customerId string) (client.ApiResponse[Customer], error) {
	return client.Request[client.ApiResponse[Customer]](s.client, ctx, customerGet.Format(customerId), nil, nil)
}

func (s *CustomerService) GetByPhone(ctx context.Context, phoneNumber string) (client.ApiResponse[Customer], error) {
	return client.Request[client.ApiResponse[Customer]](s.client, ctx, customerGetByPhone.Format(phoneNumber), nil, nil)
}

func (s *CustomerService) GetByEmail(ctx context.Context, email string) (client.ApiResponse[Customer], error) {
	return client.Request[client.ApiResponse[Customer]](s.client, ctx, customerGetByEmail.Format(email), nil, nil)
}

func (s *CustomerService) Update(ctx context.Context, customerId string, params UpdateCustomerParams) (out client.ApiResponse[Customer], err error) {
	if err = check(params); err != nil {
		return
	}
	return client.Request[client.ApiResponse[Customer]](s.client, ctx, customerUpdate.Format(customerId), params.wire(), nil)
}

func (s *CustomerService) List(ctx context.Context, options CustomerListOptions) (out client.PaginatedResponse[Customer], err error) {
	if err = check(options); err != nil {
		return
	}
	return client.Request[client.PaginatedResponse[Customer]](s.client, ctx, customerList, nil, options.query())
}

func (s *CustomerService) UpgradeTier(ctx context.Context, customerId string, params UpgradeTierParams) (out client.ApiResponse[Customer], err error) {
	if err = check(params); err != nil {
		return
	}
	body := upgradeTierWire{
		Tier:           params.Tier,
		Bvn:            params.Bvn,
		Nin:            params.Nin,
		IdDocument:     params.IdDocument,
		ProofOfAddress: params.ProofOfAddress,
	}
	return client.Request[client.ApiResponse[Customer]](s.client, ctx, customerUpgradeTier.Format(customerId), body, nil)
}

func (s *CustomerService) Suspend(ctx context.Context, customerId, reason string) (client.ApiResponse[Customer], error) {
	return client.Request[client.ApiResponse[Customer]](s.client, ctx, customerSuspend.Format(customerId), reasonBody(reason), nil)
}

func (s *CustomerService) Reactivate(ctx context.Context, customerId string) (client.ApiResponse[Customer], error) {
	return client.Request[client.ApiResponse[Customer]](s.client, ctx, customerReactivate.Format(customerId), nil, nil)
}

func (s *CustomerService) Delete(ctx context.Context, customerId string) (client.ApiResponse[Deleted], error) {
	return client.Request[client.ApiResponse[Deleted]](s.client, ctx, customerDelete.Format(customerId), nil, nil)
}

// Transactions pages through a customer's history, defaulting to 50 rows per
// page like the transaction endpoints.
func (s *CustomerService) Transactions(ctx context.Context, customerId string, options TransactionQuery) (out client.PaginatedResponse[Transaction], err error) {
	if err = check(options); err != nil {
		return
	}
	return client.Request[client.PaginatedResponse[Transaction]](s.client, ctx, customerTransactions.Format(customerId), nil, options.query())
}

type reasoned struct {
	Reason string `json:"reason,omitempty"`
}

// reasonBody wraps an optional human-readable reason for an action endpoint,
// sending no body when the reason is empty.
func reasonBody(reason string) any {
	if reason == "" {
		return nil
	}
	return reasoned{Reason: reason}
}

// TransactionQuery paginates transaction histories with the take parameter,
// default 50.
type TransactionQuery struct {
	Page  int    `json:"page,omitempty"`
	Take  int    `json:"take,omitempty"`
	Order string `json:"order,omitempty" validate:"omitempty,oneof=ASC DESC"`
}

func (o TransactionQuery) query() url.Values {
	q := url.Values{}
	page, take := o.Page, o.Take
	if page <= 0 {
		page = defaultPage
	}
	if take <= 0 {
		take = defaultTransactionTake
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("take", strconv.Itoa(take))
	setIf(q, "order", o.Order)
	return q
}
