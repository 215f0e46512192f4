package api

import (
	"net/url"
	"strconv"
)

const (
	defaultPage = 1

	// Per-endpoint page sizes differ across the API surface and are
	// preserved exactly: collection listings default to 20, customer
	// listings to 10, transaction histories to 50.
	defaultLimit           = 20
	defaultCustomerTake    = 10
	defaultTransactionTake = 50
)

// Metadata is an opaque key-value bag forwarded to the API uninterpreted.
type Metadata map[string]any

const (
	OrderAsc  = "ASC"
	OrderDesc = "DESC"
)

// ListOptions are the common pagination knobs for collection endpoints.
// Zero values fall back to page 1 and the endpoint's default size; Order is
// only sent when explicitly supplied.
type ListOptions struct {
	Page  int    `json:"page,omitempty"`
	Limit int    `json:"limit,omitempty"`
	Order string `json:"order,omitempty" validate:"omitempty,oneof=ASC DESC"`
}

func (o ListOptions) query(defaultSize int) url.Values {
	q := url.Values{}
	page, size := o.Page, o.Limit
	if page <= 0 {
		page = defaultPage
	}
	if size <= 0 {
		size = defaultSize
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(size))
	setIf(q, "order", o.Order)
	return q
}

// DateRange filters a listing by creation date, YYYY-MM-DD bounds inclusive.
type DateRange struct {
	StartDate string `json:"startDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"endDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

func (r DateRange) apply(q url.Values) {
	setIf(q, "startDate", r.StartDate)
	setIf(q, "endDate", r.EndDate)
}

func setIf(q url.Values, key, val string) {
	if val != "" {
		q.Set(key, val)
	}
}

func setIfInt(q url.Values, key string, val int64) {
	if val > 0 {
		q.Set(key, strconv.FormatInt(val, 10))
	}
}

// Transaction is the ledger record shared by wallet, card and virtual
// account histories. Amounts are integer minor units (kobo).
type Transaction struct {
	ID          string   `json:"id"`
	Reference   string   `json:"reference"`
	Amount      int64    `json:"amount"`
	Currency    string   `json:"currency"`
	Type        string   `json:"type"`
	Status      string   `json:"status"`
	Description string   `json:"description"`
	WalletID    string   `json:"walletId"`
	CustomerID  string   `json:"customerId"`
	Metadata    Metadata `json:"metadata,omitempty"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

// TransactionFilters narrows a transaction history listing.
type TransactionFilters struct {
	ListOptions
	DateRange
	Status    string `json:"status,omitempty" validate:"omitempty,oneof=pending successful failed"`
	Type      string `json:"type,omitempty" validate:"omitempty,oneof=credit debit"`
	MinAmount int64  `json:"minAmount,omitempty"`
	MaxAmount int64  `json:"maxAmount,omitempty"`
}

func (f TransactionFilters) query() url.Values {
	q := f.ListOptions.query(defaultLimit)
	f.DateRange.apply(q)
	setIf(q, "status", f.Status)
	setIf(q, "type", f.Type)
	setIfInt(q, "minAmount", f.MinAmount)
	setIfInt(q, "maxAmount", f.MaxAmount)
	return q
}

// Deleted acknowledges a soft delete.
type Deleted struct {
	Deleted bool `json:"deleted"`
}

type Closed struct {
	Closed bool `json:"closed"`
}
