package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"

	"github.com/kod2ulz/fintava-go/api"
	"github.com/kod2ulz/fintava-go/client"
)

var _ = Describe("Api Services", func() {

	var (
		ctx       context.Context
		server    *httptest.Server
		fintava   *api.Server
		requests  int
		lastPath  string
		lastBody  map[string]any
		lastQuery url.Values
	)

	BeforeEach(func() {
		ctx = context.Background()
		requests, lastPath, lastBody, lastQuery = 0, "", nil, nil
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
			lastPath = r.URL.Path
			lastQuery = r.URL.Query()
			lastBody = nil
			if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
				json.Unmarshal(raw, &lastBody)
			}
			w.Write([]byte(`{"success":true,"message":"ok","data":null}`))
		}))
		DeferCleanup(server.Close)

		log := logrus.New()
		log.SetLevel(logrus.PanicLevel)
		cl, err := client.FintavaClient(log,
			client.WithCredentials("sk_test_abc123", client.EnvTest),
			client.WithHost(server.URL))
		Expect(err).To(BeNil())
		fintava, err = api.NewServer(log, api.WithClient(cl))
		Expect(err).To(BeNil())
	})

	validCustomer := func() api.CreateCustomerParams {
		return api.CreateCustomerParams{
			FirstName:     "Ada",
			LastName:      "Obi",
			PhoneNumber:   "08012345678",
			Email:         "ada@example.com",
			FundingMethod: "STATIC_FUND",
			Address:       "12 Marina Road, Lagos",
			DateOfBirth:   "1990-04-12",
			Bvn:           "12345678901",
			Nin:           "10987654321",
		}
	}

	Context("Customer", func() {

		It("sends the camelCase wire body on create", func() {
			_, err := fintava.Customer.Create(ctx, validCustomer())
			Expect(err).To(BeNil())
			Expect(lastPath).To(Equal("/customers"))
			Expect(lastBody).To(HaveKeyWithValue("firstName", "Ada"))
			Expect(lastBody).To(HaveKeyWithValue("lastName", "Obi"))
			Expect(lastBody).To(HaveKeyWithValue("phoneNumber", "08012345678"))
			Expect(lastBody).To(HaveKeyWithValue("fundingMethod", "STATIC_FUND"))
			Expect(lastBody).To(HaveKeyWithValue("dateOfBirth", "1990-04-12"))
			Expect(lastBody).To(HaveKeyWithValue("bvn", "12345678901"))
			Expect(lastBody).To(HaveKeyWithValue("nin", "10987654321"))
		})

		It("rejects invalid params before any network call", func() {
			params := validCustomer()
			params.Email = "not-an-email"
			params.Bvn = "123"

			_, err := fintava.Customer.Create(ctx, params)
			verr, ok := api.IsValidationError(err)
			Expect(ok).To(BeTrue())
			Expect(verr.Errors).To(ContainElement(ContainSubstring("email")))
			Expect(verr.Errors).To(ContainElement(ContainSubstring("bvn")))
			Expect(requests).To(BeZero())
		})

		It("rejects an unknown funding method", func() {
			params := validCustomer()
			params.FundingMethod = "WIRE_FUND"
			_, err := fintava.Customer.Create(ctx, params)
			_, ok := api.IsValidationError(err)
			Expect(ok).To(BeTrue())
			Expect(requests).To(BeZero())
		})

		It("lists with page 1 and take 10 by default, omitting order", func() {
			_, err := fintava.Customer.List(ctx, api.CustomerListOptions{})
			Expect(err).To(BeNil())
			Expect(lastQuery.Get("page")).To(Equal("1"))
			Expect(lastQuery.Get("take")).To(Equal("10"))
			Expect(lastQuery.Has("order")).To(BeFalse())
		})

		It("passes order and search term through when supplied", func() {
			_, err := fintava.Customer.List(ctx, api.CustomerListOptions{
				Page: 3, Take: 25, Order: api.OrderDesc, SearchTerm: "ada",
			})
			Expect(err).To(BeNil())
			Expect(lastQuery.Get("page")).To(Equal("3"))
			Expect(lastQuery.Get("take")).To(Equal("25"))
			Expect(lastQuery.Get("order")).To(Equal("DESC"))
			Expect(lastQuery.Get("searchTerm")).To(Equal("ada"))
		})

		It("pages transaction history with take 50 by default", func() {
			_, err := fintava.Customer.Transactions(ctx, "cus_1", api.TransactionQuery{})
			Expect(err).To(BeNil())
			Expect(lastPath).To(Equal("/customers/cus_1/transactions"))
			Expect(lastQuery.Get("take")).To(Equal("50"))
		})

		It("sends a reason body only when one is given", func() {
			_, err := fintava.Customer.Suspend(ctx, "cus_1", "chargeback abuse")
			Expect(err).To(BeNil())
			Expect(lastBody).To(HaveKeyWithValue("reason", "chargeback abuse"))

			_, err = fintava.Customer.Suspend(ctx, "cus_1", "")
			Expect(err).To(BeNil())
			Expect(lastBody).To(BeNil())
		})
	})

	Context("Wallet", func() {

		It("defaults the movement reference to a uuid", func() {
			_, err := fintava.Wallet.Credit(ctx, "wal_1", api.MovementParams{Amount: 5000})
			Expect(err).To(BeNil())
			Expect(lastPath).To(Equal("/wallets/wal_1/credit"))
			Expect(lastBody["reference"]).ToNot(BeEmpty())
		})

		It("keeps a caller-supplied reference", func() {
			_, err := fintava.Wallet.Debit(ctx, "wal_1", api.MovementParams{Amount: 1200, Reference: "ref-042"})
			Expect(err).To(BeNil())
			Expect(lastBody).To(HaveKeyWithValue("reference", "ref-042"))
		})

		It("rejects non-positive amounts without a network call", func() {
			_, err := fintava.Wallet.Credit(ctx, "wal_1", api.MovementParams{Amount: 0})
			_, ok := api.IsValidationError(err)
			Expect(ok).To(BeTrue())
			Expect(requests).To(BeZero())
		})

		It("requires a full date range on statements", func() {
			_, err := fintava.Wallet.GetStatement(ctx, "wal_1", api.StatementOptions{StartDate: "2026-01-01"})
			_, ok := api.IsValidationError(err)
			Expect(ok).To(BeTrue())
			Expect(requests).To(BeZero())
		})
	})

	Context("Utilities", func() {

		It("lists bill payments with page 1 and limit 20 by default", func() {
			_, err := fintava.Utility.ListPayments(ctx, api.BillPaymentListOptions{})
			Expect(err).To(BeNil())
			Expect(lastQuery.Get("page")).To(Equal("1"))
			Expect(lastQuery.Get("limit")).To(Equal("20"))
		})

		It("validates meter type on electricity purchases", func() {
			_, err := fintava.Utility.Electricity.Purchase(ctx, api.ElectricityPurchaseParams{
				WalletID:    "wal_1",
				ProviderID:  "prov_1",
				MeterNumber: "04123456789",
				MeterType:   "smart",
				Amount:      10000,
			})
			_, ok := api.IsValidationError(err)
			Expect(ok).To(BeTrue())
			Expect(requests).To(BeZero())
		})

		It("defaults the country filter to NG", func() {
			_, err := fintava.Bank.List(ctx, "")
			Expect(err).To(BeNil())
			Expect(lastQuery.Get("country")).To(Equal("NG"))
		})
	})
})
