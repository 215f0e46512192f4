package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"

	"github.com/kod2ulz/fintava-go/client"
)

var _ = Describe("Fintava Client", func() {

	var log *logrus.Logger

	BeforeEach(func() {
		log = logrus.New()
		log.SetLevel(logrus.PanicLevel)
	})

	newClient := func(host string) *client.Fintava {
		cl, err := client.FintavaClient(log,
			client.WithCredentials("sk_test_abc123", client.EnvTest),
			client.WithHost(host))
		Expect(err).To(BeNil())
		return cl
	}

	Context("Construction", func() {

		It("fails without configuration", func() {
			cl, err := client.FintavaClient(log)
			Expect(cl).To(BeNil())
			Expect(err).To(MatchError(ContainSubstring("configuration not initialised")))
		})

		It("fails without a secret key", func() {
			cl, err := client.FintavaClient(log, client.WithCredentials("", client.EnvTest))
			Expect(cl).To(BeNil())
			Expect(err).To(MatchError(ContainSubstring("secret key not set")))
		})

		It("resolves hosts from the environment tag", func() {
			Expect(client.HostFor(client.EnvProduction)).To(Equal("https://live.fintavapay.com/api/dev"))
			Expect(client.HostFor(client.EnvTest)).To(Equal("https://api.fintavapay.com/api/dev"))
			Expect(client.HostFor("staging")).To(Equal("https://api.fintavapay.com/api/dev"))
		})
	})

	Context("Request Headers", func() {

		var received http.Header
		var server *httptest.Server

		BeforeEach(func() {
			server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				received = r.Header.Clone()
				w.Write([]byte(`{"success":true,"message":"ok"}`))
			}))
			DeferCleanup(server.Close)
		})

		It("sends bearer auth, content type and a request id", func() {
			_, err := newClient(server.URL).Get(context.Background(), "banks", nil)
			Expect(err).To(BeNil())
			Expect(received.Get("Authorization")).To(Equal("Bearer sk_test_abc123"))
			Expect(received.Get("Content-Type")).To(Equal("application/json"))
			Expect(received.Get("User-Agent")).To(Equal("fintava-go/1.0"))
			Expect(received.Get("X-Request-Id")).ToNot(BeEmpty())
		})

		It("lets header overrides win over defaults", func() {
			cl, err := client.FintavaClient(log,
				client.WithCredentials("sk_test_abc123", client.EnvTest),
				client.WithHost(server.URL),
				client.WithHeader("User-Agent", "custom-agent/2.0"),
				client.WithHeader("X-Tenant", "acme"))
			Expect(err).To(BeNil())

			_, err = cl.Get(context.Background(), "banks", nil)
			Expect(err).To(BeNil())
			Expect(received.Get("User-Agent")).To(Equal("custom-agent/2.0"))
			Expect(received.Get("X-Tenant")).To(Equal("acme"))
			Expect(received.Get("Authorization")).To(Equal("Bearer sk_test_abc123"))
		})
	})

	Context("Response Decoding", func() {

		It("decodes the envelope into the typed response", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"success":true,"message":"retrieved","data":{"id":"cus_1","name":"Ada"}}`))
			}))
			DeferCleanup(server.Close)

			type customer struct {
				ID   string `json:"id"`
				Name string `json:"name"`
			}
			out, err := client.Request[client.ApiResponse[customer]](
				newClient(server.URL), context.Background(), client.Endpoint{http.MethodGet, "customers/cus_1"}, nil, nil)
			Expect(err).To(BeNil())
			Expect(out.Success).To(BeTrue())
			Expect(out.Message).To(Equal("retrieved"))
			Expect(out.Data.ID).To(Equal("cus_1"))
			Expect(out.Data.Name).To(Equal("Ada"))
		})

		It("decodes pagination metadata", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"success":true,"message":"ok","data":[{"id":"a"},{"id":"b"}],` +
					`"pagination":{"current_page":2,"per_page":10,"total":42,"total_pages":5}}`))
			}))
			DeferCleanup(server.Close)

			type record struct {
				ID string `json:"id"`
			}
			out, err := client.Request[client.PaginatedResponse[record]](
				newClient(server.URL), context.Background(), client.Endpoint{http.MethodGet, "customers"}, nil, nil)
			Expect(err).To(BeNil())
			Expect(out.Data).To(HaveLen(2))
			Expect(out.Pagination.CurrentPage).To(Equal(2))
			Expect(out.Pagination.Total).To(Equal(42))
			Expect(out.Pagination.TotalPages).To(Equal(5))
		})
	})

	Context("Error Normalization", func() {

		It("maps a structured error body onto the response error", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(`{"statusCode":404,"message":"Customer not found","error":"RESOURCE_NOT_FOUND"}`))
			}))
			DeferCleanup(server.Close)

			_, err := newClient(server.URL).Get(context.Background(), "customers/missing", nil)
			res, ok := client.IsErrorResponse(err)
			Expect(ok).To(BeTrue())
			Expect(res.StatusCode).To(Equal(404))
			Expect(res.Code).To(Equal("RESOURCE_NOT_FOUND"))
			Expect(res.Message.String()).To(Equal("Customer not found"))
		})

		It("synthesizes messages when the error body is empty", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			}))
			DeferCleanup(server.Close)

			_, err := newClient(server.URL).Get(context.Background(), "banks", nil)
			res, ok := client.IsErrorResponse(err)
			Expect(ok).To(BeTrue())
			Expect(res.StatusCode).To(Equal(502))
			Expect(res.Message.String()).To(Equal("HTTP 502 Error"))
			Expect(res.Code).To(Equal("Bad Gateway"))
		})

		It("keeps message arrays intact", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnprocessableEntity)
				w.Write([]byte(`{"message":["amount is required","currency is invalid"],"error":"VALIDATION_FAILED"}`))
			}))
			DeferCleanup(server.Close)

			_, err := newClient(server.URL).Post(context.Background(), "transfers", nil)
			res, ok := client.IsErrorResponse(err)
			Expect(ok).To(BeTrue())
			Expect(res.Message).To(HaveLen(2))
			Expect(res.Message.String()).To(Equal("amount is required; currency is invalid"))
		})

		It("reports unreachable hosts as a network error", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
			host := server.URL
			server.Close()

			_, err := newClient(host).Get(context.Background(), "banks", nil)
			res, ok := client.IsErrorResponse(err)
			Expect(ok).To(BeTrue())
			Expect(res.StatusCode).To(Equal(500))
			Expect(res.Code).To(Equal(client.CodeNetworkError))
			Expect(res.Message.String()).To(ContainSubstring("Network error"))
		})

		It("reports unencodable bodies as a request error", func() {
			_, err := newClient("http://localhost:0").Post(context.Background(), "transfers", func() {})
			res, ok := client.IsErrorResponse(err)
			Expect(ok).To(BeTrue())
			Expect(res.Code).To(Equal(client.CodeRequestError))
		})
	})

	Context("Messages", func() {

		It("unmarshals a single string", func() {
			var m client.Messages
			Expect(json.Unmarshal([]byte(`"one thing"`), &m)).To(BeNil())
			Expect(m).To(Equal(client.Messages{"one thing"}))
		})

		It("unmarshals an array of strings", func() {
			var m client.Messages
			Expect(json.Unmarshal([]byte(`["first","second"]`), &m)).To(BeNil())
			Expect(m).To(Equal(client.Messages{"first", "second"}))
		})

		It("marshals a single message back to a bare string", func() {
			raw, err := json.Marshal(client.Messages{"only"})
			Expect(err).To(BeNil())
			Expect(string(raw)).To(Equal(`"only"`))
		})
	})

	Context("Endpoints", func() {

		It("escapes path arguments on format", func() {
			e := client.Endpoint{http.MethodGet, "customers/%s"}.Format("cus/1 x")
			Expect(e.Uri).To(Equal("customers/cus%2F1%20x"))
			Expect(e.Method).To(Equal(http.MethodGet))
		})

		It("joins host and uri", func() {
			e := client.Endpoint{http.MethodGet, "banks/%s"}.Format("044")
			Expect(e.Url("https://api.fintavapay.com/api/dev")).To(
				Equal("https://api.fintavapay.com/api/dev/banks/044"))
		})
	})
})
