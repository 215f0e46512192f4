package api_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kod2ulz/fintava-go/api"
)

var _ = Describe("Webhook Verification", func() {

	const secret = "whsec_9f8e7d6c5b4a"

	payload := []byte(`{"event":"wallet.credited","data":{"walletId":"wal_1","amount":5000},` +
		`"timestamp":"2026-08-30T10:15:00Z"}`)

	Context("VerifySignature", func() {

		It("accepts the exact hex signature", func() {
			Expect(api.VerifySignature(payload, api.Sign(payload, secret), secret)).To(BeTrue())
		})

		It("accepts a sha256= prefixed signature", func() {
			Expect(api.VerifySignature(payload, "sha256="+api.Sign(payload, secret), secret)).To(BeTrue())
		})

		It("rejects a signature under the wrong secret", func() {
			Expect(api.VerifySignature(payload, api.Sign(payload, "other-secret"), secret)).To(BeFalse())
		})

		It("rejects a tampered payload", func() {
			signature := api.Sign(payload, secret)
			tampered := append([]byte{}, payload...)
			tampered[len(tampered)-2] = 'X'
			Expect(api.VerifySignature(tampered, signature, secret)).To(BeFalse())
		})

		It("rejects garbage signatures", func() {
			Expect(api.VerifySignature(payload, "not-hex-at-all", secret)).To(BeFalse())
			Expect(api.VerifySignature(payload, "", secret)).To(BeFalse())
		})
	})

	Context("ParseEvent", func() {

		It("returns the envelope for a valid delivery", func() {
			event := api.ParseEvent(payload, api.Sign(payload, secret), secret)
			Expect(event).ToNot(BeNil())
			Expect(event.Event).To(Equal(api.EventWalletCredited))
			Expect(event.Timestamp).To(Equal("2026-08-30T10:15:00Z"))

			var data struct {
				WalletID string `json:"walletId"`
				Amount   int64  `json:"amount"`
			}
			Expect(json.Unmarshal(event.Data, &data)).To(BeNil())
			Expect(data.WalletID).To(Equal("wal_1"))
			Expect(data.Amount).To(Equal(int64(5000)))
		})

		It("returns nil on a bad signature", func() {
			Expect(api.ParseEvent(payload, api.Sign(payload, "wrong"), secret)).To(BeNil())
		})

		It("returns nil on unparseable payloads", func() {
			broken := []byte(`{"event":"wallet.credited",`)
			Expect(api.ParseEvent(broken, api.Sign(broken, secret), secret)).To(BeNil())
		})

		It("returns nil when required envelope fields are missing", func() {
			cases := [][]byte{
				[]byte(`{"data":{"x":1},"timestamp":"2026-08-30T10:15:00Z"}`),
				[]byte(`{"event":"wallet.credited","data":{"x":1}}`),
				[]byte(`{"event":"wallet.credited","timestamp":"2026-08-30T10:15:00Z"}`),
				[]byte(`{"event":"wallet.credited","data":null,"timestamp":"2026-08-30T10:15:00Z"}`),
			}
			for _, raw := range cases {
				Expect(api.ParseEvent(raw, api.Sign(raw, secret), secret)).To(BeNil())
			}
		})
	})
})
