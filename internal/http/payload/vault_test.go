package payload_test

import (
	"net/http/httptest"
	"strings"

	"github.com/emerice12-oss/Exit-Dapp/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Vault payloads", func() {
	Describe("InvestRequest", func() {
		When("the amount is a decimal string", func() {
			It("should validate", func() {
				req := payload.InvestRequest{Amount: "0.5"}
				Expect(req.Validate()).To(Succeed())
			})
		})

		When("the amount is missing", func() {
			It("should fail validation", func() {
				req := payload.InvestRequest{}
				Expect(req.Validate()).NotTo(Succeed())
			})
		})

		When("the amount is not numeric", func() {
			It("should fail validation", func() {
				req := payload.InvestRequest{Amount: "ten"}
				Expect(req.Validate()).NotTo(Succeed())
			})
		})

		When("the amount is negative", func() {
			It("should fail validation", func() {
				req := payload.InvestRequest{Amount: "-1"}
				Expect(req.Validate()).NotTo(Succeed())
			})
		})
	})

	Describe("WithdrawRequest", func() {
		When("the amount is empty", func() {
			It("should validate and mean a full withdrawal", func() {
				req := payload.WithdrawRequest{}
				Expect(req.Validate()).To(Succeed())
			})
		})

		When("the amount is a decimal string", func() {
			It("should validate", func() {
				req := payload.WithdrawRequest{Amount: "1.25"}
				Expect(req.Validate()).To(Succeed())
			})
		})

		When("the amount is not numeric", func() {
			It("should fail validation", func() {
				req := payload.WithdrawRequest{Amount: "all of it"}
				Expect(req.Validate()).NotTo(Succeed())
			})
		})
	})

	Describe("Decoder", func() {
		var decoder payload.Decoder

		When("the body is valid JSON matching the payload", func() {
			It("should decode and validate", func() {
				req := httptest.NewRequest("POST", "/vault/invest", strings.NewReader(`{"amount":"0.5"}`))
				var target payload.InvestRequest
				Expect(decoder.DecodeJSONPayload(req, &target)).To(Succeed())
				Expect(target.Amount).To(Equal("0.5"))
			})
		})

		When("the body holds unknown fields", func() {
			It("should fail decoding", func() {
				req := httptest.NewRequest("POST", "/vault/invest", strings.NewReader(`{"amount":"0.5","bonus":true}`))
				var target payload.InvestRequest
				Expect(decoder.DecodeJSONPayload(req, &target)).NotTo(Succeed())
			})
		})

		When("the decoded payload fails validation", func() {
			It("should return the validation error", func() {
				req := httptest.NewRequest("POST", "/vault/invest", strings.NewReader(`{"amount":"ten"}`))
				var target payload.InvestRequest
				err := decoder.DecodeJSONPayload(req, &target)
				Expect(err).To(MatchError(ContainSubstring("validating payload")))
			})
		})
	})
})
