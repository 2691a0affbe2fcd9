package payload_test

import (
	"net/http/httptest"
	"strings"

	"finledger/internal/http/payload"
	"finledger/internal/ledger"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DecodeValidator", func() {
	const recipientAddr = "0x00000000000000000000000000000000000000d4"

	var validator payload.DecodeValidator

	decode := func(body string, object any) error {
		req := httptest.NewRequest("POST", "/", strings.NewReader(body))
		return validator.DecodeAndValidateJSONPayload(req, object)
	}

	Describe("AuthRequest", func() {
		It("should accept a complete login", func() {
			var authPayload payload.AuthRequest
			err := decode(`{"username":"alice","password":"testpass"}`, &authPayload)

			Expect(err).NotTo(HaveOccurred())
			Expect(authPayload.ToMessage().Username).To(Equal("alice"))
		})

		It("should reject a missing password", func() {
			var authPayload payload.AuthRequest
			err := decode(`{"username":"alice"}`, &authPayload)

			Expect(err).To(HaveOccurred())
		})

		It("should reject unknown fields", func() {
			var authPayload payload.AuthRequest
			err := decode(`{"username":"alice","password":"x","extra":true}`, &authPayload)

			Expect(err).To(HaveOccurred())
		})
	})

	Describe("RegisterUserRequest", func() {
		It("should accept a ledger-only registration", func() {
			var registerPayload payload.RegisterUserRequest
			err := decode(`{"address":"`+recipientAddr+`","name":"Recipient","email":"r@example.com","role":1}`, &registerPayload)

			Expect(err).NotTo(HaveOccurred())

			msg := registerPayload.ToMessage()
			Expect(msg.Role).To(Equal(ledger.RoleManager))
			Expect(msg.Username).To(BeEmpty())
		})

		It("should reject a malformed address", func() {
			var registerPayload payload.RegisterUserRequest
			err := decode(`{"address":"0x123","name":"Recipient","role":0}`, &registerPayload)

			Expect(err).To(HaveOccurred())
		})

		It("should reject an out of range role", func() {
			var registerPayload payload.RegisterUserRequest
			err := decode(`{"address":"`+recipientAddr+`","name":"Recipient","role":7}`, &registerPayload)

			Expect(err).To(HaveOccurred())
		})

		It("should require a password when a username is given", func() {
			var registerPayload payload.RegisterUserRequest
			err := decode(`{"address":"`+recipientAddr+`","name":"Recipient","role":0,"username":"recipient"}`, &registerPayload)

			Expect(err).To(HaveOccurred())
		})
	})

	Describe("CreateTransactionRequest", func() {
		It("should parse the amount as a big integer", func() {
			var txPayload payload.CreateTransactionRequest
			err := decode(`{"to":"`+recipientAddr+`","amount":"340282366920938463463374607431768211456"}`, &txPayload)
			Expect(err).NotTo(HaveOccurred())

			msg, err := txPayload.ToMessage()
			Expect(err).NotTo(HaveOccurred())
			Expect(msg.Amount.String()).To(Equal("340282366920938463463374607431768211456"))
		})

		It("should reject a non numeric amount", func() {
			var txPayload payload.CreateTransactionRequest
			err := decode(`{"to":"`+recipientAddr+`","amount":"15.5"}`, &txPayload)

			Expect(err).To(HaveOccurred())
		})

		It("should reject a missing recipient", func() {
			var txPayload payload.CreateTransactionRequest
			err := decode(`{"amount":"1500"}`, &txPayload)

			Expect(err).To(HaveOccurred())
		})
	})

	Describe("ProcessApprovalRequest", func() {
		It("should accept an explicit false decision", func() {
			var decisionPayload payload.ProcessApprovalRequest
			err := decode(`{"approved":false,"reason":"over budget"}`, &decisionPayload)

			Expect(err).NotTo(HaveOccurred())
			Expect(*decisionPayload.Approved).To(BeFalse())
		})

		It("should reject a missing decision", func() {
			var decisionPayload payload.ProcessApprovalRequest
			err := decode(`{"reason":"over budget"}`, &decisionPayload)

			Expect(err).To(HaveOccurred())
		})

		It("should reject a missing reason", func() {
			var decisionPayload payload.ProcessApprovalRequest
			err := decode(`{"approved":true}`, &decisionPayload)

			Expect(err).To(HaveOccurred())
		})
	})
})
