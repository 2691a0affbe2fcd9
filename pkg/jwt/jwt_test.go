package jwt_test

import (
	"time"

	tokenIssuer "finledger/pkg/jwt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	const senderAddr = "0x00000000000000000000000000000000000000c3"

	var (
		service *tokenIssuer.JWTService
		info    tokenIssuer.TokenInfo
	)

	BeforeEach(func() {
		service = tokenIssuer.NewJWTService([]byte("test-secret"))
		info = tokenIssuer.TokenInfo{
			UserName:   "alice",
			Subject:    senderAddr,
			Role:       "manager",
			Expiration: 24,
		}
	})

	AfterEach(func() {
		tokenIssuer.TimeNow = time.Now
	})

	Describe("Generate and Validate", func() {
		It("should round-trip the subject, username and role claims", func() {
			signed, err := service.Sign(service.Generate(info))
			Expect(err).NotTo(HaveOccurred())
			Expect(signed).NotTo(BeEmpty())

			claims, err := service.Validate(signed)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims["sub"]).To(Equal(senderAddr))
			Expect(claims["username"]).To(Equal("alice"))
			Expect(claims["role"]).To(Equal("manager"))
		})

		It("should reject a token signed with another secret", func() {
			other := tokenIssuer.NewJWTService([]byte("other-secret"))
			signed, err := other.Sign(other.Generate(info))
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Validate(signed)
			Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
		})

		It("should reject a tampered token", func() {
			signed, err := service.Sign(service.Generate(info))
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Validate(signed + "x")
			Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
		})

		It("should reject a token past its expiration", func() {
			signed, err := service.Sign(service.Generate(info))
			Expect(err).NotTo(HaveOccurred())

			tokenIssuer.TimeNow = func() time.Time {
				return time.Now().Add(48 * time.Hour)
			}

			_, err = service.Validate(signed)
			Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
		})

		It("should reject garbage input", func() {
			_, err := service.Validate("not.a.token")
			Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
		})
	})
})
