package core_test

import (
	"context"
	"errors"
	"math/big"

	"finledger/internal/cache"
	"finledger/internal/core"
	"finledger/internal/core/fake"
	"finledger/internal/events"
	"finledger/internal/ledger"
	"finledger/internal/repository"
	tokenIssuer "finledger/pkg/jwt"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("Platform", func() {
	const (
		chainID    = uint64(11155111)
		adminAddr  = "0x00000000000000000000000000000000000000a1"
		senderAddr = "0x00000000000000000000000000000000000000c3"
	)

	var (
		fakeLedger *fake.Ledger
		fakeCreds  *fake.CredentialStore
		fakeJWT    *fake.TokenIssuer
		bus        *events.Bus
		entities   *cache.Cache
		ctx        context.Context

		platform *core.Platform

		fakeErr error
	)

	BeforeEach(func() {
		fakeLedger = new(fake.Ledger)
		fakeCreds = new(fake.CredentialStore)
		fakeJWT = new(fake.TokenIssuer)
		bus = events.NewBus(zap.NewNop().Sugar())
		entities = cache.NewCache(zap.NewNop().Sugar())
		ctx = context.Background()

		platform = core.NewPlatform(zap.NewNop().Sugar(), fakeLedger, fakeCreds, fakeJWT, entities, bus, chainID)

		fakeErr = errors.New("fake error")
	})

	AfterEach(func() {
		platform.Close()
	})

	Describe("Authenticate", func() {
		var (
			authMsg        core.AuthMessage
			token          string
			err            error
			hashedPassword string
			genToken       *jwt.Token
		)

		BeforeEach(func() {
			hashedPassword = "$2a$10$1MZHKX./8Dxi9t.F1/gnx.njCcEty299Hx01GLEms2moa3brpT0ky" // bcrypt hash of "testpass"
			genToken = jwt.New(jwt.SigningMethodHS512)

			authMsg = core.AuthMessage{
				Username: "alice",
				Password: "testpass",
			}
		})

		JustBeforeEach(func() {
			token, err = platform.Authenticate(ctx, authMsg)
		})

		When("the credentials match a ledger user", func() {
			BeforeEach(func() {
				fakeCreds.CredentialByUsernameReturns(repository.Credential{
					Username:     authMsg.Username,
					Address:      senderAddr,
					PasswordHash: hashedPassword,
				}, nil)
				fakeLedger.UserReturns(ledger.User{
					Address: senderAddr,
					Role:    ledger.RoleManager,
					Active:  true,
				}, nil)
				fakeJWT.GenerateReturns(genToken)
				fakeJWT.SignReturns("signed.token", nil)
			})

			It("should issue a token carrying the address and role", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(token).To(Equal("signed.token"))

				Expect(fakeCreds.CredentialByUsernameCallCount()).To(Equal(1))
				_, username := fakeCreds.CredentialByUsernameArgsForCall(0)
				Expect(username).To(Equal("alice"))

				Expect(fakeJWT.GenerateCallCount()).To(Equal(1))
				info := fakeJWT.GenerateArgsForCall(0)
				Expect(info).To(Equal(tokenIssuer.TokenInfo{
					UserName:   "alice",
					Subject:    senderAddr,
					Role:       "manager",
					Expiration: 24,
				}))

				Expect(fakeJWT.SignCallCount()).To(Equal(1))
				Expect(fakeJWT.SignArgsForCall(0)).To(Equal(genToken))
			})
		})

		When("the username is unknown", func() {
			BeforeEach(func() {
				fakeCreds.CredentialByUsernameReturns(repository.Credential{}, repository.ErrCredentialNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})

		When("the password does not match", func() {
			BeforeEach(func() {
				fakeCreds.CredentialByUsernameReturns(repository.Credential{
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
				}, nil)
				authMsg.Password = "wrongpass"
			})

			It("should return incorrect password error", func() {
				Expect(err).To(MatchError(core.ErrIncorrectPassword))
				Expect(fakeJWT.GenerateCallCount()).To(Equal(0))
			})
		})

		When("the credential has no ledger user behind it", func() {
			BeforeEach(func() {
				fakeCreds.CredentialByUsernameReturns(repository.Credential{
					Username:     authMsg.Username,
					Address:      senderAddr,
					PasswordHash: hashedPassword,
				}, nil)
				fakeLedger.UserReturns(ledger.User{}, ledger.ErrUserNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})
	})

	Describe("RegisterUser", func() {
		var (
			msg  core.RegisterUserMessage
			user ledger.User
			err  error
		)

		BeforeEach(func() {
			msg = core.RegisterUserMessage{
				Address: senderAddr,
				Name:    "Sender",
				Email:   "sender@example.com",
				Role:    ledger.RoleRegular,
			}

			fakeJWT.ValidateReturns(jwt.MapClaims{"sub": adminAddr}, nil)
			fakeLedger.RegisterUserReturns(ledger.User{ID: 3, Address: senderAddr, Role: ledger.RoleRegular}, nil)
		})

		JustBeforeEach(func() {
			user, err = platform.RegisterUser(ctx, "a.token", msg)
		})

		It("should resolve the caller from the token subject", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).To(Equal(uint64(3)))

			Expect(fakeLedger.RegisterUserCallCount()).To(Equal(1))
			_, caller, address, _, _, role := fakeLedger.RegisterUserArgsForCall(0)
			Expect(caller).To(Equal(adminAddr))
			Expect(address).To(Equal(senderAddr))
			Expect(role).To(Equal(ledger.RoleRegular))

			Expect(fakeCreds.SaveCredentialCallCount()).To(Equal(0))
		})

		When("the message carries credentials", func() {
			BeforeEach(func() {
				msg.Username = "sender"
				msg.Password = "s3cret"

				fakeCreds.CredentialByUsernameReturns(repository.Credential{}, repository.ErrCredentialNotFound)
			})

			It("should store a hashed credential for the new user", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeCreds.SaveCredentialCallCount()).To(Equal(1))
				_, credential := fakeCreds.SaveCredentialArgsForCall(0)
				Expect(credential.Username).To(Equal("sender"))
				Expect(credential.Address).To(Equal(senderAddr))
				Expect(bcrypt.CompareHashAndPassword([]byte(credential.PasswordHash), []byte("s3cret"))).To(Succeed())
			})

			When("the username is already taken", func() {
				BeforeEach(func() {
					fakeCreds.CredentialByUsernameReturns(repository.Credential{Username: "sender"}, nil)
				})

				It("should refuse before creating the ledger user", func() {
					Expect(err).To(MatchError(core.ErrDuplicateUsername))
					Expect(fakeLedger.RegisterUserCallCount()).To(Equal(0))
					Expect(fakeCreds.SaveCredentialCallCount()).To(Equal(0))
				})
			})

			When("the ledger rejects the registration", func() {
				BeforeEach(func() {
					fakeLedger.RegisterUserReturns(ledger.User{}, ledger.ErrUnauthorized)
				})

				It("should not save a credential", func() {
					Expect(err).To(MatchError(ledger.ErrUnauthorized))
					Expect(fakeCreds.SaveCredentialCallCount()).To(Equal(0))
				})
			})

			When("the credential cannot be saved", func() {
				BeforeEach(func() {
					fakeCreds.SaveCredentialReturns(fakeErr)
				})

				It("should return the registered user with a credential not saved error", func() {
					Expect(err).To(MatchError(core.ErrCredentialNotSaved))
					Expect(user.ID).To(Equal(uint64(3)))
				})
			})
		})

		When("the token is not valid", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(nil, tokenIssuer.ErrTokenNotValid)
			})

			It("should return the error without touching the ledger", func() {
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
				Expect(fakeLedger.RegisterUserCallCount()).To(Equal(0))
			})
		})

		When("the subject claim is missing", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{}, nil)
			})

			It("should return a token not valid error", func() {
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})

		When("the ledger rejects the registration", func() {
			BeforeEach(func() {
				fakeLedger.RegisterUserReturns(ledger.User{}, ledger.ErrUnauthorized)
			})

			It("should pass the error through", func() {
				Expect(err).To(MatchError(ledger.ErrUnauthorized))
			})
		})
	})

	Describe("CreateTransaction", func() {
		BeforeEach(func() {
			fakeJWT.ValidateReturns(jwt.MapClaims{"sub": senderAddr}, nil)
			fakeLedger.CreateTransactionReturns(ledger.Transaction{ID: 7, From: senderAddr}, nil)
		})

		It("should delegate with the token subject as sender", func() {
			msg := core.CreateTransactionMessage{
				To:          adminAddr,
				Amount:      big.NewInt(1500),
				Description: "invoice 42",
			}

			tx, err := platform.CreateTransaction(ctx, "a.token", msg)

			Expect(err).NotTo(HaveOccurred())
			Expect(tx.ID).To(Equal(uint64(7)))

			_, caller, to, amount, description := fakeLedger.CreateTransactionArgsForCall(0)
			Expect(caller).To(Equal(senderAddr))
			Expect(to).To(Equal(adminAddr))
			Expect(amount.String()).To(Equal("1500"))
			Expect(description).To(Equal("invoice 42"))
		})
	})

	Describe("User", func() {
		BeforeEach(func() {
			fakeLedger.UserReturns(ledger.User{Address: senderAddr, Role: ledger.RoleRegular, Active: true}, nil)
		})

		It("should serve repeated reads from the cache", func() {
			for i := 0; i < 3; i++ {
				user, err := platform.User(ctx, senderAddr)
				Expect(err).NotTo(HaveOccurred())
				Expect(user.Address).To(Equal(senderAddr))
			}

			Expect(fakeLedger.UserCallCount()).To(Equal(1))
		})

		It("should refetch after a user event for the address", func() {
			_, err := platform.User(ctx, senderAddr)
			Expect(err).NotTo(HaveOccurred())

			bus.Publish(ledger.Event{Kind: ledger.EventUserRoleUpdated, Address: senderAddr})

			_, err = platform.User(ctx, senderAddr)
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeLedger.UserCallCount()).To(Equal(2))
		})

		It("should keep serving cached reads after events for other addresses", func() {
			_, err := platform.User(ctx, senderAddr)
			Expect(err).NotTo(HaveOccurred())

			bus.Publish(ledger.Event{Kind: ledger.EventUserRegistered, Address: adminAddr})

			_, err = platform.User(ctx, senderAddr)
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeLedger.UserCallCount()).To(Equal(1))
		})

		It("should not cache a failed read", func() {
			fakeLedger.UserReturnsOnCall(0, ledger.User{}, fakeErr)

			_, err := platform.User(ctx, senderAddr)
			Expect(err).To(MatchError(fakeErr))

			_, err = platform.User(ctx, senderAddr)
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeLedger.UserCallCount()).To(Equal(2))
		})
	})

	Describe("Transaction", func() {
		BeforeEach(func() {
			fakeLedger.TransactionReturns(ledger.Transaction{ID: 7, From: senderAddr, Status: ledger.TxPending}, nil)
		})

		It("should refetch after a status update event", func() {
			_, err := platform.Transaction(ctx, 7)
			Expect(err).NotTo(HaveOccurred())

			bus.Publish(ledger.Event{
				Kind:          ledger.EventTransactionStatusUpdated,
				TransactionID: 7,
				From:          senderAddr,
				To:            adminAddr,
				TxStatus:      ledger.TxActive,
			})

			_, err = platform.Transaction(ctx, 7)
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeLedger.TransactionCallCount()).To(Equal(2))
		})

		It("should refetch after a settlement confirmation", func() {
			_, err := platform.Transaction(ctx, 7)
			Expect(err).NotTo(HaveOccurred())

			bus.Publish(ledger.Event{
				Kind:           ledger.EventSettlementConfirmed,
				SettlementHash: "0xdeadbeef",
			})

			_, err = platform.Transaction(ctx, 7)
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeLedger.TransactionCallCount()).To(Equal(2))
		})
	})

	Describe("UserTransactions", func() {
		BeforeEach(func() {
			fakeJWT.ValidateReturns(jwt.MapClaims{"sub": senderAddr}, nil)
			fakeLedger.UserTransactionsReturns([]ledger.Transaction{{ID: 7, From: senderAddr}}, nil)
		})

		It("should cache per caller address", func() {
			for i := 0; i < 2; i++ {
				transactions, err := platform.UserTransactions(ctx, "a.token")
				Expect(err).NotTo(HaveOccurred())
				Expect(transactions).To(HaveLen(1))
			}

			Expect(fakeLedger.UserTransactionsCallCount()).To(Equal(1))
			_, address := fakeLedger.UserTransactionsArgsForCall(0)
			Expect(address).To(Equal(senderAddr))
		})

		It("should refetch after the caller participates in a new transaction", func() {
			_, err := platform.UserTransactions(ctx, "a.token")
			Expect(err).NotTo(HaveOccurred())

			bus.Publish(ledger.Event{
				Kind:          ledger.EventTransactionCreated,
				TransactionID: 9,
				From:          senderAddr,
				To:            adminAddr,
			})

			_, err = platform.UserTransactions(ctx, "a.token")
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeLedger.UserTransactionsCallCount()).To(Equal(2))
		})
	})

	Describe("PendingApprovals", func() {
		BeforeEach(func() {
			fakeLedger.PendingApprovalsReturns([]ledger.Approval{{ID: 11, Status: ledger.ApprovalPending}}, nil)
		})

		It("should refetch after an approval is processed", func() {
			_, err := platform.PendingApprovals(ctx)
			Expect(err).NotTo(HaveOccurred())

			bus.Publish(ledger.Event{
				Kind:          ledger.EventApprovalProcessed,
				ApprovalID:    11,
				TransactionID: 7,
			})

			_, err = platform.PendingApprovals(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeLedger.PendingApprovalsCallCount()).To(Equal(2))
		})
	})

	Describe("Metrics", func() {
		BeforeEach(func() {
			fakeLedger.MetricsReturns(ledger.Metrics{Users: 4, Transactions: 9, Approvals: 2}, nil)
		})

		It("should serve cached metrics and refetch after a registration", func() {
			metrics, err := platform.Metrics(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(metrics.Users).To(Equal(int64(4)))

			_, err = platform.Metrics(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeLedger.MetricsCallCount()).To(Equal(1))

			bus.Publish(ledger.Event{Kind: ledger.EventUserRegistered, Address: senderAddr})

			_, err = platform.Metrics(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeLedger.MetricsCallCount()).To(Equal(2))
		})
	})

	Describe("Close", func() {
		BeforeEach(func() {
			fakeLedger.UserReturns(ledger.User{Address: senderAddr, Active: true}, nil)
		})

		It("should stop reacting to events", func() {
			_, err := platform.User(ctx, senderAddr)
			Expect(err).NotTo(HaveOccurred())

			platform.Close()
			bus.Publish(ledger.Event{Kind: ledger.EventUserRoleUpdated, Address: senderAddr})

			_, err = platform.User(ctx, senderAddr)
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeLedger.UserCallCount()).To(Equal(1))
		})
	})
})
