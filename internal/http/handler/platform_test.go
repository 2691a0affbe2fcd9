package handler_test

import (
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"

	"finledger/internal/core"
	"finledger/internal/http/handler"
	"finledger/internal/http/handler/fake"
	"finledger/internal/ledger"
	tokenIssuer "finledger/pkg/jwt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("PlatformHandler", func() {
	const (
		senderAddr    = "0x00000000000000000000000000000000000000c3"
		recipientAddr = "0x00000000000000000000000000000000000000d4"
	)

	var (
		fakeService   *fake.PlatformService
		fakeValidator *fake.RequestValidator
		ph            *handler.PlatformHandler

		w   *httptest.ResponseRecorder
		req *http.Request

		response handler.Response
		fakeErr  error
	)

	BeforeEach(func() {
		fakeService = new(fake.PlatformService)
		fakeValidator = new(fake.RequestValidator)
		fakeErr = errors.New("fake error")

		fakeValidator.DecodeAndValidateJSONPayloadStub = func(r *http.Request, jsonPayload any) error {
			return json.NewDecoder(r.Body).Decode(jsonPayload)
		}

		w = httptest.NewRecorder()
		ph = handler.NewPlatformHandler(zap.NewNop().Sugar(), fakeValidator, fakeService)

		response = handler.Response{}
	})

	decode := func(target any) {
		Expect(json.NewDecoder(w.Body).Decode(target)).To(Succeed())
	}

	Describe("HandleAuthenticate", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"username":"alice","password":"testpass"}`)
			req = httptest.NewRequest("POST", "/platform/authenticate", body)
			fakeService.AuthenticateReturns("signed.token", nil)
		})

		JustBeforeEach(func() {
			ph.HandleAuthenticate(w, req)
		})

		When("authentication succeeds", func() {
			It("should return a token", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var tokenResp map[string]string
				decode(&tokenResp)
				Expect(tokenResp["token"]).To(Equal("signed.token"))

				Expect(fakeService.AuthenticateCallCount()).To(Equal(1))
				_, msg := fakeService.AuthenticateArgsForCall(0)
				Expect(msg).To(Equal(core.AuthMessage{Username: "alice", Password: "testpass"}))
			})
		})

		When("the password is incorrect", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns("", core.ErrIncorrectPassword)
			})

			It("should return 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				decode(&response)
				Expect(response.Error).To(Equal(core.ErrIncorrectPassword.Error()))
			})
		})

		When("the platform fails unexpectedly", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns("", fakeErr)
			})

			It("should return 500 without leaking the error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				decode(&response)
				Expect(response.Error).NotTo(ContainSubstring("fake error"))
			})
		})

		When("the payload is malformed", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("POST", "/platform/authenticate", strings.NewReader("{"))
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.AuthenticateCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleRegisterUser", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"address":"` + senderAddr + `","name":"Sender","email":"sender@example.com","role":0}`)
			req = httptest.NewRequest("POST", "/platform/users", body)
			req.Header.Set("AUTH_TOKEN", "a.token")

			fakeService.RegisterUserReturns(ledger.User{ID: 3, Address: senderAddr, Role: ledger.RoleRegular, Active: true}, nil)
		})

		JustBeforeEach(func() {
			ph.HandleRegisterUser(w, req)
		})

		When("registration succeeds", func() {
			It("should return 201 with the user view", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))

				decode(&response)
				Expect(response.Message).To(Equal("User registered"))

				Expect(fakeService.RegisterUserCallCount()).To(Equal(1))
				_, token, msg := fakeService.RegisterUserArgsForCall(0)
				Expect(token).To(Equal("a.token"))
				Expect(msg.Address).To(Equal(senderAddr))
				Expect(msg.Role).To(Equal(ledger.RoleRegular))
			})
		})

		When("the caller is not an admin", func() {
			BeforeEach(func() {
				fakeService.RegisterUserReturns(ledger.User{}, ledger.ErrUnauthorized)
			})

			It("should return 403", func() {
				Expect(w.Code).To(Equal(http.StatusForbidden))
			})
		})

		When("the address is taken", func() {
			BeforeEach(func() {
				fakeService.RegisterUserReturns(ledger.User{}, ledger.ErrDuplicateAddress)
			})

			It("should return 409", func() {
				Expect(w.Code).To(Equal(http.StatusConflict))
			})
		})

		When("the token is expired", func() {
			BeforeEach(func() {
				fakeService.RegisterUserReturns(ledger.User{}, tokenIssuer.ErrTokenExpired)
			})

			It("should return 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})

		When("the username is taken", func() {
			BeforeEach(func() {
				fakeService.RegisterUserReturns(ledger.User{}, core.ErrDuplicateUsername)
			})

			It("should return 409", func() {
				Expect(w.Code).To(Equal(http.StatusConflict))
			})
		})

		When("the user is created but the credential is not saved", func() {
			BeforeEach(func() {
				fakeService.RegisterUserReturns(
					ledger.User{ID: 3, Address: senderAddr, Role: ledger.RoleRegular, Active: true},
					core.ErrCredentialNotSaved)
			})

			It("should return 201 with the user and the credential error", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))

				var userResp struct {
					Message string           `json:"message"`
					Data    handler.UserView `json:"data"`
					Error   string           `json:"error"`
				}
				decode(&userResp)
				Expect(userResp.Message).To(Equal("User registered, login credential not saved"))
				Expect(userResp.Data.Address).To(Equal(senderAddr))
				Expect(userResp.Error).To(ContainSubstring("credential was not saved"))
			})
		})
	})

	Describe("HandleGetUser", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/platform/users/"+senderAddr, nil)
			req.SetPathValue("address", senderAddr)

			fakeService.UserReturns(ledger.User{ID: 3, Address: senderAddr, Name: "Sender", Role: ledger.RoleRegular, Active: true}, nil)
		})

		JustBeforeEach(func() {
			ph.HandleGetUser(w, req)
		})

		It("should return the user view", func() {
			Expect(w.Code).To(Equal(http.StatusOK))

			var userResp struct {
				Data handler.UserView `json:"data"`
			}
			decode(&userResp)
			Expect(userResp.Data.Address).To(Equal(senderAddr))
			Expect(userResp.Data.Role).To(Equal("regular"))

			_, address := fakeService.UserArgsForCall(0)
			Expect(address).To(Equal(senderAddr))
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeService.UserReturns(ledger.User{}, ledger.ErrUserNotFound)
			})

			It("should return 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("HandleUpdateUserRole", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("PUT", "/platform/users/"+senderAddr+"/role", strings.NewReader(`{"role":1}`))
			req.SetPathValue("address", senderAddr)
			req.Header.Set("AUTH_TOKEN", "a.token")

			fakeService.UpdateUserRoleReturns(ledger.User{ID: 3, Address: senderAddr, Role: ledger.RoleManager, Active: true}, nil)
		})

		JustBeforeEach(func() {
			ph.HandleUpdateUserRole(w, req)
		})

		It("should pass the decoded role through", func() {
			Expect(w.Code).To(Equal(http.StatusOK))

			_, token, address, role := fakeService.UpdateUserRoleArgsForCall(0)
			Expect(token).To(Equal("a.token"))
			Expect(address).To(Equal(senderAddr))
			Expect(role).To(Equal(ledger.RoleManager))
		})
	})

	Describe("HandleCreateTransaction", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"to":"` + recipientAddr + `","amount":"1500","description":"invoice 42"}`)
			req = httptest.NewRequest("POST", "/platform/transactions", body)
			req.Header.Set("AUTH_TOKEN", "a.token")

			fakeService.CreateTransactionReturns(ledger.Transaction{
				ID:     7,
				From:   senderAddr,
				To:     recipientAddr,
				Amount: big.NewInt(1500),
				Status: ledger.TxPending,
			}, nil)
		})

		JustBeforeEach(func() {
			ph.HandleCreateTransaction(w, req)
		})

		When("the transaction is accepted", func() {
			It("should return 201 with a decimal amount", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))

				var txResp struct {
					Data handler.TransactionView `json:"data"`
				}
				decode(&txResp)
				Expect(txResp.Data.ID).To(Equal(uint64(7)))
				Expect(txResp.Data.Amount).To(Equal("1500"))
				Expect(txResp.Data.Status).To(Equal("pending"))

				_, token, msg := fakeService.CreateTransactionArgsForCall(0)
				Expect(token).To(Equal("a.token"))
				Expect(msg.To).To(Equal(recipientAddr))
				Expect(msg.Amount.String()).To(Equal("1500"))
			})
		})

		When("the recipient is not registered", func() {
			BeforeEach(func() {
				fakeService.CreateTransactionReturns(ledger.Transaction{}, ledger.ErrInvalidRecipient)
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})
	})

	Describe("HandleGetTransaction", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/platform/transactions/7", nil)
			req.SetPathValue("id", "7")

			fakeService.TransactionReturns(ledger.Transaction{ID: 7, Amount: big.NewInt(1500), Status: ledger.TxActive}, nil)
		})

		JustBeforeEach(func() {
			ph.HandleGetTransaction(w, req)
		})

		It("should return the transaction view", func() {
			Expect(w.Code).To(Equal(http.StatusOK))

			_, id := fakeService.TransactionArgsForCall(0)
			Expect(id).To(Equal(uint64(7)))
		})

		When("the id is not numeric", func() {
			BeforeEach(func() {
				req.SetPathValue("id", "seven")
			})

			It("should return 400 without hitting the platform", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.TransactionCallCount()).To(Equal(0))
			})
		})

		When("the transaction does not exist", func() {
			BeforeEach(func() {
				fakeService.TransactionReturns(ledger.Transaction{}, ledger.ErrTransactionNotFound)
			})

			It("should return 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("HandleCompleteTransaction", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/platform/transactions/7/complete", nil)
			req.SetPathValue("id", "7")
			req.Header.Set("AUTH_TOKEN", "a.token")

			fakeService.CompleteTransactionReturns(ledger.Transaction{
				ID:             7,
				Amount:         big.NewInt(1500),
				Status:         ledger.TxCompleted,
				SettlementHash: "0xdeadbeef",
			}, nil)
		})

		JustBeforeEach(func() {
			ph.HandleCompleteTransaction(w, req)
		})

		It("should return the settled transaction", func() {
			Expect(w.Code).To(Equal(http.StatusOK))

			var txResp struct {
				Data handler.TransactionView `json:"data"`
			}
			decode(&txResp)
			Expect(txResp.Data.Status).To(Equal("completed"))
			Expect(txResp.Data.SettlementHash).To(Equal("0xdeadbeef"))
		})

		When("the transaction is not active", func() {
			BeforeEach(func() {
				fakeService.CompleteTransactionReturns(ledger.Transaction{}, ledger.ErrInvalidState)
			})

			It("should return 409", func() {
				Expect(w.Code).To(Equal(http.StatusConflict))
			})
		})

		When("the caller is not the sender", func() {
			BeforeEach(func() {
				fakeService.CompleteTransactionReturns(ledger.Transaction{}, ledger.ErrNotOwner)
			})

			It("should return 403", func() {
				Expect(w.Code).To(Equal(http.StatusForbidden))
			})
		})
	})

	Describe("HandleRequestApproval", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/platform/transactions/7/approval", strings.NewReader(`{"reason":"supplier payment"}`))
			req.SetPathValue("id", "7")
			req.Header.Set("AUTH_TOKEN", "a.token")

			fakeService.RequestApprovalReturns(ledger.Approval{
				ID:            11,
				TransactionID: 7,
				Requester:     senderAddr,
				Status:        ledger.ApprovalPending,
				Reason:        "supplier payment",
			}, nil)
		})

		JustBeforeEach(func() {
			ph.HandleRequestApproval(w, req)
		})

		It("should return 201 with the approval view", func() {
			Expect(w.Code).To(Equal(http.StatusCreated))

			_, token, id, reason := fakeService.RequestApprovalArgsForCall(0)
			Expect(token).To(Equal("a.token"))
			Expect(id).To(Equal(uint64(7)))
			Expect(reason).To(Equal("supplier payment"))
		})
	})

	Describe("HandleProcessApproval", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/platform/approvals/11/decision", strings.NewReader(`{"approved":true,"reason":"looks good"}`))
			req.SetPathValue("id", "11")
			req.Header.Set("AUTH_TOKEN", "a.token")

			fakeService.ProcessApprovalReturns(ledger.Approval{
				ID:            11,
				TransactionID: 7,
				Status:        ledger.ApprovalApproved,
				Reason:        "looks good",
			}, nil)
		})

		JustBeforeEach(func() {
			ph.HandleProcessApproval(w, req)
		})

		It("should pass the decision through", func() {
			Expect(w.Code).To(Equal(http.StatusOK))

			_, token, id, approved, reason := fakeService.ProcessApprovalArgsForCall(0)
			Expect(token).To(Equal("a.token"))
			Expect(id).To(Equal(uint64(11)))
			Expect(approved).To(BeTrue())
			Expect(reason).To(Equal("looks good"))
		})

		When("the approval is already decided", func() {
			BeforeEach(func() {
				fakeService.ProcessApprovalReturns(ledger.Approval{}, ledger.ErrInvalidState)
			})

			It("should return 409", func() {
				Expect(w.Code).To(Equal(http.StatusConflict))
			})
		})
	})

	Describe("HandleGetPendingApprovals", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/platform/approvals/pending", nil)
			fakeService.PendingApprovalsReturns([]ledger.Approval{
				{ID: 11, TransactionID: 7, Status: ledger.ApprovalPending},
			}, nil)
		})

		It("should list pending approvals", func() {
			ph.HandleGetPendingApprovals(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var approvalsResp struct {
				Data []handler.ApprovalView `json:"data"`
			}
			decode(&approvalsResp)
			Expect(approvalsResp.Data).To(HaveLen(1))
			Expect(approvalsResp.Data[0].Status).To(Equal("pending"))
		})
	})

	Describe("HandleGetMetrics", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/platform/metrics", nil)
			fakeService.MetricsReturns(ledger.Metrics{Users: 4, Transactions: 9, Approvals: 2}, nil)
		})

		It("should return entity counts", func() {
			ph.HandleGetMetrics(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var metricsResp struct {
				Data handler.MetricsView `json:"data"`
			}
			decode(&metricsResp)
			Expect(metricsResp.Data).To(Equal(handler.MetricsView{Users: 4, Transactions: 9, Approvals: 2}))
		})
	})
})
