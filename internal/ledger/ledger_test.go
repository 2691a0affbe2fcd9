package ledger_test

import (
	"context"
	"errors"
	"math/big"

	"finledger/internal/ledger"
	"finledger/internal/ledger/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Ledger", func() {
	const (
		adminAddr     = "0x00000000000000000000000000000000000000a1"
		managerAddr   = "0x00000000000000000000000000000000000000b2"
		senderAddr    = "0x00000000000000000000000000000000000000c3"
		recipientAddr = "0x00000000000000000000000000000000000000d4"
		strangerAddr  = "0x00000000000000000000000000000000000000e5"
	)

	var (
		fakeStore   *fake.Store
		fakeEvents  *fake.Publisher
		fakeSettler *fake.Settler
		ctx         context.Context

		ldgr *ledger.Ledger

		fakeErr error
	)

	users := map[string]ledger.User{
		adminAddr:     {ID: 1, Address: adminAddr, Name: "Admin", Role: ledger.RoleAdmin, Active: true},
		managerAddr:   {ID: 2, Address: managerAddr, Name: "Manager", Role: ledger.RoleManager, Active: true},
		senderAddr:    {ID: 3, Address: senderAddr, Name: "Sender", Role: ledger.RoleRegular, Active: true},
		recipientAddr: {ID: 4, Address: recipientAddr, Name: "Recipient", Role: ledger.RoleRegular, Active: true},
	}

	BeforeEach(func() {
		fakeStore = new(fake.Store)
		fakeEvents = new(fake.Publisher)
		fakeSettler = new(fake.Settler)
		ctx = context.Background()

		fakeStore.UserByAddressCalls(func(_ context.Context, address string) (ledger.User, error) {
			user, ok := users[address]
			if !ok {
				return ledger.User{}, ledger.ErrNotFound
			}
			return user, nil
		})

		ldgr = ledger.NewLedger(zap.NewNop().Sugar(), fakeStore, fakeEvents, fakeSettler)

		fakeErr = errors.New("fake error")
	})

	Describe("RegisterUser", func() {
		var (
			caller  string
			address string
			role    ledger.Role
			user    ledger.User
			err     error
		)

		BeforeEach(func() {
			caller = adminAddr
			address = strangerAddr
			role = ledger.RoleRegular
		})

		JustBeforeEach(func() {
			user, err = ldgr.RegisterUser(ctx, caller, address, "Eve", "eve@example.com", role)
		})

		When("the caller is an admin and the address is free", func() {
			It("should create an active user and publish an event", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.Address).To(Equal(address))
				Expect(user.Role).To(Equal(ledger.RoleRegular))
				Expect(user.Active).To(BeTrue())

				Expect(fakeStore.CreateUserCallCount()).To(Equal(1))
				_, created := fakeStore.CreateUserArgsForCall(0)
				Expect(created.Address).To(Equal(address))

				Expect(fakeEvents.PublishCallCount()).To(Equal(1))
				event := fakeEvents.PublishArgsForCall(0)
				Expect(event.Kind).To(Equal(ledger.EventUserRegistered))
				Expect(event.Address).To(Equal(address))
			})
		})

		When("the caller is a regular user", func() {
			BeforeEach(func() {
				caller = senderAddr
			})

			It("should return unauthorized and write nothing", func() {
				Expect(err).To(MatchError(ledger.ErrUnauthorized))
				Expect(fakeStore.CreateUserCallCount()).To(Equal(0))
				Expect(fakeEvents.PublishCallCount()).To(Equal(0))
			})
		})

		When("the caller is not registered", func() {
			BeforeEach(func() {
				caller = strangerAddr
			})

			It("should return unauthorized", func() {
				Expect(err).To(MatchError(ledger.ErrUnauthorized))
			})
		})

		When("the address is already registered", func() {
			BeforeEach(func() {
				address = senderAddr
			})

			It("should return duplicate address error", func() {
				Expect(err).To(MatchError(ledger.ErrDuplicateAddress))
				Expect(fakeStore.CreateUserCallCount()).To(Equal(0))
			})
		})

		When("the role is out of range", func() {
			BeforeEach(func() {
				role = ledger.RoleUnknown
			})

			It("should return invalid state error", func() {
				Expect(err).To(MatchError(ledger.ErrInvalidState))
			})
		})

		When("the store write fails", func() {
			BeforeEach(func() {
				fakeStore.CreateUserReturns(fakeErr)
			})

			It("should return the error and publish nothing", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeEvents.PublishCallCount()).To(Equal(0))
			})
		})
	})

	Describe("UpdateUserRole", func() {
		var (
			caller string
			user   ledger.User
			err    error
		)

		BeforeEach(func() {
			caller = adminAddr
		})

		JustBeforeEach(func() {
			user, err = ldgr.UpdateUserRole(ctx, caller, senderAddr, ledger.RoleManager)
		})

		When("the caller is an admin", func() {
			It("should update the role in place", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.Role).To(Equal(ledger.RoleManager))

				Expect(fakeStore.UpdateUserCallCount()).To(Equal(1))
				_, updated := fakeStore.UpdateUserArgsForCall(0)
				Expect(updated.ID).To(Equal(uint64(3)))
				Expect(updated.Role).To(Equal(ledger.RoleManager))

				Expect(fakeEvents.PublishCallCount()).To(Equal(1))
				Expect(fakeEvents.PublishArgsForCall(0).Kind).To(Equal(ledger.EventUserRoleUpdated))
			})
		})

		When("the caller is a manager", func() {
			BeforeEach(func() {
				caller = managerAddr
			})

			It("should return unauthorized", func() {
				Expect(err).To(MatchError(ledger.ErrUnauthorized))
				Expect(fakeStore.UpdateUserCallCount()).To(Equal(0))
			})
		})
	})

	Describe("CreateTransaction", func() {
		var (
			caller string
			to     string
			amount *big.Int
			tx     ledger.Transaction
			err    error
		)

		BeforeEach(func() {
			caller = senderAddr
			to = recipientAddr
			amount = big.NewInt(1500)
		})

		JustBeforeEach(func() {
			tx, err = ldgr.CreateTransaction(ctx, caller, to, amount, "invoice 42")
		})

		When("the sender and recipient are registered", func() {
			It("should create a pending transaction and publish an event", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(tx.From).To(Equal(senderAddr))
				Expect(tx.To).To(Equal(recipientAddr))
				Expect(tx.Amount.String()).To(Equal("1500"))
				Expect(tx.Status).To(Equal(ledger.TxPending))
				Expect(tx.ApprovalID).To(BeZero())

				Expect(fakeStore.CreateTransactionCallCount()).To(Equal(1))
				Expect(fakeEvents.PublishCallCount()).To(Equal(1))
				Expect(fakeEvents.PublishArgsForCall(0).Kind).To(Equal(ledger.EventTransactionCreated))
			})
		})

		When("the amount is zero", func() {
			BeforeEach(func() {
				amount = big.NewInt(0)
			})

			It("should return invalid amount error", func() {
				Expect(err).To(MatchError(ledger.ErrInvalidAmount))
				Expect(fakeStore.CreateTransactionCallCount()).To(Equal(0))
			})
		})

		When("the amount is nil", func() {
			BeforeEach(func() {
				amount = nil
			})

			It("should return invalid amount error", func() {
				Expect(err).To(MatchError(ledger.ErrInvalidAmount))
			})
		})

		When("the recipient is not registered", func() {
			BeforeEach(func() {
				to = strangerAddr
			})

			It("should return invalid recipient error", func() {
				Expect(err).To(MatchError(ledger.ErrInvalidRecipient))
				Expect(fakeStore.CreateTransactionCallCount()).To(Equal(0))
			})
		})

		When("the sender is deactivated", func() {
			BeforeEach(func() {
				inactive := users[senderAddr]
				inactive.Active = false
				fakeStore.UserByAddressCalls(func(_ context.Context, address string) (ledger.User, error) {
					if address == senderAddr {
						return inactive, nil
					}
					return users[address], nil
				})
			})

			It("should return unauthorized", func() {
				Expect(err).To(MatchError(ledger.ErrUnauthorized))
			})
		})
	})

	Describe("RequestApproval", func() {
		var (
			caller   string
			reason   string
			approval ledger.Approval
			err      error
		)

		BeforeEach(func() {
			caller = senderAddr
			reason = "supplier payment"

			fakeStore.TransactionByIDReturns(ledger.Transaction{
				ID:     7,
				From:   senderAddr,
				To:     recipientAddr,
				Amount: big.NewInt(1500),
				Status: ledger.TxPending,
			}, nil)
			fakeStore.CreateApprovalAndLinkCalls(func(_ context.Context, a *ledger.Approval, tx *ledger.Transaction) error {
				a.ID = 11
				tx.ApprovalID = a.ID
				return nil
			})
		})

		JustBeforeEach(func() {
			approval, err = ldgr.RequestApproval(ctx, caller, 7, reason)
		})

		When("the sender requests approval on a pending transaction", func() {
			It("should create a pending approval and link it in one store write", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(approval.ID).To(Equal(uint64(11)))
				Expect(approval.TransactionID).To(Equal(uint64(7)))
				Expect(approval.Status).To(Equal(ledger.ApprovalPending))
				Expect(approval.Type).To(Equal(ledger.ApprovalTypeTransaction))
				Expect(approval.Requester).To(Equal(senderAddr))

				Expect(fakeStore.CreateApprovalAndLinkCallCount()).To(Equal(1))
				_, created, linked := fakeStore.CreateApprovalAndLinkArgsForCall(0)
				Expect(created.TransactionID).To(Equal(uint64(7)))
				Expect(linked.ID).To(Equal(uint64(7)))

				Expect(fakeEvents.PublishCallCount()).To(Equal(1))
				Expect(fakeEvents.PublishArgsForCall(0).Kind).To(Equal(ledger.EventApprovalRequested))
			})
		})

		When("the store write fails", func() {
			BeforeEach(func() {
				writes := 0
				fakeStore.CreateApprovalAndLinkCalls(func(_ context.Context, a *ledger.Approval, tx *ledger.Transaction) error {
					writes++
					if writes == 1 {
						return fakeErr
					}
					a.ID = 11
					tx.ApprovalID = a.ID
					return nil
				})
			})

			It("should publish nothing and allow a fresh request afterwards", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeEvents.PublishCallCount()).To(Equal(0))

				// the failed write rolled back, so the transaction still has
				// no linked approval and the retry goes through
				retried, retryErr := ldgr.RequestApproval(ctx, caller, 7, reason)
				Expect(retryErr).NotTo(HaveOccurred())
				Expect(retried.ID).To(Equal(uint64(11)))
			})
		})

		When("the reason is empty", func() {
			BeforeEach(func() {
				reason = ""
			})

			It("should return reason required error", func() {
				Expect(err).To(MatchError(ledger.ErrReasonRequired))
				Expect(fakeStore.CreateApprovalAndLinkCallCount()).To(Equal(0))
			})
		})

		When("the caller is not the sender", func() {
			BeforeEach(func() {
				caller = recipientAddr
			})

			It("should return not owner error", func() {
				Expect(err).To(MatchError(ledger.ErrNotOwner))
				Expect(fakeStore.CreateApprovalAndLinkCallCount()).To(Equal(0))
			})
		})

		When("the transaction already has an approval", func() {
			BeforeEach(func() {
				fakeStore.TransactionByIDReturns(ledger.Transaction{
					ID:         7,
					From:       senderAddr,
					Status:     ledger.TxPending,
					ApprovalID: 5,
				}, nil)
			})

			It("should return invalid state error", func() {
				Expect(err).To(MatchError(ledger.ErrInvalidState))
				Expect(fakeStore.CreateApprovalAndLinkCallCount()).To(Equal(0))
			})
		})

		When("the transaction is not pending", func() {
			BeforeEach(func() {
				fakeStore.TransactionByIDReturns(ledger.Transaction{
					ID:     7,
					From:   senderAddr,
					Status: ledger.TxRejected,
				}, nil)
			})

			It("should return invalid state error", func() {
				Expect(err).To(MatchError(ledger.ErrInvalidState))
			})
		})

		When("the transaction does not exist", func() {
			BeforeEach(func() {
				fakeStore.TransactionByIDReturns(ledger.Transaction{}, ledger.ErrNotFound)
			})

			It("should return transaction not found error", func() {
				Expect(err).To(MatchError(ledger.ErrTransactionNotFound))
			})
		})
	})

	Describe("ProcessApproval", func() {
		var (
			caller   string
			approved bool
			reason   string
			approval ledger.Approval
			err      error
		)

		BeforeEach(func() {
			caller = managerAddr
			approved = true
			reason = "looks good"

			fakeStore.ApprovalByIDReturns(ledger.Approval{
				ID:            11,
				TransactionID: 7,
				Requester:     senderAddr,
				Type:          ledger.ApprovalTypeTransaction,
				Status:        ledger.ApprovalPending,
				Reason:        "supplier payment",
			}, nil)
			fakeStore.TransactionByIDReturns(ledger.Transaction{
				ID:         7,
				From:       senderAddr,
				To:         recipientAddr,
				Amount:     big.NewInt(1500),
				Status:     ledger.TxPending,
				ApprovalID: 11,
			}, nil)
		})

		JustBeforeEach(func() {
			approval, err = ldgr.ProcessApproval(ctx, caller, 11, approved, reason)
		})

		When("a manager approves", func() {
			It("should approve and activate the transaction in one store write", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(approval.Status).To(Equal(ledger.ApprovalApproved))
				Expect(approval.Approver).To(Equal(managerAddr))
				Expect(approval.Reason).To(Equal("looks good"))

				Expect(fakeStore.DecideApprovalCallCount()).To(Equal(1))
				_, decided, updatedTx := fakeStore.DecideApprovalArgsForCall(0)
				Expect(decided.Status).To(Equal(ledger.ApprovalApproved))
				Expect(updatedTx.Status).To(Equal(ledger.TxActive))

				Expect(fakeEvents.PublishCallCount()).To(Equal(2))
				Expect(fakeEvents.PublishArgsForCall(0).Kind).To(Equal(ledger.EventApprovalProcessed))
				Expect(fakeEvents.PublishArgsForCall(1).Kind).To(Equal(ledger.EventTransactionStatusUpdated))
				Expect(fakeEvents.PublishArgsForCall(1).TxStatus).To(Equal(ledger.TxActive))
			})
		})

		When("a manager rejects", func() {
			BeforeEach(func() {
				approved = false
				reason = "over budget"
			})

			It("should reject the approval and the transaction", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(approval.Status).To(Equal(ledger.ApprovalRejected))

				_, decided, updatedTx := fakeStore.DecideApprovalArgsForCall(0)
				Expect(decided.Status).To(Equal(ledger.ApprovalRejected))
				Expect(updatedTx.Status).To(Equal(ledger.TxRejected))
			})
		})

		When("the store write fails", func() {
			BeforeEach(func() {
				fakeStore.DecideApprovalReturnsOnCall(0, fakeErr)
			})

			It("should publish nothing and let a retry decide the approval", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeEvents.PublishCallCount()).To(Equal(0))

				// the rolled-back write left the approval pending, so the
				// same decision can be retried and activates the transaction
				retried, retryErr := ldgr.ProcessApproval(ctx, caller, 11, true, "looks good")
				Expect(retryErr).NotTo(HaveOccurred())
				Expect(retried.Status).To(Equal(ledger.ApprovalApproved))

				Expect(fakeStore.DecideApprovalCallCount()).To(Equal(2))
				_, _, updatedTx := fakeStore.DecideApprovalArgsForCall(1)
				Expect(updatedTx.Status).To(Equal(ledger.TxActive))
			})
		})

		When("an admin decides", func() {
			BeforeEach(func() {
				caller = adminAddr
			})

			It("should be allowed", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(approval.Approver).To(Equal(adminAddr))
			})
		})

		When("a regular user decides", func() {
			BeforeEach(func() {
				caller = senderAddr
			})

			It("should return unauthorized and change nothing", func() {
				Expect(err).To(MatchError(ledger.ErrUnauthorized))
				Expect(fakeStore.DecideApprovalCallCount()).To(Equal(0))
				Expect(fakeEvents.PublishCallCount()).To(Equal(0))
			})
		})

		When("the approval is already decided", func() {
			BeforeEach(func() {
				fakeStore.ApprovalByIDReturns(ledger.Approval{
					ID:            11,
					TransactionID: 7,
					Status:        ledger.ApprovalApproved,
					Approver:      adminAddr,
					Reason:        "looks good",
				}, nil)
			})

			It("should return invalid state error and keep the original decision", func() {
				Expect(err).To(MatchError(ledger.ErrInvalidState))
				Expect(fakeStore.DecideApprovalCallCount()).To(Equal(0))
			})
		})

		When("the reason is empty", func() {
			BeforeEach(func() {
				reason = ""
			})

			It("should return reason required error", func() {
				Expect(err).To(MatchError(ledger.ErrReasonRequired))
			})
		})

		When("the approval does not exist", func() {
			BeforeEach(func() {
				fakeStore.ApprovalByIDReturns(ledger.Approval{}, ledger.ErrNotFound)
			})

			It("should return approval not found error", func() {
				Expect(err).To(MatchError(ledger.ErrApprovalNotFound))
			})
		})
	})

	Describe("CompleteTransaction", func() {
		var (
			caller string
			tx     ledger.Transaction
			err    error
		)

		BeforeEach(func() {
			caller = senderAddr

			fakeStore.TransactionByIDReturns(ledger.Transaction{
				ID:         7,
				From:       senderAddr,
				To:         recipientAddr,
				Amount:     big.NewInt(1500),
				Status:     ledger.TxActive,
				ApprovalID: 11,
			}, nil)
			fakeSettler.SettleReturns("0xdeadbeef", nil)
		})

		JustBeforeEach(func() {
			tx, err = ldgr.CompleteTransaction(ctx, caller, 7)
		})

		When("the sender completes an active transaction", func() {
			It("should settle first and then mark it completed", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(tx.Status).To(Equal(ledger.TxCompleted))
				Expect(tx.SettlementHash).To(Equal("0xdeadbeef"))

				Expect(fakeSettler.SettleCallCount()).To(Equal(1))
				_, settled := fakeSettler.SettleArgsForCall(0)
				Expect(settled.ID).To(Equal(uint64(7)))

				Expect(fakeStore.UpdateTransactionCallCount()).To(Equal(1))
				Expect(fakeEvents.PublishCallCount()).To(Equal(1))
				event := fakeEvents.PublishArgsForCall(0)
				Expect(event.Kind).To(Equal(ledger.EventTransactionStatusUpdated))
				Expect(event.SettlementHash).To(Equal("0xdeadbeef"))
			})
		})

		When("the settlement fails", func() {
			BeforeEach(func() {
				fakeSettler.SettleReturns("", fakeErr)
			})

			It("should leave the transaction active", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeStore.UpdateTransactionCallCount()).To(Equal(0))
				Expect(fakeEvents.PublishCallCount()).To(Equal(0))
			})
		})

		When("the transaction is still pending", func() {
			BeforeEach(func() {
				fakeStore.TransactionByIDReturns(ledger.Transaction{
					ID:     7,
					From:   senderAddr,
					Status: ledger.TxPending,
				}, nil)
			})

			It("should return invalid state error without settling", func() {
				Expect(err).To(MatchError(ledger.ErrInvalidState))
				Expect(fakeSettler.SettleCallCount()).To(Equal(0))
			})
		})

		When("the caller is not the sender", func() {
			BeforeEach(func() {
				caller = recipientAddr
			})

			It("should return not owner error", func() {
				Expect(err).To(MatchError(ledger.ErrNotOwner))
				Expect(fakeSettler.SettleCallCount()).To(Equal(0))
			})
		})
	})

	Describe("Metrics", func() {
		BeforeEach(func() {
			fakeStore.CountUsersReturns(4, nil)
			fakeStore.CountTransactionsReturns(9, nil)
			fakeStore.CountApprovalsReturns(2, nil)
		})

		It("should report entity counts", func() {
			metrics, err := ldgr.Metrics(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(metrics).To(Equal(ledger.Metrics{Users: 4, Transactions: 9, Approvals: 2}))
		})

		When("counting fails", func() {
			BeforeEach(func() {
				fakeStore.CountTransactionsReturns(0, fakeErr)
			})

			It("should return the error", func() {
				_, err := ldgr.Metrics(ctx)
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
