package events_test

import (
	"finledger/internal/events"
	"finledger/internal/ledger"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Bus", func() {
	var bus *events.Bus

	BeforeEach(func() {
		bus = events.NewBus(zap.NewNop().Sugar())
	})

	Describe("Publish", func() {
		It("should deliver the event to every subscriber of its kind", func() {
			var first, second []ledger.Event

			subA := bus.Subscribe(ledger.EventTransactionCreated, func(event ledger.Event) {
				first = append(first, event)
			})
			defer subA.Close()
			subB := bus.Subscribe(ledger.EventTransactionCreated, func(event ledger.Event) {
				second = append(second, event)
			})
			defer subB.Close()

			bus.Publish(ledger.Event{Kind: ledger.EventTransactionCreated, TransactionID: 7})

			Expect(first).To(HaveLen(1))
			Expect(second).To(HaveLen(1))
			Expect(first[0].TransactionID).To(Equal(uint64(7)))
		})

		It("should not deliver events of other kinds", func() {
			var received []ledger.Event

			sub := bus.Subscribe(ledger.EventUserRegistered, func(event ledger.Event) {
				received = append(received, event)
			})
			defer sub.Close()

			bus.Publish(ledger.Event{Kind: ledger.EventTransactionCreated})

			Expect(received).To(BeEmpty())
		})

		It("should dispatch synchronously", func() {
			handled := false

			sub := bus.Subscribe(ledger.EventSettlementConfirmed, func(ledger.Event) {
				handled = true
			})
			defer sub.Close()

			bus.Publish(ledger.Event{Kind: ledger.EventSettlementConfirmed})

			Expect(handled).To(BeTrue())
		})

		It("should be a no-op with no subscribers", func() {
			Expect(func() {
				bus.Publish(ledger.Event{Kind: ledger.EventUserRoleUpdated})
			}).NotTo(Panic())
		})
	})

	Describe("Subscription", func() {
		It("should stop delivery after Close", func() {
			count := 0
			sub := bus.Subscribe(ledger.EventApprovalProcessed, func(ledger.Event) {
				count++
			})

			bus.Publish(ledger.Event{Kind: ledger.EventApprovalProcessed})
			sub.Close()
			bus.Publish(ledger.Event{Kind: ledger.EventApprovalProcessed})

			Expect(count).To(Equal(1))
		})

		It("should tolerate a double Close", func() {
			sub := bus.Subscribe(ledger.EventApprovalProcessed, func(ledger.Event) {})

			sub.Close()
			Expect(sub.Close).NotTo(Panic())
		})

		It("should keep other subscriptions of the same kind alive", func() {
			var kept int
			subA := bus.Subscribe(ledger.EventApprovalRequested, func(ledger.Event) {})
			subB := bus.Subscribe(ledger.EventApprovalRequested, func(ledger.Event) {
				kept++
			})
			defer subB.Close()

			subA.Close()
			bus.Publish(ledger.Event{Kind: ledger.EventApprovalRequested})

			Expect(kept).To(Equal(1))
		})
	})
})
