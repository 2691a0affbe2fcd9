package chain_test

import (
	"context"
	"math/big"

	"finledger/internal/chain"
	"finledger/internal/chain/fake"
	"finledger/internal/ledger"
	ledgerfake "finledger/internal/ledger/fake"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

type stubSubscription struct {
	errCh chan error
}

func (s stubSubscription) Unsubscribe() {}

func (s stubSubscription) Err() <-chan error {
	return s.errCh
}

var _ = Describe("Watcher", func() {
	var (
		fakeClient *fake.EthClient
		fakeEvents *ledgerfake.Publisher
		watcher    *chain.Watcher

		ctx    context.Context
		cancel context.CancelFunc
		done   chan struct{}
		logCh  chan<- types.Log
		subbed chan struct{}
	)

	BeforeEach(func() {
		fakeClient = new(fake.EthClient)
		fakeEvents = new(ledgerfake.Publisher)
		watcher = chain.NewWatcher(zap.NewNop().Sugar(), fakeClient, testTokenAddress, fakeEvents)

		subbed = make(chan struct{}, 1)
		fakeClient.SubscribeFilterLogsCalls(func(_ context.Context, _ ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
			logCh = ch
			subbed <- struct{}{}
			return stubSubscription{errCh: make(chan error)}, nil
		})

		ctx, cancel = context.WithCancel(context.Background())
		done = make(chan struct{})
		go func() {
			defer close(done)
			watcher.Run(ctx)
		}()
		Eventually(subbed).Should(Receive())
	})

	AfterEach(func() {
		cancel()
		Eventually(done).Should(BeClosed())
	})

	It("should subscribe to transfer logs of the token contract", func() {
		_, query, _ := fakeClient.SubscribeFilterLogsArgsForCall(0)

		Expect(query.Addresses).To(ConsistOf([]common.Address{common.HexToAddress(testTokenAddress)}))
		Expect(query.Topics).To(HaveLen(1))
		Expect(query.Topics[0]).To(ConsistOf([]common.Hash{crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))}))
	})

	It("should publish a settlement confirmation for each transfer log", func() {
		from := common.HexToAddress("0x00000000000000000000000000000000000000c3")
		to := common.HexToAddress("0x00000000000000000000000000000000000000d4")
		txHash := common.HexToHash("0xdeadbeef")

		logCh <- types.Log{
			Address: common.HexToAddress(testTokenAddress),
			Topics: []common.Hash{
				crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)")),
				common.BytesToHash(from.Bytes()),
				common.BytesToHash(to.Bytes()),
			},
			Data:   big.NewInt(1500).FillBytes(make([]byte, 32)),
			TxHash: txHash,
		}

		Eventually(fakeEvents.PublishCallCount).Should(Equal(1))
		event := fakeEvents.PublishArgsForCall(0)
		Expect(event.Kind).To(Equal(ledger.EventSettlementConfirmed))
		Expect(event.From).To(Equal(from.Hex()))
		Expect(event.To).To(Equal(to.Hex()))
		Expect(event.Amount).To(Equal("1500"))
		Expect(event.SettlementHash).To(Equal(txHash.Hex()))
	})

	It("should skip logs without indexed transfer parties", func() {
		logCh <- types.Log{
			Address: common.HexToAddress(testTokenAddress),
			Topics:  []common.Hash{crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))},
		}

		Consistently(fakeEvents.PublishCallCount).Should(Equal(0))
	})
})
