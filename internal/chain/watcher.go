package chain

import (
	"context"
	"finledger/internal/ledger"
	"math/big"
	"time"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"
)

var transferTopic = crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))

// Watcher holds exactly one log subscription on the token contract and
// republishes confirmed settlements onto the event bus. Subscription loss is
// retried with bounded backoff; the published events only trigger cache
// invalidation, so redelivery after a resubscribe is harmless.
type Watcher struct {
	logs   *zap.SugaredLogger
	client EthClient
	token  common.Address
	events ledger.Publisher

	MaxBackoff time.Duration
}

func NewWatcher(logger *zap.SugaredLogger, client EthClient, tokenAddress string, events ledger.Publisher) *Watcher {
	return &Watcher{
		logs:       logger,
		client:     client,
		token:      common.HexToAddress(tokenAddress),
		events:     events,
		MaxBackoff: 30 * time.Second,
	}
}

// Run blocks until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) {
	backoff := time.Second

	for {
		err := w.watch(ctx)
		if ctx.Err() != nil {
			return
		}

		w.logs.Errorw("log subscription lost, resubscribing", "error", err, "backoff", backoff)

		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}

		backoff *= 2
		if backoff > w.MaxBackoff {
			backoff = w.MaxBackoff
		}
	}
}

func (w *Watcher) watch(ctx context.Context) error {
	query := ethereum.FilterQuery{
		Addresses: []common.Address{w.token},
		Topics:    [][]common.Hash{{transferTopic}},
	}

	logCh := make(chan types.Log)
	sub, err := w.client.SubscribeFilterLogs(ctx, query, logCh)
	if err != nil {
		return err
	}
	defer sub.Unsubscribe()

	w.logs.Infow("watching token transfers", "token", w.token.Hex())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-sub.Err():
			return err
		case vLog := <-logCh:
			w.handleLog(vLog)
		}
	}
}

func (w *Watcher) handleLog(vLog types.Log) {
	if len(vLog.Topics) < 3 {
		return
	}

	from := common.BytesToAddress(vLog.Topics[1].Bytes())
	to := common.BytesToAddress(vLog.Topics[2].Bytes())
	amount := new(big.Int).SetBytes(vLog.Data)

	w.logs.Infow("settlement confirmed on chain",
		"hash", vLog.TxHash.Hex(),
		"from", from.Hex(),
		"to", to.Hex(),
		"amount", amount.String())

	w.events.Publish(ledger.Event{
		Kind:           ledger.EventSettlementConfirmed,
		From:           from.Hex(),
		To:             to.Hex(),
		Amount:         amount.String(),
		SettlementHash: vLog.TxHash.Hex(),
	})
}
