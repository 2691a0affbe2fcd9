package chain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"finledger/internal/ledger"
	"fmt"
	"math/big"
	"strings"
	"time"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"
)

const erc20TransferABI = `[{"constant":false,"inputs":[{"name":"to","type":"address"},{"name":"value","type":"uint256"}],"name":"transfer","outputs":[{"name":"","type":"bool"}],"type":"function"}]`

const settlementGasLimit = 100_000

var ErrSettlementReverted error = errors.New("settlement transaction reverted")
var ErrSettlementTimeout error = errors.New("timed out waiting for settlement confirmation")

// Anchor settles completed transfers by submitting a token transfer on the
// configured network and waiting for at least one confirmation. A submitted
// settlement is never retried; retrying a mined-but-unseen transaction would
// double-spend.
type Anchor struct {
	logs     *zap.SugaredLogger
	client   EthClient
	token    common.Address
	key      *ecdsa.PrivateKey
	operator common.Address
	token20  abi.ABI

	ConfirmTimeout time.Duration
	PollInterval   time.Duration
}

func NewAnchor(logger *zap.SugaredLogger, client EthClient, tokenAddress string, operatorKeyHex string) (*Anchor, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(operatorKeyHex, "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse operator key: %w", err)
	}

	token20, err := abi.JSON(strings.NewReader(erc20TransferABI))
	if err != nil {
		return nil, fmt.Errorf("parse token abi: %w", err)
	}

	return &Anchor{
		logs:           logger,
		client:         client,
		token:          common.HexToAddress(tokenAddress),
		key:            key,
		operator:       crypto.PubkeyToAddress(key.PublicKey),
		token20:        token20,
		ConfirmTimeout: 2 * time.Minute,
		PollInterval:   3 * time.Second,
	}, nil
}

// Settle submits transfer(to, amount) against the token contract and blocks
// until the transaction is mined or the confirmation timeout elapses.
func (a *Anchor) Settle(ctx context.Context, tx ledger.Transaction) (string, error) {
	nonce, err := a.client.PendingNonceAt(ctx, a.operator)
	if err != nil {
		return "", fmt.Errorf("get operator nonce: %w", err)
	}

	gasPrice, err := a.client.SuggestGasPrice(ctx)
	if err != nil {
		return "", fmt.Errorf("suggest gas price: %w", err)
	}

	chainID, err := a.client.ChainID(ctx)
	if err != nil {
		return "", fmt.Errorf("get chain id: %w", err)
	}

	data, err := a.token20.Pack("transfer", common.HexToAddress(tx.To), tx.Amount)
	if err != nil {
		return "", fmt.Errorf("pack transfer call: %w", err)
	}

	unsigned := types.NewTransaction(nonce, a.token, big.NewInt(0), settlementGasLimit, gasPrice, data)
	signed, err := types.SignTx(unsigned, types.LatestSignerForChainID(chainID), a.key)
	if err != nil {
		return "", fmt.Errorf("sign settlement: %w", err)
	}

	if err := a.client.SendTransaction(ctx, signed); err != nil {
		return "", fmt.Errorf("send settlement: %w", err)
	}

	a.logs.Infow("settlement submitted",
		"transactionId", tx.ID,
		"hash", signed.Hash().Hex(),
		"to", tx.To,
		"amount", tx.Amount.String())

	if err := a.waitMined(ctx, signed.Hash()); err != nil {
		return "", err
	}

	return signed.Hash().Hex(), nil
}

func (a *Anchor) waitMined(ctx context.Context, hash common.Hash) error {
	ctx, cancel := context.WithTimeout(ctx, a.ConfirmTimeout)
	defer cancel()

	ticker := time.NewTicker(a.PollInterval)
	defer ticker.Stop()

	for {
		receipt, err := a.client.TransactionReceipt(ctx, hash)
		if err != nil && !errors.Is(err, ethereum.NotFound) {
			return fmt.Errorf("get settlement receipt: %w", err)
		}
		if receipt != nil {
			if receipt.Status == types.ReceiptStatusFailed {
				return fmt.Errorf("%w: %s", ErrSettlementReverted, hash.Hex())
			}
			return nil
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %s", ErrSettlementTimeout, hash.Hex())
		case <-ticker.C:
		}
	}
}

// NoopAnchor settles locally without touching the chain. Used when no token
// contract is configured for the active network.
type NoopAnchor struct{}

func (NoopAnchor) Settle(ctx context.Context, tx ledger.Transaction) (string, error) {
	return "", nil
}
