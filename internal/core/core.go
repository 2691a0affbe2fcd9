package core

import (
	"context"
	"errors"
	"finledger/internal/cache"
	"finledger/internal/events"
	"finledger/internal/ledger"
	"finledger/internal/repository"
	tokenIssuer "finledger/pkg/jwt"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrUserNotFound error = errors.New("user not found")
var ErrDuplicateUsername error = errors.New("username is already taken")
var ErrCredentialNotSaved error = errors.New("user registered but the login credential was not saved")

const (
	entityTTL  = 30 * time.Second
	listTTL    = 15 * time.Second
	metricsTTL = 60 * time.Second

	approvalsRefreshInterval = 20 * time.Second
	metricsRefreshInterval   = 60 * time.Second
)

// Platform fronts the ledger for the API: it authenticates callers, submits
// mutations and serves reads through the invalidation-driven cache. Cache
// entries are only ever dropped in reaction to published events, never
// written ahead of a confirmed mutation.
type Platform struct {
	logs        *zap.SugaredLogger
	ledger      Ledger
	credentials CredentialStore
	jwtIssuer   TokenIssuer
	cache       *cache.Cache
	bus         *events.Bus
	chainID     uint64

	subs []*events.Subscription
}

func NewPlatform(
	logger *zap.SugaredLogger,
	ledgerService Ledger,
	credentials CredentialStore,
	jwt TokenIssuer,
	entityCache *cache.Cache,
	bus *events.Bus,
	chainID uint64,
) *Platform {
	p := &Platform{
		logs:        logger,
		ledger:      ledgerService,
		credentials: credentials,
		jwtIssuer:   jwt,
		cache:       entityCache,
		bus:         bus,
		chainID:     chainID,
	}
	p.watch()
	return p
}

// Close releases every event subscription the platform holds.
func (p *Platform) Close() {
	for _, sub := range p.subs {
		sub.Close()
	}
	p.subs = nil
}

// Authenticate checks credentials and issues a JWT carrying the caller's
// ledger address and role.
func (p *Platform) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	credential, err := p.credentials.CredentialByUsername(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("get credential: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(credential.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrIncorrectPassword
	}

	user, err := p.ledger.User(ctx, credential.Address)
	if err != nil {
		if errors.Is(err, ledger.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("get ledger user: %w", err)
	}

	tokenInfo := tokenIssuer.TokenInfo{
		UserName:   msg.Username,
		Subject:    user.Address,
		Role:       user.Role.String(),
		Expiration: 24,
	}
	token := p.jwtIssuer.Generate(tokenInfo)
	signed, err := p.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// RegisterUser creates the ledger user and, when the message carries
// credentials, the login bound to it. The username is checked and the
// password hashed before the ledger write, so the only write left to fail
// afterwards is the credential insert itself; that failure is reported as
// ErrCredentialNotSaved alongside the registered user rather than as a
// failed registration.
func (p *Platform) RegisterUser(ctx context.Context, token string, msg RegisterUserMessage) (ledger.User, error) {
	caller, err := p.callerAddress(token)
	if err != nil {
		return ledger.User{}, err
	}

	var hash []byte
	if msg.Username != "" {
		if _, err := p.credentials.CredentialByUsername(ctx, msg.Username); err == nil {
			return ledger.User{}, ErrDuplicateUsername
		} else if !errors.Is(err, repository.ErrCredentialNotFound) {
			return ledger.User{}, fmt.Errorf("check username: %w", err)
		}

		hash, err = bcrypt.GenerateFromPassword([]byte(msg.Password), bcrypt.DefaultCost)
		if err != nil {
			return ledger.User{}, fmt.Errorf("hash password: %w", err)
		}
	}

	user, err := p.ledger.RegisterUser(ctx, caller, msg.Address, msg.Name, msg.Email, msg.Role)
	if err != nil {
		return ledger.User{}, err
	}

	if msg.Username != "" {
		err = p.credentials.SaveCredential(ctx, repository.Credential{
			Username:     msg.Username,
			Address:      user.Address,
			PasswordHash: string(hash),
		})
		if err != nil {
			p.logs.Errorw("credential not saved for registered user",
				"address", user.Address,
				"username", msg.Username,
				"error", err)
			return user, fmt.Errorf("%w: %v", ErrCredentialNotSaved, err)
		}
	}

	return user, nil
}

func (p *Platform) UpdateUserRole(ctx context.Context, token, address string, role ledger.Role) (ledger.User, error) {
	caller, err := p.callerAddress(token)
	if err != nil {
		return ledger.User{}, err
	}
	return p.ledger.UpdateUserRole(ctx, caller, address, role)
}

func (p *Platform) CreateTransaction(ctx context.Context, token string, msg CreateTransactionMessage) (ledger.Transaction, error) {
	caller, err := p.callerAddress(token)
	if err != nil {
		return ledger.Transaction{}, err
	}
	return p.ledger.CreateTransaction(ctx, caller, msg.To, msg.Amount, msg.Description)
}

func (p *Platform) RequestApproval(ctx context.Context, token string, transactionID uint64, reason string) (ledger.Approval, error) {
	caller, err := p.callerAddress(token)
	if err != nil {
		return ledger.Approval{}, err
	}
	return p.ledger.RequestApproval(ctx, caller, transactionID, reason)
}

func (p *Platform) ProcessApproval(ctx context.Context, token string, approvalID uint64, approved bool, reason string) (ledger.Approval, error) {
	caller, err := p.callerAddress(token)
	if err != nil {
		return ledger.Approval{}, err
	}
	return p.ledger.ProcessApproval(ctx, caller, approvalID, approved, reason)
}

func (p *Platform) CompleteTransaction(ctx context.Context, token string, transactionID uint64) (ledger.Transaction, error) {
	caller, err := p.callerAddress(token)
	if err != nil {
		return ledger.Transaction{}, err
	}
	return p.ledger.CompleteTransaction(ctx, caller, transactionID)
}

func (p *Platform) User(ctx context.Context, address string) (ledger.User, error) {
	key := cache.Key{Kind: cache.KindUser, Ref: address, ChainID: p.chainID}
	value, err := p.cache.GetOrFetch(ctx, key, entityTTL, func(ctx context.Context) (any, error) {
		return p.ledger.User(ctx, address)
	})
	if err != nil {
		return ledger.User{}, err
	}
	return value.(ledger.User), nil
}

func (p *Platform) Transaction(ctx context.Context, id uint64) (ledger.Transaction, error) {
	key := cache.Key{Kind: cache.KindTransaction, Ref: formatID(id), ChainID: p.chainID}
	value, err := p.cache.GetOrFetch(ctx, key, entityTTL, func(ctx context.Context) (any, error) {
		return p.ledger.Transaction(ctx, id)
	})
	if err != nil {
		return ledger.Transaction{}, err
	}
	return value.(ledger.Transaction), nil
}

func (p *Platform) Approval(ctx context.Context, id uint64) (ledger.Approval, error) {
	key := cache.Key{Kind: cache.KindApproval, Ref: formatID(id), ChainID: p.chainID}
	value, err := p.cache.GetOrFetch(ctx, key, entityTTL, func(ctx context.Context) (any, error) {
		return p.ledger.Approval(ctx, id)
	})
	if err != nil {
		return ledger.Approval{}, err
	}
	return value.(ledger.Approval), nil
}

// UserTransactions lists the transactions the token's subject participates in.
func (p *Platform) UserTransactions(ctx context.Context, token string) ([]ledger.Transaction, error) {
	caller, err := p.callerAddress(token)
	if err != nil {
		return nil, err
	}

	key := cache.Key{Kind: cache.KindUserTransactions, Ref: caller, ChainID: p.chainID}
	value, err := p.cache.GetOrFetch(ctx, key, listTTL, func(ctx context.Context) (any, error) {
		return p.ledger.UserTransactions(ctx, caller)
	})
	if err != nil {
		return nil, err
	}
	return value.([]ledger.Transaction), nil
}

func (p *Platform) AllTransactions(ctx context.Context) ([]ledger.Transaction, error) {
	key := cache.Key{Kind: cache.KindAllTransactions, ChainID: p.chainID}
	value, err := p.cache.GetOrFetch(ctx, key, listTTL, func(ctx context.Context) (any, error) {
		return p.ledger.AllTransactions(ctx)
	})
	if err != nil {
		return nil, err
	}
	return value.([]ledger.Transaction), nil
}

func (p *Platform) PendingApprovals(ctx context.Context) ([]ledger.Approval, error) {
	key := cache.Key{Kind: cache.KindPendingApprovals, ChainID: p.chainID}
	value, err := p.cache.GetOrFetch(ctx, key, listTTL, func(ctx context.Context) (any, error) {
		return p.ledger.PendingApprovals(ctx)
	})
	if err != nil {
		return nil, err
	}
	return value.([]ledger.Approval), nil
}

func (p *Platform) Metrics(ctx context.Context) (ledger.Metrics, error) {
	key := cache.Key{Kind: cache.KindMetrics, ChainID: p.chainID}
	value, err := p.cache.GetOrFetch(ctx, key, metricsTTL, func(ctx context.Context) (any, error) {
		return p.ledger.Metrics(ctx)
	})
	if err != nil {
		return ledger.Metrics{}, err
	}
	return value.(ledger.Metrics), nil
}

// StartRefresh runs the polling fallback: pending approvals on a short
// interval, metrics on a longer one. It bounds staleness when an event is
// missed and stops when the context is cancelled.
func (p *Platform) StartRefresh(ctx context.Context) {
	go p.refreshLoop(ctx, approvalsRefreshInterval, func() {
		p.cache.Invalidate(cache.Key{Kind: cache.KindPendingApprovals, ChainID: p.chainID})
		if _, err := p.PendingApprovals(ctx); err != nil {
			p.logs.Errorw("pending approvals refresh failed", "error", err)
		}
	})

	go p.refreshLoop(ctx, metricsRefreshInterval, func() {
		p.cache.Invalidate(cache.Key{Kind: cache.KindMetrics, ChainID: p.chainID})
		if _, err := p.Metrics(ctx); err != nil {
			p.logs.Errorw("metrics refresh failed", "error", err)
		}
	})
}

func (p *Platform) refreshLoop(ctx context.Context, interval time.Duration, refresh func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			refresh()
		}
	}
}

func (p *Platform) callerAddress(token string) (string, error) {
	claims, err := p.jwtIssuer.Validate(token)
	if err != nil {
		return "", fmt.Errorf("validate jwt token: %w", err)
	}

	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		return "", fmt.Errorf("%w: missing subject claim", tokenIssuer.ErrTokenNotValid)
	}

	return subject, nil
}

// watch wires cache invalidation to ledger events. Handlers only drop keys;
// they never write entity state, so replays and reordering are safe.
func (p *Platform) watch() {
	p.subs = append(p.subs,
		p.bus.Subscribe(ledger.EventUserRegistered, p.onUserEvent),
		p.bus.Subscribe(ledger.EventUserRoleUpdated, p.onUserEvent),
		p.bus.Subscribe(ledger.EventTransactionCreated, p.onTransactionEvent),
		p.bus.Subscribe(ledger.EventApprovalRequested, p.onApprovalEvent),
		p.bus.Subscribe(ledger.EventApprovalProcessed, p.onApprovalEvent),
		p.bus.Subscribe(ledger.EventTransactionStatusUpdated, p.onTransactionEvent),
		p.bus.Subscribe(ledger.EventSettlementConfirmed, p.onSettlementEvent),
	)
}

func (p *Platform) onUserEvent(event ledger.Event) {
	p.cache.Invalidate(
		cache.Key{Kind: cache.KindUser, Ref: event.Address, ChainID: p.chainID},
		cache.Key{Kind: cache.KindMetrics, ChainID: p.chainID},
	)
}

func (p *Platform) onTransactionEvent(event ledger.Event) {
	p.cache.Invalidate(
		cache.Key{Kind: cache.KindTransaction, Ref: formatID(event.TransactionID), ChainID: p.chainID},
		cache.Key{Kind: cache.KindAllTransactions, ChainID: p.chainID},
		cache.Key{Kind: cache.KindMetrics, ChainID: p.chainID},
	)

	if event.From == "" && event.To == "" {
		p.cache.InvalidateKind(cache.KindUserTransactions)
		return
	}
	p.cache.Invalidate(
		cache.Key{Kind: cache.KindUserTransactions, Ref: event.From, ChainID: p.chainID},
		cache.Key{Kind: cache.KindUserTransactions, Ref: event.To, ChainID: p.chainID},
	)
}

func (p *Platform) onApprovalEvent(event ledger.Event) {
	p.cache.Invalidate(
		cache.Key{Kind: cache.KindApproval, Ref: formatID(event.ApprovalID), ChainID: p.chainID},
		cache.Key{Kind: cache.KindTransaction, Ref: formatID(event.TransactionID), ChainID: p.chainID},
		cache.Key{Kind: cache.KindPendingApprovals, ChainID: p.chainID},
		cache.Key{Kind: cache.KindMetrics, ChainID: p.chainID},
	)
	p.cache.InvalidateKind(cache.KindUserTransactions)
}

// onSettlementEvent carries a chain transaction hash, not a ledger id, so it
// can only invalidate at kind granularity.
func (p *Platform) onSettlementEvent(event ledger.Event) {
	p.cache.InvalidateKind(cache.KindTransaction)
}

func formatID(id uint64) string {
	return strconv.FormatUint(id, 10)
}
