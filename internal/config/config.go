package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

var ErrUnsupportedNetwork error = errors.New("unsupported network")

const (
	apiPortEnvKey     = "API_PORT"
	dbConnEnvKey      = "DB_CONNECTION_URL"
	jwtSecretEnvKey   = "JWT_SECRET"
	chainIDEnvKey     = "CHAIN_ID"
	ethNodeEnvKey     = "ETH_NODE_URL"
	tokenAddrEnvKey   = "TOKEN_CONTRACT_ADDRESS"
	operatorKeyEnvKey = "OPERATOR_PRIVATE_KEY"
)

// supportedNetworks maps a chain id to a network name. Contract calls are
// disabled for any chain id outside this set.
var supportedNetworks = map[uint64]string{
	1:        "mainnet",
	11155111: "sepolia",
	31337:    "localhost",
}

type App struct {
	Port            string
	DBConnectionURL string
	JWTSecret       string
	ChainID         uint64
	NetworkName     string
	NodeURL         string
	TokenAddress    string
	OperatorKey     string

	// AnchoringEnabled is false when the node URL, token address or operator
	// key is missing for the active network. Completed transfers then settle
	// locally only.
	AnchoringEnabled bool
}

func NewApp() (App, error) {

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	chainIDStr, ok := os.LookupEnv(chainIDEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, chainIDEnvKey)
	}

	chainID, err := strconv.ParseUint(chainIDStr, 10, 64)
	if err != nil {
		return App{}, fmt.Errorf("parse chain id %q: %w", chainIDStr, err)
	}

	networkName, ok := supportedNetworks[chainID]
	if !ok {
		return App{}, fmt.Errorf("%w: chain id %d", ErrUnsupportedNetwork, chainID)
	}

	nodeURL := os.Getenv(ethNodeEnvKey)
	tokenAddr := os.Getenv(tokenAddrEnvKey)
	operatorKey := os.Getenv(operatorKeyEnvKey)

	return App{
		Port:             port,
		DBConnectionURL:  dbConn,
		JWTSecret:        jwtSecret,
		ChainID:          chainID,
		NetworkName:      networkName,
		NodeURL:          nodeURL,
		TokenAddress:     tokenAddr,
		OperatorKey:      operatorKey,
		AnchoringEnabled: nodeURL != "" && tokenAddr != "" && operatorKey != "",
	}, nil
}
