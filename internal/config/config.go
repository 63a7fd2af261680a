package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey      = "API_PORT"
	ethNodeEnvKey      = "ETH_NODE_URL"
	vaultAddressEnvKey = "VAULT_CONTRACT_ADDRESS"
	keystoreDirEnvKey  = "KEYSTORE_DIR"
	passphraseEnvKey   = "KEYSTORE_PASSPHRASE"
	chainPollEnvKey    = "CHAIN_POLL_INTERVAL"
)

const defaultPollInterval = 5 * time.Second

type App struct {
	Port               string
	NodeURL            string
	VaultAddress       string
	KeystoreDir        string
	KeystorePassphrase string
	ChainPollInterval  time.Duration
}

func NewApp() (App, error) {

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	nodeURL, ok := os.LookupEnv(ethNodeEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, ethNodeEnvKey)
	}

	vaultAddress, ok := os.LookupEnv(vaultAddressEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, vaultAddressEnvKey)
	}

	keystoreDir, ok := os.LookupEnv(keystoreDirEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, keystoreDirEnvKey)
	}

	// empty passphrase is valid for throwaway dev keystores
	passphrase := os.Getenv(passphraseEnvKey)

	pollInterval := defaultPollInterval
	if raw, ok := os.LookupEnv(chainPollEnvKey); ok {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return App{}, fmt.Errorf("parse %s: %w", chainPollEnvKey, err)
		}
		pollInterval = parsed
	}

	return App{
		Port:               port,
		NodeURL:            nodeURL,
		VaultAddress:       vaultAddress,
		KeystoreDir:        keystoreDir,
		KeystorePassphrase: passphrase,
		ChainPollInterval:  pollInterval,
	}, nil
}
