package secrets

import (
	"errors"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// "Service" groups this tool's secrets in the OS keychain.
	KeyringService = "outreach"

	ProviderKeyAccount = "hunter_api_key"
	LLMKeyAccount      = "openrouter_api_key"
)

// Get resolves a secret keyring-first, falling back to the environment
// variable. Empty values count as missing.
func Get(keyringAccount, envVar string) (string, error) {
	if strings.TrimSpace(keyringAccount) != "" {
		v, err := keyring.Get(KeyringService, keyringAccount)
		if err == nil && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v), nil
		}
	}
	if envVar != "" {
		if v := strings.TrimSpace(os.Getenv(envVar)); v != "" {
			return v, nil
		}
	}
	return "", errors.New("secret not found (set it in keychain or via env)")
}

func ProviderAPIKey() string {
	v, _ := Get(ProviderKeyAccount, "HUNTER_API_KEY")
	return v
}

func LLMAPIKey() (string, error) {
	return Get(LLMKeyAccount, "OPENROUTER_API_KEY")
}

// IMAPAppPassword is the Gmail app password used by the IMAP draft transport.
func IMAPAppPassword(username string) (string, error) {
	return Get("outreach:imap:"+username, "GMAIL_APP_PASSWORD")
}

func Set(keyringAccount, value string) error {
	if strings.TrimSpace(keyringAccount) == "" {
		return errors.New("keyring account name is empty")
	}
	if strings.TrimSpace(value) == "" {
		return errors.New("secret value is empty")
	}
	return keyring.Set(KeyringService, keyringAccount, value)
}

func Delete(keyringAccount string) error {
	if strings.TrimSpace(keyringAccount) == "" {
		return errors.New("keyring account name is empty")
	}
	return keyring.Delete(KeyringService, keyringAccount)
}
