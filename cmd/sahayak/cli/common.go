package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sahayakai/sahayak/internal/credential"
	"github.com/sahayakai/sahayak/internal/store"
)

func getStore() store.Storage {
	home, _ := os.UserHomeDir()
	sahayakDir := filepath.Join(home, ".sahayak")
	storeLayer, err := store.NewSQLiteStore(filepath.Join(sahayakDir, "sahayak.db"))
	if err != nil {
		fmt.Printf("Failed to init store: %v\n", err)
		os.Exit(1)
	}
	return storeLayer
}

// getSecret resolves an API credential: environment first, then the config
// store, decrypting values saved through `config set`.
func getSecret(s store.Storage, configKey, envVar string) string {
	if v := os.Getenv(envVar); v != "" {
		return v
	}

	v, err := s.GetConfig(configKey)
	if err != nil || v == "" {
		return ""
	}
	if credential.IsEncrypted(v) {
		mgr, err := credential.NewManager()
		if err != nil {
			return ""
		}
		plain, err := mgr.Decrypt(v)
		if err != nil {
			return ""
		}
		return plain
	}
	return v
}
