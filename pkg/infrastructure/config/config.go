// Package config resolves where the remote spreadsheet lives and how to
// authorize against it. It is constructed once at process start and handed to
// the collaborators that need the remote store; the feasibility engine never
// sees it.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Default worksheet titles, overridable per deployment.
const (
	DefaultUsageSheet = "FORMULA"
	DefaultStockSheet = "INVENTORY"
)

// Config holds the remote-store settings for one process
type Config struct {
	SheetID         string
	CredentialsFile string
	UsageSheet      string
	StockSheet      string
}

// LoadEnvFile loads a .env file into the process environment. A missing file
// is not an error; deployments that configure through real environment
// variables simply have none.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// GetEnv returns the environment variable value or the fallback when unset
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

// FromEnv builds a Config from environment variables: SHEET_ID,
// GOOGLE_APPLICATION_CREDENTIALS, FORMULA_WS, INVENTORY_WS.
func FromEnv() Config {
	return Config{
		SheetID:         ResolveSheetID(GetEnv("SHEET_ID", "")),
		CredentialsFile: GetEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
		UsageSheet:      GetEnv("FORMULA_WS", DefaultUsageSheet),
		StockSheet:      GetEnv("INVENTORY_WS", DefaultStockSheet),
	}
}

// ResolveSheetID accepts either a bare spreadsheet ID or a full
// https://docs.google.com/spreadsheets/d/<id>/edit URL and returns the ID.
func ResolveSheetID(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if idx := strings.Index(raw, "/d/"); idx >= 0 {
		id := raw[idx+len("/d/"):]
		if slash := strings.Index(id, "/"); slash >= 0 {
			id = id[:slash]
		}
		return id
	}
	return raw
}

// LoadServiceAccount reads service-account credentials JSON from disk and
// repairs the private key before use.
func LoadServiceAccount(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file %s: %w", path, err)
	}
	fixed, err := NormalizePrivateKey(data)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials file %s: %w", path, err)
	}
	return fixed, nil
}

// NormalizePrivateKey fixes service-account JSON whose private_key field
// carries literal backslash-n sequences instead of newlines. Secrets pasted
// through config UIs routinely arrive that way.
func NormalizePrivateKey(credentialsJSON []byte) ([]byte, error) {
	var sa map[string]interface{}
	if err := json.Unmarshal(credentialsJSON, &sa); err != nil {
		return nil, fmt.Errorf("failed to parse service account JSON: %w", err)
	}

	pk, ok := sa["private_key"].(string)
	if !ok || !strings.Contains(pk, `\n`) {
		return credentialsJSON, nil
	}
	sa["private_key"] = strings.ReplaceAll(pk, `\n`, "\n")

	fixed, err := json.Marshal(sa)
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode service account JSON: %w", err)
	}
	return fixed, nil
}
