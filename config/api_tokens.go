package config

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// APITokens holds CoinGecko keys loaded from the tokens file.
// Tokens are pro keys, DemoTokens are demo keys.
type APITokens struct {
	Tokens     []string `json:"api_tokens"`
	DemoTokens []string `json:"demo_api_tokens,omitempty"`
}

func LoadAPITokens(filename string) (*APITokens, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return &APITokens{Tokens: []string{}}, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "read tokens file")
	}

	var tokens APITokens
	if err := json.Unmarshal(data, &tokens); err != nil {
		return nil, errors.Wrap(err, "decode tokens file")
	}
	return &tokens, nil
}
