package auth

import (
	"encoding/json"
	"fmt"

	"github.com/guidewire/core-auth-examples/pkg/client"
	"github.com/lestrrat-go/jwx/v2/jwk"
)

// KeyInfo describes one entry of a JSON Web Key Set. It is for display only;
// nothing here verifies signatures.
type KeyInfo struct {
	KeyID     string `json:"kid"`
	KeyType   string `json:"kty"`
	Algorithm string `json:"alg,omitempty"`
	Use       string `json:"use,omitempty"`
}

func (k KeyInfo) String() string {
	return fmt.Sprintf("kid=%s kty=%s alg=%s use=%s", k.KeyID, k.KeyType, k.Algorithm, k.Use)
}

// SummarizeKeys lists the keys of a JWKS document fetched from CORE_AUTH.
func SummarizeKeys(doc client.Document) ([]KeyInfo, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	return ParseKeys(raw)
}

// ParseKeys parses a raw JWKS document with jwk.Parse.
func ParseKeys(raw []byte) ([]KeyInfo, error) {
	set, err := jwk.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing jwks: %w", err)
	}

	keys := make([]KeyInfo, 0, set.Len())
	for i := 0; i < set.Len(); i++ {
		key, ok := set.Key(i)
		if !ok {
			continue
		}
		info := KeyInfo{
			KeyID:   key.KeyID(),
			KeyType: key.KeyType().String(),
			Use:     key.KeyUsage(),
		}
		if alg := key.Algorithm(); alg != nil {
			info.Algorithm = alg.String()
		}
		keys = append(keys, info)
	}
	return keys, nil
}
