package auth_test

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"encoding/json"

	"github.com/guidewire/core-auth-examples/pkg/auth"
	"github.com/guidewire/core-auth-examples/pkg/client"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwk"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func publicJWK(kid string) map[string]interface{} {
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	Expect(err).NotTo(HaveOccurred())

	key, err := jwk.FromRaw(priv.Public())
	Expect(err).NotTo(HaveOccurred())
	Expect(key.Set(jwk.KeyIDKey, kid)).To(Succeed())
	Expect(key.Set(jwk.AlgorithmKey, jwa.ES256)).To(Succeed())
	Expect(key.Set(jwk.KeyUsageKey, "sig")).To(Succeed())

	raw, err := json.Marshal(key)
	Expect(err).NotTo(HaveOccurred())
	var out map[string]interface{}
	Expect(json.Unmarshal(raw, &out)).To(Succeed())
	return out
}

var _ = Describe("Key summary", func() {
	Describe("SummarizeKeys", func() {
		Context("when the document holds signing keys", func() {
			It("should list every key", func() {
				doc := client.Document{
					"keys": []interface{}{publicJWK("key-1"), publicJWK("key-2")},
				}

				keys, err := auth.SummarizeKeys(doc)
				Expect(err).NotTo(HaveOccurred())
				Expect(keys).To(HaveLen(2))
				Expect(keys[0]).To(Equal(auth.KeyInfo{KeyID: "key-1", KeyType: "EC", Algorithm: "ES256", Use: "sig"}))
				Expect(keys[1].KeyID).To(Equal("key-2"))
				Expect(keys[0].String()).To(Equal("kid=key-1 kty=EC alg=ES256 use=sig"))
			})
		})

		Context("when the key set is empty", func() {
			It("should return no keys", func() {
				keys, err := auth.SummarizeKeys(client.Document{"keys": []interface{}{}})
				Expect(err).NotTo(HaveOccurred())
				Expect(keys).To(BeEmpty())
			})
		})

		Context("when a key is malformed", func() {
			It("should return an error", func() {
				_, err := auth.SummarizeKeys(client.Document{"keys": []interface{}{"key1"}})
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("ParseKeys", func() {
		It("should reject input that is not JSON", func() {
			_, err := auth.ParseKeys([]byte("not json"))
			Expect(err).To(HaveOccurred())
		})
	})
})
