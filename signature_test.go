package medicamenta_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medicamenta/go-medicamenta"
)

// sign builds a valid X-Webhook-Signature value for the given inputs.
func sign(t *testing.T, payload []byte, timestamp, secret string) string {
	t.Helper()
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp + "."))
	mac.Write(payload)
	return "t=" + timestamp + ",v1=" + hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyWebhookSignature(t *testing.T) {
	const (
		secret    = "whsec_test"
		timestamp = "1700000000"
	)
	payload := []byte(`{"event":"dose.taken"}`)

	t.Run("accepts the known-good vector", func(t *testing.T) {
		sig := "t=1700000000,v1=75dad8228c0c5155acb324cf7743f7a5aec9b16e862fade0feb87d758fdc9f97"
		assert.True(t, medicamenta.VerifyWebhookSignature(payload, sig, secret))
	})

	t.Run("helper agrees with the known-good vector", func(t *testing.T) {
		sig := sign(t, payload, timestamp, secret)
		require.Equal(t,
			"t=1700000000,v1=75dad8228c0c5155acb324cf7743f7a5aec9b16e862fade0feb87d758fdc9f97",
			sig)
		assert.True(t, medicamenta.VerifyWebhookSignature(payload, sig, secret))
	})

	t.Run("rejects every single-character digest mutation", func(t *testing.T) {
		const digest = "75dad8228c0c5155acb324cf7743f7a5aec9b16e862fade0feb87d758fdc9f97"
		for i := range digest {
			mutated := []byte(digest)
			if mutated[i] == 'f' {
				mutated[i] = '0'
			} else {
				mutated[i] = 'f'
			}
			sig := "t=" + timestamp + ",v1=" + string(mutated)
			assert.False(t, medicamenta.VerifyWebhookSignature(payload, sig, secret),
				"mutation at index %d should be rejected", i)
		}
	})

	t.Run("rejects wrong secret", func(t *testing.T) {
		sig := sign(t, payload, timestamp, secret)
		assert.False(t, medicamenta.VerifyWebhookSignature(payload, sig, "whsec_other"))
	})

	t.Run("rejects tampered payload", func(t *testing.T) {
		sig := sign(t, payload, timestamp, secret)
		assert.False(t, medicamenta.VerifyWebhookSignature([]byte(`{"event":"dose.missed"}`), sig, secret))
	})

	t.Run("rejects tampered timestamp", func(t *testing.T) {
		sig := sign(t, payload, timestamp, secret)
		tampered := "t=1700000001" + sig[len("t=1700000000"):]
		assert.False(t, medicamenta.VerifyWebhookSignature(payload, tampered, secret))
	})

	t.Run("rejects malformed signatures", func(t *testing.T) {
		malformed := []string{
			"",
			"t=1700000000",
			"no commas here",
			"t,v1",
			"t=,v1=",
			"t=1700000000,v1=not-hex",
			"v1=75dad8228c0c5155acb324cf7743f7a5aec9b16e862fade0feb87d758fdc9f97",
		}
		for _, sig := range malformed {
			assert.False(t, medicamenta.VerifyWebhookSignature(payload, sig, secret),
				"signature %q should be rejected", sig)
		}
	})

	t.Run("empty payload still verifies", func(t *testing.T) {
		sig := sign(t, nil, timestamp, secret)
		assert.True(t, medicamenta.VerifyWebhookSignature(nil, sig, secret))
	})

	t.Run("deterministic", func(t *testing.T) {
		sig := sign(t, payload, timestamp, secret)
		for range 3 {
			assert.True(t, medicamenta.VerifyWebhookSignature(payload, sig, secret))
		}
	})
}
