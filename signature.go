package medicamenta

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// VerifyWebhookSignature reports whether signature is a valid signature
// for payload under secret. The signature comes from the
// X-Webhook-Signature header and has the form
//
//	t=<unix-timestamp>,v1=<hex-digest>
//
// where the digest is HMAC-SHA256 over "<timestamp>.<payload>". The
// digest comparison is constant-time. Malformed signatures return false.
func VerifyWebhookSignature(payload []byte, signature, secret string) bool {
	timestamp, received, ok := splitSignature(signature)
	if !ok {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(received))
}

// splitSignature extracts the timestamp and digest from the header value.
// The first comma-separated part carries the timestamp, the second the
// digest, each as the value after "=".
func splitSignature(signature string) (timestamp, digest string, ok bool) {
	parts := strings.Split(signature, ",")
	if len(parts) < 2 {
		return "", "", false
	}

	tPart := strings.SplitN(parts[0], "=", 2)
	vPart := strings.SplitN(parts[1], "=", 2)
	if len(tPart) < 2 || len(vPart) < 2 {
		return "", "", false
	}

	return tPart[1], vPart[1], true
}
