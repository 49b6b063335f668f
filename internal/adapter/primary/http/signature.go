package http

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// verifySignature checks MercadoPago's x-signature header against the
// configured signing secret. The header looks like
// "ts=1704908010,v1=618c85..." and signs the manifest
// "id:{data.id};request-id:{x-request-id};ts:{ts};" with HMAC-SHA256.
func verifySignature(secret, signature, requestID, dataID string) error {
	if signature == "" || requestID == "" {
		return fmt.Errorf("missing signature headers")
	}

	var ts, hash string
	for _, part := range strings.Split(signature, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}
		switch key {
		case "ts":
			ts = value
		case "v1":
			hash = value
		}
	}
	if ts == "" || hash == "" {
		return fmt.Errorf("invalid x-signature format")
	}

	manifest := fmt.Sprintf("id:%s;request-id:%s;ts:%s;", dataID, requestID, ts)
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(manifest))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(hash)) {
		return fmt.Errorf("signature mismatch")
	}

	return nil
}
