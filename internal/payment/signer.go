// Package payment проверка подлинности подтверждений оплаты от платежных шлюзов.
package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"github.com/fsdevblog/virtnum/internal/domain"
)

// HMACVerifier подписывает и проверяет подтверждения оплаты общим секретом.
// Подпись: hex(HMAC-SHA256(secret, externalRef:STATUS:amount)), сумма с двумя знаками после запятой.
type HMACVerifier struct {
	secret []byte
}

func NewHMACVerifier(secret string) *HMACVerifier {
	return &HMACVerifier{secret: []byte(secret)}
}

func (v *HMACVerifier) Sign(ev domain.ConfirmationEvent) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(signaturePayload(ev)))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify сравнивает подпись за постоянное время. Пустой секрет или подпись не проходят проверку.
func (v *HMACVerifier) Verify(ev domain.ConfirmationEvent) bool {
	if len(v.secret) == 0 || ev.Signature == "" {
		return false
	}
	got, err := hex.DecodeString(ev.Signature)
	if err != nil {
		return false
	}
	want, _ := hex.DecodeString(v.Sign(ev))
	return hmac.Equal(got, want)
}

func signaturePayload(ev domain.ConfirmationEvent) string {
	return ev.ExternalRef + ":" + string(ev.Status) + ":" + ev.Amount.StringFixed(2)
}
