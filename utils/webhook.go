package utils

import (
	"coursecart/config"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

// NotifyCertificateWebhook posts a certificate-issued event to the configured
// webhook endpoint. Failures are logged only; issuance never depends on it.
func NotifyCertificateWebhook(userID, courseID uint, certificateNumber string) {
	url := config.AppConfig.CertWebhookURL
	if url == "" {
		return
	}

	client := resty.New().SetTimeout(10 * time.Second)
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"event":              "certificate.issued",
			"user_id":            userID,
			"course_id":          courseID,
			"certificate_number": certificateNumber,
			"issued_at":          time.Now().Format(time.RFC3339),
		}).
		Post(url)
	if err != nil {
		log.Printf("Error calling certificate webhook: %v", err)
		return
	}
	if resp.StatusCode() >= 300 {
		log.Printf("Certificate webhook returned %d: %s", resp.StatusCode(), resp.String())
	}
}
