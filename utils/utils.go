package utils

import (
	"fmt"
	"time"
)

// CertificateNumber builds a certificate number from the user, course and
// issuance time. Unique as long as the same pair does not complete twice
// within the same millisecond, which the certificate table's unique
// (user, course) index rules out anyway.
func CertificateNumber(userID, courseID uint) string {
	return fmt.Sprintf("CC-%d-%d-%d", userID, courseID, time.Now().UnixMilli())
}
