package models

import (
	"time"

	"gorm.io/gorm"
)

// Certificate represents an issued completion certificate. One certificate
// per email; the unique index serializes concurrent issuance at the store.
type Certificate struct {
	gorm.Model
	Name          string    `json:"name" gorm:"not null"`
	Email         string    `json:"email" gorm:"uniqueIndex;not null"`
	CertificateID string    `json:"certificateId" gorm:"uniqueIndex;not null"` // CERT-<unix millis>
	IssueDate     time.Time `json:"issueDate"`
	Verified      bool      `json:"verified" gorm:"default:true"`
}
