package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	LORStatusPending        = "pending"
	LORStatusApproved       = "approved"
	LORStatusRejected       = "rejected"
	LORStatusIssuedDirectly = "issued_directly"
)

// LORRequest represents a letter-of-recommendation request. A student may
// hold at most one pending request; pending is the only actionable status.
type LORRequest struct {
	gorm.Model
	StudentID    uint       `json:"student_id" gorm:"index;not null"`
	StudentEmail string     `json:"studentEmail" gorm:"index;not null"`
	Reason       string     `json:"reason"`
	Status       string     `json:"status" gorm:"default:'pending'"` // pending, approved, rejected, issued_directly
	RequestDate  time.Time  `json:"requestDate"`
	ActionDate   *time.Time `json:"actionDate"`
	AdminNotes   string     `json:"adminNotes"`
	LORPDFPath   string     `json:"lorPDFPath"`
}
