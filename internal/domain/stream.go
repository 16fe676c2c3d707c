package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stream names
const (
	StreamReceiptScanned = "stream:loyalty:receipt"
)

// ReceiptScannedEvent - чек отсканирован, баллы нужно начислить
type ReceiptScannedEvent struct {
	ScanID    uuid.UUID `json:"scan_id"`
	UserID    uuid.UUID `json:"user_id"`
	Points    int       `json:"points"`
	ScannedAt time.Time `json:"scanned_at"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
