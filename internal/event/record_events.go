package event

import (
	"time"

	"github.com/google/uuid"
)

// Product identifies which service emitted a record event.
type Product string

const (
	ProductAccount Product = "accounts"
	ProductCard    Product = "cards"
	ProductLoan    Product = "loans"
)

type RecordEventPayload struct {
	EventID      string  `json:"eventId"`
	Product      Product `json:"product"`
	MobileNumber string  `json:"mobileNumber"`
	RecordNumber string  `json:"recordNumber"`
}

type RecordProvisionedEvent struct {
	Timestamp time.Time          `json:"timestamp"`
	Payload   RecordEventPayload `json:"payload"`
}

type RecordRetiredEvent struct {
	Timestamp time.Time          `json:"timestamp"`
	Payload   RecordEventPayload `json:"payload"`
}

func NewRecordEventPayload(product Product, mobileNumber, recordNumber string) RecordEventPayload {
	return RecordEventPayload{
		EventID:      uuid.New().String(),
		Product:      product,
		MobileNumber: mobileNumber,
		RecordNumber: recordNumber,
	}
}
