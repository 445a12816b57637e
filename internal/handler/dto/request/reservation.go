package request

import (
	"lane-booking/internal/domain/reservation"
)

type ConfirmReservationRequest struct {
	// PaymentStatus defaults to PENDING when omitted.
	PaymentStatus string `json:"paymentStatus,omitempty" binding:"omitempty,oneof=PENDING PAID"`
}

func (r ConfirmReservationRequest) Payment() reservation.PaymentStatus {
	if r.PaymentStatus == "" {
		return reservation.PaymentPending
	}
	return reservation.PaymentStatus(r.PaymentStatus)
}
