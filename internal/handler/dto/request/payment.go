package request

// PaymentNotification is posted by the payment provider once a checkout settles.
type PaymentNotification struct {
	ExternalReference string `json:"external_reference" binding:"required"`
	Status            string `json:"status" binding:"required"`
}

func (n PaymentNotification) Approved() bool {
	return n.Status == "approved"
}
