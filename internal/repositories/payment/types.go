package payment

import "github.com/barledger/bartab/internal/models"

// SavePaymentInput contains parameters for storing a payment
type SavePaymentInput struct {
	Payment *models.Payment
}

// GetPaymentInput contains parameters for retrieving a payment
type GetPaymentInput struct {
	PaymentID string
}

// GetPaymentOutput contains the result of retrieving a payment
type GetPaymentOutput struct {
	Payment *models.Payment
}

// ListPaymentsInput contains the optional filters for listing payments.
// GuestName matches as a case-insensitive substring.
type ListPaymentsInput struct {
	GuestName string
}

// ListPaymentsOutput contains the result of listing payments
type ListPaymentsOutput struct {
	Payments []*models.Payment
}

// GetPaymentsForGuestInput contains parameters for retrieving a guest's payments
type GetPaymentsForGuestInput struct {
	GuestName string
}

// GetPaymentsForGuestOutput contains the result of retrieving a guest's payments
type GetPaymentsForGuestOutput struct {
	Payments []*models.Payment
}

// DeletePaymentInput contains parameters for deleting a payment
type DeletePaymentInput struct {
	PaymentID string
}
