package tab

// TabError is a custom error type for tab-related errors
type TabError string

// Error implements the error interface
func (e TabError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrDrinkNotFound       TabError = "drink not found"
	ErrTransactionNotFound TabError = "transaction not found"
	ErrPaymentNotFound     TabError = "payment not found"
	ErrInvalidDrink        TabError = "drink total volume must be greater than zero"
	ErrInvalidVolumeUnit   TabError = "volume unit must be ml or oz"
	ErrNilConfig           TabError = "config cannot be nil"
	ErrNilDrinkRepo        TabError = "drink repository cannot be nil"
	ErrNilTransactionRepo  TabError = "transaction repository cannot be nil"
	ErrNilPaymentRepo      TabError = "payment repository cannot be nil"
	ErrNilClock            TabError = "clock cannot be nil"
	ErrNilUUIDGenerator    TabError = "UUID generator cannot be nil"
)
