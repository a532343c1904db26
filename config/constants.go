package config

// Hotel identity shown on the banner and receipts.
const (
	HotelName    = "Grand Palace Hotel"
	HotelAddress = "42 Marine Drive"
	HotelPhone   = "+91 22 4000 1000"
)

const (
	// DefaultTaxRate applies to new bills unless overridden.
	DefaultTaxRate = 0.10

	// DefaultPassword is assigned to newly hired employees until they
	// change it.
	DefaultPassword = "default123"

	// MaxLoginAttempts before the login loop gives up.
	MaxLoginAttempts = 3
)

// PaymentMethods accepted at the desk, in menu order.
var PaymentMethods = []string{"Cash", "Card", "UPI", "Bank Transfer"}
