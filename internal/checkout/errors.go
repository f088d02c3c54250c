package checkout

// Error categories, machine-readable so the UI can pick a message.
const (
	CategoryValidation = "validation"
	CategoryAuth       = "auth"
	CategoryServer     = "server"
)

// Error is a categorized checkout failure. Validation errors are raised
// before the order placer is ever called; auth and server errors come
// back from it.
type Error struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

func validationError(msg string) *Error {
	return &Error{Category: CategoryValidation, Message: msg}
}

var (
	ErrEmptyCart      = validationError("cart is empty")
	ErrMissingAddress = validationError("delivery address required")
	ErrMissingPhone   = validationError("phone number required")
	ErrBadPayment     = validationError("unknown payment method")
)
