package war

// WarError is a custom error type for war session errors
type WarError string

// Error implements the error interface
func (e WarError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNotOpen              WarError = "no war session is open"
	ErrAlreadyOpen          WarError = "a war session is already open"
	ErrMemberNotFound       WarError = "member not found in directory"
	ErrRecordNotFound       WarError = "record not found"
	ErrPermissionDenied     WarError = "administrator permission required"
	ErrEmptyRoster          WarError = "roster is empty"
	ErrEmptyNickname        WarError = "nickname cannot be empty"
	ErrConfirmationExpired  WarError = "confirmation expired"
	ErrConfirmationMismatch WarError = "confirmation does not match this request"
	ErrCopyFailed           WarError = "template copy returned no sheet"
	ErrNilInput             WarError = "input cannot be nil"
	ErrNilConfig            WarError = "config cannot be nil"
	ErrNilSheetsRepo        WarError = "sheets repository cannot be nil"
	ErrNilConfirmationRepo  WarError = "confirmation repository cannot be nil"
	ErrNilClock             WarError = "clock cannot be nil"
)
