package core

import "errors"

// User and credential errors
var (
	ErrUserExists         = errors.New("user with this email already exists") // 409 Conflict
	ErrUserNotFound       = errors.New("user not found")                      // 404 Not Found
	ErrInvalidCredentials = errors.New("invalid credentials")                 // 401 Unauthorized
)

// Session errors
var (
	ErrInvalidToken    = errors.New("invalid session token") // 401
	ErrSessionNotFound = errors.New("session not found")     // 401
	ErrSessionExpired  = errors.New("session expired")       // 401
	ErrCacheNotFound   = errors.New("session not in cache")
)

// Validation errors (client input)
var (
	ErrNameRequired      = errors.New("name is required")             // 400
	ErrEmailRequired     = errors.New("email is required")            // 400
	ErrPasswordRequired  = errors.New("password is required")         // 400
	ErrPasswordMismatch  = errors.New("passwords do not match")       // 400
	ErrInvalidRole       = errors.New("unknown role")                 // 400
	ErrMessageRequired   = errors.New("message is required")          // 400
	ErrAddressRequired   = errors.New("pickup address is required")   // 400
	ErrDateRequired      = errors.New("pickup date is required")      // 400
	ErrDateInPast        = errors.New("pickup date is in the past")   // 400
	ErrTimeSlotRequired  = errors.New("pickup time slot is required") // 400
	ErrImageRequired     = errors.New("an image upload is required")  // 400
	ErrInvalidRedeemCode = errors.New("invalid redeem code")          // 400
)

// Domain errors
var (
	ErrForbidden            = errors.New("operation not permitted for this role") // 403
	ErrPickupNotFound       = errors.New("pickup not found")                      // 404
	ErrPickupNotCancellable = errors.New("only pending pickups can be cancelled") // 409
	ErrInvalidTransition    = errors.New("invalid pickup status transition")      // 409
	ErrNoItemDetected       = errors.New("no recognizable item found")            // 404
	ErrInsufficientCoins    = errors.New("not enough coins")                      // 409
	ErrOfferNotFound        = errors.New("offer not found")                       // 404
)
