package constants

const (
	ROLE_ADMIN        = "ADMIN"
	ROLE_RECEPTIONIST = "RECEPTIONIST"
	ROLE_GUEST        = "GUEST"
)

const (
	MISSING_LOGIN_INPUT   = "Email and password are required"
	INVALID_EMAIL         = "No account with this email"
	INVALID_PASSWORD      = "Password does not match"
	ACCOUNT_NOT_ACTIVE    = "Account is disabled, contact an administrator"
	NOT_STAFF             = "Staff permission required"
	NOT_ADMIN             = "Admin permission required"
	ERROR_INTERNAL_ERROR  = "Internal server error"
	CANNOT_PARSE_BODY     = "Cannot parse request body"
	DATA_INPUT_NOT_NUMBER = "Path parameter must be a number"

	CLIENT_NOT_FOUND      = "Client not found"
	ROOM_NOT_FOUND        = "Room not found"
	RESERVATION_NOT_FOUND = "Reservation not found"
	ROOM_NUMBER_IN_USE    = "Room number already in use"
	CPF_ALREADY_IN_USE    = "CPF already registered"
	INVALID_CPF           = "Invalid CPF"
	EMAIL_ALREADY_IN_USE  = "Email already in use"
)
