package response

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type SuccessResponse struct {
	Data any `json:"data"`
}

// ValidationErrorResponse carries per-field messages, kept separate from the
// operation-level Error banner.
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

type TokenResponse struct {
	Token     string `json:"token"`
	UID       uint   `json:"user_id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsAdmin   bool   `json:"is_admin"`
}

// ForgotPasswordResponse intentionally reveals only a masked address so the
// endpoint cannot be used for account enumeration.
type ForgotPasswordResponse struct {
	Message     string `json:"message"`
	MaskedEmail string `json:"masked_email"`
}
