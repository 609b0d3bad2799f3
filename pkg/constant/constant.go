package constant

const (
	// DefaultUsernamePrefix is prepended to the account id to build the
	// username assigned at registration until the user picks their own.
	DefaultUsernamePrefix = "user"

	BearerScheme = "Bearer"
)

// Locals keys used by the request authentication middleware to hand decoded
// token claims and loaded accounts to the handlers further down the chain.
const (
	LocalsAccessClaims         = "decoded_authorization"
	LocalsRefreshClaims        = "decoded_refresh_token"
	LocalsEmailVerifyClaims    = "decoded_email_verify_token"
	LocalsForgotPasswordClaims = "decoded_forgot_password_token"
	LocalsAuthUser             = "auth_user"
)
