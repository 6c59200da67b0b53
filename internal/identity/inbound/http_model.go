package inbound

type SignupRequest struct {
	Email string `json:"email"`
}

type SignupResponse struct {
	Email     string `json:"email"`
	ExpiresAt int64  `json:"expires_at"`
}

func (SignupResponse) Message() string {
	return "Verification code sent. Please check your email."
}

type VerifyOTPRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type VerifyOTPResponse struct {
	Email string `json:"email"`
}

func (VerifyOTPResponse) Message() string {
	return "Code verified. You can now complete your signup."
}

type CompleteSignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type CompleteSignupResponse struct {
	UserID       int64  `json:"user_id,string"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func (CompleteSignupResponse) Message() string {
	return "Signup completed."
}

type ResendOTPRequest struct {
	Email string `json:"email"`
}

type ResendOTPResponse struct {
	Email     string `json:"email"`
	ExpiresAt int64  `json:"expires_at"`
}

func (ResendOTPResponse) Message() string {
	return "A new verification code has been sent."
}

type LoginOTPRequest struct {
	Email string `json:"email"`
}

type LoginOTPResponse struct {
	Email string `json:"email"`
}

func (LoginOTPResponse) Message() string {
	return "If an account with that email exists, we have sent a login code."
}

type LoginVerifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type LoginVerifyResponse struct {
	UserID       int64  `json:"user_id,string"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	UserID       int64  `json:"user_id,string"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type ProfileResponse struct {
	UserID    int64  `json:"user_id,string"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Verified  bool   `json:"verified"`
	CreatedAt string `json:"created_at"`
}
