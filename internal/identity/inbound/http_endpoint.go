package inbound

import (
	"github.com/shandysiswandi/studytrack/internal/identity/usecase"
	"github.com/shandysiswandi/studytrack/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for the signup and login workflows.
type HTTPEndpoint struct {
	uc uc
}

// Signup starts an email signup by sending a verification code.
// @Summary Start signup
// @Description Sends a one-time verification code to the given email and holds the signup until verified.
// @Tags Identity, Authentication
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup payload"
// @Success 200 {object} router.successResponse{data=SignupResponse} "Code sent"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 409 {object} router.errorResponse "Email already registered"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 502 {object} router.errorResponse "Failed to send verification code"
// @Router /api/auth/signup [post]
func (h *HTTPEndpoint) Signup(r *router.Request) (any, error) {
	var req SignupRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Signup(r.Context(), usecase.SignupInput{Email: req.Email})
	if err != nil {
		return nil, err
	}

	return SignupResponse{
		Email:     resp.Email,
		ExpiresAt: resp.ExpiresAt.Unix(),
	}, nil
}

// VerifyOTP checks a verification code for a signup or account.
// @Summary Verify code
// @Description Verifies the one-time code sent to the email and marks the signup ready for completion.
// @Tags Identity, Authentication
// @Accept json
// @Produce json
// @Param request body VerifyOTPRequest true "Verification payload"
// @Success 200 {object} router.successResponse{data=VerifyOTPResponse} "Code verified"
// @Failure 400 {object} router.errorResponse "Code invalid or expired"
// @Failure 404 {object} router.errorResponse "No signup found for this email"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/auth/verify-otp [post]
func (h *HTTPEndpoint) VerifyOTP(r *router.Request) (any, error) {
	var req VerifyOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.VerifyOTP(r.Context(), usecase.VerifyOTPInput{
		Email: req.Email,
		Code:  req.Code,
	})
	if err != nil {
		return nil, err
	}

	return VerifyOTPResponse{Email: resp.Email}, nil
}

// CompleteSignup sets the password and creates the account.
// @Summary Complete signup
// @Description Creates the account for a verified signup and returns access/refresh tokens.
// @Tags Identity, Authentication
// @Accept json
// @Produce json
// @Param request body CompleteSignupRequest true "Completion payload"
// @Success 200 {object} router.successResponse{data=CompleteSignupResponse} "Account created"
// @Failure 400 {object} router.errorResponse "Signup not verified yet"
// @Failure 409 {object} router.errorResponse "Email already registered"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/auth/complete-signup [post]
func (h *HTTPEndpoint) CompleteSignup(r *router.Request) (any, error) {
	var req CompleteSignupRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.CompleteSignup(r.Context(), usecase.CompleteSignupInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		return nil, err
	}

	return CompleteSignupResponse{
		UserID:       resp.UserID,
		Email:        resp.Email,
		Name:         resp.Name,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}, nil
}

// ResendOTP sends a fresh verification code.
// @Summary Resend code
// @Description Issues a new one-time code for a pending signup or an account awaiting verification.
// @Tags Identity, Authentication
// @Accept json
// @Produce json
// @Param request body ResendOTPRequest true "Resend payload"
// @Success 200 {object} router.successResponse{data=ResendOTPResponse} "Code sent"
// @Failure 404 {object} router.errorResponse "No signup found for this email"
// @Failure 409 {object} router.errorResponse "Code already verified"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 429 {object} router.errorResponse "Requested too soon"
// @Failure 502 {object} router.errorResponse "Failed to send verification code"
// @Router /api/auth/resend-otp [post]
func (h *HTTPEndpoint) ResendOTP(r *router.Request) (any, error) {
	var req ResendOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.ResendOTP(r.Context(), usecase.ResendOTPInput{Email: req.Email})
	if err != nil {
		return nil, err
	}

	return ResendOTPResponse{
		Email:     resp.Email,
		ExpiresAt: resp.ExpiresAt.Unix(),
	}, nil
}

// LoginOTP requests a one-time login code for an existing account.
// @Summary Request login code
// @Description Sends a one-time login code. The response does not reveal whether the email is registered.
// @Tags Identity, Authentication
// @Accept json
// @Produce json
// @Param request body LoginOTPRequest true "Login code payload"
// @Success 200 {object} router.successResponse{data=LoginOTPResponse} "Code sent if account exists"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 502 {object} router.errorResponse "Failed to send login code"
// @Router /api/auth/login-otp [post]
func (h *HTTPEndpoint) LoginOTP(r *router.Request) (any, error) {
	var req LoginOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.LoginOTP(r.Context(), usecase.LoginOTPInput{Email: req.Email})
	if err != nil {
		return nil, err
	}

	return LoginOTPResponse{Email: resp.Email}, nil
}

// LoginVerify completes a code login and issues tokens.
// @Summary Verify login code
// @Description Verifies the one-time login code and returns access/refresh tokens.
// @Tags Identity, Authentication
// @Accept json
// @Produce json
// @Param request body LoginVerifyRequest true "Login verification payload"
// @Success 200 {object} router.successResponse{data=LoginVerifyResponse} "Authentication result"
// @Failure 400 {object} router.errorResponse "Code invalid or expired"
// @Failure 404 {object} router.errorResponse "No account found for this email"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/auth/login-verify [post]
func (h *HTTPEndpoint) LoginVerify(r *router.Request) (any, error) {
	var req LoginVerifyRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.LoginVerify(r.Context(), usecase.LoginVerifyInput{
		Email: req.Email,
		Code:  req.Code,
	})
	if err != nil {
		return nil, err
	}

	return LoginVerifyResponse{
		UserID:       resp.UserID,
		Email:        resp.Email,
		Name:         resp.Name,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}, nil
}

// Login authenticates with email and password.
// @Summary Authenticate user
// @Description Validates credentials and returns access/refresh tokens.
// @Tags Identity, Authentication
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login payload"
// @Success 200 {object} router.successResponse{data=LoginResponse} "Authentication result"
// @Failure 401 {object} router.errorResponse "Invalid credentials"
// @Failure 403 {object} router.errorResponse "Account not verified"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/auth/login [post]
func (h *HTTPEndpoint) Login(r *router.Request) (any, error) {
	var req LoginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Login(r.Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return LoginResponse{
		UserID:       resp.UserID,
		Email:        resp.Email,
		Name:         resp.Name,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}, nil
}

// RefreshToken issues a new token pair using a refresh token.
// @Summary Refresh access token
// @Description Exchanges a refresh token for a new access/refresh token pair.
// @Tags Identity, Authentication
// @Accept json
// @Produce json
// @Param request body RefreshTokenRequest true "Refresh token payload"
// @Success 200 {object} router.successResponse{data=RefreshTokenResponse} "Token refresh result"
// @Failure 401 {object} router.errorResponse "Invalid refresh token"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/auth/refresh [post]
func (h *HTTPEndpoint) RefreshToken(r *router.Request) (any, error) {
	var req RefreshTokenRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.RefreshToken(r.Context(), usecase.RefreshTokenInput{RefreshToken: req.RefreshToken})
	if err != nil {
		return nil, err
	}

	return RefreshTokenResponse{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}, nil
}

// Profile returns the authenticated user's account details.
// @Summary Get profile
// @Description Returns the account details of the authenticated user.
// @Tags Identity, Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} router.successResponse{data=ProfileResponse} "Account details"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 404 {object} router.errorResponse "Account not found"
// @Router /api/auth/me [get]
func (h *HTTPEndpoint) Profile(r *router.Request) (any, error) {
	resp, err := h.uc.Profile(r.Context())
	if err != nil {
		return nil, err
	}

	return ProfileResponse{
		UserID:    resp.UserID,
		Email:     resp.Email,
		Name:      resp.Name,
		Verified:  resp.Verified,
		CreatedAt: resp.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}
