package inbound

import (
	"context"

	"github.com/shandysiswandi/studytrack/internal/identity/usecase"
	"github.com/shandysiswandi/studytrack/internal/pkg/router"
)

type uc interface {
	Signup(ctx context.Context, in usecase.SignupInput) (*usecase.SignupOutput, error)
	VerifyOTP(ctx context.Context, in usecase.VerifyOTPInput) (*usecase.VerifyOTPOutput, error)
	CompleteSignup(ctx context.Context, in usecase.CompleteSignupInput) (*usecase.CompleteSignupOutput, error)
	ResendOTP(ctx context.Context, in usecase.ResendOTPInput) (*usecase.ResendOTPOutput, error)

	LoginOTP(ctx context.Context, in usecase.LoginOTPInput) (*usecase.LoginOTPOutput, error)
	LoginVerify(ctx context.Context, in usecase.LoginVerifyInput) (*usecase.LoginVerifyOutput, error)
	Login(ctx context.Context, in usecase.LoginInput) (*usecase.LoginOutput, error)
	RefreshToken(ctx context.Context, in usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error)

	Profile(ctx context.Context) (*usecase.ProfileOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Signup flow
	r.POST("/api/auth/signup", end.Signup)
	r.POST("/api/auth/verify-otp", end.VerifyOTP)
	r.POST("/api/auth/complete-signup", end.CompleteSignup)
	r.POST("/api/auth/resend-otp", end.ResendOTP)

	// Login flow
	r.POST("/api/auth/login-otp", end.LoginOTP)
	r.POST("/api/auth/login-verify", end.LoginVerify)
	r.POST("/api/auth/login", end.Login)
	r.POST("/api/auth/refresh", end.RefreshToken)

	// Profile (need authenticated)
	r.GET("/api/auth/me", end.Profile)
}
