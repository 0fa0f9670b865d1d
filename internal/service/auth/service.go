package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	jwxjwt "github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/peoplehr/hr-backend-go/internal/config"
	"github.com/peoplehr/hr-backend-go/internal/domain/auth"
	"github.com/peoplehr/hr-backend-go/internal/domain/user"
	"github.com/peoplehr/hr-backend-go/internal/pkg/jwt"
	"github.com/peoplehr/hr-backend-go/internal/pkg/oauth"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwt.Service
	oauth.GoogleService
	policy config.PolicyConfig
}

func NewAuthService(userRepository user.UserRepository, jwtService jwt.Service, googleService oauth.GoogleService, policy config.PolicyConfig) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepository,
		Service:        jwtService,
		GoogleService:  googleService,
		policy:         policy,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (a *AuthServiceImpl) issueTokens(u user.User) (auth.TokenResponse, error) {
	var resp auth.TokenResponse
	var err error

	resp.AccessToken, resp.AccessTokenExpiresAt, err = a.Service.GenerateAccessToken(u.ID, u.Email)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	resp.RefreshToken, resp.RefreshTokenExpiresAt, err = a.Service.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	resp.User = user.NewUserResponse(u)
	return resp, nil
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	role, _ := user.ParseRole(req.Role)
	if a.policy.LockRegistrationRole {
		role = user.RoleEmployee
	}

	hashed, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := a.UserRepository.Create(ctx, user.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: &hashed,
		Role:         role,
		HourlyRate:   req.HourlyRate,
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return a.issueTokens(created)
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if userData.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(userData)
}

// Refresh implements auth.AuthService.
func (a *AuthServiceImpl) Refresh(ctx context.Context, req auth.RefreshRequest) (auth.TokenResponse, error) {
	token, err := jwtauth.VerifyToken(a.Service.JWTAuth(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, jwxjwt.ErrTokenExpired()) {
			return auth.TokenResponse{}, auth.ErrTokenExpired
		}
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	tokenType, _ := token.Get("type")
	if tokenType != "refresh" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	userID, ok := token.Get("user_id")
	if !ok {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	userIDStr, ok := userID.(string)
	if !ok {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	userData, err := a.UserRepository.GetByID(ctx, userIDStr)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	var resp auth.TokenResponse
	resp.AccessToken, resp.AccessTokenExpiresAt, err = a.Service.GenerateAccessToken(userData.ID, userData.Email)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	resp.User = user.NewUserResponse(userData)

	return resp, nil
}

// LoginWithGoogle implements auth.AuthService.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, userAgent string) (string, error) {
	state := a.GoogleService.GenerateState(userAgent)
	if state == "" {
		return "", fmt.Errorf("failed to generate oauth state")
	}
	return a.GoogleService.RedirectURL(state), nil
}

// OAuthCallbackGoogle implements auth.AuthService.
func (a *AuthServiceImpl) OAuthCallbackGoogle(ctx context.Context, code string) (auth.TokenResponse, error) {
	oauthToken, err := a.GoogleService.VerifyToken(ctx, code)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	info, err := a.GoogleService.VerifyUser(ctx, oauthToken)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to verify google user: %w", err)
	}
	if info.Email == "" {
		return auth.TokenResponse{}, auth.ErrOAuthEmailMissing
	}

	userData, err := a.UserRepository.GetByEmail(ctx, info.Email)
	if err != nil {
		if !errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
		}

		// First Google sign-in creates an employee account without a
		// password.
		provider := "google"
		userData, err = a.UserRepository.Create(ctx, user.User{
			Name:            info.Name,
			Email:           info.Email,
			Role:            user.RoleEmployee,
			OAuthProvider:   &provider,
			OAuthProviderID: &info.GoogleID,
		})
		if err != nil {
			return auth.TokenResponse{}, err
		}
	} else if userData.OAuthProviderID == nil {
		userData, err = a.UserRepository.LinkGoogleAccount(ctx, info.GoogleID, info.Email)
		if err != nil {
			return auth.TokenResponse{}, fmt.Errorf("failed to link google account: %w", err)
		}
	}

	return a.issueTokens(userData)
}

// Me implements auth.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context) (user.UserResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.NewUserResponse(actor), nil
}
