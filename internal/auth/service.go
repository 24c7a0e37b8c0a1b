package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"menu-platform-backend/internal/database/models"
	apperrors "menu-platform-backend/internal/errors"
	"menu-platform-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
	"gorm.io/gorm"
)

// AuthService provides authentication functionality: password sign-up and
// sign-in, optional OAuth sign-in, and stateless JWT sessions.
type AuthService struct {
	config   *AuthConfig
	userRepo repository.UserRepositoryInterface
	oauth    *oauth2.Config
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID string `json:"user_id" example:"7e6f9a10-3c93-4b41-9f44-1f1f9bafcf51"`
	Email  string `json:"email" example:"owner@burgerhouse.cl"`
	jwt.RegisteredClaims
}

// TokenResponse is what sign-in/sign-up hand back to the client
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, userRepo repository.UserRepositoryInterface) (*AuthService, error) {
	if config == nil {
		return nil, fmt.Errorf("auth config is required")
	}

	s := &AuthService{
		config:   config,
		userRepo: userRepo,
	}

	if config.OAuth != nil && config.OAuth.ClientID != "" {
		s.oauth = &oauth2.Config{
			ClientID:     config.OAuth.ClientID,
			ClientSecret: config.OAuth.ClientSecret,
			Endpoint:     config.OAuth.Endpoint(),
			RedirectURL:  config.RedirectURL,
			Scopes:       config.OAuth.Scopes,
		}
	}

	return s, nil
}

// SignUp registers a new user with email/password and returns a session token
func (s *AuthService) SignUp(email, password string) (*TokenResponse, error) {
	if _, err := s.userRepo.GetByEmail(email); err == nil {
		return nil, apperrors.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		Provider:     "password",
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.tokenFor(user)
}

// SignIn authenticates an email/password pair and returns a session token.
// Lookup failures and bad passwords are indistinguishable to the caller.
func (s *AuthService) SignIn(email, password string) (*TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.tokenFor(user)
}

// OAuthURL returns the provider authorization URL for the given state
func (s *AuthService) OAuthURL(state string) (string, error) {
	if s.oauth == nil {
		return "", fmt.Errorf("oauth provider is not configured")
	}
	return s.oauth.AuthCodeURL(state), nil
}

// HandleOAuthCallback exchanges an authorization code, fetches the user's
// email from the provider, upserts the local account and issues a token.
func (s *AuthService) HandleOAuthCallback(ctx context.Context, code string) (*TokenResponse, error) {
	if s.oauth == nil {
		return nil, fmt.Errorf("oauth provider is not configured")
	}

	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	email, err := s.fetchEmail(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("failed to look up user: %w", err)
		}
		user = &models.User{Email: email, Provider: "oauth"}
		if err := s.userRepo.Create(user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
	}

	return s.tokenFor(user)
}

func (s *AuthService) fetchEmail(ctx context.Context, token *oauth2.Token) (string, error) {
	client := s.oauth.Client(ctx, token)
	resp, err := client.Get(s.config.OAuth.UserInfoURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("user info request failed with status %d", resp.StatusCode)
	}

	var info struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return "", fmt.Errorf("failed to decode user info: %w", err)
	}
	if info.Email == "" {
		return "", fmt.Errorf("provider returned no email")
	}
	return info.Email, nil
}

func (s *AuthService) tokenFor(user *models.User) (*TokenResponse, error) {
	jwtToken, err := s.GenerateJWT(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT: %w", err)
	}
	return &TokenResponse{
		AccessToken: jwtToken,
		TokenType:   "Bearer",
		ExpiresIn:   int((24 * time.Hour).Seconds()),
		UserID:      user.ID.String(),
		Email:       user.Email,
	}, nil
}

// GenerateJWT creates a JWT token for the user
func (s *AuthService) GenerateJWT(user *models.User) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID: user.ID.String(),
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "menu-platform-backend",
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	if _, err := uuid.Parse(claims.UserID); err != nil {
		return nil, fmt.Errorf("invalid user id in token: %w", err)
	}

	return claims, nil
}

// GenerateState creates a random state string for the OAuth flow
func (s *AuthService) GenerateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
