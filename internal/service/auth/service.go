// Package auth implements the demo login: bcrypt-checked demo accounts,
// HMAC-signed tokens carrying the user's role, and the pure role-to-route
// mapping the mobile client follows after login.
package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"quickbite/internal/domain"
	userrepo "quickbite/internal/repository/user"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// redirectRoutes maps a role to the dashboard the client should land on.
var redirectRoutes = map[string]string{
	domain.RoleCustomer:   "/",
	domain.RoleRestaurant: "/restaurant/dashboard",
	domain.RoleDelivery:   "/delivery/dashboard",
	domain.RoleAdmin:      "/admin/dashboard",
}

// RouteForRole returns the post-login route for a role, defaulting to
// the storefront home for anything unknown.
func RouteForRole(role string) string {
	if route, ok := redirectRoutes[role]; ok {
		return route
	}
	return "/"
}

type userRepo interface {
	Create(ctx context.Context, in userrepo.CreateUserInput) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type Service struct {
	repo     userRepo
	secret   []byte
	tokenTTL time.Duration
}

func New(repo userRepo, secret string, tokenTTL time.Duration) *Service {
	return &Service{repo: repo, secret: []byte(secret), tokenTTL: tokenTTL}
}

type LoginResult struct {
	User       *domain.User `json:"user"`
	Token      string       `json:"token"`
	RedirectTo string       `json:"redirectTo"`
}

func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(u)
	if err != nil {
		return nil, err
	}
	return &LoginResult{User: u, Token: token, RedirectTo: RouteForRole(u.Role)}, nil
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	if strings.TrimSpace(in.Email) == "" {
		return nil, errors.New("email required")
	}
	if len(in.Password) < 6 {
		return nil, errors.New("password must be at least 6 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, userrepo.CreateUserInput{
		Name:         strings.TrimSpace(in.Name),
		Email:        in.Email,
		Phone:        strings.TrimSpace(in.Phone),
		Role:         domain.RoleCustomer,
		PasswordHash: string(hash),
	})
}

// Claims carried by the session token.
type Claims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func (s *Service) issueToken(u *domain.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: u.ID,
		Role:   u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ParseToken validates a bearer token and returns its claims.
func (s *Service) ParseToken(token string) (*Claims, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidCredentials
	}
	return &claims, nil
}

func (s *Service) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}
