package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rifapro/rifapro-api/internal/application/dto"
	"github.com/rifapro/rifapro-api/internal/domain"
	"github.com/rifapro/rifapro-api/internal/domain/access"
	"github.com/rifapro/rifapro-api/internal/domain/entity"
	"github.com/rifapro/rifapro-api/internal/domain/repository"
	"github.com/rifapro/rifapro-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Política de reintento para perfiles recién creados: justo después del alta
// la cuenta existe pero el documento de perfil puede no estar visible aún.
const (
	profileMaxAttempts = 3
	profileRetryDelay  = 200 * time.Millisecond
)

// AuthUseCase casos de uso de autenticación: registro, login, alta administrada y perfil.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register alta autoservicio: crea un client_admin en estado pending. El usuario
// queda asociado a su Client cuando complete el onboarding (ClientUseCase.Create).
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         entity.RoleClientAdmin,
		Status:       entity.UserStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// CreateUser alta administrada: solo app_admin y client_admin pueden crear usuarios.
// Un client_admin solo crea usuarios afiliados a su propio cliente. El usuario nace activo.
func (uc *AuthUseCase) CreateUser(actor access.Actor, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !access.CanAccessPage(actor.Role, []string{entity.RoleAppAdmin, entity.RoleClientAdmin}) {
		return nil, domain.ErrForbidden
	}
	if !entity.IsValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	clientID := in.ClientID
	if actor.Role == entity.RoleClientAdmin {
		if clientID != "" && clientID != actor.ClientID {
			return nil, domain.ErrForbidden
		}
		clientID = actor.ClientID
	}
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:                 uuid.New().String(),
		Name:               name,
		Email:              in.Email,
		PasswordHash:       string(hash),
		Role:               in.Role,
		Status:             entity.UserStatusActive,
		ClientID:           clientID,
		NeedsPasswordSetup: true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password, genera JWT con el rol y retorna token + usuario.
// Usuarios pending pueden iniciar sesión para completar el onboarding; inactive no.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status == entity.UserStatusInactive {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.ClientID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// Me carga el perfil del usuario autenticado con reintento acotado: tras un alta
// el documento puede no existir todavía, así que se reintenta con backoff fijo
// hasta profileMaxAttempts antes de responder ErrUserNotFound.
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	for attempt := 1; ; attempt++ {
		user, err := uc.userRepo.GetByID(userID)
		if err != nil {
			return nil, err
		}
		if user != nil {
			return toUserResponse(user), nil
		}
		if attempt >= profileMaxAttempts {
			return nil, domain.ErrUserNotFound
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(profileRetryDelay):
		}
	}
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:                 u.ID,
		Name:               u.Name,
		Email:              u.Email,
		Role:               u.Role,
		Status:             u.Status,
		ClientID:           u.ClientID,
		NeedsPasswordSetup: u.NeedsPasswordSetup,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
}
