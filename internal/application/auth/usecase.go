package auth

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/pos-ledger/internal/application/dto"
	"github.com/jhoicas/pos-ledger/internal/domain"
	"github.com/jhoicas/pos-ledger/internal/domain/entity"
	"github.com/jhoicas/pos-ledger/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Passcode código de acceso que habilita un rol. No hay cuentas individuales.
type Passcode struct {
	Code string
	Name string
	Role string // admin, cashier
}

type credential struct {
	hash []byte
	user entity.User
}

// ErrNoPasscodes ningún código de acceso configurado.
var ErrNoPasscodes = errors.New("auth: no hay códigos de acceso configurados")

// AuthUseCase login por código de acceso.
type AuthUseCase struct {
	credentials []credential
	jwtCfg      JWTConfig
}

// NewAuthUseCase hashea los códigos con bcrypt al arrancar; en memoria nunca queda el texto plano.
// Los códigos vacíos se ignoran.
func NewAuthUseCase(passcodes []Passcode, jwtCfg JWTConfig) (*AuthUseCase, error) {
	uc := &AuthUseCase{jwtCfg: jwtCfg}
	for _, p := range passcodes {
		if strings.TrimSpace(p.Code) == "" {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(p.Code), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		name := p.Name
		if name == "" {
			name = p.Role
		}
		uc.credentials = append(uc.credentials, credential{
			hash: hash,
			user: entity.User{ID: p.Role, Name: name, Role: p.Role},
		})
	}
	if len(uc.credentials) == 0 {
		return nil, ErrNoPasscodes
	}
	return uc, nil
}

// Login compara el código contra cada rol y emite un JWT con el rol encontrado.
// Cada login abre una sesión nueva; los carritos se guardan por sesión.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	for _, c := range uc.credentials {
		if bcrypt.CompareHashAndPassword(c.hash, []byte(in.Passcode)) != nil {
			continue
		}
		user := c.user
		user.Session = uuid.NewString()
		token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Name, user.Role, user.Session, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
		if err != nil {
			return nil, err
		}
		return &dto.LoginResponse{
			Token: token,
			User:  toUserResponse(user),
		}, nil
	}
	return nil, domain.ErrUnauthorized
}

func toUserResponse(u entity.User) dto.UserResponse {
	return dto.UserResponse{ID: u.ID, Name: u.Name, Role: u.Role, Session: u.Session}
}
