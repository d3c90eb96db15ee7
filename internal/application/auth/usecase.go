package auth

import (
	"golang.org/x/crypto/bcrypt"
	"github.com/invorya/pos-api/internal/domain"
	pkgjwt "github.com/invorya/pos-api/pkg/jwt"
)

// Config credenciales y parámetros de sesión del operador.
// Terminal de un solo operador: la contraseña viene de la configuración
// (hash bcrypt), no hay tabla de usuarios.
type Config struct {
	PasswordHash string // bcrypt de la contraseña del operador
	JWTSecret    string
	Issuer       string
	ExpMinutes   int
}

// UseCase login del operador del punto de venta.
type UseCase struct {
	cfg Config
}

// NewUseCase construye el caso de uso.
func NewUseCase(cfg Config) *UseCase {
	return &UseCase{cfg: cfg}
}

// Login verifica la contraseña contra el hash bcrypt configurado y emite
// un JWT de sesión. Contraseña incorrecta retorna ErrUnauthorized.
func (uc *UseCase) Login(password string) (string, error) {
	if uc.cfg.PasswordHash == "" || password == "" {
		return "", domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.cfg.PasswordHash), []byte(password)); err != nil {
		return "", domain.ErrUnauthorized
	}
	return pkgjwt.Generate(uc.cfg.JWTSecret, uc.cfg.Issuer, uc.cfg.ExpMinutes)
}
