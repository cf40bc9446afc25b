package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin     = "admin"
	RoleEncargado = "encargado"
	RoleCamarero  = "camarero"
)

// User representa un usuario del sistema (personal del local).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, encargado, camarero
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
