package domain

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// ErrUnknownRole - строка роли не соответствует ни одной из известных ролей.
var ErrUnknownRole = errors.New("unknown role")

// Role - заявленная вызывающей стороной роль пользователя.
// Нулевое значение (RoleUnknown) означает, что роль не задана.
type Role uint8

const (
	RoleUnknown Role = iota
	RoleCustomer
	RoleVendor
	RoleAdmin
)

// ParseRole - разбирает роль из строки (регистр и пробелы не важны).
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "customer":
		return RoleCustomer, nil
	case "vendor":
		return RoleVendor, nil
	case "admin":
		return RoleAdmin, nil
	default:
		return RoleUnknown, ErrUnknownRole
	}
}

func (r Role) String() string {
	switch r {
	case RoleCustomer:
		return "customer"
	case RoleVendor:
		return "vendor"
	case RoleAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// Actor - идентифицированный пользователь, от имени которого выполняется запрос.
type Actor struct {
	ID   uuid.UUID
	Role Role
}
