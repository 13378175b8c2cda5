package ports

import (
	"context"

	"github.com/google/uuid"
)

// Порты к внешнему сервису пользователей. Любая ошибка означает сбой
// самого вызова, а не ответ "нет".

// RoleChecker - принадлежность пользователя к роли.
type RoleChecker interface {
	IsCustomer(ctx context.Context, userID uuid.UUID) (bool, error)
	IsVendor(ctx context.Context, userID uuid.UUID) (bool, error)
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}

// ExistenceChecker - наличие записи пользователя в каталоге роли.
type ExistenceChecker interface {
	CustomerExists(ctx context.Context, userID uuid.UUID) (bool, error)
	VendorExists(ctx context.Context, userID uuid.UUID) (bool, error)
	AdminExists(ctx context.Context, userID uuid.UUID) (bool, error)
}
