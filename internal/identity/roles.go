package identity

import (
	"context"
	"errors"

	"github.com/Gunvolt24/food_orders/internal/ports"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var _ ports.RoleChecker = (*Roles)(nil)

// errInOtherRole - внутренний сигнал остановки: пользователь найден в чужом каталоге.
var errInOtherRole = errors.New("user is registered in another role")

// Roles - принадлежность к роли: пользователь НЕ зарегистрирован ни в одной
// из двух других ролей. Наличие записи самой роли проверяется отдельно
// (ExistenceChecker) - только вместе они дают подтверждённую роль.
type Roles struct {
	users ports.ExistenceChecker
}

func NewRoles(users ports.ExistenceChecker) *Roles {
	return &Roles{users: users}
}

func (r *Roles) IsCustomer(ctx context.Context, userID uuid.UUID) (bool, error) {
	return r.noneOf(ctx, userID, r.users.VendorExists, r.users.AdminExists)
}

func (r *Roles) IsVendor(ctx context.Context, userID uuid.UUID) (bool, error) {
	return r.noneOf(ctx, userID, r.users.CustomerExists, r.users.AdminExists)
}

func (r *Roles) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	return r.noneOf(ctx, userID, r.users.CustomerExists, r.users.VendorExists)
}

// noneOf - опрашивает каталоги параллельно; первое попадание отменяет остальные запросы.
func (r *Roles) noneOf(
	ctx context.Context,
	userID uuid.UUID,
	checks ...func(context.Context, uuid.UUID) (bool, error),
) (bool, error) {
	g, gctx := errgroup.WithContext(ctx)
	for _, check := range checks {
		g.Go(func() error {
			found, err := check(gctx, userID)
			if err != nil {
				return err
			}
			if found {
				return errInOtherRole
			}
			return nil
		})
	}

	err := g.Wait()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, errInOtherRole):
		return false, nil
	default:
		return false, err
	}
}
