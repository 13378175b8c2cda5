package validate

import (
	"context"

	"github.com/Gunvolt24/food_orders/internal/domain"
)

var _ Step = RoleAllowlist{}

// RoleAllowlist - ограничение эндпоинта набором ролей.
// Ставится после AuthorizationValidator, когда роль уже подтверждена.
type RoleAllowlist struct {
	allowed map[domain.Role]struct{}
}

func AllowRoles(roles ...domain.Role) RoleAllowlist {
	allowed := make(map[domain.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return RoleAllowlist{allowed: allowed}
}

func (a RoleAllowlist) Handle(_ context.Context, vc *Context) error {
	if _, ok := a.allowed[vc.Role]; ok {
		return nil
	}
	switch vc.Role {
	case domain.RoleCustomer, domain.RoleVendor, domain.RoleAdmin:
		return unauthorized("role " + vc.Role.String() + " is not allowed for this operation")
	default:
		return &Failure{Kind: KindUnrecognized, Reason: "role is not recognized"}
	}
}
