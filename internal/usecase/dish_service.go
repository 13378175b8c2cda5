package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Gunvolt24/food_orders/internal/domain"
	"github.com/Gunvolt24/food_orders/internal/ports"
	"github.com/Gunvolt24/food_orders/pkg/validate"
	"github.com/google/uuid"
)

var _ ports.DishService = (*DishService)(nil)

// DishService - меню вендоров. Цена блюда в уже собранных заказах не меняется:
// строка заказа хранит цену на момент добавления.
type DishService struct {
	repo  ports.DishRepository
	pipes *DishPipelines
	log   ports.Logger
}

func NewDishService(repo ports.DishRepository, pipes *DishPipelines, log ports.Logger) *DishService {
	return &DishService{repo: repo, pipes: pipes, log: log}
}

func (s *DishService) CreateDish(ctx context.Context, actor domain.Actor, req *domain.DishRequest) (*domain.Dish, error) {
	vc := validate.NewContext(actor)
	vc.DishRequest = req
	if err := s.run(ctx, s.pipes.Create, vc); err != nil {
		return nil, err
	}

	dish := &domain.Dish{
		ID:          uuid.New(),
		VendorID:    actor.ID,
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		UnitPrice:   req.UnitPrice,
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}
	if err := s.repo.Create(ctx, dish); err != nil {
		s.log.Errorf(ctx, "repo.Create failed dish=%s err=%v", dish.ID, err)
		return nil, fmt.Errorf("create dish: %w", err)
	}
	s.log.Infof(ctx, "dish created dish=%s vendor=%s", dish.ID, dish.VendorID)
	return dish, nil
}

func (s *DishService) GetDish(ctx context.Context, actor domain.Actor, dishID uuid.UUID) (*domain.Dish, error) {
	vc := validate.NewContext(actor)
	vc.DishID = dishID
	if err := s.run(ctx, s.pipes.Get, vc); err != nil {
		return nil, err
	}
	return vc.LoadedDish(), nil
}

func (s *DishService) ListVendorDishes(ctx context.Context, actor domain.Actor, vendorID uuid.UUID) ([]*domain.Dish, error) {
	if err := s.run(ctx, s.pipes.List, validate.NewContext(actor)); err != nil {
		return nil, err
	}
	if vendorID == uuid.Nil {
		return nil, &validate.Failure{Kind: validate.KindBadRequest, Field: validate.FieldUser, Reason: "vendor id is required"}
	}

	dishes, err := s.repo.ListByVendor(ctx, vendorID)
	if err != nil {
		s.log.Errorf(ctx, "repo.ListByVendor failed vendor=%s err=%v", vendorID, err)
		return nil, fmt.Errorf("list dishes: %w", err)
	}
	return dishes, nil
}

func (s *DishService) UpdateDish(
	ctx context.Context,
	actor domain.Actor,
	dishID uuid.UUID,
	req *domain.DishRequest,
) (*domain.Dish, error) {
	vc := validate.NewContext(actor)
	vc.DishID = dishID
	vc.DishRequest = req
	if err := s.run(ctx, s.pipes.Update, vc); err != nil {
		return nil, err
	}

	dish := *vc.LoadedDish()
	dish.Name = strings.TrimSpace(req.Name)
	dish.Description = strings.TrimSpace(req.Description)
	dish.UnitPrice = req.UnitPrice

	updated, err := s.repo.Update(ctx, &dish)
	if err != nil {
		s.log.Errorf(ctx, "repo.Update failed dish=%s err=%v", dishID, err)
		return nil, fmt.Errorf("update dish: %w", err)
	}
	if !updated {
		return nil, dishGone()
	}
	return &dish, nil
}

func (s *DishService) DeleteDish(ctx context.Context, actor domain.Actor, dishID uuid.UUID) error {
	vc := validate.NewContext(actor)
	vc.DishID = dishID
	if err := s.run(ctx, s.pipes.Delete, vc); err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, dishID)
	if err != nil {
		s.log.Errorf(ctx, "repo.Delete failed dish=%s err=%v", dishID, err)
		return fmt.Errorf("delete dish: %w", err)
	}
	if !deleted {
		return dishGone()
	}
	s.log.Infof(ctx, "dish deleted dish=%s by=%s", dishID, actor.Role)
	return nil
}

func (s *DishService) run(ctx context.Context, pipe *validate.Pipeline, vc *validate.Context) error {
	if err := pipe.Run(ctx, vc); err != nil {
		s.log.Warnf(ctx, "%s rejected actor=%s err=%v", pipe.Name(), vc.ActorID, err)
		return err
	}
	return nil
}

func dishGone() *validate.Failure {
	return &validate.Failure{Kind: validate.KindNotFound, Field: validate.FieldDish, Reason: "dish was already deleted"}
}
