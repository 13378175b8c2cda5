package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gunvolt24/food_orders/internal/domain"
	"github.com/Gunvolt24/food_orders/internal/ports"
	"github.com/Gunvolt24/food_orders/pkg/validate"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var _ ports.OrderService = (*OrderService)(nil)

// OrderService - операции над заказами. Любое изменение выполняется только
// после успешного прохождения конвейера своего эндпоинта.
type OrderService struct {
	repo   ports.OrderRepository
	cache  ports.OrderCache
	events ports.EventPublisher
	pipes  *OrderPipelines
	log    ports.Logger
	now    func() time.Time
}

func NewOrderService(
	repo ports.OrderRepository,
	cache ports.OrderCache,
	events ports.EventPublisher,
	pipes *OrderPipelines,
	log ports.Logger,
) *OrderService {
	return &OrderService{
		repo:   repo,
		cache:  cache,
		events: events,
		pipes:  pipes,
		log:    log,
		now:    func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

func (s *OrderService) CreateOrder(ctx context.Context, actor domain.Actor, req *domain.CreateOrderRequest) (*domain.Order, error) {
	vc := validate.NewContext(actor)
	vc.CreateOrder = req
	if err := s.run(ctx, s.pipes.Create, vc); err != nil {
		return nil, err
	}

	now := s.now()
	order := &domain.Order{
		ID:         uuid.New(),
		CustomerID: actor.ID,
		VendorID:   req.VendorID,
		DishLines:  []domain.DishLine{},
		TotalPrice: decimal.Zero,
		Status:     domain.StatusPending,
		Address:    *req.Address,
		Version:    1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.Create(ctx, order); err != nil {
		s.log.Errorf(ctx, "repo.Create failed order=%s err=%v", order.ID, err)
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.cacheSet(ctx, order)
	s.publish(ctx, domain.OrderCreated, order)
	s.log.Infof(ctx, "order created order=%s customer=%s vendor=%s", order.ID, order.CustomerID, order.VendorID)
	return order, nil
}

// GetOrder - заказ читается конвейером (через кэш) и отдаётся как есть.
func (s *OrderService) GetOrder(ctx context.Context, actor domain.Actor, orderID uuid.UUID) (*domain.Order, error) {
	vc := validate.NewContext(actor)
	vc.OrderID = orderID
	if err := s.run(ctx, s.pipes.Get, vc); err != nil {
		return nil, err
	}
	return vc.LoadedOrder(), nil
}

// ListOrders - админ видит все заказы, клиент и вендор только свои.
func (s *OrderService) ListOrders(ctx context.Context, actor domain.Actor, limit, offset int) ([]*domain.Order, error) {
	if err := s.run(ctx, s.pipes.List, validate.NewContext(actor)); err != nil {
		return nil, err
	}

	filter := domain.OrderFilter{Limit: limit, Offset: offset}
	switch actor.Role {
	case domain.RoleCustomer:
		filter.CustomerID = actor.ID
	case domain.RoleVendor:
		filter.VendorID = actor.ID
	}

	orders, err := s.repo.List(ctx, filter)
	if err != nil {
		s.log.Errorf(ctx, "repo.List failed actor=%s limit=%d offset=%d err=%v", actor.ID, limit, offset, err)
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// DeleteOrder - клиент может удалить только ещё не принятый заказ, админ - любой.
func (s *OrderService) DeleteOrder(ctx context.Context, actor domain.Actor, orderID uuid.UUID) error {
	vc := validate.NewContext(actor)
	vc.OrderID = orderID
	if err := s.run(ctx, s.pipes.Delete, vc); err != nil {
		return err
	}

	order := vc.LoadedOrder()
	if actor.Role == domain.RoleCustomer && order.Status != domain.StatusPending {
		return rejectOrder("only a pending order can be cancelled by the customer")
	}

	deleted, err := s.repo.Delete(ctx, orderID)
	if err != nil {
		s.log.Errorf(ctx, "repo.Delete failed order=%s err=%v", orderID, err)
		return fmt.Errorf("delete order: %w", err)
	}
	s.cache.Delete(ctx, orderID)
	if !deleted {
		return &validate.Failure{Kind: validate.KindNotFound, Field: validate.FieldOrder, Reason: "order was already deleted"}
	}

	s.publish(ctx, domain.OrderDeleted, order)
	s.log.Infof(ctx, "order deleted order=%s by=%s", orderID, actor.Role)
	return nil
}

func (s *OrderService) AddDish(
	ctx context.Context,
	actor domain.Actor,
	orderID, dishID uuid.UUID,
	req *domain.DishQuantityRequest,
) (*domain.Order, error) {
	return s.editDishes(ctx, s.pipes.AddDish, actor, orderID, dishID, req,
		func(o *domain.Order, d *domain.Dish) { o.AddDish(*d, req.Quantity) })
}

func (s *OrderService) SetDishQuantity(
	ctx context.Context,
	actor domain.Actor,
	orderID, dishID uuid.UUID,
	req *domain.DishQuantityRequest,
) (*domain.Order, error) {
	return s.editDishes(ctx, s.pipes.SetDishQuantity, actor, orderID, dishID, req,
		func(o *domain.Order, d *domain.Dish) { o.SetDishQuantity(*d, req.Quantity) })
}

func (s *OrderService) RemoveDish(ctx context.Context, actor domain.Actor, orderID, dishID uuid.UUID) (*domain.Order, error) {
	return s.editDishes(ctx, s.pipes.RemoveDish, actor, orderID, dishID, nil,
		func(o *domain.Order, d *domain.Dish) { o.RemoveDish(d.ID) })
}

// editDishes - общий путь изменения строк: конвейер, правила заказа, мутация, сохранение.
func (s *OrderService) editDishes(
	ctx context.Context,
	pipe *validate.Pipeline,
	actor domain.Actor,
	orderID, dishID uuid.UUID,
	req *domain.DishQuantityRequest,
	mutate func(o *domain.Order, d *domain.Dish),
) (*domain.Order, error) {
	vc := validate.NewContext(actor)
	vc.OrderID = orderID
	vc.DishID = dishID
	vc.DishQuantity = req
	if err := s.run(ctx, pipe, vc); err != nil {
		return nil, err
	}

	order, dish := vc.LoadedOrder().Clone(), vc.LoadedDish()
	if order.Status != domain.StatusPending {
		return nil, rejectOrder("dishes can be changed only while the order is pending")
	}
	if dish.VendorID != order.VendorID {
		return nil, &validate.Failure{Kind: validate.KindBadRequest, Field: validate.FieldDish, Reason: "dish belongs to another vendor than the order"}
	}

	mutate(order, dish)
	if len(order.DishLines) > domain.MaxOrderLines {
		return nil, rejectOrder(fmt.Sprintf("order must not have more than %d dish lines", domain.MaxOrderLines))
	}
	// итог хранится в той же NUMERIC(12, 2), что и цена блюда
	if !domain.AmountFits(order.TotalPrice) {
		return nil, rejectOrder("order total must not exceed " + domain.MaxAmount.StringFixed(domain.PriceScale))
	}
	if err := s.save(ctx, order, domain.OrderDishesChanged); err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateStatus - финальный статус (delivered, rejected) больше не меняется.
func (s *OrderService) UpdateStatus(
	ctx context.Context,
	actor domain.Actor,
	orderID uuid.UUID,
	req *domain.UpdateStatusRequest,
) (*domain.Order, error) {
	vc := validate.NewContext(actor)
	vc.OrderID = orderID
	vc.UpdateStatus = req
	if err := s.run(ctx, s.pipes.UpdateStatus, vc); err != nil {
		return nil, err
	}

	order := vc.LoadedOrder().Clone()
	if order.Status == req.Status {
		return order, nil
	}
	if order.Status.IsTerminal() {
		return nil, rejectOrder("order status " + string(order.Status) + " is final")
	}

	order.Status = req.Status
	if err := s.save(ctx, order, domain.OrderStatusChanged); err != nil {
		return nil, err
	}
	return order, nil
}

// ApplyDeliveryStatus - статус из сервиса доставки (Kafka).
// Невалидное событие оборачивает domain.ErrInvalidDeliveryEvent, прочие ошибки временные.
func (s *OrderService) ApplyDeliveryStatus(ctx context.Context, raw []byte) error {
	ev, err := validate.DeliveryEventFromJSON(raw)
	if err != nil {
		s.log.Warnf(ctx, "delivery event rejected err=%v", err)
		return err
	}

	order, err := s.repo.FindOrder(ctx, ev.OrderID)
	if err != nil {
		s.log.Errorf(ctx, "repo.FindOrder failed order=%s err=%v", ev.OrderID, err)
		return fmt.Errorf("find order: %w", err)
	}
	if order == nil {
		return fmt.Errorf("%w: order %s does not exist", domain.ErrInvalidDeliveryEvent, ev.OrderID)
	}
	if order.Status == ev.Status {
		return nil // повторная доставка сообщения
	}
	if order.Status.IsTerminal() {
		return fmt.Errorf("%w: order %s is already %s", domain.ErrInvalidDeliveryEvent, order.ID, order.Status)
	}

	order.Status = ev.Status
	if err := s.save(ctx, order, domain.OrderStatusChanged); err != nil {
		return err
	}
	return nil
}

// WarmUpCache - прогрев кэша последними n заказами; n <= 0 - пропуск.
func (s *OrderService) WarmUpCache(ctx context.Context, n int) error {
	if n <= 0 {
		s.log.Warnf(ctx, "cache warm-up skipped: n <= 0 (n=%d)", n)
		return nil
	}

	start := time.Now()
	list, err := s.repo.LastN(ctx, n)
	if err != nil {
		s.log.Errorf(ctx, "repo.LastN failed n=%d err=%v", n, err)
		return err
	}
	if warmUpErr := s.cache.WarmUp(ctx, list); warmUpErr != nil {
		s.log.Warnf(ctx, "cache.WarmUp failed err=%v", warmUpErr)
	}
	s.log.Infof(ctx, "cache warmed with %d orders in %s", len(list), time.Since(start))
	return nil
}

func (s *OrderService) run(ctx context.Context, pipe *validate.Pipeline, vc *validate.Context) error {
	if err := pipe.Run(ctx, vc); err != nil {
		s.log.Warnf(ctx, "%s rejected actor=%s err=%v", pipe.Name(), vc.ActorID, err)
		return err
	}
	return nil
}

// save - версионное сохранение, затем кэш и событие (их сбой не откатывает заказ).
func (s *OrderService) save(ctx context.Context, order *domain.Order, event domain.OrderEventType) error {
	order.RecomputeTotalPrice()
	order.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, order); err != nil {
		if errors.Is(err, domain.ErrVersionConflict) {
			s.log.Warnf(ctx, "repo.Update conflict order=%s version=%d", order.ID, order.Version)
			s.cache.Evict(ctx, order.ID)
			return err
		}
		s.log.Errorf(ctx, "repo.Update failed order=%s err=%v", order.ID, err)
		return fmt.Errorf("update order: %w", err)
	}

	s.cacheSet(ctx, order)
	s.publish(ctx, event, order)
	return nil
}

func (s *OrderService) cacheSet(ctx context.Context, order *domain.Order) {
	if err := s.cache.Set(ctx, order); err != nil {
		s.log.Warnf(ctx, "cache.Set failed order=%s err=%v", order.ID, err)
	}
}

func (s *OrderService) publish(ctx context.Context, typ domain.OrderEventType, order *domain.Order) {
	if err := s.events.Publish(ctx, domain.NewOrderEvent(typ, order, s.now())); err != nil {
		s.log.Warnf(ctx, "event publish failed type=%s order=%s err=%v", typ, order.ID, err)
	}
}

func rejectOrder(reason string) *validate.Failure {
	return &validate.Failure{Kind: validate.KindBadRequest, Field: validate.FieldOrder, Reason: reason}
}
