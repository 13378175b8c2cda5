package validate

import (
	"context"

	"github.com/Gunvolt24/food_orders/pkg/metrics"
)

// Step - одна проверка конвейера. nil - проверка пройдена.
// Реализации не хранят состояние запроса и безопасны для конкурентного использования.
type Step interface {
	Handle(ctx context.Context, vc *Context) error
}

// StepFunc - адаптер функции к Step.
type StepFunc func(ctx context.Context, vc *Context) error

func (f StepFunc) Handle(ctx context.Context, vc *Context) error { return f(ctx, vc) }

// Pipeline - упорядоченная цепочка шагов, собирается один раз на эндпоинт.
type Pipeline struct {
	name  string
	steps []Step
}

// NewPipeline - конвейер name из шагов steps (выполняются в переданном порядке).
func NewPipeline(name string, steps ...Step) *Pipeline {
	return &Pipeline{name: name, steps: append([]Step(nil), steps...)}
}

func (p *Pipeline) Name() string { return p.name }

// Run - прогоняет vc через все шаги; первый отказ прерывает выполнение.
// Возвращает nil или *Failure. Отмена ctx проверяется только между шагами.
func (p *Pipeline) Run(ctx context.Context, vc *Context) error {
	if vc == nil {
		vc = &Context{}
	}
	for _, step := range p.steps {
		if err := ctx.Err(); err != nil {
			return p.fail(upstream("request abandoned", err))
		}
		err := step.Handle(ctx, vc)
		if err == nil {
			continue
		}
		f, ok := AsFailure(err)
		if !ok {
			f = upstream("step failed", err)
		}
		return p.fail(f)
	}
	return nil
}

func (p *Pipeline) fail(f *Failure) *Failure {
	metrics.ValidationFailures.WithLabelValues(p.name, f.Kind.String()).Inc()
	return f
}
