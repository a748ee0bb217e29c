package mocks

import (
	"context"
	"reziro/infras/otel"
	"slices"
	"sync"
)

// Otel is an in-memory tracer for tests. It remembers span names and the
// errors traced on them.
type Otel struct {
	mu       sync.Mutex
	spans    []string
	errors   []error
	erroring []string
}

// NewScope implements otel.Otel.
func (o *Otel) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.spans = append(o.spans, spanName)

	return ctx, &span{name: spanName, owner: o}
}

// Shutdown implements otel.Otel.
func (o *Otel) Shutdown(context.Context) error {
	return nil
}

func (o *Otel) Spans() []string {
	o.mu.Lock()
	defer o.mu.Unlock()

	return slices.Clone(o.spans)
}

func (o *Otel) Errors() []error {
	o.mu.Lock()
	defer o.mu.Unlock()

	return slices.Clone(o.errors)
}

// ErroredSpans lists, in order, the span that traced each recorded error.
func (o *Otel) ErroredSpans() []string {
	o.mu.Lock()
	defer o.mu.Unlock()

	return slices.Clone(o.erroring)
}

func (o *Otel) recordError(spanName string, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.errors = append(o.errors, err)
	o.erroring = append(o.erroring, spanName)
}

func NewOtel() *Otel {
	return &Otel{}
}
