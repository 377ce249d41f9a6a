package store

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	opsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dentio_store_operations_total",
		Help: "Store operations by backend and operation.",
	}, []string{"backend", "op"})

	failuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dentio_store_failures_total",
		Help: "Failed store operations by backend and operation.",
	}, []string{"backend", "op"})
)

// Instrumented decorates a Store with prometheus counters.
type Instrumented struct {
	inner   Store
	backend string
}

func NewInstrumented(inner Store, backend string) *Instrumented {
	return &Instrumented{inner: inner, backend: backend}
}

func (s *Instrumented) observe(op string, err error) {
	opsTotal.WithLabelValues(s.backend, op).Inc()
	if err != nil {
		failuresTotal.WithLabelValues(s.backend, op).Inc()
	}
}

func (s *Instrumented) Load(ctx context.Context, slot string) ([]byte, error) {
	data, err := s.inner.Load(ctx, slot)
	s.observe("load", err)
	return data, err
}

func (s *Instrumented) Save(ctx context.Context, slot string, data []byte) error {
	err := s.inner.Save(ctx, slot, data)
	s.observe("save", err)
	return err
}

func (s *Instrumented) Has(ctx context.Context, slot string) (bool, error) {
	ok, err := s.inner.Has(ctx, slot)
	s.observe("has", err)
	return ok, err
}

func (s *Instrumented) Delete(ctx context.Context, slot string) error {
	err := s.inner.Delete(ctx, slot)
	s.observe("delete", err)
	return err
}
