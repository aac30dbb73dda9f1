package typedpool

import "sync"

// Pool is a typed wrapper around a sync.Pool holding *T values.
type Pool[T any] struct {
	pool sync.Pool
}

func New[T any]() *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any { return new(T) },
		},
	}
}

func (p *Pool[T]) Get() *T {
	return p.pool.Get().(*T)
}

func (p *Pool[T]) Put(value *T) {
	p.pool.Put(value)
}
