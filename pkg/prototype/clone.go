package prototype

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	loggerMu sync.RWMutex
	logger   = zap.NewNop()
)

// SetLogger installs the logger used to trace clone operations.
// A nil logger restores the no-op default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerMu.Lock()
	logger = l
	loggerMu.Unlock()
}

func currentLogger() *zap.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

// hasBase is satisfied by every variant through the embedded Base.
type hasBase interface {
	base() *Base
}

// hasExtended is satisfied by Extended and anything embedding it.
type hasExtended interface {
	hasBase
	extended() *Extended
}

// layer copies the aggregate declared by one level onto a blank instance.
type layer[T any] struct {
	level Variant
	apply func(dst T)
}

func baseLayer[T hasBase](src BaseFields) layer[T] {
	return layer[T]{
		level: VariantBase,
		apply: func(dst T) { dst.base().fields = src },
	}
}

func extendedLayer[T hasExtended](src ExtendedFields) layer[T] {
	return layer[T]{
		level: VariantExtended,
		apply: func(dst T) { dst.extended().ext = src },
	}
}

// assemble builds a clone from a blank instance of the target variant and the
// copied aggregates of each level, applied in hierarchy order.
func assemble[T Value](blank func() T, layers ...layer[T]) T {
	dst := blank()
	log := currentLogger().With(
		zap.String("clone_id", uuid.NewString()),
		zap.String("variant", string(dst.Variant())),
	)
	for _, l := range layers {
		l.apply(dst)
		log.Debug("values cloned", zap.String("level", string(l.level)))
	}
	return dst
}

// Clone returns an independent copy of b.
func (b *Base) Clone() *Base {
	return assemble(NewBase, baseLayer[*Base](b.fields))
}

// Copy implements Value.
func (b *Base) Copy() Value {
	return b.Clone()
}

// Clone returns an independent copy of e, including its base-level fields.
func (e *Extended) Clone() *Extended {
	return assemble(NewExtended,
		baseLayer[*Extended](e.fields),
		extendedLayer[*Extended](e.ext),
	)
}

// Copy implements Value. The dynamic type of the result is *Extended.
func (e *Extended) Copy() Value {
	return e.Clone()
}
