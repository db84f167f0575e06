package prototype

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownVariant is returned when no constructor is registered for a variant.
var ErrUnknownVariant = errors.New("unknown variant")

// Constructor produces a default instance of one concrete variant.
type Constructor func() Value

var registry = struct {
	sync.RWMutex
	ctors map[Variant]Constructor
}{
	ctors: make(map[Variant]Constructor),
}

func init() {
	mustRegister(VariantBase, func() Value { return NewBase() })
	mustRegister(VariantExtended, func() Value { return NewExtended() })
}

func mustRegister(v Variant, ctor Constructor) {
	if err := Register(v, ctor); err != nil {
		panic(err)
	}
}

// Register associates a constructor with a variant tag.
// Registering the same tag twice is an error.
func Register(v Variant, ctor Constructor) error {
	if v == "" {
		return fmt.Errorf("variant cannot be empty")
	}
	if ctor == nil {
		return fmt.Errorf("constructor for variant %q cannot be nil", v)
	}

	registry.Lock()
	defer registry.Unlock()

	if _, exists := registry.ctors[v]; exists {
		return fmt.Errorf("variant %q is already registered", v)
	}
	registry.ctors[v] = ctor
	return nil
}

// New returns a default instance of the given variant.
func New(v Variant) (Value, error) {
	registry.RLock()
	ctor, ok := registry.ctors[v]
	registry.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, v)
	}
	return ctor(), nil
}

// IsRegistered reports whether a constructor exists for the variant.
func IsRegistered(v Variant) bool {
	registry.RLock()
	defer registry.RUnlock()
	_, ok := registry.ctors[v]
	return ok
}

// Variants returns the registered variant tags in sorted order.
func Variants() []Variant {
	registry.RLock()
	variants := make([]Variant, 0, len(registry.ctors))
	for v := range registry.ctors {
		variants = append(variants, v)
	}
	registry.RUnlock()

	sort.Slice(variants, func(i, j int) bool { return variants[i] < variants[j] })
	return variants
}

