// Package dispatch selects a concrete [ivalset] domain from either an
// explicit type tag or the runtime type of a sample value, and wraps the
// resulting generic [ivalset.Interval]/[ivalset.Set] behind a narrow
// interface so that callers who don't know T at compile time — a config
// file, a CLI flag, a REPL — can still build and combine intervals.
//
// This is spec §4.5's factory/domain dispatch: explicitly called out as an
// external collaborator to the core algebra, kept intentionally thin. It
// carries no algebraic logic of its own; every operation it exposes is a
// direct forward to the wrapped ivalset.Interval/ivalset.Set.
package dispatch

import (
	"fmt"
	"net/netip"
	"strings"
	"time"

	"github.com/gaissmai/extnetip"
	"github.com/google/uuid"

	ivalset "github.com/gaissmai/ivalset"
)

// Kind identifies a domain the factory knows how to build. KindAuto asks
// the factory to infer the domain from the runtime type of a supplied bound
// (spec §4.5 priority 2).
type Kind int

const (
	KindAuto Kind = iota
	KindInt
	KindInt64
	KindFloat64
	KindDate
	KindTime
	KindIPAddr
	KindUUID
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindInt64:
		return "int64"
	case KindFloat64:
		return "float64"
	case KindDate:
		return "date"
	case KindTime:
		return "time"
	case KindIPAddr:
		return "ipaddr"
	case KindUUID:
		return "uuid"
	case KindObject:
		return "object"
	default:
		return "auto"
	}
}

// Ordered is the capability an opaque-object value must provide for the
// factory to build an interval over it when no richer, built-in domain
// matches (spec §4.5 priority 3: "an opaque-object interval requiring only
// < and =").
type Ordered interface {
	CompareTo(other any) int
}

// AnyInterval is the type-erased view of an ivalset.Interval[T] for some T
// chosen by the factory.
type AnyInterval interface {
	fmt.Stringer
	Empty() bool
	Contains(x any) (bool, error)
	Kind() Kind
}

// AnySet is the type-erased view of an ivalset.Set[T] for some T chosen by
// the factory. Two AnySets only combine if they share the same Kind;
// combining across kinds returns a [TypeMismatchError].
type AnySet interface {
	fmt.Stringer
	Kind() Kind
	IsEmpty() bool
	Contains(x any) (bool, error)
	Union(AnySet) (AnySet, error)
	Intersect(AnySet) (AnySet, error)
	Complement() AnySet
	Minus(AnySet) (AnySet, error)
	Equal(AnySet) (bool, error)
}

// TypeMismatchError reports an incompatible kind or value at a dispatch
// boundary (spec §4.5, §7).
type TypeMismatchError struct {
	Want, Got Kind
	Reason    string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("dispatch: type mismatch (want %s, got %s): %s", e.Want, e.Got, e.Reason)
}

// inferKind implements spec §4.5's dispatch priority for a single sample
// value: explicit kind wins if given and consistent, otherwise the type of
// the value itself. A time.Time value is consistent with both KindTime and
// KindDate.
func inferKind(hint Kind, v any) (Kind, error) {
	inferred, err := kindOf(v)
	if hint == KindAuto {
		return inferred, err
	}
	if err == nil && inferred != hint && !(hint == KindDate && inferred == KindTime) {
		return hint, &TypeMismatchError{Want: hint, Got: inferred, Reason: "explicit interval_type conflicts with bound's runtime type"}
	}
	return hint, nil
}

func kindOf(v any) (Kind, error) {
	switch v.(type) {
	case int:
		return KindInt, nil
	case int64:
		return KindInt64, nil
	case float64:
		return KindFloat64, nil
	case time.Time:
		return KindTime, nil
	case netip.Addr:
		return KindIPAddr, nil
	case uuid.UUID:
		return KindUUID, nil
	case Ordered:
		return KindObject, nil
	default:
		return KindAuto, fmt.Errorf("dispatch: cannot infer a domain from %T", v)
	}
}

// NewInterval builds an AnyInterval, dispatching on kind (if not KindAuto)
// or on the runtime type of whichever of lower/upper is non-nil (spec
// §4.5). At least one of lower, upper must be non-nil unless kind is given
// explicitly.
func NewInterval(lower, upper any, lowerClosed, upperClosed bool, kind Kind) (AnyInterval, error) {
	sample := lower
	if sample == nil {
		sample = upper
	}

	resolved := kind
	if sample != nil {
		var err error
		resolved, err = inferKind(kind, sample)
		if err != nil {
			return nil, err
		}
	}
	if resolved == KindAuto {
		return nil, &TypeMismatchError{Reason: "no interval_type and no finite bound to infer one from"}
	}

	switch resolved {
	case KindInt:
		lv, uv, err := asBounds[int](lower, upper, resolved)
		if err != nil {
			return nil, err
		}
		return newWrapper(resolved, ivalset.New(ivalset.Ints(), lv, uv, lowerClosed, upperClosed)), nil
	case KindInt64:
		lv, uv, err := asBounds[int64](lower, upper, resolved)
		if err != nil {
			return nil, err
		}
		return newWrapper(resolved, ivalset.New(ivalset.Int64s(), lv, uv, lowerClosed, upperClosed)), nil
	case KindFloat64:
		lv, uv, err := asBounds[float64](lower, upper, resolved)
		if err != nil {
			return nil, err
		}
		return newWrapper(resolved, ivalset.New(ivalset.Float64s(), lv, uv, lowerClosed, upperClosed)), nil
	case KindDate:
		lv, uv, err := asBounds[time.Time](lower, upper, resolved)
		if err != nil {
			return nil, err
		}
		return newWrapper(resolved, ivalset.New(ivalset.Dates(), lv, uv, lowerClosed, upperClosed)), nil
	case KindTime:
		lv, uv, err := asBounds[time.Time](lower, upper, resolved)
		if err != nil {
			return nil, err
		}
		return newWrapper(resolved, ivalset.New(ivalset.Times(), lv, uv, lowerClosed, upperClosed)), nil
	case KindIPAddr:
		lv, uv, err := asBounds[netip.Addr](lower, upper, resolved)
		if err != nil {
			return nil, err
		}
		return newWrapper(resolved, ivalset.New(ipAddrDomain(), lv, uv, lowerClosed, upperClosed)), nil
	case KindUUID:
		lv, uv, err := asBounds[uuid.UUID](lower, upper, resolved)
		if err != nil {
			return nil, err
		}
		return newWrapper(resolved, ivalset.New(uuidDomain(), lv, uv, lowerClosed, upperClosed)), nil
	case KindObject:
		lv, uv, err := asBounds[Ordered](lower, upper, resolved)
		if err != nil {
			return nil, err
		}
		return newWrapper(resolved, ivalset.New(objectDomain(), lv, uv, lowerClosed, upperClosed)), nil
	default:
		return nil, &TypeMismatchError{Got: resolved, Reason: "unsupported kind"}
	}
}

// asBounds converts the two any bounds to ivalset.Bound[T], treating a nil
// side as Unbounded.
func asBounds[T any](lower, upper any, kind Kind) (ivalset.Bound[T], ivalset.Bound[T], error) {
	lv, err := asBound[T](lower, kind)
	if err != nil {
		return ivalset.Bound[T]{}, ivalset.Bound[T]{}, err
	}
	uv, err := asBound[T](upper, kind)
	if err != nil {
		return ivalset.Bound[T]{}, ivalset.Bound[T]{}, err
	}
	return lv, uv, nil
}

func asBound[T any](v any, kind Kind) (ivalset.Bound[T], error) {
	if v == nil {
		return ivalset.Unbounded[T](), nil
	}
	t, ok := v.(T)
	if !ok {
		return ivalset.Bound[T]{}, &TypeMismatchError{Want: kind, Reason: fmt.Sprintf("bound value has type %T", v)}
	}
	return ivalset.Finite(t), nil
}

func ipAddrDomain() ivalset.Domain[netip.Addr] {
	return ivalset.Domain[netip.Addr]{
		Name:     "ipaddr",
		Cmp:      func(a, b netip.Addr) int { return a.Compare(b) },
		Discrete: true,
		Succ:     addrSucc,
		Pred:     addrPred,
	}
}

// addrSucc/addrPred implement the +1/-1 discrete step over netip.Addr via
// big-endian byte arithmetic, matching the Range semantics the teacher's
// own CIDR example already depends on via extnetip.Range.
func addrSucc(a netip.Addr) netip.Addr {
	b := a.AsSlice()
	for i := len(b) - 1; i >= 0; i-- {
		b[i]++
		if b[i] != 0 {
			break
		}
	}
	next, _ := netip.AddrFromSlice(b)
	if a.Is4() {
		next = next.Unmap()
	}
	return next
}

func addrPred(a netip.Addr) netip.Addr {
	b := a.AsSlice()
	for i := len(b) - 1; i >= 0; i-- {
		b[i]--
		if b[i] != 0xff {
			break
		}
	}
	prev, _ := netip.AddrFromSlice(b)
	if a.Is4() {
		prev = prev.Unmap()
	}
	return prev
}

// AddrRange exposes extnetip.Range so callers can build an IP-address
// Interval directly from a netip.Prefix, continuing the teacher's own
// CIDR-as-interval example.
func AddrRange(p netip.Prefix) (lo, hi netip.Addr) {
	return extnetip.Range(p)
}

func uuidDomain() ivalset.Domain[uuid.UUID] {
	return ivalset.Domain[uuid.UUID]{
		Name: "uuid",
		Cmp: func(a, b uuid.UUID) int {
			return strings.Compare(a.String(), b.String())
		},
	}
}

func objectDomain() ivalset.Domain[Ordered] {
	return ivalset.Domain[Ordered]{
		Name: "object",
		Cmp:  func(a, b Ordered) int { return a.CompareTo(b) },
	}
}

// NewSet builds an AnySet from a bag of AnyIntervals, all of which must
// share the same Kind. With no elements and KindAuto, the factory defaults
// to the opaque-object domain (spec §4.5).
func NewSet(kind Kind, ivs ...AnyInterval) (AnySet, error) {
	resolved := kind
	for _, iv := range ivs {
		if resolved == KindAuto {
			resolved = iv.Kind()
			continue
		}
		if iv.Kind() != resolved {
			return nil, &TypeMismatchError{Want: resolved, Got: iv.Kind(), Reason: "mixed domains in one set"}
		}
	}
	if resolved == KindAuto {
		resolved = KindObject
	}

	switch resolved {
	case KindInt:
		return newSetWrapper(resolved, ivalset.Ints(), extractAll[int](ivs)), nil
	case KindInt64:
		return newSetWrapper(resolved, ivalset.Int64s(), extractAll[int64](ivs)), nil
	case KindFloat64:
		return newSetWrapper(resolved, ivalset.Float64s(), extractAll[float64](ivs)), nil
	case KindDate:
		return newSetWrapper(resolved, ivalset.Dates(), extractAll[time.Time](ivs)), nil
	case KindTime:
		return newSetWrapper(resolved, ivalset.Times(), extractAll[time.Time](ivs)), nil
	case KindIPAddr:
		return newSetWrapper(resolved, ipAddrDomain(), extractAll[netip.Addr](ivs)), nil
	case KindUUID:
		return newSetWrapper(resolved, uuidDomain(), extractAll[uuid.UUID](ivs)), nil
	case KindObject:
		return newSetWrapper(resolved, objectDomain(), extractAll[Ordered](ivs)), nil
	default:
		return nil, &TypeMismatchError{Got: resolved, Reason: "unsupported kind"}
	}
}

func extractAll[T any](ivs []AnyInterval) []ivalset.Interval[T] {
	out := make([]ivalset.Interval[T], 0, len(ivs))
	for _, iv := range ivs {
		if w, ok := iv.(*wrapper[T]); ok {
			out = append(out, w.iv)
		}
	}
	return out
}
