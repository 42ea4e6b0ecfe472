package heuristic

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/gridroute/gridgraph"
)

// ErrUnknownKind indicates a heuristic name or Kind that is not defined.
var ErrUnknownKind = errors.New("heuristic: unknown kind")

// Kind names one of the supported estimates.
type Kind int

const (
	// Null always estimates 0.
	Null Kind = iota
	// Manhattan is the L1 distance.
	Manhattan
	// Chebyshev is the L∞ distance.
	Chebyshev
	// Octile is the 8-connected move distance.
	Octile
	// Euclidean is the L2 distance.
	Euclidean
)

var kindNames = [...]string{
	Null:      "null",
	Manhattan: "manhattan",
	Chebyshev: "chebyshev",
	Octile:    "octile",
	Euclidean: "euclidean",
}

// Kinds lists every defined Kind in declaration order.
func Kinds() []Kind {
	return []Kind{Null, Manhattan, Chebyshev, Octile, Euclidean}
}

// String returns the lower-case name of k.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}

	return kindNames[k]
}

// ParseKind maps a case-insensitive name to its Kind.
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for k, s := range kindNames {
		if s == n {
			return Kind(k), nil
		}
	}

	return Null, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Func estimates the remaining cost from u to v.
type Func func(u, v gridgraph.Cell) float64

// Default step costs.
const (
	DefaultStep     = 1.0
	DefaultDiagonal = 1.4
)

// Provider holds the orthogonal and diagonal step constants of the estimates.
type Provider struct {
	Step     float64
	Diagonal float64
}

// NewProvider returns a Provider with the given step constants.
func NewProvider(step, diagonal float64) Provider {
	return Provider{Step: step, Diagonal: diagonal}
}

// DefaultProvider returns Provider{Step: 1.0, Diagonal: 1.4}.
func DefaultProvider() Provider {
	return NewProvider(DefaultStep, DefaultDiagonal)
}

// Func returns the estimate for kind, or ErrUnknownKind.
func (p Provider) Func(kind Kind) (Func, error) {
	switch kind {
	case Null:
		return p.Null, nil
	case Manhattan:
		return p.Manhattan, nil
	case Chebyshev:
		return p.Chebyshev, nil
	case Octile:
		return p.Octile, nil
	case Euclidean:
		return p.Euclidean, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
}

// Null returns 0.
func (p Provider) Null(_, _ gridgraph.Cell) float64 { return 0 }

// Manhattan returns Step·(|Δr|+|Δc|).
func (p Provider) Manhattan(u, v gridgraph.Cell) float64 {
	dr, dc := delta(u, v)

	return p.Step * (dr + dc)
}

// Chebyshev returns Step·max(|Δr|,|Δc|).
func (p Provider) Chebyshev(u, v gridgraph.Cell) float64 {
	dr, dc := delta(u, v)

	return p.Step * math.Max(dr, dc)
}

// Octile returns Step·max(|Δr|,|Δc|) + (Diagonal−Step)·min(|Δr|,|Δc|).
func (p Provider) Octile(u, v gridgraph.Cell) float64 {
	dr, dc := delta(u, v)

	return p.Step*math.Max(dr, dc) + (p.Diagonal-p.Step)*math.Min(dr, dc)
}

// Euclidean returns Step·√(Δr²+Δc²).
func (p Provider) Euclidean(u, v gridgraph.Cell) float64 {
	dr, dc := delta(u, v)

	return p.Step * math.Hypot(dr, dc)
}

func delta(u, v gridgraph.Cell) (float64, float64) {
	return math.Abs(float64(u.Row - v.Row)), math.Abs(float64(u.Col - v.Col))
}
