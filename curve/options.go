// SPDX-License-Identifier: MIT

// Package curve: functional configuration for Sample.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: WithX panics on nonsensical values (programmer
//     error), so Sample never sees an invalid Options.
package curve

import (
	"fmt"
	"strings"
)

// Kind selects the evaluator used by Sample.
type Kind int

const (
	// KindCatmullRom samples a closed Catmull-Rom loop through every point.
	KindCatmullRom Kind = iota
	// KindBezier samples consecutive cubic Bezier spans, cursor step 3.
	KindBezier
	// KindLinear samples the open polyline points[0] .. points[n-1].
	KindLinear
)

var kindNames = [...]string{
	KindCatmullRom: "catmullrom",
	KindBezier:     "bezier",
	KindLinear:     "linear",
}

// String returns the lower-case kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

func (k Kind) valid() bool {
	return k >= 0 && int(k) < len(kindNames)
}

// ParseKind maps a case-insensitive name ("catmullrom", "bezier", "linear")
// to its Kind. Unknown names return ErrUnknownKind.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, curveErrorf(opParseKind, fmt.Errorf("%q: %w", name, ErrUnknownKind))
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSteps is the number of samples taken per span.
	DefaultSteps = 16

	// DefaultKind is the evaluator used when WithKind is not given.
	DefaultKind = KindCatmullRom
)

// Options holds the resolved Sample configuration. Fields are unexported;
// build it through Option values.
type Options struct {
	steps int
	kind  Kind
}

// Option mutates Options.
type Option func(*Options)

// WithSteps sets the number of samples per span. Panics if n < 1.
func WithSteps(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("curve: WithSteps(%d): steps must be >= 1", n))
	}
	return func(o *Options) { o.steps = n }
}

// WithKind selects the evaluator. Panics on an undefined Kind.
func WithKind(k Kind) Option {
	if !k.valid() {
		panic(fmt.Sprintf("curve: WithKind(%d): unknown kind", int(k)))
	}
	return func(o *Options) { o.kind = k }
}

func defaultOptions() Options {
	return Options{steps: DefaultSteps, kind: DefaultKind}
}

// gatherOptions applies opts over the defaults, ignoring nil entries.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
