package zmin

import (
	"fmt"
	"io"
	"runtime"
	"sync"
)

// Version is the engine version string.
const Version = "1.0.0"

// strategy is one concrete minification algorithm.
type strategy interface {
	minify(data []byte) ([]byte, error)
	minifyTo(w io.Writer, data []byte) error
}

var (
	initOnce   sync.Once
	strategies [numModes]strategy
)

// Init registers the mode strategies. It is idempotent, safe to call from
// multiple goroutines, and called implicitly on first use; bindings that
// mirror the C ABI may call it explicitly any number of times.
func Init() {
	initOnce.Do(func() {
		strategies[Eco] = ecoStrategy{}
		strategies[Sport] = sportStrategy{}
		strategies[Turbo] = &turboStrategy{workers: runtime.GOMAXPROCS(0)}
	})
}

// strategyFor resolves a mode through the closed mode table.
func strategyFor(mode Mode) (strategy, error) {
	Init()
	if mode < 0 || mode >= numModes {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, int(mode))
	}
	return strategies[mode], nil
}

// Minify removes insignificant whitespace from data using the given mode
// and returns a freshly allocated output sized to the minified length.
// All modes produce byte-identical output for the same valid input. On any
// grammar violation the output is nil and the error reports the earliest
// detectable offset; no partial buffer is ever returned.
func Minify(data []byte, mode Mode) ([]byte, error) {
	s, err := strategyFor(mode)
	if err != nil {
		return nil, err
	}
	return s.minify(data)
}

// exactSize returns b with len == cap, copying when the backing array
// carries slack. Whitespace-heavy inputs would otherwise pin the full
// up-front capacity behind a much shorter result.
func exactSize(b []byte) []byte {
	if len(b) == cap(b) {
		return b
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// MinifyDefault minifies using DefaultMode.
func MinifyDefault(data []byte) ([]byte, error) {
	return Minify(data, DefaultMode)
}

// MinifyTo minifies data to w. In Eco mode output is streamed through a
// fixed-size buffer, so w may receive a partial prefix before an error on
// malformed input; the other modes write only after the pass succeeds.
func MinifyTo(w io.Writer, data []byte, mode Mode) error {
	s, err := strategyFor(mode)
	if err != nil {
		return err
	}
	return s.minifyTo(w, data)
}
