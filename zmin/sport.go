package zmin

import "io"

// sportStrategy is the balanced default: a single combined validate+emit
// pass with one up-front output allocation of len(input) capacity, trimmed
// to the minified length on return. Token spans are appended verbatim, so
// output never exceeds input.
type sportStrategy struct{}

func (sportStrategy) minify(data []byte) ([]byte, error) {
	out := make([]byte, 0, len(data))
	tz := NewTokenizer(data)
	var g grammar
	for {
		tok, err := tz.Next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == KindEOF {
			if err := g.finish(tok.Start); err != nil {
				return nil, err
			}
			return exactSize(out), nil
		}
		if err := g.push(tok); err != nil {
			return nil, err
		}
		out = append(out, data[tok.Start:tok.End]...)
	}
}

func (s sportStrategy) minifyTo(w io.Writer, data []byte) error {
	out, err := s.minify(data)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
