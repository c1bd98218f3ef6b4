package zmin

import (
	"bufio"
	"bytes"
	"io"
)

// ecoWindowSize is the eco write buffer size. Auxiliary memory stays at
// this fixed bound regardless of input size.
const ecoWindowSize = 64 * 1024

// ecoStrategy emits output incrementally through a fixed-size write buffer.
// It never allocates input-proportional scratch space, which makes it the
// right choice for constrained environments and for streaming to a writer.
type ecoStrategy struct{}

func (e ecoStrategy) minify(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := e.minifyTo(&buf, data); err != nil {
		return nil, err
	}
	return exactSize(buf.Bytes()), nil
}

func (ecoStrategy) minifyTo(w io.Writer, data []byte) error {
	bw := bufio.NewWriterSize(w, ecoWindowSize)
	tz := NewTokenizer(data)
	var g grammar
	for {
		tok, err := tz.Next()
		if err != nil {
			return err
		}
		if tok.Kind == KindEOF {
			if err := g.finish(tok.Start); err != nil {
				return err
			}
			return bw.Flush()
		}
		if err := g.push(tok); err != nil {
			return err
		}
		if _, err := bw.Write(data[tok.Start:tok.End]); err != nil {
			return err
		}
	}
}
