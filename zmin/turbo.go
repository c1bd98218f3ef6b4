package zmin

import (
	"io"
	"sync"
)

const (
	// turboThreshold is the input size below which chunking overhead
	// outweighs parallelism and turbo takes the single-pass path.
	turboThreshold = 1 << 20
	// turboMinChunk is the smallest chunk worth handing to a worker.
	turboMinChunk = 256 * 1024
)

// turboStrategy partitions the input into independently strippable chunks
// at boundaries outside string literals and processes them concurrently.
// Grammar validation runs over the whole input in parallel with the chunk
// workers; a violation suppresses all chunk output and returns a single
// error. Every goroutine is joined before the call returns.
type turboStrategy struct {
	workers int
}

func (t *turboStrategy) minify(data []byte) ([]byte, error) {
	n := t.chunkCount(len(data))
	if n < 2 {
		return sportStrategy{}.minify(data)
	}

	chunks := splitChunks(data, n)
	outs := make([][]byte, len(chunks))

	var wg sync.WaitGroup
	for i, c := range chunks {
		wg.Add(1)
		go func(i int, c span) {
			defer wg.Done()
			outs[i] = stripWhitespace(data[c.start:c.end])
		}(i, c)
	}

	// Full grammar scan overlapped with the strip workers.
	errc := make(chan error, 1)
	go func() {
		errc <- check(data)
	}()

	wg.Wait()
	if err := <-errc; err != nil {
		return nil, err
	}

	total := 0
	for _, o := range outs {
		total += len(o)
	}
	out := make([]byte, 0, total)
	for _, o := range outs {
		out = append(out, o...)
	}
	return out, nil
}

func (t *turboStrategy) minifyTo(w io.Writer, data []byte) error {
	out, err := t.minify(data)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// chunkCount decides how many chunks to fan out for an input size.
func (t *turboStrategy) chunkCount(size int) int {
	if size < turboThreshold {
		return 1
	}
	n := t.workers
	if limit := size / turboMinChunk; n > limit {
		n = limit
	}
	if n < 1 {
		n = 1
	}
	return n
}

// span is a half-open byte range of the input.
type span struct {
	start, end int
}

// splitChunks partitions data into n spans whose cut points fall outside
// string literals. This is a lightweight boundary scan: it tracks only
// quote and escape state, not grammar.
func splitChunks(data []byte, n int) []span {
	target := len(data) / n
	spans := make([]span, 0, n)
	start := 0
	next := target
	inString := false
	escaped := false

	for i := 0; i < len(data); i++ {
		c := data[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		if c == '"' {
			inString = true
			continue
		}
		if i >= next && len(spans) < n-1 {
			spans = append(spans, span{start, i})
			start = i
			next = start + target
		}
	}

	return append(spans, span{start, len(data)})
}

// stripWhitespace copies src without insignificant whitespace outside
// string literals. The chunk is known to begin outside a string, so quote
// state starts clean. Grammar is left to the overlapping full scan.
func stripWhitespace(src []byte) []byte {
	dst := make([]byte, 0, len(src))
	inString := false
	escaped := false

	for i := 0; i < len(src); i++ {
		c := src[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			dst = append(dst, c)
			continue
		}
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		case '"':
			inString = true
		}
		dst = append(dst, c)
	}
	return dst
}
