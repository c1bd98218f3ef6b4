package bench

import (
	"encoding/json"
	"math/rand"
)

// Generate builds a whitespace-heavy synthetic JSON document of roughly
// spec.SizeMB megabytes. Output is deterministic for a given spec.
func Generate(spec GenerateSpec) []byte {
	rng := rand.New(rand.NewSource(spec.Seed))
	depth := spec.Depth
	if depth <= 0 {
		depth = 3
	}
	target := int(spec.SizeMB * 1024 * 1024)

	doc := map[string]any{
		"metadata": map[string]any{
			"dataset":   "synthetic",
			"version":   "1.0",
			"size_mb":   spec.SizeMB,
			"generated": true,
		},
	}

	var items []any
	size := 0
	for id := 0; size < target; id++ {
		item := map[string]any{
			"id":   id,
			"type": pick(rng, "user", "product", "order", "event"),
			"name": randomString(rng, 10+rng.Intn(40)),
			"data": nestedValue(rng, depth),
		}
		encoded, err := json.Marshal(item)
		if err != nil {
			// Only map/slice/scalar values reach Marshal; this cannot fail.
			panic(err)
		}
		size += len(encoded)
		items = append(items, item)
	}
	doc["items"] = items

	out, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		panic(err)
	}
	return out
}

// nestedValue generates a random value tree of the given depth.
func nestedValue(rng *rand.Rand, depth int) any {
	if depth == 0 {
		return scalar(rng)
	}
	switch rng.Intn(10) {
	case 0, 1, 2: // array
		n := 1 + rng.Intn(5)
		arr := make([]any, n)
		for i := range arr {
			arr[i] = nestedValue(rng, depth-1)
		}
		return arr
	case 3, 4, 5, 6: // object
		n := 1 + rng.Intn(5)
		obj := make(map[string]any, n)
		for i := 0; i < n; i++ {
			obj[randomString(rng, 5+rng.Intn(10))] = nestedValue(rng, depth-1)
		}
		return obj
	default:
		return scalar(rng)
	}
}

// scalar generates a random leaf value.
func scalar(rng *rand.Rand) any {
	switch rng.Intn(4) {
	case 0:
		return randomString(rng, 10+rng.Intn(40))
	case 1:
		return rng.Float64()*2000 - 1000
	case 2:
		return rng.Intn(2) == 0
	default:
		return nil
	}
}

const alphanum = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 "

// randomString generates a printable string; the trailing space in the
// alphabet makes interior whitespace show up inside string literals.
func randomString(rng *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphanum[rng.Intn(len(alphanum))]
	}
	return string(b)
}

// pick returns one of the choices at random.
func pick(rng *rand.Rand, choices ...string) string {
	return choices[rng.Intn(len(choices))]
}
