package zmin

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
)

var allModes = []Mode{Eco, Sport, Turbo}

// ============================================================
// Minify Tests
// ============================================================

func TestMinify_Examples(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`{ "a" : [1, 2,  3] }`, `{"a":[1,2,3]}`},
		{`{"a": "x y"}`, `{"a":"x y"}`},
		{"null", "null"},
		{"  true  ", "true"},
		{"-12.5e3", "-12.5e3"},
		{"{}", "{}"},
		{"[ ]", "[]"},
		{"{\n  \"k\": {\n    \"n\": [1, 2]\n  }\n}", `{"k":{"n":[1,2]}}`},
		{`[ "a\tb", "c\\\"d" ]`, `["a\tb","c\\\"d"]`},
		{`"𝄞 and 𝄞"`, `"𝄞 and 𝄞"`},
	}

	for _, tt := range tests {
		for _, mode := range allModes {
			t.Run(fmt.Sprintf("%s/%s", mode, tt.input), func(t *testing.T) {
				out, err := Minify([]byte(tt.input), mode)
				if err != nil {
					t.Fatalf("Minify failed: %v", err)
				}
				if string(out) != tt.expected {
					t.Errorf("Expected %q, got %q", tt.expected, out)
				}
			})
		}
	}
}

func TestMinify_CrossModeIdentical(t *testing.T) {
	inputs := []string{
		`{ "a" : [1, 2,  3] }`,
		"[\n  {\"id\": 1, \"name\": \"first item\"},\n  {\"id\": 2, \"name\": \"second item\"}\n]",
		`{"nested": {"deep": {"deeper": [null, true, false, 0.5e-3]}}}`,
		`"  leading and trailing  "`,
		string(buildLargeJSON(2000)),
	}

	for i, in := range inputs {
		data := []byte(in)
		sport, err := Minify(data, Sport)
		if err != nil {
			t.Fatalf("input %d: Sport failed: %v", i, err)
		}
		for _, mode := range allModes {
			out, err := Minify(data, mode)
			if err != nil {
				t.Fatalf("input %d: %s failed: %v", i, mode, err)
			}
			if !bytes.Equal(out, sport) {
				t.Errorf("input %d: %s output differs from Sport", i, mode)
			}
		}
	}
}

func TestMinify_Idempotent(t *testing.T) {
	input := []byte(`{ "a" : [1, 2,  3], "b": "x  y" }`)
	for _, mode := range allModes {
		t.Run(mode.String(), func(t *testing.T) {
			once, err := Minify(input, mode)
			if err != nil {
				t.Fatalf("first Minify failed: %v", err)
			}
			twice, err := Minify(once, mode)
			if err != nil {
				t.Fatalf("second Minify failed: %v", err)
			}
			if !bytes.Equal(once, twice) {
				t.Errorf("Minify is not idempotent: %q vs %q", once, twice)
			}
		})
	}
}

func TestMinify_PreservesNonWhitespace(t *testing.T) {
	// Minified output must equal the input with insignificant whitespace
	// removed and nothing else changed.
	inputs := []string{
		`{ "a" : [1, 2,  3] }`,
		"[1,\t2,\r\n3]",
		`{"s": "keep \t this", "n": -0.25e+2}`,
	}
	for _, in := range inputs {
		want := stripWhitespace([]byte(in))
		for _, mode := range allModes {
			out, err := Minify([]byte(in), mode)
			if err != nil {
				t.Fatalf("%s: Minify(%q) failed: %v", mode, in, err)
			}
			if !bytes.Equal(out, want) {
				t.Errorf("%s: expected %q, got %q", mode, want, out)
			}
		}
	}
}

func TestMinify_ExactlySized(t *testing.T) {
	// A whitespace-heavy input must not pin input-proportional capacity
	// behind a short result.
	input := []byte(`{   "a"   :   1   }` + strings.Repeat(" ", 4096))
	for _, mode := range allModes {
		t.Run(mode.String(), func(t *testing.T) {
			out, err := Minify(input, mode)
			if err != nil {
				t.Fatalf("Minify failed: %v", err)
			}
			if cap(out) != len(out) {
				t.Errorf("Expected len == cap, got len %d cap %d", len(out), cap(out))
			}
		})
	}
}

func TestMinify_MatchesValid(t *testing.T) {
	inputs := []string{
		"null",
		`{"a":1}`,
		"",
		"   ",
		`{"a":}`,
		"[1,]",
		"null null",
		`"unterminated`,
	}
	for _, in := range inputs {
		data := []byte(in)
		valid := Valid(data)
		for _, mode := range allModes {
			_, err := Minify(data, mode)
			if (err == nil) != valid {
				t.Errorf("%s: Minify error %v disagrees with Valid=%v for %q",
					mode, err, valid, in)
			}
		}
	}
}

func TestMinify_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  int
	}{
		{"empty", "", CodeInvalidJSON},
		{"whitespace only", "   ", CodeInvalidJSON},
		{"missing value", `{"a":}`, CodeInvalidJSON},
		{"trailing garbage", `{"a":1} x`, CodeInvalidJSON},
		{
			"too deep",
			strings.Repeat("[", MaxNestingDepth+1) + strings.Repeat("]", MaxNestingDepth+1),
			CodeTooDeep,
		},
	}

	for _, tt := range tests {
		for _, mode := range allModes {
			t.Run(fmt.Sprintf("%s/%s", mode, tt.name), func(t *testing.T) {
				out, err := Minify([]byte(tt.input), mode)
				if err == nil {
					t.Fatal("Expected error, got nil")
				}
				if out != nil {
					t.Errorf("Expected nil output on error, got %d bytes", len(out))
				}
				if got := CodeFor(err); got != tt.code {
					t.Errorf("Expected code %d, got %d (%v)", tt.code, got, err)
				}
			})
		}
	}
}

func TestMinify_InvalidMode(t *testing.T) {
	for _, mode := range []Mode{-1, 3, 99} {
		out, err := Minify([]byte("null"), mode)
		if !errors.Is(err, ErrInvalidMode) {
			t.Errorf("mode %d: expected ErrInvalidMode, got %v", mode, err)
		}
		if out != nil {
			t.Errorf("mode %d: expected nil output", mode)
		}
		if CodeFor(err) != CodeInvalidMode {
			t.Errorf("mode %d: expected CodeInvalidMode, got %d", mode, CodeFor(err))
		}
	}
}

func TestMinifyDefault(t *testing.T) {
	input := []byte(`{ "a" : 1 }`)
	def, err := MinifyDefault(input)
	if err != nil {
		t.Fatalf("MinifyDefault failed: %v", err)
	}
	sport, err := Minify(input, Sport)
	if err != nil {
		t.Fatalf("Minify failed: %v", err)
	}
	if !bytes.Equal(def, sport) {
		t.Error("MinifyDefault should match Sport mode")
	}
}

func TestMinifyTo(t *testing.T) {
	input := []byte("[ 1, 2,\n3 ]")
	for _, mode := range allModes {
		t.Run(mode.String(), func(t *testing.T) {
			var buf bytes.Buffer
			if err := MinifyTo(&buf, input, mode); err != nil {
				t.Fatalf("MinifyTo failed: %v", err)
			}
			if buf.String() != "[1,2,3]" {
				t.Errorf("Expected [1,2,3], got %q", buf.String())
			}
		})
	}
}

func TestMinifyTo_InvalidMode(t *testing.T) {
	var buf bytes.Buffer
	if err := MinifyTo(&buf, []byte("null"), Mode(42)); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("Expected ErrInvalidMode, got %v", err)
	}
	if buf.Len() != 0 {
		t.Error("Expected no output for invalid mode")
	}
}

// ============================================================
// Mode Tests
// ============================================================

func TestParseMode(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		ok   bool
	}{
		{"eco", Eco, true},
		{"sport", Sport, true},
		{"turbo", Turbo, true},
		{"fast", 0, false},
		{"", 0, false},
		{"SPORT", 0, false},
	}
	for _, tt := range tests {
		mode, err := ParseMode(tt.name)
		if tt.ok {
			if err != nil {
				t.Errorf("ParseMode(%q) failed: %v", tt.name, err)
			} else if mode != tt.mode {
				t.Errorf("ParseMode(%q) = %v, want %v", tt.name, mode, tt.mode)
			}
		} else if !errors.Is(err, ErrInvalidMode) {
			t.Errorf("ParseMode(%q): expected ErrInvalidMode, got %v", tt.name, err)
		}
	}
}

func TestModeString(t *testing.T) {
	if Eco.String() != "eco" || Sport.String() != "sport" || Turbo.String() != "turbo" {
		t.Error("Unexpected mode names")
	}
	if Mode(9).String() != "mode(9)" {
		t.Errorf("Unexpected unknown-mode name: %s", Mode(9))
	}
}

// ============================================================
// Test Data
// ============================================================

// buildLargeJSON generates a pretty-printed array of n records with
// whitespace-heavy formatting, embedded spaces, escapes and non-ASCII text.
func buildLargeJSON(n int) []byte {
	var sb strings.Builder
	sb.WriteString("[\n")
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteString(",\n")
		}
		fmt.Fprintf(&sb,
			"  {\n    \"id\": %d,\n    \"name\": \"record %d テスト\",\n"+
				"    \"note\": \"has \\\"quotes\\\" and \\\\ backslash\",\n"+
				"    \"score\": %d.%02d,\n    \"tags\": [ \"a b\", \"c\\td\" ],\n"+
				"    \"ok\": %t,\n    \"ref\": null\n  }",
			i, i, i%100, i%97, i%2 == 0)
	}
	sb.WriteString("\n]\n")
	return []byte(sb.String())
}
