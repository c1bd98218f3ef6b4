// Package main exposes the zmin engine through its C ABI. Build it as a
// shared library for the language bindings:
//
//	go build -buildmode=c-shared -o libzmin.so ./capi
//
// Ownership contract: every zmin_result_t returned by a minify call, error
// or not, must be released exactly once via zmin_free_result. The engine
// keeps no reference to a returned result. Strings returned by
// zmin_get_version and zmin_get_error_message are static and must never be
// freed by the caller.
package main

/*
#include <stdlib.h>

typedef struct {
	char*  data;
	size_t size;
	int    error_code;
} zmin_result_t;
*/
import "C"

import (
	"unsafe"

	"github.com/hydepwns/zmin-go/zmin"
)

func main() {}

//export zmin_init
func zmin_init() {
	zmin.Init()
}

//export zmin_minify
func zmin_minify(input *C.char, size C.size_t) C.zmin_result_t {
	return minifyMode(input, size, zmin.DefaultMode)
}

//export zmin_minify_mode
func zmin_minify_mode(input *C.char, size C.size_t, mode C.int) C.zmin_result_t {
	return minifyMode(input, size, zmin.Mode(mode))
}

func minifyMode(input *C.char, size C.size_t, mode zmin.Mode) C.zmin_result_t {
	out, err := zmin.Minify(goInput(input, size), mode)
	if err != nil {
		return C.zmin_result_t{error_code: C.int(zmin.CodeFor(err))}
	}

	// The caller owns the buffer from here; sized exactly, plus a NUL for
	// C convenience that is not counted in size.
	buf := C.malloc(C.size_t(len(out) + 1))
	if buf == nil {
		return C.zmin_result_t{error_code: C.int(zmin.CodeOutOfMemory)}
	}
	dst := unsafe.Slice((*byte)(buf), len(out)+1)
	copy(dst, out)
	dst[len(out)] = 0

	return C.zmin_result_t{
		data:       (*C.char)(buf),
		size:       C.size_t(len(out)),
		error_code: C.int(zmin.CodeOK),
	}
}

//export zmin_validate
func zmin_validate(input *C.char, size C.size_t) C.int {
	if zmin.Valid(goInput(input, size)) {
		return 1
	}
	return 0
}

//export zmin_free_result
func zmin_free_result(result *C.zmin_result_t) {
	if result == nil || result.data == nil {
		return
	}
	C.free(unsafe.Pointer(result.data))
	result.data = nil
	result.size = 0
}

//export zmin_get_version
func zmin_get_version() *C.char {
	return cVersion
}

//export zmin_get_error_message
func zmin_get_error_message(errorCode C.int) *C.char {
	if msg, ok := cErrorMessages[int(errorCode)]; ok {
		return msg
	}
	return cUnknownError
}

// goInput copies the caller's buffer into Go memory. The input is never
// assumed to be NUL-terminated and is never written to.
func goInput(input *C.char, size C.size_t) []byte {
	if input == nil || size == 0 {
		return nil
	}
	return copyInput(unsafe.Pointer(input), uintptr(size))
}

// copyInput clones n bytes starting at p. The length is kept at pointer
// width the whole way down: a size_t past 2 GiB must neither truncate nor
// go negative on its way into Go.
func copyInput(p unsafe.Pointer, n uintptr) []byte {
	out := make([]byte, n)
	copy(out, unsafe.Slice((*byte)(p), n))
	return out
}

// Static strings handed across the ABI. Allocated once at load time,
// released only at process exit.
var (
	cVersion       = C.CString(zmin.Version)
	cUnknownError  = C.CString(zmin.ErrorMessage(-1000))
	cErrorMessages = map[int]*C.char{
		zmin.CodeOK:          C.CString(zmin.ErrorMessage(zmin.CodeOK)),
		zmin.CodeInvalidJSON: C.CString(zmin.ErrorMessage(zmin.CodeInvalidJSON)),
		zmin.CodeOutOfMemory: C.CString(zmin.ErrorMessage(zmin.CodeOutOfMemory)),
		zmin.CodeInvalidMode: C.CString(zmin.ErrorMessage(zmin.CodeInvalidMode)),
		zmin.CodeTooDeep:     C.CString(zmin.ErrorMessage(zmin.CodeTooDeep)),
	}
)
