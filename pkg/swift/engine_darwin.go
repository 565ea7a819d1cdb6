//go:build darwin && cgo

package swift

/*
#include <stdlib.h>
#include <dlfcn.h>

typedef size_t swift_demangle_fn(const char *MangledName, char *OutputBuffer, size_t Length);

static void *swiftDemangleHandle(void) {
    static void *handle = NULL;
    if (handle == NULL) {
        handle = dlopen("/usr/lib/swift/libswiftDemangle.dylib", RTLD_LAZY);
    }
    return handle;
}

static int swiftDemangleCall(const char *symbol, char *input, char *output, size_t length) {
    if (input == NULL || input[0] == '\0' || output == NULL) {
        return -3;
    }
    void *handle = swiftDemangleHandle();
    if (!handle) {
        return -2;
    }
    swift_demangle_fn *fn = dlsym(handle, symbol);
    if (!fn) {
        return -1;
    }
    return (int)fn(input, output, length);
}

int SwiftDemangle(char *input, char *output, size_t length) {
    return swiftDemangleCall("swift_demangle_getDemangledName", input, output, length);
}
*/
import "C"

import (
	"errors"
	"fmt"
	"unsafe"
)

const (
	cgoNoop       = 0
	cgoError      = -1
	cgoNoDylib    = -2
	cgoBadArgs    = -3
	cgoBufferSize = 4096
)

type cgoDemangleFunc func(*C.char, *C.char, C.size_t) C.int

type darwinEngine struct{}

func newEngine() (engine, string) {
	if forceEngine == engineModePureGo {
		return newPureGoEngine(), engineModePureGo
	}
	return newDarwinEngine(), engineModeDarwin
}

func newDarwinEngine() engine {
	return &darwinEngine{}
}

func (e *darwinEngine) Demangle(input string) (string, error) {
	return callSwiftDemangle(func(in, out *C.char, length C.size_t) C.int {
		return C.SwiftDemangle(in, out, length)
	}, input)
}

func callSwiftDemangle(fn cgoDemangleFunc, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("empty input")
	}

	out := (*C.char)(C.malloc(cgoBufferSize))
	defer C.free(unsafe.Pointer(out))

	cstr := C.CString(input)
	defer C.free(unsafe.Pointer(cstr))

	ret := int(fn(cstr, out, C.size_t(cgoBufferSize)))
	switch {
	case ret > cgoNoop:
		return C.GoString(out), nil
	case ret == cgoNoop:
		// libswiftDemangle returns 0 for text that is not a mangled name.
		return "", fmt.Errorf("%q is not a mangled Swift name", input)
	case ret == cgoBadArgs:
		return "", errors.New("invalid arguments")
	case ret == cgoNoDylib:
		return "", errors.New("libswiftDemangle.dylib not found")
	default:
		return "", errors.New("swift demangle call failed")
	}
}
