// Command ffi builds texstrip as a C shared library.
//
// Build with:
//
//	CGO_ENABLED=1 go build -buildmode=c-shared -o libtexstrip.so ./pkg/ffi/
//
// All inputs/outputs are C strings. Structured data is JSON-serialized.
// Callers must free results with texstrip_result_free.
package main

// #include "texstrip.h"
import "C"
import (
	"context"
	"encoding/json"
	"time"
	"unsafe"

	"github.com/jmylchreest/texstrip/internal/output"
	"github.com/jmylchreest/texstrip/pkg/cleaner/latex"
	"github.com/jmylchreest/texstrip/pkg/converter"
)

// === Cleaner ===

//export texstrip_clean
func texstrip_clean(text *C.char) C.TexstripResult {
	return makeResult(latex.Clean(C.GoString(text)))
}

//export texstrip_stages
func texstrip_stages() C.TexstripResult {
	data, err := json.Marshal(latex.Stages())
	if err != nil {
		return makeError(err.Error())
	}
	return makeResult(string(data))
}

// === Converter ===

// texstrip_convert converts a directory and returns the batch report as JSON.
//
//export texstrip_convert
func texstrip_convert(inputDir *C.char, outputDir *C.char, workers C.int) C.TexstripResult {
	conv := converter.New(
		converter.WithWorkers(int(workers)),
		converter.WithReporter(converter.NopReporter{}),
	)

	summary, err := conv.Convert(context.Background(), C.GoString(inputDir), C.GoString(outputDir))
	if err != nil {
		return makeError(err.Error())
	}

	data, err := json.Marshal(output.NewReport(summary, time.Now()))
	if err != nil {
		return makeError(err.Error())
	}
	return makeResult(string(data))
}

// === Memory Management ===

//export texstrip_result_free
func texstrip_result_free(result C.TexstripResult) {
	if result.data != nil {
		C.free(unsafe.Pointer(result.data))
	}
	if result.error != nil {
		C.free(unsafe.Pointer(result.error))
	}
}

// helpers

func makeResult(data string) C.TexstripResult {
	return C.TexstripResult{
		data:  C.CString(data),
		len:   C.int(len(data)),
		error: nil,
	}
}

func makeError(msg string) C.TexstripResult {
	return C.TexstripResult{
		data:  nil,
		len:   0,
		error: C.CString(msg),
	}
}

// main is required for c-shared build mode but is never called.
func main() {}
