// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package sps

import (
	"fmt"
	"io"
	"sync"
)

// debugTrace is the process-wide debug trace stream (§6.3
// "debug_trace_stream", §6.4 collaborators). It has no effect on decode
// results; when set, the decoder annotates structural fields as it
// walks them. Unlike the rest of the decoder, this is shared mutable
// state: a caller enabling it from more than one goroutine must supply
// a stream that serializes its own writes (§9, "the only caveat is the
// debug-trace collaborator").
var (
	debugTraceMu sync.Mutex
	debugTrace   io.Writer
)

// SetDebugTraceStream installs (or, passed nil, removes) the
// process-wide debug trace stream. Decoding does not fail or change
// shape because a trace is attached; this is purely an observability
// hook for inspecting a malformed or unfamiliar store.
func SetDebugTraceStream(w io.Writer) {
	debugTraceMu.Lock()
	defer debugTraceMu.Unlock()
	debugTrace = w
}

// trace writes one annotated line to the debug trace stream, if one is
// installed. A write error is swallowed: a failing trace stream must
// never turn into a decode failure.
func trace(format string, args ...interface{}) {
	debugTraceMu.Lock()
	w := debugTrace
	debugTraceMu.Unlock()
	if w == nil {
		return
	}
	fmt.Fprintf(w, format+"\n", args...)
}

// traceField is a convenience wrapper for the common "offset: name =
// value" annotation shape used while walking a Set or Record header.
func traceField(offset uint32, name string, value interface{}) {
	trace("  +%-4d %-16s %v", offset, name, value)
}
