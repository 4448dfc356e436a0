// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package sps

import (
	"io"
	"os"

	mmap "github.com/edsrzf/mmap-go"

	"github.com/saferwall/sps/log"
)

// DefaultMaxAllocationSize bounds any single value_data allocation a
// decode performs, unless an Options.MaxAllocationSize override says
// otherwise (§6.3). 64 MiB comfortably covers any legitimate property
// value while still refusing the pathological "I-LEN lies" inputs OSS-Fuzz
// throws at this decoder.
const DefaultMaxAllocationSize = 64 << 20

// DefaultCodepage is used when Options.Codepage is left at its zero
// value. 1252 (Windows-1252) is the codepage the property store format
// defaults to absent an explicit CodePage property (§GLOSSARY).
const DefaultCodepage = 1252

// A File represents an open serialized property store, either a
// standalone ".propstore" payload or a stream extracted from a
// compound file by the caller.
type File struct {
	Store *Store

	data   mmap.MMap
	raw    []byte
	size   uint32
	f      *os.File
	opts   *Options
	logger *log.Helper
}

// Options controls how a File is parsed.
type Options struct {

	// Codepage selects the code page used to decode VT_LPSTR/VT_BSTR
	// payload bytes, by default (DefaultCodepage).
	Codepage int

	// MaxAllocationSize caps any single value_data allocation, by
	// default (DefaultMaxAllocationSize).
	MaxAllocationSize uint32

	// A custom logger.
	Logger log.Logger

	// DebugTrace, when non-nil, receives per-field structural
	// annotations as Store/Set/Record decoding walks the input
	// (§6.3 "debug_trace_stream"). It has no effect on the decoded
	// result. Since the trace sink is process-wide state (debug.go),
	// Parse installs it for the duration of the call and restores
	// whatever was previously installed afterwards.
	DebugTrace io.Writer
}

func (o *Options) withDefaults() *Options {
	out := Options{}
	if o != nil {
		out = *o
	}
	if out.Codepage == 0 {
		out.Codepage = DefaultCodepage
	}
	if out.MaxAllocationSize == 0 {
		out.MaxAllocationSize = DefaultMaxAllocationSize
	}
	return &out
}

func newLogger(opts *Options) *log.Helper {
	if opts.Logger == nil {
		std := log.NewStdLogger(os.Stdout)
		return log.NewHelper(log.NewFilter(std, log.FilterLevel(log.LevelError)))
	}
	return log.NewHelper(opts.Logger)
}

// New instantiates a File given a file name, memory-mapping its
// contents rather than copying them into the Go heap (§9 "large input
// handling").
func New(name string, opts *Options) (*File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, err
	}

	o := opts.withDefaults()
	file := &File{
		opts:   o,
		logger: newLogger(o),
		data:   data,
		f:      f,
		size:   uint32(len(data)),
	}
	return file, nil
}

// NewBytes instantiates a File from an in-memory buffer.
func NewBytes(data []byte, opts *Options) (*File, error) {
	o := opts.withDefaults()
	file := &File{
		opts:   o,
		logger: newLogger(o),
		raw:    data,
		size:   uint32(len(data)),
	}
	return file, nil
}

// Close releases resources held by a File opened with New. It is a
// no-op for a File built with NewBytes.
func (file *File) Close() error {
	if file.data != nil {
		_ = file.data.Unmap()
	}
	if file.f != nil {
		return file.f.Close()
	}
	return nil
}

func (file *File) bytes() []byte {
	if file.data != nil {
		return file.data
	}
	return file.raw
}

// Parse decodes the backing buffer into a Store (§4.4). A decoding
// error leaves file.Store nil; the decoder never panics on malformed
// input, but a truncated, oversized, or otherwise invalid store is
// reported through the returned error rather than a partial Store.
func (file *File) Parse() error {
	file.logger.Debugf("decoding %d bytes at codepage %d", file.size, file.opts.Codepage)

	if file.opts.DebugTrace != nil {
		debugTraceMu.Lock()
		previous := debugTrace
		debugTraceMu.Unlock()
		SetDebugTraceStream(file.opts.DebugTrace)
		defer SetDebugTraceStream(previous)
	}

	store, err := DecodeStore(file.bytes(), file.opts.Codepage, file.opts.MaxAllocationSize)
	if err != nil {
		file.logger.Warnf("store decoding failed: %v", err)
		return err
	}

	file.Store = store
	return nil
}
