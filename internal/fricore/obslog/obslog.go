// Package obslog wraps zerolog for the structured, low-overhead logging
// this module's compress/decompress paths emit: query and reduction
// counts at the start of a call and proof sizes at its end, useful when
// wiring this package into a prover pipeline.
package obslog

import (
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
)

// Logger is a thin handle around zerolog.Logger. The zero value is a
// disabled logger: every call is a no-op, so callers that never invoke
// New still link and run correctly.
type Logger struct {
	zl zerolog.Logger
}

// New builds a Logger writing human-readable console output to w.
// Pass nil for w to silence output entirely (events still execute but
// are dropped by an io.Discard writer).
func New(w io.Writer, level zerolog.Level) Logger {
	if w == nil {
		w = io.Discard
	}
	zl := zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}).
		Level(level).
		With().Timestamp().Logger()
	return Logger{zl: zl}
}

// Default returns a Logger writing to stderr at info level, the
// baseline fricore.NewClient starts from.
func Default() Logger {
	return New(os.Stderr, zerolog.InfoLevel)
}

// CompressStart logs the beginning of a Compress call.
func (l Logger) CompressStart(numQueries, numReductions int) {
	l.zl.Debug().
		Int("num_queries", numQueries).
		Int("num_reductions", numReductions).
		Msg("fri: compress start")
}

// CompressDone logs the outcome of a Compress call: the encoded sizes of
// the raw and compressed proofs and their ratio.
func (l Logger) CompressDone(rawBytes, compressedBytes int) {
	l.zl.Info().
		Str("raw_size", humanize.Bytes(uint64(rawBytes))).
		Str("compressed_size", humanize.Bytes(uint64(compressedBytes))).
		Float64("ratio", ratio(rawBytes, compressedBytes)).
		Msg("fri: compress done")
}

// DecompressStart logs the beginning of a Decompress call.
func (l Logger) DecompressStart(numQueries, numReductions int) {
	l.zl.Debug().
		Int("num_queries", numQueries).
		Int("num_reductions", numReductions).
		Msg("fri: decompress start")
}

// DecompressDone logs the successful completion of a Decompress call.
func (l Logger) DecompressDone(outputBytes int) {
	l.zl.Info().
		Str("output_size", humanize.Bytes(uint64(outputBytes))).
		Msg("fri: decompress done")
}

// Error logs a fatal decoding/compression error with context.
func (l Logger) Error(err error, msg string) {
	l.zl.Error().Err(err).Msg(msg)
}

func ratio(raw, compressed int) float64 {
	if compressed == 0 {
		return 0
	}
	return float64(raw) / float64(compressed)
}
