// Package ioformat implements the external interfaces of the tetrahedral
// mesh spatial index: reading and writing mesh files (.ts), serialized
// trees (.tree), and query input/output files, plus a synthetic
// query-input generator and a small elapsed-time reporter.
//
// Grounded on the original_source io/reader.{h,cpp}, io/writer.{h,cpp},
// utilities/input_generator.{h,cpp} and utilities/timer.h, adapted to the
// teacher's gcfg-based configuration idiom (io/config.go) for the one piece
// of this package that needs structured configuration rather than a flat
// record format.
package ioformat
