// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package csvdict implements reading and writing
// of CSV files with header-keyed records,
// instead of the slice records
// of the standard library csv package.
package csvdict

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// A Reader reads records from a CSV-encoded file.
// The first line of the file is the header,
// and each following record is returned
// as a map keyed by the header columns.
type Reader struct {
	r      *csv.Reader
	header []string
}

// NewReader returns a new Reader that reads from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: csv.NewReader(r)}
}

// Header returns the column names of the file,
// reading them if needed.
func (r *Reader) Header() ([]string, error) {
	if r.header != nil {
		return r.header, nil
	}
	h, err := r.r.Read()
	if err != nil {
		return nil, fmt.Errorf("csvdict: when reading header: %w", err)
	}
	r.header = h
	return h, nil
}

// Read reads one record from r.
// If there is no data left to be read,
// Read returns nil, io.EOF.
func (r *Reader) Read() (map[string]string, error) {
	if _, err := r.Header(); err != nil {
		return nil, err
	}
	row, err := r.r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("csvdict: %w", err)
	}

	rec := make(map[string]string, len(r.header))
	for i, h := range r.header {
		if i < len(row) {
			rec[h] = row[i]
		}
	}
	return rec, nil
}

// ReadAll reads all the remaining records from r.
// A successful call returns err == nil,
// as the end of file is the expected outcome.
func (r *Reader) ReadAll() ([]map[string]string, error) {
	var recs []map[string]string
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			return recs, nil
		}
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
}

// A Writer writes header-keyed records using CSV encoding.
// Only the columns given at creation are written:
// missing keys are left empty,
// and any other key is ignored.
type Writer struct {
	w      *csv.Writer
	fields []string
	header bool
}

// NewWriter returns a new Writer that writes to w,
// with the given column names.
func NewWriter(w io.Writer, fields []string) *Writer {
	return &Writer{
		w:      csv.NewWriter(w),
		fields: fields,
	}
}

// Write writes a single record to w,
// writing the header first if it has not been written yet.
// Writes are buffered,
// so Flush must eventually be called.
func (w *Writer) Write(rec map[string]string) error {
	if !w.header {
		if err := w.w.Write(w.fields); err != nil {
			return fmt.Errorf("csvdict: when writing header: %w", err)
		}
		w.header = true
	}

	row := make([]string, len(w.fields))
	for i, f := range w.fields {
		row[i] = rec[f]
	}
	if err := w.w.Write(row); err != nil {
		return fmt.Errorf("csvdict: %w", err)
	}
	return nil
}

// Flush writes any buffered data to the underlying io.Writer.
// To check if an error occurred during the Flush,
// call Error.
func (w *Writer) Flush() {
	w.w.Flush()
}

// Error reports any error that has occurred
// during a previous Write or Flush.
func (w *Writer) Error() error {
	return w.w.Error()
}
