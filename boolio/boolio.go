// SPDX-License-Identifier: MIT

// Package boolio reads and writes Boolean matrices as JSON.
//
// Input documents carry two operands:
//
//	{"left": [[1, 0], [0, 1]], "right": [[true, false], [true, true]]}
//
// Cells may be JSON booleans or the numbers 0 and 1. Results are written as
//
//	{"result": [[true, false], [true, true]]}
//
// and can be read back with ReadMatrix. Shape validation beyond "rectangular
// and non-empty" belongs to the consumer.
package boolio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/francoispqt/gojay"
)

// Document keys.
const (
	KeyLeft   = "left"
	KeyRight  = "right"
	KeyResult = "result"
)

var (
	// ErrMissingOperand is returned when a required grid is absent or empty.
	ErrMissingOperand = errors.New("boolio: missing or empty matrix")

	// ErrBadCell is returned for a cell that is neither a boolean nor 0/1.
	ErrBadCell = errors.New("boolio: cell must be true, false, 0 or 1")

	// ErrRagged is returned when grid rows differ in length or a row is empty.
	ErrRagged = errors.New("boolio: grid is not rectangular")

	// ErrSyntax is returned when the input is not exactly one JSON value.
	ErrSyntax = errors.New("boolio: malformed JSON document")
)

// ---------- decoding ----------

// decodeState is shared by every row decoder of one document so that the
// first bad cell is reported as-is, whatever the decoder does with it.
type decodeState struct {
	cellErr error
}

type gridDecoder struct {
	key   string
	rows  [][]bool
	state *decodeState
}

func (g *gridDecoder) UnmarshalJSONArray(dec *gojay.Decoder) error {
	r := rowDecoder{grid: g}
	if err := dec.Array(&r); err != nil {
		return err
	}
	g.rows = append(g.rows, r.cells)

	return nil
}

type rowDecoder struct {
	cells []bool
	grid  *gridDecoder
}

func (r *rowDecoder) UnmarshalJSONArray(dec *gojay.Decoder) error {
	var v interface{}
	if err := dec.Interface(&v); err != nil {
		return err
	}
	b, err := cellValue(v)
	if err != nil {
		if st := r.grid.state; st.cellErr == nil {
			st.cellErr = fmt.Errorf("boolio: %q: row %d cell %d: %w",
				r.grid.key, len(r.grid.rows), len(r.cells), err)
		}
		return err
	}
	r.cells = append(r.cells, b)

	return nil
}

// cellValue maps a decoded JSON value to a boolean.
func cellValue(v interface{}) (bool, error) {
	switch x := v.(type) {
	case bool:
		return x, nil
	case float64:
		switch x {
		case 0:
			return false, nil
		case 1:
			return true, nil
		}
	}

	return false, fmt.Errorf("value %v: %w", v, ErrBadCell)
}

// objectDecoder collects the grids of the keys it was asked for; unknown keys
// are skipped.
type objectDecoder struct {
	grids map[string]*gridDecoder
}

func newObjectDecoder(state *decodeState, keys ...string) *objectDecoder {
	o := &objectDecoder{grids: make(map[string]*gridDecoder, len(keys))}
	for _, k := range keys {
		o.grids[k] = &gridDecoder{key: k, state: state}
	}

	return o
}

func (o *objectDecoder) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	g, ok := o.grids[key]
	if !ok {
		return nil
	}
	// A repeated key replaces the earlier value.
	g.rows = nil

	return dec.Array(g)
}

func (o *objectDecoder) NKeys() int { return 0 }

// decodeGrids parses data and returns the grids for keys, in order.
func decodeGrids(data []byte, keys ...string) ([][][]bool, error) {
	// gojay stops at the end of the first object and tolerates a missing
	// closing brace; the document as a whole must still be valid.
	if !json.Valid(data) {
		return nil, ErrSyntax
	}
	state := &decodeState{}
	doc := newObjectDecoder(state, keys...)
	if err := gojay.UnmarshalJSONObject(data, doc); err != nil {
		if state.cellErr != nil {
			return nil, state.cellErr
		}
		return nil, fmt.Errorf("boolio: decode: %w", err)
	}

	out := make([][][]bool, len(keys))
	for i, k := range keys {
		rows := doc.grids[k].rows
		if err := validateGrid(rows); err != nil {
			return nil, fmt.Errorf("boolio: %q: %w", k, err)
		}
		out[i] = rows
	}

	return out, nil
}

// validateGrid requires at least one row and equal, non-zero row lengths.
func validateGrid(rows [][]bool) error {
	if len(rows) == 0 {
		return ErrMissingOperand
	}
	w := len(rows[0])
	for i, r := range rows {
		if len(r) == 0 || len(r) != w {
			return fmt.Errorf("row %d has %d cells, want %d: %w", i, len(r), w, ErrRagged)
		}
	}

	return nil
}

// ReadPair decodes a {"left": ..., "right": ...} document.
//
// Errors:
//   - ErrSyntax, ErrMissingOperand, ErrBadCell or ErrRagged.
func ReadPair(r io.Reader) (left, right [][]bool, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("boolio: read: %w", err)
	}
	grids, err := decodeGrids(data, KeyLeft, KeyRight)
	if err != nil {
		return nil, nil, err
	}

	return grids[0], grids[1], nil
}

// ReadPairFile is ReadPair over the file at path.
func ReadPairFile(path string) (left, right [][]bool, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("boolio: %w", err)
	}
	defer f.Close()

	return ReadPair(f)
}

// ReadMatrix decodes a {"result": ...} document written by WriteMatrix.
func ReadMatrix(r io.Reader) ([][]bool, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("boolio: read: %w", err)
	}
	grids, err := decodeGrids(data, KeyResult)
	if err != nil {
		return nil, err
	}

	return grids[0], nil
}

// ---------- encoding ----------

type resultEncoder [][]bool

func (d resultEncoder) MarshalJSONObject(enc *gojay.Encoder) {
	enc.ArrayKey(KeyResult, gridEncoder(d))
}

func (d resultEncoder) IsNil() bool { return d == nil }

type gridEncoder [][]bool

func (g gridEncoder) MarshalJSONArray(enc *gojay.Encoder) {
	for _, r := range g {
		enc.Array(rowEncoder(r))
	}
}

func (g gridEncoder) IsNil() bool { return g == nil }

type rowEncoder []bool

func (r rowEncoder) MarshalJSONArray(enc *gojay.Encoder) {
	for _, v := range r {
		enc.Bool(v)
	}
}

func (r rowEncoder) IsNil() bool { return r == nil }

// WriteMatrix encodes grid as {"result": grid} followed by a newline.
//
// Errors:
//   - ErrMissingOperand / ErrRagged for an empty or ragged grid.
func WriteMatrix(w io.Writer, grid [][]bool) error {
	if err := validateGrid(grid); err != nil {
		return fmt.Errorf("boolio: write: %w", err)
	}
	data, err := gojay.MarshalJSONObject(resultEncoder(grid))
	if err != nil {
		return fmt.Errorf("boolio: encode: %w", err)
	}
	data = append(data, '\n')
	if _, err = w.Write(data); err != nil {
		return fmt.Errorf("boolio: write: %w", err)
	}

	return nil
}

// WriteMatrixFile writes grid to path atomically: the document is written to
// a temporary file in the same directory and renamed over path only after it
// was fully written. On error path is left untouched.
func WriteMatrixFile(path string, grid [][]bool) (err error) {
	var buf bytes.Buffer
	if err = WriteMatrix(&buf, grid); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".boolio-*")
	if err != nil {
		return fmt.Errorf("boolio: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("boolio: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("boolio: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("boolio: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("boolio: %w", err)
	}

	return nil
}
