// Package npyio writes matrices in the numpy .npy and .npz formats.
package npyio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

var order = binary.LittleEndian

// Write writes m as a 2-dimensional C-ordered array of float64.
// All rows of m must have the same length.
func Write(w io.Writer, m [][]float64) error {
	nRows, nCols := len(m), 0
	if nRows > 0 {
		nCols = len(m[0])
	}

	if err := writeHeader(w, nRows, nCols); err != nil {
		return err
	}

	buf := make([]byte, 8*nCols)
	for i, row := range m {
		if len(row) != nCols {
			return fmt.Errorf("row %d has %d columns, expected %d", i, len(row), nCols)
		}

		for j, x := range row {
			order.PutUint64(buf[8*j:], math.Float64bits(x))
		}
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}

	return nil
}

// The following is adapted from: github.com/sbinet/npyio
var magic = [6]byte{'\x93', 'N', 'U', 'M', 'P', 'Y'}

const (
	majorVersion = byte(2)
	minorVersion = byte(0)
	// Length of magic string, version and header length.
	preambleSize = 6 + 2 + 4
)

func writeHeader(w io.Writer, nRows, nCols int) error {
	if err := binary.Write(w, order, magic[:]); err != nil {
		return err
	}
	if err := binary.Write(w, order, majorVersion); err != nil {
		return err
	}
	if err := binary.Write(w, order, minorVersion); err != nil {
		return err
	}

	buf := new(bytes.Buffer)
	fmt.Fprintf(buf,
		"{'descr': '<f8', 'fortran_order': False, 'shape': (%d, %d), }",
		nRows, nCols)

	// The data must start on a 16-byte boundary.
	padding := (16 - (preambleSize+buf.Len()+1)%16) % 16
	buf.Write(bytes.Repeat([]byte{'\x20'}, padding))
	buf.WriteByte('\n')

	buflen := int64(buf.Len())
	if err := binary.Write(w, order, uint32(buflen)); err != nil {
		return err
	}

	if n, err := io.Copy(w, buf); err != nil {
		return err
	} else if n < buflen {
		return io.ErrShortWrite
	}

	return nil
}
