package cplx

import (
	"fmt"
	"io"
	"strconv"
)

// String renders c as "<real> i<imag>", e.g. "-2 i19".
// Each part uses the shortest representation that round-trips.
func (c Complex) String() string {
	return string(c.appendText(make([]byte, 0, 48)))
}

// WriteTo writes the String form of c to w.
func (c Complex) WriteTo(w io.Writer) (int64, error) {
	var buf [64]byte
	n, err := w.Write(c.appendText(buf[:0]))
	if err != nil {
		return int64(n), fmt.Errorf("cplx: write %v: %w", c, err)
	}
	return int64(n), nil
}

func (c Complex) appendText(b []byte) []byte {
	b = strconv.AppendFloat(b, c.Real(), 'g', -1, 64)
	b = append(b, " i"...)
	return strconv.AppendFloat(b, c.Imag(), 'g', -1, 64)
}
