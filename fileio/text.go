package fileio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Text values use the shortest representation that round-trips exactly.
// strconv ignores the process locale, so files are portable.
func encodeText(w io.Writer, labels []float64) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)
	for _, v := range labels {
		buf = strconv.AppendFloat(buf[:0], v, 'g', -1, 64)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// decodeText reads one value per line. Blank lines and lines starting with
// '#' are skipped.
func decodeText(r io.Reader) ([]float64, error) {
	sc := bufio.NewScanner(r)
	var labels []float64
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrCorrupt, line, err)
		}
		labels = append(labels, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if labels == nil {
		labels = []float64{}
	}
	return labels, nil
}
