package golden

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// ReadSamples parses whitespace-separated signed 32-bit integers.
func ReadSamples(r io.Reader) ([]int32, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	var out []int32
	for sc.Scan() {
		v, err := strconv.ParseInt(sc.Text(), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: token %d %q", ErrMalformedSample, len(out), sc.Text())
		}
		out = append(out, int32(v))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("golden: read samples: %w", err)
	}
	return out, nil
}

// WriteSamples writes one decimal value per line.
func WriteSamples(w io.Writer, samples []int32) error {
	bw := bufio.NewWriter(w)
	var num []byte
	for _, s := range samples {
		num = strconv.AppendInt(num[:0], int64(s), 10)
		num = append(num, '\n')
		if _, err := bw.Write(num); err != nil {
			return err
		}
	}
	return bw.Flush()
}
