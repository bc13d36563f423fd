package logline

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Header is the first row of a session export, when present.
const Header = "entry,at,order"

// TicksPerSecond converts the export's ordering key into wall time.
const TicksPerSecond = 100000

// RawLine is one row of a session export. Order is the source ordering key
// and is what every comparison in the engine uses; Time is derived from it.
type RawLine struct {
	Index int
	Text  string
	Order int64
	Time  time.Time
}

// TimeFromOrder keeps the full precision of the source unit.
func TimeFromOrder(order int64) time.Time {
	secs := order / TicksPerSecond
	rem := order % TicksPerSecond
	return time.Unix(secs, rem*(int64(time.Second)/TicksPerSecond)).UTC()
}

// New builds a RawLine from a full export row.
func New(index int, text string) (RawLine, error) {
	cut := strings.LastIndexByte(text, ',')
	if cut < 0 {
		return RawLine{}, fmt.Errorf("%w: line %d has no ordering field: %q", ErrMalformedRow, index, text)
	}
	order, err := strconv.ParseInt(strings.TrimSpace(text[cut+1:]), 10, 64)
	if err != nil {
		return RawLine{}, fmt.Errorf("%w: line %d ordering field %q: %v", ErrMalformedRow, index, text[cut+1:], err)
	}
	return RawLine{Index: index, Text: text, Order: order, Time: TimeFromOrder(order)}, nil
}

// ReadSession reads a newest-first export and returns its rows oldest-first.
// Index is the 1-based row number in the file.
func ReadSession(r io.Reader) ([]RawLine, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var out []RawLine
	row := 0
	for sc.Scan() {
		row++
		text := strings.TrimRight(sc.Text(), "\r")
		if row == 1 && text == Header {
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		line, err := New(row, text)
		if err != nil {
			return nil, err
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

// SessionDate parses poker_night_YYYYMMDD.csv style names.
func SessionDate(path string) (time.Time, error) {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	parts := strings.Split(base, "_")
	if len(parts) < 3 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadFileName, path)
	}
	d, err := time.Parse("20060102", parts[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrBadFileName, path, err)
	}
	return d, nil
}
