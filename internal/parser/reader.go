package parser

import (
	"bufio"
	"io"
)

// Line is a single input line including its trailing terminator
type Line struct {
	Text string // Raw text, trailing "\n" kept when present
	Num  int    // 1-based line number
}

// LineReader wraps a stream with one line of pushback capacity
type LineReader struct {
	r      *bufio.Reader
	last   Line
	replay bool
	num    int
}

// NewLineReader creates a reader over r
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

// Next returns the next line, or io.EOF when the stream is exhausted.
// A replay queued by Unread is delivered before any new read.
func (lr *LineReader) Next() (Line, error) {
	if lr.replay {
		lr.replay = false
		return lr.last, nil
	}

	text, err := lr.r.ReadString('\n')
	if err == io.EOF && text != "" {
		// Last line without a terminator still counts
		err = nil
	}
	if err != nil {
		return Line{}, err
	}

	lr.num++
	lr.last = Line{Text: text, Num: lr.num}
	return lr.last, nil
}

// Unread re-delivers the most recently returned line on the next call to
// Next. Only one line of pushback is supported; calling Unread twice
// without an intervening Next is a caller error.
func (lr *LineReader) Unread() {
	lr.replay = true
}

// LineNum returns the number of lines genuinely read so far
func (lr *LineReader) LineNum() int {
	return lr.num
}
