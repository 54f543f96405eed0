package output

import (
	"bytes"
	"fmt"
)

type documentBuffer struct {
	bytes.Buffer
}

func (b *documentBuffer) line(format string, args ...any) {
	if len(args) == 0 {
		b.WriteString(format)
	} else {
		fmt.Fprintf(b, format, args...)
	}
	b.WriteByte('\n')
}

func (b *documentBuffer) blank() {
	b.WriteByte('\n')
}
