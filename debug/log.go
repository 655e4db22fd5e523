package debug

import (
	"bytes"
	"fmt"
	"os"

	"github.com/signadot/pod-format/ir"
)

// Logf writes a debug message to stderr.  *ir.Node arguments are rendered
// as canonical Pod text.
func Logf(msg string, args ...any) {
	for i := range args {
		x, ok := args[i].(*ir.Node)
		if !ok {
			continue
		}
		buf := bytes.NewBuffer(nil)
		if err := x.Write(buf); err != nil {
			args[i] = fmt.Sprintf("[raw *ir.Node] %s", x.Repr())
			continue
		}
		args[i] = buf.String()
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
