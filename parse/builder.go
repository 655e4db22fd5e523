package parse

import (
	"fmt"

	"github.com/signadot/pod-format/debug"
	"github.com/signadot/pod-format/ir"
	"github.com/signadot/pod-format/token"
)

// frame accumulates the statements of one block.  The document is the
// bottom frame and has no owner.
type frame struct {
	owner *ir.Node
	scope string
	nodes []*ir.Node
	open  *token.Pos
}

// builder assembles the tree from completed statements.  Entering a block
// pushes the current frame; leaving it pops the enclosing frame back and
// attaches the finished nodes to the node which opened the block.
type builder struct {
	current frame
	frames  []frame
	opts    *parseOpts
}

func newBuilder(opts *parseOpts) *builder {
	return &builder{opts: opts}
}

func (b *builder) depth() int {
	return len(b.frames)
}

func (b *builder) add(y *ir.Node) {
	b.current.nodes = append(b.current.nodes, y)
}

func (b *builder) push(owner *ir.Node, scope string, open *token.Pos) {
	if debug.Parse() {
		debug.Logf("push %s scope %q at depth %d\n", owner.Repr(), scope, len(b.frames))
	}
	b.frames = append(b.frames, b.current)
	b.current = frame{owner: owner, scope: scope, open: open}
}

func (b *builder) pop() (*ir.Node, error) {
	n := len(b.frames)
	if n == 0 {
		return nil, fmt.Errorf("%w: no open block", ErrParse)
	}
	done := b.current
	b.current = b.frames[n-1]
	b.frames = b.frames[:n-1]
	if err := done.owner.SetBlock(done.nodes, done.scope); err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("pop %s with %d nodes at depth %d\n", done.owner.Repr(), len(done.nodes), n-1)
	}
	b.add(done.owner)
	return done.owner, nil
}

// finish returns the document root.  Every block must have been closed.
func (b *builder) finish(posDoc *token.PosDoc) (*ir.Node, error) {
	if len(b.frames) != 0 {
		return nil, &Error{
			Source: b.opts.source,
			Pos:    b.current.open,
			Err:    fmt.Errorf("%w block", token.ErrUnterminated),
		}
	}
	root := &ir.Node{}
	root.SetSource(b.opts.source, 0)
	if err := root.SetBlock(b.current.nodes, ""); err != nil {
		return nil, err
	}
	if b.opts.positions != nil {
		b.opts.positions[root] = posDoc.Pos(0)
	}
	return root, nil
}
