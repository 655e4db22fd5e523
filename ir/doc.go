// Package ir provides the in-memory representation of Pod documents.
//
// # Overview
//
// A Pod document is an ordered sequence of statements, each of which may
// have a semantic type, a name and a value.  Statements nest through block
// values.  A parsed document is represented by a single root [Node] with no
// name, no semantic type and a block value holding the top level
// statements.
//
// # Values
//
// A [Value] is a tagged union over the types
//
//   - UndefinedType: no value; a nil *Value is also undefined
//   - StringType, IntType (int32), FloatType (float32), BoolType
//   - IdentifierType: a bare word, as in `mode = fast;`
//   - EmbedType: verbatim text tagged with a language, `<sh>ls</sh>`
//   - BlockType: an ordered sequence of nodes with an optional scope type
//
// Scalar values are replaced wholesale, never modified in place.
//
// # Ownership
//
// A node belongs to at most one block.  Its Parent is the node whose value
// is that block, or nil.  Operations which attach nodes to a block
// ([Node.SetValue], [Node.SetBlock], [Node.Append]) maintain Parent and
// refuse nodes which already have one.  After editing a [Block]'s Nodes
// directly, call [Node.SyncBlock] on the owner: it adopts new children,
// drops offending ones and reports every violation in one [IntegrityError].
//
// # Accessors
//
// Typed access goes through IsX and AsX methods.  AsX applies the
// coercion rules summarized by [Coercible] and otherwise fails with a
// [ValueTypeError], leaving the node untouched:
//
//	port, err := root.ChildByName("port").AsInt()
//	if errors.Is(err, ir.ErrValueType) {
//	    // not a number
//	}
//
// # Writing
//
// [Node.Write] emits canonical Pod text: four spaces of indentation per
// level, `type name = value;` statements and floats which always carry a
// decimal point.  Parsing the output yields a tree [Equal] to the input.
//
// # Thread Safety
//
// Nodes are not safe for concurrent mutation.  Distinct trees may be used
// from distinct goroutines.
package ir
