// Package jsontree decodes JSON documents into an order-preserving tree and
// provides depth-first traversal over their string leaves.
//
// The standard library decodes objects into maps, which randomizes key order
// on iteration. Translation lint reports must list findings in the order keys
// appear in the file, so the tree is built from the json.Decoder token stream
// instead, keeping object members in encounter order.
package jsontree

// Kind discriminates the variants of a Node.
type Kind int

// Node variants.
const (
	// KindObject is a JSON object with ordered members.
	KindObject Kind = iota
	// KindArray is a JSON array.
	KindArray
	// KindString is a string leaf.
	KindString
	// KindScalar is a non-string leaf (number, boolean or null).
	KindScalar
)

// Member is one key/value entry of an object node.
type Member struct {
	Key   string
	Value *Node
}

// Node is one value in a decoded JSON document. Exactly one of the payload
// fields is meaningful, selected by Kind.
type Node struct {
	Kind    Kind
	Members []Member // KindObject, in encounter order
	Elems   []*Node  // KindArray, in index order
	Str     string   // KindString
}

// Visitor is invoked for every string leaf with the nearest enclosing object
// key and the leaf's value.
type Visitor func(key, value string)

// Walk visits every string leaf of the tree exactly once, depth-first.
// Object members are visited in encounter order and array elements in index
// order. Array indices do not contribute to the reported key; a leaf inside
// an array reports the nearest enclosing object key. Leaves above any object
// (a bare string root, or strings in a top-level array) report an empty key.
// Non-string scalars terminate recursion without a visitor call.
func Walk(root *Node, visit Visitor) {
	walk(root, "", visit)
}

func walk(n *Node, key string, visit Visitor) {
	if n == nil {
		return
	}
	switch n.Kind {
	case KindObject:
		for _, m := range n.Members {
			walk(m.Value, m.Key, visit)
		}
	case KindArray:
		for _, e := range n.Elems {
			walk(e, key, visit)
		}
	case KindString:
		visit(key, n.Str)
	case KindScalar:
		// nothing to visit
	}
}

// StringLeafCount returns the number of string leaves in the tree.
func StringLeafCount(root *Node) int {
	count := 0
	Walk(root, func(string, string) { count++ })
	return count
}
