package propgraph

import (
	"time"

	"github.com/hupe1980/propgraph/internal/store"
	"github.com/hupe1980/propgraph/value"
)

// Options describe how an operator writes its product:
// product<mask> = accumulator(product, result).
//
// The zero Options overwrite the whole product with the result.
type Options[T value.Type] = store.Options[T]

// Mask selects the product elements an operator may write. Use
// VertexTypeMask for operators producing a vertex type and EdgeTypeMask for
// operators producing an edge type.
type Mask = store.Mask

// VertexTypeMask masks an operator with the values of vertex type typ.
func VertexTypeMask(typ uint32) Mask { return store.VertexTypeMask(typ) }

// EdgeTypeMask masks an operator with the edges of edge type et.
func EdgeTypeMask(et uint32) Mask { return store.EdgeTypeMask(et) }

func operate(t *Tx, op string, product uint32, fn func(g *store.Graph) error) error {
	g, err := t.inner.Graph()
	if err != nil {
		return err
	}
	start := time.Now()
	err = translateError(fn(g))
	t.metrics.RecordOperator(op, time.Since(start), err)
	t.logger.LogOperator(t.ctx, op, product, err)
	if err == nil {
		t.mutations++
	}
	return err
}

// MultiplyEdgeTypes computes product = a ⊕.⊗ b over semiring s: the weight
// of u->w is the ⊕ over all paths u->v->w of weight(a, u->v) ⊗ weight(b, v->w).
//
// All operators in this file write into an existing vertex or edge type
// whose value type must be T, otherwise they fail with ErrTypeMismatch.
// Operands of other value types are coerced to T. The product may also be
// an operand.
func MultiplyEdgeTypes[T value.Type](t *Tx, product, a, b uint32, s Semiring[T], opts Options[T]) error {
	return operate(t, "mxm", product, func(g *store.Graph) error {
		return store.MultiplyEdgeTypes(g, product, a, b, s, opts)
	})
}

// MultiplyEdgeTypeByVertexType computes vertex type product = A ⊕.⊗ u for
// edge type et and vertex type vt.
func MultiplyEdgeTypeByVertexType[T value.Type](t *Tx, product, et, vt uint32, s Semiring[T], opts Options[T]) error {
	return operate(t, "mxv", product, func(g *store.Graph) error {
		return store.MultiplyEdgeTypeByVertexType(g, product, et, vt, s, opts)
	})
}

// MultiplyVertexTypeByEdgeType computes vertex type product = u ⊕.⊗ B for
// vertex type vt and edge type et.
func MultiplyVertexTypeByEdgeType[T value.Type](t *Tx, product, vt, et uint32, s Semiring[T], opts Options[T]) error {
	return operate(t, "vxm", product, func(g *store.Graph) error {
		return store.MultiplyVertexTypeByEdgeType(g, product, vt, et, s, opts)
	})
}

// AddEdgeTypes writes the union of edge types a and b into product,
// combining weights of edges present in both with op.
func AddEdgeTypes[T value.Type](t *Tx, product, a, b uint32, op BinaryOp[T], opts Options[T]) error {
	return operate(t, "ewise_add", product, func(g *store.Graph) error {
		return store.AddEdgeTypes(g, product, a, b, op, opts)
	})
}

// MultiplyElementWiseEdgeTypes writes the intersection of edge types a and
// b into product, combining weights with op.
func MultiplyElementWiseEdgeTypes[T value.Type](t *Tx, product, a, b uint32, op BinaryOp[T], opts Options[T]) error {
	return operate(t, "ewise_mult", product, func(g *store.Graph) error {
		return store.MultiplyElementWiseEdgeTypes(g, product, a, b, op, opts)
	})
}

// AddVertexTypes writes the union of vertex types a and b into product.
func AddVertexTypes[T value.Type](t *Tx, product, a, b uint32, op BinaryOp[T], opts Options[T]) error {
	return operate(t, "ewise_add", product, func(g *store.Graph) error {
		return store.AddVertexTypes(g, product, a, b, op, opts)
	})
}

// MultiplyElementWiseVertexTypes writes the intersection of vertex types a
// and b into product.
func MultiplyElementWiseVertexTypes[T value.Type](t *Tx, product, a, b uint32, op BinaryOp[T], opts Options[T]) error {
	return operate(t, "ewise_mult", product, func(g *store.Graph) error {
		return store.MultiplyElementWiseVertexTypes(g, product, a, b, op, opts)
	})
}

// ApplyToEdgeType writes op(w) for every weight w of et into product.
func ApplyToEdgeType[T value.Type](t *Tx, product, et uint32, op UnaryOp[T], opts Options[T]) error {
	return operate(t, "apply", product, func(g *store.Graph) error {
		return store.ApplyToEdgeType(g, product, et, op, opts)
	})
}

// ApplyScalarToEdgeType writes op(w, scalar) for every weight w of et into
// product.
func ApplyScalarToEdgeType[T value.Type](t *Tx, product, et uint32, op BinaryOp[T], scalar T, opts Options[T]) error {
	return operate(t, "apply", product, func(g *store.Graph) error {
		return store.ApplyScalarToEdgeType(g, product, et, op, scalar, opts)
	})
}

// ApplyToVertexType writes op(v) for every value v of vt into product.
func ApplyToVertexType[T value.Type](t *Tx, product, vt uint32, op UnaryOp[T], opts Options[T]) error {
	return operate(t, "apply", product, func(g *store.Graph) error {
		return store.ApplyToVertexType(g, product, vt, op, opts)
	})
}

// SelectEdges writes the edges of et that satisfy pred into product.
func SelectEdges[T value.Type](t *Tx, product, et uint32, pred IndexUnaryOp[T], opts Options[T]) error {
	return operate(t, "select", product, func(g *store.Graph) error {
		return store.SelectEdges(g, product, et, pred, opts)
	})
}

// SelectVertices writes the values of vt that satisfy pred into product.
func SelectVertices[T value.Type](t *Tx, product, vt uint32, pred IndexUnaryOp[T], opts Options[T]) error {
	return operate(t, "select", product, func(g *store.Graph) error {
		return store.SelectVertices(g, product, vt, pred, opts)
	})
}
