package store

import (
	"fmt"

	"github.com/hupe1980/propgraph/internal/container"
	"github.com/hupe1980/propgraph/internal/sparse"
	"github.com/hupe1980/propgraph/value"
)

type maskKind uint8

const (
	noMask maskKind = iota
	vertexTypeMask
	edgeTypeMask
)

// Mask selects the output elements an operator may write: the elements of
// a vertex type or an edge type.
type Mask struct {
	kind  maskKind
	index uint32
}

// VertexTypeMask masks a vector-valued operator with vertex type typ.
func VertexTypeMask(typ uint32) Mask { return Mask{kind: vertexTypeMask, index: typ} }

// EdgeTypeMask masks a matrix-valued operator with edge type et.
func EdgeTypeMask(et uint32) Mask { return Mask{kind: edgeTypeMask, index: et} }

// Options describe how an operator writes its product:
// product⟨mask⟩ = accumulator(product, result).
type Options[T value.Type] struct {
	// Mask restricts the written elements; the zero Mask writes everywhere.
	Mask Mask
	// Complement inverts the mask.
	Complement bool
	// Structural uses the mask's stored elements; otherwise only elements
	// whose value is truthy count.
	Structural bool
	// Replace drops product elements outside the mask.
	Replace bool
	// TransposeA transposes the first edge type operand.
	TransposeA bool
	// TransposeB transposes the second edge type operand.
	TransposeB bool
	// Accumulator combines existing product elements with the result. Nil
	// overwrites.
	Accumulator sparse.BinaryOp[T]
}

func (o Options[T]) descriptor() sparse.Descriptor {
	return sparse.Descriptor{Replace: o.Replace, Complement: o.Complement}
}

// valueMask admits the elements of an adjacency matrix whose value is
// truthy.
type valueMask struct{ m container.AnyAdjacencyMatrix }

func (v valueMask) Contains(row, col uint32) bool {
	x, ok := v.m.GetValue(sparse.Coord{Row: row, Col: col})
	return ok && x.Bool()
}

type structureMask struct{ m container.AnyAdjacencyMatrix }

func (s structureMask) Contains(row, col uint32) bool {
	return s.m.IsElement(sparse.Coord{Row: row, Col: col})
}

func (g *Graph) vectorMask(m Mask, structural bool) (sparse.VectorMask, error) {
	switch m.kind {
	case noMask:
		return nil, nil
	case vertexTypeMask:
		vec, err := g.vertexVector(m.index)
		if err != nil {
			return nil, err
		}
		if structural {
			return vec.Structure(), nil
		}
		mask := vec.Structure()
		vec.Entries(func(i uint32, v value.Value) bool {
			if !v.Bool() {
				mask.Remove(i)
			}
			return true
		})
		return mask, nil
	}
	return nil, fmt.Errorf("%w: edge type %d cannot mask a vertex type", ErrInvalidMask, m.index)
}

func (g *Graph) matrixMask(m Mask, structural bool) (sparse.MatrixMask, error) {
	switch m.kind {
	case noMask:
		return nil, nil
	case edgeTypeMask:
		am, err := g.adjacencyMatrix(m.index)
		if err != nil {
			return nil, err
		}
		if structural {
			return structureMask{am}, nil
		}
		return valueMask{am}, nil
	}
	return nil, fmt.Errorf("%w: vertex type %d cannot mask an edge type", ErrInvalidMask, m.index)
}

func typedVertexVector[T value.Type](g *Graph, typ uint32) (*container.VertexVector[T], error) {
	vec, err := g.vertexVector(typ)
	if err != nil {
		return nil, err
	}
	tv, ok := vec.(*container.VertexVector[T])
	if !ok {
		return nil, &TypeMismatchError{Kind: "vertex type", Index: typ,
			Expected: value.TypeOf[T]().String(), Actual: vec.TypeID().String()}
	}
	return tv, nil
}

func typedAdjacencyMatrix[T value.Type](g *Graph, et uint32) (*container.AdjacencyMatrix[T], error) {
	m, err := g.adjacencyMatrix(et)
	if err != nil {
		return nil, err
	}
	tm, ok := m.(*container.AdjacencyMatrix[T])
	if !ok {
		return nil, &TypeMismatchError{Kind: "edge type", Index: et,
			Expected: value.TypeOf[T]().String(), Actual: m.TypeID().String()}
	}
	return tm, nil
}

func matrixOperand[T value.Type](g *Graph, et uint32, transpose bool) (*sparse.Matrix[T], error) {
	m, err := g.adjacencyMatrix(et)
	if err != nil {
		return nil, err
	}
	return container.MatrixAs[T](m, transpose), nil
}

func vectorOperand[T value.Type](g *Graph, typ uint32) (*sparse.Vector[T], error) {
	vec, err := g.vertexVector(typ)
	if err != nil {
		return nil, err
	}
	return container.VectorAs[T](vec), nil
}

// matrixOp resolves the product edge type and mask, journals a full
// snapshot of the product and runs fn against it.
func matrixOp[T value.Type](g *Graph, product uint32, opts Options[T],
	fn func(c *sparse.Matrix[T], mask sparse.MatrixMask) error,
) error {
	pm, err := typedAdjacencyMatrix[T](g, product)
	if err != nil {
		return err
	}
	mask, err := g.matrixMask(opts.Mask, opts.Structural)
	if err != nil {
		return err
	}
	g.journal.AdjacencyMatrixOverwrite(product)
	return pm.Mutate(func(c *sparse.Matrix[T]) error { return fn(c, mask) })
}

func vectorOp[T value.Type](g *Graph, product uint32, opts Options[T],
	fn func(w *sparse.Vector[T], mask sparse.VectorMask) error,
) error {
	pv, err := typedVertexVector[T](g, product)
	if err != nil {
		return err
	}
	mask, err := g.vectorMask(opts.Mask, opts.Structural)
	if err != nil {
		return err
	}
	g.journal.VertexVectorOverwrite(product)
	return fn(pv.Vector(), mask)
}

// MultiplyEdgeTypes computes product = a ⊕.⊗ b. The product edge type must
// have weight type T; operands are coerced.
func MultiplyEdgeTypes[T value.Type](g *Graph, product, a, b uint32, s sparse.Semiring[T], opts Options[T]) error {
	am, err := matrixOperand[T](g, a, opts.TransposeA)
	if err != nil {
		return err
	}
	bm, err := matrixOperand[T](g, b, opts.TransposeB)
	if err != nil {
		return err
	}
	return matrixOp(g, product, opts, func(c *sparse.Matrix[T], mask sparse.MatrixMask) error {
		return sparse.MxM(c, mask, opts.Accumulator, s, am, bm, opts.descriptor())
	})
}

// MultiplyEdgeTypeByVertexType computes product = A ⊕.⊗ u for edge type et
// and vertex type vt: for every tail, the ⊕ over its out-edges of the edge
// weight ⊗ the head's value.
func MultiplyEdgeTypeByVertexType[T value.Type](g *Graph, product, et, vt uint32, s sparse.Semiring[T], opts Options[T]) error {
	am, err := matrixOperand[T](g, et, opts.TransposeA)
	if err != nil {
		return err
	}
	u, err := vectorOperand[T](g, vt)
	if err != nil {
		return err
	}
	return vectorOp(g, product, opts, func(w *sparse.Vector[T], mask sparse.VectorMask) error {
		return sparse.MxV(w, mask, opts.Accumulator, s, am, u, opts.descriptor())
	})
}

// MultiplyVertexTypeByEdgeType computes product = u ⊕.⊗ B for vertex type
// vt and edge type et: for every head, the ⊕ over its in-edges of the
// tail's value ⊗ the edge weight.
func MultiplyVertexTypeByEdgeType[T value.Type](g *Graph, product, vt, et uint32, s sparse.Semiring[T], opts Options[T]) error {
	u, err := vectorOperand[T](g, vt)
	if err != nil {
		return err
	}
	bm, err := matrixOperand[T](g, et, opts.TransposeB)
	if err != nil {
		return err
	}
	return vectorOp(g, product, opts, func(w *sparse.Vector[T], mask sparse.VectorMask) error {
		return sparse.VxM(w, mask, opts.Accumulator, s, u, bm, opts.descriptor())
	})
}

// AddEdgeTypes computes the element-wise union of a and b, combining
// overlapping weights with op.
func AddEdgeTypes[T value.Type](g *Graph, product, a, b uint32, op sparse.BinaryOp[T], opts Options[T]) error {
	am, err := matrixOperand[T](g, a, opts.TransposeA)
	if err != nil {
		return err
	}
	bm, err := matrixOperand[T](g, b, opts.TransposeB)
	if err != nil {
		return err
	}
	return matrixOp(g, product, opts, func(c *sparse.Matrix[T], mask sparse.MatrixMask) error {
		return sparse.EWiseAddMatrix(c, mask, opts.Accumulator, op, am, bm, opts.descriptor())
	})
}

// MultiplyElementWiseEdgeTypes computes the element-wise intersection of a
// and b, combining weights with op.
func MultiplyElementWiseEdgeTypes[T value.Type](g *Graph, product, a, b uint32, op sparse.BinaryOp[T], opts Options[T]) error {
	am, err := matrixOperand[T](g, a, opts.TransposeA)
	if err != nil {
		return err
	}
	bm, err := matrixOperand[T](g, b, opts.TransposeB)
	if err != nil {
		return err
	}
	return matrixOp(g, product, opts, func(c *sparse.Matrix[T], mask sparse.MatrixMask) error {
		return sparse.EWiseMultMatrix(c, mask, opts.Accumulator, op, am, bm, opts.descriptor())
	})
}

// AddVertexTypes computes the element-wise union of vertex types a and b.
func AddVertexTypes[T value.Type](g *Graph, product, a, b uint32, op sparse.BinaryOp[T], opts Options[T]) error {
	u, err := vectorOperand[T](g, a)
	if err != nil {
		return err
	}
	v, err := vectorOperand[T](g, b)
	if err != nil {
		return err
	}
	return vectorOp(g, product, opts, func(w *sparse.Vector[T], mask sparse.VectorMask) error {
		return sparse.EWiseAddVector(w, mask, opts.Accumulator, op, u, v, opts.descriptor())
	})
}

// MultiplyElementWiseVertexTypes computes the element-wise intersection of
// vertex types a and b.
func MultiplyElementWiseVertexTypes[T value.Type](g *Graph, product, a, b uint32, op sparse.BinaryOp[T], opts Options[T]) error {
	u, err := vectorOperand[T](g, a)
	if err != nil {
		return err
	}
	v, err := vectorOperand[T](g, b)
	if err != nil {
		return err
	}
	return vectorOp(g, product, opts, func(w *sparse.Vector[T], mask sparse.VectorMask) error {
		return sparse.EWiseMultVector(w, mask, opts.Accumulator, op, u, v, opts.descriptor())
	})
}

// ApplyToEdgeType maps every weight of et through op into product.
func ApplyToEdgeType[T value.Type](g *Graph, product, et uint32, op sparse.UnaryOp[T], opts Options[T]) error {
	am, err := matrixOperand[T](g, et, opts.TransposeA)
	if err != nil {
		return err
	}
	return matrixOp(g, product, opts, func(c *sparse.Matrix[T], mask sparse.MatrixMask) error {
		return sparse.ApplyMatrix(c, mask, opts.Accumulator, op, am, opts.descriptor())
	})
}

// ApplyScalarToEdgeType maps every weight x of et to op(x, scalar) into
// product.
func ApplyScalarToEdgeType[T value.Type](g *Graph, product, et uint32, op sparse.BinaryOp[T], scalar T, opts Options[T]) error {
	am, err := matrixOperand[T](g, et, opts.TransposeA)
	if err != nil {
		return err
	}
	return matrixOp(g, product, opts, func(c *sparse.Matrix[T], mask sparse.MatrixMask) error {
		return sparse.ApplyScalarMatrix(c, mask, opts.Accumulator, op, am, scalar, opts.descriptor())
	})
}

// ApplyToVertexType maps every value of vt through op into product.
func ApplyToVertexType[T value.Type](g *Graph, product, vt uint32, op sparse.UnaryOp[T], opts Options[T]) error {
	u, err := vectorOperand[T](g, vt)
	if err != nil {
		return err
	}
	return vectorOp(g, product, opts, func(w *sparse.Vector[T], mask sparse.VectorMask) error {
		return sparse.ApplyVector(w, mask, opts.Accumulator, op, u, opts.descriptor())
	})
}

// SelectEdges copies the edges of et for which pred holds into product.
func SelectEdges[T value.Type](g *Graph, product, et uint32, pred sparse.IndexUnaryOp[T], opts Options[T]) error {
	am, err := matrixOperand[T](g, et, opts.TransposeA)
	if err != nil {
		return err
	}
	return matrixOp(g, product, opts, func(c *sparse.Matrix[T], mask sparse.MatrixMask) error {
		return sparse.SelectMatrix(c, mask, opts.Accumulator, pred, am, opts.descriptor())
	})
}

// SelectVertices copies the values of vt for which pred holds into product.
func SelectVertices[T value.Type](g *Graph, product, vt uint32, pred sparse.IndexUnaryOp[T], opts Options[T]) error {
	u, err := vectorOperand[T](g, vt)
	if err != nil {
		return err
	}
	return vectorOp(g, product, opts, func(w *sparse.Vector[T], mask sparse.VectorMask) error {
		return sparse.SelectVector(w, mask, opts.Accumulator, pred, u, opts.descriptor())
	})
}
