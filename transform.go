package viz

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// matrixEpsilon is the tolerance used for approximate matrix comparison.
const matrixEpsilon = 1e-8

// singularEpsilon is the determinant threshold below which a matrix is
// treated as non-invertible.
const singularEpsilon = 1e-12

// positionDefault fills the missing trailing components when promoting a
// position-like vector to homogeneous coordinates.
var positionDefault = mgl64.Vec4{0, 0, 0, 1}

// Transform is an immutable 4x4 homogeneous transformation.
//
// It uses row-vector convention: coordinates are rows, a point p is
// mapped as p * M, and the translation components occupy the last row.
// Composition therefore reads left to right: in a.Dot(b), a is applied
// to coordinates before b.
//
// Every method returns a new Transform; a value is never mutated after
// construction, so Transforms can be freely shared between model fields.
// The zero value is the identity (null) transform.
type Transform struct {
	m mgl64.Mat4

	// zero marks a matrix whose entries are genuinely all zero, so the
	// zero Transform value can stand for the identity without hijacking
	// explicitly constructed zero matrices.
	zero bool
}

// fromMat wraps a matrix, recording whether it is the all-zero matrix.
// All construction paths except Identity go through here.
func fromMat(m mgl64.Mat4) Transform {
	return Transform{m: m, zero: m == (mgl64.Mat4{})}
}

// mat returns the underlying matrix, treating the zero value as identity.
func (t Transform) mat() mgl64.Mat4 {
	if !t.zero && t.m == (mgl64.Mat4{}) {
		return mgl64.Ident4()
	}
	return t.m
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{m: mgl64.Ident4()}
}

// FromMat4 creates a Transform from m, interpreted in row-vector
// convention (translation in the last row).
func FromMat4(m mgl64.Mat4) Transform {
	return fromMat(m)
}

// FromMatrix creates a Transform from a row-major 4x4 matrix.
func FromMatrix(rows [4][4]float64) Transform {
	var m mgl64.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m.Set(r, c, rows[r][c])
		}
	}
	return fromMat(m)
}

// FromSlice creates a Transform from a row-major slice of rows.
// It returns a ShapeError unless rows is exactly 4x4.
func FromSlice(rows [][]float64) (Transform, error) {
	if len(rows) != 4 {
		return Transform{}, &ShapeError{Want: "4x4 matrix", Got: fmt.Sprintf("%d rows", len(rows))}
	}
	var m mgl64.Mat4
	for r, row := range rows {
		if len(row) != 4 {
			return Transform{}, &ShapeError{Want: "4x4 matrix", Got: fmt.Sprintf("row %d has %d columns", r, len(row))}
		}
		for c, v := range row {
			m.Set(r, c, v)
		}
	}
	return fromMat(m), nil
}

// Mat4 returns the underlying matrix.
func (t Transform) Mat4() mgl64.Mat4 {
	return t.mat()
}

// Matrix returns the matrix as row-major nested arrays.
func (t Transform) Matrix() [4][4]float64 {
	m := t.mat()
	var rows [4][4]float64
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			rows[r][c] = m.At(r, c)
		}
	}
	return rows
}

// IsNull reports whether the transform is (approximately) the identity.
func (t Transform) IsNull() bool {
	return t.mat().ApproxEqualThreshold(mgl64.Ident4(), matrixEpsilon)
}

// ApproxEqual reports whether two transforms are equal within floating
// point tolerance.
func (t Transform) ApproxEqual(o Transform) bool {
	return t.mat().ApproxEqualThreshold(o.mat(), matrixEpsilon)
}

// Dot returns the matrix product of this transform with another.
// The receiver is applied to coordinates first, o second.
func (t Transform) Dot(o Transform) Transform {
	return fromMat(t.mat().Mul4(o.mat()))
}

// DotMat4 returns the matrix product of this transform with a raw matrix
// in row-vector convention.
func (t Transform) DotMat4(m mgl64.Mat4) Transform {
	return fromMat(t.mat().Mul4(m))
}

// Transpose returns the transpose as a new transform.
func (t Transform) Transpose() Transform {
	return fromMat(t.mat().Transpose())
}

// Inv returns the inverse of the transform. It returns ErrSingular when
// the matrix has no inverse.
func (t Transform) Inv() (Transform, error) {
	m := t.mat()
	if math.Abs(m.Det()) < singularEpsilon {
		return Transform{}, ErrSingular
	}
	return fromMat(m.Inv()), nil
}

// Translated returns a new transform, translated by offset.
// The translation is applied after the transformations already present.
func (t Transform) Translated(offset mgl64.Vec3) Transform {
	return t.DotMat4(Translation(offset))
}

// Rotated returns a new transform, rotated angle degrees about axis.
// The rotation is applied after the transformations already present.
// It returns a ShapeError when axis is the zero vector.
func (t Transform) Rotated(angle float64, axis mgl64.Vec3) (Transform, error) {
	r, err := Rotation(angle, axis)
	if err != nil {
		return Transform{}, err
	}
	return t.DotMat4(r), nil
}

// RotatedAbout is Rotated with the rotation pivoting around about
// instead of the origin.
func (t Transform) RotatedAbout(angle float64, axis, about mgl64.Vec3) (Transform, error) {
	r, err := Rotation(angle, axis)
	if err != nil {
		return Transform{}, err
	}
	return t.Translated(about.Mul(-1)).DotMat4(r).Translated(about), nil
}

// Scaled returns a new transform, scaled by factors along x, y and z.
// The scaling is applied after the transformations already present.
func (t Transform) Scaled(factors mgl64.Vec3) Transform {
	return t.DotMat4(Scaling(factors))
}

// ScaledAbout is Scaled with the scaling centered on center instead of
// the origin.
func (t Transform) ScaledAbout(factors, center mgl64.Vec3) Transform {
	m := Translation(center.Mul(-1)).Mul4(Scaling(factors)).Mul4(Translation(center))
	return t.DotMat4(m)
}

// Map maps coords through the transform.
//
// coords may have 1 to 4 components; missing trailing components are
// filled from (0, 0, 0, 1), the promotion for positions. The result is
// always the full homogeneous 4-vector row. It returns a ShapeError when
// coords has more than 4 components.
func (t Transform) Map(coords []float64) ([]float64, error) {
	v, err := AsVec4(coords, positionDefault)
	if err != nil {
		return nil, err
	}
	return t.apply(v), nil
}

// IMap maps coords through the inverse of the transform.
// It returns ErrSingular when the matrix has no inverse.
func (t Transform) IMap(coords []float64) ([]float64, error) {
	inv, err := t.Inv()
	if err != nil {
		return nil, err
	}
	return inv.Map(coords)
}

// MapPoints maps a batch of coordinate rows through the transform.
// Each row is promoted like Map.
func (t Transform) MapPoints(points [][]float64) ([][]float64, error) {
	out := make([][]float64, len(points))
	for i, p := range points {
		mapped, err := t.Map(p)
		if err != nil {
			return nil, err
		}
		out[i] = mapped
	}
	return out, nil
}

// apply computes v * M.
func (t Transform) apply(v mgl64.Vec4) []float64 {
	m := t.mat()
	out := make([]float64, 4)
	for j := 0; j < 4; j++ {
		out[j] = v.Dot(m.Col(j))
	}
	return out
}

// String formats the transform row by row. The identity renders as
// "Transform(identity)".
func (t Transform) String() string {
	if t.IsNull() {
		return "Transform(identity)"
	}
	return fmt.Sprintf("Transform(%v)", t.Matrix())
}

// Chain composes transforms left to right, with identity as the seed:
// Chain() is the identity and Chain(a, b, c) equals a.Dot(b).Dot(c).
func Chain(transforms ...Transform) Transform {
	out := Identity()
	for _, t := range transforms {
		out = out.Dot(t)
	}
	return out
}

// AsVec4 promotes v to a homogeneous 4-vector, filling missing trailing
// components from def. Position-like callers use (0, 0, 0, 1); scale-like
// callers use (1, 1, 1, 1). It returns a ShapeError when v has more than
// 4 components.
func AsVec4(v []float64, def mgl64.Vec4) (mgl64.Vec4, error) {
	if len(v) > 4 {
		return mgl64.Vec4{}, &ShapeError{Want: "vector of at most 4 components", Got: fmt.Sprintf("%d components", len(v))}
	}
	out := def
	copy(out[:], v)
	return out, nil
}

// Translation returns the raw 4x4 matrix translating by offset, in
// row-vector convention (translation components in the last row).
func Translation(offset mgl64.Vec3) mgl64.Mat4 {
	return mgl64.Translate3D(offset.X(), offset.Y(), offset.Z()).Transpose()
}

// Scaling returns the raw 4x4 matrix scaling by factors along x, y and z.
func Scaling(factors mgl64.Vec3) mgl64.Mat4 {
	// Diagonal, so the row/column convention does not matter.
	return mgl64.Scale3D(factors.X(), factors.Y(), factors.Z())
}

// Rotation returns the raw 4x4 matrix rotating angle degrees about axis,
// in row-vector convention. The axis is normalized; the zero vector is a
// ShapeError.
func Rotation(angle float64, axis mgl64.Vec3) (mgl64.Mat4, error) {
	if axis.Len() == 0 {
		return mgl64.Mat4{}, &ShapeError{Want: "nonzero 3-component axis", Got: "zero vector"}
	}
	// HomogRotate3D builds the axis-angle matrix in column-vector
	// convention; transposing moves it to ours.
	return mgl64.HomogRotate3D(mgl64.DegToRad(angle), axis.Normalize()).Transpose(), nil
}
