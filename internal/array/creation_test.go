package array

import (
	"errors"
	"testing"
)

func TestNewFromSlice(t *testing.T) {
	d, err := New([]float64{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	assertShape(t, Shape{3}, d.Shape(), "natural shape")
	if d.DType() != Float64 {
		t.Errorf("dtype = %s, want float64", d.DType())
	}
	assertFloat(t, 2, d.Float64At(1), "element 1")
}

func TestNewFromNestedSlice(t *testing.T) {
	d, err := New([][]float64{{1, 2, 3}, {4, 5, 6}})
	if err != nil {
		t.Fatal(err)
	}
	assertShape(t, Shape{2, 3}, d.Shape(), "nested shape")
	assertFloat(t, 6, d.Float64At(1, 2), "element (1,2)")
}

func TestNewFromScalar(t *testing.T) {
	d, err := New(3.5)
	if err != nil {
		t.Fatal(err)
	}
	assertShape(t, Shape{}, d.Shape(), "scalar shape")
	assertFloat(t, 3.5, d.Float64(), "scalar value")
}

func TestNewInfersIntDType(t *testing.T) {
	d, err := New([]int{1, 2})
	if err != nil {
		t.Fatal(err)
	}
	if d.DType() != Int64 {
		t.Errorf("dtype = %s, want int64", d.DType())
	}
}

func TestNewRejectsRaggedInput(t *testing.T) {
	if _, err := New([][]float64{{1, 2}, {3}}); err == nil {
		t.Error("ragged input accepted")
	}
	if _, err := New([][]float64{{1}, {}}); err == nil {
		t.Error("empty inner sequence accepted")
	}
}

func TestNewWithDimsPadsTrailingAxes(t *testing.T) {
	d, err := New([]float64{1, 2, 3}, WithDims(2))
	if err != nil {
		t.Fatal(err)
	}
	// Trailing singleton axis, data untouched.
	assertShape(t, Shape{3, 1}, d.Shape(), "padded shape")
	assertFloat(t, 3, d.Float64At(2, 0), "data order preserved")

	d, err = New(5.0, WithDims(3))
	if err != nil {
		t.Fatal(err)
	}
	assertShape(t, Shape{1, 1, 1}, d.Shape(), "scalar to 3 axes")
}

func TestNewWithDimsTooSmallFails(t *testing.T) {
	_, err := New([][]float64{{1, 2}, {3, 4}}, WithDims(1))
	if err == nil {
		t.Fatal("dims below natural rank accepted")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}
	if verr.Attr != "dims" {
		t.Errorf("validation attr = %q, want \"dims\"", verr.Attr)
	}
}

func TestNewWithMinDims(t *testing.T) {
	d, err := New([]float64{1, 2}, WithMinDims(3))
	if err != nil {
		t.Fatal(err)
	}
	assertShape(t, Shape{2, 1, 1}, d.Shape(), "min dims padding")

	// minDims below the natural rank is a no-op.
	d, err = New([][]float64{{1, 2}, {3, 4}}, WithMinDims(1))
	if err != nil {
		t.Fatal(err)
	}
	assertShape(t, Shape{2, 2}, d.Shape(), "min dims no-op")
}

func TestNewReadonly(t *testing.T) {
	d, err := New([]float64{1, 2}, AsReadonly())
	if err != nil {
		t.Fatal(err)
	}
	if d.Writeable() {
		t.Fatal("readonly array reports writeable")
	}
	defer func() {
		if recover() == nil {
			t.Error("mutation of readonly array should panic")
		}
	}()
	d.SetFloat64(9, 0)
}

func TestNewWithDType(t *testing.T) {
	d, err := New([]int{1, 2, 3}, WithDType(Float32))
	if err != nil {
		t.Fatal(err)
	}
	if d.DType() != Float32 {
		t.Errorf("dtype = %s, want float32", d.DType())
	}
	got := d.AsFloat32()
	if got[2] != 3 {
		t.Errorf("element 2 = %v, want 3", got[2])
	}
}

func TestNewFromDenseCopies(t *testing.T) {
	src := mustFloat64s(t, []float64{1, 2}, Shape{2})
	d, err := New(src)
	if err != nil {
		t.Fatal(err)
	}
	src.SetFloat64(5, 0)
	assertFloat(t, 1, d.Float64At(0), "copy is independent")
}

func TestFromSlicesRejectShapeMismatch(t *testing.T) {
	if _, err := FromFloat64s([]float64{1, 2, 3}, Shape{2}); err == nil {
		t.Error("length mismatch accepted")
	}
}

func TestArange(t *testing.T) {
	d, err := Arange(2, 6)
	if err != nil {
		t.Fatal(err)
	}
	assertShape(t, Shape{4}, d.Shape(), "arange shape")
	want := []float64{2, 3, 4, 5}
	for i, w := range want {
		assertFloat(t, w, d.Float64At(i), "arange value")
	}
}

func TestLinspace(t *testing.T) {
	d, err := Linspace(0, 1, 5)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0, 0.25, 0.5, 0.75, 1}
	for i, w := range want {
		assertFloat(t, w, d.Float64At(i), "linspace value")
	}
}

func TestFullAndZeros(t *testing.T) {
	z, err := Zeros(Shape{2, 2})
	if err != nil {
		t.Fatal(err)
	}
	assertFloat(t, 0, z.Float64At(1, 1), "zeros")

	f, err := Full(Shape{2}, 3.14)
	if err != nil {
		t.Fatal(err)
	}
	assertFloat(t, 3.14, f.Float64At(0), "full")
}
