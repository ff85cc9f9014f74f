package array

import "testing"

func assertShape(t *testing.T, expected, actual Shape, msg string) {
	t.Helper()
	if !expected.Equal(actual) {
		t.Errorf("%s: expected shape %v, got %v", msg, expected, actual)
	}
}

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1}, // rank-0 scalar
		{Shape{5}, 5},
		{Shape{2, 3}, 6},
		{Shape{2, 3, 4}, 24},
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("%v.NumElements() = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestShapeValidate(t *testing.T) {
	if err := (Shape{2, 3}).Validate(); err != nil {
		t.Errorf("valid shape rejected: %v", err)
	}
	if err := (Shape{2, 0}).Validate(); err == nil {
		t.Error("zero dimension accepted")
	}
	if err := (Shape{-1}).Validate(); err == nil {
		t.Error("negative dimension accepted")
	}
}

func TestShapeComputeStrides(t *testing.T) {
	strides := Shape{2, 3, 4}.ComputeStrides()
	want := []int{12, 4, 1}
	for i := range want {
		if strides[i] != want[i] {
			t.Fatalf("strides = %v, want %v", strides, want)
		}
	}
}

func TestAsShape(t *testing.T) {
	tests := []struct {
		name   string
		x      any
		minDim int
		want   Shape
	}{
		{"int slice", []int{2, 3}, 0, Shape{2, 3}},
		{"shape", Shape{4, 5}, 0, Shape{4, 5}},
		{"int64 slice", []int64{7}, 0, Shape{7}},
		{"integer", 5, 0, Shape{5}},
		{"integer padded", 5, 3, Shape{1, 1, 5}},
		{"slice padded", []int{2, 3}, 4, Shape{1, 1, 2, 3}},
		{"already long enough", []int{2, 3, 4}, 2, Shape{2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AsShape(tt.x, tt.minDim)
			if err != nil {
				t.Fatalf("AsShape(%v, %d): %v", tt.x, tt.minDim, err)
			}
			assertShape(t, tt.want, got, tt.name)
		})
	}
}

func TestAsShapeRejectsNonShapes(t *testing.T) {
	for _, x := range []any{"nope", 3.14, []string{"a"}, nil} {
		if _, err := AsShape(x, 0); err == nil {
			t.Errorf("AsShape(%v) should fail", x)
		}
	}
}

func TestBroadcastShape(t *testing.T) {
	assertShape(t, Shape{1, 1, 3}, BroadcastShape(Shape{3}, 3), "pad to 3")
	assertShape(t, Shape{2, 3}, BroadcastShape(Shape{2, 3}, 2), "no change")
	// Never truncates.
	assertShape(t, Shape{2, 3}, BroadcastShape(Shape{2, 3}, 1), "no truncation")
}

func TestBroadcastShapes(t *testing.T) {
	got, needs, err := BroadcastShapes(Shape{3, 1}, Shape{3, 5})
	if err != nil {
		t.Fatal(err)
	}
	assertShape(t, Shape{3, 5}, got, "broadcast (3,1)x(3,5)")
	if !needs {
		t.Error("expected needsBroadcast = true")
	}

	got, needs, err = BroadcastShapes(Shape{2, 3}, Shape{2, 3})
	if err != nil {
		t.Fatal(err)
	}
	assertShape(t, Shape{2, 3}, got, "identical shapes")
	if needs {
		t.Error("expected needsBroadcast = false")
	}

	if _, _, err := BroadcastShapes(Shape{3, 4}, Shape{3, 5}); err == nil {
		t.Error("incompatible shapes accepted")
	}
}
