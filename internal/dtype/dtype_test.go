package dtype

import (
	"testing"
	"time"
)

func TestKindSized(t *testing.T) {
	tests := []struct {
		kind  Kind
		sized bool
	}{
		{KindBool, true},
		{KindInt, true},
		{KindUint, true},
		{KindFloat, true},
		{KindComplex, true},
		{KindDatetime, true},
		{KindTimedelta, true},
		{KindBytes, false},
		{KindString, false},
		{KindObject, false},
	}

	for _, tt := range tests {
		if got := tt.kind.Sized(); got != tt.sized {
			t.Errorf("%s.Sized() = %v, want %v", tt.kind, got, tt.sized)
		}
	}
}

func TestDataTypeString(t *testing.T) {
	tests := []struct {
		dtype DataType
		str   string
	}{
		{Bool, "bool"},
		{Int8, "int8"},
		{Int64, "int64"},
		{Uint16, "uint16"},
		{Float32, "float32"},
		{Float64, "float64"},
		{Complex128, "complex128"},
		{Datetime64, "datetime64"},
		{Timedelta64, "timedelta64"},
		{DataType{Kind: KindBytes}, "bytes"},
		{DataType{Kind: KindString}, "str"},
		{DataType{Kind: KindObject}, "object"},
	}

	for _, tt := range tests {
		if got := tt.dtype.String(); got != tt.str {
			t.Errorf("String() = %q, want %q", got, tt.str)
		}
	}
}

func TestDataTypeBits(t *testing.T) {
	if got := Int64.Bits(); got != 64 {
		t.Errorf("Int64.Bits() = %d, want 64", got)
	}
	if got := Uint8.Bits(); got != 8 {
		t.Errorf("Uint8.Bits() = %d, want 8", got)
	}
	if got := (DataType{Kind: KindObject}).Bits(); got != 0 {
		t.Errorf("object.Bits() = %d, want 0", got)
	}
}

func TestSpecStates(t *testing.T) {
	anySpec := Any()
	kindSpec := OfKind(KindFloat)
	exactSpec := Exact(Int64)

	if !anySpec.IsAny() || anySpec.IsKind() || anySpec.IsExact() {
		t.Error("Any() should be unconstrained only")
	}
	if !kindSpec.IsKind() || kindSpec.IsAny() || kindSpec.IsExact() {
		t.Error("OfKind() should be kind-constrained only")
	}
	if !exactSpec.IsExact() || exactSpec.IsAny() || exactSpec.IsKind() {
		t.Error("Exact() should be exact only")
	}

	// An exact spec implies a derivable kind.
	if exactSpec.Kind() != KindInt {
		t.Errorf("Exact(Int64).Kind() = %v, want KindInt", exactSpec.Kind())
	}
	if dt, ok := exactSpec.DataType(); !ok || dt != Int64 {
		t.Errorf("Exact(Int64).DataType() = %v, %v", dt, ok)
	}
	if _, ok := kindSpec.DataType(); ok {
		t.Error("kind spec should not expose an exact descriptor")
	}
}

func TestSpecAdmits(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		dt   DataType
		want bool
	}{
		{"any admits int64", Any(), Int64, true},
		{"any admits object", Any(), DataType{Kind: KindObject}, true},
		{"kind float admits float32", OfKind(KindFloat), Float32, true},
		{"kind float admits float64", OfKind(KindFloat), Float64, true},
		{"kind float rejects int64", OfKind(KindFloat), Int64, false},
		{"kind uint rejects int of same size", OfKind(KindUint), Int8, false},
		{"exact int64 admits int64", Exact(Int64), Int64, true},
		{"exact int64 rejects int8", Exact(Int64), Int8, false},
		{"exact int64 rejects uint64", Exact(Int64), Uint64, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.spec.Admits(tt.dt); got != tt.want {
				t.Errorf("Admits() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpecEqualAndString(t *testing.T) {
	if !Exact(Int64).Equal(Exact(Int64)) {
		t.Error("identical exact specs should be equal")
	}
	if Exact(Int64).Equal(Exact(Int32)) {
		t.Error("different exact specs should not be equal")
	}
	if Exact(Int64).Equal(OfKind(KindInt)) {
		t.Error("exact and kind specs should not be equal")
	}
	if !Any().Equal(Any()) {
		t.Error("unconstrained specs should be equal")
	}

	if got := Any().String(); got != "any" {
		t.Errorf("Any().String() = %q", got)
	}
	if got := OfKind(KindString).String(); got != "str" {
		t.Errorf("OfKind(KindString).String() = %q", got)
	}
	if got := Exact(Float32).String(); got != "float32" {
		t.Errorf("Exact(Float32).String() = %q", got)
	}
}

func TestResolve(t *testing.T) {
	if spec, ok := Resolve(Int64); !ok || !spec.Equal(Exact(Int64)) {
		t.Errorf("Resolve(Int64) = %v, %v", spec, ok)
	}
	if spec, ok := Resolve(KindBytes); !ok || !spec.Equal(OfKind(KindBytes)) {
		t.Errorf("Resolve(KindBytes) = %v, %v", spec, ok)
	}
	if spec, ok := Resolve(time.Time{}); !ok || !spec.Equal(Exact(Datetime64)) {
		t.Errorf("Resolve(time.Time) = %v, %v", spec, ok)
	}
	if spec, ok := Resolve(time.Second); !ok || !spec.Equal(Exact(Timedelta64)) {
		t.Errorf("Resolve(time.Duration) = %v, %v", spec, ok)
	}
	if _, ok := Resolve(3); ok {
		t.Error("an int is a dimension token, not an element type")
	}
	if _, ok := Resolve(nil); ok {
		t.Error("nil is a dimension token, not an element type")
	}
}
