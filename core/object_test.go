package core

import "testing"

// TestDictAccessors tests the typed dictionary accessors
func TestDictAccessors(t *testing.T) {
	dict := Dict{
		"Title": String("Chapter 1"),
		"Count": Int(3),
		"Fit":   Name("FitH"),
		"Dest":  Array{IndirectRef{Number: 4}, Name("Fit")},
		"A":     Dict{"S": Name("GoTo")},
		"Page":  IndirectRef{Number: 7, Generation: 0},
	}

	if s, ok := dict.GetString("Title"); !ok || s != "Chapter 1" {
		t.Errorf("GetString: got %q, %v", s, ok)
	}
	if i, ok := dict.GetInt("Count"); !ok || i != 3 {
		t.Errorf("GetInt: got %d, %v", i, ok)
	}
	if n, ok := dict.GetName("Fit"); !ok || n != "FitH" {
		t.Errorf("GetName: got %q, %v", n, ok)
	}
	if arr, ok := dict.GetArray("Dest"); !ok || arr.Len() != 2 {
		t.Errorf("GetArray: got %v, %v", arr, ok)
	}
	if sub, ok := dict.GetDict("A"); !ok || !sub.Has("S") {
		t.Errorf("GetDict: got %v, %v", sub, ok)
	}
	if ref, ok := dict.GetIndirectRef("Page"); !ok || ref.Number != 7 {
		t.Errorf("GetIndirectRef: got %v, %v", ref, ok)
	}
	if _, ok := dict.GetString("Missing"); ok {
		t.Error("GetString on missing key should report !ok")
	}
}

// TestIndirectRefIdentity tests that references compare as identity tokens
func TestIndirectRefIdentity(t *testing.T) {
	a := IndirectRef{Number: 12, Generation: 0}
	b := IndirectRef{Number: 12, Generation: 0}
	c := IndirectRef{Number: 12, Generation: 1}

	if a != b {
		t.Error("references to the same object should compare equal")
	}
	if a == c {
		t.Error("references with different generations should not compare equal")
	}
	if a.String() != "12 0 R" {
		t.Errorf("String: got %q", a.String())
	}
}

// TestArrayClone tests that Clone produces an independent copy
func TestArrayClone(t *testing.T) {
	orig := Array{Int(1), Name("Fit")}
	cloned := orig.Clone()
	cloned[0] = Int(99)

	if orig[0] != Int(1) {
		t.Error("mutating a clone should not affect the original")
	}
	if cloned.Len() != 2 {
		t.Errorf("clone length: got %d", cloned.Len())
	}
}

// TestObjectTypeString tests type name formatting
func TestObjectTypeString(t *testing.T) {
	tests := []struct {
		obj  Object
		want ObjectType
	}{
		{Null{}, ObjNull},
		{Bool(true), ObjBool},
		{Int(1), ObjInt},
		{Real(1.5), ObjReal},
		{String("x"), ObjString},
		{Name("x"), ObjName},
		{Array{}, ObjArray},
		{Dict{}, ObjDict},
		{IndirectRef{}, ObjIndirect},
	}
	for _, tt := range tests {
		if tt.obj.Type() != tt.want {
			t.Errorf("%s: got type %v, want %v", tt.obj, tt.obj.Type(), tt.want)
		}
	}
}
