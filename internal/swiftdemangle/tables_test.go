package swiftdemangle

import "testing"

func TestValueWitnessKindName(t *testing.T) {
	tests := []struct {
		kind ValueWitnessKind
		want string
		ok   bool
	}{
		{AllocateBuffer, "allocateBuffer", true},
		{Destroy, "destroy", true},
		{InitializeWithCopy, "initializeWithCopy", true},
		{StoreEnumTagSinglePayload, "storeEnumTagSinglePayload", true},
		{StoreEnumTagSinglePayload + 1, "", false},
	}
	for _, tt := range tests {
		got, ok := tt.kind.Name()
		if got != tt.want || ok != tt.ok {
			t.Errorf("ValueWitnessKind(%d).Name() = (%q, %v), want (%q, %v)", tt.kind, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDirectnessName(t *testing.T) {
	if got, _ := Indirect.Name(); got != "indirect" {
		t.Fatalf("got %q, want %q", got, "indirect")
	}
	if _, ok := Directness(2).Name(); ok {
		t.Fatal("Directness(2) should not have a name")
	}
}

func TestLayoutConstraintName(t *testing.T) {
	for code, want := range map[string]string{
		"U": "_UnknownLayout",
		"R": "_RefCountedObject",
		"N": "_NativeRefCountedObject",
		"C": "AnyObject",
		"D": "_NativeClass",
		"T": "_Trivial",
		"E": "_Trivial",
		"e": "_Trivial",
		"M": "_TrivialAtMost",
		"m": "_TrivialAtMost",
	} {
		if got, ok := layoutConstraintName(code); !ok || got != want {
			t.Errorf("layoutConstraintName(%q) = (%q, %v), want %q", code, got, ok, want)
		}
	}
	for _, code := range []string{"", "X", "TT"} {
		if _, ok := layoutConstraintName(code); ok {
			t.Errorf("layoutConstraintName(%q) should fail", code)
		}
	}
}

func TestSpecializationParamKind(t *testing.T) {
	tests := []struct {
		kind SpecializationParamKind
		want string
		ok   bool
	}{
		{ConstantPropFunction, "Constant Propagated Function", true},
		{ClosureProp, "Closure Propagated", true},
		{BoxToStack, "Stack Promoted from Box", true},
		{Dead, "Dead", true},
		{SROA, "Exploded", true},
		{Dead | OwnedToGuaranteed | SROA, "Dead and Owned To Guaranteed and Exploded", true},
		{ExistentialToGeneric | Dead, "Existential To Protocol Constrained Generic and Dead", true},
		{Dead | ClosureProp, "Dead", true},
		{8, "", false},
	}
	for _, tt := range tests {
		got, ok := tt.kind.Description()
		if got != tt.want || ok != tt.ok {
			t.Errorf("SpecializationParamKind(%d).Description() = (%q, %v), want (%q, %v)", tt.kind, got, ok, tt.want, tt.ok)
		}
	}
	if got := (Dead | ClosureProp).Flags(); got != Dead {
		t.Fatalf("Flags() = %d, want %d", got, Dead)
	}
}
