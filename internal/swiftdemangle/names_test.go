package swiftdemangle

import "testing"

func TestGenericParameterName(t *testing.T) {
	tests := []struct {
		depth, index uint64
		want         string
	}{
		{0, 0, "A"},
		{0, 1, "B"},
		{0, 25, "Z"},
		{0, 26, "AB"},
		{0, 27, "BB"},
		{0, 52, "AC"},
		{1, 0, "A1"},
		{2, 3, "D2"},
		{12, 26, "AB12"},
	}
	for _, tt := range tests {
		if got := GenericParameterName(tt.depth, tt.index); got != tt.want {
			t.Errorf("GenericParameterName(%d, %d) = %q, want %q", tt.depth, tt.index, got, tt.want)
		}
	}
}

func TestCustomGenericParameterNames(t *testing.T) {
	opts := DefaultOptions()
	opts.GenericParameterName = func(depth, index uint64) string {
		return [...]string{"Key", "Value"}[index]
	}
	sig := NewNode(KindDependentGenericSignature, index(KindDependentGenericParamCount, 2))
	if got, want := NodeToString(sig, opts), "<Key, Value>"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
