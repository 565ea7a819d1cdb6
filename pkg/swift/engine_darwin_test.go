//go:build darwin && cgo

package swift

import "testing"

func TestDarwinEngineDemangle(t *testing.T) {
	darwin := newDarwinEngine()

	testCases := []struct {
		symbol string
		want   string
	}{
		{"$s4main3fooyyF", "main.foo() -> ()"},
		{"_$s4main3fooyyF", "main.foo() -> ()"},
		{"$s4main3BarV3bazSivg", "main.Bar.baz.getter : Swift.Int"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.symbol, func(t *testing.T) {
			got, err := darwin.Demangle(tc.symbol)
			if err != nil {
				t.Skipf("libswiftDemangle unavailable: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDarwinEngineRejectsPlainText(t *testing.T) {
	if _, err := newDarwinEngine().Demangle(""); err == nil {
		t.Fatal("expected error for empty input")
	}
}
