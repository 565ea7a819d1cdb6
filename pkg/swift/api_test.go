package swift

import "testing"

func TestDemangleSymbolSkipsPlainText(t *testing.T) {
	for _, in := range []string{"", "hello", "42"} {
		if got := DemangleSymbol(in); got != "" {
			t.Fatalf("DemangleSymbol(%q) = %q, want empty", in, got)
		}
	}
}

func TestDemangleSymbolPureGo(t *testing.T) {
	if EngineMode() != engineModePureGo {
		t.Skip("darwin engine active")
	}
	if got := DemangleSymbol("$s4main3fooyyF"); got != "" {
		t.Fatalf("got %q, want empty without a demangler", got)
	}
}
