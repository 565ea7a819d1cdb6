package swift

import (
	"errors"
	"testing"
)

func TestLooksLikeSwiftSymbol(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"_$s16DemangleFixtures7CounterC5valueSivg", true},
		{"$sSaySiG", true},
		{"$e4main3fooyyF", true},
		{"So8NSStringC", true},
		{"_$sSo8NSStringC", true},
		{"_T012LockdownModeServerC", true},
		{"lockdownmoded.LockdownModeServer", false},
		{"", false},
		{"??", false},
		{"NSObject", false},
	}
	for _, tc := range cases {
		if got := looksLikeSwiftSymbol(tc.in); got != tc.want {
			t.Fatalf("looksLikeSwiftSymbol(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestPureGoEngineHasNoDemangler(t *testing.T) {
	eng := pureGoEngine{}
	if _, err := eng.Demangle("$s4main3fooyyF"); !errors.Is(err, ErrNoDemangler) {
		t.Fatalf("got %v, want ErrNoDemangler", err)
	}
	if _, err := eng.Demangle(""); err == nil || errors.Is(err, ErrNoDemangler) {
		t.Fatalf("got %v, want empty input error", err)
	}
}
