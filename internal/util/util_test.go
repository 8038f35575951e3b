package util

import (
	"testing"
)

func TestSHA256Hex(t *testing.T) {
	t.Parallel()

	got := SHA256Hex("abc")
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got != want {
		t.Fatalf("SHA256Hex(abc) = %s, want %s", got, want)
	}
}

func TestRandomToken(t *testing.T) {
	t.Parallel()

	first, err := RandomToken(32)
	if err != nil {
		t.Fatalf("RandomToken returned error: %v", err)
	}
	second, err := RandomToken(32)
	if err != nil {
		t.Fatalf("RandomToken returned error: %v", err)
	}

	if len(first) != 43 {
		t.Fatalf("len(RandomToken(32)) = %d, want 43", len(first))
	}
	if first == second {
		t.Fatal("RandomToken returned the same value twice")
	}

	if _, err := RandomToken(0); err == nil {
		t.Fatal("RandomToken(0) should fail")
	}
}

func TestBearerToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		want   string
		ok     bool
	}{
		{name: "standard", header: "Bearer abc.def", want: "abc.def", ok: true},
		{name: "lower-case scheme", header: "bearer abc", want: "abc", ok: true},
		{name: "surrounding spaces", header: "  Bearer   abc  ", want: "abc", ok: true},
		{name: "missing token", header: "Bearer ", ok: false},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", ok: false},
		{name: "empty", header: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := BearerToken(tt.header)
			if ok != tt.ok || got != tt.want {
				t.Fatalf("BearerToken(%q) = (%q, %v), want (%q, %v)", tt.header, got, ok, tt.want, tt.ok)
			}
		})
	}
}
