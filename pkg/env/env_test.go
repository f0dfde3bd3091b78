package env

import "testing"

func TestGetFallsBackWhenUnset(t *testing.T) {
	t.Setenv("SKT_TEST_VALUE", "")
	if got := Get("SKT_TEST_VALUE", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
	t.Setenv("SKT_TEST_VALUE", " console ")
	if got := Get("SKT_TEST_VALUE", "json"); got != "console" {
		t.Fatalf("expected trimmed value, got %q", got)
	}
}

func TestBool(t *testing.T) {
	t.Setenv("SKT_TEST_FLAG", "true")
	if !Bool("SKT_TEST_FLAG", false) {
		t.Fatal("expected true")
	}
	t.Setenv("SKT_TEST_FLAG", "nope")
	if Bool("SKT_TEST_FLAG", false) {
		t.Fatal("malformed value should use fallback")
	}
}
