package config

import "testing"

func TestGetEnvFallback(t *testing.T) {
	t.Setenv("SNAKE_TEST_SET", "value")

	if got := GetEnv("SNAKE_TEST_SET", "fallback"); got != "value" {
		t.Errorf("GetEnv set = %q, want %q", got, "value")
	}
	if got := GetEnv("SNAKE_TEST_UNSET_KEY", "fallback"); got != "fallback" {
		t.Errorf("GetEnv unset = %q, want %q", got, "fallback")
	}
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("SNAKE_TEST_TRUE", "true")
	t.Setenv("SNAKE_TEST_ONE", "1")
	t.Setenv("SNAKE_TEST_GARBAGE", "maybe")

	if !GetEnvBool("SNAKE_TEST_TRUE", false) {
		t.Error("expected true for \"true\"")
	}
	if !GetEnvBool("SNAKE_TEST_ONE", false) {
		t.Error("expected true for \"1\"")
	}
	if !GetEnvBool("SNAKE_TEST_GARBAGE", true) {
		t.Error("unparsable value should return fallback")
	}
	if GetEnvBool("SNAKE_TEST_UNSET_BOOL", false) {
		t.Error("unset value should return fallback")
	}
}
