package input

import (
	"bufio"
	"strings"
	"testing"
	"time"
)

func TestApplyArrowKeys(t *testing.T) {
	s := &Stream{}
	now := time.Now()

	in := s.apply([]byte("\x1b[A\x1b[C"), now)
	if !in.Up || !in.Right {
		t.Errorf("expected up and right held, got %+v", in)
	}
	if in.Left || in.Down {
		t.Errorf("unexpected keys held: %+v", in)
	}
}

func TestApplyLetterKeys(t *testing.T) {
	tests := []struct {
		key  string
		want func(Input) bool
	}{
		{"a", func(in Input) bool { return in.Left }},
		{"D", func(in Input) bool { return in.Right }},
		{"w", func(in Input) bool { return in.Up }},
		{"s", func(in Input) bool { return in.Down }},
		{"j", func(in Input) bool { return in.Left }},
		{"l", func(in Input) bool { return in.Right }},
		{" ", func(in Input) bool { return in.Space }},
		{"q", func(in Input) bool { return in.Quit }},
		{"\x03", func(in Input) bool { return in.Quit }},
	}
	for _, tt := range tests {
		s := &Stream{}
		in := s.apply([]byte(tt.key), time.Now())
		if !tt.want(in) {
			t.Errorf("key %q not recognized: %+v", tt.key, in)
		}
	}
}

func TestUnknownKeysIgnored(t *testing.T) {
	s := &Stream{}
	in := s.apply([]byte("xyz\x1b[Z"), time.Now())
	if in.Left || in.Right || in.Up || in.Down || in.Space || in.Quit {
		t.Errorf("unknown keys should not set state: %+v", in)
	}
	if len(in.Pressed) != 7 {
		t.Errorf("Pressed should carry raw bytes, got %d", len(in.Pressed))
	}
}

func TestKeyHoldExpires(t *testing.T) {
	s := &Stream{}
	now := time.Now()
	s.apply([]byte("d"), now)

	if in := s.apply(nil, now.Add(keyHoldDuration/2)); !in.Right {
		t.Error("key should still be held within the hold duration")
	}
	if in := s.apply(nil, now.Add(keyHoldDuration)); in.Right {
		t.Error("key should be released after the hold duration")
	}
}

func TestResetKeyInput(t *testing.T) {
	s := &Stream{}
	now := time.Now()
	s.apply([]byte(" "), now)
	ResetKeyInput(s)

	if in := s.apply(nil, now); in.Space {
		t.Error("space should be released after ResetKeyInput")
	}
	ResetKeyInput(nil)
}

func TestReadInputReportsQuitOnEOF(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("")))

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if ReadInput(s).Quit {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("closed stream should report Quit")
}
