package shader

import (
	"testing"
	"unsafe"
)

func TestTerminate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "\x00"},
		{"uModel", "uModel\x00"},
		{"uModel\x00", "uModel\x00"},
	}
	for _, tt := range tests {
		if got := terminate(tt.in); got != tt.want {
			t.Errorf("terminate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestInfoLog(t *testing.T) {
	got := infoLog(6, func(buf *uint8) {
		copy(unsafe.Slice(buf, 6), "oops\n\x00")
	})
	if got != "oops" {
		t.Errorf("infoLog = %q, want %q", got, "oops")
	}
	if got := infoLog(0, nil); got != "unknown error" {
		t.Errorf("empty infoLog = %q", got)
	}
}
