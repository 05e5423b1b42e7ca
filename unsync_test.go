package id3v2

import (
	"bytes"
	"testing"
)

func TestUnsynchronize(t *testing.T) {
	tests := []struct {
		in  []byte
		out []byte
	}{
		{nil, []byte{}},
		{[]byte{0x12, 0x34}, []byte{0x12, 0x34}},
		{[]byte{0xff}, []byte{0xff, 0x00}},
		{[]byte{0xff, 0xe0}, []byte{0xff, 0x00, 0xe0}},
		{[]byte{0xff, 0x80}, []byte{0xff, 0x00, 0x80}},
		{[]byte{0xff, 0x00}, []byte{0xff, 0x00, 0x00}},
		{[]byte{0xff, 0x7f}, []byte{0xff, 0x7f}},
		{[]byte{0xff, 0xff, 0xff}, []byte{0xff, 0x00, 0xff, 0x00, 0xff, 0x00}},
		{[]byte{0x12, 0xff, 0xe5, 0x34}, []byte{0x12, 0xff, 0x00, 0xe5, 0x34}},
	}

	for _, test := range tests {
		if got := unsynchronize(test.in); !bytes.Equal(got, test.out) {
			t.Errorf("unsynchronize(% x) = % x, want % x", test.in, got, test.out)
		}
	}
}

func TestSynchronizeReversesUnsynchronize(t *testing.T) {
	inputs := [][]byte{
		nil,
		{0x00},
		{0xff},
		{0xff, 0x00},
		{0xff, 0x00, 0x00},
		{0xff, 0xe0, 0xff, 0xe0},
		{0xff, 0xff, 0xff, 0xff},
		{0x00, 0xff, 0x00, 0xff},
		bytes.Repeat([]byte{0xff}, 64),
		{0x49, 0x44, 0x33, 0xff, 0xfb, 0x90, 0x00},
	}

	for _, in := range inputs {
		got := synchronize(unsynchronize(in))
		if !bytes.Equal(got, append([]byte{}, in...)) {
			t.Errorf("% x did not survive the roundtrip: got % x", in, got)
		}
	}
}

func TestRequiresUnsynchronization(t *testing.T) {
	tests := []struct {
		in  []byte
		out bool
	}{
		{nil, false},
		{[]byte{0x12, 0x34}, false},
		{[]byte{0xff, 0x00}, false},
		{[]byte{0xff, 0x7f}, false},
		{[]byte{0xff, 0xdf}, false},
		{[]byte{0xff, 0xe0}, true},
		{[]byte{0xff, 0xfb}, true},
		{[]byte{0x12, 0xff}, true},
	}

	for _, test := range tests {
		if got := requiresUnsynchronization(test.in); got != test.out {
			t.Errorf("requiresUnsynchronization(% x) = %v, want %v", test.in, got, test.out)
		}
	}
}
