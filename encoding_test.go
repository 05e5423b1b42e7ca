package id3v2

import (
	"bytes"
	"testing"
)

var (
	utf8TestString  = "Ein etwas kürzerer Text mit wenigen Umlauten: äöüß äöüß"
	isoTestString   = []byte("Ein etwas k\xFCrzerer Text mit wenigen Umlauten: \xE4\xF6\xFC\xDF \xE4\xF6\xFC\xDF")
	utf16TestString = []byte{254, 255, 0, 69, 0, 105, 0, 110, 0, 32,
		0, 101, 0, 116, 0, 119, 0, 97, 0, 115, 0, 32, 0, 107, 0, 252, 0,
		114, 0, 122, 0, 101, 0, 114, 0, 101, 0, 114, 0, 32, 0, 84, 0, 101,
		0, 120, 0, 116, 0, 32, 0, 109, 0, 105, 0, 116, 0, 32, 0, 119, 0,
		101, 0, 110, 0, 105, 0, 103, 0, 101, 0, 110, 0, 32, 0, 85, 0, 109,
		0, 108, 0, 97, 0, 117, 0, 116, 0, 101, 0, 110, 0, 58, 0, 32, 0,
		228, 0, 246, 0, 252, 0, 223, 0, 32, 0, 228, 0, 246, 0, 252, 0,
		223}
)

func TestDecodeISO88591(t *testing.T) {
	res, err := EncodingISO88591.decodeText(isoTestString)
	if err != nil {
		t.Fatal(err)
	}
	if res != utf8TestString {
		t.Errorf("Expected: %s - Got: %s", utf8TestString, res)
	}
}

func TestEncodeISO88591(t *testing.T) {
	res, err := EncodingISO88591.encodeText(utf8TestString)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(res, isoTestString) {
		t.Errorf("Expected: % x - Got: % x", isoTestString, res)
	}
}

func TestEncodeISO88591Unrepresentable(t *testing.T) {
	if _, err := EncodingISO88591.encodeText("日本語"); err == nil {
		t.Fatal("expected an error for text outside ISO-8859-1")
	}
}

func TestDecodeUTF16(t *testing.T) {
	res, err := EncodingUTF16.decodeText(utf16TestString)
	if err != nil {
		t.Fatal(err)
	}
	if res != utf8TestString {
		t.Errorf("Expected: %s - Got: %s", utf8TestString, res)
	}
}

func TestDecodeUTF16LittleEndianBOM(t *testing.T) {
	in := []byte{255, 254, 74, 0, 117, 0, 115, 0, 116, 0, 32, 0, 97,
		0, 32, 0, 116, 0, 101, 0, 115, 0, 116, 0, 58, 0, 32, 0, 228, 0,
		252, 0, 246, 0, 32, 0, 229, 101, 44, 103, 158, 138}
	out := "Just a test: äüö 日本語"

	res, err := EncodingUTF16.decodeText(in)
	if err != nil {
		t.Fatal(err)
	}
	if res != out {
		t.Errorf("Expected: %s - Got: %s", out, res)
	}
}

func TestDecodeUTF16BE(t *testing.T) {
	in := []byte{0, 74, 0,
		117, 0, 115, 0, 116, 0, 32, 0, 97, 0, 32, 0, 116, 0, 101, 0, 115,
		0, 116, 0, 58, 0, 32, 0, 228, 0, 252, 0, 246, 0, 32, 101, 229,
		103, 44, 138, 158}
	out := "Just a test: äüö 日本語"

	res, err := EncodingUTF16BE.decodeText(in)
	if err != nil {
		t.Fatal(err)
	}
	if res != out {
		t.Errorf("Expected: %s - Got: %s", out, res)
	}
}

func TestDecodeUTF16OddLength(t *testing.T) {
	if _, err := EncodingUTF16.decodeText([]byte{254, 255, 0}); err == nil {
		t.Fatal("expected an error for odd-length UTF-16 text")
	}
}

func TestDecodeTextStripsTerminator(t *testing.T) {
	res, err := EncodingISO88591.decodeText([]byte("hello\x00"))
	if err != nil {
		t.Fatal(err)
	}
	if res != "hello" {
		t.Errorf("Expected: hello - Got: %s", res)
	}

	res, err = EncodingUTF16BE.decodeText([]byte{0, 'h', 0, 'i', 0, 0})
	if err != nil {
		t.Fatal(err)
	}
	if res != "hi" {
		t.Errorf("Expected: hi - Got: %s", res)
	}
}

func TestEncodingRoundtrip(t *testing.T) {
	texts := []string{"", "plain ascii", utf8TestString, "Just a test: äüö 日本語"}

	for _, e := range []Encoding{EncodingUTF16, EncodingUTF16BE, EncodingUTF8} {
		for _, text := range texts {
			raw, err := e.encodeText(text)
			if err != nil {
				t.Fatalf("%s: encoding %q: %s", e, text, err)
			}
			res, err := e.decodeText(raw)
			if err != nil {
				t.Fatalf("%s: decoding %q: %s", e, text, err)
			}
			if res != text {
				t.Errorf("%s: %q roundtripped to %q", e, text, res)
			}
		}
	}
}

func TestChooseEncoding(t *testing.T) {
	tests := []struct {
		version Version
		strs    []string
		out     Encoding
	}{
		{V24, []string{"plain"}, EncodingISO88591},
		{V24, []string{utf8TestString}, EncodingISO88591},
		{V24, []string{"日本語"}, EncodingUTF8},
		{V24, []string{"plain", "日本語"}, EncodingUTF8},
		{V23, []string{"日本語"}, EncodingUTF16},
		{V22, []string{"plain"}, EncodingISO88591},
	}

	for _, test := range tests {
		if got := chooseEncoding(test.version, test.strs...); got != test.out {
			t.Errorf("chooseEncoding(%s, %q) = %s, want %s", test.version, test.strs, got, test.out)
		}
	}
}

func TestEncodingValidFor(t *testing.T) {
	if EncodingUTF8.validFor(V23) {
		t.Error("UTF-8 must not be valid before v2.4")
	}
	if !EncodingUTF8.validFor(V24) {
		t.Error("UTF-8 must be valid in v2.4")
	}
	if !EncodingUTF16.validFor(V22) {
		t.Error("UTF-16 must be valid in v2.2")
	}
}

func TestSplitNull(t *testing.T) {
	parts := splitNull([]byte("desc\x00text"), EncodingISO88591, 2)
	if len(parts) != 2 || string(parts[0]) != "desc" || string(parts[1]) != "text" {
		t.Fatalf("unexpected split: %q", parts)
	}

	// The wide terminator must sit on a code-unit boundary: the 0x01 0x00
	// 0x00 0x02 sequence contains a zero pair straddling two code units.
	wide := []byte{0x01, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00, 0x41}
	parts = splitNull(wide, EncodingUTF16BE, 2)
	if len(parts) != 2 {
		t.Fatalf("unexpected split: %q", parts)
	}
	if !bytes.Equal(parts[0], []byte{0x01, 0x00, 0x00, 0x02}) {
		t.Errorf("first part: % x", parts[0])
	}
	if !bytes.Equal(parts[1], []byte{0x00, 0x41}) {
		t.Errorf("second part: % x", parts[1])
	}
}
