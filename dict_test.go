package id3v2

import "testing"

func TestDictGenericMappingsAreKnown(t *testing.T) {
	for v, desc := range versionDescs {
		for key, fs := range desc.dict.generic {
			if !desc.dict.known(fs.id) {
				t.Errorf("%s: key %s maps to unknown frame %s", v, key, fs.id)
			}
			if len(fs.id) != desc.idLen {
				t.Errorf("%s: key %s maps to %s, want %d characters", v, key, fs.id, desc.idLen)
			}
		}
	}
}

func TestDictOrderEntriesAreKnown(t *testing.T) {
	for _, tc := range []struct {
		dict  *frameDict
		order []string
	}{
		{framesV22, orderV22},
		{framesV23, orderV23},
		{framesV24, orderV24},
	} {
		for _, id := range tc.order {
			if !tc.dict.known(id) {
				t.Errorf("%s: ordered frame %s is not in the dictionary", tc.dict.version, id)
			}
		}
	}
}

func TestDictLess(t *testing.T) {
	d := framesV24

	if !d.less("TIT2", "APIC") {
		t.Error("the title must sort before the picture")
	}
	if !d.less("APIC", "XAAA") {
		t.Error("known frames must sort before unknown ones")
	}
	if !d.less("XAAA", "XZZZ") {
		t.Error("unknown frames must sort lexically")
	}
	if d.less("TIT2", "TIT2") {
		t.Error("less must be irreflexive")
	}
}

func TestDictBodyKinds(t *testing.T) {
	tests := []struct {
		dict *frameDict
		id   string
		kind BodyKind
	}{
		{framesV24, "TIT2", KindText},
		{framesV24, "TXXX", KindUserText},
		{framesV24, "WOAR", KindURL},
		{framesV24, "WXXX", KindUserURL},
		{framesV24, "COMM", KindComment},
		{framesV24, "USLT", KindLyrics},
		{framesV24, "APIC", KindPicture},
		{framesV24, "PCNT", KindCounter},
		{framesV24, "POPM", KindPopularimeter},
		{framesV24, "UFID", KindUniqueFileID},
		{framesV24, "PRIV", KindBinary},
		{framesV22, "TT2", KindText},
		{framesV22, "TXX", KindUserText},
		{framesV22, "COM", KindComment},
		{framesV22, "PIC", KindPicture},
		{framesV22, "CNT", KindCounter},
		{framesV22, "GEO", KindBinary},
	}

	for _, test := range tests {
		if got := test.dict.bodyKindOf(test.id); got != test.kind {
			t.Errorf("%s: bodyKindOf(%s) = %d, want %d", test.dict.version, test.id, got, test.kind)
		}
	}
}

func TestDictRepeatable(t *testing.T) {
	if framesV24.repeatable("TIT2") {
		t.Error("the title frame is not repeatable")
	}
	for _, id := range []string{"COMM", "TXXX", "APIC", "POPM", "UFID", "PRIV"} {
		if !framesV24.repeatable(id) {
			t.Errorf("%s must be repeatable", id)
		}
	}
}

func TestRenameTableMatchesDictionaries(t *testing.T) {
	for from, to := range renameV22 {
		if !framesV22.known(from) {
			t.Errorf("rename source %s is not a v2.2 frame", from)
		}
		if !framesV23.known(to) {
			t.Errorf("rename target %s is not a v2.3 frame", to)
		}
	}

	for to, from := range renameToV22 {
		if renameV22[from] != to {
			t.Errorf("inverse rename %s -> %s does not match the forward table", to, from)
		}
	}
}

func TestGenericKeyNames(t *testing.T) {
	if len(genericKeyNames) != int(Mood)+1 {
		t.Fatalf("genericKeyNames has %d entries for %d keys", len(genericKeyNames), int(Mood)+1)
	}
	if Title.String() != "title" {
		t.Errorf("Title.String() = %q", Title.String())
	}
	if GenericKey(-1).String() != "unknown" {
		t.Errorf("out of range key: %q", GenericKey(-1).String())
	}
	if got := len(GenericKeys()); got != len(genericKeyNames) {
		t.Errorf("GenericKeys() returned %d keys", got)
	}
}
