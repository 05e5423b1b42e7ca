package id3v2

// GenericKey is a format-independent metadata identifier. Each version's
// frame dictionary maps it to a frame identifier plus, for frames that
// bundle several logical values, a sub-field identifier.
type GenericKey int

const (
	Title GenericKey = iota
	Artist
	Album
	AlbumArtist
	Composer
	Conductor
	Genre
	Year
	Track
	Disc
	Comment
	Lyrics
	BPM
	ISRC
	Publisher
	EncodedBy
	Language
	Compilation
	Barcode
	CatalogNo
	ArtistURL
	OriginalArtist
	Mood
)

var genericKeyNames = []string{
	"title",
	"artist",
	"album",
	"album_artist",
	"composer",
	"conductor",
	"genre",
	"year",
	"track",
	"disc",
	"comment",
	"lyrics",
	"bpm",
	"isrc",
	"publisher",
	"encoded_by",
	"language",
	"compilation",
	"barcode",
	"catalog_no",
	"artist_url",
	"original_artist",
	"mood",
}

func (k GenericKey) String() string {
	if int(k) < 0 || int(k) >= len(genericKeyNames) {
		return "unknown"
	}

	return genericKeyNames[k]
}

// GenericKeys lists every key the generic field API understands. Whether
// a particular tag supports a key depends on its version's dictionary.
func GenericKeys() []GenericKey {
	keys := make([]GenericKey, len(genericKeyNames))
	for i := range keys {
		keys[i] = GenericKey(i)
	}

	return keys
}

// frameAndSubID addresses a frame identifier and, for user-defined text
// frames, the description that selects the logical value inside it.
type frameAndSubID struct {
	id  string
	sub string
}

// frameDict is one version's frame vocabulary: the valid identifiers with
// their human-readable names, the generic key table and its inverse, and
// the preferred write order.
type frameDict struct {
	version  Version
	names    map[string]string
	generic  map[GenericKey]frameAndSubID
	byFrame  map[string]GenericKey
	orderIdx map[string]int
}

func newFrameDict(v Version, names map[string]string, generic map[GenericKey]frameAndSubID, order []string) *frameDict {
	d := &frameDict{
		version:  v,
		names:    names,
		generic:  generic,
		byFrame:  make(map[string]GenericKey, len(generic)),
		orderIdx: make(map[string]int, len(order)),
	}

	for key, fs := range generic {
		if fs.sub == "" {
			d.byFrame[fs.id] = key
		}
	}
	for i, id := range order {
		d.orderIdx[id] = i
	}

	return d
}

// FrameName returns the human-readable name of a frame identifier in the
// given version, or the identifier itself when it is not in the version's
// dictionary.
func FrameName(v Version, id string) string {
	if v.valid() {
		if name, ok := v.desc().dict.names[id]; ok {
			return name
		}
	}

	return id
}

func (d *frameDict) known(id string) bool {
	_, ok := d.names[id]
	return ok
}

func (d *frameDict) lookup(key GenericKey) (frameAndSubID, bool) {
	fs, ok := d.generic[key]
	return fs, ok
}

// less is the preferred-frame-order comparator used when writing:
// identifying frames come first, identifiers without a preferred position
// come after all that have one, in lexical order for determinism.
func (d *frameDict) less(a, b string) bool {
	ai, aok := d.orderIdx[a]
	bi, bok := d.orderIdx[b]

	switch {
	case aok && bok:
		return ai < bi
	case aok:
		return true
	case bok:
		return false
	default:
		return a < b
	}
}

// bodyKindOf resolves an identifier to its payload shape. Unknown
// identifiers fall back to the opaque binary kind.
func (d *frameDict) bodyKindOf(id string) BodyKind {
	if d.version == V22 {
		switch id {
		case "TXX":
			return KindUserText
		case "WXX":
			return KindUserURL
		case "COM":
			return KindComment
		case "ULT":
			return KindLyrics
		case "PIC":
			return KindPicture
		case "CNT":
			return KindCounter
		case "POP":
			return KindPopularimeter
		case "UFI":
			return KindUniqueFileID
		}
	} else {
		switch id {
		case "TXXX":
			return KindUserText
		case "WXXX":
			return KindUserURL
		case "COMM":
			return KindComment
		case "USLT":
			return KindLyrics
		case "APIC":
			return KindPicture
		case "PCNT":
			return KindCounter
		case "POPM":
			return KindPopularimeter
		case "UFID":
			return KindUniqueFileID
		}
	}

	switch {
	case id[0] == 'T':
		return KindText
	case id[0] == 'W':
		return KindURL
	default:
		return KindBinary
	}
}

// repeatable reports whether several frames may share this identifier.
// A later read of a non-repeatable identifier overwrites the earlier one.
func (d *frameDict) repeatable(id string) bool {
	switch d.bodyKindOf(id) {
	case KindUserText, KindUserURL, KindComment, KindLyrics, KindPicture,
		KindPopularimeter, KindUniqueFileID:
		return true
	}

	switch id {
	case "PRIV", "GEOB", "ENCR", "GRID", "CRM":
		return true
	}

	return false
}
