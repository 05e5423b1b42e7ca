package id3v2

// framesV24 is the ID3v2.4 frame vocabulary.
var framesV24 = newFrameDict(V24, namesV24, genericV24, orderV24)

var namesV24 = map[string]string{
	"AENC": "Audio encryption",
	"APIC": "Attached picture",
	"ASPI": "Audio seek point index",
	"COMM": "Comments",
	"COMR": "Commercial frame",

	"ENCR": "Encryption method registration",
	"EQU2": "Equalisation (2)",
	"ETCO": "Event timing codes",

	"GEOB": "General encapsulated object",
	"GRID": "Group identification registration",

	"LINK": "Linked information",

	"MCDI": "Music CD identifier",
	"MLLT": "MPEG location lookup table",

	"OWNE": "Ownership frame",

	"PRIV": "Private frame",
	"PCNT": "Play counter",
	"POPM": "Popularimeter",
	"POSS": "Position synchronisation frame",

	"RBUF": "Recommended buffer size",
	"RVA2": "Relative volume adjustment (2)",
	"RVRB": "Reverb",

	"SEEK": "Seek frame",
	"SIGN": "Signature frame",
	"SYLT": "Synchronised lyric/text",
	"SYTC": "Synchronised tempo codes",

	"TALB": "Album/Movie/Show title",
	"TBPM": "BPM (beats per minute)",
	"TCMP": "Part of a compilation", // iTunes extension
	"TCOM": "Composer",
	"TCON": "Content type",
	"TCOP": "Copyright message",
	"TDEN": "Encoding time",
	"TDLY": "Playlist delay",
	"TDOR": "Original release time",
	"TDRC": "Recording time",
	"TDRL": "Release time",
	"TDTG": "Tagging time",
	"TENC": "Encoded by",
	"TEXT": "Lyricist/Text writer",
	"TFLT": "File type",
	"TIPL": "Involved people list",
	"TIT1": "Content group description",
	"TIT2": "Title/songname/content description",
	"TIT3": "Subtitle/Description refinement",
	"TKEY": "Initial key",
	"TLAN": "Language(s)",
	"TLEN": "Length",
	"TMCL": "Musician credits list",
	"TMED": "Media type",
	"TMOO": "Mood",
	"TOAL": "Original album/movie/show title",
	"TOFN": "Original filename",
	"TOLY": "Original lyricist(s)/text writer(s)",
	"TOPE": "Original artist(s)/performer(s)",
	"TOWN": "File owner/licensee",
	"TPE1": "Lead performer(s)/Soloist(s)",
	"TPE2": "Band/orchestra/accompaniment",
	"TPE3": "Conductor/performer refinement",
	"TPE4": "Interpreted, remixed, or otherwise modified by",
	"TPOS": "Part of a set",
	"TPRO": "Produced notice",
	"TPUB": "Publisher",
	"TRCK": "Track number/Position in set",
	"TRSN": "Internet radio station name",
	"TRSO": "Internet radio station owner",
	"TSOA": "Album sort order",
	"TSOP": "Performer sort order",
	"TSOT": "Title sort order",
	"TSO2": "Album Artist sort order", // iTunes extension
	"TSOC": "Composer sort order",     // iTunes extension
	"TSRC": "ISRC (international standard recording code)",
	"TSSE": "Software/Hardware and settings used for encoding",
	"TSST": "Set subtitle",
	"TXXX": "User defined text information frame",

	"UFID": "Unique file identifier",
	"USER": "Terms of use",
	"USLT": "Unsynchronised lyric/text transcription",

	"WCOM": "Commercial information",
	"WCOP": "Copyright/Legal information",
	"WOAF": "Official audio file webpage",
	"WOAR": "Official artist/performer webpage",
	"WOAS": "Official audio source webpage",
	"WORS": "Official Internet radio station homepage",
	"WPAY": "Payment",
	"WPUB": "Publishers official webpage",
	"WXXX": "User defined URL link frame",
}

var genericV24 = map[GenericKey]frameAndSubID{
	Title:          {id: "TIT2"},
	Artist:         {id: "TPE1"},
	Album:          {id: "TALB"},
	AlbumArtist:    {id: "TPE2"},
	Composer:       {id: "TCOM"},
	Conductor:      {id: "TPE3"},
	Genre:          {id: "TCON"},
	Year:           {id: "TDRC"},
	Track:          {id: "TRCK"},
	Disc:           {id: "TPOS"},
	Comment:        {id: "COMM"},
	Lyrics:         {id: "USLT"},
	BPM:            {id: "TBPM"},
	ISRC:           {id: "TSRC"},
	Publisher:      {id: "TPUB"},
	EncodedBy:      {id: "TENC"},
	Language:       {id: "TLAN"},
	Compilation:    {id: "TCMP"},
	Mood:           {id: "TMOO"},
	Barcode:        {id: "TXXX", sub: "BARCODE"},
	CatalogNo:      {id: "TXXX", sub: "CATALOGNUMBER"},
	ArtistURL:      {id: "WOAR"},
	OriginalArtist: {id: "TOPE"},
}

// orderV24 is the preferred write order: identifying frames first, bulky
// and rarely scanned frames last.
var orderV24 = []string{
	"UFID",
	"TIT2",
	"TPE1",
	"TALB",
	"TPE2",
	"TRCK",
	"TPOS",
	"TDRC",
	"TCON",
	"TCOM",
	"TPE3",
	"TPE4",
	"TOPE",
	"TOAL",
	"TEXT",
	"TOLY",
	"TIT1",
	"TIT3",
	"TDOR",
	"TDRL",
	"TDEN",
	"TDTG",
	"TBPM",
	"TKEY",
	"TLAN",
	"TLEN",
	"TDLY",
	"TSRC",
	"TPUB",
	"TOWN",
	"TCOP",
	"TPRO",
	"TCMP",
	"TMOO",
	"TMED",
	"TFLT",
	"TSSE",
	"TSST",
	"TOFN",
	"TRSN",
	"TRSO",
	"TSOA",
	"TSOP",
	"TSOT",
	"TSO2",
	"TSOC",
	"TIPL",
	"TMCL",
	"TXXX",
	"WOAF",
	"WOAR",
	"WOAS",
	"WORS",
	"WCOM",
	"WCOP",
	"WPAY",
	"WPUB",
	"WXXX",
	"COMM",
	"USLT",
	"SYLT",
	"USER",
	"OWNE",
	"COMR",
	"POPM",
	"PCNT",
	"MCDI",
	"ETCO",
	"MLLT",
	"SYTC",
	"POSS",
	"RVA2",
	"EQU2",
	"RVRB",
	"RBUF",
	"LINK",
	"SEEK",
	"ASPI",
	"SIGN",
	"ENCR",
	"GRID",
	"PRIV",
	"GEOB",
	"AENC",
	"APIC",
}
