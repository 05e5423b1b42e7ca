package id3v2

// framesV23 is the ID3v2.3 frame vocabulary. It differs from v2.4 in the
// date family (TYER/TDAT/TIME instead of TDRC), the people list (IPLS
// instead of TIPL/TMCL), the deprecated TRDA/TSIZ/TORY frames and the old
// volume/equalisation frames.
var framesV23 = newFrameDict(V23, namesV23, genericV23, orderV23)

var namesV23 = map[string]string{
	"AENC": "Audio encryption",
	"APIC": "Attached picture",
	"COMM": "Comments",
	"COMR": "Commercial frame",

	"ENCR": "Encryption method registration",
	"EQUA": "Equalization",
	"ETCO": "Event timing codes",

	"GEOB": "General encapsulated object",
	"GRID": "Group identification registration",

	"IPLS": "Involved people list",

	"LINK": "Linked information",

	"MCDI": "Music CD identifier",
	"MLLT": "MPEG location lookup table",

	"OWNE": "Ownership frame",

	"PRIV": "Private frame",
	"PCNT": "Play counter",
	"POPM": "Popularimeter",
	"POSS": "Position synchronisation frame",

	"RBUF": "Recommended buffer size",
	"RVAD": "Relative volume adjustment",
	"RVRB": "Reverb",

	"SYLT": "Synchronised lyric/text",
	"SYTC": "Synchronised tempo codes",

	"TALB": "Album/Movie/Show title",
	"TBPM": "BPM (beats per minute)",
	"TCMP": "Part of a compilation", // iTunes extension
	"TCOM": "Composer",
	"TCON": "Content type",
	"TCOP": "Copyright message",
	"TDAT": "Date",
	"TDLY": "Playlist delay",
	"TENC": "Encoded by",
	"TEXT": "Lyricist/Text writer",
	"TFLT": "File type",
	"TIME": "Time",
	"TIT1": "Content group description",
	"TIT2": "Title/songname/content description",
	"TIT3": "Subtitle/Description refinement",
	"TKEY": "Initial key",
	"TLAN": "Language(s)",
	"TLEN": "Length",
	"TMED": "Media type",
	"TOAL": "Original album/movie/show title",
	"TOFN": "Original filename",
	"TOLY": "Original lyricist(s)/text writer(s)",
	"TOPE": "Original artist(s)/performer(s)",
	"TORY": "Original release year",
	"TOWN": "File owner/licensee",
	"TPE1": "Lead performer(s)/Soloist(s)",
	"TPE2": "Band/orchestra/accompaniment",
	"TPE3": "Conductor/performer refinement",
	"TPE4": "Interpreted, remixed, or otherwise modified by",
	"TPOS": "Part of a set",
	"TPUB": "Publisher",
	"TRCK": "Track number/Position in set",
	"TRDA": "Recording dates",
	"TRSN": "Internet radio station name",
	"TRSO": "Internet radio station owner",
	"TSIZ": "Size",
	"TSRC": "ISRC (international standard recording code)",
	"TSSE": "Software/Hardware and settings used for encoding",
	"TYER": "Year",
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

var genericV23 = map[GenericKey]frameAndSubID{
	Title:          {id: "TIT2"},
	Artist:         {id: "TPE1"},
	Album:          {id: "TALB"},
	AlbumArtist:    {id: "TPE2"},
	Composer:       {id: "TCOM"},
	Conductor:      {id: "TPE3"},
	Genre:          {id: "TCON"},
	Year:           {id: "TYER"},
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
	Barcode:        {id: "TXXX", sub: "BARCODE"},
	CatalogNo:      {id: "TXXX", sub: "CATALOGNUMBER"},
	ArtistURL:      {id: "WOAR"},
	OriginalArtist: {id: "TOPE"},
}

var orderV23 = []string{
	"UFID",
	"TIT2",
	"TPE1",
	"TALB",
	"TPE2",
	"TRCK",
	"TPOS",
	"TYER",
	"TDAT",
	"TIME",
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
	"TORY",
	"TRDA",
	"TBPM",
	"TKEY",
	"TLAN",
	"TLEN",
	"TDLY",
	"TSRC",
	"TPUB",
	"TOWN",
	"TCOP",
	"TCMP",
	"TMED",
	"TFLT",
	"TSSE",
	"TSIZ",
	"TOFN",
	"TRSN",
	"TRSO",
	"IPLS",
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
	"RVAD",
	"EQUA",
	"RVRB",
	"RBUF",
	"LINK",
	"ENCR",
	"GRID",
	"PRIV",
	"GEOB",
	"AENC",
	"APIC",
}
