package id3v2

// framesV22 is the ID3v2.2 frame vocabulary with its 3-character
// identifiers.
var framesV22 = newFrameDict(V22, namesV22, genericV22, orderV22)

var namesV22 = map[string]string{
	"BUF": "Recommended buffer size",

	"CNT": "Play counter",
	"COM": "Comments",
	"CRA": "Audio encryption",
	"CRM": "Encrypted meta frame",

	"ETC": "Event timing codes",
	"EQU": "Equalization",

	"GEO": "General encapsulated object",

	"IPL": "Involved people list",

	"LNK": "Linked information",

	"MCI": "Music CD identifier",
	"MLL": "MPEG location lookup table",

	"PIC": "Attached picture",
	"POP": "Popularimeter",

	"REV": "Reverb",
	"RVA": "Relative volume adjustment",

	"SLT": "Synchronised lyric/text",
	"STC": "Synchronised tempo codes",

	"TAL": "Album/Movie/Show title",
	"TBP": "BPM (beats per minute)",
	"TCM": "Composer",
	"TCO": "Content type",
	"TCP": "Part of a compilation", // iTunes extension
	"TCR": "Copyright message",
	"TDA": "Date",
	"TDY": "Playlist delay",
	"TEN": "Encoded by",
	"TFT": "File type",
	"TIM": "Time",
	"TKE": "Initial key",
	"TLA": "Language(s)",
	"TLE": "Length",
	"TMT": "Media type",
	"TOA": "Original artist(s)/performer(s)",
	"TOF": "Original filename",
	"TOL": "Original lyricist(s)/text writer(s)",
	"TOR": "Original release year",
	"TOT": "Original album/movie/show title",
	"TP1": "Lead performer(s)/Soloist(s)",
	"TP2": "Band/orchestra/accompaniment",
	"TP3": "Conductor/performer refinement",
	"TP4": "Interpreted, remixed, or otherwise modified by",
	"TPA": "Part of a set",
	"TPB": "Publisher",
	"TRC": "ISRC (international standard recording code)",
	"TRD": "Recording dates",
	"TRK": "Track number/Position in set",
	"TSI": "Size",
	"TSS": "Software/hardware and settings used for encoding",
	"TT1": "Content group description",
	"TT2": "Title/songname/content description",
	"TT3": "Subtitle/Description refinement",
	"TXT": "Lyricist/text writer",
	"TXX": "User defined text information frame",
	"TYE": "Year",

	"UFI": "Unique file identifier",
	"ULT": "Unsynchronised lyric/text transcription",

	"WAF": "Official audio file webpage",
	"WAR": "Official artist/performer webpage",
	"WAS": "Official audio source webpage",
	"WCM": "Commercial information",
	"WCP": "Copyright/Legal information",
	"WPB": "Publishers official webpage",
	"WXX": "User defined URL link frame",
}

var genericV22 = map[GenericKey]frameAndSubID{
	Title:          {id: "TT2"},
	Artist:         {id: "TP1"},
	Album:          {id: "TAL"},
	AlbumArtist:    {id: "TP2"},
	Composer:       {id: "TCM"},
	Conductor:      {id: "TP3"},
	Genre:          {id: "TCO"},
	Year:           {id: "TYE"},
	Track:          {id: "TRK"},
	Disc:           {id: "TPA"},
	Comment:        {id: "COM"},
	Lyrics:         {id: "ULT"},
	BPM:            {id: "TBP"},
	ISRC:           {id: "TRC"},
	Publisher:      {id: "TPB"},
	EncodedBy:      {id: "TEN"},
	Language:       {id: "TLA"},
	Compilation:    {id: "TCP"},
	Barcode:        {id: "TXX", sub: "BARCODE"},
	CatalogNo:      {id: "TXX", sub: "CATALOGNUMBER"},
	ArtistURL:      {id: "WAR"},
	OriginalArtist: {id: "TOA"},
}

var orderV22 = []string{
	"UFI",
	"TT2",
	"TP1",
	"TAL",
	"TP2",
	"TRK",
	"TPA",
	"TYE",
	"TDA",
	"TIM",
	"TCO",
	"TCM",
	"TP3",
	"TP4",
	"TOA",
	"TOT",
	"TXT",
	"TT1",
	"TT3",
	"TOR",
	"TRD",
	"TBP",
	"TKE",
	"TLA",
	"TLE",
	"TDY",
	"TRC",
	"TPB",
	"TCR",
	"TCP",
	"TMT",
	"TFT",
	"TSS",
	"TSI",
	"TOF",
	"IPL",
	"TXX",
	"WAF",
	"WAR",
	"WAS",
	"WCM",
	"WCP",
	"WPB",
	"WXX",
	"COM",
	"ULT",
	"SLT",
	"POP",
	"CNT",
	"MCI",
	"ETC",
	"MLL",
	"STC",
	"RVA",
	"EQU",
	"REV",
	"BUF",
	"LNK",
	"CRM",
	"CRA",
	"GEO",
	"PIC",
}

// renameV22 maps each v2.2 identifier to its structural equivalent in
// v2.3 where one exists. The converter derives the reverse mapping from
// it.
var renameV22 = map[string]string{
	"BUF": "RBUF",
	"CNT": "PCNT",
	"COM": "COMM",
	"CRA": "AENC",
	"EQU": "EQUA",
	"ETC": "ETCO",
	"GEO": "GEOB",
	"IPL": "IPLS",
	"LNK": "LINK",
	"MCI": "MCDI",
	"MLL": "MLLT",
	"PIC": "APIC",
	"POP": "POPM",
	"REV": "RVRB",
	"RVA": "RVAD",
	"SLT": "SYLT",
	"STC": "SYTC",
	"TAL": "TALB",
	"TBP": "TBPM",
	"TCM": "TCOM",
	"TCO": "TCON",
	"TCP": "TCMP",
	"TCR": "TCOP",
	"TDA": "TDAT",
	"TDY": "TDLY",
	"TEN": "TENC",
	"TFT": "TFLT",
	"TIM": "TIME",
	"TKE": "TKEY",
	"TLA": "TLAN",
	"TLE": "TLEN",
	"TMT": "TMED",
	"TOA": "TOPE",
	"TOF": "TOFN",
	"TOL": "TOLY",
	"TOR": "TORY",
	"TOT": "TOAL",
	"TP1": "TPE1",
	"TP2": "TPE2",
	"TP3": "TPE3",
	"TP4": "TPE4",
	"TPA": "TPOS",
	"TPB": "TPUB",
	"TRC": "TSRC",
	"TRD": "TRDA",
	"TRK": "TRCK",
	"TSI": "TSIZ",
	"TSS": "TSSE",
	"TT1": "TIT1",
	"TT2": "TIT2",
	"TT3": "TIT3",
	"TXT": "TEXT",
	"TXX": "TXXX",
	"TYE": "TYER",
	"UFI": "UFID",
	"ULT": "USLT",
	"WAF": "WOAF",
	"WAR": "WOAR",
	"WAS": "WOAS",
	"WCM": "WCOM",
	"WCP": "WCOP",
	"WPB": "WPUB",
	"WXX": "WXXX",
}

var renameToV22 = invertRename(renameV22)

func invertRename(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for from, to := range m {
		out[to] = from
	}

	return out
}
