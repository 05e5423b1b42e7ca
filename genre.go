package id3v2

import (
	"fmt"
	"strconv"
	"strings"
)

// genreNames is the ID3v1 genre code table, including the Winamp
// extensions. The index is the numeric genre code.
var genreNames = []string{
	"Blues", "Classic Rock", "Country", "Dance",
	"Disco", "Funk", "Grunge", "Hip-Hop",
	"Jazz", "Metal", "New Age", "Oldies",
	"Other", "Pop", "R&B", "Rap",
	"Reggae", "Rock", "Techno", "Industrial",
	"Alternative", "Ska", "Death Metal", "Pranks",
	"Soundtrack", "Euro-Techno", "Ambient", "Trip-Hop",
	"Vocal", "Jazz+Funk", "Fusion", "Trance",
	"Classical", "Instrumental", "Acid", "House",
	"Game", "Sound Clip", "Gospel", "Noise",
	"AlternRock", "Bass", "Soul", "Punk",
	"Space", "Meditative", "Instrumental Pop", "Instrumental Rock",
	"Ethnic", "Gothic", "Darkwave", "Techno-Industrial",
	"Electronic", "Pop-Folk", "Eurodance", "Dream",
	"Southern Rock", "Comedy", "Cult", "Gangsta",
	"Top 40", "Christian Rap", "Pop/Funk", "Jungle",
	"Native American", "Cabaret", "New Wave", "Psychadelic",
	"Rave", "Showtunes", "Trailer", "Lo-Fi",
	"Tribal", "Acid Punk", "Acid Jazz", "Polka",
	"Retro", "Musical", "Rock & Roll", "Hard Rock", "Folk", "Folk-Rock",
	"National Folk", "Swing", "Fast Fusion", "Bebob", "Latin", "Revival",
	"Celtic", "Bluegrass", "Avantgarde", "Gothic Rock", "Progressive Rock",
	"Psychedelic Rock", "Symphonic Rock", "Slow Rock", "Big Band", "Chorus",
	"Easy Listening", "Acoustic", "Humour", "Speech", "Chanson", "Opera",
	"Chamber Music", "Sonata", "Symphony", "Booty Bass", "Primus",
	"Porn Groove", "Satire", "Slow Jam", "Club", "Tango", "Samba", "Folklore",
	"Ballad", "Power Ballad", "Rhytmic Soul", "Freestyle", "Duet", "Punk Rock",
	"Drum Solo", "Acapella", "Euro-House", "Dance Hall", "Goa", "Drum & Bass",
	"Club-House", "Hardcore", "Terror", "Indie", "BritPop", "Negerpunk",
	"Polsk Punk", "Beat", "Christian Gangsta Rap", "Heavy Metal", "Black Metal",
	"Crossover", "Contemporary Christian", "Christian Rock",
	"Merengue", "Salsa", "Thrash Metal", "Anime", "Jpop", "Synthpop",
}

var genreCodes = func() map[string]int {
	m := make(map[string]int, len(genreNames))
	for i, name := range genreNames {
		m[strings.ToLower(name)] = i
	}

	return m
}()

// genreToText converts a stored genre value to its canonical name. Legacy
// values come as "(NN)" or a bare numeric string; numeric codes resolve
// through the table. "(RX)" and "(CR)" mean remix and cover. Anything
// else is already freeform text and passes through verbatim.
func genreToText(value string) string {
	s := value
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		s = s[1 : len(s)-1]
	}

	switch s {
	case "RX":
		return "Remix"
	case "CR":
		return "Cover"
	}

	if code, err := strconv.Atoi(s); err == nil && code >= 0 && code < len(genreNames) {
		return genreNames[code]
	}

	return value
}

// genreFromText converts a genre name back to the legacy "(NN)" form when
// the name matches a table entry. Unrecognized names are preserved
// verbatim rather than dropped.
func genreFromText(value string) string {
	switch strings.ToLower(value) {
	case "remix":
		return "(RX)"
	case "cover":
		return "(CR)"
	}

	if code, ok := genreCodes[strings.ToLower(value)]; ok {
		return fmt.Sprintf("(%d)", code)
	}

	return value
}
