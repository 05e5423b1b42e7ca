package id3v2

import (
	"fmt"
	"strings"
)

// Convert returns a new tag carrying t's metadata in the target version's
// schema. Frames are renamed where a structural equivalent exists,
// reshaped where the field layout differs (the v2.4 recording time splits
// into the legacy year/date/time frames and vice versa), and dropped with
// a log entry where the destination version has no equivalent.
//
// All conversions route through v2.4 as the canonical intermediate, so
// three versions need two converters instead of six.
func Convert(t *Tag, target Version) (*Tag, error) {
	if !target.valid() {
		return nil, fmt.Errorf("cannot convert to unsupported version %d", byte(target))
	}

	canonical := upgradeTo24(t)
	if target == V24 {
		return canonical, nil
	}

	return downgradeFrom24(canonical, target), nil
}

// slashSeparated are the frames whose v2.2/v2.3 form separates multiple
// values with a slash. v2.4 uses null bytes instead.
var slashSeparated = map[string]bool{
	"TPE1": true,
	"TOPE": true,
	"TCOM": true,
	"TEXT": true,
	"TOLY": true,
	"TLAN": true,
}

func upgradeTo24(t *Tag) *Tag {
	out := NewTag(V24)
	out.Options = t.Options

	if t.Version == V24 {
		for _, id := range t.FrameIDs() {
			for _, f := range t.frames[id] {
				out.addDecodedFrame(copyFrame(f, id))
			}
		}
		return out
	}

	var year, date, tod string

	for _, id := range t.FrameIDs() {
		for _, f := range t.frames[id] {
			srcID := id
			if t.Version == V22 {
				mapped, ok := renameV22[srcID]
				if !ok {
					logDroppedFrame(srcID, V24)
					continue
				}
				srcID = mapped
			}

			switch srcID {
			case "TYER":
				year = textValue(f)
			case "TDAT":
				date = textValue(f)
			case "TIME":
				tod = textValue(f)
			case "TORY":
				out.addDecodedFrame(textFrame("TDOR", textValue(f)))
			case "IPLS":
				out.addDecodedFrame(copyFrame(f, "TIPL"))
			case "TCON":
				nf := copyFrame(f, "TCON")
				if body, ok := nf.Body.(*TextBody); ok {
					body.Values = splitSlashes(body.Values)
					for i, v := range body.Values {
						body.Values[i] = genreToText(v)
					}
				}
				out.addDecodedFrame(nf)
			case "TRDA", "TSIZ", "EQUA", "RVAD":
				// No v2.4 equivalent.
				logDroppedFrame(srcID, V24)
			default:
				if !framesV24.known(srcID) {
					logDroppedFrame(srcID, V24)
					continue
				}
				nf := copyFrame(f, srcID)
				if body, ok := nf.Body.(*TextBody); ok && slashSeparated[srcID] {
					body.Values = splitSlashes(body.Values)
				}
				out.addDecodedFrame(nf)
			}
		}
	}

	if ts := buildTimestamp(year, date, tod); ts != "" {
		out.addDecodedFrame(textFrame("TDRC", ts))
	}

	return out
}

func downgradeFrom24(t *Tag, target Version) *Tag {
	out := NewTag(target)
	out.Options = t.Options

	for _, id := range t.FrameIDs() {
		for _, f := range t.frames[id] {
			switch id {
			case "TDRC":
				year, date, tod := splitTimestamp(textValue(f))
				if year != "" {
					out.addDowngraded(textFrame("TYER", year), target)
				}
				if date != "" {
					out.addDowngraded(textFrame("TDAT", date), target)
				}
				if tod != "" {
					out.addDowngraded(textFrame("TIME", tod), target)
				}
			case "TDOR":
				year, _, _ := splitTimestamp(textValue(f))
				if year != "" {
					out.addDowngraded(textFrame("TORY", year), target)
				}
			case "TIPL":
				out.addDowngraded(copyFrame(f, "IPLS"), target)
			case "TCON":
				nf := copyFrame(f, "TCON")
				if body, ok := nf.Body.(*TextBody); ok {
					for i, v := range body.Values {
						body.Values[i] = genreFromText(v)
					}
				}
				out.addDowngraded(nf, target)
			default:
				if !framesV23.known(id) {
					logDroppedFrame(id, target)
					continue
				}
				nf := copyFrame(f, id)
				if body, ok := nf.Body.(*TextBody); ok && slashSeparated[id] {
					body.Values = joinSlashes(body.Values)
				}
				out.addDowngraded(nf, target)
			}
		}
	}

	return out
}

// addDowngraded stores a frame carrying a v2.3 identifier into a v2.3 or
// v2.2 tag, applying the 3-character rename for v2.2.
func (t *Tag) addDowngraded(f Frame, target Version) {
	if target == V22 {
		id, ok := renameToV22[f.ID]
		if !ok {
			logDroppedFrame(f.ID, target)
			return
		}
		f.ID = id
	}

	t.addDecodedFrame(f)
}

func logDroppedFrame(id string, target Version) {
	logger.Warn().Str("id", id).Stringer("target", target).
		Msg("dropping frame with no equivalent in target version")
}

func textValue(f Frame) string {
	if body, ok := f.Body.(*TextBody); ok {
		return body.Value()
	}

	return f.Body.Value()
}

func textFrame(id, value string) Frame {
	return Frame{ID: id, Body: &TextBody{Values: []string{value}}}
}

func splitSlashes(values []string) []string {
	var out []string
	for _, v := range values {
		out = append(out, strings.Split(v, "/")...)
	}

	return out
}

func joinSlashes(values []string) []string {
	if len(values) <= 1 {
		return values
	}

	return []string{strings.Join(values, "/")}
}

// copyFrame duplicates a frame under a new identifier so the converted
// tag never aliases the source tag's bodies.
func copyFrame(f Frame, id string) Frame {
	return Frame{ID: id, Flags: f.Flags, Body: copyBody(f.Body)}
}

func copyBody(b FrameBody) FrameBody {
	switch body := b.(type) {
	case *TextBody:
		c := *body
		c.Values = append([]string(nil), body.Values...)
		return &c
	case *UserTextBody:
		c := *body
		return &c
	case *URLBody:
		c := *body
		return &c
	case *UserURLBody:
		c := *body
		return &c
	case *CommentBody:
		c := *body
		return &c
	case *LyricsBody:
		c := *body
		return &c
	case *PictureBody:
		c := *body
		c.Data = append([]byte(nil), body.Data...)
		return &c
	case *CounterBody:
		c := *body
		return &c
	case *PopularimeterBody:
		c := *body
		return &c
	case *UniqueFileIDBody:
		c := *body
		c.Identifier = append([]byte(nil), body.Identifier...)
		return &c
	case *BinaryBody:
		c := *body
		c.Data = append([]byte(nil), body.Data...)
		return &c
	default:
		return b
	}
}

// buildTimestamp merges the legacy TYER/TDAT/TIME values into a v2.4
// timestamp. TDAT is DDMM, TIME is HHMM. Partial inputs build as much of
// the timestamp as they cover.
func buildTimestamp(year, date, tod string) string {
	if len(year) != 4 || !isDigits(year) {
		return ""
	}

	ts := year
	if len(date) == 4 && isDigits(date) {
		ts += "-" + date[2:4] + "-" + date[0:2]
		if len(tod) == 4 && isDigits(tod) {
			ts += "T" + tod[0:2] + ":" + tod[2:4]
		}
	}

	return ts
}

// splitTimestamp is the inverse of buildTimestamp: a v2.4 timestamp
// prefix of the form YYYY[-MM[-DD[THH[:MM]]]] becomes the legacy year,
// DDMM date and HHMM time values, each empty when the timestamp does not
// reach it.
func splitTimestamp(ts string) (year, date, tod string) {
	if len(ts) < 4 || !isDigits(ts[:4]) {
		return "", "", ""
	}
	year = ts[:4]

	if len(ts) >= 10 && ts[4] == '-' && ts[7] == '-' &&
		isDigits(ts[5:7]) && isDigits(ts[8:10]) {
		date = ts[8:10] + ts[5:7]
	} else {
		return year, "", ""
	}

	if len(ts) >= 16 && ts[10] == 'T' && ts[13] == ':' &&
		isDigits(ts[11:13]) && isDigits(ts[14:16]) {
		tod = ts[11:13] + ts[14:16]
	}

	return year, date, tod
}
