/*
Package id3v2 reads, writes and converts ID3v2.2, v2.3 and v2.4 tags.

The codec works on in-memory byte buffers. Locating the tag region inside
a host container (MPEG frame scanning, MP4 atom walking) and persisting
the rewritten file are the caller's concern: Decode consumes a byte
region that starts with the tag header, Write returns the bytes to splice
back in its place.

# Reading

Decode is deliberately tolerant. Corrupt and empty frames are counted and
skipped, padding and malformed identifiers end the frame stream cleanly,
and a truncated buffer yields whatever frames were assembled before the
cut. A single damaged frame never discards a file's remaining metadata.
The damage is reported through the tag's InvalidFrames and
EmptyFrameBytes counters.

# Generic fields

Each version encodes semantically identical metadata differently: the
title lives in TT2 in v2.2 and TIT2 in the later versions, the recording
year moves from TYER to the combined TDRC timestamp in v2.4. The
GenericKey API addresses fields independently of the version; the tag's
frame dictionary resolves each key to the right frame, and keys the
active version cannot express fail with UnsupportedFieldError.

# Conversion

Convert maps a tag between the three versions, renaming identifiers,
reshaping fields whose layout differs and dropping (with a log entry)
frames that have no equivalent in the target. Conversions route through
v2.4 as a canonical intermediate.

A Tag has exactly one owner and is not safe for concurrent use.
*/
package id3v2
