package id3v2

import "fmt"

// Version identifies one of the three ID3v2 sub-versions. The numeric
// value is the major version byte as it appears on disk.
type Version byte

const (
	V22 Version = 2
	V23 Version = 3
	V24 Version = 4
)

func (v Version) String() string {
	return fmt.Sprintf("ID3v2.%d", byte(v))
}

func (v Version) valid() bool {
	return v >= V22 && v <= V24
}

// versionDesc captures everything that differs between the sub-versions'
// wire formats, so one tag type can serve all three without a hierarchy.
type versionDesc struct {
	idLen        int
	sizeLen      int
	flagsLen     int
	syncsafeSize bool // v2.4 frame sizes are syncsafe
	dict         *frameDict
}

func (d *versionDesc) frameHeaderLen() int {
	return d.idLen + d.sizeLen + d.flagsLen
}

// maxFrameSize is the largest body size the version's size field can
// carry.
func (d *versionDesc) maxFrameSize() int {
	if d.syncsafeSize {
		return syncsafeMax
	}

	return 1<<(8*d.sizeLen) - 1
}

var versionDescs = map[Version]*versionDesc{
	V22: {idLen: 3, sizeLen: 3, flagsLen: 0, dict: framesV22},
	V23: {idLen: 4, sizeLen: 4, flagsLen: 2, dict: framesV23},
	V24: {idLen: 4, sizeLen: 4, flagsLen: 2, syncsafeSize: true, dict: framesV24},
}

func (v Version) desc() *versionDesc {
	return versionDescs[v]
}
