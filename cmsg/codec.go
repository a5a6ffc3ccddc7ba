//go:build linux

package cmsg

import (
	"fmt"
	"unsafe"

	"github.com/database64128/linux-abi-go/slicehelper"
	"golang.org/x/sys/unix"
)

// Record is a single control message parsed out of a control buffer.
type Record struct {
	// Level is the originating protocol level.
	Level int32

	// Type is the protocol-specific message type.
	Type int32

	// Data is the message payload, without alignment padding.
	// It aliases the buffer the record was parsed from.
	Data []byte
}

// Parse walks the control buffer b and returns the records it contains.
//
// A record whose declared length is shorter than its own header, or
// extends past the end of the buffer, stops the walk with an error and
// the records parsed so far. A final record may omit its trailing
// alignment padding. Trailing bytes too short to hold a header are
// ignored.
func Parse(b []byte) ([]Record, error) {
	var recs []Record
	for len(b) >= unix.SizeofCmsghdr {
		hdr := (*unix.Cmsghdr)(unsafe.Pointer(unsafe.SliceData(b)))
		msgLen := uint64(hdr.Len)
		if msgLen < unix.SizeofCmsghdr || msgLen > uint64(len(b)) {
			return recs, fmt.Errorf("invalid control message length %d", hdr.Len)
		}
		recs = append(recs, Record{
			Level: hdr.Level,
			Type:  hdr.Type,
			Data:  b[unix.SizeofCmsghdr:msgLen:msgLen],
		})
		msgSize := Align(msgLen)
		if msgSize > uint64(len(b)) {
			msgSize = uint64(len(b))
		}
		b = b[msgSize:]
	}
	return recs, nil
}

// AppendRecord appends a control message with the given level, type,
// and payload to b, pads the record to alignment, and returns the
// extended buffer.
//
// The record occupies [Space](len(data)) bytes, and its header declares
// [Len](len(data)), so records appended back to back form a chain that
// [Parse], [FirstHeader], and [NextHeader] traverse in order.
func AppendRecord(b []byte, level, typ int32, data []byte) []byte {
	msgLen := Len(uint64(len(data)))
	b, msgBuf := slicehelper.Extend(b, int(Space(uint64(len(data)))))
	hdr := (*unix.Cmsghdr)(unsafe.Pointer(unsafe.SliceData(msgBuf)))
	*hdr = unix.Cmsghdr{
		Level: level,
		Type:  typ,
	}
	hdr.SetLen(int(msgLen))
	_ = copy(msgBuf[unix.SizeofCmsghdr:], data)
	clear(msgBuf[msgLen:])
	return b
}
