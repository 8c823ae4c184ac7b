// Package wmf2svg converts Windows Metafile (WMF) record streams to SVG
// markup.
package wmf2svg

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/undisker/libxmf2svg/svg"
	"github.com/undisker/libxmf2svg/trace"
	"github.com/undisker/libxmf2svg/wmfrecord"
)

// maxRecords caps how many records a single Convert call will walk: a
// file whose size field loops or never reaches an EOF record still
// terminates.
const maxRecords = 100000

// recordPrologueSize is the 6-byte header every record carries: a 4-byte
// size in 16-bit words, a 1-byte record type and a 1-byte extra byte.
const recordPrologueSize = 6

// Convert renders a WMF byte buffer as an SVG document (or a bare sequence
// of painted elements, when opts.SVGDelimiter is false).
func Convert(contents []byte, opts *Options) ([]byte, error) {
	if contents == nil || opts == nil {
		return nil, ErrInvalidArgument
	}

	if !IsWMF(contents) {
		return nil, ErrNotWMF
	}

	hdr, err := decodeHeader(contents)
	if err != nil {
		return nil, err
	}

	st := newInterpreterState(hdr, opts)

	var buf bytes.Buffer
	st.svg = svg.New(&buf, opts.NamespacePrefix)

	traceWriter := opts.TraceWriter
	if traceWriter == nil {
		traceWriter = io.Discard
	}
	if opts.Verbose {
		st.trace = trace.New(traceWriter)
	} else {
		st.trace = trace.Discard
	}

	if opts.SVGDelimiter {
		st.svg.Prologue(st.imgWidth, st.imgHeight, opts.NamespacePrefix)
	}

	walkRecords(contents, hdr.recordStart, st)

	if opts.SVGDelimiter {
		st.svg.Epilogue()
	}

	if err := st.svg.Err(); err != nil {
		return nil, ErrSinkFailure // unreachable for an in-memory sink; kept for contract parity
	}

	return buf.Bytes(), nil
}

// newInterpreterState builds the initial interpreter state from the
// decoded header and caller options: default device context, an
// appropriately sized (possibly empty) object table, and the window and
// scaling setup the placeable header (or its absence) dictates.
func newInterpreterState(hdr *decodedHeader, opts *Options) *interpreterState {
	st := &interpreterState{
		dc:      newDeviceContext(),
		objects: newObjectTable(hdr.nObjects),
		uniqID:  1,
	}

	if hdr.placeable != nil {
		st.placeable = hdr.placeable
		st.windowOrgX, st.windowOrgY = hdr.placeable.Dst.Left, hdr.placeable.Dst.Top
		st.windowExtX = hdr.placeable.Dst.Right - hdr.placeable.Dst.Left
		st.windowExtY = hdr.placeable.Dst.Bottom - hdr.placeable.Dst.Top

		wmfWidth := float64(st.windowExtX)
		wmfHeight := float64(st.windowExtY)

		switch {
		case opts.ImgWidth > 0 && opts.ImgHeight > 0:
			st.imgWidth, st.imgHeight = opts.ImgWidth, opts.ImgHeight
			scaleX := st.imgWidth / wmfWidth
			scaleY := st.imgHeight / wmfHeight
			st.scaling = min(scaleX, scaleY)
		case opts.ImgWidth > 0:
			st.imgWidth = opts.ImgWidth
			st.scaling = st.imgWidth / wmfWidth
			st.imgHeight = wmfHeight * st.scaling
		case opts.ImgHeight > 0:
			st.imgHeight = opts.ImgHeight
			st.scaling = st.imgHeight / wmfHeight
			st.imgWidth = wmfWidth * st.scaling
		default:
			st.scaling = 96.0 / float64(hdr.placeable.Inch)
			st.imgWidth = wmfWidth * st.scaling
			st.imgHeight = wmfHeight * st.scaling
		}
	} else {
		st.windowExtX, st.windowExtY = 1000, 1000
		st.scaling = 1.0
		st.imgWidth, st.imgHeight = 1000, 1000
	}

	st.viewportOrgX, st.viewportOrgY = st.windowOrgX, st.windowOrgY
	st.viewportExtX, st.viewportExtY = st.windowExtX, st.windowExtY
	st.mapMode = mmAnisotropic

	return st
}

// walkRecords processes every record starting at recordStart until EOF,
// a truncated trailing record, or the safety cap is hit.
func walkRecords(contents []byte, recordStart int, st *interpreterState) {
	pos := recordStart
	for recnum := 0; recnum < maxRecords; recnum++ {
		if pos+recordPrologueSize > len(contents) {
			return
		}

		sizeWords := binary.LittleEndian.Uint32(contents[pos:])
		size := int(sizeWords) * 2
		if size < recordPrologueSize || pos+size > len(contents) {
			return
		}

		typ := wmfrecord.Type(contents[pos+4])
		xb := contents[pos+5]
		funcNum := uint16(xb)<<8 | uint16(typ)

		st.trace.RecordHeader(recnum, funcNum, uint32(size))

		payload := contents[pos+recordPrologueSize : pos+size]
		if st.processRecord(typ, funcNum, payload) {
			return
		}

		pos += size
	}

	st.trace.Warnf("too many records, stopping after %d", maxRecords)
}
