package format

import "fmt"

// Fixed header layout. Offsets are absolute file positions; the image and
// net table offsets are stored relative and rebased by sectionBase.
const (
	imageOffsetField = 0x24
	netOffsetField   = 0x28
	mainLengthField  = 0x40
	sectionBase      = 0x20

	// The main element-block region immediately follows its length field.
	mainRegionStart = mainLengthField + 4
)

// header carries the section offsets extracted from the fixed file header.
// A zero imageOffset or netOffset means the section is absent.
type header struct {
	imageOffset int
	netOffset   int
	mainStart   int
	mainLength  int
}

// parseHeader reads the three fixed header fields and validates that the
// declared main-block region fits inside the file. A region that overflows
// the buffer with a nonzero declared length is fatal for the whole load.
func parseHeader(r *reader) (*header, error) {
	imageOff, err := r.u32At(imageOffsetField)
	if err != nil {
		return nil, fmt.Errorf("failed to read image table offset: %w", err)
	}
	netOff, err := r.u32At(netOffsetField)
	if err != nil {
		return nil, fmt.Errorf("failed to read net table offset: %w", err)
	}
	mainLen, err := r.u32At(mainLengthField)
	if err != nil {
		return nil, fmt.Errorf("failed to read main block length: %w", err)
	}

	h := &header{
		mainStart:  mainRegionStart,
		mainLength: int(mainLen),
	}
	if imageOff != 0 {
		h.imageOffset = int(imageOff) + sectionBase
	}
	if netOff != 0 {
		h.netOffset = int(netOff) + sectionBase
	}

	if h.mainLength > 0 && h.mainStart+h.mainLength > len(r.buf) {
		return nil, fmt.Errorf("main block region of %d bytes at %#x overruns file of %d bytes",
			h.mainLength, h.mainStart, len(r.buf))
	}

	return h, nil
}
