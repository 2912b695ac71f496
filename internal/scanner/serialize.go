package scanner

import "encoding/binary"

// Serialize packs the scanner's state into buf per spec.md §6's fixed
// layout, returning the number of bytes written. It returns 0 ("no
// checkpoint") if the state would not fit buf's capacity: the host's
// incremental layer then forgoes the checkpoint and restarts the scanner at
// the next safe point (spec.md §3, §7).
//
// Layout:
//
//	byte 0      : last_glob_paren_depth
//	byte 1      : ext_was_in_double_quote   (0 or 1)
//	byte 2      : ext_saw_outside_quote      (0 or 1)
//	byte 3      : heredoc_count              (0..255)
//	repeated heredoc_count times:
//	  byte      : is_raw                     (0 or 1)
//	  byte      : started                    (0 or 1)
//	  byte      : allows_indent              (0 or 1)
//	  bytes 0-3 : delimiter_len (u32, little-endian on every host)
//	  bytes     : delimiter (delimiter_len bytes, not NUL-terminated)
func (sc *Scanner) Serialize(buf []byte) int {
	st := &sc.state

	n := 4
	frames := st.heredocs.frames
	count := len(frames)
	if count > 255 {
		// The wire format caps heredoc_count at a single byte; a script
		// nesting more than 255 heredocs cannot be checkpointed.
		return 0
	}
	for _, f := range frames {
		n += 3 + 4 + f.delimiter.len()
	}
	if n > len(buf) {
		return 0
	}

	buf[0] = st.lastGlobParenDepth
	buf[1] = boolByte(st.extWasInDoubleQuote)
	buf[2] = boolByte(st.extSawOutsideQuote)
	buf[3] = byte(count)

	off := 4
	for _, f := range frames {
		buf[off] = boolByte(f.isRaw)
		buf[off+1] = boolByte(f.started)
		buf[off+2] = boolByte(f.allowsIndent)
		off += 3
		binary.LittleEndian.PutUint32(buf[off:off+4], uint32(f.delimiter.len()))
		off += 4
		off += copy(buf[off:], f.delimiter.Bytes())
	}
	return off
}

// Deserialize restores the scanner's state from buf. An empty buffer resets
// the scanner to its zero state (spec.md §6, "empty buffer → reset").
func (sc *Scanner) Deserialize(buf []byte) {
	st := &sc.state
	if len(buf) == 0 {
		st.reset()
		return
	}

	st.lastGlobParenDepth = buf[0]
	st.extWasInDoubleQuote = buf[1] != 0
	st.extSawOutsideQuote = buf[2] != 0
	count := int(buf[3])

	frames := make([]*heredocFrame, 0, count)
	off := 4
	for i := 0; i < count; i++ {
		f := &heredocFrame{
			isRaw:        buf[off] != 0,
			started:      buf[off+1] != 0,
			allowsIndent: buf[off+2] != 0,
		}
		off += 3
		dlen := int(binary.LittleEndian.Uint32(buf[off : off+4]))
		off += 4
		f.delimiter.reset()
		for _, c := range buf[off : off+dlen] {
			f.delimiter.push(c)
		}
		off += dlen
		frames = append(frames, f)
	}
	st.heredocs.frames = frames
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
