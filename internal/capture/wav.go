package capture

import (
	"bytes"
	"encoding/binary"
	"time"
)

const (
	wavHeaderSize = 44
	wavFormatPCM  = 1
)

// PCMFormat describes raw PCM frames.
type PCMFormat struct {
	SampleRate    int
	Channels      int
	BitsPerSample int
}

// ByteRate is the number of bytes per second of audio.
func (f PCMFormat) ByteRate() int {
	return f.SampleRate * f.Channels * f.BitsPerSample / 8
}

// Duration returns the play time of n bytes of PCM.
func (f PCMFormat) Duration(n int) time.Duration {
	rate := f.ByteRate()
	if rate <= 0 {
		return 0
	}
	return time.Duration(int64(n) * int64(time.Second) / int64(rate))
}

// WrapPCM prepends a RIFF/WAVE header to pcm.
func WrapPCM(pcm []byte, f PCMFormat) []byte {
	blockAlign := f.Channels * f.BitsPerSample / 8

	var buf bytes.Buffer
	buf.Grow(wavHeaderSize + len(pcm))

	buf.WriteString("RIFF")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(36+len(pcm)))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(wavFormatPCM))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(f.Channels))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(f.SampleRate))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(f.ByteRate()))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(blockAlign))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(f.BitsPerSample))

	buf.WriteString("data")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(len(pcm)))
	buf.Write(pcm)

	return buf.Bytes()
}

// WAVDuration reads the play time of a canonical PCM WAV file.
// ok is false when data is not one.
func WAVDuration(data []byte) (d time.Duration, ok bool) {
	if len(data) < wavHeaderSize || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return 0, false
	}

	pos := 12
	var byteRate uint32
	for pos+8 <= len(data) {
		id := string(data[pos : pos+4])
		size := int(binary.LittleEndian.Uint32(data[pos+4 : pos+8]))
		body := pos + 8

		switch id {
		case "fmt ":
			if body+16 > len(data) {
				return 0, false
			}
			byteRate = binary.LittleEndian.Uint32(data[body+8 : body+12])
		case "data":
			if byteRate == 0 {
				return 0, false
			}
			if avail := len(data) - body; size > avail {
				size = avail
			}
			return time.Duration(int64(size) * int64(time.Second) / int64(byteRate)), true
		}

		pos = body + size + size%2
	}
	return 0, false
}
