package domain

import (
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultMimeType is used when neither the caller nor the payload tells the
// encoding.
const DefaultMimeType = "audio/webm"

// Recording limits.
const (
	MaxRecordingSeconds = 3600
	MaxRecordingBytes   = 100 * 1024 * 1024
)

// AllowedMimeTypes lists the accepted base media types of a recording.
var AllowedMimeTypes = []string{
	"audio/webm",
	"audio/mp4",
	"audio/mpeg",
	"audio/wav",
	"audio/ogg",
}

// Recording is the single current audio capture of one Text.
type Recording struct {
	ID         uuid.UUID
	TextID     uuid.UUID
	Audio      []byte
	Duration   float64 // seconds
	FileSize   int64
	MimeType   string
	RecordedAt time.Time
	CreatedAt  time.Time
}

// Audio is a finished binary audio object tagged with its encoding.
type Audio struct {
	Data     []byte
	MimeType string
}

// DetectMimeType returns the declared type when set, otherwise the type
// sniffed from data, otherwise DefaultMimeType.
func DetectMimeType(data []byte, declared string) string {
	if declared = strings.TrimSpace(declared); declared != "" {
		return declared
	}
	if len(data) == 0 {
		return DefaultMimeType
	}
	switch sniffed := http.DetectContentType(data); {
	case strings.HasPrefix(sniffed, "audio/wave"):
		return "audio/wav"
	case strings.HasPrefix(sniffed, "application/ogg"):
		return "audio/ogg"
	case strings.HasPrefix(sniffed, "video/webm"):
		return "audio/webm"
	case strings.HasPrefix(sniffed, "audio/"):
		return sniffed
	}
	return DefaultMimeType
}

// BaseMimeType strips parameters such as codecs from a media type.
func BaseMimeType(mimeType string) string {
	base, _, err := mime.ParseMediaType(mimeType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(strings.SplitN(mimeType, ";", 2)[0]))
	}
	return base
}

// IsAllowedMimeType reports whether the base type of mimeType is accepted.
func IsAllowedMimeType(mimeType string) bool {
	base := BaseMimeType(mimeType)
	for _, allowed := range AllowedMimeTypes {
		if base == allowed {
			return true
		}
	}
	return false
}

// FileExtension returns the conventional file extension of a recording.
func FileExtension(mimeType string) string {
	switch BaseMimeType(mimeType) {
	case "audio/mp4":
		return "mp4"
	case "audio/mpeg":
		return "mp3"
	case "audio/wav":
		return "wav"
	case "audio/ogg":
		return "ogg"
	default:
		return "webm"
	}
}
