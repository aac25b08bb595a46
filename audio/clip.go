package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/notedly/minutes/errors"
)

// Clip is a complete audio recording held in memory.
type Clip struct {
	Name     string
	MIMEType string
	Data     []byte
}

// LoadClip reads an audio file into a Clip, detecting its MIME type
// from content.
func LoadClip(path string) (*Clip, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound("audio file", path)
		}
		return nil, errors.Internal(fmt.Sprintf("failed to read audio file %s", path)).WithCause(err)
	}
	if len(data) == 0 {
		return nil, errors.InvalidInput("path", "audio file is empty")
	}

	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "audio/") && !strings.HasPrefix(mtype.String(), "video/") {
		return nil, errors.InvalidInput("path", fmt.Sprintf("not an audio file (detected %s)", mtype.String()))
	}

	return &Clip{
		Name:     filepath.Base(path),
		MIMEType: mtype.String(),
		Data:     data,
	}, nil
}

// Size returns the clip size in bytes.
func (c *Clip) Size() int64 {
	return int64(len(c.Data))
}

// SizeMB returns the clip size in mebibytes.
func (c *Clip) SizeMB() float64 {
	return float64(len(c.Data)) / (1024 * 1024)
}
