// Package uploads is the file-intake collaborator: it spills multipart
// parts to a scratch directory and hands the pipeline a descriptor per
// field. Files are transient; nothing may assume they outlive the request.
package uploads

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"mime/multipart"
)

// Descriptor points at one stored upload.
type Descriptor struct {
	Path         string
	OriginalName string
	MimeType     string
}

type Intake struct {
	dir string
}

func NewIntake(dir string) (*Intake, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Intake{dir: dir}, nil
}

// Save spills one multipart part to disk under a timestamp-and-uuid name,
// so concurrent registrations uploading the same filename never collide.
func (in *Intake) Save(fh *multipart.FileHeader) (Descriptor, error) {
	src, err := fh.Open()
	if err != nil {
		return Descriptor{}, err
	}
	defer src.Close()

	name := fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), uuid.NewString(), filepath.Base(fh.Filename))
	path := filepath.Join(in.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return Descriptor{}, err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(path)
		return Descriptor{}, err
	}

	return Descriptor{
		Path:         path,
		OriginalName: fh.Filename,
		MimeType:     fh.Header.Get("Content-Type"),
	}, nil
}

// Read loads a stored upload back into memory for persistence as a bytea
// column.
func (in *Intake) Read(d Descriptor) ([]byte, error) {
	return os.ReadFile(d.Path)
}
