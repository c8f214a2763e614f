package uploads

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formFile(t *testing.T, field, name, contentType, body string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		`form-data; name="`+field+`"; filename="`+name+`"`)
	header.Set("Content-Type", contentType)

	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte(body))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File[field][0]
}

func TestSaveAndRead(t *testing.T) {
	dir := t.TempDir()
	intake, err := NewIntake(dir)
	require.NoError(t, err)

	fh := formFile(t, "logo", "logo.png", "image/png", "pngbytes")

	d, err := intake.Save(fh)
	require.NoError(t, err)

	assert.Equal(t, "logo.png", d.OriginalName)
	assert.Equal(t, "image/png", d.MimeType)
	assert.True(t, strings.HasPrefix(d.Path, dir))

	data, err := intake.Read(d)
	require.NoError(t, err)
	assert.Equal(t, []byte("pngbytes"), data)
}

func TestSaveNeverCollides(t *testing.T) {
	intake, err := NewIntake(t.TempDir())
	require.NoError(t, err)

	fh := formFile(t, "logo", "logo.png", "image/png", "pngbytes")

	first, err := intake.Save(fh)
	require.NoError(t, err)
	second, err := intake.Save(fh)
	require.NoError(t, err)

	assert.NotEqual(t, first.Path, second.Path)
}

func TestReadMissingFile(t *testing.T) {
	intake, err := NewIntake(t.TempDir())
	require.NoError(t, err)

	_, err = intake.Read(Descriptor{Path: "/nonexistent/upload"})
	require.Error(t, err)
}
