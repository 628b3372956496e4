package gmail

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
)

// buildMIME assembles the multipart draft message: HTML body plus the resume
// as a base64 attachment. Fails when the resume file is absent.
func buildMIME(to, subject, htmlBody, resumePath string) ([]byte, error) {
	attachment, err := os.ReadFile(resumePath)
	if err != nil {
		return nil, fmt.Errorf("resume file not found at %s: %w", resumePath, err)
	}

	filename := filepath.Base(resumePath)
	mimeType := mime.TypeByExtension(filepath.Ext(resumePath))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", subject)
	buf.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=%q\r\n", mw.Boundary())
	buf.WriteString("\r\n")

	bodyHdr := textproto.MIMEHeader{}
	bodyHdr.Set("Content-Type", `text/html; charset="UTF-8"`)
	part, err := mw.CreatePart(bodyHdr)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write([]byte(htmlBody)); err != nil {
		return nil, err
	}

	attHdr := textproto.MIMEHeader{}
	attHdr.Set("Content-Type", fmt.Sprintf("%s; name=%q", mimeType, filename))
	attHdr.Set("Content-Transfer-Encoding", "base64")
	attHdr.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	part, err = mw.CreatePart(attHdr)
	if err != nil {
		return nil, err
	}
	if err := writeBase64Wrapped(part, attachment); err != nil {
		return nil, err
	}

	if err := mw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeBase64Wrapped emits base64 in RFC 2045 friendly 76-char lines.
func writeBase64Wrapped(w io.Writer, data []byte) error {
	enc := base64.StdEncoding.EncodeToString(data)
	for len(enc) > 0 {
		n := 76
		if n > len(enc) {
			n = len(enc)
		}
		if _, err := w.Write([]byte(enc[:n])); err != nil {
			return err
		}
		if _, err := w.Write([]byte("\r\n")); err != nil {
			return err
		}
		enc = enc[n:]
	}
	return nil
}
