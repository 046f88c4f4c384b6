// Package decode turns uploaded resume files into plain text. Supported
// inputs are TXT, PDF, DOCX and HTML; binary formats that yield no readable
// text produce a flagged low-confidence placeholder instead of an error so
// downstream extraction degrades gracefully.
package decode

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
)

// Size limits enforced at the decoding boundary.
const (
	MinFileBytes = 100
	MaxFileBytes = 12 << 20
)

// LowConfidencePlaceholder is returned when a file decodes but yields no
// meaningful text (scanned PDFs, image-heavy documents). Callers can detect
// it and route the upload to manual review.
const LowConfidencePlaceholder = "[unreadable document: no text content could be extracted]"

// DecodeError is a user-facing decoding failure with actionable guidance
type DecodeError struct {
	Message string
	Cause   error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// Decode extracts plain text from an uploaded file, dispatching on the file
// extension. Size limits are enforced before any parsing.
func Decode(data []byte, filename string) (string, error) {
	if len(data) == 0 {
		return "", &DecodeError{Message: "the file is empty"}
	}
	if len(data) < MinFileBytes {
		return "", &DecodeError{Message: "the file is too small to be a resume; upload the full document"}
	}
	if len(data) > MaxFileBytes {
		return "", &DecodeError{Message: fmt.Sprintf("the file exceeds the %dMB limit; compress it or convert it to TXT", MaxFileBytes>>20)}
	}

	var text string
	var err error
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt", ".md":
		text = string(data)
	case ".pdf":
		text, err = decodePDF(data)
	case ".docx":
		text, err = decodeDOCX(data)
	case ".html", ".htm":
		text, err = decodeHTML(data)
	default:
		return "", &DecodeError{Message: fmt.Sprintf("unsupported file type %q; convert the document to TXT, PDF or DOCX", filepath.Ext(filename))}
	}
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(text) == "" {
		return LowConfidencePlaceholder, nil
	}
	return text, nil
}

// IsLowConfidence reports whether decoded text is the unreadable-document placeholder
func IsLowConfidence(text string) bool {
	return text == LowConfidencePlaceholder
}

func decodePDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &DecodeError{Message: "could not open the PDF; it may be corrupted or password-protected", Cause: err}
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		// A structurally valid PDF with unextractable text (scans, exotic
		// encodings) degrades to the placeholder rather than failing.
		return LowConfidencePlaceholder, nil
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return LowConfidencePlaceholder, nil
	}
	return buf.String(), nil
}

// decodeDOCX unzips the OOXML archive and strips the XML markup from the
// main document part.
func decodeDOCX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &DecodeError{Message: "could not open the DOCX archive; it may be corrupted", Cause: err}
	}

	var docFile *zip.File
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", &DecodeError{Message: "the DOCX archive has no document body; re-save the file and try again"}
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", &DecodeError{Message: "could not read the DOCX document body", Cause: err}
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return "", &DecodeError{Message: "could not read the DOCX document body", Cause: err}
	}
	return stripDocxXML(string(raw)), nil
}

// stripDocxXML walks the document XML and keeps character data, inserting
// newlines at paragraph boundaries.
func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var sb strings.Builder
	for {
		tok, err := decoder.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.EndElement:
			if t.Name.Local == "p" {
				sb.WriteString("\n")
			}
		}
	}
	return sb.String()
}

// decodeHTML extracts visible text from an HTML resume, dropping script and
// style content and keeping block-level line breaks.
func decodeHTML(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", &DecodeError{Message: "could not parse the HTML document", Cause: err}
	}
	doc.Find("script, style, noscript").Remove()

	var sb strings.Builder
	doc.Find("p, li, h1, h2, h3, h4, div, br").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text != "" && s.Children().Length() == 0 {
			sb.WriteString(text)
			sb.WriteString("\n")
		}
	})
	if sb.Len() == 0 {
		return strings.TrimSpace(doc.Text()), nil
	}
	return sb.String(), nil
}
