// Package document converts uploaded résumé files to plain text.
package document

import (
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"code.sajari.com/docconv"
	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
)

// MinContentLength is the shortest text accepted as a résumé.
const MinContentLength = 50

var (
	ErrUnsupportedFormat = errors.New("unsupported document format")
	ErrContentTooShort   = errors.New("document content too short, make sure the file contains readable text")
)

var (
	extraBlankLines = regexp.MustCompile(`\n{3,}`)
	extraSpaces     = regexp.MustCompile(`[ \t]+`)
)

type Converter struct {
	convertPath func(path string) (string, error)
}

func NewConverter() *Converter {
	return &Converter{convertPath: convertWithDocconv}
}

func convertWithDocconv(path string) (string, error) {
	res, err := docconv.ConvertPath(path)
	if err != nil {
		return "", err
	}
	return res.Body, nil
}

// ToText reads the file at path and returns its text. Office and PDF documents go through
// docconv, HTML keeps one line per block element, plain text is read as is.
func (c *Converter) ToText(path string) (string, error) {
	var (
		text string
		err  error
	)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".pdf", ".docx", ".doc", ".odt", ".rtf":
		text, err = c.convertPath(path)
	case ".html", ".htm":
		text, err = readHTML(path)
	case ".txt", ".md":
		var content []byte
		content, err = os.ReadFile(path)
		text = string(content)
	default:
		return "", errors.Wrapf(ErrUnsupportedFormat, "extension %q", ext)
	}
	if err != nil {
		return "", errors.Wrapf(err, "failed to convert %s", filepath.Base(path))
	}

	text = clean(text)
	if utf8.RuneCountInString(text) < MinContentLength {
		return "", errors.Wrapf(ErrContentTooShort, "%s", filepath.Base(path))
	}
	return text, nil
}

func readHTML(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	return HTMLToText(file)
}

func clean(text string) string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(extraSpaces.ReplaceAllString(line, " "))
	}
	return strings.TrimSpace(extraBlankLines.ReplaceAllString(strings.Join(lines, "\n"), "\n\n"))
}

// HTMLToText renders an HTML document as text with a line break after every block element,
// so section headers and list items stay on their own lines.
func HTMLToText(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", err
	}

	doc.Find("script, style, noscript").Remove()
	doc.Find("p, div, h1, h2, h3, h4, h5, h6, li, br, tr").Each(func(_ int, s *goquery.Selection) {
		s.AfterHtml("\n")
	})

	return clean(doc.Text()), nil
}
