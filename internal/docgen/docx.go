package docgen

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
)

// DOCX text runs that word processors split mid-placeholder are merged
// back before parsing, so "{credit" + "ID}" becomes one searchable text.
const runSplit = "</w:t></w:r><w:r><w:t>"

const (
	loopOpen  = "{#payments}"
	loopClose = "{/payments}"
)

// RenderError wraps any failure inside template rendering. The caller
// treats it as opaque; generation is all-or-nothing.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render document: %v", e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// RenderDocx fills the DOCX template with the given data set and returns
// the rendered document bytes. Only the document body, headers and
// footers are touched; every other archive entry is copied through.
func RenderDocx(templateBytes []byte, data *Data) ([]byte, error) {
	zipReader, err := zip.NewReader(bytes.NewReader(templateBytes), int64(len(templateBytes)))
	if err != nil {
		return nil, &RenderError{Err: fmt.Errorf("read docx archive: %w", err)}
	}

	outputBuf := new(bytes.Buffer)
	zipWriter := zip.NewWriter(outputBuf)

	for _, file := range zipReader.File {
		fileWriter, err := zipWriter.Create(file.Name)
		if err != nil {
			return nil, &RenderError{Err: fmt.Errorf("create %s in archive: %w", file.Name, err)}
		}
		fileReader, err := file.Open()
		if err != nil {
			return nil, &RenderError{Err: fmt.Errorf("open %s in archive: %w", file.Name, err)}
		}

		if isTextPart(file.Name) {
			content, err := io.ReadAll(fileReader)
			fileReader.Close()
			if err != nil {
				return nil, &RenderError{Err: fmt.Errorf("read %s: %w", file.Name, err)}
			}
			rendered, err := renderPart(content, data)
			if err != nil {
				return nil, &RenderError{Err: fmt.Errorf("render %s: %w", file.Name, err)}
			}
			if _, err := fileWriter.Write(rendered); err != nil {
				return nil, &RenderError{Err: fmt.Errorf("write %s: %w", file.Name, err)}
			}
			continue
		}

		if _, err := io.Copy(fileWriter, fileReader); err != nil {
			fileReader.Close()
			return nil, &RenderError{Err: fmt.Errorf("copy %s: %w", file.Name, err)}
		}
		fileReader.Close()
	}

	if err := zipWriter.Close(); err != nil {
		return nil, &RenderError{Err: fmt.Errorf("close archive: %w", err)}
	}
	return outputBuf.Bytes(), nil
}

func isTextPart(name string) bool {
	return name == "word/document.xml" ||
		strings.HasPrefix(name, "word/header") ||
		strings.HasPrefix(name, "word/footer")
}

func renderPart(xmlContent []byte, data *Data) ([]byte, error) {
	merged := strings.ReplaceAll(string(xmlContent), runSplit, "")

	doc := etree.NewDocument()
	if err := doc.ReadFromString(merged); err != nil {
		return nil, fmt.Errorf("parse xml: %w", err)
	}

	expandPaymentRows(doc.Root(), data.Payments)
	replaceScalars(doc.Root(), data.Fields)

	return doc.WriteToBytes()
}

// expandPaymentRows locates table rows bracketed by {#payments}...{/payments}
// and clones the row once per installment, in installment order.
func expandPaymentRows(root *etree.Element, payments []map[string]string) {
	if root == nil {
		return
	}
	for _, row := range collectElements(root, "tr") {
		text := elementText(row)
		if !strings.Contains(text, loopOpen) {
			continue
		}
		parent := row.Parent()
		if parent == nil {
			continue
		}
		index := row.Index()
		for n, payment := range payments {
			clone := row.Copy()
			stripLoopTags(clone)
			replaceInTexts(clone, payment)
			parent.InsertChildAt(index+n, clone)
		}
		parent.RemoveChild(row)
	}
}

func replaceScalars(root *etree.Element, fields map[string]string) {
	if root == nil {
		return
	}
	replaceInTexts(root, fields)
}

// replaceInTexts substitutes {key} placeholders inside every text node
// under el. etree escapes the values on serialization.
func replaceInTexts(el *etree.Element, values map[string]string) {
	for _, t := range collectElements(el, "t") {
		text := t.Text()
		if !strings.Contains(text, "{") {
			continue
		}
		for key, val := range values {
			text = strings.ReplaceAll(text, "{"+key+"}", val)
		}
		t.SetText(text)
	}
}

func stripLoopTags(el *etree.Element) {
	for _, t := range collectElements(el, "t") {
		text := t.Text()
		if strings.Contains(text, loopOpen) || strings.Contains(text, loopClose) {
			text = strings.ReplaceAll(text, loopOpen, "")
			text = strings.ReplaceAll(text, loopClose, "")
			t.SetText(text)
		}
	}
}

// collectElements walks the subtree and returns every element with the
// given local tag name, in document order.
func collectElements(el *etree.Element, tag string) []*etree.Element {
	var found []*etree.Element
	var walk func(e *etree.Element)
	walk = func(e *etree.Element) {
		if e.Tag == tag {
			found = append(found, e)
		}
		for _, child := range e.ChildElements() {
			walk(child)
		}
	}
	walk(el)
	return found
}

func elementText(el *etree.Element) string {
	var sb strings.Builder
	for _, t := range collectElements(el, "t") {
		sb.WriteString(t.Text())
	}
	return sb.String()
}
