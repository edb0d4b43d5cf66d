package parser

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-extract-go/internal/constants"
)

// buildDOCX 在内存中构造一个最小可解析的DOCX文件
func buildDOCX(t *testing.T, documentXML string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// docxParagraphsXML 把文本行包装为DOCX段落结构
func docxParagraphsXML(paragraphs ...string) string {
	var body string
	for _, p := range paragraphs {
		body += "<w:p><w:r><w:t>" + p + "</w:t></w:r></w:p>"
	}
	return `<?xml version="1.0" encoding="UTF-8"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>` + body + `</w:body></w:document>`
}

// TestConvertUnsupportedMIME 未知MIME类型返回对应的基础错误
func TestConvertUnsupportedMIME(t *testing.T) {
	_, err := Convert([]byte("hello"), "text/plain")
	assert.ErrorIs(t, err, ErrUnsupportedMIME)
}

// TestConvertDOCX 按段落顺序提取DOCX文本，不产出位置片段
func TestConvertDOCX(t *testing.T) {
	data := buildDOCX(t, docxParagraphsXML("Matthew Domingo", "mgdomingo@wisc.edu", "Education"))

	result, err := Convert(data, constants.MimeDOCX)
	require.NoError(t, err)

	lines := CleanLines(result.Text)
	assert.Equal(t, []string{"Matthew Domingo", "mgdomingo@wisc.edu", "Education"}, lines)
	assert.Nil(t, result.Fragments)
}

// TestConvertDOCXLineBreaks 段内换行与制表符正确展开
func TestConvertDOCXLineBreaks(t *testing.T) {
	xml := `<?xml version="1.0"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		`<w:p><w:r><w:t>first</w:t><w:br/><w:t>second</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>left</w:t><w:tab/><w:t>right</w:t></w:r></w:p>` +
		`</w:body></w:document>`
	data := buildDOCX(t, xml)

	result, err := Convert(data, constants.MimeDOCX)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "left right"}, CleanLines(result.Text))
}

// TestConvertDOCXCorruptBytes 非zip字节流映射为解析错误
func TestConvertDOCXCorruptBytes(t *testing.T) {
	_, err := Convert([]byte("definitely not a zip archive"), constants.MimeDOCX)
	assert.ErrorIs(t, err, ErrUnparsableDocument)
}

// TestConvertDOCXMissingDocumentXML zip包中缺少正文部件时报解析错误
func TestConvertDOCXMissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<styles/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, convErr := Convert(buf.Bytes(), constants.MimeDOCX)
	assert.ErrorIs(t, convErr, ErrUnparsableDocument)
}

// TestConvertPDFCorruptBytes 畸形PDF字节流映射为解析错误而不是panic
func TestConvertPDFCorruptBytes(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"空字节流", nil},
		{"纯文本", []byte("this is not a pdf at all")},
		{"截断的PDF头", []byte("%PDF-1.7\ngarbage garbage")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Convert(tt.data, constants.MimePDF)
			assert.ErrorIs(t, err, ErrUnparsableDocument)
		})
	}
}
