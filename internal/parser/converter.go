package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"resume-extract-go/internal/constants"
	"resume-extract-go/internal/types"
)

// 转换层基础错误，由上层处理器映射为对外错误类型
var (
	// ErrUnsupportedMIME 不支持的文档格式
	ErrUnsupportedMIME = errors.New("不支持的文档格式")
	// ErrUnparsableDocument 字节流无法被对应格式的读取器解析
	ErrUnparsableDocument = errors.New("文档内容无法解析")
)

// pageYOffset 每页的全局纵坐标偏移
// 远大于任何常规页高，保证跨页片段整体有序
const pageYOffset = 10000.0

// glyphGapFactor 相邻字形归并为同一片段的最大横向间隙（相对字号）
// 间隙超过该比例视为词间空隙，切分为新片段
const glyphGapFactor = 0.25

// Convert 将原始文档字节转换为纯文本与可选的位置片段
// PDF产出位置片段供版面重建使用；DOCX只有段落顺序文本，Fragments为nil
// 纯转换，无副作用
func Convert(data []byte, mimeType string) (*types.ConversionResult, error) {
	switch mimeType {
	case constants.MimePDF:
		return convertPDF(data)
	case constants.MimeDOCX:
		return convertDOCX(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMIME, mimeType)
	}
}

// convertPDF 解析PDF字节流，提取位置片段与线性文本后备
func convertPDF(data []byte) (result *types.ConversionResult, err error) {
	// 底层PDF读取器对畸形文件会panic，统一兜底为解析错误
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("%w: %v", ErrUnparsableDocument, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparsableDocument, err)
	}

	var fragments []types.PositionedFragment
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		fragments = append(fragments, pageFragments(page, pageNum-1)...)
	}

	text := plainTextFallback(reader)
	if text == "" && len(fragments) > 0 {
		// 个别文档的内容流可提取但文本层导出为空，用片段拼出后备文本
		var sb strings.Builder
		for _, f := range fragments {
			sb.WriteString(f.Text)
			sb.WriteString("\n")
		}
		text = sb.String()
	}

	return &types.ConversionResult{Text: text, Fragments: fragments}, nil
}

// pageFragments 提取单页的文本片段
// 内容流中的字形按出现顺序归并：同一基线且间隙小于词距的连续字形合为一个片段
func pageFragments(page pdf.Page, pageIndex int) []types.PositionedFragment {
	content := page.Content()
	if len(content.Text) == 0 {
		return nil
	}

	var fragments []types.PositionedFragment
	var cur *types.PositionedFragment
	var curEndX float64

	flush := func() {
		if cur != nil && strings.TrimSpace(cur.Text) != "" {
			fragments = append(fragments, *cur)
		}
		cur = nil
	}

	for _, t := range content.Text {
		// PDF坐标系原点在左下，翻转为"越靠下Y越大"的阅读坐标
		y := pageYOffset*float64(pageIndex) - t.Y

		gap := glyphGapFactor * t.FontSize
		if gap < 1.0 {
			gap = 1.0
		}

		sameRun := cur != nil &&
			absF(y-cur.Y) < 0.5 &&
			t.X >= curEndX-0.5 &&
			t.X-curEndX <= gap

		if sameRun {
			cur.Text += t.S
			curEndX = t.X + t.W
			continue
		}

		flush()
		cur = &types.PositionedFragment{
			Text:      t.S,
			X:         t.X,
			Y:         y,
			PageIndex: pageIndex,
			FontSize:  t.FontSize,
		}
		curEndX = t.X + t.W
	}
	flush()

	return fragments
}

// plainTextFallback 提取PDF的线性全文，失败时返回空串而不是报错
func plainTextFallback(reader *pdf.Reader) (text string) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
		}
	}()

	tr, err := reader.GetPlainText()
	if err != nil {
		return ""
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(tr); err != nil {
		return ""
	}
	return buf.String()
}

// convertDOCX 解析DOCX字节流，按段落顺序提取文本
// DOCX是zip包，正文在 word/document.xml 的 w:p/w:r/w:t 结构中
func convertDOCX(data []byte) (*types.ConversionResult, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparsableDocument, err)
	}

	var docFile *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return nil, fmt.Errorf("%w: 缺少 word/document.xml", ErrUnparsableDocument)
	}

	rc, err := docFile.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparsableDocument, err)
	}
	defer rc.Close()

	text, err := docxParagraphText(rc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparsableDocument, err)
	}

	return &types.ConversionResult{Text: text, Fragments: nil}, nil
}

// docxParagraphText 流式遍历document.xml，段落之间以换行分隔
func docxParagraphText(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)

	var sb strings.Builder
	var inText bool

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "t":
				inText = true
			case "tab":
				sb.WriteString("\t")
			case "br":
				sb.WriteString("\n")
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				sb.Write(el)
			}
		}
	}

	return sb.String(), nil
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
