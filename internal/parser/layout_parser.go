package parser

import (
	"sort"
	"strings"

	"resume-extract-go/internal/config"
	"resume-extract-go/internal/types"
)

// LayoutParser 从位置片段重建阅读顺序
// 仅在转换结果携带片段（PDF）时使用；DOCX直接使用转换器的线性文本
type LayoutParser struct {
	cfg config.ParserConfig
}

// NewLayoutParser 创建版面解析器
func NewLayoutParser(cfg config.ParserConfig) *LayoutParser {
	return &LayoutParser{cfg: cfg}
}

// fragmentLine 同一视觉行上的片段集合
type fragmentLine struct {
	y     float64
	frags []types.PositionedFragment
}

// Reconstruct 将片段重建为有序文本行
// 行内按X升序；纵坐标相等按X排序；X也相等时保持提取顺序（稳定排序）
// 检测到双栏布局时先读完左栏再读右栏，避免两栏文本交错
func (p *LayoutParser) Reconstruct(fragments []types.PositionedFragment) []string {
	if len(fragments) == 0 {
		return nil
	}

	var lines []string
	for _, pageFrags := range splitByPage(fragments) {
		pageLines := p.groupIntoLines(pageFrags)
		pageLines = p.reorderColumns(pageLines)
		for _, ln := range pageLines {
			text := joinLine(ln.frags)
			if text != "" {
				lines = append(lines, text)
			}
		}
	}
	return lines
}

// splitByPage 按页拆分片段，页序升序，页内保持原始顺序
func splitByPage(fragments []types.PositionedFragment) [][]types.PositionedFragment {
	byPage := make(map[int][]types.PositionedFragment)
	maxPage := 0
	for _, f := range fragments {
		byPage[f.PageIndex] = append(byPage[f.PageIndex], f)
		if f.PageIndex > maxPage {
			maxPage = f.PageIndex
		}
	}

	var pages [][]types.PositionedFragment
	for i := 0; i <= maxPage; i++ {
		if frags, ok := byPage[i]; ok {
			pages = append(pages, frags)
		}
	}
	return pages
}

// groupIntoLines 按纵向邻近度把片段聚成行
// 纵坐标差在容差内的片段属于同一行
func (p *LayoutParser) groupIntoLines(fragments []types.PositionedFragment) []fragmentLine {
	sorted := make([]types.PositionedFragment, len(fragments))
	copy(sorted, fragments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Y < sorted[j].Y
	})

	var lines []fragmentLine
	for _, f := range sorted {
		if len(lines) > 0 && absF(f.Y-lines[len(lines)-1].y) <= p.cfg.LineToleranceY {
			last := &lines[len(lines)-1]
			last.frags = append(last.frags, f)
			continue
		}
		lines = append(lines, fragmentLine{y: f.Y, frags: []types.PositionedFragment{f}})
	}

	for i := range lines {
		sort.SliceStable(lines[i].frags, func(a, b int) bool {
			return lines[i].frags[a].X < lines[i].frags[b].X
		})
	}
	return lines
}

// reorderColumns 检测双栏布局并恢复先左栏后右栏的阅读顺序
// 判定条件：片段起始横坐标存在一条宽于阈值的纵向空带，且两侧行数都足够多
// 横跨空带的整宽行（如简历头部）视为分隔，按原位置输出
func (p *LayoutParser) reorderColumns(lines []fragmentLine) []fragmentLine {
	split, ok := p.findColumnSplit(lines)
	if !ok {
		return lines
	}

	const (
		sideLeft = iota
		sideRight
		sideFull
	)
	sideOf := func(ln fragmentLine) int {
		left, right := false, false
		for _, f := range ln.frags {
			if f.X < split {
				left = true
			} else {
				right = true
			}
		}
		switch {
		case left && right:
			return sideFull
		case right:
			return sideRight
		default:
			return sideLeft
		}
	}

	var out []fragmentLine
	var runLeft, runRight []fragmentLine
	flushRun := func() {
		out = append(out, runLeft...)
		out = append(out, runRight...)
		runLeft, runRight = nil, nil
	}

	for _, ln := range lines {
		switch sideOf(ln) {
		case sideFull:
			flushRun()
			out = append(out, ln)
		case sideLeft:
			runLeft = append(runLeft, ln)
		case sideRight:
			runRight = append(runRight, ln)
		}
	}
	flushRun()
	return out
}

// findColumnSplit 寻找分栏的横坐标
// 取片段起始X排序后最大的相邻间隙，宽度达到阈值且两侧行数达标才认定为分栏
func (p *LayoutParser) findColumnSplit(lines []fragmentLine) (float64, bool) {
	var xs []float64
	for _, ln := range lines {
		for _, f := range ln.frags {
			xs = append(xs, f.X)
		}
	}
	if len(xs) < 2 {
		return 0, false
	}
	sort.Float64s(xs)

	var gapStart, gapWidth float64
	for i := 1; i < len(xs); i++ {
		if g := xs[i] - xs[i-1]; g > gapWidth {
			gapWidth = g
			gapStart = xs[i-1]
		}
	}
	if gapWidth < p.cfg.ColumnGapThreshold {
		return 0, false
	}
	split := gapStart + gapWidth/2

	leftLines, rightLines := 0, 0
	for _, ln := range lines {
		allLeft, allRight := true, true
		for _, f := range ln.frags {
			if f.X < split {
				allRight = false
			} else {
				allLeft = false
			}
		}
		if allLeft {
			leftLines++
		}
		if allRight {
			rightLines++
		}
	}
	if leftLines < p.cfg.MinColumnLines || rightLines < p.cfg.MinColumnLines {
		return 0, false
	}
	return split, true
}

// joinLine 拼接一行内的片段文本
// 片段本身已在转换阶段按词归并，这里以单个空格连接
func joinLine(frags []types.PositionedFragment) string {
	var parts []string
	for _, f := range frags {
		t := strings.TrimSpace(f.Text)
		if t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}
