package output

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

var markdownParser = goldmark.New(goldmark.WithExtensions(extension.Strikethrough)).Parser()

// orgLine is one converted line. Headings are kept apart because org only
// recognises them at column zero.
type orgLine struct {
	text    string
	heading bool
}

type orgConverter struct {
	source     []byte
	baseLevel  int
	quoteDepth int
	lines      []orgLine
}

// markdownToOrg converts a markdown body into org lines. Markdown headings are
// nested below baseLevel.
func markdownToOrg(source []byte, baseLevel int) []orgLine {
	if strings.TrimSpace(string(source)) == "" {
		return nil
	}

	doc := markdownParser.Parse(text.NewReader(source))
	c := &orgConverter{source: source, baseLevel: baseLevel}
	c.blocks(doc, "")
	c.trimBlank()
	return c.lines
}

func (c *orgConverter) emit(prefix, value string) {
	for _, line := range strings.Split(value, "\n") {
		c.lines = append(c.lines, orgLine{text: strings.TrimRight(prefix+line, " ")})
	}
}

func (c *orgConverter) blank() {
	if len(c.lines) == 0 || c.lines[len(c.lines)-1].text == "" {
		return
	}
	c.lines = append(c.lines, orgLine{})
}

func (c *orgConverter) blocks(parent ast.Node, prefix string) {
	for node := parent.FirstChild(); node != nil; node = node.NextSibling() {
		c.block(node, prefix)
	}
}

// separate ends a top-level block with a blank line. Blocks nested in list
// items stay compact.
func (c *orgConverter) separate(prefix string) {
	if prefix == "" {
		c.blank()
	}
}

func (c *orgConverter) block(node ast.Node, prefix string) {
	switch n := node.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		c.emit(prefix, c.inline(n))
		c.separate(prefix)
	case *ast.Heading:
		title := c.inline(n)
		switch {
		case prefix == "" && c.quoteDepth == 0:
			stars := strings.Repeat("*", n.Level+c.baseLevel)
			c.lines = append(c.lines, orgLine{text: stars + " " + title, heading: true})
		case title != "":
			// A starred line here would close the enclosing block.
			c.emit(prefix, "*"+title+"*")
		}
		c.separate(prefix)
	case *ast.List:
		c.list(n, prefix, 0)
		c.separate(prefix)
	case *ast.Blockquote:
		c.emit(prefix, "#+BEGIN_QUOTE")
		c.quoteDepth++
		c.blocks(n, prefix)
		c.quoteDepth--
		c.trimBlank()
		c.emit(prefix, "#+END_QUOTE")
		c.separate(prefix)
	case *ast.FencedCodeBlock:
		c.emit(prefix, strings.TrimSpace("#+BEGIN_SRC "+string(n.Language(c.source))))
		c.raw(n, prefix)
		c.emit(prefix, "#+END_SRC")
		c.separate(prefix)
	case *ast.CodeBlock:
		c.emit(prefix, "#+BEGIN_SRC")
		c.raw(n, prefix)
		c.emit(prefix, "#+END_SRC")
		c.separate(prefix)
	case *ast.HTMLBlock:
		c.raw(n, prefix)
		c.separate(prefix)
	case *ast.ThematicBreak:
		c.emit(prefix, "-----")
		c.separate(prefix)
	default:
		c.blocks(n, prefix)
	}
}

func (c *orgConverter) list(list *ast.List, prefix string, depth int) {
	number := list.Start
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		marker := "• "
		if list.IsOrdered() {
			marker = strconv.Itoa(number) + ". "
			number++
		}
		indent := prefix + strings.Repeat("  ", depth)
		content := indent + strings.Repeat(" ", len([]rune(marker)))

		first := true
		for child := item.FirstChild(); child != nil; child = child.NextSibling() {
			switch n := child.(type) {
			case *ast.Paragraph, *ast.TextBlock:
				body := c.inline(n)
				if first {
					lines := strings.Split(body, "\n")
					c.emit(indent, marker+lines[0])
					if len(lines) > 1 {
						c.emit(content, strings.Join(lines[1:], "\n"))
					}
				} else {
					c.emit(content, body)
				}
			case *ast.List:
				if first {
					c.emit(indent, strings.TrimSpace(marker))
				}
				c.list(n, prefix, depth+1)
			default:
				if first {
					c.emit(indent, strings.TrimSpace(marker))
				}
				c.block(n, content)
			}
			first = false
		}
		if item.FirstChild() == nil {
			c.emit(indent, strings.TrimSpace(marker))
		}
	}
}

func (c *orgConverter) raw(node ast.Node, prefix string) {
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		c.emit(prefix, strings.TrimRight(string(segment.Value(c.source)), "\n"))
	}
}

func (c *orgConverter) trimBlank() {
	for len(c.lines) > 0 && c.lines[len(c.lines)-1].text == "" {
		c.lines = c.lines[:len(c.lines)-1]
	}
}

func (c *orgConverter) inline(parent ast.Node) string {
	var b strings.Builder
	for node := parent.FirstChild(); node != nil; node = node.NextSibling() {
		switch n := node.(type) {
		case *ast.Text:
			b.Write(n.Segment.Value(c.source))
			if n.SoftLineBreak() || n.HardLineBreak() {
				b.WriteByte('\n')
			}
		case *ast.String:
			b.Write(n.Value)
		case *ast.Emphasis:
			mark := "/"
			if n.Level >= 2 {
				mark = "*"
			}
			b.WriteString(mark + c.inline(n) + mark)
		case *east.Strikethrough:
			b.WriteString("+" + c.inline(n) + "+")
		case *ast.CodeSpan:
			b.WriteString("~" + c.inline(n) + "~")
		case *ast.Link:
			b.WriteString("[[" + string(n.Destination) + "][" + c.inline(n) + "]]")
		case *ast.AutoLink:
			b.WriteString("[[" + string(n.URL(c.source)) + "]]")
		case *ast.Image:
			b.WriteString("[[" + string(n.Destination) + "]]")
		case *ast.RawHTML:
			for i := 0; i < n.Segments.Len(); i++ {
				segment := n.Segments.At(i)
				b.Write(segment.Value(c.source))
			}
		default:
			b.WriteString(c.inline(n))
		}
	}
	return b.String()
}
