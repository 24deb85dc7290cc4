package mailer

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// DefaultButtonStyle is inlined on button links; most mail clients drop
// <style> blocks and CSS classes.
const DefaultButtonStyle = "display:inline-block;padding:12px 24px;background:#2563eb;color:#ffffff;text-decoration:none;border-radius:6px;font-weight:600"

// buttonPrefix is the syntax prefix that triggers button parsing.
const buttonPrefix = "[!button|"

// KindButton is the node kind for ButtonNode.
var KindButton = ast.NewNodeKind("Button")

// ButtonNode is a call-to-action link: [!button|Label](URL).
type ButtonNode struct {
	ast.BaseInline
	URL   []byte
	Label []byte
}

func (n *ButtonNode) Kind() ast.NodeKind {
	return KindButton
}

func (n *ButtonNode) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"URL":   string(n.URL),
		"Label": string(n.Label),
	}, nil)
}

type buttonParser struct{}

// NewButtonParser creates the inline parser for button syntax.
func NewButtonParser() parser.InlineParser {
	return &buttonParser{}
}

func (p *buttonParser) Trigger() []byte {
	return []byte{'['}
}

func (p *buttonParser) Parse(_ ast.Node, block text.Reader, _ parser.Context) ast.Node {
	line, _ := block.PeekLine()
	if !bytes.HasPrefix(line, []byte(buttonPrefix)) {
		return nil
	}

	rest := line[len(buttonPrefix):]
	label, afterLabel, ok := bytes.Cut(rest, []byte("]"))
	if !ok || !bytes.HasPrefix(afterLabel, []byte("(")) {
		return nil
	}

	url, _, ok := bytes.Cut(afterLabel[1:], []byte(")"))
	if !ok {
		return nil
	}

	consumed := len(buttonPrefix) + len(label) + len("](") + len(url) + len(")")
	block.Advance(consumed)

	return &ButtonNode{URL: url, Label: label}
}

type buttonRenderer struct {
	html.Config
	style string
}

// NewButtonRenderer creates the HTML renderer for ButtonNode.
// An empty style uses DefaultButtonStyle.
func NewButtonRenderer(style string, opts ...html.Option) renderer.NodeRenderer {
	if style == "" {
		style = DefaultButtonStyle
	}
	r := &buttonRenderer{Config: html.NewConfig(), style: style}
	for _, opt := range opts {
		opt.SetHTMLOption(&r.Config)
	}
	return r
}

func (r *buttonRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindButton, r.renderButton)
}

func (r *buttonRenderer) renderButton(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	n := node.(*ButtonNode)
	_, _ = w.WriteString(`<a href="`)
	_, _ = w.Write(util.EscapeHTML(util.URLEscape(n.URL, false)))
	_, _ = w.WriteString(`" class="btn" style="`)
	_, _ = w.Write(util.EscapeHTML([]byte(r.style)))
	_, _ = w.WriteString(`">`)
	_, _ = w.Write(util.EscapeHTML(n.Label))
	_, _ = w.WriteString(`</a>`)

	return ast.WalkContinue, nil
}

type buttonExtension struct {
	style string
}

// NewButtonExtension creates the goldmark extension for button links.
func NewButtonExtension(style string) goldmark.Extender {
	return &buttonExtension{style: style}
}

func (e *buttonExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(NewButtonParser(), 50),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(NewButtonRenderer(e.style), 50),
	))
}
