package importer

import (
	"regexp"
	"strings"
)

var (
	orgLinkPattern     = regexp.MustCompile(`\[\[([^\]]+)\](?:\[([^\]]+)\])?\]`)
	orgHeadingPattern  = regexp.MustCompile(`^(\*{3,})\s+(.*)$`)
	orgBulletPattern   = regexp.MustCompile(`^(\s*)• `)
	orgCodePattern     = regexp.MustCompile(`(^|[\s(])~([^~\s](?:[^~]*[^~\s])?)~`)
	orgVerbatimPattern = regexp.MustCompile(`(^|[\s(])=([^=\s](?:[^=]*[^=\s])?)=`)
	orgBoldPattern     = regexp.MustCompile(`(^|[\s(])\*([^*\s](?:[^*]*[^*\s])?)\*`)
	orgItalicPattern   = regexp.MustCompile(`(^|[\s(])/([^/\s](?:[^/]*[^/\s])?)/`)
	orgStrikePattern   = regexp.MustCompile(`(^|[\s(])\+([^+\s](?:[^+]*[^+\s])?)\+`)
)

// convertOrgToMarkdown converts an org entry body to markdown. Source and
// quote blocks become fences and "> " lines, headings below the entry level
// become markdown headings, and inline markup is rewritten outside links.
func convertOrgToMarkdown(lines []string) string {
	out := make([]string, 0, len(lines))
	inSource := false
	inQuote := false
	quoteIndent := ""

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		upper := strings.ToUpper(trimmed)
		indent := leadingSpace(line)

		switch {
		case strings.HasPrefix(upper, "#+BEGIN_SRC"):
			inSource = true
			out = append(out, indent+"```"+strings.TrimSpace(trimmed[len("#+BEGIN_SRC"):]))
			continue
		case upper == "#+END_SRC":
			inSource = false
			out = append(out, indent+"```")
			continue
		case inSource:
			out = append(out, line)
			continue
		case strings.HasPrefix(upper, "#+BEGIN_QUOTE"):
			inQuote = true
			quoteIndent = indent
			continue
		case upper == "#+END_QUOTE":
			inQuote = false
			continue
		}

		converted := line
		if match := orgHeadingPattern.FindStringSubmatch(trimmed); match != nil {
			level := len(match[1]) - 2
			converted = strings.Repeat("#", level) + " " + convertOrgInline(match[2])
		} else {
			converted = orgBulletPattern.ReplaceAllString(converted, "$1- ")
			converted = convertOrgInline(converted)
		}

		if inQuote {
			if strings.TrimSpace(converted) == "" {
				converted = quoteIndent + ">"
			} else {
				converted = quoteIndent + "> " + strings.TrimPrefix(converted, quoteIndent)
			}
		}
		out = append(out, converted)
	}

	return strings.TrimSpace(strings.Join(out, "\n"))
}

func leadingSpace(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}

// convertOrgInline rewrites inline markup, leaving link targets untouched.
func convertOrgInline(line string) string {
	var b strings.Builder
	last := 0
	for _, loc := range orgLinkPattern.FindAllStringSubmatchIndex(line, -1) {
		b.WriteString(convertOrgEmphasis(line[last:loc[0]]))
		target := line[loc[2]:loc[3]]
		if loc[4] >= 0 {
			b.WriteString("[" + convertOrgEmphasis(line[loc[4]:loc[5]]) + "](" + target + ")")
		} else {
			b.WriteString("<" + target + ">")
		}
		last = loc[1]
	}
	b.WriteString(convertOrgEmphasis(line[last:]))
	return b.String()
}

func convertOrgEmphasis(text string) string {
	text = orgCodePattern.ReplaceAllString(text, "$1`$2`")
	text = orgVerbatimPattern.ReplaceAllString(text, "$1`$2`")
	text = orgBoldPattern.ReplaceAllString(text, "$1**$2**")
	text = orgItalicPattern.ReplaceAllString(text, "$1*$2*")
	text = orgStrikePattern.ReplaceAllString(text, "$1~~$2~~")
	return text
}
