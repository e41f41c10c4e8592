package services

import (
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// MarkdownRule identifies one substitution step of the cleanup pipeline.
type MarkdownRule int

const (
	RuleHeadings MarkdownRule = iota
	RuleBold
	RuleItalic
	RuleCodeBlocks
	RuleInlineCode
	RuleListMarkers
	RuleNumberedLists
	RuleCollapseNewlines
	RuleResidue
	RuleBacktickResidue
)

// ruleOrder is the canonical application order. Order matters: fences must be
// unwrapped before inline code, list markers rewritten before the residue pass.
var ruleOrder = []MarkdownRule{
	RuleHeadings,
	RuleBold,
	RuleItalic,
	RuleCodeBlocks,
	RuleInlineCode,
	RuleListMarkers,
	RuleNumberedLists,
	RuleCollapseNewlines,
	RuleResidue,
	RuleBacktickResidue,
}

var (
	headingRE    = regexp.MustCompile(`(?m)^#{1,6}\s`)
	boldRE       = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicRE     = regexp.MustCompile(`\*(.*?)\*`)
	fenceRE      = regexp.MustCompile("(?s)```\\w*\\n(.*?)\\n```")
	inlineCodeRE = regexp.MustCompile("`([^`]+)`")
	// leading whitespace is horizontal only, so markers on a line after a
	// blank line do not swallow the paragraph break
	bulletRE   = regexp.MustCompile(`(?m)^[ \t]*[-*+]\s`)
	numberedRE = regexp.MustCompile(`(?m)^[ \t]*\d+\.\s`)
	newlinesRE = regexp.MustCompile(`\n{3,}`)
	residueRE  = regexp.MustCompile(`[_~]`)
	backtickRE = regexp.MustCompile("[_~`]")
)

// MarkdownNormalizer strips markdown syntax from text via a fixed, ordered
// sequence of substitutions. It is intentionally not a markdown parser: the
// observable output shape is defined by the substitution order alone.
type MarkdownNormalizer struct {
	enabled map[MarkdownRule]bool
	logger  *zap.Logger
}

// NewMarkdownNormalizer erstellt einen Normalizer mit den angegebenen Regeln.
func NewMarkdownNormalizer(logger *zap.Logger, rules ...MarkdownRule) *MarkdownNormalizer {
	enabled := make(map[MarkdownRule]bool, len(rules))
	for _, r := range rules {
		enabled[r] = true
	}
	return &MarkdownNormalizer{enabled: enabled, logger: logger}
}

// NewContentNormalizer returns the variant used for article bodies: it keeps
// stray backticks (code samples in articles stay verbatim).
func NewContentNormalizer(logger *zap.Logger) *MarkdownNormalizer {
	return NewMarkdownNormalizer(logger,
		RuleHeadings, RuleBold, RuleItalic, RuleCodeBlocks, RuleInlineCode,
		RuleListMarkers, RuleNumberedLists, RuleCollapseNewlines, RuleResidue)
}

// NewResponseNormalizer returns the variant used for AI replies: the superset
// that additionally strips stray backticks as formatting residue.
func NewResponseNormalizer(logger *zap.Logger) *MarkdownNormalizer {
	return NewMarkdownNormalizer(logger,
		RuleHeadings, RuleBold, RuleItalic, RuleCodeBlocks, RuleInlineCode,
		RuleListMarkers, RuleNumberedLists, RuleCollapseNewlines, RuleResidue,
		RuleBacktickResidue)
}

// Clean wendet alle aktivierten Regeln in kanonischer Reihenfolge an und
// trimmt das Ergebnis. Leerer Input ergibt einen leeren String.
func (n *MarkdownNormalizer) Clean(text string) string {
	if text == "" {
		return ""
	}
	for _, rule := range ruleOrder {
		if !n.enabled[rule] {
			continue
		}
		text = applyRule(rule, text)
	}
	return strings.TrimSpace(text)
}

func applyRule(rule MarkdownRule, text string) string {
	switch rule {
	case RuleHeadings:
		return headingRE.ReplaceAllString(text, "")
	case RuleBold:
		return boldRE.ReplaceAllString(text, "$1")
	case RuleItalic:
		return italicRE.ReplaceAllString(text, "$1")
	case RuleCodeBlocks:
		return fenceRE.ReplaceAllString(text, "$1")
	case RuleInlineCode:
		return inlineCodeRE.ReplaceAllString(text, "$1")
	case RuleListMarkers:
		return bulletRE.ReplaceAllString(text, "• ")
	case RuleNumberedLists:
		return numberedRE.ReplaceAllString(text, "• ")
	case RuleCollapseNewlines:
		return newlinesRE.ReplaceAllString(text, "\n\n")
	case RuleResidue:
		return residueRE.ReplaceAllString(text, "")
	case RuleBacktickResidue:
		return backtickRE.ReplaceAllString(text, "")
	}
	return text
}
