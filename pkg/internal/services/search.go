package services

import (
	"strings"

	"github.com/unilink-app/timeline/pkg/internal/models"

	"github.com/samber/lo"
)

// NormalizeKana folds katakana into hiragana so that a probe written in
// either syllabary matches content written in the other. Other runes pass
// through untouched.
func NormalizeKana(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'ァ' && r <= 'ヶ' {
			return r - ('ァ' - 'ぁ')
		}
		return r
	}, s)
}

// SplitSearchTerms breaks a free-text probe on ASCII and ideographic
// spaces, dropping blanks.
func SplitSearchTerms(probe string) []string {
	terms := strings.FieldsFunc(probe, func(r rune) bool {
		return r == ' ' || r == '　'
	})
	return lo.Filter(terms, func(term string, index int) bool {
		return len(strings.TrimSpace(term)) > 0
	})
}

// MatchesAllTerms reports whether the content contains every term, either
// literally or after kana folding of both sides.
func MatchesAllTerms(content string, terms []string) bool {
	folded := NormalizeKana(content)
	for _, term := range terms {
		if !strings.Contains(content, term) && !strings.Contains(folded, NormalizeKana(term)) {
			return false
		}
	}
	return true
}

// SearchPosts filters an already loaded recency-ordered window down to the
// posts matching every term of the probe.
func SearchPosts(items []*models.Post, probe string) []*models.Post {
	terms := SplitSearchTerms(probe)
	if len(terms) == 0 {
		return items
	}
	return lo.Filter(items, func(item *models.Post, index int) bool {
		return MatchesAllTerms(item.Content, terms)
	})
}
