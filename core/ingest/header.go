package ingest

import (
	"regexp"
	"strconv"
	"strings"
)

// chapterHeader matches blocks like "旧约创世记(Genesis)第1章": an
// optional testament marker, the source-script book name, the
// parenthesized English name, and the chapter number after the 第…章
// marker. Full-width parentheses appear in some exports.
var chapterHeader = regexp.MustCompile(`(?:旧约|新约)?[\s-]*([^(（]+)[（(]([^)）]+)[)）][\s-]*第\s*(\d+)\s*章`)

// ChapterContext is the chapter heading state carried across blocks
// and fragment boundaries. A chapter's verses may span several
// consecutive fragments with no repeated header.
type ChapterContext struct {
	// Name is the source-script book name from the header.
	Name string
	// NameEn is the parenthesized English book name.
	NameEn string
	// Chapter is the chapter number from the header.
	Chapter int
}

// ParseChapterHeader recognizes a chapter-header block. It returns the
// new chapter context and true, or the zero context and false when the
// block is not a header.
func ParseChapterHeader(block string) (ChapterContext, bool) {
	m := chapterHeader.FindStringSubmatch(block)
	if m == nil {
		return ChapterContext{}, false
	}
	chapter, err := strconv.Atoi(m[3])
	if err != nil || chapter <= 0 {
		return ChapterContext{}, false
	}
	return ChapterContext{
		Name:    strings.TrimSpace(m[1]),
		NameEn:  strings.TrimSpace(m[2]),
		Chapter: chapter,
	}, true
}
