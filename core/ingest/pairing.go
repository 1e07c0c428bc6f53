package ingest

import (
	"regexp"
	"strconv"
	"strings"
)

// versePattern matches a source-language verse block: chapter:verse
// followed by the verse text.
var versePattern = regexp.MustCompile(`^(\d+):(\d+)\s*(.+)$`)

// asciiThreshold is the fraction of 7-bit runes above which a block is
// classified as translation text rather than source-script text.
const asciiThreshold = 0.8

// PairState names the two states of the verse-pairing machine.
type PairState int

const (
	// AwaitingVerse means no source verse is pending; only a block
	// matching the verse pattern advances the machine.
	AwaitingVerse PairState = iota
	// AwaitingTranslation means a source verse is pending and the next
	// block decides its fate.
	AwaitingTranslation
)

// PendingVerse is a half-parsed verse: the source text captured, the
// translation still outstanding.
type PendingVerse struct {
	Chapter int
	Verse   int
	Text    string
}

// PairedVerse is one completed verse with both halves matched.
type PairedVerse struct {
	Chapter int
	Verse   int
	Text    string
	TextEn  string
}

// Pairer is the two-phase state machine that pairs source-script verse
// blocks with their translation blocks. The zero value is ready to use
// and starts in AwaitingVerse.
type Pairer struct {
	state   PairState
	pending PendingVerse
}

// State returns the current machine state.
func (p *Pairer) State() PairState {
	return p.state
}

// Reset discards any pending half-parsed verse and returns to
// AwaitingVerse. Called on every chapter break.
func (p *Pairer) Reset() {
	p.state = AwaitingVerse
	p.pending = PendingVerse{}
}

// Step feeds one block to the machine. It returns a completed verse
// and true when the block pairs with the pending source verse.
//
// Transitions:
//   - AwaitingVerse: a verse-pattern block becomes the pending verse;
//     anything else is ignored.
//   - AwaitingTranslation: a translation-classified block completes the
//     pending verse; a new verse-pattern block replaces the pending
//     verse, dropping the old one; any other block drops the pending
//     verse and returns the machine to AwaitingVerse.
func (p *Pairer) Step(block string) (PairedVerse, bool) {
	if v, ok := parseVerseBlock(block); ok {
		// A pending verse that never found its translation is dropped here.
		p.pending = v
		p.state = AwaitingTranslation
		return PairedVerse{}, false
	}

	if p.state == AwaitingTranslation && isTranslation(block) {
		paired := PairedVerse{
			Chapter: p.pending.Chapter,
			Verse:   p.pending.Verse,
			Text:    p.pending.Text,
			TextEn:  block,
		}
		p.Reset()
		return paired, true
	}

	// Stray markup or prose in the wrong script: drop any pending verse.
	p.Reset()
	return PairedVerse{}, false
}

// parseVerseBlock matches a "<chapter>:<verse> text" block.
func parseVerseBlock(block string) (PendingVerse, bool) {
	m := versePattern.FindStringSubmatch(block)
	if m == nil {
		return PendingVerse{}, false
	}
	chapter, err := strconv.Atoi(m[1])
	if err != nil || chapter <= 0 {
		return PendingVerse{}, false
	}
	verse, err := strconv.Atoi(m[2])
	if err != nil || verse <= 0 {
		return PendingVerse{}, false
	}
	return PendingVerse{
		Chapter: chapter,
		Verse:   verse,
		Text:    strings.TrimSpace(m[3]),
	}, true
}

// isTranslation classifies a block by script ratio: the fraction of
// runes in the 7-bit range must exceed asciiThreshold.
func isTranslation(block string) bool {
	runes := []rune(block)
	if len(runes) == 0 {
		return false
	}
	ascii := 0
	for _, r := range runes {
		if r <= 0x7F {
			ascii++
		}
	}
	return float64(ascii)/float64(len(runes)) > asciiThreshold
}
