package corpus

// canonIDs lists the 66 canonical book identifiers in traditional
// Protestant canon order. This is the complete universe of valid book
// IDs; the ingestion pipeline drops anything that does not resolve to
// one of these.
var canonIDs = []string{
	// Old Testament
	"genesis", "exodus", "leviticus", "numbers", "deuteronomy",
	"joshua", "judges", "ruth", "1samuel", "2samuel",
	"1kings", "2kings", "1chronicles", "2chronicles", "ezra",
	"nehemiah", "esther", "job", "psalms", "proverbs",
	"ecclesiastes", "songofsolomon", "isaiah", "jeremiah", "lamentations",
	"ezekiel", "daniel", "hosea", "joel", "amos",
	"obadiah", "jonah", "micah", "nahum", "habakkuk",
	"zephaniah", "haggai", "zechariah", "malachi",
	// New Testament
	"matthew", "mark", "luke", "john", "acts",
	"romans", "1corinthians", "2corinthians", "galatians", "ephesians",
	"philippians", "colossians", "1thessalonians", "2thessalonians", "1timothy",
	"2timothy", "titus", "philemon", "hebrews", "james",
	"1peter", "2peter", "1john", "2john", "3john",
	"jude", "revelation",
}

// englishNames maps canonical IDs to their English display names.
var englishNames = map[string]string{
	"genesis": "Genesis", "exodus": "Exodus", "leviticus": "Leviticus",
	"numbers": "Numbers", "deuteronomy": "Deuteronomy", "joshua": "Joshua",
	"judges": "Judges", "ruth": "Ruth", "1samuel": "1 Samuel",
	"2samuel": "2 Samuel", "1kings": "1 Kings", "2kings": "2 Kings",
	"1chronicles": "1 Chronicles", "2chronicles": "2 Chronicles",
	"ezra": "Ezra", "nehemiah": "Nehemiah", "esther": "Esther",
	"job": "Job", "psalms": "Psalms", "proverbs": "Proverbs",
	"ecclesiastes": "Ecclesiastes", "songofsolomon": "Song of Solomon",
	"isaiah": "Isaiah", "jeremiah": "Jeremiah", "lamentations": "Lamentations",
	"ezekiel": "Ezekiel", "daniel": "Daniel", "hosea": "Hosea",
	"joel": "Joel", "amos": "Amos", "obadiah": "Obadiah",
	"jonah": "Jonah", "micah": "Micah", "nahum": "Nahum",
	"habakkuk": "Habakkuk", "zephaniah": "Zephaniah", "haggai": "Haggai",
	"zechariah": "Zechariah", "malachi": "Malachi", "matthew": "Matthew",
	"mark": "Mark", "luke": "Luke", "john": "John",
	"acts": "Acts", "romans": "Romans", "1corinthians": "1 Corinthians",
	"2corinthians": "2 Corinthians", "galatians": "Galatians",
	"ephesians": "Ephesians", "philippians": "Philippians",
	"colossians": "Colossians", "1thessalonians": "1 Thessalonians",
	"2thessalonians": "2 Thessalonians", "1timothy": "1 Timothy",
	"2timothy": "2 Timothy", "titus": "Titus", "philemon": "Philemon",
	"hebrews": "Hebrews", "james": "James", "1peter": "1 Peter",
	"2peter": "2 Peter", "1john": "1 John", "2john": "2 John",
	"3john": "3 John", "jude": "Jude", "revelation": "Revelation",
}

// canonOrder maps canonical IDs to their 1-indexed canon position.
var canonOrder = func() map[string]int {
	m := make(map[string]int, len(canonIDs))
	for i, id := range canonIDs {
		m[id] = i + 1
	}
	return m
}()

// CanonIDs returns the 66 canonical book IDs in canon order.
// The returned slice is a copy.
func CanonIDs() []string {
	out := make([]string, len(canonIDs))
	copy(out, canonIDs)
	return out
}

// IsCanonical reports whether id is one of the 66 canonical book IDs.
func IsCanonical(id string) bool {
	_, ok := canonOrder[id]
	return ok
}

// CanonOrder returns the 1-indexed canon position of id, or 0 if id is
// not canonical.
func CanonOrder(id string) int {
	return canonOrder[id]
}

// EnglishName returns the English display name for a canonical ID, or
// the empty string if id is not canonical.
func EnglishName(id string) string {
	return englishNames[id]
}
