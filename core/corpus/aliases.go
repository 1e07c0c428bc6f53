package corpus

// bookAliases maps source-script book names to canonical IDs. The
// corpus renders several book names in more than one orthography
// (记 vs 纪, 壹 vs 一), so multiple keys may resolve to the same ID.
// New variants are additions to this table, not code changes.
var bookAliases = map[string]string{
	"创世记": "genesis", "出埃及记": "exodus", "利未记": "leviticus",
	"民数记": "numbers", "申命记": "deuteronomy", "约书亚记": "joshua",
	"士师记": "judges", "路得记": "ruth",
	"撒母耳记上": "1samuel", "撒母耳记下": "2samuel",
	"列王纪上": "1kings", "列王纪下": "2kings",
	"列王记上": "1kings", "列王记下": "2kings", // variant spelling
	"历代志上": "1chronicles", "历代志下": "2chronicles",
	"历代记上": "1chronicles", "历代记下": "2chronicles", // variant spelling
	"以斯拉记": "ezra", "尼希米记": "nehemiah", "以斯帖记": "esther",
	"约伯记": "job", "诗篇": "psalms", "箴言": "proverbs",
	"传道书": "ecclesiastes", "雅歌": "songofsolomon",
	"以赛亚书": "isaiah", "耶利米书": "jeremiah", "耶利米哀歌": "lamentations",
	"以西结书": "ezekiel", "但以理书": "daniel", "何西阿书": "hosea",
	"约珥书": "joel", "阿摩司书": "amos", "俄巴底亚书": "obadiah",
	"约拿书": "jonah", "弥迦书": "micah", "那鸿书": "nahum",
	"哈巴谷书": "habakkuk", "西番雅书": "zephaniah", "哈该书": "haggai",
	"撒迦利亚书": "zechariah", "玛拉基书": "malachi",
	"马太福音": "matthew", "马可福音": "mark", "路加福音": "luke",
	"约翰福音": "john", "使徒行传": "acts", "罗马书": "romans",
	"哥林多前书": "1corinthians", "哥林多后书": "2corinthians",
	"加拉太书": "galatians", "以弗所书": "ephesians",
	"腓立比书": "philippians", "歌罗西书": "colossians",
	"帖撒罗尼迦前书": "1thessalonians", "帖撒罗尼迦后书": "2thessalonians",
	"提摩太前书": "1timothy", "提摩太后书": "2timothy",
	"提多书": "titus", "腓利门书": "philemon", "希伯来书": "hebrews",
	"雅各书": "james", "彼得前书": "1peter", "彼得后书": "2peter",
	"约翰一书": "1john", "约翰二书": "2john", "约翰三书": "3john",
	"约翰壹书": "1john", "约翰贰书": "2john", "约翰叁书": "3john", // variant spelling
	"犹大书": "jude", "启示录": "revelation",
}

// ResolveAlias maps a source-script book name to its canonical ID.
// Returns "" and false for names with no alias entry; callers drop
// such verses with a warning rather than guessing.
func ResolveAlias(name string) (string, bool) {
	id, ok := bookAliases[name]
	return id, ok
}
