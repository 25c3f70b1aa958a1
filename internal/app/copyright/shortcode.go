package copyright

import (
	"regexp"
	"strconv"
	"time"
)

var shortcodeRe = regexp.MustCompile(`\[(cp-years|blog-title)(?:\s[^\]]*)?\]`)

// ShortcodeContext: данные для раскрытия шорткодов одной записи
type ShortcodeContext struct {
	SiteName  string
	Published time.Time
	Now       time.Time
}

// Years возвращает "2015", если запись опубликована в текущем году,
// иначе диапазон "2015 – 2017"
func Years(published, now time.Time) string {
	pub := published.Year()
	cur := now.Year()
	if pub == cur {
		return strconv.Itoa(cur)
	}
	return strconv.Itoa(pub) + " – " + strconv.Itoa(cur)
}

// BlogTitle возвращает название сайта
func BlogTitle(siteName string) string {
	return siteName
}

// ExpandShortcodes раскрывает [cp-years] и [blog-title]; атрибуты игнорируются
func ExpandShortcodes(text string, sc ShortcodeContext) string {
	return shortcodeRe.ReplaceAllStringFunc(text, func(m string) string {
		switch shortcodeRe.FindStringSubmatch(m)[1] {
		case "cp-years":
			return Years(sc.Published, sc.Now)
		default:
			return BlogTitle(sc.SiteName)
		}
	})
}
