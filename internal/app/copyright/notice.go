package copyright

import (
	"fmt"
	"html"
)

// RenderNotice строит блок с уведомлением. Описание экранируется и
// попадает в title, текст вставляется как есть.
func RenderNotice(lt LicenseText, sc ShortcodeContext) string {
	return fmt.Sprintf("<div class=\"copyright-notice\">\n<p title=\"%s\">%s</p>\n</div><!-- .copyright-notice -->\n",
		html.EscapeString(ExpandShortcodes(lt.Description, sc)),
		ExpandShortcodes(lt.Text, sc),
	)
}
