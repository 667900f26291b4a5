package digest

import (
	"fmt"
	"time"
)

const banner = "🎯 *UPSC MAINS DAILY ANSWER WRITING*"

// Header is the fixed block prepended to every generated post.
func Header(t time.Time) string {
	return fmt.Sprintf("%s\n📅 %s\n💡 _%s_\n\n", banner, t.Format("Monday, 02 January 2006"), Quote(t))
}
