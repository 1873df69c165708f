package quoting

import (
	"fmt"
	"time"
)

// Perth is the business timezone. Western Australia has no daylight saving.
var Perth = time.FixedZone("AWST", 8*60*60)

// FormatQuoteID builds a customer-facing quote id such as VC-250614-093015-042.
func FormatQuoteID(at time.Time, suffix int) string {
	if suffix < 0 {
		suffix = -suffix
	}
	return fmt.Sprintf("VC-%s-%03d", at.In(Perth).Format("060102-150405"), suffix%1000)
}
