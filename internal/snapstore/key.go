package snapstore

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/huangsam/stackrank/schema"
)

// keyVersion invalidates stored snapshots whenever the metric definitions
// change shape. Bump on any change to the Metrics structure or bucket rules.
const keyVersion = 1

// Key derives the memoization key for a filtered, cleaned dataset: a SHA-256
// over every raw field of every record plus the QTD quarter boundary. Records
// hash in dataset order, so the key is deterministic for identical input and
// any reordering or edit produces a different key.
func Key(records []schema.Opportunity, quarterStart time.Time) string {
	h := sha256.New()

	fmt.Fprintf(h, "v%d\n", keyVersion)
	fmt.Fprintf(h, "q%s\n", quarterStart.Format(schema.DateFormat))
	for i := range records {
		r := &records[i]
		fmt.Fprintf(h, "%s|%s|%s|%s|%s|%s|%s|%s|%s|%s\n",
			r.ID,
			r.Owner,
			r.Role,
			r.Region,
			r.CreatedDate.Format(schema.DateFormat),
			r.CloseDate.Format(schema.DateFormat),
			r.Stage.String(),
			strconv.FormatFloat(r.Amount, 'f', -1, 64),
			r.Source,
			r.LeadSourceCategory,
		)
	}
	return hex.EncodeToString(h.Sum(nil))
}
