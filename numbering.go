package boq

import (
	"fmt"
	"strconv"
	"strings"
)

// NextItemNo proposes the display number for a new item appended to the
// trade at tradeIdx.
//
// When the trade already has items, the scheme continues the last item's
// number: the final dot-separated segment is incremented when numeric
// ("2.3.4" becomes "2.3.5"). When the trade is empty, or the last segment is
// not numeric, the number restarts at "<trade position>.<item position>",
// both one-based.
func (e *Estimate) NextItemNo(tradeIdx int) string {
	fallback := fmt.Sprintf("%d.%d", tradeIdx+1, 1)
	if tradeIdx < 0 || tradeIdx >= len(e.Trades) {
		return fallback
	}
	items := e.Trades[tradeIdx].Items
	fallback = fmt.Sprintf("%d.%d", tradeIdx+1, len(items)+1)
	if len(items) == 0 {
		return fallback
	}
	last := items[len(items)-1].ItemNo
	segs := strings.Split(last, ".")
	n, err := strconv.Atoi(segs[len(segs)-1])
	if err != nil {
		return fallback
	}
	segs[len(segs)-1] = strconv.Itoa(n + 1)
	return strings.Join(segs, ".")
}
