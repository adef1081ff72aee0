// README: Running-average rating aggregate with a capped feedback list.
package types

// MaxRecentFeedback bounds the per-party recent feedback list.
const MaxRecentFeedback = 5

// Rating is a running average over an unbounded stream of scores.
type Rating struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// Add folds one score into the running average.
func (r Rating) Add(score float64) Rating {
	n := r.Count + 1
	return Rating{
		Average: (r.Average*float64(r.Count) + score) / float64(n),
		Count:   n,
	}
}

// PrependFeedback puts comment at the head of list, newest first,
// truncated to MaxRecentFeedback. Empty comments are dropped.
func PrependFeedback(list []string, comment string) []string {
	if comment == "" {
		return list
	}
	out := make([]string, 0, len(list)+1)
	out = append(out, comment)
	out = append(out, list...)
	if len(out) > MaxRecentFeedback {
		out = out[:MaxRecentFeedback]
	}
	return out
}
