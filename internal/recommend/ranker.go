package recommend

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/disha-labs/disha-backend/internal/models"
)

// ErrInvalidDeadline marks a catalog record whose deadline does not
// parse. Callers should pre-validate the catalog; hitting this at
// ranking time is a data error, not a ranking outcome.
var ErrInvalidDeadline = errors.New("invalid deadline")

// RankByDeadline orders opportunities by deadline, earliest first. The
// sort is stable: equal deadlines keep their input order. An unparsable
// deadline is a data error naming the record, never an arbitrary
// position in the result.
func RankByDeadline(opps []*models.Opportunity) ([]*models.Opportunity, error) {
	deadlines := make([]time.Time, len(opps))
	for i, opp := range opps {
		deadline, err := opp.ParseDeadline()
		if err != nil {
			return nil, fmt.Errorf("opportunity %s: %w %q (want %s)",
				opp.ID, ErrInvalidDeadline, opp.Deadline, models.DeadlineFormat)
		}
		deadlines[i] = deadline
	}

	ranked := make([]*models.Opportunity, len(opps))
	order := make([]int, len(opps))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return deadlines[order[a]].Before(deadlines[order[b]])
	})
	for i, idx := range order {
		ranked[i] = opps[idx]
	}
	return ranked, nil
}
