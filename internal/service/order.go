package service

import (
	"sort"

	"github.com/storeshift/backend/internal/models"
)

// SortStaff orders staff for every list, table and export: store managers
// first regardless of department, then department precedence, then ascending
// rank, with staff id as the final tiebreak so the order is total and
// reproducible. The input slice is sorted in place and returned.
func SortStaff(staff []models.Staff) []models.Staff {
	sort.SliceStable(staff, func(i, j int) bool {
		a, b := staff[i], staff[j]
		am, bm := a.Rank == models.RankStoreManager, b.Rank == models.RankStoreManager
		if am != bm {
			return am
		}
		if !am {
			if ao, bo := a.Department.Order(), b.Department.Order(); ao != bo {
				return ao < bo
			}
		}
		if a.RankID != b.RankID {
			return a.RankID < b.RankID
		}
		return a.ID < b.ID
	})
	return staff
}
