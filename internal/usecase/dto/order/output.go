package orderdto

import (
	"math"

	"github.com/LavaJover/shvark-order-intake/internal/domain"
)

type OrdersPage struct {
	Orders     []*domain.Order
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
	Search     string
	Stats      PageStats
}

// PageStats counts statuses among the orders of the current page; Total is
// the number of orders matching the search across all pages.
type PageStats struct {
	New      int
	InReview int
	Approved int
	Rejected int
	Total    int64
}

func NewPageStats(orders []*domain.Order, total int64) PageStats {
	stats := PageStats{Total: total}
	for _, order := range orders {
		switch order.Status {
		case domain.StatusNew:
			stats.New++
		case domain.StatusInReview:
			stats.InReview++
		case domain.StatusApproved:
			stats.Approved++
		case domain.StatusRejected:
			stats.Rejected++
		}
	}
	return stats
}

// MaxPage is the largest page whose offset and end fit in an int.
func MaxPage(perPage int) int {
	if perPage < 1 {
		perPage = 1
	}
	return math.MaxInt / perPage
}

func TotalPages(total int64, perPage int) int {
	if perPage < 1 {
		return 0
	}
	pages := int(total) / perPage
	if int(total)%perPage > 0 {
		pages++
	}
	return pages
}
