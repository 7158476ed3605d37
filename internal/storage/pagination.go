package storage

import "gorm.io/gorm"

const defaultPerPage = 12

// PageRequest is the 1-indexed pagination window asked for by the client.
type PageRequest struct {
	Page  int
	Limit int
}

func (p PageRequest) normalize() PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = defaultPerPage
	}
	return p
}

func (p PageRequest) offset() int {
	return (p.Page - 1) * p.Limit
}

// PageInfo is the metadata returned alongside every paginated slice.
// TotalPages is 0 when nothing matches.
type PageInfo struct {
	Total      int64
	TotalPages int
	PerPage    int
}

func totalPages(total int64, limit int) int {
	return int((total + int64(limit) - 1) / int64(limit))
}

// paginate counts all rows matching the composed query, then fetches one
// ordered offset/limit slice through find. The caller's query must already
// carry every filter clause; the ordering must be total (id tie-break) so
// repeated calls slice identically.
func paginate(q *gorm.DB, order string, req PageRequest, find func(*gorm.DB) error) (PageInfo, error) {
	req = req.normalize()

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return PageInfo{}, err
	}

	slice := q.Session(&gorm.Session{}).Order(order).Offset(req.offset()).Limit(req.Limit)
	if err := find(slice); err != nil {
		return PageInfo{}, err
	}

	return PageInfo{
		Total:      total,
		TotalPages: totalPages(total, req.Limit),
		PerPage:    req.Limit,
	}, nil
}
