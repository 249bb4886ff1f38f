package calendar

import (
	"fmt"
	"sort"

	"github.com/m04kA/hotel-booking-service/internal/domain"
	"github.com/m04kA/hotel-booking-service/pkg/types"
)

// RangeSource provides the booked intervals the engine checks against.
// Implementations must be safe for concurrent reads.
type RangeSource interface {
	// Overlapping returns every booked interval that overlaps [from, to)
	Overlapping(from, to types.DateString) []domain.BookedRange
}

// StaticSource is an immutable in-memory list of booked intervals
type StaticSource struct {
	ranges []domain.BookedRange
}

// NewStaticSource validates the ranges and returns a source sorted by start date
func NewStaticSource(ranges []domain.BookedRange) (*StaticSource, error) {
	sorted := make([]domain.BookedRange, len(ranges))
	copy(sorted, ranges)

	for i, r := range sorted {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("%w: range #%d", err, i)
		}
	}

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.IsBefore(sorted[j].Start)
	})

	return &StaticSource{ranges: sorted}, nil
}

// Overlapping returns the ranges overlapping [from, to)
func (s *StaticSource) Overlapping(from, to types.DateString) []domain.BookedRange {
	result := make([]domain.BookedRange, 0)
	for _, r := range s.ranges {
		// Отсортировано по началу: дальше пересечений не будет
		if !r.Start.IsBefore(to) {
			break
		}
		if r.Overlaps(from, to) {
			result = append(result, r)
		}
	}
	return result
}

// Ranges returns a copy of all ranges
func (s *StaticSource) Ranges() []domain.BookedRange {
	result := make([]domain.BookedRange, len(s.ranges))
	copy(result, s.ranges)
	return result
}
