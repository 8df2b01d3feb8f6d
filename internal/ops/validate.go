package ops

import (
	"fmt"
	"strings"
	"time"

	"github.com/jacksmith/plantpal/internal/model"
	"github.com/jacksmith/plantpal/internal/photo"
)

// IssueType represents the kind of data integrity issue.
type IssueType string

const (
	IssueDuplicateID    IssueType = "duplicate_id"
	IssueDuplicateName  IssueType = "duplicate_name"
	IssueMissingImage   IssueType = "missing_image"
	IssueFutureWatering IssueType = "future_watering"
)

// Issue represents a problem found in a loaded collection. Malformed records
// never get this far: they fail the load itself.
type Issue struct {
	Type    IssueType
	Index   int // 0-based position of the plant
	PlantID string
	Message string
}

func (i Issue) Error() string {
	return fmt.Sprintf("#%d %s - %s", i.Index+1, i.Type, i.Message)
}

// Severe reports whether the issue will cause wrong behavior, as opposed to
// something the user may want to know about.
func (i Issue) Severe() bool {
	return i.Type == IssueDuplicateID || i.Type == IssueFutureWatering
}

// Validate checks plants for integrity issues relative to today.
// Issues are returned in collection order.
func Validate(plants []model.Plant, today time.Time) []Issue {
	today = model.Day(today)
	var issues []Issue

	seenIDs := make(map[string]int)
	seenNames := make(map[string]int)
	for i := range plants {
		p := &plants[i]

		if first, ok := seenIDs[p.ID]; ok {
			issues = append(issues, Issue{
				Type:    IssueDuplicateID,
				Index:   i,
				PlantID: p.ID,
				Message: fmt.Sprintf("ID %s is also used by #%d", model.ShortID(p.ID), first+1),
			})
		} else {
			seenIDs[p.ID] = i
		}

		name := strings.ToLower(strings.TrimSpace(p.Name))
		if first, ok := seenNames[name]; ok {
			issues = append(issues, Issue{
				Type:    IssueDuplicateName,
				Index:   i,
				PlantID: p.ID,
				Message: fmt.Sprintf("%q has the same name as #%d; refer to it by number or ID", p.Name, first+1),
			})
		} else {
			seenNames[name] = i
		}

		if p.ImagePath != "" && !photo.Exists(p.ImagePath) {
			issues = append(issues, Issue{
				Type:    IssueMissingImage,
				Index:   i,
				PlantID: p.ID,
				Message: fmt.Sprintf("image %s not found", p.ImagePath),
			})
		}

		if p.LastWatered.After(today) {
			issues = append(issues, Issue{
				Type:    IssueFutureWatering,
				Index:   i,
				PlantID: p.ID,
				Message: fmt.Sprintf("last watered %s is after today (%s)",
					p.LastWatered.Format(model.DateLayout), today.Format(model.DateLayout)),
			})
		}
	}

	return issues
}
