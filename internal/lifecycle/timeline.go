package lifecycle

import (
	"time"

	"github.com/medicall/medicall/internal/model"
)

// TimelineStage элемент визуального таймлайна жизненного цикла
type TimelineStage struct {
	ID        Stage  `json:"id"`
	Label     string `json:"label"`
	Current   bool   `json:"current"`
	Completed bool   `json:"completed"`
}

// Timeline строит таймлайн из пяти фиксированных стадий с отметками
// текущей и пройденных. Стадии cancelled и expired отдельных узлов
// не имеют, они подсвечиваются через текущую стадию.
func (e *Engine) Timeline(s *model.Shift, now time.Time) []TimelineStage {
	current := e.LifecycleStage(s, now)

	return []TimelineStage{
		{
			ID:        StageCreated,
			Label:     "Posted",
			Current:   current == StageCreated,
			Completed: true, // каждая смена была создана
		},
		{
			ID:        StageActive,
			Label:     "Active",
			Current:   current == StageActive,
			Completed: true,
		},
		{
			ID:        StageApplications,
			Label:     "Applications",
			Current:   current == StageApplications,
			Completed: s.ApplicantCount > 0,
		},
		{
			ID:        StageUrgent,
			Label:     "Urgent",
			Current:   current == StageUrgent,
			Completed: current == StageUrgent || current == StageFilled || current == StageExpired,
		},
		{
			ID:        StageFilled,
			Label:     "Filled",
			Current:   current == StageFilled,
			Completed: s.Status == model.ShiftStatusFilled,
		},
	}
}
