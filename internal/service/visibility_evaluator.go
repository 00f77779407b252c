package service

import (
	"askhub/internal/model"
)

// VisibilityEvaluator decides whether a viewer may see an answer. It is a
// pure decision function; it holds no state and touches no storage.
type VisibilityEvaluator struct{}

// NewVisibilityEvaluator creates a new visibility evaluator.
func NewVisibilityEvaluator() *VisibilityEvaluator {
	return &VisibilityEvaluator{}
}

// CanView reports whether viewer may see answer. A nil viewer is an anonymous
// request and only sees public answers. The answer's own author and admins
// always see it. Everything else dispatches on the visibility mode; unknown
// modes are not visible.
func (e *VisibilityEvaluator) CanView(answer *model.Answer, viewer *model.Viewer) bool {
	if viewer == nil {
		return answer.VisibilityType == model.VisibilityPublic
	}
	if viewer.ID == answer.AuthorID {
		return true
	}
	if viewer.Role == model.RoleAdmin {
		return true
	}

	switch answer.VisibilityType {
	case model.VisibilityPublic:
		return true
	case model.VisibilityRoles:
		return viewer.Role != "" && answer.VisibleToRoles.Contains(viewer.Role)
	case model.VisibilityDepartments:
		return viewer.Department != "" && answer.VisibleToDepartments.Contains(viewer.Department)
	case model.VisibilitySpecificUsers:
		return answer.VisibleToUsers.Contains(viewer.ID)
	case model.VisibilityTeam:
		// No team membership source exists at this boundary yet, so
		// team-scoped answers stay restricted to author and admins.
		return false
	default:
		return false
	}
}

// FilterAnswers returns the subset of answers the viewer may see, preserving
// order. Excluded answers are omitted outright, never partially redacted.
func (e *VisibilityEvaluator) FilterAnswers(answers []model.Answer, viewer *model.Viewer) []model.Answer {
	visible := make([]model.Answer, 0, len(answers))
	for i := range answers {
		if e.CanView(&answers[i], viewer) {
			visible = append(visible, answers[i])
		}
	}
	return visible
}
