package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"askhub/internal/model"
)

func TestCanView(t *testing.T) {
	evaluator := NewVisibilityEvaluator()

	departmentAnswer := model.Answer{
		AuthorID:             3,
		VisibilityType:       model.VisibilityDepartments,
		VisibleToDepartments: model.StringList{"engineering"},
	}

	tests := []struct {
		name     string
		answer   model.Answer
		viewer   *model.Viewer
		expected bool
	}{
		{
			name:     "anonymous sees public",
			answer:   model.Answer{AuthorID: 3, VisibilityType: model.VisibilityPublic},
			viewer:   nil,
			expected: true,
		},
		{
			name:     "anonymous does not see restricted",
			answer:   departmentAnswer,
			viewer:   nil,
			expected: false,
		},
		{
			name:     "matching department sees department answer",
			answer:   departmentAnswer,
			viewer:   &model.Viewer{ID: 8, Department: "engineering"},
			expected: true,
		},
		{
			name:     "other department does not see department answer",
			answer:   departmentAnswer,
			viewer:   &model.Viewer{ID: 8, Department: "sales"},
			expected: false,
		},
		{
			name:     "empty department never matches",
			answer:   departmentAnswer,
			viewer:   &model.Viewer{ID: 8},
			expected: false,
		},
		{
			name:     "author sees own answer regardless of department",
			answer:   departmentAnswer,
			viewer:   &model.Viewer{ID: 3, Department: "sales"},
			expected: true,
		},
		{
			name:     "admin sees everything",
			answer:   departmentAnswer,
			viewer:   &model.Viewer{ID: 8, Role: model.RoleAdmin, Department: "sales"},
			expected: true,
		},
		{
			name: "matching role sees role answer",
			answer: model.Answer{
				AuthorID:       3,
				VisibilityType: model.VisibilityRoles,
				VisibleToRoles: model.StringList{model.RoleModerator},
			},
			viewer:   &model.Viewer{ID: 8, Role: model.RoleModerator},
			expected: true,
		},
		{
			name: "missing role does not see role answer",
			answer: model.Answer{
				AuthorID:       3,
				VisibilityType: model.VisibilityRoles,
				VisibleToRoles: model.StringList{model.RoleModerator},
			},
			viewer:   &model.Viewer{ID: 8},
			expected: false,
		},
		{
			name: "listed user sees specific-users answer",
			answer: model.Answer{
				AuthorID:       3,
				VisibilityType: model.VisibilitySpecificUsers,
				VisibleToUsers: model.UintList{8, 11},
			},
			viewer:   &model.Viewer{ID: 11},
			expected: true,
		},
		{
			name: "unlisted user does not see specific-users answer",
			answer: model.Answer{
				AuthorID:       3,
				VisibilityType: model.VisibilitySpecificUsers,
				VisibleToUsers: model.UintList{8},
			},
			viewer:   &model.Viewer{ID: 12},
			expected: false,
		},
		{
			name:     "authenticated viewer sees public",
			answer:   model.Answer{AuthorID: 3, VisibilityType: model.VisibilityPublic},
			viewer:   &model.Viewer{ID: 8},
			expected: true,
		},
		{
			name:     "team answers stay hidden without a membership source",
			answer:   model.Answer{AuthorID: 3, VisibilityType: model.VisibilityTeam},
			viewer:   &model.Viewer{ID: 8, Department: "engineering"},
			expected: false,
		},
		{
			name:     "unknown visibility fails closed",
			answer:   model.Answer{AuthorID: 3, VisibilityType: "everyone"},
			viewer:   &model.Viewer{ID: 8},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, evaluator.CanView(&tt.answer, tt.viewer))
		})
	}
}

func TestFilterAnswers(t *testing.T) {
	evaluator := NewVisibilityEvaluator()

	answers := []model.Answer{
		{AuthorID: 1, VisibilityType: model.VisibilityPublic, Body: "public"},
		{AuthorID: 2, VisibilityType: model.VisibilityDepartments, VisibleToDepartments: model.StringList{"engineering"}, Body: "dept"},
		{AuthorID: 3, VisibilityType: model.VisibilityTeam, Body: "team"},
	}

	t.Run("anonymous only sees public", func(t *testing.T) {
		visible := evaluator.FilterAnswers(answers, nil)
		assert.Len(t, visible, 1)
		assert.Equal(t, "public", visible[0].Body)
	})

	t.Run("engineering viewer sees department answer too", func(t *testing.T) {
		visible := evaluator.FilterAnswers(answers, &model.Viewer{ID: 9, Department: "engineering"})
		assert.Len(t, visible, 2)
	})

	t.Run("admin sees all", func(t *testing.T) {
		visible := evaluator.FilterAnswers(answers, &model.Viewer{ID: 9, Role: model.RoleAdmin})
		assert.Len(t, visible, 3)
	})
}
