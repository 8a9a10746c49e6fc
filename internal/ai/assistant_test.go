package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"

	"gearguard/internal/entities"
)

// fakeModel returns a canned response, or an error when failing is set.
type fakeModel struct {
	response string
	failing  bool
}

func (m *fakeModel) GenerateContent(_ context.Context, _ []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	if m.failing {
		return nil, errors.New("upstream unavailable")
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: m.response}},
	}, nil
}

func (m *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	if m.failing {
		return "", errors.New("upstream unavailable")
	}
	return m.response, nil
}

func TestCheckMovePermissionFallbackRules(t *testing.T) {
	assistant := NewAssistant(nil, zap.NewNop())
	ctx := context.Background()

	cases := []struct {
		name    string
		input   MoveCheckInput
		allowed bool
	}{
		{"admin always allowed", MoveCheckInput{Role: entities.RoleAdmin}, true},
		{"manager always allowed", MoveCheckInput{Role: entities.RoleManager}, true},
		{"technician on own team", MoveCheckInput{Role: entities.RoleTechnician, IsTeamMember: true}, true},
		{"technician on other team", MoveCheckInput{Role: entities.RoleTechnician, IsTeamMember: false}, false},
		{"employee denied", MoveCheckInput{Role: entities.RoleEmployee, IsTeamMember: true}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			verdict := assistant.CheckMovePermission(ctx, tc.input)
			assert.Equal(t, tc.allowed, verdict.Allowed)
			assert.NotEmpty(t, verdict.Reason)
		})
	}
}

func TestCheckMovePermissionParsesModelResponse(t *testing.T) {
	model := &fakeModel{response: `{"allowed": false, "reason": "card belongs to another team"}`}
	assistant := NewAssistant(model, zap.NewNop())

	verdict := assistant.CheckMovePermission(context.Background(), MoveCheckInput{Role: entities.RoleAdmin})
	assert.False(t, verdict.Allowed)
	assert.Equal(t, "card belongs to another team", verdict.Reason)
}

func TestCheckMovePermissionStripsCodeFence(t *testing.T) {
	model := &fakeModel{response: "```json\n{\"allowed\": true, \"reason\": \"ok\"}\n```"}
	assistant := NewAssistant(model, zap.NewNop())

	verdict := assistant.CheckMovePermission(context.Background(), MoveCheckInput{Role: entities.RoleEmployee})
	assert.True(t, verdict.Allowed)
}

func TestCheckMovePermissionFallsBackOnModelError(t *testing.T) {
	assistant := NewAssistant(&fakeModel{failing: true}, zap.NewNop())

	verdict := assistant.CheckMovePermission(context.Background(),
		MoveCheckInput{Role: entities.RoleTechnician, IsTeamMember: true})
	assert.True(t, verdict.Allowed)
}

func suggestFixture() SuggestInput {
	return SuggestInput{
		Subject: "Spindle vibration",
		Equipment: entities.Equipment{
			ID: "equip-1", Name: "CNC Machine", Category: "Machinery",
			Department: "Manufacturing", MaintenanceTeamID: "team-1",
		},
		Teams: []entities.Team{
			{ID: "team-1", Name: "Mechanics", MemberIDs: []string{"tech-1", "tech-2"}},
			{ID: "team-2", Name: "Electricians", MemberIDs: []string{"tech-3"}},
		},
		Technicians: []entities.User{
			{ID: "tech-1", Role: entities.RoleTechnician},
			{ID: "tech-2", Role: entities.RoleTechnician},
			{ID: "tech-3", Role: entities.RoleTechnician},
		},
		OpenCounts: map[string]int{"tech-1": 3, "tech-2": 1, "tech-3": 0},
	}
}

func TestSuggestAssignmentFallbackPicksLeastLoaded(t *testing.T) {
	assistant := NewAssistant(nil, zap.NewNop())

	s := assistant.SuggestAssignment(context.Background(), suggestFixture())
	assert.Equal(t, "team-1", s.TeamID)
	assert.Equal(t, "tech-2", s.TechnicianID)
}

func TestSuggestAssignmentRejectsUnknownIDs(t *testing.T) {
	model := &fakeModel{response: `{"teamId": "team-9", "technicianId": "tech-9", "reason": "made up"}`}
	assistant := NewAssistant(model, zap.NewNop())

	s := assistant.SuggestAssignment(context.Background(), suggestFixture())
	assert.Equal(t, "team-1", s.TeamID, "invalid model output should fall back")
	assert.Equal(t, "tech-2", s.TechnicianID)
}

func TestSuggestAssignmentAcceptsValidModelOutput(t *testing.T) {
	model := &fakeModel{response: `{"teamId": "team-2", "technicianId": "tech-3", "reason": "electrical fault"}`}
	assistant := NewAssistant(model, zap.NewNop())

	s := assistant.SuggestAssignment(context.Background(), suggestFixture())
	assert.Equal(t, "team-2", s.TeamID)
	assert.Equal(t, "tech-3", s.TechnicianID)
}
