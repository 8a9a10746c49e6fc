// Package ai wraps the LLM-backed helpers: the move permission check on the
// kanban board and the technician assignment suggestion for new requests.
// Both degrade to deterministic rules when no model is configured or the
// model call fails, so the board never blocks on an upstream outage.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"

	"gearguard/internal/entities"
)

type Assistant struct {
	model  llms.Model
	logger *zap.Logger
}

// NewAssistant builds an assistant over the given model. A nil model is
// valid and forces the deterministic fallbacks.
func NewAssistant(model llms.Model, logger *zap.Logger) *Assistant {
	return &Assistant{model: model, logger: logger}
}

// NewOpenAIModel constructs the default langchaingo client. The API key is
// read from OPENAI_API_KEY by the provider itself.
func NewOpenAIModel(model string) (llms.Model, error) {
	client, err := openai.New(openai.WithModel(model))
	if err != nil {
		return nil, fmt.Errorf("creating openai client: %w", err)
	}
	return client, nil
}

// MoveCheckInput describes the user attempting a board move.
type MoveCheckInput struct {
	UserID       string            `json:"userId"`
	Role         entities.UserRole `json:"role"`
	TeamID       string            `json:"teamId"`
	IsTeamMember bool              `json:"isTeamMember"`
}

// MoveVerdict is the permission decision for one move attempt.
type MoveVerdict struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason"`
}

// Suggestion pairs a maintenance team with a technician for a new request.
type Suggestion struct {
	TeamID       string `json:"teamId"`
	TechnicianID string `json:"technicianId"`
	Reason       string `json:"reason"`
}

const moveCheckPrompt = `You are the access control helper of a maintenance management system.
A user wants to move a card on the maintenance kanban board.

User role: %s
User is a member of the request's assigned team: %t

Rules:
- admins and managers may always move cards
- technicians may move cards only for requests assigned to their own team
- employees may never move cards

Reply with a JSON object only, no prose: {"allowed": <bool>, "reason": "<short explanation>"}`

// CheckMovePermission decides whether the user may move the card. The model
// is asked first; any failure falls back to the same rules evaluated locally.
func (a *Assistant) CheckMovePermission(ctx context.Context, in MoveCheckInput) MoveVerdict {
	if a.model == nil {
		return fallbackMoveVerdict(in)
	}

	prompt := fmt.Sprintf(moveCheckPrompt, in.Role, in.IsTeamMember)
	raw, err := llms.GenerateFromSinglePrompt(ctx, a.model, prompt,
		llms.WithTemperature(0), llms.WithMaxTokens(200))
	if err != nil {
		a.logger.Warn("move permission model call failed, using fallback", zap.Error(err))
		return fallbackMoveVerdict(in)
	}

	var verdict MoveVerdict
	if err := json.Unmarshal([]byte(trimJSONFence(raw)), &verdict); err != nil {
		a.logger.Warn("unparsable move permission response, using fallback",
			zap.String("response", raw), zap.Error(err))
		return fallbackMoveVerdict(in)
	}
	return verdict
}

func fallbackMoveVerdict(in MoveCheckInput) MoveVerdict {
	switch in.Role {
	case entities.RoleAdmin, entities.RoleManager:
		return MoveVerdict{Allowed: true, Reason: "admins and managers may move any card"}
	case entities.RoleTechnician:
		if in.IsTeamMember {
			return MoveVerdict{Allowed: true, Reason: "technician belongs to the assigned team"}
		}
		return MoveVerdict{Allowed: false, Reason: "technicians may only move their own team's cards"}
	default:
		return MoveVerdict{Allowed: false, Reason: "employees may not move cards"}
	}
}

const suggestPrompt = `You are the planning helper of a maintenance management system.
Suggest which maintenance team and which technician should handle a new request.

Request subject: %s
Equipment: %s (category: %s, department: %s)
Equipment's maintenance team: %s

Teams and their technicians:
%s

Prefer the equipment's own maintenance team. Pick the technician with the
fewest open requests from the counts given.

Reply with a JSON object only, no prose:
{"teamId": "<id>", "technicianId": "<id>", "reason": "<short explanation>"}`

// SuggestInput carries everything the suggestion prompt needs. OpenCounts
// maps technician IDs to their current number of open requests.
type SuggestInput struct {
	Subject     string
	Equipment   entities.Equipment
	Teams       []entities.Team
	Technicians []entities.User
	OpenCounts  map[string]int
}

// SuggestAssignment proposes a team and technician for a draft request.
func (a *Assistant) SuggestAssignment(ctx context.Context, in SuggestInput) Suggestion {
	if a.model == nil {
		return fallbackSuggestion(in)
	}

	prompt := fmt.Sprintf(suggestPrompt,
		in.Subject, in.Equipment.Name, in.Equipment.Category, in.Equipment.Department,
		in.Equipment.MaintenanceTeamID, formatRoster(in))
	raw, err := llms.GenerateFromSinglePrompt(ctx, a.model, prompt,
		llms.WithTemperature(0), llms.WithMaxTokens(300))
	if err != nil {
		a.logger.Warn("assignment model call failed, using fallback", zap.Error(err))
		return fallbackSuggestion(in)
	}

	var s Suggestion
	if err := json.Unmarshal([]byte(trimJSONFence(raw)), &s); err != nil || !validSuggestion(s, in) {
		a.logger.Warn("unusable assignment response, using fallback", zap.String("response", raw))
		return fallbackSuggestion(in)
	}
	return s
}

// fallbackSuggestion picks the equipment's maintenance team and its least
// loaded technician.
func fallbackSuggestion(in SuggestInput) Suggestion {
	teamID := in.Equipment.MaintenanceTeamID
	var team *entities.Team
	for i := range in.Teams {
		if in.Teams[i].ID == teamID {
			team = &in.Teams[i]
			break
		}
	}
	if team == nil && len(in.Teams) > 0 {
		team = &in.Teams[0]
		teamID = team.ID
	}

	best := ""
	bestLoad := -1
	for _, tech := range in.Technicians {
		if tech.Role != entities.RoleTechnician || team == nil || !team.HasMember(tech.ID) {
			continue
		}
		load := in.OpenCounts[tech.ID]
		if best == "" || load < bestLoad {
			best = tech.ID
			bestLoad = load
		}
	}
	return Suggestion{
		TeamID:       teamID,
		TechnicianID: best,
		Reason:       "equipment's maintenance team, least loaded technician",
	}
}

func validSuggestion(s Suggestion, in SuggestInput) bool {
	if s.TeamID == "" || s.TechnicianID == "" {
		return false
	}
	teamOK := false
	for _, t := range in.Teams {
		if t.ID == s.TeamID {
			teamOK = true
			break
		}
	}
	techOK := false
	for _, u := range in.Technicians {
		if u.ID == s.TechnicianID {
			techOK = true
			break
		}
	}
	return teamOK && techOK
}

func formatRoster(in SuggestInput) string {
	var b strings.Builder
	for _, team := range in.Teams {
		fmt.Fprintf(&b, "- %s (%s):\n", team.ID, team.Name)
		for _, tech := range in.Technicians {
			if tech.Role == entities.RoleTechnician && team.HasMember(tech.ID) {
				fmt.Fprintf(&b, "  - %s (%s), open requests: %d\n", tech.ID, tech.Name, in.OpenCounts[tech.ID])
			}
		}
	}
	return b.String()
}

// trimJSONFence strips a markdown code fence the model may wrap around the
// JSON payload.
func trimJSONFence(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
	}
	return strings.TrimSpace(s)
}
