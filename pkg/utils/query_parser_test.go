package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gearguard/internal/entities"
)

func TestParseBoardFilters(t *testing.T) {
	values, err := url.ParseQuery(
		"filter[team_id]=team-1,team-2&filter[technician_id]=user-3&filter[request_type]=Preventive&filter[equipment_id]=equip-1")
	require.NoError(t, err)

	f, err := ParseBoardFilters(values)
	require.NoError(t, err)
	assert.Equal(t, []string{"team-1", "team-2"}, f.TeamIDs)
	assert.Equal(t, []string{"user-3"}, f.TechnicianIDs)
	assert.Equal(t, []entities.RequestType{entities.TypePreventive}, f.RequestTypes)
	assert.Equal(t, "equip-1", f.EquipmentID)
}

func TestParseBoardFiltersEmpty(t *testing.T) {
	f, err := ParseBoardFilters(url.Values{})
	require.NoError(t, err)
	assert.True(t, f.Empty())
}

func TestParseBoardFiltersRepeatedKeys(t *testing.T) {
	values := url.Values{"filter[team_id]": {"team-1", "team-2, team-3"}}

	f, err := ParseBoardFilters(values)
	require.NoError(t, err)
	assert.Equal(t, []string{"team-1", "team-2", "team-3"}, f.TeamIDs)
}

func TestParseBoardFiltersRejectsUnknownType(t *testing.T) {
	values := url.Values{"filter[request_type]": {"Emergency"}}

	_, err := ParseBoardFilters(values)
	assert.Error(t, err)
}
