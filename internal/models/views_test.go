package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCamperDetailPrunesCamperBackReference(t *testing.T) {
	activity := Activity{ID: 3, Name: "Archery", Difficulty: 2}
	camper := Camper{
		ID:   1,
		Name: "Alex",
		Age:  12,
		Signups: []Signup{
			{ID: 5, Time: 9, CamperID: 1, ActivityID: 3, Activity: &activity},
		},
	}

	detail := CamperDetailFromModel(camper)

	data, err := json.Marshal(detail)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	signups := decoded["signups"].([]interface{})
	require.Len(t, signups, 1)

	signup := signups[0].(map[string]interface{})
	assert.NotContains(t, signup, "camper")
	require.Contains(t, signup, "activity")

	nested := signup["activity"].(map[string]interface{})
	assert.NotContains(t, nested, "signups")
	assert.Equal(t, "Archery", nested["name"])
}

func TestActivityDetailPrunesActivityBackReference(t *testing.T) {
	camper := Camper{ID: 1, Name: "Alex", Age: 12}
	activity := Activity{
		ID:         3,
		Name:       "Archery",
		Difficulty: 2,
		Signups: []Signup{
			{ID: 5, Time: 9, CamperID: 1, ActivityID: 3, Camper: &camper},
		},
	}

	detail := ActivityDetailFromModel(activity)

	data, err := json.Marshal(detail)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	signups := decoded["signups"].([]interface{})
	require.Len(t, signups, 1)

	signup := signups[0].(map[string]interface{})
	assert.NotContains(t, signup, "activity")
	require.Contains(t, signup, "camper")

	nested := signup["camper"].(map[string]interface{})
	assert.NotContains(t, nested, "signups")
}

func TestSignupDetailIncludesBothParentsWithoutSignups(t *testing.T) {
	signup := Signup{
		ID:         5,
		Time:       9,
		CamperID:   1,
		ActivityID: 3,
		Camper:     &Camper{ID: 1, Name: "Alex", Age: 12},
		Activity:   &Activity{ID: 3, Name: "Archery", Difficulty: 2},
	}

	detail := SignupDetailFromModel(signup)

	assert.Equal(t, uint(1), detail.Camper.ID)
	assert.Equal(t, uint(3), detail.Activity.ID)

	data, err := json.Marshal(detail)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.NotContains(t, decoded["camper"].(map[string]interface{}), "signups")
	assert.NotContains(t, decoded["activity"].(map[string]interface{}), "signups")
}

func TestBriefsFromModelsPreserveOrder(t *testing.T) {
	campers := []Camper{
		{ID: 1, Name: "Alex", Age: 12},
		{ID: 2, Name: "Sam", Age: 15},
	}
	briefs := CamperBriefsFromModels(campers)
	require.Len(t, briefs, 2)
	assert.Equal(t, "Alex", briefs[0].Name)
	assert.Equal(t, "Sam", briefs[1].Name)

	activities := []Activity{
		{ID: 1, Name: "Archery", Difficulty: 2},
		{ID: 2, Name: "Swimming", Difficulty: 3},
	}
	aBriefs := ActivityBriefsFromModels(activities)
	require.Len(t, aBriefs, 2)
	assert.Equal(t, "Swimming", aBriefs[1].Name)
}
