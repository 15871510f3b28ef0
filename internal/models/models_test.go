package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestClassUpdate_SetDoc(t *testing.T) {
	name := "Piano 101"
	seats := 0
	status := StatusApproved
	u := ClassUpdate{Name: &name, AvailableSeats: &seats, Status: &status}

	assert.Equal(t, bson.M{"name": "Piano 101", "availableSeats": 0, "status": "approved"}, u.SetDoc())
	assert.Empty(t, ClassUpdate{}.SetDoc())
}

func TestClassFilter_Query(t *testing.T) {
	assert.Equal(t, bson.M{}, ClassFilter{}.Query())
	assert.Equal(t,
		bson.M{"status": "approved", "instructorEmail": "a@b.c"},
		ClassFilter{Status: "approved", InstructorEmail: "a@b.c"}.Query())
}

func TestUpdateResult_Classify(t *testing.T) {
	assert.Equal(t, OutcomeCreated, UpdateResult{UpsertedCount: 1}.Classify().Outcome)
	assert.Equal(t, OutcomeUpdated, UpdateResult{MatchedCount: 1}.Classify().Outcome)
	assert.Equal(t, OutcomeNotFound, UpdateResult{}.Classify().Outcome)
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusDenied))
	assert.False(t, ValidStatus("archived"))
	assert.False(t, ValidStatus(""))
}
