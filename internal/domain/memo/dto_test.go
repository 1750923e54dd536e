package memo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateRequest_WordLimit(t *testing.T) {
	atLimit := CreateRequest{
		Title: "Quarterly update",
		Body:  strings.Repeat("word ", BodyWordLimit),
	}
	assert.NoError(t, atLimit.Validate())

	overLimit := CreateRequest{
		Title: "Quarterly update",
		Body:  strings.Repeat("word ", BodyWordLimit+1),
	}
	err := overLimit.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "words")
}

func TestCreateRequest_Required(t *testing.T) {
	assert.Error(t, (&CreateRequest{Body: "hello"}).Validate())
	assert.Error(t, (&CreateRequest{Title: "hi"}).Validate())
	assert.Error(t, (&CreateRequest{Title: "hi", Body: "hello", Priority: "urgent"}).Validate())
	assert.NoError(t, (&CreateRequest{Title: "hi", Body: "hello", Priority: PriorityHigh}).Validate())
}

func TestNormalizeRecord_Defaults(t *testing.T) {
	record := NormalizeRecord(RawRecord{})

	assert.Equal(t, "-", record.Title)
	assert.Equal(t, "Unknown", record.Author)
	assert.Equal(t, PriorityNormal, record.Priority)
}

func TestComputeStats(t *testing.T) {
	stats := ComputeStats([]Record{
		{Priority: PriorityHigh},
		{Priority: PriorityHigh},
		{Priority: PriorityLow},
	})

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.ByPriority[PriorityHigh])
	assert.Equal(t, 1, stats.ByPriority[PriorityLow])
	_, present := stats.ByPriority[PriorityNormal]
	assert.False(t, present)
}
