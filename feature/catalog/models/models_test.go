package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		tags []string
		col  string
	}{
		{"Multiple", []string{"SLIM", "REGULAR"}, "SLIM,REGULAR"},
		{"Single", []string{"CASUAL"}, "CASUAL"},
		{"Empty", []string{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.col, JoinTags(tt.tags))
			assert.Equal(t, tt.tags, SplitTags(tt.col))
		})
	}
}

func TestProperty_IsGlobal(t *testing.T) {
	assert.True(t, Property{Name: "COLOR", OwnerID: 1}.IsGlobal())
	assert.False(t, Property{Name: "LINING", OwnerID: 1, ProductID: 7}.IsGlobal())
}
