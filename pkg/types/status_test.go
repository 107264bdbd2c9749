package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidStatus(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{status: StatusOpen, want: true},
		{status: StatusInReview, want: true},
		{status: StatusClosed, want: true},
		{status: "open", want: false},
		{status: "Archived", want: false},
		{status: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidStatus(tt.status))
		})
	}
}

func TestStatusesOrder(t *testing.T) {
	assert.Equal(t, []string{StatusOpen, StatusInReview, StatusClosed}, Statuses())
}
