package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatus(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"new", false},
		{"in_progress", false},
		{"waiting", false},
		{"resolved", false},
		{"closed", false},
		{"open", true},
		{"NEW", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			st, err := NewStatus(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.input, st.String())
			}
		})
	}
}

func TestStatus_Label(t *testing.T) {
	assert.Equal(t, "New", StatusNew.Label())
	assert.Equal(t, "In Progress", StatusInProgress.Label())
	assert.Equal(t, "Waiting", StatusWaiting.Label())
	assert.Equal(t, "Resolved", StatusResolved.Label())
	assert.Equal(t, "Closed", StatusClosed.Label())
}

func TestAllStatuses(t *testing.T) {
	statuses := AllStatuses()
	require.Len(t, statuses, 5)
	for _, s := range statuses {
		assert.True(t, s.IsValid())
	}
}
