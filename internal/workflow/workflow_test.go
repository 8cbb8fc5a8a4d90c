package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepsOrder(t *testing.T) {
	require.Len(t, Steps, 7)

	assert.Equal(t, "Gather context", Steps[0].Title)
	assert.Equal(t, "QA gate", Steps[len(Steps)-1].Title)

	for _, step := range Steps {
		assert.NotEmpty(t, step.Goal, "step %q needs a goal", step.Title)
		assert.NotEmpty(t, step.Actions, "step %q needs actions", step.Title)
	}
}

func TestQAGateCoversReviewItems(t *testing.T) {
	gate := Steps[len(Steps)-1]
	assert.Len(t, gate.Actions, 6)
}
