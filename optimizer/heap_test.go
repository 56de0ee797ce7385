package optimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hunterforge/core/hunters"
)

func TestTopKHeapKeepsOnlyBestK(t *testing.T) {
	h := newTopKHeap(3)
	for _, v := range []float64{1, 5, 3, 9, 2, 7} {
		h.Offer(v, hunters.BuildResult{MeanSurvival: v})
	}
	results := h.Results()
	assert.Len(t, results, 3)
	assert.Equal(t, 9.0, results[0].MeanSurvival)
	assert.Equal(t, 7.0, results[1].MeanSurvival)
	assert.Equal(t, 5.0, results[2].MeanSurvival)
}

func TestTopKHeapHandlesFewerThanCapacity(t *testing.T) {
	h := newTopKHeap(5)
	h.Offer(1, hunters.BuildResult{MeanSurvival: 1})
	h.Offer(2, hunters.BuildResult{MeanSurvival: 2})
	assert.Len(t, h.Results(), 2)
}
