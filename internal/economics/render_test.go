package economics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/gonogo-cli/internal/model"
)

func TestRender(t *testing.T) {
	t.Parallel()

	r := offlineAggregator().Compute(context.Background(), snackRequest())
	out := Render(r)

	assert.Contains(t, out, "Packaged Snacks")
	assert.Contains(t, out, LabelManufacturing)
	assert.Contains(t, out, LabelGST)
	assert.Contains(t, out, "Total cost")
	assert.Contains(t, out, "Verdict: NO_GO")
	assert.Contains(t, out, "not achievable")
	assert.Contains(t, out, string(model.MethodCategoryAverage))
	// Both marketplace stacks are listed for comparison.
	assert.Contains(t, out, "Amazon")
	assert.Contains(t, out, "Flipkart")
}

func TestRender_BreakevenLine(t *testing.T) {
	t.Parallel()

	req := snackRequest()
	req.Channel = model.ChannelD2C
	req.Price = 800
	r := offlineAggregator().Compute(context.Background(), req)

	out := Render(r)
	assert.Contains(t, out, "units/month")
	assert.NotContains(t, out, "not achievable")
}
