package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/localjobs/localjobs-web/internal/domain/model"
)

func TestSeq(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []int{0, 1, 2}, Seq(3))
	assert.Nil(t, Seq(0))
	assert.Nil(t, Seq(-1))
}

func TestNavHref(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "/go/find-jobs", NavHref(model.NavFindJobs))
	assert.Equal(t, "#", NavHref(model.NavTarget("nope")))
}

func TestPostedAgo(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Posted today", PostedAgo(0))
	assert.Equal(t, "Posted 1 day ago", PostedAgo(1))
	assert.Equal(t, "Posted 3 days ago", PostedAgo(3))
}

func TestTimeTag(t *testing.T) {
	t.Parallel()
	ts := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	assert.Contains(t, string(TimeTag(ts)), `datetime="2025-01-02T03:04:05Z"`)
	assert.Contains(t, string(TimeTag(&ts)), "<time")
	assert.Empty(t, TimeTag((*time.Time)(nil)))
	assert.Empty(t, TimeTag(time.Time{}))
	assert.Empty(t, TimeTag("yesterday"))
}

func TestTruncateText(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "hello", TruncateText("hello", 10))
	assert.Equal(t, "hel…", TruncateText("hello", 4))
	assert.Equal(t, "আম…", TruncateText("আমাদের", 3))
	assert.Equal(t, "h", TruncateText("hello", 1))
	assert.Equal(t, "hello", TruncateText("hello", 0))
}
