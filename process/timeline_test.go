package process

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"ewintr.nl/ytsum/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timelineJSON(n int) string {
	items := make([]model.TimelineItem, n)
	for i := range items {
		items[i] = model.TimelineItem{
			Time:        model.FormatTimestamp(time.Duration(i) * time.Minute),
			Title:       fmt.Sprintf("Chapter %d", i+1),
			Description: "something happens",
		}
	}
	body, _ := json.Marshal(timelinePayload{Timeline: items})
	return string(body)
}

func TestParseTimeline(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		size    int
		want    int
		wantErr bool
	}{
		{name: "exact", raw: timelineJSON(5), size: 5, want: 5},
		{name: "twenty", raw: timelineJSON(20), size: 20, want: 20},
		{name: "fenced", raw: "```json\n" + timelineJSON(5) + "\n```", size: 5, want: 5},
		{name: "surplus is truncated", raw: timelineJSON(8), size: 5, want: 5},
		{name: "too few", raw: timelineJSON(3), size: 5, wantErr: true},
		{name: "empty", raw: "", size: 5, wantErr: true},
		{name: "not json", raw: "Here is your timeline: 00:00 intro", size: 5, wantErr: true},
		{name: "wrong shape", raw: `{"chapters": []}`, size: 5, wantErr: true},
		{name: "bad timestamp", raw: `{"timeline": [
			{"time": "00:00", "title": "a"}, {"time": "1:02:03", "title": "b"},
			{"time": "02:00", "title": "c"}, {"time": "03:00", "title": "d"},
			{"time": "04:00", "title": "e"}]}`, size: 5, wantErr: true},
		{name: "missing title", raw: `{"timeline": [
			{"time": "00:00", "title": "a"}, {"time": "01:00", "title": " "},
			{"time": "02:00", "title": "c"}, {"time": "03:00", "title": "d"},
			{"time": "04:00", "title": "e"}]}`, size: 5, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := parseTimeline(tt.raw, tt.size)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedTimeline)
				return
			}
			require.NoError(t, err)
			assert.Len(t, items, tt.want)
			assert.Equal(t, "Chapter 1", items[0].Title)
		})
	}
}

func TestParseTimelineOrder(t *testing.T) {
	t.Run("timestamps are normalized", func(t *testing.T) {
		items, err := parseTimeline(`{"timeline": [
			{"time": "0:0", "title": "a"}, {"time": " 1:5", "title": "b"},
			{"time": "3:00", "title": "c"}, {"time": "12:30", "title": "d"},
			{"time": "75:00", "title": "e"}]}`, 5)
		require.NoError(t, err)

		var times []string
		for _, item := range items {
			times = append(times, item.Time)
		}
		assert.Equal(t, []string{"00:00", "01:05", "03:00", "12:30", "75:00"}, times)
	})

	for _, tc := range []struct {
		name string
		raw  string
	}{
		{name: "going back", raw: `{"timeline": [
			{"time": "0:0", "title": "a"}, {"time": "1:5", "title": "b"},
			{"time": "9:00", "title": "c"}, {"time": "3:00", "title": "d"},
			{"time": "10:00", "title": "e"}]}`},
		{name: "repeated", raw: `{"timeline": [
			{"time": "00:00", "title": "a"}, {"time": "01:00", "title": "b"},
			{"time": "01:00", "title": "c"}, {"time": "02:00", "title": "d"},
			{"time": "03:00", "title": "e"}]}`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseTimeline(tc.raw, 5)
			assert.ErrorIs(t, err, ErrMalformedTimeline)
		})
	}
}

func TestTimelineGeneratorGenerate(t *testing.T) {
	tests := []struct {
		name       string
		mode       model.SummaryMode
		completion completeFunc
		wantSize   int
		wantSource model.Source
	}{
		{name: "brief generated", mode: model.ModeBrief, completion: reply(timelineJSON(5)), wantSize: 5, wantSource: model.SourceGenerated},
		{name: "detailed generated", mode: model.ModeDetailed, completion: reply(timelineJSON(20)), wantSize: 20, wantSource: model.SourceGenerated},
		{name: "unknown mode behaves as brief", mode: "haiku", completion: reply(timelineJSON(20)), wantSize: 5, wantSource: model.SourceGenerated},
		{name: "brief unparsable", mode: model.ModeBrief, completion: reply("not json"), wantSize: 5, wantSource: model.SourceFallback},
		{name: "academic unparsable", mode: model.ModeAcademic, completion: reply("{"), wantSize: 20, wantSource: model.SourceFallback},
		{name: "bullet too short", mode: model.ModeBullet, completion: reply(timelineJSON(5)), wantSize: 20, wantSource: model.SourceFallback},
		{name: "brief call fails", mode: model.ModeBrief, completion: fail(errUpstream), wantSize: 5, wantSource: model.SourceFallback},
		{name: "eli5 call fails", mode: model.ModeELI5, completion: fail(errUpstream), wantSize: 20, wantSource: model.SourceFallback},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := &fakeCompleter{timeline: tt.completion}
			tg := NewTimelineGenerator(fc, "", time.Second, testLogger())

			tl := tg.Generate(context.Background(), "transcript", "title", tt.mode)
			assert.Equal(t, tt.wantSource, tl.Source)
			require.Len(t, tl.Items, tt.wantSize)
			for _, item := range tl.Items {
				_, err := model.ParseTimestamp(item.Time)
				assert.NoError(t, err)
				assert.NotEmpty(t, item.Title)
			}

			reqs := fc.requests()
			require.Len(t, reqs, 1)
			assert.True(t, reqs[0].JSON)
			assert.Equal(t, timelinePrompt(model.ParseSummaryMode(string(tt.mode))).MaxTokens, reqs[0].MaxTokens)
		})
	}
}

func TestTimelineGeneratorTimeout(t *testing.T) {
	tg := NewTimelineGenerator(&fakeCompleter{timeline: blockUntilDone}, "", 20*time.Millisecond, testLogger())

	tl := tg.Generate(context.Background(), "transcript", "title", model.ModeDetailed)
	assert.Equal(t, model.SourceFallback, tl.Source)
	assert.Len(t, tl.Items, 20)
}

func TestFallbackTimeline(t *testing.T) {
	t.Run("brief is fixed", func(t *testing.T) {
		first := fallbackTimeline(model.ModeBrief, func(int) int { return 7 })
		second := fallbackTimeline(model.ModeBrief, func(int) int { return 42 })
		assert.Equal(t, briefFallbackTimeline, first)
		assert.Equal(t, first, second)

		first[0].Title = "changed"
		assert.Equal(t, "Introduction", briefFallbackTimeline[0].Title)
	})

	t.Run("others are chronological", func(t *testing.T) {
		for _, mode := range []model.SummaryMode{model.ModeDetailed, model.ModeBullet, model.ModeELI5, model.ModeAcademic} {
			items := fallbackTimeline(mode, func(int) int { return 59 })
			require.Len(t, items, 20)
			assert.Equal(t, "00:59", items[0].Time)
			assert.Equal(t, "57:59", items[19].Time)
			assert.Equal(t, "Section 20", items[19].Title)

			var prev time.Duration = -1
			for _, item := range items {
				at, err := model.ParseTimestamp(item.Time)
				require.NoError(t, err)
				assert.Greater(t, at, prev)
				prev = at
			}
		}
	})

	t.Run("random seconds stay in range", func(t *testing.T) {
		tg := NewTimelineGenerator(nil, "", 0, testLogger())
		for i := 0; i < 10; i++ {
			for _, item := range fallbackTimeline(model.ModeDetailed, tg.intn) {
				_, err := model.ParseTimestamp(item.Time)
				require.NoError(t, err)
			}
		}
	})
}
