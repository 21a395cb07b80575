package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeRange_Overlaps(t *testing.T) {
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	at := func(min int) time.Time { return base.Add(time.Duration(min) * time.Minute) }

	tests := []struct {
		name string
		a    TimeRange
		b    TimeRange
		want bool
	}{
		{
			name: "identical",
			a:    TimeRange{Start: at(0), End: at(30)},
			b:    TimeRange{Start: at(0), End: at(30)},
			want: true,
		},
		{
			name: "partial overlap",
			a:    TimeRange{Start: at(0), End: at(30)},
			b:    TimeRange{Start: at(15), End: at(45)},
			want: true,
		},
		{
			name: "containment",
			a:    TimeRange{Start: at(0), End: at(60)},
			b:    TimeRange{Start: at(15), End: at(30)},
			want: true,
		},
		{
			// Half-open semantics: touching boundaries do not overlap
			name: "back to back",
			a:    TimeRange{Start: at(0), End: at(30)},
			b:    TimeRange{Start: at(30), End: at(60)},
			want: false,
		},
		{
			name: "disjoint",
			a:    TimeRange{Start: at(0), End: at(30)},
			b:    TimeRange{Start: at(60), End: at(90)},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Overlap is symmetric
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestTimeRange_IsValid(t *testing.T) {
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	assert.True(t, TimeRange{Start: base, End: base.Add(time.Minute)}.IsValid())
	assert.False(t, TimeRange{Start: base, End: base}.IsValid())
	assert.False(t, TimeRange{Start: base.Add(time.Minute), End: base}.IsValid())
}
