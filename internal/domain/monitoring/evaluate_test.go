package monitoring

import "testing"

func fp(v float64) *float64 { return &v }

func TestEvaluate(t *testing.T) {
	thresholds := map[string]float64{
		"CPUUtilization":    80.0,
		"MemoryUtilization": 80.0,
		"NetworkIn":         1e9,
	}

	tests := []struct {
		name   string
		values map[string]*float64
		want   []Breach
	}{
		{
			name:   "no values",
			values: map[string]*float64{},
			want:   nil,
		},
		{
			name: "all under threshold",
			values: map[string]*float64{
				"CPUUtilization":    fp(40.0),
				"MemoryUtilization": fp(79.9),
			},
			want: nil,
		},
		{
			name: "equal to threshold is not a breach",
			values: map[string]*float64{
				"CPUUtilization": fp(80.0),
			},
			want: nil,
		},
		{
			name: "single breach",
			values: map[string]*float64{
				"CPUUtilization": fp(92.5),
			},
			want: []Breach{{Metric: "CPUUtilization", Value: 92.5, Threshold: 80.0}},
		},
		{
			name: "nil value is skipped",
			values: map[string]*float64{
				"CPUUtilization":    nil,
				"MemoryUtilization": fp(95.0),
			},
			want: []Breach{{Metric: "MemoryUtilization", Value: 95.0, Threshold: 80.0}},
		},
		{
			name: "metric without threshold is skipped",
			values: map[string]*float64{
				"DiskReadBytes": fp(5e12),
			},
			want: nil,
		},
		{
			name: "multiple breaches ordered by metric name",
			values: map[string]*float64{
				"NetworkIn":         fp(2e9),
				"CPUUtilization":    fp(99.0),
				"MemoryUtilization": fp(85.0),
			},
			want: []Breach{
				{Metric: "CPUUtilization", Value: 99.0, Threshold: 80.0},
				{Metric: "MemoryUtilization", Value: 85.0, Threshold: 80.0},
				{Metric: "NetworkIn", Value: 2e9, Threshold: 1e9},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.values, thresholds)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d breaches, got %d: %v", len(tt.want), len(got), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("breach %d: expected %+v, got %+v", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	values := map[string]*float64{
		"NetworkIn":         fp(2e9),
		"CPUUtilization":    fp(99.0),
		"MemoryUtilization": fp(85.0),
		"NetworkOut":        fp(3e9),
	}
	thresholds := map[string]float64{
		"CPUUtilization":    80.0,
		"MemoryUtilization": 80.0,
		"NetworkIn":         1e9,
		"NetworkOut":        1e9,
	}

	first := Evaluate(values, thresholds)
	for i := 0; i < 50; i++ {
		again := Evaluate(values, thresholds)
		if len(again) != len(first) {
			t.Fatalf("run %d: length changed from %d to %d", i, len(first), len(again))
		}
		for j := range again {
			if again[j] != first[j] {
				t.Fatalf("run %d: breach %d changed from %+v to %+v", i, j, first[j], again[j])
			}
		}
	}
}
