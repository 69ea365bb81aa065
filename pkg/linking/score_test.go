package linking

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/notemesh/backend/pkg/common"
)

func TestScoreNodes(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		a              common.GraphNode
		b              common.GraphNode
		wantWeight     float64
		wantType       common.ConnectionType
		wantConcepts   []string
		wantSharedTags []string
	}{
		{
			name: "concept overlap different kind",
			a: common.GraphNode{
				ID: "a", Kind: common.KindResearch,
				Concepts:  []string{"graph", "theory"},
				UpdatedAt: base,
			},
			b: common.GraphNode{
				ID: "b", Kind: common.KindEngineering,
				Concepts:  []string{"graph", "latency"},
				UpdatedAt: base.Add(-10 * 24 * time.Hour),
			},
			wantWeight:     0.4 + 0.2*0.1,
			wantType:       common.ConnectionConcept,
			wantConcepts:   []string{"graph"},
			wantSharedTags: []string{},
		},
		{
			name: "tags dominate concepts",
			a: common.GraphNode{
				ID: "a", Kind: common.KindGeneral,
				Tags:      []string{"go", "infra"},
				UpdatedAt: base,
			},
			b: common.GraphNode{
				ID: "b", Kind: common.KindEngineering,
				Tags:      []string{"go", "infra"},
				UpdatedAt: base.Add(-60 * 24 * time.Hour),
			},
			wantWeight:     2 * 0.3,
			wantType:       common.ConnectionTag,
			wantConcepts:   []string{},
			wantSharedTags: []string{"go", "infra"},
		},
		{
			name: "same kind only is a content connection",
			a: common.GraphNode{
				ID: "a", Kind: common.KindMeeting,
				UpdatedAt: base,
			},
			b: common.GraphNode{
				ID: "b", Kind: common.KindMeeting,
				UpdatedAt: base.Add(-2 * time.Hour),
			},
			wantWeight:     0.2 + 0.8*0.1,
			wantType:       common.ConnectionContent,
			wantConcepts:   []string{},
			wantSharedTags: []string{},
		},
		{
			name: "shared general kind earns no bonus",
			a: common.GraphNode{
				ID: "a", Kind: common.KindGeneral,
				UpdatedAt: base,
			},
			b: common.GraphNode{
				ID: "b", Kind: common.KindGeneral,
				UpdatedAt: base.Add(-time.Hour),
			},
			wantWeight:     0.8 * 0.1,
			wantType:       common.ConnectionContent,
			wantConcepts:   []string{},
			wantSharedTags: []string{},
		},
		{
			name: "no signal at all",
			a: common.GraphNode{
				ID: "a", Kind: common.KindResearch,
				UpdatedAt: base,
			},
			b: common.GraphNode{
				ID: "b", Kind: common.KindMeeting,
				UpdatedAt: base.Add(-90 * 24 * time.Hour),
			},
			wantWeight:     0,
			wantType:       common.ConnectionConcept,
			wantConcepts:   []string{},
			wantSharedTags: []string{},
		},
		{
			name: "heavy overlap clamps to one",
			a: common.GraphNode{
				ID: "a", Kind: common.KindEngineering,
				Concepts:  []string{"kubernetes", "latency", "pipeline"},
				Tags:      []string{"infra"},
				UpdatedAt: base,
			},
			b: common.GraphNode{
				ID: "b", Kind: common.KindEngineering,
				Concepts:  []string{"kubernetes", "latency", "pipeline"},
				Tags:      []string{"infra"},
				UpdatedAt: base.Add(-time.Hour),
			},
			wantWeight:     1,
			wantType:       common.ConnectionConcept,
			wantConcepts:   []string{"kubernetes", "latency", "pipeline"},
			wantSharedTags: []string{"infra"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreNodes(tt.a, tt.b)
			if math.Abs(got.Weight-tt.wantWeight) > 1e-9 {
				t.Errorf("Weight = %v, want %v", got.Weight, tt.wantWeight)
			}
			if got.ConnectionType != tt.wantType {
				t.Errorf("ConnectionType = %q, want %q", got.ConnectionType, tt.wantType)
			}
			if !reflect.DeepEqual(got.SharedConcepts, tt.wantConcepts) {
				t.Errorf("SharedConcepts = %#v, want %#v", got.SharedConcepts, tt.wantConcepts)
			}
			if !reflect.DeepEqual(got.SharedTags, tt.wantSharedTags) {
				t.Errorf("SharedTags = %#v, want %#v", got.SharedTags, tt.wantSharedTags)
			}
			if got.Source != tt.a.ID || got.Target != tt.b.ID {
				t.Errorf("edge endpoints = %s->%s, want %s->%s", got.Source, got.Target, tt.a.ID, tt.b.ID)
			}
		})
	}
}

func TestScoreNodesSymmetric(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	a := common.GraphNode{
		ID: "a", Kind: common.KindResearch,
		Concepts:  []string{"graph", "theory", "survey"},
		Tags:      []string{"phd"},
		UpdatedAt: base,
	}
	b := common.GraphNode{
		ID: "b", Kind: common.KindResearch,
		Concepts:  []string{"survey", "graph"},
		Tags:      []string{"phd", "draft"},
		UpdatedAt: base.Add(-3 * 24 * time.Hour),
	}

	forward := ScoreNodes(a, b)
	backward := ScoreNodes(b, a)
	if math.Abs(forward.Weight-backward.Weight) > 1e-9 {
		t.Errorf("weight not symmetric: %v vs %v", forward.Weight, backward.Weight)
	}
	if len(forward.SharedConcepts) != len(backward.SharedConcepts) {
		t.Errorf("shared concept counts differ: %d vs %d", len(forward.SharedConcepts), len(backward.SharedConcepts))
	}
}

func TestTemporalWeight(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		gap  time.Duration
		want float64
	}{
		{name: "same hour", gap: time.Hour, want: 0.8},
		{name: "exactly one day", gap: 24 * time.Hour, want: 0.5},
		{name: "three days", gap: 3 * 24 * time.Hour, want: 0.5},
		{name: "exactly one week", gap: 7 * 24 * time.Hour, want: 0.2},
		{name: "twenty nine days", gap: 29 * 24 * time.Hour, want: 0.2},
		{name: "thirty days", gap: 30 * 24 * time.Hour, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := temporalWeight(base, base.Add(-tt.gap))
			if got != tt.want {
				t.Errorf("temporalWeight() = %v, want %v", got, tt.want)
			}
			reversed := temporalWeight(base.Add(-tt.gap), base)
			if reversed != tt.want {
				t.Errorf("temporalWeight() reversed = %v, want %v", reversed, tt.want)
			}
		})
	}
}

func TestConnectionType(t *testing.T) {
	tests := []struct {
		name           string
		sharedConcepts int
		sharedTags     int
		sameKind       bool
		want           common.ConnectionType
	}{
		{name: "more tags than concepts", sharedConcepts: 1, sharedTags: 2, sameKind: true, want: common.ConnectionTag},
		{name: "only kind matches", sharedConcepts: 0, sharedTags: 0, sameKind: true, want: common.ConnectionContent},
		{name: "concepts win ties", sharedConcepts: 2, sharedTags: 2, sameKind: false, want: common.ConnectionConcept},
		{name: "nothing shared", sharedConcepts: 0, sharedTags: 0, sameKind: false, want: common.ConnectionConcept},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := connectionType(tt.sharedConcepts, tt.sharedTags, tt.sameKind)
			if got != tt.want {
				t.Errorf("connectionType() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIntersect(t *testing.T) {
	tests := []struct {
		name string
		a    []string
		b    []string
		want []string
	}{
		{
			name: "empty sides",
			a:    nil,
			b:    []string{"x"},
			want: []string{},
		},
		{
			name: "keeps order of first argument",
			a:    []string{"c", "a", "b"},
			b:    []string{"a", "b", "c"},
			want: []string{"c", "a", "b"},
		},
		{
			name: "duplicates counted once",
			a:    []string{"a", "a", "b"},
			b:    []string{"a"},
			want: []string{"a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := intersect(tt.a, tt.b)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("intersect() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestNormalizeTags(t *testing.T) {
	got := normalizeTags([]string{" Go ", "go", "", "Infra"})
	want := []string{"go", "infra"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("normalizeTags() = %#v, want %#v", got, want)
	}
}
