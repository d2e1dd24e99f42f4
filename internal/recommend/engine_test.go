// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

package recommend

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/coursecompass/internal/catalog"
	"github.com/tomtom215/coursecompass/internal/index"
	"github.com/tomtom215/coursecompass/internal/prereq"
)

// mockEmbedder implements Embedder for testing.
type mockEmbedder struct {
	vectors map[string][]float64
	err     error
	calls   atomic.Int32
}

func (m *mockEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	m.calls.Add(1)
	if m.err != nil {
		return nil, m.err
	}
	vec, ok := m.vectors[text]
	if !ok {
		return nil, fmt.Errorf("no vector for %q", text)
	}
	return vec, nil
}

func desc(s string) *string { return &s }

func testCourses() []catalog.Course {
	return []catalog.Course{
		{Subject: "CSE", Number: "12", Title: "Data Structures", Units: 4, Description: desc("Prerequisites: CSE 11.")},
		{Subject: "CSE", Number: "15L", Title: "Software Tools", Units: 2},
		{Subject: "MATH", Number: "20A", Title: "Calculus", Units: 4},
		{
			Subject: "CSE", Number: "151A", Title: "Machine Learning", Units: 4,
			Description: desc("Prerequisites: CSE 12, CSE 15L, MATH 20A. Recommended preparation: MATH 18."),
		},
		{Subject: "CSE", Number: "158", Title: "Recommender Systems", Units: 4, Description: desc("Prerequisites: CSE 12.")},
		{Subject: "COGS", Number: "118A", Title: "Supervised ML", Units: 4},
		{Subject: "CSE", Number: "250A", Title: "Probabilistic Reasoning", Units: 4, Description: desc("Prerequisites: CSE 151A.")},
		{Subject: "CSE", Number: "11", Title: "Intro Programming", Units: 4},
		{Subject: "DSC", Number: "40A", Title: "Theory of Data Science", Units: 4, Description: desc("Prerequisites: MATH 20A, DSC 10.")},
	}
}

// Axes: machine learning, programming, mathematics.
func testVectors() map[string][]float64 {
	return map[string][]float64{
		"CSE 12":    {0.2, 1, 0},
		"CSE 15L":   {0, 1, 0.1},
		"MATH 20A":  {0, 0, 1},
		"CSE 151A":  {1, 0.1, 0.2},
		"CSE 158":   {0.9, 0.3, 0},
		"COGS 118A": {0.95, 0, 0.2},
		"CSE 250A":  {0.8, 0, 0.5},
		"CSE 11":    {0, 0.9, 0},
		"DSC 40A":   {0.5, 0, 0.8},
	}
}

func newTestEngine(t *testing.T, embedder Embedder) *Engine {
	t.Helper()

	courses := testCourses()
	cat, err := catalog.New(courses)
	if err != nil {
		t.Fatalf("catalog.New() error: %v", err)
	}
	idx, err := index.New(cat, testVectors())
	if err != nil {
		t.Fatalf("index.New() error: %v", err)
	}

	engine, err := NewEngine(DefaultConfig(), Dependencies{
		Catalog:  cat,
		Index:    idx,
		Graph:    prereq.BuildGraph(courses),
		Embedder: embedder,
	}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error: %v", err)
	}
	return engine
}

func defaultEmbedder() *mockEmbedder {
	return &mockEmbedder{vectors: map[string][]float64{
		"machine learning": {1, 0, 0},
		"programming":      {0, 1, 0},
	}}
}

func resultIDs(results []Result) []string {
	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.CourseID
	}
	return ids
}

func float64Ptr(f float64) *float64 { return &f }

func TestNewEngine(t *testing.T) {
	t.Parallel()

	t.Run("nil config uses defaults", func(t *testing.T) {
		t.Parallel()
		cat, _ := catalog.New(nil)
		idx, _ := index.New(cat, nil)
		engine, err := NewEngine(nil, Dependencies{Catalog: cat, Index: idx, Graph: prereq.BuildGraph(nil)}, zerolog.Nop())
		if err != nil {
			t.Fatalf("NewEngine() error: %v", err)
		}
		if engine.config.Limits.DefaultK != DefaultConfig().Limits.DefaultK {
			t.Error("expected default config")
		}
	})

	t.Run("invalid config rejected", func(t *testing.T) {
		t.Parallel()
		cfg := DefaultConfig()
		cfg.Limits.DefaultK = 0
		if _, err := NewEngine(cfg, Dependencies{}, zerolog.Nop()); err == nil {
			t.Error("NewEngine() expected error for invalid config")
		}
	})

	t.Run("missing dependencies rejected", func(t *testing.T) {
		t.Parallel()
		if _, err := NewEngine(nil, Dependencies{}, zerolog.Nop()); err == nil {
			t.Error("NewEngine() expected error for missing dependencies")
		}
	})
}

func TestEngine_Recommend(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, defaultEmbedder())

	tests := []struct {
		name      string
		req       Request
		want      []string
		wantCands int
	}{
		{
			name:      "skips ineligible candidates",
			req:       Request{Query: "machine learning", Completed: []string{"CSE 12"}, Limit: 2},
			want:      []string{"COGS 118A", "CSE 158"},
			wantCands: 4,
		},
		{
			name:      "short list is not backfilled",
			req:       Request{Query: "machine learning", Limit: 2},
			want:      []string{"COGS 118A"},
			wantCands: 4,
		},
		{
			name:      "completed courses never returned",
			req:       Request{Query: "machine learning", Completed: []string{"COGS 118A"}, Limit: 1},
			want:      []string{},
			wantCands: 2,
		},
		{
			name: "subject filter",
			req: Request{
				Query: "machine learning", Completed: []string{"CSE 12"}, Limit: 3,
				Filter: &Filter{Subjects: []string{"CSE"}},
			},
			want:      []string{"CSE 158"},
			wantCands: 6,
		},
		{
			name: "graduate level filter",
			req: Request{
				Query:     "machine learning",
				Completed: []string{"CSE 12", "CSE 15L", "MATH 20A", "CSE 151A"},
				Limit:     3,
				Filter:    &Filter{Level: catalog.LevelGraduate},
			},
			want:      []string{"CSE 250A"},
			wantCands: 6,
		},
		{
			name: "unit bounds",
			req: Request{
				Query: "programming", Limit: 3,
				Filter: &Filter{MaxUnits: float64Ptr(2)},
			},
			want:      []string{"CSE 15L"},
			wantCands: 6,
		},
		{
			name: "precomputed vector skips embedding",
			req:  Request{Vector: []float64{0, 0, 1}, Limit: 1},
			want: []string{"MATH 20A"},

			wantCands: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resp, err := engine.Recommend(context.Background(), tt.req)
			if err != nil {
				t.Fatalf("Recommend() error: %v", err)
			}
			if got := resultIDs(resp.Results); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Recommend() = %v, want %v", got, tt.want)
			}
			if resp.Metadata.Candidates != tt.wantCands {
				t.Errorf("Candidates = %d, want %d", resp.Metadata.Candidates, tt.wantCands)
			}
			for _, r := range resp.Results {
				if r.Eligibility == nil || !r.Eligibility.Eligible {
					t.Errorf("result %s missing eligibility", r.CourseID)
				}
			}
			if resp.Metadata.RequestID == "" {
				t.Error("RequestID not generated")
			}
		})
	}
}

func TestEngine_Recommend_Invariants(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, defaultEmbedder())

	completedSets := [][]string{
		nil,
		{"CSE 12"},
		{"CSE 11", "CSE 12", "CSE 15L", "MATH 20A"},
		{"COGS 118A", "CSE 151A"},
	}

	for _, query := range []string{"machine learning", "programming"} {
		for _, completed := range completedSets {
			for limit := 1; limit <= 6; limit++ {
				resp, err := engine.Recommend(context.Background(), Request{Query: query, Completed: completed, Limit: limit})
				if err != nil {
					t.Fatalf("Recommend() error: %v", err)
				}
				done := prereq.NewSet(completed...)
				if len(resp.Results) > limit {
					t.Errorf("%s/%v/%d: %d results exceed limit", query, completed, limit, len(resp.Results))
				}
				for i, r := range resp.Results {
					if done.Has(r.CourseID) {
						t.Errorf("%s/%v/%d: returned completed course %s", query, completed, limit, r.CourseID)
					}
					if i > 0 && r.Score > resp.Results[i-1].Score {
						t.Errorf("%s/%v/%d: scores increase at %d", query, completed, limit, i)
					}
				}
			}
		}
	}
}

func TestEngine_Recommend_Errors(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	failing := &mockEmbedder{err: cause}
	engine := newTestEngine(t, failing)

	_, err := engine.Recommend(context.Background(), Request{Query: "quantum computing", Limit: 3})
	if !errors.Is(err, ErrEmbedding) {
		t.Fatalf("Recommend() error = %v, want ErrEmbedding", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("Recommend() error does not wrap cause: %v", err)
	}
	var embedErr *EmbeddingError
	if !errors.As(err, &embedErr) || embedErr.Query != "quantum computing" {
		t.Errorf("EmbeddingError query = %+v", embedErr)
	}
	if failing.calls.Load() != 1 {
		t.Errorf("embedder called %d times, want exactly 1 (no retry)", failing.calls.Load())
	}

	if _, err := engine.Recommend(context.Background(), Request{Limit: 3}); !errors.Is(err, ErrEmptyQuery) {
		t.Errorf("empty query error = %v, want ErrEmptyQuery", err)
	}

	if _, err := engine.Recommend(context.Background(), Request{Vector: []float64{1, 0}}); !errors.Is(err, ErrQueryDimension) {
		t.Errorf("short vector error = %v, want ErrQueryDimension", err)
	}

	if m := engine.GetMetrics(); m.ErrorCount != 3 || m.RequestCount != 3 {
		t.Errorf("GetMetrics() = %+v, want 3 requests and 3 errors", m)
	}
}

func TestEngine_Recommend_NoEmbedder(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, nil)
	_, err := engine.Recommend(context.Background(), Request{Query: "anything"})
	if !errors.Is(err, ErrEmbedding) {
		t.Errorf("Recommend() without embedder error = %v, want ErrEmbedding", err)
	}
}

func TestEngine_Search(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, defaultEmbedder())

	resp, err := engine.Search(context.Background(), "machine learning", 3)
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if want := []string{"COGS 118A", "CSE 151A", "CSE 158"}; !reflect.DeepEqual(resultIDs(resp.Results), want) {
		t.Errorf("Search() = %v, want %v", resultIDs(resp.Results), want)
	}
	for _, r := range resp.Results {
		if r.Eligibility != nil {
			t.Errorf("Search() result %s carries eligibility", r.CourseID)
		}
	}

	resp, err = engine.Search(context.Background(), "machine learning", 2, "CSE")
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if want := []string{"CSE 151A", "CSE 158"}; !reflect.DeepEqual(resultIDs(resp.Results), want) {
		t.Errorf("Search(CSE) = %v, want %v", resultIDs(resp.Results), want)
	}

	resp, err = engine.Search(context.Background(), "machine learning", 0)
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if resp.Metadata.Limit != DefaultConfig().Limits.DefaultK {
		t.Errorf("default limit = %d", resp.Metadata.Limit)
	}
	if len(resp.Results) != 9 {
		t.Errorf("Search() with default limit returned %d, want all 9", len(resp.Results))
	}
}

func TestEngine_SearchSnippets(t *testing.T) {
	t.Parallel()

	courses := testCourses()
	cat, err := catalog.New(courses)
	if err != nil {
		t.Fatalf("catalog.New() error: %v", err)
	}
	idx, err := index.New(cat, testVectors())
	if err != nil {
		t.Fatalf("index.New() error: %v", err)
	}

	long := strings.Repeat("é", SnippetLength+20)
	engine, err := NewEngine(DefaultConfig(), Dependencies{
		Catalog:  cat,
		Index:    idx,
		Graph:    prereq.BuildGraph(courses),
		Embedder: defaultEmbedder(),
		Texts: map[string]string{
			"CSE 151A":  "Machine Learning. Embedded text.",
			"COGS 118A": long,
		},
	}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error: %v", err)
	}

	resp, err := engine.Search(context.Background(), "machine learning", 3)
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}

	want := map[string]string{
		"CSE 151A":  "Machine Learning. Embedded text....",
		"COGS 118A": strings.Repeat("é", SnippetLength) + "...",
		"CSE 158":   "Recommender Systems. Prerequisites: CSE 12....",
	}
	for _, r := range resp.Results {
		if got := r.DescriptionSnippet; got != want[r.CourseID] {
			t.Errorf("snippet for %s = %q, want %q", r.CourseID, got, want[r.CourseID])
		}
	}

	rec, err := engine.Recommend(context.Background(), Request{Query: "machine learning", Limit: 3})
	if err != nil {
		t.Fatalf("Recommend() error: %v", err)
	}
	for _, r := range rec.Results {
		if r.DescriptionSnippet != "" {
			t.Errorf("Recommend() result %s carries snippet %q", r.CourseID, r.DescriptionSnippet)
		}
	}
}

func TestEngine_Similar(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, nil)

	resp := engine.Similar("CSE 151A", 2)
	if !resp.Found {
		t.Error("Similar() Found = false for embedded course")
	}
	if want := []string{"COGS 118A", "CSE 158"}; !reflect.DeepEqual(resultIDs(resp.Results), want) {
		t.Errorf("Similar() = %v, want %v", resultIDs(resp.Results), want)
	}

	resp = engine.Similar("CSE 999", 2)
	if resp.Found || len(resp.Results) != 0 {
		t.Errorf("Similar(unknown) = %+v, want not found and empty", resp)
	}
}

func TestEngine_CrossDepartment(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, nil)

	resp := engine.CrossDepartment("CSE 151A", 0)
	if want := []string{"COGS 118A", "DSC 40A", "MATH 20A"}; !reflect.DeepEqual(resultIDs(resp.Results), want) {
		t.Errorf("CrossDepartment() = %v, want %v", resultIDs(resp.Results), want)
	}
	for _, r := range resp.Results {
		if r.Subject == "CSE" {
			t.Errorf("CrossDepartment() returned same-subject course %s", r.CourseID)
		}
	}

	if resp := engine.CrossDepartment("CSE 999", 3); resp.Found || len(resp.Results) != 0 {
		t.Errorf("CrossDepartment(unknown) = %+v", resp)
	}
}

func TestEngine_CourseInfo(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, nil)

	info, ok := engine.CourseInfo("CSE 151A")
	if !ok {
		t.Fatal("CourseInfo() not found")
	}
	if info.Requirements == nil {
		t.Fatal("CourseInfo() requirements missing")
	}
	if want := []string{"CSE 12", "CSE 15L", "MATH 20A"}; !reflect.DeepEqual(info.Requirements.Required, want) {
		t.Errorf("Required = %v, want %v", info.Requirements.Required, want)
	}
	if want := []string{"COGS 118A", "CSE 158", "CSE 250A"}; !reflect.DeepEqual(resultIDs(info.Similar), want) {
		t.Errorf("Similar = %v, want %v", resultIDs(info.Similar), want)
	}
	wantEdges := []prereq.Edge{
		{Role: prereq.RoleRequired, Codes: []string{"CSE 12", "CSE 15L", "MATH 20A"}},
		{Role: prereq.RoleRecommended, Codes: []string{"MATH 18"}},
	}
	if !reflect.DeepEqual(info.RequirementEdges, wantEdges) {
		t.Errorf("RequirementEdges = %+v, want %+v", info.RequirementEdges, wantEdges)
	}

	info, ok = engine.CourseInfo("COGS 118A")
	if !ok || info.Requirements != nil {
		t.Errorf("CourseInfo(COGS 118A) = %+v, %v, want nil requirements", info, ok)
	}
	if ok && (info.RequirementEdges == nil || len(info.RequirementEdges) != 0) {
		t.Errorf("CourseInfo(COGS 118A) edges = %#v, want empty non-nil", info.RequirementEdges)
	}

	if _, ok := engine.CourseInfo("CSE 999"); ok {
		t.Error("CourseInfo(unknown) reported found")
	}
}

func TestEngine_Eligibility(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, nil)

	got := engine.Eligibility("CSE 151A", []string{"CSE 12"})
	if !got.Known || got.Eligible {
		t.Errorf("Eligibility(CSE 151A) = %+v, want known and ineligible", got)
	}
	if want := []string{"CSE 15L", "MATH 20A"}; !reflect.DeepEqual(got.MissingRequired, want) {
		t.Errorf("MissingRequired = %v, want %v", got.MissingRequired, want)
	}

	got = engine.Eligibility("CSE 999", nil)
	if got.Known || !got.Eligible {
		t.Errorf("Eligibility(unknown) = %+v, want unknown and eligible", got)
	}
}

func TestEngine_Stats(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, nil)
	stats := engine.Stats()

	want := Stats{
		TotalCourses:             9,
		CoursesWithEmbeddings:    9,
		CoursesWithPrerequisites: 5,
		EmbeddingDim:             3,
		PrerequisiteEdges:        9,
	}
	if stats.TotalCourses != want.TotalCourses ||
		stats.CoursesWithEmbeddings != want.CoursesWithEmbeddings ||
		stats.CoursesWithPrerequisites != want.CoursesWithPrerequisites ||
		stats.EmbeddingDim != want.EmbeddingDim ||
		stats.PrerequisiteEdges != want.PrerequisiteEdges {
		t.Errorf("Stats() = %+v, want %+v", stats, want)
	}
	if stats.Validation.Dangling != 2 || stats.Validation.Valid != 7 {
		t.Errorf("Validation = %+v, want 7 valid and 2 dangling", stats.Validation)
	}
	if _, ok := engine.Validation().Dangling["DSC 40A"]; !ok {
		t.Error("Validation() missing dangling entry for DSC 40A")
	}
}

func TestEngine_ConcurrentRecommend(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, defaultEmbedder())
	req := Request{Query: "machine learning", Completed: []string{"CSE 12"}, Limit: 3}

	first, err := engine.Recommend(context.Background(), req)
	if err != nil {
		t.Fatalf("Recommend() error: %v", err)
	}
	want := resultIDs(first.Results)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := engine.Recommend(context.Background(), req)
			if err != nil {
				t.Errorf("Recommend() error: %v", err)
				return
			}
			if got := resultIDs(resp.Results); !reflect.DeepEqual(got, want) {
				t.Errorf("concurrent Recommend() = %v, want %v", got, want)
			}
		}()
	}
	wg.Wait()
}
