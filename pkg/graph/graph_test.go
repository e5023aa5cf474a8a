package graph_test

import (
	"testing"

	"github.com/arthur-debert/toke/pkg/errors"
	"github.com/arthur-debert/toke/pkg/graph"
	"github.com/arthur-debert/toke/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectCycles(t *testing.T) {
	tests := []struct {
		name      string
		targets   []*testutil.TargetBuilder
		wantCycle string
		wantPath  string
	}{
		{
			name: "acyclic",
			targets: []*testutil.TargetBuilder{
				testutil.NewTarget("a", "echo a").Deps("b", "c"),
				testutil.NewTarget("b", "echo b").Deps("d"),
				testutil.NewTarget("c", "echo c"),
				testutil.NewTarget("d", "echo d"),
			},
		},
		{
			name: "diamond_is_not_a_cycle",
			targets: []*testutil.TargetBuilder{
				testutil.NewTarget("a", "").Deps("b", "c"),
				testutil.NewTarget("b", "").Deps("d"),
				testutil.NewTarget("c", "").Deps("d"),
				testutil.NewTarget("d", ""),
			},
		},
		{
			name: "undeclared_dep_ends_branch",
			targets: []*testutil.TargetBuilder{
				testutil.NewTarget("a", "").Deps("ghost"),
			},
		},
		{
			name: "self_cycle",
			targets: []*testutil.TargetBuilder{
				testutil.NewTarget("x", "echo x").Deps("x"),
			},
			wantCycle: "x",
			wantPath:  "x -> x",
		},
		{
			name: "two_node_cycle",
			targets: []*testutil.TargetBuilder{
				testutil.NewTarget("a", "").Deps("b"),
				testutil.NewTarget("b", "").Deps("a"),
			},
			wantCycle: "a",
			wantPath:  "a -> b -> a",
		},
		{
			name: "cycle_below_root",
			targets: []*testutil.TargetBuilder{
				testutil.NewTarget("a", "").Deps("b"),
				testutil.NewTarget("b", "").Deps("c"),
				testutil.NewTarget("c", "").Deps("b"),
			},
			wantCycle: "b",
			wantPath:  "a -> b -> c -> b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := testutil.NewDocument(nil, tt.targets...)
			err := graph.DetectCycles(doc)

			if tt.wantCycle == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrCycleDetected))
			assert.Contains(t, err.Error(), "cycle detected: "+tt.wantCycle)
			details := errors.GetErrorDetails(err)
			assert.Equal(t, tt.wantCycle, details["target"])
			assert.Equal(t, tt.wantPath, details["path"])
		})
	}
}

func TestDetectCyclesFromTokefile(t *testing.T) {
	doc := testutil.MustDocument(t, `
[targets.build]
cmd = "go build"
deps = ["test"]

[targets.test]
cmd = "go test"
deps = ["build"]
`)
	err := graph.DetectCycles(doc)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCycleDetected))
}

func TestMissingDeps(t *testing.T) {
	doc := testutil.NewDocument(nil,
		testutil.NewTarget("b", "").Deps("ghost", "a", "phantom"),
		testutil.NewTarget("a", "").Deps("phantom"),
	)

	assert.Equal(t, []graph.MissingDep{
		{Target: "a", Dep: "phantom"},
		{Target: "b", Dep: "ghost"},
		{Target: "b", Dep: "phantom"},
	}, graph.MissingDeps(doc))

	err := graph.ValidateDeps(doc)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMissingDependency))
	assert.Contains(t, err.Error(), "'ghost' (required by 'b')")
	assert.Equal(t, 3, errors.GetErrorDetails(err)["count"])
}

func TestValidateDepsClean(t *testing.T) {
	doc := testutil.NewDocument(nil,
		testutil.NewTarget("a", "").Deps("b"),
		testutil.NewTarget("b", ""),
	)
	assert.Empty(t, graph.MissingDeps(doc))
	assert.NoError(t, graph.ValidateDeps(doc))
}

func TestReachable(t *testing.T) {
	doc := testutil.NewDocument(nil,
		testutil.NewTarget("a", "").Deps("b", "c", "ghost"),
		testutil.NewTarget("b", "").Deps("d"),
		testutil.NewTarget("c", "").Deps("d"),
		testutil.NewTarget("d", ""),
		testutil.NewTarget("unrelated", ""),
	)

	assert.Equal(t, []string{"a", "b", "d", "c"}, graph.Reachable(doc, "a"))
	assert.Equal(t, []string{"d"}, graph.Reachable(doc, "d"))
	assert.Empty(t, graph.Reachable(doc, "ghost"))
}
