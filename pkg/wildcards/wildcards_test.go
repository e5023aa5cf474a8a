package wildcards_test

import (
	"testing"

	"github.com/arthur-debert/toke/pkg/errors"
	"github.com/arthur-debert/toke/pkg/testutil"
	"github.com/arthur-debert/toke/pkg/tokefile"
	"github.com/arthur-debert/toke/pkg/wildcards"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func list(values ...string) tokefile.Wildcard {
	return tokefile.Wildcard{Values: values, IsList: true}
}

func TestExpand(t *testing.T) {
	tests := []struct {
		name    string
		cmd     string
		sources []tokefile.Wildcard
		want    []string
	}{
		{
			name:    "single_source",
			cmd:     "echo @@",
			sources: []tokefile.Wildcard{list("a", "b")},
			want:    []string{"echo a", "echo b"},
		},
		{
			name:    "parallel_sources_by_declaration_order",
			cmd:     "cp @@ @@",
			sources: []tokefile.Wildcard{list("src/a", "src/b"), list("dst/a", "dst/b")},
			want:    []string{"cp src/a dst/a", "cp src/b dst/b"},
		},
		{
			name: "no_sources_is_cmd_alone",
			cmd:  "echo @@ stays",
			want: []string{"echo @@ stays"},
		},
		{
			name:    "empty_lists_produce_no_rows",
			cmd:     "echo @@",
			sources: []tokefile.Wildcard{list()},
			want:    []string{},
		},
		{
			name:    "value_containing_marker",
			cmd:     "echo @@ @@",
			sources: []tokefile.Wildcard{list("@@"), list("x")},
			want:    []string{"echo x @@"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := wildcards.Expand(tt.cmd, tt.sources)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Expand() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExpandRowCount(t *testing.T) {
	sources := []tokefile.Wildcard{list("1", "2", "3"), list("a", "b", "c"), list("x", "y", "z")}
	got, err := wildcards.Expand("@@@@ @@", sources)
	require.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, "1a x", got[0])
}

func TestExpandErrors(t *testing.T) {
	tests := []struct {
		name    string
		cmd     string
		sources []tokefile.Wildcard
		wantMsg string
	}{
		{
			name:    "too_few_markers",
			cmd:     "echo @@",
			sources: []tokefile.Wildcard{list("a"), list("b")},
			wantMsg: "number of wildcards in the cmd value",
		},
		{
			name:    "too_many_markers",
			cmd:     "echo @@ @@",
			sources: []tokefile.Wildcard{list("a")},
			wantMsg: "number of wildcards in the cmd value",
		},
		{
			name:    "unequal_lengths",
			cmd:     "echo @@ @@",
			sources: []tokefile.Wildcard{list("a", "b"), list("c")},
			wantMsg: "same number of elements/iterations",
		},
		{
			name:    "unresolved_slot",
			cmd:     "echo @@",
			sources: []tokefile.Wildcard{{Command: "plain"}},
			wantMsg: "did not resolve to a list",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := wildcards.Expand(tt.cmd, tt.sources)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.True(t, errors.IsErrorCode(err, errors.ErrWildcardInvalid))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestCommands(t *testing.T) {
	t.Run("no_cmd_no_wildcards", func(t *testing.T) {
		got, err := wildcards.Commands(testutil.NewTarget("noop", "").Build())
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("error_names_target", func(t *testing.T) {
		_, err := wildcards.Commands(testutil.NewTarget("bad", "echo").List("a").Build())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot expand target 'bad'")
		assert.Equal(t, "bad", errors.GetErrorDetails(err)["target"])
	})
}

func TestPlan(t *testing.T) {
	doc := testutil.NewDocument(nil,
		testutil.NewTarget("all", "echo done").Deps("build", "ghost"),
		testutil.NewTarget("build", "go build ./@@").List("cmd", "pkg"),
		testutil.NewTarget("broken", "echo @@ @@").List("only-one"),
	)

	plan, err := wildcards.Plan(doc, "all")
	require.NoError(t, err, "unreachable targets are not expanded")

	want := map[string][]string{
		"all":   {"echo done"},
		"build": {"go build ./cmd", "go build ./pkg"},
	}
	if diff := cmp.Diff(want, plan); diff != "" {
		t.Errorf("Plan() mismatch (-want +got):\n%s", diff)
	}

	_, err = wildcards.Plan(doc, "broken")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrWildcardInvalid))
}
