package app

import (
	"context"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repomap/internal/types"
)

func TestResolveMatchesFirstRule(t *testing.T) {
	service := NewService()
	result, err := service.Resolve(context.Background(), ResolveRequest{
		MapPath: "../../fixtures/map-sample.json",
		Project: "acme-widget",
	})
	require.NoError(t, err)

	want := []types.IndexGroup{{"https://pkgs.example.com/simple/"}}
	if diff := cmp.Diff(want, result.Groups); diff != "" {
		t.Fatalf("unexpected groups (-want +got):\n%s", diff)
	}
	assert.False(t, result.Exhausted, "terminating match does not exhaust the rule list")
}

func TestResolveFallsBackToCatchAll(t *testing.T) {
	service := NewService()
	result, err := service.Resolve(context.Background(), ResolveRequest{
		MapPath: "../../fixtures/map-sample.json",
		Project: "random-pkg",
	})
	require.NoError(t, err)

	want := []types.IndexGroup{{"https://pypi.org/simple/"}}
	if diff := cmp.Diff(want, result.Groups); diff != "" {
		t.Fatalf("unexpected groups (-want +got):\n%s", diff)
	}
}

func TestResolveQuorumMapUnsupported(t *testing.T) {
	service := NewService()
	_, err := service.Resolve(context.Background(), ResolveRequest{
		MapPath: "../../fixtures/map-quorum.json",
		Project: "anything",
	})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeUnimplemented, errbuilder.CodeOf(err))
}

func TestResolveRequiresArguments(t *testing.T) {
	service := NewService()

	_, err := service.Resolve(context.Background(), ResolveRequest{Project: "pkg"})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))

	_, err = service.Resolve(context.Background(), ResolveRequest{MapPath: "../../fixtures/map-sample.json"})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
