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

func TestValidateSampleMap(t *testing.T) {
	service := NewService()
	result, err := service.Validate(context.Background(), ValidateRequest{
		MapPath: "../../fixtures/map-sample.json",
	})
	require.NoError(t, err)

	if diff := cmp.Diff(2, result.RepositoryCount); diff != "" {
		t.Fatalf("unexpected repository count (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(2, result.RuleCount); diff != "" {
		t.Fatalf("unexpected rule count (-want +got):\n%s", diff)
	}
	assert.Equal(t, "../../fixtures/map-sample.json", result.Source)
}

func TestValidateRequiresMapPath(t *testing.T) {
	service := NewService()
	_, err := service.Validate(context.Background(), ValidateRequest{})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestValidateRejectsInvalidMap(t *testing.T) {
	service := NewService()
	_, err := service.Validate(context.Background(), ValidateRequest{
		MapPath: "../../fixtures/map-invalid.json",
	})
	require.Error(t, err)

	var configErr *types.ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, types.ErrKindMissingRepositories, configErr.Kind)
}
