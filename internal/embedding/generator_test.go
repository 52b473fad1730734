package embedding

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danverh/careeratlas/internal/utils"
)

type stubProvider struct {
	response string
	err      error
	calls    int
}

func (s *stubProvider) Complete(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.response, s.err
}

func (s *stubProvider) Close() error { return nil }

func TestGeneratorEmbed(t *testing.T) {
	p := &stubProvider{response: `["go", "postgres"]`}
	g := NewGenerator(p, nil)

	v, err := g.Embed(context.Background(), "backend engineer resume")
	require.NoError(t, err)
	require.Len(t, v, Dimensions)
	assert.Equal(t, Vectorize([]string{"go", "postgres"}), v)
	assert.Equal(t, 1, p.calls)
}

func TestGeneratorEmbedProviderFailureIsFatal(t *testing.T) {
	p := &stubProvider{err: errors.New("upstream 500")}
	g := NewGenerator(p, nil)

	_, err := g.Embed(context.Background(), "anything")
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeUnavailable))
}

func TestGeneratorEmbedNoProvider(t *testing.T) {
	g := NewGenerator(nil, nil)

	_, err := g.Embed(context.Background(), "anything")
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeUnavailable))
}
