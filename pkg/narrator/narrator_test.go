package narrator

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeProvider struct {
	reply string
	err   error
}

func (f *fakeProvider) GenerateText(ctx context.Context, name, prompt string) (string, error) {
	return f.reply, f.err
}

func (f *fakeProvider) HealthCheck(ctx context.Context) error { return nil }

func TestGenerate(t *testing.T) {
	n := New(&fakeProvider{reply: "A lovely day for a hike!"})

	got := n.Generate(context.Background(), "narration", "say something nice")

	assert.Equal(t, "A lovely day for a hike!", got)
}

func TestGenerate_ErrorYieldsEmptyString(t *testing.T) {
	n := New(&fakeProvider{err: fmt.Errorf("quota exceeded")})

	assert.Empty(t, n.Generate(context.Background(), "narration", "say something nice"))
}

func TestGenerate_NilProviderYieldsEmptyString(t *testing.T) {
	n := New(nil)

	assert.Empty(t, n.Generate(context.Background(), "narration", "say something nice"))
}
