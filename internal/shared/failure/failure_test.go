package failure

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorDescriptions(t *testing.T) {
	secret := errors.New(`Get "http://internal.example/cat.png": dial tcp 10.0.0.1:80: connection refused`)

	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"upstream", Upstream(StageImageSource, 503), "image-source: upstream returned status 503"},
		{"parse", Parse(StageImageSource, secret), "image-source: response did not match the expected shape"},
		{"empty", EmptyResult(StageImageSource), "image-source: empty result, no images returned"},
		{"decode", Decode(secret), "decode: downloaded bytes are not a supported image"},
		{"transport", Transport(StageDownload, secret), "download: network failure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.NotContains(t, tt.err.Error(), "internal.example")
			assert.NotContains(t, tt.err.Error(), "10.0.0.1")
		})
	}
}

func TestUnwrapKeepsCause(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := Transport(StageDownload, cause)

	assert.ErrorIs(t, err, cause)
}

func TestAsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("run pipeline: %w", EmptyResult(StageImageSource))

	fe, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindEmptyResult, fe.Kind)
	assert.Equal(t, StageImageSource, fe.Stage)

	assert.Equal(t, KindEmptyResult, KindOf(wrapped))
	assert.True(t, errors.Is(wrapped, &Error{Kind: KindEmptyResult, Stage: StageImageSource}))
}

func TestKindAndStageOfForeignErrors(t *testing.T) {
	err := errors.New("boom")

	assert.Equal(t, Kind("unknown"), KindOf(err))
	assert.Equal(t, Stage("unknown"), StageOf(err))
	assert.Equal(t, KindUpstream, KindOf(Upstream(StageDownload, 404)))
	assert.Equal(t, StageDownload, StageOf(Upstream(StageDownload, 404)))
}
