package etag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type versioned struct {
	v string
}

func (o *versioned) V() string { return o.v }

func TestETagRoundTrip(t *testing.T) {
	tag := ETag(&versioned{v: "3"})
	assert.Equal(t, "v:3", tag)

	v, err := ParseETag(tag)
	require.NoError(t, err)
	assert.Equal(t, "3", v)
}

func TestParseETagRejectsUnknownFormat(t *testing.T) {
	_, err := ParseETag("w/3")
	assert.Error(t, err)
}
