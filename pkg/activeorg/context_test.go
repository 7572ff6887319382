package activeorg_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/orgclient/pkg/activeorg"
)

func TestOrgIDContext(t *testing.T) {
	t.Parallel()

	t.Run("stores and retrieves org id", func(t *testing.T) {
		t.Parallel()
		ctx := activeorg.WithOrgID(context.Background(), "acme")
		orgID, ok := activeorg.OrgIDFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, "acme", orgID)
	})

	t.Run("missing org id", func(t *testing.T) {
		t.Parallel()
		_, ok := activeorg.OrgIDFromContext(context.Background())
		assert.False(t, ok)
	})

	t.Run("logger extractor", func(t *testing.T) {
		t.Parallel()
		extract := activeorg.LoggerExtractor()

		attr, ok := extract(activeorg.WithOrgID(context.Background(), "acme"))
		assert.True(t, ok)
		assert.Equal(t, "org_id", attr.Key)
		assert.Equal(t, "acme", attr.Value.String())

		_, ok = extract(context.Background())
		assert.False(t, ok)
	})
}
