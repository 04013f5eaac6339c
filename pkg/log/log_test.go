package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
}

func TestGetCorrelationID_SemValor(t *testing.T) {
	assert.Equal(t, "", GetCorrelationID(context.Background()))
}

func TestKeepField(t *testing.T) {
	assert.True(t, keepField("correlation_id"))
	assert.True(t, keepField("user_id"))
	assert.True(t, keepField("import_rows"))
	assert.False(t, keepField("query"))
}

func TestWithFields_DesenvolvimentoDescartaCamposIrrelevantes(t *testing.T) {
	t.Setenv("APP_ENV", "dev")

	base := &logger{entry: L.(*logger).entry}
	filtered := base.WithFields(Fields{"query": "x"})

	assert.Same(t, base, filtered)
}
