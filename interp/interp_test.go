package interp

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvalStringReturnsLastExpressionValue(t *testing.T) {
	var out bytes.Buffer
	v, err := EvalString("1 + 2;", &out)
	assert.NoError(t, err)
	assert.Equal(t, "3", v.Display())
}

func TestEvalStringPropagatesSyntaxErrors(t *testing.T) {
	var out bytes.Buffer
	_, err := EvalString("catlt x = ;", &out)
	assert.Error(t, err)
}

func TestSessionPersistsDeclarationsAcrossFragments(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(&out)

	_, err := s.EvalFragment("catlt total = 0;")
	assert.NoError(t, err)

	_, err = s.EvalFragment("total = total + 5;")
	assert.NoError(t, err)

	v, err := s.EvalFragment("total;")
	assert.NoError(t, err)
	assert.Equal(t, "5", v.Display())
}

func TestEvalFileRunsAScriptAndReportsErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ok.mew")
	assert.NoError(t, os.WriteFile(path, []byte(`purr("hi");`), 0o644))
	assert.NoError(t, EvalFile(path))

	missing := filepath.Join(dir, "missing.mew")
	assert.Error(t, EvalFile(missing))

	badPath := filepath.Join(dir, "bad.mew")
	assert.NoError(t, os.WriteFile(badPath, []byte(`catlt x = ;`), 0o644))
	assert.Error(t, EvalFile(badPath))
}
