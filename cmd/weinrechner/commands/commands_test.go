package commands_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/weinrechner/cmd/weinrechner/commands"
	"github.com/jhoicas/weinrechner/internal/domain"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("LOG_LEVEL", "disabled")

	var out, errOut bytes.Buffer
	root := commands.NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestRootHelp(t *testing.T) {
	out, _, err := run(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "alligation")
	assert.Contains(t, out, "blend")
}

func TestAlcohol(t *testing.T) {
	out, _, err := run(t, "alcohol", "--gl", "100", "--vol", "12,67")
	require.NoError(t, err)
	assert.Contains(t, out, "% vol: 12,67")
	assert.Contains(t, out, "g/l: 100,00")
}

func TestPercent_Aleman(t *testing.T) {
	out, _, err := run(t, "--lang", "de", "percent", "--percent", "20", "--liters", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "20,00")
	assert.Contains(t, out, "25,00")
}

func TestAlligation_ErrorDeValidacion(t *testing.T) {
	_, errOut, err := run(t, "alligation", "--sr-gl", "20", "--wine-gl", "5", "--wine-liters", "100", "--target-gl", "20")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.Contains(t, errOut, "ziel_gl: g/l SR must not equal target g/l")
}

func TestAlligation_PDF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sr.pdf")
	out, _, err := run(t, "alligation", "--sr-gl", "200", "--wine-gl", "0", "--wine-liters", "100", "--target-gl", "20", "--pdf", path)
	require.NoError(t, err)
	assert.Contains(t, out, "11,1111")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}

func TestBlend(t *testing.T) {
	out, _, err := run(t, "blend", "--wine", "10:50:100", "--wine", "0:999:999", "--wine", "10:30:80")
	require.NoError(t, err)
	assert.Contains(t, out, "20,00")
	assert.Contains(t, out, "40,00")
	assert.Contains(t, out, "90,00")
}

func TestBlend_DemasiadosLotes(t *testing.T) {
	args := []string{"blend"}
	for i := 0; i < 6; i++ {
		args = append(args, "--wine", "1:1:1")
	}
	_, _, err := run(t, args...)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestCalculators(t *testing.T) {
	out, _, err := run(t, "--lang", "ru", "calculators")
	require.NoError(t, err)
	assert.Contains(t, out, "alligation\t/srCalc\tsubmit")
}

func TestIdiomaNoSoportado(t *testing.T) {
	_, _, err := run(t, "--lang", "fr", "calculators")
	assert.True(t, errors.Is(err, domain.ErrUnsupportedLanguage))
}
