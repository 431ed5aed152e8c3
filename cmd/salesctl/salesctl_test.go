package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"github.com/xuri/excelize/v2"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func writeSnapshot(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "snapshot.json")
	payload := `{"revenue":{"2026":{"jan":{"carlos":"R$ 24.000,00","fernanda":15000}}},"projections":{"c01":{"2026":600000}}}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))
	return path
}

func TestNormalizeCmd(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want string
	}{
		{name: "Moeda pt-BR", arg: "R$ 1.234,56", want: "1234.56"},
		{name: "Milhar sem decimal", arg: "2.500", want: "2500"},
		{name: "Texto inválido", arg: "abc", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "normalize", tt.arg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(out))
		})
	}

	_, err := run(t, "normalize")
	assert.Error(t, err, "exige exatamente um argumento")
}

func TestReportCmd(t *testing.T) {
	path := writeSnapshot(t)

	t.Run("Painel do período", func(t *testing.T) {
		out, err := run(t, "report", "--snapshot", path, "--year", "2026", "--month", "jan")
		require.NoError(t, err)

		assert.Equal(t, int64(2026), gjson.Get(out, "year").Int())
		assert.Equal(t, "jan", gjson.Get(out, "month").String())
		assert.Equal(t, 39000.0, gjson.Get(out, "revenue.monthly.0.realized").Float())
		assert.Equal(t, "carlos", gjson.Get(out, "sellers.best.seller").String())
		assert.Equal(t, "c01", gjson.Get(out, "portfolio.clients.0.client_id").String())
	})

	t.Run("Sem snapshot usa o zerado", func(t *testing.T) {
		out, err := run(t, "report", "--year", "2027", "--month", "3")
		require.NoError(t, err)
		assert.Equal(t, 0.0, gjson.Get(out, "revenue.total_realized").Float())
	})

	t.Run("Ano fora da janela", func(t *testing.T) {
		_, err := run(t, "report", "--year", "2025")
		assert.Error(t, err)
	})

	t.Run("Mês inválido", func(t *testing.T) {
		_, err := run(t, "report", "--month", "xyz")
		assert.Error(t, err)
	})

	t.Run("Arquivo inexistente", func(t *testing.T) {
		_, err := run(t, "report", "--snapshot", filepath.Join(t.TempDir(), "nada.json"))
		assert.Error(t, err)
	})
}

func TestExportCmd(t *testing.T) {
	path := writeSnapshot(t)
	out := filepath.Join(t.TempDir(), "painel.xlsx")

	stdout, err := run(t, "export", "--snapshot", path, "--month", "fev", "--out", out)
	require.NoError(t, err)
	assert.Equal(t, out, strings.TrimSpace(stdout))

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Faturamento", "Vendedores", "Clientes", "Operacional"}, f.GetSheetList())
}
