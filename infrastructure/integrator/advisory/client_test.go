package advisory

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"github.com/vfg2006/sales-performance-api/internal/config"
)

const groundedResponse = `{
  "candidates": [{
    "content": {"parts": [{"text": "O faturamento está abaixo da meta. "}, {"text": "Reative clientes parados."}]},
    "groundingMetadata": {
      "groundingChunks": [
        {"web": {"title": "Varejo em 2026", "uri": "https://exemplo.com.br/varejo"}},
        {"web": {"title": "Sem link"}},
        {"web": {"title": "Churn B2B", "uri": "https://exemplo.com.br/churn"}}
      ]
    }
  }]
}`

func TestParseResponse(t *testing.T) {
	advice := ParseResponse([]byte(groundedResponse))

	assert.Equal(t, "O faturamento está abaixo da meta. Reative clientes parados.", advice.Text)
	require.Len(t, advice.Sources, 2)
	assert.Equal(t, "Varejo em 2026", advice.Sources[0].Title)
	assert.Equal(t, "https://exemplo.com.br/churn", advice.Sources[1].URI)

	empty := ParseResponse([]byte(`{"candidates":[]}`))
	assert.Empty(t, empty.Text)
	assert.Empty(t, empty.Sources)
}

func TestBuildRequest(t *testing.T) {
	body, err := buildRequest(`Período "jan/2026"`)

	require.NoError(t, err)
	assert.Equal(t, `Período "jan/2026"`, gjson.GetBytes(body, "contents.0.parts.0.text").String())
	assert.Equal(t, "user", gjson.GetBytes(body, "contents.0.role").String())
	assert.True(t, gjson.GetBytes(body, "tools.0.google_search").IsObject())
}

func TestAdvisoryClient_Advise(t *testing.T) {
	t.Run("Resposta com texto e fontes", func(t *testing.T) {
		var received []byte
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1beta/models/modelo-teste:generateContent", r.URL.Path)
			assert.Equal(t, "chave", r.Header.Get("x-goog-api-key"))
			assert.Empty(t, r.URL.RawQuery)
			received, _ = io.ReadAll(r.Body)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(groundedResponse))
		}))
		defer server.Close()

		client := NewClient(config.Advisory{URL: server.URL + "/v1beta", APIKey: "chave", Model: "modelo-teste", TimeoutSeconds: 5})
		advice, err := client.Advise(context.Background(), "contexto do painel")

		require.NoError(t, err)
		assert.Equal(t, "contexto do painel", advice.Context)
		assert.Len(t, advice.Sources, 2)
		assert.Equal(t, "contexto do painel", gjson.GetBytes(received, "contents.0.parts.0.text").String())
	})

	t.Run("Erro do serviço", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"message":"API key not valid"}}`))
		}))
		defer server.Close()

		client := NewClient(config.Advisory{URL: server.URL, Model: "m"})
		_, err := client.Advise(context.Background(), "x")

		assert.True(t, errors.Is(err, ErrUnexpectedStatus))
		assert.Contains(t, err.Error(), "API key not valid")
	})

	t.Run("Resposta sem texto", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[]}}]}`))
		}))
		defer server.Close()

		client := NewClient(config.Advisory{URL: server.URL, Model: "m"})
		_, err := client.Advise(context.Background(), "x")

		assert.ErrorIs(t, err, ErrEmptyResponse)
	})

	t.Run("Tenta novamente após falha do servidor", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&calls, 1) == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			_, _ = w.Write([]byte(groundedResponse))
		}))
		defer server.Close()

		client := NewClient(config.Advisory{URL: server.URL, Model: "m", RetryMax: 1})
		advice, err := client.Advise(context.Background(), "x")

		require.NoError(t, err)
		assert.NotEmpty(t, advice.Text)
		assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	})
}

func TestAdvisoryClient_APIKeyOutOfURL(t *testing.T) {
	const apiKey = "CHAVE-SECRETA-123"

	// servidor fechado: a conexão é recusada e o retryablehttp desiste
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	var logs bytes.Buffer
	previousOut, previousLevel := logrus.StandardLogger().Out, logrus.GetLevel()
	logrus.SetOutput(&logs)
	logrus.SetLevel(logrus.TraceLevel)
	defer func() {
		logrus.SetOutput(previousOut)
		logrus.SetLevel(previousLevel)
	}()

	client := NewClient(config.Advisory{URL: baseURL + "/v1beta", APIKey: apiKey, Model: "m", TimeoutSeconds: 2})
	_, err := client.Advise(context.Background(), "x")

	require.Error(t, err)
	assert.NotContains(t, err.Error(), apiKey)
	assert.NotContains(t, logs.String(), apiKey)
}
