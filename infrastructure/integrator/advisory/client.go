// Package advisory integra o serviço externo de texto generativo que comenta o painel.
// O texto e as fontes retornadas são repassados sem alteração.
package advisory

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"github.com/vfg2006/sales-performance-api/internal/config"
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

var (
	ErrEmptyResponse    = errors.New("advisory returned no text")
	ErrUnexpectedStatus = errors.New("advisory request failed")
)

// apiKeyHeader leva a chave fora da URL, que aparece em erros de transporte e nos logs de tentativa
const apiKeyHeader = "x-goog-api-key"

const requestTemplate = `{"contents":[{"role":"user","parts":[{"text":""}]}]}`

type Client interface {
	Advise(ctx context.Context, prompt string) (*domain.Advice, error)
}

type AdvisoryClient struct {
	cfg        config.Advisory
	httpClient *retryablehttp.Client
}

func NewClient(cfg config.Advisory) Client {
	retryClient := retryablehttp.NewClient()
	retryClient.Logger = leveledLogger{entry: logrus.WithField("component", "advisory")}
	retryClient.RetryMax = cfg.RetryMax
	retryClient.RetryWaitMin = 500 * time.Millisecond
	retryClient.RetryWaitMax = 5 * time.Second
	if cfg.TimeoutSeconds > 0 {
		retryClient.HTTPClient.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}

	return &AdvisoryClient{
		cfg:        cfg,
		httpClient: retryClient,
	}
}

func (c *AdvisoryClient) Advise(ctx context.Context, prompt string) (*domain.Advice, error) {
	body, err := buildRequest(prompt)
	if err != nil {
		return nil, errors.Wrap(err, "advisory: erro ao montar requisição")
	}

	endpoint, err := c.endpoint()
	if err != nil {
		return nil, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "advisory: erro ao criar requisição")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set(apiKeyHeader, c.cfg.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "advisory: erro ao executar requisição")
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "advisory: erro ao ler resposta")
	}

	if resp.StatusCode != http.StatusOK {
		message := gjson.GetBytes(payload, "error.message").String()
		logrus.WithFields(logrus.Fields{
			"status":  resp.StatusCode,
			"message": message,
		}).Error("advisory: serviço retornou erro")
		return nil, errors.Wrapf(ErrUnexpectedStatus, "status %d: %s", resp.StatusCode, message)
	}

	advice := ParseResponse(payload)
	if advice.Text == "" {
		return nil, ErrEmptyResponse
	}
	advice.Context = prompt

	logrus.WithFields(logrus.Fields{
		"chars":   len(advice.Text),
		"sources": len(advice.Sources),
	}).Debug("advisory: resposta recebida")

	return advice, nil
}

func (c *AdvisoryClient) endpoint() (string, error) {
	base, err := url.Parse(c.cfg.URL)
	if err != nil {
		return "", errors.Wrap(err, "advisory: URL base inválida")
	}
	base.Path = strings.TrimSuffix(base.Path, "/") + fmt.Sprintf("/models/%s:generateContent", c.cfg.Model)

	return base.String(), nil
}

func buildRequest(prompt string) ([]byte, error) {
	body, err := sjson.Set(requestTemplate, "contents.0.parts.0.text", prompt)
	if err != nil {
		return nil, err
	}
	body, err = sjson.SetRaw(body, "tools", `[{"google_search":{}}]`)
	if err != nil {
		return nil, err
	}
	return []byte(body), nil
}

// ParseResponse junta as partes de texto do primeiro candidato e as citações {title, uri}
func ParseResponse(payload []byte) *domain.Advice {
	candidate := gjson.GetBytes(payload, "candidates.0")

	parts := make([]string, 0)
	for _, text := range candidate.Get("content.parts.#.text").Array() {
		parts = append(parts, text.String())
	}

	sources := make([]domain.AdviceSource, 0)
	candidate.Get("groundingMetadata.groundingChunks").ForEach(func(_, chunk gjson.Result) bool {
		uri := chunk.Get("web.uri").String()
		if uri == "" {
			return true
		}
		sources = append(sources, domain.AdviceSource{
			Title: chunk.Get("web.title").String(),
			URI:   uri,
		})
		return true
	})

	return &domain.Advice{
		Text:    strings.Join(parts, ""),
		Sources: sources,
	}
}
