package evolution

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
)

const DefaultTimeout = 30 * time.Second

var errTrailingData = errors.New("unexpected data after top-level JSON value")

// Service executa as chamadas autenticadas na Evolution API.
// A configuração é imutável depois de NewService, então um Service pode ser compartilhado entre goroutines.
type Service struct {
	baseURL string
	apiKey  string
	timeout time.Duration
	http    *http.Client
}

type Option func(*Service)

// WithHTTPClient troca o transporte (útil em testes ou para compartilhar um http.Client).
// Se o client não tiver Timeout, vale o timeout do Service.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Service) {
		if client != nil {
			s.http = client
		}
	}
}

func NewService(baseURL, apiKey string, timeout time.Duration, opts ...Option) *Service {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	s := &Service{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		timeout: timeout,
		http:    &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.http.Timeout == 0 {
		// Client injetado sem timeout herda o do Service; a cópia preserva o original do chamador.
		client := *s.http
		client.Timeout = s.timeout
		s.http = &client
	}
	return s
}

func (s *Service) BaseURL() string        { return s.baseURL }
func (s *Service) APIKey() string         { return s.apiKey }
func (s *Service) Timeout() time.Duration { return s.timeout }

func (s *Service) Get(ctx context.Context, path string, query map[string]string) (map[string]any, error) {
	return s.request(ctx, http.MethodGet, path, query, nil)
}

func (s *Service) Post(ctx context.Context, path string, body map[string]any) (map[string]any, error) {
	return s.request(ctx, http.MethodPost, path, nil, body)
}

func (s *Service) Put(ctx context.Context, path string, body map[string]any) (map[string]any, error) {
	return s.request(ctx, http.MethodPut, path, nil, body)
}

func (s *Service) Delete(ctx context.Context, path string, query map[string]string) (map[string]any, error) {
	return s.request(ctx, http.MethodDelete, path, query, nil)
}

// URL monta a URL final: base sem a barra final + path sem uma barra inicial.
func (s *Service) URL(path string, query map[string]string) string {
	endpoint := s.baseURL + "/" + strings.TrimPrefix(path, "/")
	if len(query) == 0 {
		return endpoint
	}

	values := url.Values{}
	keys := make([]string, 0, len(query))
	for k := range query {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		values.Set(k, query[k])
	}

	sep := "?"
	if strings.Contains(endpoint, "?") {
		sep = "&"
	}
	return endpoint + sep + values.Encode()
}

func (s *Service) request(ctx context.Context, method, path string, query map[string]string, body map[string]any) (map[string]any, error) {
	result, err := s.do(ctx, method, path, query, body)
	if err != nil {
		if apiErr, ok := AsAPIError(err); ok {
			log.Printf("❌ Evolution: %s %s falhou (code %d): %s", method, path, apiErr.Code, apiErr.Message)
		}
		return nil, err
	}
	return result, nil
}

func (s *Service) do(ctx context.Context, method, path string, query map[string]string, body map[string]any) (map[string]any, error) {
	var reader io.Reader
	if method == http.MethodPost || method == http.MethodPut {
		if body == nil {
			body = map[string]any{}
		}
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, &APIError{Message: fmt.Sprintf("marshal request: %v", err), Err: err}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.URL(path, query), reader)
	if err != nil {
		return nil, &APIError{Message: err.Error(), Err: err}
	}
	s.setHeaders(req)

	resp, err := s.http.Do(req)
	if err != nil {
		// Sem resposta: conexão recusada, timeout, contexto cancelado...
		return nil, &APIError{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Message: err.Error(), Code: resp.StatusCode, Err: err}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, statusError(req, resp, raw)
	}

	return decodeBody(resp.StatusCode, raw)
}

func (s *Service) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("apikey", s.apiKey)
}

// decodeBody trata as respostas que chegaram com status < 400.
func decodeBody(statusCode int, raw []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}, nil
	}

	var decoded any
	if err := decodeJSON(raw, &decoded); err != nil {
		return nil, &APIError{Message: invalidJSONMessage, Code: http.StatusInternalServerError, Err: err}
	}

	switch v := decoded.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		if status, _ := v["status"].(string); status == "error" {
			message, ok := fieldText(v, "message")
			if !ok {
				message = unknownErrorMessage
			}
			return nil, &APIError{Message: message, Code: statusCode}
		}
		return v, nil
	default:
		// fetchInstances e afins devolvem array
		return map[string]any{"data": v}, nil
	}
}

// statusError trata 4xx/5xx: usa o campo "error" do corpo quando existir, senão a mensagem do transporte.
func statusError(req *http.Request, resp *http.Response, raw []byte) *APIError {
	message := transportMessage(req, resp)

	var decoded map[string]any
	if err := decodeJSON(raw, &decoded); err == nil {
		if text, ok := fieldText(decoded, "error"); ok {
			message = text
		}
	}

	return &APIError{Message: message, Code: resp.StatusCode}
}

// decodeJSON mantém números como json.Number (IDs e timestamps de 19 dígitos não cabem em float64)
// e recusa qualquer coisa depois do primeiro valor.
func decodeJSON(raw []byte, out any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = errTrailingData
		}
		return err
	}
	return nil
}

func transportMessage(req *http.Request, resp *http.Response) string {
	kind := "Client error"
	if resp.StatusCode >= http.StatusInternalServerError {
		kind = "Server error"
	}
	return fmt.Sprintf("%s: `%s %s` resulted in a `%s` response", kind, req.Method, req.URL.Redacted(), resp.Status)
}

func fieldText(data map[string]any, field string) (string, bool) {
	value, ok := data[field]
	if !ok || value == nil {
		return "", false
	}
	if text, ok := value.(string); ok {
		return text, true
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprint(value), true
	}
	return string(encoded), true
}
