package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/margdarshak/career-intelligence-api/internal/application/scoring"
)

// ErrNotConfigured indica que a chave da API não está definida no ambiente
var ErrNotConfigured = errors.New("gemini: GEMINI_API_KEY is not defined in the environment")

const defaultModel = "gemini-1.5-flash"
const baseURL = "https://generativelanguage.googleapis.com/v1beta/models"

// Client chama a API generativa do Gemini. É o colaborador externo opaco:
// qualquer erro daqui (rede, timeout, parse) leva o chamador ao gerador de
// fallback determinístico, nunca a uma falha visível para o usuário.
type Client struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient monta o cliente com timeout limitado; a chave vem do ambiente
func NewClient() *Client {
	return &Client{
		apiKey: os.Getenv("GEMINI_API_KEY"),
		model:  defaultModel,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// GenerateText envia o prompt e devolve o texto bruto do primeiro candidato
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("gemini: unexpected status %d: %s", resp.StatusCode, string(data))
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("gemini: empty response")
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

// GenerateNarrative envia o prompt e tenta interpretar a resposta como a
// análise estruturada. Falha de parse é um erro como outro qualquer: o
// chamador decide cair no fallback.
func (c *Client) GenerateNarrative(ctx context.Context, prompt string) (*scoring.Narrative, error) {
	text, err := c.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var narrative scoring.Narrative
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &narrative); err != nil {
		return nil, fmt.Errorf("gemini: response is not valid narrative JSON: %w", err)
	}
	return &narrative, nil
}

// stripCodeFence remove o bloco ```json ... ``` que o modelo costuma
// devolver em volta do JSON.
func stripCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
