package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/cafe-pos-api/internal/application/ports"
	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
)

// Verificar en tiempo de compilación que GeminiService implementa LLMService.
var _ ports.LLMService = (*GeminiService)(nil)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

	// descriptionPromptFmt pide una descripción corta de un artículo del menú.
	descriptionPromptFmt = `Genera una descripción corta, atractiva y creativa para un artículo de café llamado "%s". Máximo una o dos frases, en español.`

	// insightsSystemPrompt define el rol de analista para el informe de ventas.
	insightsSystemPrompt = `Eres un analista de negocio de un café. Analiza los datos de ventas que recibas y entrega 3-4 observaciones accionables: productos más vendidos, combinaciones posibles y tendencias. Sé conciso y cercano. Responde en español con una lista de viñetas.`
)

// GeminiService adaptador que implementa LLMService llamando a la API REST de
// Google Gemini. Usa únicamente la librería estándar (net/http) para no
// añadir dependencias externas.
type GeminiService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewGeminiService construye el adaptador. model suele ser "gemini-2.5-flash".
func NewGeminiService(apiKey, model string) *GeminiService {
	return &GeminiService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: 20 * time.Second, // timeout de red; el caller también pone WithTimeout
		},
	}
}

// ── Estructuras internas para la API de Gemini ────────────────────────────────

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type genConfig struct {
	Temperature     float32 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// GenerateProductDescription pide a Gemini la descripción de un artículo.
func (s *GeminiService) GenerateProductDescription(ctx context.Context, productName string) (string, error) {
	prompt := fmt.Sprintf(descriptionPromptFmt, productName)
	return s.generate(ctx, nil, prompt, 128)
}

// GenerateSalesInsights arma el resumen de catálogo + órdenes recientes y
// pide el análisis.
func (s *GeminiService) GenerateSalesInsights(ctx context.Context, orders []*entity.Order, products []*entity.Product) (string, error) {
	if len(orders) == 0 {
		return "No hay suficientes ventas para generar un análisis.", nil
	}

	var b strings.Builder
	b.WriteString("Catálogo:\n")
	for _, p := range products {
		fmt.Fprintf(&b, "- %s (ID: %s)\n", p.Name, p.ID)
	}
	b.WriteString("\nÓrdenes recientes:\n")
	for _, o := range orders {
		lines := make([]string, len(o.Items))
		for i, item := range o.Items {
			lines[i] = fmt.Sprintf("%dx %s", item.Quantity, item.Name)
		}
		fmt.Fprintf(&b, "Orden %s, Total: %s DH, Artículos: %s\n",
			o.ID, o.FinalAmount.StringFixed(2), strings.Join(lines, ", "))
	}

	system := &geminiContent{Parts: []geminiPart{{Text: insightsSystemPrompt}}}
	return s.generate(ctx, system, b.String(), 1024)
}

func (s *GeminiService) generate(ctx context.Context, system *geminiContent, userText string, maxTokens int) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: GEMINI_API_KEY no configurado")
	}

	payload := geminiRequest{
		SystemInstruction: system,
		Contents: []geminiContent{
			{
				Role:  "user",
				Parts: []geminiPart{{Text: userText}},
			},
		},
		GenerationConfig: genConfig{
			Temperature:     0.7,
			MaxOutputTokens: maxTokens,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	url := fmt.Sprintf(geminiBaseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", fmt.Errorf("AI: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		// Intentar extraer el mensaje de error de Gemini
		var errResp geminiResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI: Gemini error %d: %s", errResp.Error.Code, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI: Gemini HTTP %d", resp.StatusCode)
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(rawBody, &gemResp); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Gemini: %w", err)
	}
	if len(gemResp.Candidates) == 0 || len(gemResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("AI: Gemini devolvió respuesta vacía")
	}
	return strings.TrimSpace(gemResp.Candidates[0].Content.Parts[0].Text), nil
}
