// Package collab memanggil Gemini untuk mengusulkan ide kolaborasi antar
// inovasi terpilih. Satu panggilan per kombinasi, sinkron, tanpa retry;
// kegagalan satu kombinasi tidak mempengaruhi kombinasi lain.
package collab

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/model"
)

// Batas jumlah inovasi yang dapat dikolaborasikan sekali jalan
const (
	MinSelection = 2
	MaxSelection = 5
)

var (
	// ErrNoAPIKey Saran kolaborasi butuh API key Gemini
	ErrNoAPIKey = errors.New("API key Gemini belum dikonfigurasi")

	// ErrSelectionSize Jumlah inovasi terpilih di luar rentang 2-5
	ErrSelectionSize = fmt.Errorf("pilih minimal %d dan maksimal %d inovasi", MinSelection, MaxSelection)
)

// Client Pembungkus klien Gemini
type Client struct {
	client *genai.Client
	model  string
}

// NewClient Membuat klien saran kolaborasi
func NewClient(ctx context.Context, apiKey, modelName string) (*Client, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}

	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gagal membuat klien Gemini: %w", err)
	}

	return &Client{client: c, model: modelName}, nil
}

// Suggest Meminta rekomendasi kolaborasi untuk satu kombinasi judul.
// records adalah tampilan aktif; hanya baris dengan judul terpilih yang
// diringkas ke dalam prompt.
func (c *Client) Suggest(ctx context.Context, titles []string, records []*model.Record) (string, error) {
	if len(titles) < MinSelection || len(titles) > MaxSelection {
		return "", ErrSelectionSize
	}

	prompt := buildPrompt(titles, records)

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("panggilan Gemini gagal: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", errors.New("jawaban Gemini kosong")
	}
	return text, nil
}

func buildPrompt(titles []string, records []*model.Record) string {
	selected := make(map[string]struct{}, len(titles))
	for _, t := range titles {
		selected[t] = struct{}{}
	}

	var ctxLines []string
	for _, r := range records {
		if _, ok := selected[r.Title]; !ok {
			continue
		}
		line := "- Judul: " + r.Title
		if r.MainAffair != nil {
			line += "; Urusan Utama: " + *r.MainAffair
		}
		if r.Form != nil {
			line += "; Bentuk: " + *r.Form
		}
		if r.Description != nil {
			line += "; Deskripsi: " + *r.Description
		}
		ctxLines = append(ctxLines, line)
	}

	dataRingkas := "Data inovasi tidak tersedia"
	if len(ctxLines) > 0 {
		dataRingkas = strings.Join(ctxLines, "\n")
	}

	return fmt.Sprintf(`Kamu adalah asisten AI yang membantu mengusulkan kolaborasi antar inovasi pemerintahan.
Berikut data inovasi yang relevan:
%s

Analisis kolaborasi potensial antara inovasi berikut:
%s

Tolong berikan rekomendasi dengan format:
1. Judul Kolaborasi (singkat dan menarik)
2. Jenis Kolaborasi
3. Manfaat Kolaborasi
4. Alasan Kesesuaian / Sinergi
5. Potensi Dampak

Jawaban maksimal 5 paragraf, padat dan relevan.`,
		dataRingkas, strings.Join(titles, ", "))
}

// Combinations Seluruh kombinasi berukuran 2..len(items), urutan ukuran
// naik, dipotong pada maxComb (maxComb <= 0 berarti tanpa batas)
func Combinations(items []string, maxComb int) [][]string {
	var out [][]string
	for size := MinSelection; size <= len(items); size++ {
		combine(items, size, 0, nil, &out)
	}
	if maxComb > 0 && len(out) > maxComb {
		out = out[:maxComb]
	}
	return out
}

func combine(items []string, size, start int, cur []string, out *[][]string) {
	if len(cur) == size {
		picked := make([]string, size)
		copy(picked, cur)
		*out = append(*out, picked)
		return
	}
	for i := start; i <= len(items)-(size-len(cur)); i++ {
		combine(items, size, i+1, append(cur, items[i]), out)
	}
}
