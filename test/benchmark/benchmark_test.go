package benchmark

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/studio-admin-api/internal/mocks"
	"github.com/studio-admin-api/internal/models"
	"github.com/studio-admin-api/internal/service"
	"github.com/studio-admin-api/internal/validation"
)

func BenchmarkSlug(b *testing.B) {
	titles := []string{
		"Practice Shoes",
		"Summer Gala: Night & Day!",
		"Top 10 Moves of 2024",
		"Hip   Hop\tFoundations for Absolute Beginners",
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		validation.Slug(titles[i%len(titles)])
	}
}

func BenchmarkReadTime(b *testing.B) {
	content := strings.Repeat("word ", 850)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		validation.ReadTime(content)
	}
}

func BenchmarkProductCreate(b *testing.B) {
	services := service.NewServices(mocks.NewRepositories(), zerolog.Nop())
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := services.Product.Create(ctx, &models.ProductInput{
			Name:  fmt.Sprintf("Practice Shoes %d", i),
			Price: models.OptFloat{Valid: true, Value: 29.99},
			Stock: models.OptInt{Valid: true, Value: 10},
		})
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPayloadDecode(b *testing.B) {
	payload := []byte(`{
		"name": "Practice Shoes",
		"category": "footwear",
		"price": "29.99",
		"stock": 10,
		"tags": "dance, shoes, leather",
		"features": ["suede sole", "padded insole"]
	}`)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var in models.ProductInput
		if err := json.Unmarshal(payload, &in); err != nil {
			b.Fatal(err)
		}
	}
}
