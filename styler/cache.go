package styler

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/khankhulgun/prettymap/models"
)

var styleCache *ristretto.Cache

func init() {
	// Initialize the cache with Ristretto
	var err error
	styleCache, err = ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e7,     // number of keys to track frequency of (10M)
		MaxCost:     1 << 30, // maximum cost of cache (1GB)
		BufferItems: 64,      // number of keys per Get buffer
	})
	if err != nil {
		log.Fatalf("Failed to initialize cache: %v", err)
	}
}

// CachedStyle returns a previously built style document for the same
// layers and palette, building and caching one on miss.
func CachedStyle(polygon, line VectorLayer, palette models.Palette) (models.MapStyle, error) {
	key := cacheKey(polygon, line, palette)

	if cached, found := styleCache.Get(key); found {
		if style, ok := cached.(models.MapStyle); ok {
			return style, nil
		}
	}

	style, err := BuildStyle(polygon, line, palette)
	if err != nil {
		return style, err
	}

	styleCache.SetWithTTL(key, style, 1, 60*time.Minute)
	styleCache.Wait()

	return style, nil
}

func cacheKey(polygon, line VectorLayer, palette models.Palette) string {
	payload, _ := json.Marshal(struct {
		Polygon VectorLayer    `json:"polygon"`
		Line    VectorLayer    `json:"line"`
		Palette models.Palette `json:"palette"`
	}{polygon, line, palette})

	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}
