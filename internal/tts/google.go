package tts

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultLanguage is the voice used for spelling dictation.
const DefaultLanguage = "en-GB"

// Client synthesizes speech for spelling prompts through the Google Cloud
// TTS REST API and caches the resulting MP3 files on disk.
type Client struct {
	cacheDir   string
	mu         sync.Mutex
	httpClient *http.Client
}

// NewClient creates a client that caches audio under cacheDir.
func NewClient(cacheDir string) *Client {
	os.MkdirAll(cacheDir, 0o755)
	return &Client{
		cacheDir: cacheDir,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) cacheKey(text, lang string) string {
	h := sha256.Sum256([]byte(lang + ":" + text))
	return hex.EncodeToString(h[:16])
}

// GetAudio returns MP3 audio for the given text. Cached results are served
// from disk; otherwise the Google API is called when GOOGLE_TTS_API_KEY is
// set. Failures are never cached.
func (c *Client) GetAudio(text, lang string) ([]byte, string, error) {
	if lang == "" {
		lang = DefaultLanguage
	}

	key := c.cacheKey(text, lang)
	cachePath := filepath.Join(c.cacheDir, key+".mp3")
	if data, err := os.ReadFile(cachePath); err == nil {
		return data, "audio/mpeg", nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check cache after acquiring lock
	if data, err := os.ReadFile(cachePath); err == nil {
		return data, "audio/mpeg", nil
	}

	apiKey := os.Getenv("GOOGLE_TTS_API_KEY")
	if apiKey == "" {
		return nil, "", fmt.Errorf("TTS unavailable for %q: GOOGLE_TTS_API_KEY is not set", text)
	}

	data, err := c.callGoogleTTS(text, lang, apiKey)
	if err != nil {
		log.Printf("TTS API error for %q: %v", text, err)
		return nil, "", err
	}

	os.WriteFile(cachePath, data, 0o644)
	return data, "audio/mpeg", nil
}

func (c *Client) callGoogleTTS(text, lang, apiKey string) ([]byte, error) {
	url := "https://texttospeech.googleapis.com/v1/text:synthesize?key=" + apiKey

	reqBody := map[string]interface{}{
		"input": map[string]string{
			"text": text,
		},
		"voice": map[string]interface{}{
			"languageCode": lang,
			"ssmlGender":   "FEMALE",
		},
		"audioConfig": map[string]string{
			"audioEncoding": "MP3",
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	resp, err := c.httpClient.Post(url, "application/json", bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("TTS request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("TTS API error %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		AudioContent string `json:"audioContent"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	audio, err := base64.StdEncoding.DecodeString(result.AudioContent)
	if err != nil {
		return nil, fmt.Errorf("decode audio: %w", err)
	}

	return audio, nil
}
