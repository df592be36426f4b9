package cloudinary

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/quincaillerie-api/internal/application/catalog"
)

var _ catalog.ImageStorage = (*Client)(nil)

// Client habla con la API REST de Cloudinary (upload/destroy firmados).
// Implementa catalog.ImageStorage.
type Client struct {
	cloudName string
	apiKey    string
	apiSecret string
	http      *http.Client
	baseURL   string
}

// New construye el cliente con las credenciales de la cuenta.
func New(cloudName, apiKey, apiSecret string) *Client {
	return &Client{
		cloudName: cloudName,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		http:      &http.Client{Timeout: 30 * time.Second},
		baseURL:   "https://api.cloudinary.com/v1_1",
	}
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Format    string `json:"format"`
	Bytes     int64  `json:"bytes"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// sign calcula la firma SHA-1 de los parámetros ordenados, como exige la API:
// sha1("k1=v1&k2=v2...<api_secret>").
func (c *Client) sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(params[k])
	}
	b.WriteString(c.apiSecret)
	sum := sha1.Sum([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

// Upload sube la imagen firmada y devuelve los metadatos del asset.
func (c *Client) Upload(ctx context.Context, data []byte, opts catalog.UploadOptions) (*catalog.UploadResult, error) {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	params := map[string]string{"timestamp": timestamp}
	if opts.Folder != "" {
		params["folder"] = opts.Folder
	}
	if opts.PublicID != "" {
		params["public_id"] = opts.PublicID
	}
	signature := c.sign(params)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", "image")
	if err != nil {
		return nil, fmt.Errorf("build multipart: %w", err)
	}
	if _, err = part.Write(data); err != nil {
		return nil, fmt.Errorf("build multipart: %w", err)
	}
	for k, v := range params {
		_ = w.WriteField(k, v)
	}
	_ = w.WriteField("api_key", c.apiKey)
	_ = w.WriteField("signature", signature)
	if err = w.Close(); err != nil {
		return nil, fmt.Errorf("build multipart: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s/image/upload", c.baseURL, c.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}
	defer resp.Body.Close()

	var out uploadResponse
	if err = json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode upload response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upload image: status %d: %s", resp.StatusCode, out.Error.Message)
	}
	return &catalog.UploadResult{
		URL:      out.SecureURL,
		PublicID: out.PublicID,
		Width:    out.Width,
		Height:   out.Height,
		Format:   out.Format,
		Bytes:    out.Bytes,
	}, nil
}

// Delete destruye el asset por public id. Idempotente: "not found" no es error.
func (c *Client) Delete(ctx context.Context, publicID string) error {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	params := map[string]string{
		"public_id": publicID,
		"timestamp": timestamp,
	}
	signature := c.sign(params)

	form := url.Values{}
	for k, v := range params {
		form.Set(k, v)
	}
	form.Set("api_key", c.apiKey)
	form.Set("signature", signature)

	endpoint := fmt.Sprintf("%s/%s/image/destroy", c.baseURL, c.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("destroy image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("destroy image: status %d: %s", resp.StatusCode, raw)
	}
	var out struct {
		Result string `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("decode destroy response: %w", err)
	}
	if out.Result != "ok" && out.Result != "not found" {
		return fmt.Errorf("destroy image: result %q", out.Result)
	}
	return nil
}

// ExtractPublicID deriva el public id desde una URL de entrega de Cloudinary.
// Ejemplo: .../image/upload/v12345/folder/name.jpg -> folder/name.
// Devuelve "" si la URL no pertenece a Cloudinary.
func (c *Client) ExtractPublicID(rawURL string) string {
	if rawURL == "" || !strings.Contains(rawURL, "res.cloudinary.com") {
		return ""
	}
	const marker = "/upload/"
	idx := strings.Index(rawURL, marker)
	if idx < 0 {
		return ""
	}
	rest := rawURL[idx+len(marker):]
	// descartar el segmento de versión "v<digits>/"
	if strings.HasPrefix(rest, "v") {
		if slash := strings.IndexByte(rest, '/'); slash > 1 {
			if _, err := strconv.Atoi(rest[1:slash]); err == nil {
				rest = rest[slash+1:]
			}
		}
	}
	// quitar la extensión del último segmento
	if dot := strings.LastIndexByte(rest, '.'); dot > strings.LastIndexByte(rest, '/') {
		rest = rest[:dot]
	}
	if rest == "" {
		return ""
	}
	u, err := url.PathUnescape(rest)
	if err != nil {
		return rest
	}
	return u
}
