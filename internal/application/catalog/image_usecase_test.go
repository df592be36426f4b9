package catalog_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/quincaillerie-api/internal/application/catalog"
	"github.com/jhoicas/quincaillerie-api/internal/domain"
	"github.com/jhoicas/quincaillerie-api/pkg/logger"
)

// fakeStorage simula el CDN registrando cada upload y delete.
type fakeStorage struct {
	uploads   int
	deleted   []string
	uploadErr error
}

func (s *fakeStorage) Upload(_ context.Context, _ []byte, opts catalog.UploadOptions) (*catalog.UploadResult, error) {
	if s.uploadErr != nil {
		return nil, s.uploadErr
	}
	s.uploads++
	publicID := fmt.Sprintf("%s/asset-%d", opts.Folder, s.uploads)
	return &catalog.UploadResult{
		URL:      "https://res.cloudinary.com/test/image/upload/v1/" + publicID + ".jpg",
		PublicID: publicID,
		Width:    800, Height: 600, Format: "jpg", Bytes: 1234,
	}, nil
}

func (s *fakeStorage) Delete(_ context.Context, publicID string) error {
	s.deleted = append(s.deleted, publicID)
	return nil
}

func (s *fakeStorage) ExtractPublicID(url string) string {
	const marker = "/upload/v1/"
	idx := strings.Index(url, marker)
	if idx < 0 {
		return ""
	}
	return strings.TrimSuffix(url[idx+len(marker):], ".jpg")
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func TestImageUpload_ActualizaProductoYBorraAnterior(t *testing.T) {
	e := nuevoEscenario(t)
	storage := &fakeStorage{}
	uc := catalog.NewImageUseCase(e.prod, storage, "quincaillerie/produits", testLogger())
	ctx := context.Background()

	// Primera imagen.
	out, err := uc.Upload(ctx, "P001", []byte("imagen-1"))
	require.NoError(t, err)
	assert.NotEmpty(t, out.URL)
	assert.Equal(t, out.URL, e.prod.items["P001"].ImageURL)
	assert.Empty(t, storage.deleted, "sin imagen anterior no hay nada que borrar")

	// Segunda imagen: la primera debe borrarse del CDN.
	first := e.prod.items["P001"].ImageURL
	out2, err := uc.Upload(ctx, "P001", []byte("imagen-2"))
	require.NoError(t, err)
	assert.NotEqual(t, first, out2.URL)
	require.Len(t, storage.deleted, 1)
	assert.Equal(t, storage.ExtractPublicID(first), storage.deleted[0])
}

// Si el CDN rechaza la subida, el producto no debe tocarse.
func TestImageUpload_FalloDelCDN_NoTocaElProducto(t *testing.T) {
	e := nuevoEscenario(t)
	storage := &fakeStorage{uploadErr: errors.New("cdn caído")}
	uc := catalog.NewImageUseCase(e.prod, storage, "quincaillerie/produits", testLogger())

	_, err := uc.Upload(context.Background(), "P001", []byte("imagen"))
	assert.Error(t, err)
	assert.Empty(t, e.prod.items["P001"].ImageURL)
}

// Si la DB rechaza la escritura tras subir, el asset nuevo se limpia para no
// quedar huérfano en el CDN.
func TestImageUpload_FalloEnDB_LimpiaAssetHuerfano(t *testing.T) {
	e := nuevoEscenario(t)
	storage := &fakeStorage{}
	repo := &productRepoSinEscritura{fakeProductRepo: e.prod}
	uc := catalog.NewImageUseCase(repo, storage, "quincaillerie/produits", testLogger())

	_, err := uc.Upload(context.Background(), "P001", []byte("imagen"))
	require.Error(t, err)
	require.Len(t, storage.deleted, 1, "el asset recién subido debe eliminarse")
	assert.Empty(t, e.prod.items["P001"].ImageURL)
}

func TestImageUpload_ProductoInexistente(t *testing.T) {
	e := nuevoEscenario(t)
	uc := catalog.NewImageUseCase(e.prod, &fakeStorage{}, "quincaillerie/produits", testLogger())

	_, err := uc.Upload(context.Background(), "NO-EXISTE", []byte("imagen"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestImageUpload_SinDatos(t *testing.T) {
	e := nuevoEscenario(t)
	uc := catalog.NewImageUseCase(e.prod, &fakeStorage{}, "quincaillerie/produits", testLogger())

	_, err := uc.Upload(context.Background(), "P001", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestImageDelete(t *testing.T) {
	e := nuevoEscenario(t)
	storage := &fakeStorage{}
	uc := catalog.NewImageUseCase(e.prod, storage, "quincaillerie/produits", testLogger())
	ctx := context.Background()

	_, err := uc.Upload(ctx, "P001", []byte("imagen"))
	require.NoError(t, err)

	out, err := uc.Delete(ctx, "P001")
	require.NoError(t, err)
	assert.Empty(t, out.ImageURL)
	assert.Empty(t, e.prod.items["P001"].ImageURL)
	assert.Len(t, storage.deleted, 1)
}

func TestImageInfo(t *testing.T) {
	e := nuevoEscenario(t)
	storage := &fakeStorage{}
	uc := catalog.NewImageUseCase(e.prod, storage, "quincaillerie/produits", testLogger())
	ctx := context.Background()

	info, err := uc.Info(ctx, "p001")
	require.NoError(t, err)
	assert.Equal(t, "P001", info.ProductCode)
	assert.False(t, info.HasImage)
	assert.Empty(t, info.URL)

	_, err = uc.Upload(ctx, "P001", []byte("imagen"))
	require.NoError(t, err)

	info, err = uc.Info(ctx, "P001")
	require.NoError(t, err)
	assert.True(t, info.HasImage)
	assert.Equal(t, e.prod.items["P001"].ImageURL, info.URL)
	assert.NotEmpty(t, info.PublicID)

	_, err = uc.Info(ctx, "NO-EXISTE")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestImageDelete_SinImagen(t *testing.T) {
	e := nuevoEscenario(t)
	uc := catalog.NewImageUseCase(e.prod, &fakeStorage{}, "quincaillerie/produits", testLogger())

	_, err := uc.Delete(context.Background(), "P001")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// productRepoSinEscritura falla toda escritura de image_url; delega el resto.
type productRepoSinEscritura struct {
	*fakeProductRepo
}

func (r *productRepoSinEscritura) UpdateImageURL(_ context.Context, _, _ string) error {
	return errors.New("db no disponible")
}
