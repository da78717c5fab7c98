package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"sync"
	"testing"
)

// createTestImage writes a uniformly colored PNG to a temp file and returns
// its path. The caller is responsible for removing the file.
func createTestImage(t *testing.T, width, height int, c color.Color) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	tmpFile, err := os.CreateTemp("", "test-image-*.png")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer tmpFile.Close()

	if err := png.Encode(tmpFile, img); err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to encode image: %v", err)
	}

	return tmpFile.Name()
}

func TestImageCache_Load(t *testing.T) {
	cache := NewImageCache()
	path := createTestImage(t, 50, 30, color.RGBA{255, 0, 0, 255})
	defer os.Remove(path)

	img, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img.Bounds().Dx() != 50 || img.Bounds().Dy() != 30 {
		t.Errorf("got %dx%d, want 50x30", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestImageCache_LoadCached(t *testing.T) {
	cache := NewImageCache()
	path := createTestImage(t, 10, 10, color.RGBA{0, 255, 0, 255})
	defer os.Remove(path)

	img1, err := cache.Load(path)
	if err != nil {
		t.Fatalf("first Load failed: %v", err)
	}

	// The file is gone, so a hit proves the cache served the second call.
	os.Remove(path)

	img2, err := cache.Load(path)
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if img1 != img2 {
		t.Error("second Load should return the cached image")
	}
}

func TestImageCache_LoadMissing(t *testing.T) {
	cache := NewImageCache()

	if _, err := cache.Load("/nonexistent/image.png"); err == nil {
		t.Error("Load should fail for a missing file")
	}
}

func TestImageCache_LoadInvalid(t *testing.T) {
	cache := NewImageCache()

	tmpFile, err := os.CreateTemp("", "not-an-image-*.png")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer os.Remove(tmpFile.Name())
	if _, err := tmpFile.WriteString("this is not image data"); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	tmpFile.Close()

	if _, err := cache.Load(tmpFile.Name()); err == nil {
		t.Error("Load should fail for a non-image file")
	}
}

func TestImageCache_Evict(t *testing.T) {
	cache := NewImageCache()
	path := createTestImage(t, 10, 10, color.RGBA{0, 0, 255, 255})

	if _, err := cache.Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cache.Evict(path)
	os.Remove(path)

	if _, err := cache.Load(path); err == nil {
		t.Error("Load after Evict should hit the (now removed) disk file and fail")
	}
}

func TestImageCache_Clear(t *testing.T) {
	cache := NewImageCache()
	path := createTestImage(t, 10, 10, color.RGBA{0, 0, 255, 255})

	if _, err := cache.Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cache.Clear()
	os.Remove(path)

	if _, err := cache.Load(path); err == nil {
		t.Error("Load after Clear should hit the (now removed) disk file and fail")
	}
}

func TestImageCache_ConcurrentAccess(t *testing.T) {
	cache := NewImageCache()
	path := createTestImage(t, 20, 20, color.RGBA{128, 128, 128, 255})
	defer os.Remove(path)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cache.Load(path); err != nil {
				t.Errorf("concurrent Load failed: %v", err)
			}
		}()
	}
	wg.Wait()
}

func TestLoadImageInfo(t *testing.T) {
	cache := NewImageCache()
	path := createTestImage(t, 64, 48, color.RGBA{255, 255, 0, 255})
	defer os.Remove(path)

	info, err := LoadImageInfo(cache, path)
	if err != nil {
		t.Fatalf("LoadImageInfo failed: %v", err)
	}

	if info.Width != 64 || info.Height != 48 {
		t.Errorf("dimensions: got %dx%d, want 64x48", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("format: got %s, want png", info.Format)
	}
	if info.ColorDepth != "8-bit" {
		t.Errorf("color depth: got %s, want 8-bit", info.ColorDepth)
	}
	if info.FileSizeBytes <= 0 {
		t.Errorf("file size: got %d, want > 0", info.FileSizeBytes)
	}
}
