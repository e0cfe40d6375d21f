package pagecheck

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

// writeFixture writes a fixture PDF into a temp directory and returns its
// path.
func writeFixture(t *testing.T, page fixturePage) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.pdf")
	if err := os.WriteFile(path, page.PDF(), 0644); err != nil {
		t.Fatalf("Cannot write fixture PDF: %v", err)
	}
	return path
}

// skipWithoutRenderer skips tests that need a working MuPDF runtime.
func skipWithoutRenderer(t *testing.T) {
	t.Helper()
	if err := ProbeRenderer(); err != nil {
		t.Skipf("Renderer unavailable: %v", err)
	}
}

// TestOpenDocument tests opening a minimal PDF and reading its geometry.
func TestOpenDocument(t *testing.T) {
	skipWithoutRenderer(t)

	doc, err := OpenDocument(writeFixture(t, fixturePage{}))
	if err != nil {
		t.Fatalf("OpenDocument failed: %v", err)
	}
	defer doc.Close()

	if n := doc.NumPages(); n != 1 {
		t.Errorf("Expected 1 page, got %d", n)
	}
	if h := doc.PageHeightPt(1); math.Abs(h-792) > 0.5 {
		t.Errorf("Expected page height 792 pt, got %g", h)
	}
}

// TestRenderPageDimensions tests that rendering honors the requested DPI.
func TestRenderPageDimensions(t *testing.T) {
	skipWithoutRenderer(t)

	doc, err := OpenDocument(writeFixture(t, fixturePage{}))
	if err != nil {
		t.Fatalf("OpenDocument failed: %v", err)
	}
	defer doc.Close()

	img, err := doc.RenderPage(1, 150)
	if err != nil {
		t.Fatalf("RenderPage failed: %v", err)
	}

	// Letter at 150 DPI is 1275x1650, allow rounding slack.
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w < 1273 || w > 1277 || h < 1648 || h > 1652 {
		t.Errorf("Unexpected raster size %dx%d", w, h)
	}
}

// TestRenderPageOutOfRange tests that rendering a missing page fails.
func TestRenderPageOutOfRange(t *testing.T) {
	skipWithoutRenderer(t)

	doc, err := OpenDocument(writeFixture(t, fixturePage{}))
	if err != nil {
		t.Fatalf("OpenDocument failed: %v", err)
	}
	defer doc.Close()

	if _, err := doc.RenderPage(2, 72); err == nil {
		t.Error("Rendering page 2 of a 1-page document should fail")
	}
}

// TestCountImages tests embedded-image enumeration on pages with and
// without image XObjects.
func TestCountImages(t *testing.T) {
	skipWithoutRenderer(t)

	blank, err := OpenDocument(writeFixture(t, fixturePage{}))
	if err != nil {
		t.Fatalf("OpenDocument failed: %v", err)
	}
	defer blank.Close()

	if n, err := blank.CountImages(1); err != nil {
		t.Errorf("CountImages failed: %v", err)
	} else if n != 0 {
		t.Errorf("Blank page should have 0 images, got %d", n)
	}

	withImage, err := OpenDocument(writeFixture(t, fixturePage{
		Content:   drawImage(100, 100, 100, 100),
		WithImage: true,
	}))
	if err != nil {
		t.Fatalf("OpenDocument failed: %v", err)
	}
	defer withImage.Close()

	if n, err := withImage.CountImages(1); err != nil {
		t.Errorf("CountImages failed: %v", err)
	} else if n != 1 {
		t.Errorf("Expected 1 embedded image, got %d", n)
	}
}
