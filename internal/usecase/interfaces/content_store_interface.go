package interfaces

import (
	"context"

	"vistoria_itl/internal/domain/entities"
)

// IContentStore persists binary artifacts (photos, PDFs) under the content
// root. The returned path is relative to that root and retrievable through
// the static /content route.

type IContentStore interface {
	Save(ctx context.Context, relPath string, data []byte) (storedPath string, err error)
	Read(ctx context.Context, relPath string) ([]byte, error)
}

// ILaudoRenderer renders the laudo PDF from the joined report document.

type ILaudoRenderer interface {
	Render(ctx context.Context, doc entities.LaudoDocument) ([]byte, error)
}
