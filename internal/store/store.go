package store

import (
	"fmt"
	"path/filepath"

	"github.com/dmitrijs2005/fleamarket/internal/common"
	"github.com/dmitrijs2005/fleamarket/internal/filex"
	"github.com/dmitrijs2005/fleamarket/internal/models"
)

// Kind identifies one of the stored entity categories. Internal callers
// go through the typed collections on Store; the string-keyed surface
// exists for external maintenance tooling only.
type Kind string

const (
	KindUser        Kind = "user"
	KindItem        Kind = "item"
	KindInteraction Kind = "interaction"
)

func artifactName(k Kind) (string, error) {
	switch k {
	case KindUser:
		return "users.json", nil
	case KindItem:
		return "items.json", nil
	case KindInteraction:
		return "interactions.json", nil
	default:
		return "", fmt.Errorf("%w: %q", common.ErrUnknownEntityKind, k)
	}
}

// Store bundles the typed collections over one data directory.
type Store struct {
	dir string

	Users        *Collection[models.User]
	Items        *Collection[models.Item]
	Interactions *Collection[models.InterestInteraction]
}

// Open makes sure dataDir exists and binds one collection per entity
// kind to its artifact inside it. Nothing is read until first use.
func Open(dataDir string) (*Store, error) {
	dir, err := filex.EnsureDir(dataDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStorage, err)
	}

	s := &Store{dir: dir}
	s.Users = NewCollection[models.User](mustArtifactPath(dir, KindUser))
	s.Items = NewCollection[models.Item](mustArtifactPath(dir, KindItem))
	s.Interactions = NewCollection[models.InterestInteraction](mustArtifactPath(dir, KindInteraction))
	return s, nil
}

func mustArtifactPath(dir string, k Kind) string {
	name, err := artifactName(k)
	if err != nil {
		panic(err)
	}
	return filepath.Join(dir, name)
}

// Dir returns the absolute data directory the store was opened on.
func (s *Store) Dir() string { return s.dir }

// ArtifactPath resolves an entity kind to its artifact path on disk.
// Unrecognized kinds fail with ErrUnknownEntityKind.
func (s *Store) ArtifactPath(k Kind) (string, error) {
	name, err := artifactName(k)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.dir, name), nil
}
